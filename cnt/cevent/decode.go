package cevent

import (
	"fmt"

	"continuity/cnt/cerror"
	"continuity/cnt/lbytes"
	"continuity/ds"
	"github.com/pkg/errors"
)

// RecordSize maps an event type to its record byte size. Types 2 and 3
// share a layout; anything else is a FormatError.
func RecordSize(eventType EventType) (int, error) {
	switch eventType {
	case EventType1:
		return recordSize1, nil
	case EventType2, EventType3:
		return recordSize2, nil
	}
	return 0, cerror.FormatError{
		Reason: fmt.Sprintf("unknown event type %d", eventType),
	}
}

// DecodeTeeg reads the 9-byte descriptor at teegOffset with the same
// scoped cursor discipline as the SETUP decoder. The event type tag is
// not validated here; sequence construction does that.
func DecodeTeeg(reader *lbytes.Reader, teegOffset int64) (*Teeg, error) {
	return lbytes.Scoped(reader, func() (*Teeg, error) {
		if err := reader.SeekTo(teegOffset); err != nil {
			err := errors.Wrapf(err, "cevent.DecodeTeeg error seeking to offset %d", teegOffset)
			return nil, err
		}

		teegInstructions := []lbytes.Instruction{
			{Key: "event_type", ReadFunction: lbytes.CreateUint8ReadFunction(reader)},
			{Key: "total_length", ReadFunction: lbytes.CreateInt32ReadFunction(reader)},
			{Key: "offset", ReadFunction: lbytes.CreateInt32ReadFunction(reader)},
		}

		teeg, err := lbytes.ExecuteInstructions[Teeg](teegInstructions)
		if err != nil {
			err := errors.Wrap(err, "cevent.DecodeTeeg error")
			return nil, err
		}

		return teeg, nil
	})
}

func decodeEvent(eventType EventType, chunk []byte) (*Event, error) {
	reader := lbytes.NewBytesReader(chunk)

	eventInstructions := []lbytes.Instruction{
		{Key: "stim_type", ReadFunction: lbytes.CreateUint16ReadFunction(reader)},
		{Key: "key_board", ReadFunction: lbytes.CreateUint8ReadFunction(reader)},
		{Key: "key_pad_accept", ReadFunction: lbytes.CreateInt8ReadFunction(reader)},
		{Key: "offset", ReadFunction: lbytes.CreateInt32ReadFunction(reader)},
	}
	event, err := lbytes.ExecuteInstructions[Event](eventInstructions)
	if err != nil {
		err := errors.Wrap(err, "cevent.decodeEvent error")
		return nil, err
	}
	event.EventType = eventType

	if eventType == EventType1 {
		return event, nil
	}

	extendedInstructions := []lbytes.Instruction{
		{Key: "type", ReadFunction: lbytes.CreateInt16ReadFunction(reader)},
		{Key: "code", ReadFunction: lbytes.CreateInt16ReadFunction(reader)},
		{Key: "latency", ReadFunction: lbytes.CreateFloat32ReadFunction(reader)},
		{Key: "epoch_event", ReadFunction: lbytes.CreateInt8ReadFunction(reader)},
		{Key: "accept_2", ReadFunction: lbytes.CreateInt8ReadFunction(reader)},
		{Key: "accuracy", ReadFunction: lbytes.CreateInt8ReadFunction(reader)},
	}
	extended, err := lbytes.ExecuteInstructions[Extended](extendedInstructions)
	if err != nil {
		err := errors.Wrap(err, "cevent.decodeEvent error: extended fields")
		return nil, err
	}
	event.Extended = extended

	return event, nil
}

// Sequence is a finite, restartable sequence of event records over one
// buffer. Each record is decoded independently on demand.
type Sequence struct {
	eventType EventType
	chunks    [][]byte
	cursor    int
}

// NewSequence validates the event type and the buffer length, which must
// be a whole multiple of the record size — a ragged tail is a
// FormatError, never a silent truncation.
func NewSequence(eventType EventType, buffer []byte) (*Sequence, error) {
	size, err := RecordSize(eventType)
	if err != nil {
		return nil, err
	}
	if len(buffer)%size != 0 {
		return nil, cerror.FormatError{
			Reason: fmt.Sprintf(
				"event buffer length %d is not a multiple of the type %d record size %d",
				len(buffer), eventType, size,
			),
		}
	}

	return &Sequence{
		eventType: eventType,
		chunks:    ds.MakeChunks(buffer, size),
		cursor:    0,
	}, nil
}

// Next returns the next record, or (nil, nil) once the sequence is
// exhausted.
func (r *Sequence) Next() (*Event, error) {
	if r.cursor >= len(r.chunks) {
		return nil, nil
	}
	chunk := r.chunks[r.cursor]
	r.cursor++

	event, err := decodeEvent(r.eventType, chunk)
	if err != nil {
		err := errors.Wrapf(err, "Sequence.Next error at record %d", r.cursor-1)
		return nil, err
	}
	return event, nil
}

func (r *Sequence) Reset() {
	r.cursor = 0
}

func (r *Sequence) Len() int {
	return len(r.chunks)
}

// DecodeAll drains a fresh sequence over the buffer into a slice.
func DecodeAll(eventType EventType, buffer []byte) ([]Event, error) {
	sequence, err := NewSequence(eventType, buffer)
	if err != nil {
		return nil, err
	}

	events := make([]Event, 0, sequence.Len())
	for {
		event, err := sequence.Next()
		if err != nil {
			err := errors.Wrap(err, "cevent.DecodeAll error")
			return nil, err
		}
		if event == nil {
			break
		}
		events = append(events, *event)
	}

	return events, nil
}
