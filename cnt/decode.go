package cnt

import (
	"fmt"
	"io"

	"continuity/cnt/celectrode"
	"continuity/cnt/cerror"
	"continuity/cnt/cevent"
	"continuity/cnt/csetup"
	"continuity/cnt/ctable"
	"continuity/cnt/lbytes"
	"github.com/pkg/errors"
)

// ToRecording decodes a whole CNT file: SETUP fields, electrode blocks,
// the recovered event table position, and the event records behind the
// TEEG descriptor. The returned Resolution may carry a non-fatal
// InconsistentMetadataWarning; decoding still completes.
func ToRecording(source io.ReadSeeker, format ctable.DataFormat) (*Recording, error) {
	reader := lbytes.NewReader(source)
	recording := Recording{}

	setup, err := csetup.Decode(reader)
	if err != nil {
		return nil, errors.Wrap(err, "cnt.ToRecording error")
	}
	recording.Setup = *setup

	resolution, err := ctable.Resolve(reader, format)
	if err != nil {
		return nil, errors.Wrap(err, "cnt.ToRecording error")
	}
	recording.Table = *resolution

	electrodes, err := celectrode.DecodeBlock(reader, resolution.NChannels)
	if err != nil {
		return nil, errors.Wrap(err, "cnt.ToRecording error")
	}
	recording.Electrodes = electrodes

	teeg, err := cevent.DecodeTeeg(reader, resolution.EventTablePos)
	if err != nil {
		return nil, errors.Wrap(err, "cnt.ToRecording error")
	}
	recording.Teeg = *teeg
	if teeg.TotalLength < 0 {
		return nil, cerror.FormatError{
			Reason: fmt.Sprintf("negative event table length %d", teeg.TotalLength),
		}
	}

	payload, err := lbytes.Scoped(reader, func() ([]byte, error) {
		if err := reader.SeekTo(resolution.EventTablePos + cevent.TeegSize); err != nil {
			return nil, errors.Wrap(err, "seek to event table payload")
		}
		return reader.ReadBytes(teeg.TotalLength)
	})
	if err != nil {
		return nil, errors.Wrap(err, "cnt.ToRecording error: event table payload")
	}

	events, err := cevent.DecodeAll(teeg.EventType, payload)
	if err != nil {
		return nil, errors.Wrap(err, "cnt.ToRecording error")
	}
	recording.Events = events

	return &recording, nil
}
