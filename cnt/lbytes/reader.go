package lbytes

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"strings"

	"continuity/cnt/cerror"
	"github.com/pkg/errors"
)

func NewReader(source io.ReadSeeker) *Reader {
	return &Reader{
		source: source,
	}
}

func NewBytesReader(bs []byte) *Reader {
	return NewReader(bytes.NewReader(bs))
}

// ReadBytes reads exactly n bytes from the current cursor position.
// A short read is a FormatError since every structure in a CNT file
// has a fixed, known size.
func (b *Reader) ReadBytes(n int) ([]byte, error) {
	bs := make([]byte, n)
	if n == 0 {
		return bs, nil
	}
	read, err := io.ReadFull(b.source, bs)
	if err != nil {
		return nil, cerror.FormatError{
			Reason: fmt.Sprintf("short read: expected %d bytes, got %d", n, read),
		}
	}
	return bs, nil
}

// ReadString reads n bytes and trims trailing zero bytes, which is how
// fixed-width labels are laid out in the SETUP section.
func (b *Reader) ReadString(n int) (string, error) {
	bs, err := b.ReadBytes(n)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(bs), "\u0000"), nil
}

func (b *Reader) ReadUint8() (uint8, error) {
	bs, err := b.ReadBytes(1)
	if err != nil {
		return 0, err
	}
	return bs[0], nil
}

func (b *Reader) ReadInt8() (int8, error) {
	bs, err := b.ReadBytes(1)
	if err != nil {
		return 0, err
	}
	return int8(bs[0]), nil
}

func (b *Reader) ReadUint16() (uint16, error) {
	bs, err := b.ReadBytes(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(bs), nil
}

func (b *Reader) ReadInt16() (int16, error) {
	result, err := b.ReadUint16()
	if err != nil {
		return 0, err
	}
	return int16(result), nil
}

func (b *Reader) ReadUint32() (uint32, error) {
	bs, err := b.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(bs), nil
}

func (b *Reader) ReadInt32() (int32, error) {
	result, err := b.ReadUint32()
	if err != nil {
		return 0, err
	}
	return int32(result), nil
}

func (b *Reader) ReadFloat32() (float32, error) {
	result, err := b.ReadUint32()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(result), nil
}

func (b *Reader) Tell() (int64, error) {
	return b.source.Seek(0, io.SeekCurrent)
}

func (b *Reader) SeekTo(offset int64) error {
	_, err := b.source.Seek(offset, io.SeekStart)
	return err
}

// Size reports the total byte length of the underlying source without
// disturbing the cursor.
func (b *Reader) Size() (int64, error) {
	return Scoped(b, func() (int64, error) {
		return b.source.Seek(0, io.SeekEnd)
	})
}

// Scoped saves the cursor, runs decode, and restores the cursor on every
// exit path, so sibling readers of the same source are unaffected.
func Scoped[T any](reader *Reader, decode func() (T, error)) (T, error) {
	var zero T
	origin, err := reader.Tell()
	if err != nil {
		return zero, errors.Wrap(err, "Scoped error: save cursor")
	}
	result, err := decode()
	if seekErr := reader.SeekTo(origin); seekErr != nil && err == nil {
		return zero, errors.Wrap(seekErr, "Scoped error: restore cursor")
	}
	return result, err
}
