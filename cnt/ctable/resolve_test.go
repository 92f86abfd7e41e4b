package ctable

import (
	"encoding/binary"
	"fmt"
	"io"
	"testing"

	"continuity/cnt/cerror"
	"continuity/cnt/csetup"
	"continuity/cnt/lbytes"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

// sparseFile simulates a seekable file of arbitrary virtual size: reads
// inside the header slice return its bytes, everything after is zeros.
// Needed because wraparound cases describe files past 4 GiB.
type sparseFile struct {
	header []byte
	size   int64
	pos    int64
}

func (r *sparseFile) Read(p []byte) (int, error) {
	if r.pos >= r.size {
		return 0, io.EOF
	}
	n := 0
	for n < len(p) && r.pos < r.size {
		if r.pos < int64(len(r.header)) {
			p[n] = r.header[r.pos]
		} else {
			p[n] = 0
		}
		n++
		r.pos++
	}
	return n, nil
}

func (r *sparseFile) Seek(offset int64, whence int) (int64, error) {
	switch whence {
	case io.SeekStart:
		r.pos = offset
	case io.SeekCurrent:
		r.pos += offset
	case io.SeekEnd:
		r.pos = r.size + offset
	}
	if r.pos < 0 {
		return 0, errors.New("sparseFile: negative position")
	}
	return r.pos, nil
}

func makeSetupBytes(nChannels uint16, nSamples int32, eventTablePos uint32) []byte {
	bs := make([]byte, 900)
	binary.LittleEndian.PutUint16(bs[csetup.NChannelsOffset:], nChannels)
	binary.LittleEndian.PutUint32(bs[csetup.NSamplesOffset:], uint32(nSamples))
	binary.LittleEndian.PutUint32(bs[csetup.EventTablePosOffset:], eventTablePos)
	return bs
}

func makeReader(nChannels uint16, nSamples int32, eventTablePos uint32, fileLength int64) *lbytes.Reader {
	return lbytes.NewReader(
		&sparseFile{
			header: makeSetupBytes(nChannels, nSamples, eventTablePos),
			size:   fileLength,
		},
	)
}

func TestCandidateWidths(t *testing.T) {
	widthsByFormat := map[DataFormat][]int{
		DataFormatAuto:  {2, 4},
		DataFormatInt16: {2},
		DataFormatInt32: {4},
	}
	for format, expected := range widthsByFormat {
		widths, err := CandidateWidths(format)
		assert.NoError(t, err)
		assert.Equal(t, expected, widths)
	}

	_, err := CandidateWidths(DataFormat("int64"))
	configErr := cerror.ConfigurationError{}
	assert.ErrorAs(t, err, &configErr)
}

func TestExpectedPosition(t *testing.T) {
	// 900 + 75*32 + 2*32*1000
	assert.Equal(t, int64(67300), ExpectedPosition(32, 1000, 2))
	assert.Equal(t, int64(131300), ExpectedPosition(32, 1000, 4))
}

func TestResolveExactMatch(t *testing.T) {
	testCases := []struct {
		nChannels int
		nSamples  int
		width     int
	}{
		{32, 1000, 2},
		{32, 1000, 4},
		{64, 123456, 2},
		{1, 1, 4},
	}
	for _, tc := range testCases {
		name := fmt.Sprintf("%d channels, %d samples, width %d", tc.nChannels, tc.nSamples, tc.width)
		t.Run(name, func(t *testing.T) {
			expected := ExpectedPosition(tc.nChannels, tc.nSamples, tc.width)
			reader := makeReader(uint16(tc.nChannels), int32(tc.nSamples), uint32(expected), expected+100)

			resolution, err := Resolve(reader, DataFormatAuto)
			assert.NoError(t, err)
			assert.Equal(t, tc.nChannels, resolution.NChannels)
			assert.Equal(t, tc.nSamples, resolution.NSamples)
			assert.Equal(t, expected, resolution.EventTablePos)
			assert.Equal(t, tc.width, resolution.NBytes)
			assert.Nil(t, resolution.Warning)
		})
	}
}

func TestResolveWrappedOnce(t *testing.T) {
	// a recording long enough that the running byte counter passed 2^32
	// once: the stored field keeps only the low 32 bits
	nSamples := 67200000
	truePosition := ExpectedPosition(32, nSamples, 2)
	assert.Greater(t, truePosition, int64(1)<<32)
	stored := uint32(truePosition & 0xFFFFFFFF)
	reader := makeReader(32, int32(nSamples), stored, truePosition+100)

	resolution, err := Resolve(reader, DataFormatAuto)
	assert.NoError(t, err)
	assert.Equal(t, truePosition, resolution.EventTablePos)
	assert.Equal(t, 2, resolution.NBytes)
	assert.Nil(t, resolution.Warning)
}

func TestResolveWrappedTwice(t *testing.T) {
	nSamples := 135000000
	truePosition := ExpectedPosition(32, nSamples, 2)
	assert.Greater(t, truePosition, int64(2)<<32)
	stored := uint32(truePosition & 0xFFFFFFFF)
	reader := makeReader(32, int32(nSamples), stored, truePosition+50)

	resolution, err := Resolve(reader, DataFormatAuto)
	assert.NoError(t, err)
	assert.Equal(t, truePosition, resolution.EventTablePos)
	assert.Equal(t, 2, resolution.NBytes)
	assert.Nil(t, resolution.Warning)
}

func TestResolveBestDistance(t *testing.T) {
	// stored position is near the width-2 expectation (67300) and far
	// from the width-4 one (131300); neither is exact
	reader := makeReader(32, 1000, 67310, 200000)

	resolution, err := Resolve(reader, DataFormatAuto)
	assert.NoError(t, err)
	assert.Equal(t, int64(67310), resolution.EventTablePos)
	assert.Equal(t, 2, resolution.NBytes)
	assert.NotNil(t, resolution.Warning)
	assert.Equal(t, int64(10), resolution.Warning.Distance)
	assert.Equal(t, int64(67300), resolution.Warning.Expected)
}

func TestResolveWidthTieBreak(t *testing.T) {
	// 99300 sits exactly 32000 bytes from both expectations; the first
	// width in enumeration order wins
	reader := makeReader(32, 1000, 99300, 200000)

	resolution, err := Resolve(reader, DataFormatAuto)
	assert.NoError(t, err)
	assert.Equal(t, 2, resolution.NBytes)
	assert.NotNil(t, resolution.Warning)
	assert.Equal(t, int64(32000), resolution.Warning.Distance)
}

func TestResolveInt16Restriction(t *testing.T) {
	// the stored position matches the width-4 expectation exactly, but
	// the caller pinned the format to int16
	reader := makeReader(32, 1000, 131300, 200000)

	resolution, err := Resolve(reader, DataFormatInt16)
	assert.NoError(t, err)
	assert.Equal(t, 2, resolution.NBytes)
	assert.Equal(t, int64(131300), resolution.EventTablePos)
	assert.NotNil(t, resolution.Warning)

	resolution, err = Resolve(reader, DataFormatAuto)
	assert.NoError(t, err)
	assert.Equal(t, 4, resolution.NBytes)
	assert.Nil(t, resolution.Warning)
}

func TestResolveInvalidFormat(t *testing.T) {
	reader := makeReader(32, 1000, 67300, 70000)

	_, err := Resolve(reader, DataFormat("float64"))
	configErr := cerror.ConfigurationError{}
	assert.ErrorAs(t, err, &configErr)
}

func TestResolveStoredPositionBeyondFile(t *testing.T) {
	reader := makeReader(32, 1000, 67300, 1000)

	_, err := Resolve(reader, DataFormatAuto)
	formatErr := cerror.FormatError{}
	assert.ErrorAs(t, err, &formatErr)
}

func TestResolveRestoresCursor(t *testing.T) {
	reader := makeReader(32, 1000, 67300, 70000)
	assert.NoError(t, reader.SeekTo(123))

	_, err := Resolve(reader, DataFormatAuto)
	assert.NoError(t, err)

	position, err := reader.Tell()
	assert.NoError(t, err)
	assert.Equal(t, int64(123), position)
}
