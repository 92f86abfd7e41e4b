package ctable

import (
	"fmt"

	"continuity/cnt/celectrode"
	"continuity/cnt/cerror"
	"continuity/cnt/csetup"
	"continuity/cnt/lbytes"
	"continuity/ds"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// CandidateWidths maps a data format hint to the sample byte widths the
// search may consider.
func CandidateWidths(format DataFormat) ([]int, error) {
	switch format {
	case DataFormatAuto:
		return []int{2, 4}, nil
	case DataFormatInt16:
		return []int{2}, nil
	case DataFormatInt32:
		return []int{4}, nil
	}
	return nil, cerror.ConfigurationError{Value: string(format)}
}

// ExpectedPosition computes the analytic event table offset: the
// 900-byte SETUP section, 75 bytes of electrode metadata per channel,
// then the raw sample payload.
func ExpectedPosition(nChannels int, nSamples int, width int) int64 {
	return int64(celectrode.DataOffset) +
		int64(celectrode.BlockSize)*int64(nChannels) +
		int64(width)*int64(nChannels)*int64(nSamples)
}

// Resolve recovers the true event table offset and the sample byte width.
//
// The stored position was accumulated as a running byte count during
// acquisition, so on recordings past 4 GiB it wrapped around 2^32 and is
// only reliable modulo 2^32. Both the wraparound count and the byte width
// are unknown at once, so the search scores every (candidate, width) pair
// by its distance to the analytic offset:
//
//  1. candidates are stored + k*2^32 for k = 0, 1, ... while the value
//     does not exceed the file length
//  2. a zero distance selects the pair immediately; ties go to the first
//     pair in enumeration order, i.e. smallest wraparound count, then
//     smallest width
//  3. otherwise the minimum-distance pair is kept and the resolution
//     carries an InconsistentMetadataWarning
//
// The cursor is restored before returning regardless of the outcome.
func Resolve(reader *lbytes.Reader, format DataFormat) (*Resolution, error) {
	widths, err := CandidateWidths(format)
	if err != nil {
		return nil, err
	}

	setup, err := csetup.Decode(reader)
	if err != nil {
		err := errors.Wrap(err, "ctable.Resolve error")
		return nil, err
	}

	fileLength, err := reader.Size()
	if err != nil {
		err := errors.Wrap(err, "ctable.Resolve error: file length")
		return nil, err
	}

	candidates := ds.MakeRange(setup.EventTablePos, fileLength+1, int64(1)<<32)
	if len(candidates) == 0 {
		return nil, cerror.FormatError{
			Reason: fmt.Sprintf(
				"stored event table position %d exceeds the file length %d",
				setup.EventTablePos, fileLength,
			),
		}
	}

	expectedByWidth := lo.SliceToMap(
		widths,
		func(width int) (int, int64) {
			return width, ExpectedPosition(setup.NChannels, setup.NSamples, width)
		},
	)

	best := (*Resolution)(nil)
	bestDistance := int64(0)
	for _, candidate := range candidates {
		for _, width := range widths {
			distance := expectedByWidth[width] - candidate
			if distance < 0 {
				distance = -distance
			}
			if distance == 0 {
				return &Resolution{
					NChannels:     setup.NChannels,
					NSamples:      setup.NSamples,
					EventTablePos: candidate,
					NBytes:        width,
				}, nil
			}
			if best == nil || distance < bestDistance {
				best = &Resolution{
					NChannels:     setup.NChannels,
					NSamples:      setup.NSamples,
					EventTablePos: candidate,
					NBytes:        width,
				}
				bestDistance = distance
			}
		}
	}
	if best == nil {
		return nil, ds.ErrUnreachableCode{Caller: "ctable.Resolve"}
	}

	best.Warning = &cerror.InconsistentMetadataWarning{
		EventTablePos: best.EventTablePos,
		Expected:      expectedByWidth[best.NBytes],
		Distance:      bestDistance,
		NBytes:        best.NBytes,
	}
	return best, nil
}
