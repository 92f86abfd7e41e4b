package celectrode

import (
	"continuity/cnt/lbytes"
	"github.com/pkg/errors"
)

func DecodeEntry(reader *lbytes.Reader, index int) (*Electrode, error) {
	base := int64(DataOffset + index*BlockSize)
	electrodeInstructions := []lbytes.Instruction{
		{Key: "label", ReadFunction: lbytes.CreateStringAtReadFunction(reader, base+labelOffset, labelLength)},
		{Key: "baseline", ReadFunction: lbytes.CreateInt16AtReadFunction(reader, base+baselineOffset)},
		{Key: "sensitivity", ReadFunction: lbytes.CreateFloat32AtReadFunction(reader, base+sensitivityOffset)},
		{Key: "calibration", ReadFunction: lbytes.CreateFloat32AtReadFunction(reader, base+calibrationOffset)},
	}

	electrode, err := lbytes.ExecuteInstructions[Electrode](electrodeInstructions)
	if err != nil {
		err := errors.Wrapf(err, "celectrode.DecodeEntry error at index %d", index)
		return nil, err
	}

	return electrode, nil
}

// DecodeBlock reads the nChannels consecutive ELECTLOC blocks that sit
// between the SETUP section and the sample payload.
func DecodeBlock(reader *lbytes.Reader, nChannels int) ([]Electrode, error) {
	return lbytes.Scoped(reader, func() ([]Electrode, error) {
		electrodes := make([]Electrode, 0, nChannels)
		for i := 0; i < nChannels; i++ {
			electrode, err := DecodeEntry(reader, i)
			if err != nil {
				err := errors.Wrap(err, "celectrode.DecodeBlock error")
				return nil, err
			}
			electrodes = append(electrodes, *electrode)
		}

		return electrodes, nil
	})
}
