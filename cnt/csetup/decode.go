package csetup

import (
	"continuity/cnt/lbytes"
	"github.com/pkg/errors"
)

// Decode reads the fixed-offset SETUP fields: n_channels as unsigned
// 16-bit at 370, n_samples as signed 32-bit at 864, and the stored event
// table position as unsigned 32-bit at 886, all little-endian. The
// cursor is restored afterwards so sibling readers are unaffected.
func Decode(reader *lbytes.Reader) (*Setup, error) {
	return lbytes.Scoped(reader, func() (*Setup, error) {
		setupInstructions := []lbytes.Instruction{
			{Key: "n_channels", ReadFunction: lbytes.CreateUint16AtReadFunction(reader, NChannelsOffset)},
			{Key: "n_samples", ReadFunction: lbytes.CreateInt32AtReadFunction(reader, NSamplesOffset)},
			{Key: "event_table_pos", ReadFunction: lbytes.CreateUint32AtReadFunction(reader, EventTablePosOffset)},
		}

		setup, err := lbytes.ExecuteInstructions[Setup](setupInstructions)
		if err != nil {
			err := errors.Wrap(err, "csetup.Decode error")
			return nil, err
		}

		return setup, nil
	})
}
