package celectrode

type (
	// Electrode holds the useful subset of one 75-byte ELECTLOC block.
	Electrode struct {
		Label       string  `json:"label"`
		Baseline    int     `json:"baseline"`
		Sensitivity float32 `json:"sensitivity"`
		Calibration float32 `json:"calibration"`
	}
)

const (
	// DataOffset is where the per-channel blocks start, right after the
	// 900-byte SETUP section.
	DataOffset = 900
	BlockSize  = 75

	labelOffset       = 0
	labelLength       = 10
	baselineOffset    = 47
	sensitivityOffset = 59
	calibrationOffset = 71
)
