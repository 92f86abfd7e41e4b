package ctable

import (
	"continuity/cnt/cerror"
)

type (
	// DataFormat constrains the candidate sample byte widths when the
	// caller knows the recording's data format independently.
	DataFormat string

	// Resolution is the set of facts needed to seek to and decode the
	// event table. EventTablePos never exceeds the file length and is
	// congruent to the stored position modulo 2^32.
	Resolution struct {
		NChannels     int   `json:"n_channels"`
		NSamples      int   `json:"n_samples"`
		EventTablePos int64 `json:"event_table_pos"`
		NBytes        int   `json:"n_bytes"`
		// Warning is set when no candidate matched the analytic offset
		// exactly and the best-effort pair was kept. Parsing continues;
		// the caller decides how to report it.
		Warning *cerror.InconsistentMetadataWarning `json:"-"`
	}
)

const (
	DataFormatAuto  = DataFormat("auto")
	DataFormatInt16 = DataFormat("int16")
	DataFormatInt32 = DataFormat("int32")
)
