package csetup

type (
	// Setup holds the SETUP section facts needed downstream. They are
	// derived once per file-open and never mutated afterwards.
	Setup struct {
		NChannels int `json:"n_channels"`
		NSamples  int `json:"n_samples"`
		// EventTablePos is the event table offset exactly as stored.
		// The field was accumulated as a running byte count during
		// acquisition, so on very large recordings it has silently
		// wrapped around 2^32; see ctable for the recovery.
		EventTablePos int64 `json:"event_table_pos"`
	}
)

const (
	NChannelsOffset     = 370
	NSamplesOffset      = 864
	EventTablePosOffset = 886
)
