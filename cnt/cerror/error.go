package cerror

import (
	"fmt"
)

type (
	// FormatError signals a malformed or truncated binary structure.
	// It aborts the parse of the current file; there is no retry path
	// since the input bytes are deterministic.
	FormatError struct {
		Reason string
	}
	// ConfigurationError signals an invalid data format hint supplied
	// by the caller.
	ConfigurationError struct {
		Value string
	}
	// InconsistentMetadataWarning is non-fatal: the resolved event table
	// position does not exactly match the analytic expectation for any
	// candidate, so the decoded sample count may be inaccurate.
	InconsistentMetadataWarning struct {
		EventTablePos int64
		Expected      int64
		Distance      int64
		NBytes        int
	}
)

func (r FormatError) Error() string {
	return fmt.Sprintf("malformed CNT structure: %s", r.Reason)
}

func (r ConfigurationError) Error() string {
	return fmt.Sprintf(
		`invalid data format "%s": expected "auto", "int16", or "int32"`,
		r.Value,
	)
}

func (r InconsistentMetadataWarning) Error() string {
	return fmt.Sprintf(
		"inconsistent metadata: event table position %d is %d bytes away from the expected %d (sample width %d); sample count may be inaccurate",
		r.EventTablePos, r.Distance, r.Expected, r.NBytes,
	)
}
