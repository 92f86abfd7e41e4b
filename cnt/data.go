package cnt

import (
	"continuity/cnt/celectrode"
	"continuity/cnt/cevent"
	"continuity/cnt/csetup"
	"continuity/cnt/ctable"
)

type (
	// Recording aggregates everything decoded from one CNT file. All of
	// it is derived once per file-open; nothing is cached or mutated
	// afterwards.
	Recording struct {
		Setup      csetup.Setup           `json:"setup"`
		Electrodes []celectrode.Electrode `json:"electrodes"`
		Table      ctable.Resolution      `json:"event_table"`
		Teeg       cevent.Teeg            `json:"teeg"`
		Events     []cevent.Event         `json:"events"`
	}
)
