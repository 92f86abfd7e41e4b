package cevent

type (
	EventType uint8

	// Teeg is the descriptor preceding the event table.
	//
	// From the TEEG structure in http://paulbourke.net/dataformats/eeg/
	//
	//	typedef struct {
	//	   char Teeg;       /* Either 1 or 2                    */
	//	   long Size;       /* Total length of all the events   */
	//	   long Offset;     /* Hopefully always 0               */
	//	} TEEG;
	Teeg struct {
		EventType   EventType `json:"event_type"`
		TotalLength int       `json:"total_length"`
		Offset      int       `json:"offset"`
	}

	// Event is one fixed-layout event record. Extended is nil for type 1
	// records; types 2 and 3 fill it with the trailing fields.
	Event struct {
		EventType    EventType `json:"event_type"`
		StimType     uint16    `json:"stim_type"`
		KeyBoard     uint8     `json:"key_board"`
		KeyPadAccept int8      `json:"key_pad_accept"`
		Offset       int32     `json:"offset"`
		Extended     *Extended `json:"extended,omitempty"`
	}

	// Extended carries the fields that types 2 and 3 append to the type 1
	// layout. The two types are byte-identical; the distinct tags exist
	// for provenance only.
	Extended struct {
		Type       int16   `json:"type"`
		Code       int16   `json:"code"`
		Latency    float32 `json:"latency"`
		EpochEvent int8    `json:"epoch_event"`
		Accept2    int8    `json:"accept_2"`
		Accuracy   int8    `json:"accuracy"`
	}
)

const (
	EventType1 = EventType(1)
	EventType2 = EventType(2)
	EventType3 = EventType(3)

	// TeegSize is u8 + i32 + i32 without padding.
	TeegSize = 9

	recordSize1 = 8
	recordSize2 = 19
)
