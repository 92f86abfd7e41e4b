package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"continuity/cnt"
	"continuity/cnt/ctable"
	"continuity/ui"
	"github.com/alexflint/go-arg"
	"github.com/iancoleman/orderedmap"
	"github.com/pkg/errors"
)

type (
	Args struct {
		Info        *InfoCmd        `arg:"subcommand:info"`
		Events      *EventsCmd      `arg:"subcommand:events"`
		Interactive *InteractiveCmd `arg:"subcommand:interactive"`
	}
	InfoCmd struct {
		File   string `arg:"positional,required" help:"path to a CNT recording" placeholder:"recording.cnt"`
		Format string `arg:"--format" default:"auto" help:"sample data format: auto, int16, or int32"`
	}
	EventsCmd struct {
		File   string `arg:"positional,required" help:"path to a CNT recording" placeholder:"recording.cnt"`
		Format string `arg:"--format" default:"auto" help:"sample data format: auto, int16, or int32"`
	}
	InteractiveCmd struct{}
)

func (Args) Description() string {
	des := strings.Join(
		[]string{
			"Continuity keeps your continuous recordings continuous.\n",
			"A CLI utility to inspect Neuroscan CNT continuous-EEG recordings,",
			"recovering event tables whose stored offset wrapped around 2^32.",
		},
		"\n",
	)
	des += "\n"
	return des
}

func CheckExistence(path string) bool {
	_, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return false
	}
	return err == nil
}

func decodeFile(path string, format string) (*cnt.Recording, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, `decodeFile error opening "%s"`, path)
	}
	defer file.Close()

	return cnt.ToRecording(file, ctable.DataFormat(format))
}

// StartInfo prints the SETUP fields, the resolved event table position,
// and the electrode labels as ordered JSON, so the output follows the
// file layout rather than Go's map ordering.
func StartInfo(path string, format string) {
	if !CheckExistence(path) {
		println("Source file does not exist!")
		return
	}
	recording, err := decodeFile(path, format)
	if err != nil {
		println("Error happened decoding CNT file: " + err.Error())
		return
	}
	if warning := recording.Table.Warning; warning != nil {
		fmt.Fprintln(os.Stderr, "warning: "+warning.Error())
	}

	info := orderedmap.New()
	info.Set("n_channels", recording.Table.NChannels)
	info.Set("n_samples", recording.Table.NSamples)
	info.Set("stored_event_table_pos", recording.Setup.EventTablePos)
	info.Set("event_table_pos", recording.Table.EventTablePos)
	info.Set("n_bytes", recording.Table.NBytes)
	info.Set("event_type", recording.Teeg.EventType)
	info.Set("n_events", len(recording.Events))
	info.Set("electrodes", recording.Electrodes)

	infoBytes, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		println("Error happened rendering info: " + err.Error())
		return
	}
	fmt.Println(string(infoBytes))
}

func StartEvents(path string, format string) {
	if !CheckExistence(path) {
		println("Source file does not exist!")
		return
	}
	recording, err := decodeFile(path, format)
	if err != nil {
		println("Error happened decoding CNT file: " + err.Error())
		return
	}
	if warning := recording.Table.Warning; warning != nil {
		fmt.Fprintln(os.Stderr, "warning: "+warning.Error())
	}

	eventBytes, err := json.MarshalIndent(recording.Events, "", "  ")
	if err != nil {
		println("Error happened rendering events: " + err.Error())
		return
	}
	fmt.Println(string(eventBytes))
}

func Start() {
	args := Args{}
	arg.MustParse(&args)

	switch {
	case args.Info != nil:
		StartInfo(args.Info.File, args.Info.Format)
	case args.Events != nil:
		StartEvents(args.Events.File, args.Events.Format)
	default:
		ui.Start()
	}
}
