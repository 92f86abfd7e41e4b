package ui

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"continuity/cnt"
	"continuity/cnt/ctable"
	"continuity/ds"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

type FileSelector struct {
	cwd     string
	files   []string
	cursor  int
	summary string
}

func CreateFileSelector() (FileSelector, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return FileSelector{}, errors.Wrap(err, "CreateFileSelector get current working directory error")
	}
	return FileSelector{
		cwd:   cwd,
		files: ReadRecordingNames(cwd),
	}, nil
}

// ReadRecordingNames lists the .cnt files of a directory, sorted by name.
func ReadRecordingNames(path string) []string {
	dirEntries, err := os.ReadDir(path)
	if err != nil {
		return nil
	}

	fileNames := lo.FilterMap(
		dirEntries,
		func(entry os.DirEntry, _ int) (string, bool) {
			name := entry.Name()
			return name, !entry.IsDir() && strings.HasSuffix(strings.ToLower(name), ".cnt")
		},
	)
	sort.Strings(fileNames)
	return fileNames
}

func summarize(path string) string {
	file, err := os.Open(path)
	if err != nil {
		return "could not open: " + err.Error()
	}
	defer file.Close()

	recording, err := cnt.ToRecording(file, ctable.DataFormatAuto)
	if err != nil {
		return "could not decode: " + err.Error()
	}

	summary := ds.DumpJSON(recording.Table)
	if warning := recording.Table.Warning; warning != nil {
		summary += "\nwarning: " + warning.Error()
	}
	return summary
}

func (s FileSelector) View() string {
	output := "CONTINUITY\n\n"
	output += "Current directory: " + s.cwd + "\n\n"

	if len(s.files) == 0 {
		output += "No .cnt files here. Press q to quit.\n"
		return output
	}

	for i, name := range s.files {
		marker := "  "
		if i == s.cursor {
			marker = "> "
		}
		output += marker + name + "\n"
	}
	output += "\nup/down to move, enter to inspect, q to quit\n"

	if s.summary != "" {
		output += "\n" + s.summary + "\n"
	}
	return output
}

func (s FileSelector) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch keyMsg.String() {
	case "q", "ctrl+c":
		return s, tea.Quit
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(s.files)-1 {
			s.cursor++
		}
	case "enter":
		if len(s.files) > 0 {
			s.summary = summarize(filepath.Join(s.cwd, s.files[s.cursor]))
		}
	}
	return s, nil
}

func (s FileSelector) Init() tea.Cmd {
	return nil
}
