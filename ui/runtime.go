package ui

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"
)

func Start() {
	fileSelector, err := CreateFileSelector()
	if err != nil {
		log.Fatal(err)
	}
	if err := tea.NewProgram(&fileSelector).Start(); err != nil {
		log.Fatal(err)
	}
}
