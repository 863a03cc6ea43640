package main

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"captura/internal/apiclient"
	"captura/internal/platform/logger"
	"captura/internal/postal"
	"captura/internal/tui"
)

func main() {
	log := logger.New()

	cfg, err := tui.LoadConfig()
	if err != nil {
		log.Error("invalid configuration", "error", err.Error())
		os.Exit(1)
	}

	directory, err := postal.Load()
	if err != nil {
		log.Error("postal dataset failed to load", "error", err.Error())
		os.Exit(1)
	}

	client := apiclient.New(cfg.API.BaseURL)
	model := tui.NewModel(client, directory, log)

	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		log.Error("capture form crashed", "error", err.Error())
		os.Exit(1)
	}
}
