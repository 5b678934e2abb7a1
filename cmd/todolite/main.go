package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"todolite/internal/update"
)

func main() {
	cfg := update.RuntimeConfigFromEnv(update.DefaultRuntimeConfig())
	program := tea.NewProgram(update.NewModelWithConfig(cfg))
	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "todolite failed: %v\n", err)
		os.Exit(1)
	}
}
