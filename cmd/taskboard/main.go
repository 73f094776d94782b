package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lmai/taskboard/internal/app"
	"github.com/lmai/taskboard/internal/auth"
	"github.com/lmai/taskboard/internal/model"
	"github.com/lmai/taskboard/internal/storage"
	"github.com/lmai/taskboard/internal/store"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "taskboard:", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := model.DefaultConfigPath()
	cfg, err := model.LoadConfig(configPath)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return fmt.Errorf("creating data directory %s: %w", cfg.DataDir, err)
	}

	local, err := storage.Open(filepath.Join(cfg.DataDir, "taskboard.db"))
	if err != nil {
		return err
	}
	defer local.Close()

	tasks := store.NewTaskStore(local)
	messages := store.NewMessageStore(local)
	authenticator := auth.New(cfg.Auth)

	root := app.New(local, tasks, messages, authenticator, configPath)

	program := tea.NewProgram(root, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}

	return nil
}
