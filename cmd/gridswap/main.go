package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/akyairhashvil/gridswap/internal/board"
	"github.com/akyairhashvil/gridswap/internal/config"
	"github.com/akyairhashvil/gridswap/internal/report"
	"github.com/akyairhashvil/gridswap/internal/tui"
	"github.com/akyairhashvil/gridswap/internal/util"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

func main() {
	// 1. Configuration and boards
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
	boards, err := loadBoards(cfg)
	if err != nil {
		fmt.Printf("Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}

	// 2. Without a terminal there is nothing to drag; write the layout instead
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		path, err := report.WritePDFFile(util.ExportDir(config.AppName), config.ExportFileName, "Gridswap layout", boards.Snapshot())
		if err != nil {
			fmt.Printf("Alas, there's been an error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("PDF layout generated: %s\n", path)
		return
	}

	// 3. The program owns the terminal, so logs go to a file or nowhere
	logger, closeLog, err := setupLogging(cfg.LogFile)
	if err != nil {
		fmt.Printf("Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	model, err := tui.NewModel(cfg, boards, logger)
	if err != nil {
		fmt.Printf("Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(model, tea.WithMouseCellMotion(), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
}

func loadBoards(cfg config.Config) (*board.Set, error) {
	if cfg.BoardsFile == "" {
		return board.Sample(cfg.Grid.Columns), nil
	}
	return board.LoadFixtureFile(cfg.BoardsFile, cfg.Grid.Columns)
}

func setupLogging(path string) (*log.Logger, func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return nil, func() {}, nil
	}
	f, err := tea.LogToFile(path, config.AppName)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return log.Default(), func() { _ = f.Close() }, nil
}
