package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	tea "charm.land/bubbletea/v2"
	"github.com/Gaurav-Gosain/toast/internal/config"
	"github.com/Gaurav-Gosain/toast/internal/demo"
	"github.com/adrg/xdg"
	"github.com/charmbracelet/log"
	"golang.org/x/term"
)

// newLogger returns a debug logger writing to the XDG state directory,
// or a discarding logger when debug mode is off. Logging to stderr would
// corrupt the alt-screen UI.
func newLogger() (*log.Logger, func()) {
	if !debugMode {
		return log.New(io.Discard), func() {}
	}

	path, err := xdg.StateFile("toast/debug.log")
	if err != nil {
		return log.New(io.Discard), func() {}
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600) //nolint:gosec
	if err != nil {
		return log.New(io.Discard), func() {}
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Level:           log.DebugLevel,
	})
	logger.Info("debug logging enabled", "path", path)
	fmt.Fprintf(os.Stderr, "Debug log: %s\n", path)

	return logger, func() { _ = f.Close() }
}

func runDemo() error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("the demo needs an interactive terminal")
	}

	userConfig, err := config.LoadUserConfig()
	if err != nil {
		log.Warn("Failed to load config, using defaults", "err", err)
		userConfig = config.DefaultConfig()
	}

	config.ApplyOverrides(config.Overrides{
		ASCIIOnly:     asciiOnly,
		NoAnimations:  noAnimations,
		ThemeName:     themeName,
		FPS:           fps,
		MaxConcurrent: maxConcurrent,
		Overflow:      overflow,
	}, userConfig)

	overflowPolicy, err := config.ParseOverflow(userConfig.Toasts.Overflow)
	if err != nil {
		return err
	}

	anchor := userConfig.Toasts.DefaultAnchor
	if anchorName != "" {
		anchor = anchorName
	}
	defaultAnchor, err := config.ParseAnchor(anchor)
	if err != nil {
		return err
	}

	defaultAnimation, err := config.ParseAnimation(userConfig.Toasts.DefaultAnimation)
	if err != nil {
		return err
	}

	logger, closeLogger := newLogger()
	defer closeLogger()

	if debugMode {
		if configPath, pathErr := config.GetConfigPath(); pathErr == nil {
			logger.Info("configuration", "path", configPath)
		}
	}

	model := demo.New(demo.Options{
		MaxConcurrent:    userConfig.Toasts.MaxConcurrent,
		Overflow:         overflowPolicy,
		DefaultAnchor:    defaultAnchor,
		DefaultAnimation: defaultAnimation,
		FPS:              userConfig.Toasts.FPS,
		ASCIIOnly:        config.UseASCIIOnly,
		NoAnimations:     !config.AnimationsEnabled,
		Logger:           logger,
	})

	p := tea.NewProgram(
		model,
		tea.WithFPS(userConfig.Toasts.FPS),
		tea.WithoutSignalHandler(),
	)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		p.Send(tea.QuitMsg{})
	}()

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("program error: %w", err)
	}

	return nil
}
