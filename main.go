// MemeLord TUI - a terminal chat client for the MemeLord reply service.
//
// Copyright (c) 2025 MemeLord Project
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"flag"
	"fmt"
	"os"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/memelord/memelord-tui/internal/auth"
	"github.com/memelord/memelord-tui/internal/config"
	"github.com/memelord/memelord-tui/internal/memelord"
	"github.com/memelord/memelord-tui/internal/session"
	"github.com/memelord/memelord-tui/internal/storage"
	"github.com/memelord/memelord-tui/internal/ui/chat"
	"github.com/memelord/memelord-tui/internal/ui/login"
	"github.com/memelord/memelord-tui/internal/ui/styles"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
)

// Global program reference for async notifications
var (
	programRef *tea.Program
	programMu  sync.Mutex
)

func sendToProgram(msg tea.Msg) {
	programMu.Lock()
	p := programRef
	programMu.Unlock()
	if p != nil {
		p.Send(msg)
	}
}

func main() {
	var (
		configPath  = flag.String("config", "", "path to config.toml (default: ~/.memelord/config.toml)")
		hashSecret  = flag.String("hash-secret", "", "print the bcrypt hash for a login secret and exit")
		showVersion = flag.Bool("version", false, "print version and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("memelord-tui %s (%s)\n", Version, GitCommit)
		return
	}

	if *hashSecret != "" {
		hash, err := auth.HashSecret(*hashSecret)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(hash)
		return
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := runTUI(cfg, *configPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error running memelord: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFromPath(path)
	}
	return config.Load()
}

func runTUI(cfg *config.Config, configPath string) error {
	stateDir, err := cfg.StateDir()
	if err != nil {
		return fmt.Errorf("failed to resolve state directory: %w", err)
	}
	store, err := storage.NewFileStoreWithDir(stateDir)
	if err != nil {
		return fmt.Errorf("failed to open state directory: %w", err)
	}

	client := memelord.NewClientWithConfig(&memelord.ClientConfig{
		BaseURL: cfg.Server.URL,
		Timeout: cfg.RequestTimeout(),
	})

	sess := session.NewManager(store, client,
		session.WithTypingDelay(cfg.TypingDelay()),
		session.WithNotify(func() {
			sendToProgram(chat.SessionChangedMsg{})
		}),
	)
	sess.Initialize()

	gate := auth.NewGate(cfg.Auth)
	theme := styles.NewTheme(sess.DarkMode())

	m := newRootModel(sess, client, gate, theme)

	p := tea.NewProgram(m, tea.WithAltScreen())

	programMu.Lock()
	programRef = p
	programMu.Unlock()

	// Watch the config file so typing delay changes apply without a
	// restart. Best effort; a watch failure never blocks startup.
	watchPath := configPath
	if watchPath == "" {
		if p, pathErr := config.ConfigPath(); pathErr == nil {
			watchPath = p
		}
	}
	if watchPath != "" {
		watcher, watchErr := config.NewWatcher(watchPath, 500*time.Millisecond, func(updated *config.Config) {
			sendToProgram(chat.ConfigReloadedMsg{TypingDelay: updated.TypingDelay()})
		})
		if watchErr == nil && watcher.Watch() == nil {
			defer watcher.Close()
		}
	}

	_, err = p.Run()
	return err
}

// =============================================================================
// ROOT MODEL
// =============================================================================

// State represents the current application surface.
type State int

const (
	StateLogin State = iota
	StateChat
)

// rootModel switches between the login and chat surfaces and owns the
// theme so a dark-mode flip restyles both.
type rootModel struct {
	state State
	theme *styles.Theme

	sess  *session.Manager
	login login.Model
	chat  chat.Model
}

func newRootModel(sess *session.Manager, client *memelord.Client, gate *auth.Gate, theme *styles.Theme) rootModel {
	state := StateLogin
	if !gate.Enabled() {
		state = StateChat
	}
	return rootModel{
		state: state,
		theme: theme,
		sess:  sess,
		login: login.New(gate, theme),
		chat:  chat.New(sess, client, theme, "."),
	}
}

// Init implements tea.Model.
func (m rootModel) Init() tea.Cmd {
	return tea.Batch(m.login.Init(), m.chat.Init())
}

// Update implements tea.Model.
func (m rootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}

	case login.SuccessMsg:
		m.state = StateChat
		return m, nil

	case tea.WindowSizeMsg:
		// Both surfaces track the window so switching stays seamless.
		var loginCmd, chatCmd tea.Cmd
		m.login, loginCmd = m.login.Update(msg)
		m.chat, chatCmd = m.chat.Update(msg)
		return m, tea.Batch(loginCmd, chatCmd)

	case chat.SessionChangedMsg:
		m.syncTheme()
	}

	var cmd tea.Cmd
	switch m.state {
	case StateLogin:
		m.login, cmd = m.login.Update(msg)
	case StateChat:
		m.chat, cmd = m.chat.Update(msg)
	}
	return m, cmd
}

// syncTheme rebuilds the theme when the persisted preference diverges
// from the one currently rendered.
func (m *rootModel) syncTheme() {
	if m.sess.DarkMode() == m.theme.IsDark {
		return
	}
	m.theme = styles.NewTheme(m.sess.DarkMode())
	m.login.SetTheme(m.theme)
	m.chat.SetTheme(m.theme)
}

// View implements tea.Model.
func (m rootModel) View() string {
	if m.state == StateLogin {
		return m.login.View()
	}
	return m.chat.View()
}
