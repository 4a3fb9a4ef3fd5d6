package player

import (
	"fmt"
	"log/slog"
	"os/exec"
	"runtime"
	"strings"
)

// Launcher opens embed URLs in the configured browser or system default
type Launcher struct {
	command string   // configured browser command, empty for auto-detect
	args    []string // additional arguments for the browser
	logger  *slog.Logger

	goos     string
	lookPath func(string) (string, error)
	start    func(name string, args ...string) error
}

// candidateBrowsers defines the preferred browser order for each platform
var candidateBrowsers = map[string][]string{
	"darwin":  {},
	"linux":   {"firefox", "google-chrome", "chromium", "chromium-browser", "brave-browser"},
	"windows": {},
}

// NewLauncher creates a new Launcher
func NewLauncher(command string, args []string, logger *slog.Logger) *Launcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Launcher{
		command:  strings.TrimSpace(command),
		args:     args,
		logger:   logger.With("component", "launcher"),
		goos:     runtime.GOOS,
		lookPath: exec.LookPath,
		start:    startDetached,
	}
}

func startDetached(name string, args ...string) error {
	return exec.Command(name, args...).Start()
}

// Launch opens url in a browser
func (l *Launcher) Launch(url string) error {
	// Tier 1: User configured a specific browser
	if l.command != "" {
		l.logger.Info("using configured browser", "command", l.command, "url", url)
		return l.launchConfigured(url)
	}

	// Tier 2: Try candidate chain
	if name, err := l.detectAndLaunch(url); err == nil {
		l.logger.Info("launched with detected browser", "browser", name)
		return nil
	}

	// Tier 3: Fall back to system default (open/xdg-open/start)
	return l.launchDefault(url)
}

func (l *Launcher) launchConfigured(url string) error {
	if l.goos == "darwin" {
		if _, err := l.lookPath(l.command); err != nil {
			// GUI app name rather than a binary on PATH
			args := []string{"-a", l.command}
			if len(l.args) > 0 {
				args = append(args, "--args")
				args = append(args, l.args...)
			}
			args = append(args, url)
			return l.start("open", args...)
		}
	}

	args := append(append([]string{}, l.args...), url)
	if err := l.start(l.command, args...); err != nil {
		return fmt.Errorf("launch %s: %w", l.command, err)
	}
	return nil
}

func (l *Launcher) detectAndLaunch(url string) (string, error) {
	for _, name := range candidateBrowsers[l.goos] {
		if _, err := l.lookPath(name); err != nil {
			l.logger.Debug("browser not available", "browser", name)
			continue
		}
		if err := l.start(name, url); err != nil {
			l.logger.Debug("browser failed to start", "browser", name, "error", err)
			continue
		}
		return name, nil
	}
	return "", fmt.Errorf("no candidate browsers found")
}

// launchDefault opens the URL using the system default handler
func (l *Launcher) launchDefault(url string) error {
	var err error
	switch l.goos {
	case "darwin":
		err = l.start("open", url)
	case "windows":
		err = l.start("cmd", "/c", "start", "", url)
	default:
		err = l.start("xdg-open", url)
	}

	l.logger.Info("launching with system default", "os", l.goos, "url", url)
	if err != nil {
		return fmt.Errorf("open %s: %w", url, err)
	}
	return nil
}
