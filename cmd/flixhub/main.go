package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/flixhub/internal/catalog"
	"github.com/mmcdole/flixhub/internal/config"
	"github.com/mmcdole/flixhub/internal/domain"
	"github.com/mmcdole/flixhub/internal/i18n"
	"github.com/mmcdole/flixhub/internal/log"
	"github.com/mmcdole/flixhub/internal/player"
	"github.com/mmcdole/flixhub/internal/summarize"
	"github.com/mmcdole/flixhub/internal/tmdb"
	"github.com/mmcdole/flixhub/internal/tui"
	"github.com/mmcdole/flixhub/internal/tui/styles"
	"github.com/mmcdole/flixhub/internal/view"
	"github.com/urfave/cli/v2"
	"golang.org/x/term"
)

// Version is set at build time via -ldflags
var Version = "dev"

// clearSpinnerLine clears the spinner line from the terminal
const clearSpinnerLine = "\r                                    \r"

func main() {
	app := &cli.App{
		Name:    "flixhub",
		Usage:   "browse movies and TV shows from the terminal",
		Version: Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to the config file",
				EnvVars: []string{"FLIXHUB_CONFIG"},
			},
			&cli.StringFlag{
				Name:  "lang",
				Usage: "UI language (en-US or pt-BR)",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "log level (DEBUG, INFO, WARN, ERROR)",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	// Load configuration
	loader := config.NewLoader(c.String("config"))
	cfg, err := loader.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if lang := c.String("lang"); lang != "" {
		cfg.UI.Language = lang
	}
	if level := c.String("log-level"); level != "" {
		cfg.Logging.Level = level
	}

	// Setup logger
	logger, err := log.SetupLogger(&cfg.Logging)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger = log.NullLogger()
	}
	slog.SetDefault(logger)

	logger.Info("starting flixhub", "version", Version)

	// Check if configured
	if !cfg.IsConfigured() {
		if err := runSetupFlow(loader, cfg, logger); err != nil {
			return err
		}
	}

	client := tmdb.NewClient(cfg.TMDB.APIKey, logger,
		tmdb.WithBaseURL(cfg.TMDB.BaseURL),
		tmdb.WithTimeout(cfg.TMDB.Timeout),
	)
	svc := catalog.NewService(client, logger)

	opts := []view.Option{view.WithRowLimit(cfg.UI.RowLimit)}
	summarizer := summarize.NewClient(cfg.Summarizer.APIKey, logger,
		summarize.WithBaseURL(cfg.Summarizer.BaseURL),
		summarize.WithModel(cfg.Summarizer.Model),
	)
	if summarizer.Enabled() {
		opts = append(opts, view.WithSummarizer(summarizer))
	}
	renderer := view.NewRenderer(svc, tmdb.NewImages(cfg.TMDB.ImageBaseURL), logger, opts...)

	// Uses the configured browser or auto-detects one
	launcher := player.NewLauncher(cfg.Player.Browser, cfg.Player.Args, logger)
	playback := player.NewService(launcher, logger)

	model := tui.NewModel(tui.Deps{
		Renderer:      renderer,
		Player:        playback,
		Language:      client,
		Logger:        logger,
		Lang:          cfg.UI.Language,
		DefaultServer: domain.Server(cfg.Player.DefaultServer),
	})

	// Run the TUI
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	logger.Info("starting TUI", "language", i18n.Match(cfg.UI.Language))

	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	logger.Info("shutting down")
	return nil
}

// runSetupFlow asks for the TMDB API key until one validates, then saves it
func runSetupFlow(loader *config.Loader, cfg *config.Config, logger *slog.Logger) error {
	fmt.Println()
	fmt.Println("Welcome to FlixHub!")
	fmt.Println()
	fmt.Println("A TMDB API key is required: https://www.themoviedb.org/settings/api")
	fmt.Println()

	secrets := newSecretReader(os.Stdin, os.Stdout)
	for {
		key, err := secrets.Read("Enter your TMDB API key: ")
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
		if key == "" {
			fmt.Println("API key cannot be empty. Please try again.")
			continue
		}

		client := tmdb.NewClient(key, logger, tmdb.WithBaseURL(cfg.TMDB.BaseURL))
		if err := validateWithSpinner(client); err != nil {
			fmt.Printf("✗ Could not verify the key: %v\n", err)
			fmt.Println("Please check the key and try again.")
			fmt.Println()
			continue
		}

		cfg.TMDB.APIKey = key
		break
	}

	if err := loader.Save(cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Println("✓ Configuration saved!")
	fmt.Println()
	return nil
}

// secretReader prompts for keys. Input is read without echo when it comes
// from a terminal, otherwise line by line from one buffered reader.
type secretReader struct {
	fd       int
	terminal bool
	in       *bufio.Reader
	out      io.Writer
}

func newSecretReader(f *os.File, out io.Writer) *secretReader {
	fd := int(f.Fd())
	return &secretReader{
		fd:       fd,
		terminal: term.IsTerminal(fd),
		in:       bufio.NewReader(f),
		out:      out,
	}
}

// Read prints prompt and returns the trimmed line that follows
func (r *secretReader) Read(prompt string) (string, error) {
	fmt.Fprint(r.out, prompt)
	if r.terminal {
		b, err := term.ReadPassword(r.fd)
		fmt.Fprintln(r.out)
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(string(b)), nil
	}

	line, err := r.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// validateWithSpinner checks the key with a visual spinner
func validateWithSpinner(client *tmdb.Client) error {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	resultCh := make(chan error, 1)
	go func() {
		resultCh <- client.Validate(ctx)
	}()

	frame := 0
	fmt.Printf("\r%s Verifying API key...", styles.SpinnerFrames[frame])

	ticker := time.NewTicker(80 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case err := <-resultCh:
			fmt.Print(clearSpinnerLine)
			if errors.Is(err, domain.ErrUnauthorized) {
				return fmt.Errorf("the key was rejected")
			}
			if err != nil {
				return err
			}
			fmt.Println("✓ API key verified")
			return nil

		case <-ticker.C:
			frame++
			fmt.Printf("\r%s Verifying API key...", styles.SpinnerFrames[frame%len(styles.SpinnerFrames)])

		case <-ctx.Done():
			fmt.Print(clearSpinnerLine)
			return fmt.Errorf("verification timed out")
		}
	}
}
