package player

import (
	"log/slog"

	"github.com/mmcdole/flixhub/internal/domain"
)

// Service turns play targets into a browser launch
type Service struct {
	launcher domain.URLLauncher
	logger   *slog.Logger
}

// NewService creates a new playback service
func NewService(launcher domain.URLLauncher, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		launcher: launcher,
		logger:   logger.With("component", "player"),
	}
}

// Play opens the embed page of target and returns its URL
func (s *Service) Play(target domain.PlayTarget) (string, error) {
	url, err := EmbedURL(target)
	if err != nil {
		return "", err
	}

	s.logger.Info("starting playback",
		"id", target.Media.ID,
		"type", target.Media.Type,
		"server", int(target.Server),
		"season", target.Season,
		"episode", target.Episode)

	if err := s.launcher.Launch(url); err != nil {
		s.logger.Error("failed to launch player", "url", url, "error", err)
		return url, err
	}
	return url, nil
}
