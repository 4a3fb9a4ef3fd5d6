// Package player builds embed-provider URLs and opens them in a browser.
package player

import (
	"fmt"

	"github.com/mmcdole/flixhub/internal/domain"
)

// Embed provider hosts, one per server
var providers = map[domain.Server]string{
	domain.Server1: "https://vidsrc.to",
	domain.Server2: "https://vidsrc.me",
}

// EmbedURL returns the player URL for target. Shows without an explicit
// season or episode play S1E1.
func EmbedURL(target domain.PlayTarget) (string, error) {
	host, ok := providers[target.Server]
	if !ok {
		return "", fmt.Errorf("unknown server %d", target.Server)
	}
	if target.Media.ID <= 0 {
		return "", fmt.Errorf("invalid media id %d", target.Media.ID)
	}

	switch target.Media.Type {
	case domain.MediaTypeMovie:
		return fmt.Sprintf("%s/embed/movie/%d", host, target.Media.ID), nil
	case domain.MediaTypeTV:
		season, episode := target.Season, target.Episode
		if season < 1 {
			season = 1
		}
		if episode < 1 {
			episode = 1
		}
		return fmt.Sprintf("%s/embed/tv/%d/%d/%d", host, target.Media.ID, season, episode), nil
	default:
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidMediaType, target.Media.Type)
	}
}
