package tmdb

import "strings"

// DefaultImageBaseURL is the TMDB image CDN root
const DefaultImageBaseURL = "https://image.tmdb.org/t/p"

// Image size tokens
const (
	SizeThumb    = "w200"
	SizeSimilar  = "w300"
	SizePoster   = "w500"
	SizeOriginal = "original"
)

// Images builds CDN URLs for image paths
type Images struct {
	BaseURL string
}

// NewImages returns an image URL builder; an empty base uses the TMDB CDN
func NewImages(base string) Images {
	if base == "" {
		base = DefaultImageBaseURL
	}
	return Images{BaseURL: strings.TrimRight(base, "/")}
}

// URL returns the image URL for path at size, or "" when path is empty
func (i Images) URL(size, path string) string {
	if path == "" {
		return ""
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return i.BaseURL + "/" + size + path
}
