package domain

import "errors"

// Sentinel errors for catalog operations
var (
	// ErrNotFound indicates the requested catalog entry does not exist
	ErrNotFound = errors.New("catalog entry not found")

	// ErrCatalogUnreachable indicates the catalog API could not be reached
	ErrCatalogUnreachable = errors.New("catalog is unreachable")

	// ErrUnauthorized indicates the API key was rejected
	ErrUnauthorized = errors.New("api key is invalid")

	// ErrInvalidMediaType indicates a media type other than movie or tv
	ErrInvalidMediaType = errors.New("invalid media type")

	// ErrSummarizerDisabled indicates no summarizer credentials are configured
	ErrSummarizerDisabled = errors.New("summarizer is not configured")
)
