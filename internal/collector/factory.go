package collector

import (
	"fmt"

	"github.com/qepting91/reddit-viewer/internal/config"
	"github.com/qepting91/reddit-viewer/internal/domain"
)

// NewCollector selects the listing source for cfg.Mode.
func NewCollector(cfg *config.Config) (domain.ListingSource, error) {
	switch cfg.Mode {
	case config.ModeAPI:
		return NewAPIClient(
			cfg.RedditClientID,
			cfg.RedditClientSecret,
			cfg.RedditUsername,
			cfg.RedditPassword,
			cfg.UserAgent,
			cfg.RequestTimeout,
			cfg.RequestInterval,
		)
	case config.ModePublic:
		return NewPublicClient(cfg.BaseURL, cfg.UserAgent, cfg.RequestTimeout, cfg.RequestInterval), nil
	case config.ModeMock:
		return NewMockClient(), nil
	default:
		return nil, fmt.Errorf("unknown COLLECTOR_MODE: %s (use 'api', 'public', or 'mock')", cfg.Mode)
	}
}

// NewImageFetcher returns the downloader used for image posts. Images are
// always fetched anonymously, whatever the listing mode.
func NewImageFetcher(cfg *config.Config) domain.ImageFetcher {
	return NewPublicClient(cfg.BaseURL, cfg.UserAgent, cfg.RequestTimeout, cfg.RequestInterval)
}
