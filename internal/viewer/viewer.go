// Package viewer drives a single run: walk the shuffled forum catalogue until
// one forum yields an eligible post, then present it.
package viewer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/qepting91/reddit-viewer/internal/collector"
	"github.com/qepting91/reddit-viewer/internal/domain"
	"github.com/qepting91/reddit-viewer/internal/present"
	"github.com/qepting91/reddit-viewer/internal/selector"
)

// Presenter is the output side of a run.
type Presenter interface {
	Present(ctx context.Context, forum string, post domain.Post, opts present.Options) error
	NoneFound() error
}

// Result describes how a run ended.
type Result struct {
	Found bool
	Forum string
	Post  domain.Post
	Tried []string // forums attempted, in order
}

// Viewer owns the collaborators of a run.
type Viewer struct {
	source    domain.ListingSource
	presenter Presenter
	rng       *rand.Rand
	limit     int
	logger    *slog.Logger
}

func New(source domain.ListingSource, presenter Presenter, rng *rand.Rand, limit int, logger *slog.Logger) *Viewer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Viewer{
		source:    source,
		presenter: presenter,
		rng:       rng,
		limit:     limit,
		logger:    logger,
	}
}

// Run tries forums in a random order and presents the first eligible post.
// A forum whose fetch fails, or whose listing has no candidate, is dropped
// for the rest of the run. Running out of forums is not an error.
func (v *Viewer) Run(ctx context.Context, forums []string, opts present.Options) (Result, error) {
	order := append([]string(nil), forums...)
	v.rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })

	var res Result
	for _, forum := range order {
		res.Tried = append(res.Tried, forum)

		posts, err := v.source.FetchHotPosts(ctx, forum, v.limit)
		if err != nil {
			var fe *collector.FetchError
			if errors.As(err, &fe) {
				v.logger.Debug("skipping forum, fetch failed", "forum", forum, "error", err)
				continue
			}
			return res, fmt.Errorf("fetch r/%s: %w", forum, err)
		}

		post, ok := selector.Pick(posts, opts.TextOnly, v.rng)
		if !ok {
			v.logger.Debug("skipping forum, no candidates", "forum", forum, "posts", len(posts))
			continue
		}

		res.Found, res.Forum, res.Post = true, forum, post
		if err := v.presenter.Present(ctx, forum, post, opts); err != nil {
			return res, fmt.Errorf("present post: %w", err)
		}
		return res, nil
	}

	v.logger.Debug("no suitable post", "tried", len(res.Tried))
	if err := v.presenter.NoneFound(); err != nil {
		return res, fmt.Errorf("present result: %w", err)
	}
	return res, nil
}
