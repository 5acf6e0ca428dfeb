package collector

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/loganintech/go-reddit/v2/reddit"
	"github.com/qepting91/reddit-viewer/internal/domain"
	"golang.org/x/time/rate"
)

// APIClient reads hot listings through the authenticated Reddit API.
type APIClient struct {
	client  *reddit.Client
	limiter *rate.Limiter
}

// NewAPIClient authenticates with the password grant. Extra options are
// applied after the defaults, e.g. reddit.WithBaseURL.
func NewAPIClient(id, secret, user, pass, userAgent string, timeout, interval time.Duration, extra ...reddit.Opt) (*APIClient, error) {
	creds := reddit.Credentials{ID: id, Secret: secret, Username: user, Password: pass}

	opts := append([]reddit.Opt{
		reddit.WithUserAgent(userAgent),
		reddit.WithHTTPClient(&http.Client{Timeout: timeout}),
	}, extra...)
	client, err := reddit.NewClient(creds, opts...)
	if err != nil {
		return nil, err
	}

	return &APIClient{client: client, limiter: newLimiter(interval)}, nil
}

func (ac *APIClient) FetchHotPosts(ctx context.Context, sub string, limit int) ([]domain.Post, error) {
	if err := ac.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	posts, _, err := ac.client.Subreddit.HotPosts(ctx, sub, &reddit.ListOptions{Limit: limit})
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		fe := &FetchError{Forum: sub, Err: err}
		var apiErr *reddit.ErrorResponse
		if errors.As(err, &apiErr) && apiErr.Response != nil {
			fe.StatusCode = apiErr.Response.StatusCode
		}
		return nil, fe
	}

	result := make([]domain.Post, 0, len(posts))
	for _, p := range posts {
		result = append(result, fromAPIPost(p))
	}
	return result, nil
}

func fromAPIPost(p *reddit.Post) domain.Post {
	post := domain.Post{
		ID:           p.ID,
		Title:        p.Title,
		Selftext:     p.Body,
		URL:          p.URL,
		Permalink:    p.Permalink,
		Subreddit:    p.SubredditName,
		Author:       p.Author,
		Score:        p.Score,
		CommentCount: p.NumberOfComments,
		Stickied:     p.Stickied,
		Over18:       p.NSFW,
	}
	if p.Created != nil {
		post.CreatedUTC = float64(p.Created.Time.Unix())
	}
	return post
}
