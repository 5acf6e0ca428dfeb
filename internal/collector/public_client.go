package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/qepting91/reddit-viewer/internal/domain"
	"golang.org/x/time/rate"
)

// PublicClient reads the anonymous JSON listings and downloads images.
type PublicClient struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	userAgent  string
	baseURL    string
}

type redditJSONResponse struct {
	Data struct {
		Children []struct {
			Data struct {
				ID          string  `json:"id"`
				Title       string  `json:"title"`
				Selftext    string  `json:"selftext"`
				URL         string  `json:"url"`
				Permalink   string  `json:"permalink"`
				Subreddit   string  `json:"subreddit"`
				Author      string  `json:"author"`
				Score       int     `json:"score"`
				NumComments int     `json:"num_comments"`
				CreatedUTC  float64 `json:"created_utc"`
				Stickied    bool    `json:"stickied"`
				Over18      bool    `json:"over_18"`
			} `json:"data"`
		} `json:"children"`
	} `json:"data"`
}

// NewPublicClient builds a client for baseURL (e.g. https://www.reddit.com).
// A zero interval disables request pacing.
func NewPublicClient(baseURL, userAgent string, timeout, interval time.Duration) *PublicClient {
	return &PublicClient{
		httpClient: &http.Client{Timeout: timeout},
		limiter:    newLimiter(interval),
		userAgent:  userAgent,
		baseURL:    baseURL,
	}
}

func newLimiter(interval time.Duration) *rate.Limiter {
	if interval <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	return rate.NewLimiter(rate.Every(interval), 1)
}

// FetchHotPosts returns up to limit posts from the forum's hot listing.
func (pc *PublicClient) FetchHotPosts(ctx context.Context, sub string, limit int) ([]domain.Post, error) {
	url := fmt.Sprintf("%s/r/%s/hot.json?limit=%d", pc.baseURL, sub, limit)

	resp, err := pc.get(ctx, url)
	if err != nil {
		return nil, pc.wrap(ctx, sub, url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &FetchError{Forum: sub, URL: url, StatusCode: resp.StatusCode}
	}

	var rResp redditJSONResponse
	if err := json.NewDecoder(resp.Body).Decode(&rResp); err != nil {
		return nil, pc.wrap(ctx, sub, url, fmt.Errorf("decode listing: %w", err))
	}

	posts := make([]domain.Post, 0, len(rResp.Data.Children))
	for _, child := range rResp.Data.Children {
		d := child.Data
		posts = append(posts, domain.Post{
			ID:           d.ID,
			Title:        d.Title,
			Selftext:     d.Selftext,
			URL:          d.URL,
			Permalink:    d.Permalink,
			Subreddit:    d.Subreddit,
			Author:       d.Author,
			Score:        d.Score,
			CommentCount: d.NumComments,
			CreatedUTC:   d.CreatedUTC,
			Stickied:     d.Stickied,
			Over18:       d.Over18,
		})
	}
	return posts, nil
}

// FetchImage streams the body of url into dst.
func (pc *PublicClient) FetchImage(ctx context.Context, url string, dst io.Writer) error {
	resp, err := pc.get(ctx, url)
	if err != nil {
		return pc.wrap(ctx, "", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &FetchError{URL: url, StatusCode: resp.StatusCode}
	}

	if _, err := io.Copy(dst, resp.Body); err != nil {
		return pc.wrap(ctx, "", url, fmt.Errorf("read image: %w", err))
	}
	return nil
}

func (pc *PublicClient) get(ctx context.Context, url string) (*http.Response, error) {
	if err := pc.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", pc.userAgent)

	return pc.httpClient.Do(req)
}

// wrap turns err into a FetchError unless the caller's context is done,
// in which case the context error is returned as is.
func (pc *PublicClient) wrap(ctx context.Context, sub, url string, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	return &FetchError{Forum: sub, URL: url, Err: err}
}
