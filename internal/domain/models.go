package domain

import (
	"context"
	"io"
)

// Target is one entry of the forum catalogue.
type Target struct {
	Subreddit string `json:"subreddit"`
}

// Post is the subset of a hot-listing entry the viewer cares about.
type Post struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	Selftext     string  `json:"selftext"`
	URL          string  `json:"url"`
	Permalink    string  `json:"permalink"`
	Subreddit    string  `json:"subreddit"`
	Author       string  `json:"author"`
	Score        int     `json:"score"`
	CommentCount int     `json:"comment_count"`
	CreatedUTC   float64 `json:"created_utc"`
	Stickied     bool    `json:"stickied"`
	Over18       bool    `json:"over_18"`
}

// ListingSource fetches the hot listing of one forum.
type ListingSource interface {
	FetchHotPosts(ctx context.Context, subreddit string, limit int) ([]Post, error)
}

// ImageFetcher streams the bytes behind an image URL into dst.
type ImageFetcher interface {
	FetchImage(ctx context.Context, url string, dst io.Writer) error
}

// ImageRenderer draws an image file on the terminal.
type ImageRenderer interface {
	// Available reports whether rendering is possible on this host.
	Available() bool
	Render(ctx context.Context, w io.Writer, path string) error
}

// TextSummarizer produces an extractive summary of at most n sentences.
type TextSummarizer interface {
	Summarize(text string, n int) string
}
