package collector

import (
	"context"
	"fmt"
	"time"

	"github.com/qepting91/reddit-viewer/internal/domain"
)

// MockClient implements domain.ListingSource with canned data, for offline runs.
type MockClient struct{}

func NewMockClient() *MockClient {
	return &MockClient{}
}

// FetchHotPosts returns limit posts cycling through the shapes a real hot
// listing contains: a pinned post, an adult post, image links and text posts.
func (mc *MockClient) FetchHotPosts(ctx context.Context, sub string, limit int) ([]domain.Post, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	now := float64(time.Now().Unix())
	posts := make([]domain.Post, 0, limit)
	for i := 0; i < limit; i++ {
		id := fmt.Sprintf("mock_%s_%d", sub, i)
		p := domain.Post{
			ID:         id,
			Title:      fmt.Sprintf("[%s] Simulated hot post #%d", sub, i),
			Subreddit:  sub,
			Author:     "simulated_user",
			Permalink:  fmt.Sprintf("/r/%s/comments/%s/simulated_hot_post/", sub, id),
			URL:        fmt.Sprintf("https://www.reddit.com/r/%s/comments/%s/", sub, id),
			Score:      1000 - i,
			CreatedUTC: now,
		}
		switch i % 4 {
		case 0:
			p.Stickied = i == 0
			p.Selftext = "Welcome to the weekly thread. Please read the rules before posting."
		case 1:
			p.Over18 = i == 1
			p.Selftext = "Today I spent an hour untangling a kite. The kite won. I learned patience. " +
				"Then I learned that patience is not enough. Tomorrow I will buy scissors."
		case 2:
			p.URL = fmt.Sprintf("https://i.example.invalid/%s.png", id)
		case 3:
			p.Selftext = "Does anyone else read the last page of a book first? It removes the anxiety."
		}
		posts = append(posts, p)
	}
	return posts, nil
}
