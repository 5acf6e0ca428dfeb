package collector

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const hotListing = `{
  "kind": "Listing",
  "data": {
    "children": [
      {"kind": "t3", "data": {
        "id": "a1", "title": "Pinned rules", "selftext": "read me",
        "url": "https://www.reddit.com/r/test/comments/a1/", "permalink": "/r/test/comments/a1/pinned_rules/",
        "subreddit": "test", "author": "mod", "score": 5, "num_comments": 1,
        "created_utc": 1700000000, "stickied": true, "over_18": false}},
      {"kind": "t3", "data": {
        "id": "b2", "title": "A picture", "selftext": "",
        "url": "https://i.redd.it/b2.PNG", "permalink": "/r/test/comments/b2/a_picture/",
        "subreddit": "test", "author": "someone", "score": 99, "num_comments": 12,
        "created_utc": 1700000100, "stickied": false, "over_18": true}}
    ]
  }
}`

func TestPublicClient_FetchHotPosts(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/r/test/hot.json", r.URL.Path)
		assert.Equal(t, "100", r.URL.Query().Get("limit"))
		assert.Equal(t, "test-agent/1.0", r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(hotListing))
	}))
	defer server.Close()

	pc := NewPublicClient(server.URL, "test-agent/1.0", time.Second, 0)
	posts, err := pc.FetchHotPosts(context.Background(), "test", 100)
	require.NoError(t, err)
	require.Len(t, posts, 2)

	assert.Equal(t, "a1", posts[0].ID)
	assert.Equal(t, "Pinned rules", posts[0].Title)
	assert.Equal(t, "read me", posts[0].Selftext)
	assert.Equal(t, "/r/test/comments/a1/pinned_rules/", posts[0].Permalink)
	assert.True(t, posts[0].Stickied)
	assert.False(t, posts[0].Over18)

	assert.Equal(t, "https://i.redd.it/b2.PNG", posts[1].URL)
	assert.Equal(t, 12, posts[1].CommentCount)
	assert.True(t, posts[1].Over18)
}

func TestPublicClient_FetchHotPosts_Failures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		status  int
	}{
		{
			name: "bad status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusTooManyRequests)
			},
			status: http.StatusTooManyRequests,
		},
		{
			name: "malformed json",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"data": {"children": [`))
			},
		},
		{
			name: "timeout",
			handler: func(w http.ResponseWriter, r *http.Request) {
				time.Sleep(200 * time.Millisecond)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			pc := NewPublicClient(server.URL, "ua", 50*time.Millisecond, 0)
			posts, err := pc.FetchHotPosts(context.Background(), "test", 10)
			assert.Nil(t, posts)

			var fe *FetchError
			require.True(t, errors.As(err, &fe), "expected FetchError, got %v", err)
			assert.Equal(t, "test", fe.Forum)
			assert.Equal(t, tt.status, fe.StatusCode)
		})
	}
}

func TestPublicClient_FetchHotPosts_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	pc := NewPublicClient(url, "ua", time.Second, 0)
	_, err := pc.FetchHotPosts(context.Background(), "test", 10)

	var fe *FetchError
	assert.True(t, errors.As(err, &fe))
}

func TestPublicClient_CanceledContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(hotListing))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	pc := NewPublicClient(server.URL, "ua", time.Second, 0)
	_, err := pc.FetchHotPosts(ctx, "test", 10)

	assert.ErrorIs(t, err, context.Canceled)
	var fe *FetchError
	assert.False(t, errors.As(err, &fe))
}

func TestPublicClient_FetchImage(t *testing.T) {
	payload := []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "ua", r.Header.Get("User-Agent"))
		if r.URL.Path == "/missing.png" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write(payload)
	}))
	defer server.Close()

	pc := NewPublicClient(server.URL, "ua", time.Second, 0)

	t.Run("ok", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, pc.FetchImage(context.Background(), server.URL+"/img.png", &buf))
		assert.Equal(t, payload, buf.Bytes())
	})

	t.Run("not found", func(t *testing.T) {
		var buf bytes.Buffer
		err := pc.FetchImage(context.Background(), server.URL+"/missing.png", &buf)

		var fe *FetchError
		require.True(t, errors.As(err, &fe))
		assert.Equal(t, http.StatusNotFound, fe.StatusCode)
		assert.Empty(t, fe.Forum)
		assert.Zero(t, buf.Len())
	})
}

func TestPublicClient_Pacing(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":{"children":[]}}`))
	}))
	defer server.Close()

	pc := NewPublicClient(server.URL, "ua", time.Second, 100*time.Millisecond)

	start := time.Now()
	for i := 0; i < 2; i++ {
		_, err := pc.FetchHotPosts(context.Background(), "test", 1)
		require.NoError(t, err)
	}
	assert.GreaterOrEqual(t, time.Since(start), 90*time.Millisecond)
}
