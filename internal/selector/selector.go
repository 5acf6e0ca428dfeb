// Package selector holds the candidate policy: which posts of a listing may
// be shown, and the uniform random draw among them.
package selector

import (
	"math/rand"
	"strings"

	"github.com/qepting91/reddit-viewer/internal/domain"
)

var imageExtensions = []string{".jpg", ".jpeg", ".png", ".gif"}

// IsImageURL reports whether url ends in a known image extension, ignoring case.
func IsImageURL(url string) bool {
	lower := strings.ToLower(url)
	for _, ext := range imageExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// Candidates filters posts down to the ones eligible for display.
// Stickied and adult posts are always dropped. In text-only mode posts
// without a body, or linking to an image, are dropped too.
func Candidates(posts []domain.Post, textOnly bool) []domain.Post {
	candidates := make([]domain.Post, 0, len(posts))
	for _, p := range posts {
		if p.Stickied || p.Over18 {
			continue
		}
		if textOnly && (strings.TrimSpace(p.Selftext) == "" || IsImageURL(p.URL)) {
			continue
		}
		candidates = append(candidates, p)
	}
	return candidates
}

// Pick returns one candidate chosen uniformly at random, or false when
// nothing in posts is eligible.
func Pick(posts []domain.Post, textOnly bool, rng *rand.Rand) (domain.Post, bool) {
	candidates := Candidates(posts, textOnly)
	if len(candidates) == 0 {
		return domain.Post{}, false
	}
	return candidates[rng.Intn(len(candidates))], true
}
