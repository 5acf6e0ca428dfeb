package collector

import (
	"fmt"
	"net/http"
)

// FetchError is returned for every expected failure of a listing or image
// request: transport errors, timeouts, non-200 statuses and undecodable
// bodies. Callers treat it as "nothing available here" and move on.
type FetchError struct {
	Forum      string // empty for image downloads
	URL        string
	StatusCode int // 0 when no response was received
	Err        error
}

func (e *FetchError) Error() string {
	target := e.URL
	if e.Forum != "" {
		target = "r/" + e.Forum
	}
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s: HTTP %d %s", target, e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("fetch %s: %v", target, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
