package storage

import (
	"encoding/json"
	"io"

	"github.com/qepting91/reddit-viewer/internal/domain"
)

// Record is the machine-readable form of a presented post.
type Record struct {
	Forum   string `json:"forum"`
	Link    string `json:"link"`
	Summary string `json:"summary,omitempty"`
	domain.Post
}

// WriterService writes records as NDJSON, one object per line.
type WriterService struct {
	enc *json.Encoder
}

func NewWriterService(w io.Writer) *WriterService {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return &WriterService{enc: enc}
}

func (w *WriterService) Write(rec Record) error {
	return w.enc.Encode(rec)
}
