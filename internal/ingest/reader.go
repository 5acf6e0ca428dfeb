package ingest

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/qepting91/reddit-viewer/internal/domain"
	"gopkg.in/yaml.v3"
)

// Regex for valid subreddit names
var subNameRegex = regexp.MustCompile(`^[A-Za-z0-9_]{3,21}$`)

// DefaultForums is the catalogue used when no file is configured.
var DefaultForums = []string{
	"AskReddit",
	"NoStupidQuestions",
	"TIFU",
	"TrueOffMyChest",
	"ChangeMyView",
	"relationships",
	"Showerthoughts",
	"LifeProTips",
	"AskHistorians",
	"AskScience",
	"CasualConversation",
}

// LoadForums returns the forum catalogue. An empty path yields a copy of
// DefaultForums; otherwise the file is read as YAML (.yaml/.yml) or CSV.
func LoadForums(path string) ([]string, error) {
	if path == "" {
		return append([]string(nil), DefaultForums...), nil
	}

	var (
		targets []domain.Target
		err     error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		targets, err = LoadTargetsYAML(path)
	default:
		targets, err = LoadTargets(path)
	}
	if err != nil {
		return nil, err
	}

	forums := make([]string, 0, len(targets))
	seen := make(map[string]bool, len(targets))
	for _, t := range targets {
		key := strings.ToLower(t.Subreddit)
		if seen[key] {
			continue
		}
		seen[key] = true
		forums = append(forums, t.Subreddit)
	}
	if len(forums) == 0 {
		return nil, fmt.Errorf("no valid forums in %s", path)
	}
	return forums, nil
}

// LoadTargets reads a CSV catalogue. The first row is a header; the first
// column of every following row is a forum name. Invalid rows are skipped.
func LoadTargets(path string) ([]domain.Target, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	// Wrap in BOM stripper
	r := csv.NewReader(stripBOM(f))
	r.FieldsPerRecord = -1

	var targets []domain.Target
	line := 0
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		line++
		if line == 1 || err != nil {
			continue // Skip header, even a malformed one
		}
		if len(record) == 0 {
			continue
		}

		// Validation (Fail-Soft)
		sub := normalize(record[0])
		if !subNameRegex.MatchString(sub) {
			continue
		}
		targets = append(targets, domain.Target{Subreddit: sub})
	}
	return targets, nil
}

type yamlCatalogue struct {
	Forums []string `yaml:"forums"`
}

// LoadTargetsYAML reads a YAML catalogue of the form `forums: [a, b, c]`.
func LoadTargetsYAML(path string) ([]domain.Target, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cat yamlCatalogue
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	var targets []domain.Target
	for _, name := range cat.Forums {
		sub := normalize(name)
		if !subNameRegex.MatchString(sub) {
			continue
		}
		targets = append(targets, domain.Target{Subreddit: sub})
	}
	return targets, nil
}

// normalize accepts "AskReddit", " r/AskReddit " and "/r/AskReddit".
func normalize(name string) string {
	name = strings.TrimSpace(name)
	name = strings.TrimPrefix(name, "/")
	name = strings.TrimPrefix(name, "r/")
	return name
}

func stripBOM(r io.Reader) io.Reader {
	br := bufio.NewReader(r)
	rdr, _, err := br.ReadRune()
	if err != nil {
		return br
	}
	if rdr != '\uFEFF' {
		br.UnreadRune()
	}
	return br
}
