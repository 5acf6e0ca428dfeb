// Package summarize produces extractive summaries with TextRank.
package summarize

import (
	"regexp"
	"strings"

	textrank "github.com/DavidBelicza/TextRank/v2"
)

var sentencePattern = regexp.MustCompile(`[^.!?]+[.!?]*`)

// TextRank ranks sentences over their shared-word graph and keeps the
// heaviest ones. The zero value is ready to use.
type TextRank struct{}

func NewTextRank() *TextRank {
	return &TextRank{}
}

// Summarize returns at most n sentences of text joined by newlines, in rank
// order. When the graph ranks nothing (no two sentences share a word) the
// leading n sentences are used instead.
func (s *TextRank) Summarize(text string, n int) string {
	if n <= 0 || strings.TrimSpace(text) == "" {
		return ""
	}

	tr := textrank.NewTextRank()
	tr.Populate(text, textrank.NewDefaultLanguage(), textrank.NewDefaultRule())
	tr.Ranking(textrank.NewDefaultAlgorithm())

	var lines []string
	for _, sentence := range textrank.FindSentencesByRelationWeight(tr, n) {
		if line := collapse(sentence.Value); line != "" {
			lines = append(lines, line)
		}
		if len(lines) == n {
			break
		}
	}
	if len(lines) == 0 {
		lines = leadSentences(text, n)
	}
	return strings.Join(lines, "\n")
}

func leadSentences(text string, n int) []string {
	var lines []string
	for _, raw := range sentencePattern.FindAllString(text, -1) {
		if line := collapse(raw); line != "" {
			lines = append(lines, line)
		}
		if len(lines) == n {
			break
		}
	}
	return lines
}

// collapse folds runs of whitespace, including newlines, into single spaces.
func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
