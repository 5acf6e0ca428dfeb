package summarize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const longBody = `My neighbour keeps a garden full of tomatoes.
Every summer the tomatoes grow taller than the fence between our houses.
Last week a storm knocked the fence down onto the tomatoes.
The neighbour blamed me for the fence, even though the storm broke it.
I offered to rebuild the fence and replant the tomatoes.
Now we share the garden and the tomatoes, and the fence is gone for good.
We also share a dog, but that is another story about the garden.`

func TestTextRank_Summarize(t *testing.T) {
	s := NewTextRank()

	summary := s.Summarize(longBody, 5)

	assert.NotEmpty(t, summary)
	assert.NotEqual(t, longBody, summary)
	lines := strings.Split(summary, "\n")
	assert.LessOrEqual(t, len(lines), 5)
	for _, line := range lines {
		assert.NotEmpty(t, strings.TrimSpace(line))
	}
}

func TestTextRank_SummarizeEmpty(t *testing.T) {
	s := NewTextRank()
	assert.Empty(t, s.Summarize("", 5))
	assert.Empty(t, s.Summarize("   \n ", 5))
	assert.Empty(t, s.Summarize(longBody, 0))
}

func TestLeadSentences(t *testing.T) {
	text := "One fish.  Two\nfish! Red fish? Blue fish. Trailing words"

	assert.Equal(t, []string{"One fish.", "Two fish!", "Red fish?"}, leadSentences(text, 3))
	assert.Equal(t,
		[]string{"One fish.", "Two fish!", "Red fish?", "Blue fish.", "Trailing words"},
		leadSentences(text, 10))
}

func TestCollapse(t *testing.T) {
	assert.Equal(t, "a b c", collapse("  a\n\tb   c \n"))
	assert.Equal(t, "", collapse(" \n "))
}
