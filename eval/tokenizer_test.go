package eval

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		stripPunct bool
		want       []string
	}{
		{"empty string", "", true, nil},
		{"whitespace only", "  \t\n ", true, nil},
		{"case folding", "Sharp PAIN", true, []string{"sharp", "pain"}},
		{"duplicates collapse", "pain pain pain", true, []string{"pain"}},
		{"edge punctuation stripped", "chest. (pain!)", true, []string{"chest", "pain"}},
		{"interior punctuation kept", "didn't low-key", true, []string{"didn't", "low-key"}},
		{"punctuation kept when disabled", "chest.", false, []string{"chest."}},
		{"pure punctuation token dropped", "pain ...", true, []string{"pain"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tokenize(tc.input, tc.stripPunct)
			assert.Len(t, got, len(tc.want))
			for _, w := range tc.want {
				assert.Contains(t, got, w)
			}
		})
	}
}

func TestTokenizeDeterministic(t *testing.T) {
	a := tokenize("Sharp pain, in my chest.", true)
	b := tokenize("Sharp pain, in my chest.", true)
	assert.Equal(t, a, b)
}

func TestJaccard(t *testing.T) {
	setOf := func(words ...string) tokenSet {
		s := make(tokenSet)
		for _, w := range words {
			s[w] = struct{}{}
		}
		return s
	}

	t.Run("identical non-empty sets score 1.0", func(t *testing.T) {
		a := setOf("pain", "in", "my", "chest")
		assert.Equal(t, 1.0, jaccard(a, a))
	})

	t.Run("both empty score 0.0", func(t *testing.T) {
		assert.Equal(t, 0.0, jaccard(tokenSet{}, tokenSet{}))
	})

	t.Run("one empty scores 0.0", func(t *testing.T) {
		assert.Equal(t, 0.0, jaccard(setOf("pain"), tokenSet{}))
	})

	t.Run("disjoint sets score 0.0", func(t *testing.T) {
		assert.Equal(t, 0.0, jaccard(setOf("pain"), setOf("calm")))
	})

	t.Run("partial overlap", func(t *testing.T) {
		// {pain,in,my,chest} vs {sharp,pain,in,my,chest} = 4/5
		a := tokenize("pain in my chest", true)
		b := tokenize("sharp pain in my chest", true)
		assert.InDelta(t, 0.8, jaccard(a, b), 1e-9)
	})

	t.Run("symmetric", func(t *testing.T) {
		a := setOf("stomach", "hurts")
		b := setOf("stomach", "hurts", "badly")
		assert.Equal(t, jaccard(a, b), jaccard(b, a))
	})
}
