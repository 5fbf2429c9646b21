package dictionary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitList(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "comma separated values are trimmed",
			input: "jog, sprint ,dash",
			want:  []string{"jog", "sprint", "dash"},
		},
		{
			name:  "empty fragments are dropped",
			input: " , jog,, ,sprint,",
			want:  []string{"jog", "sprint"},
		},
		{
			name:  "empty input",
			input: "",
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitList(tt.input))
		})
	}
}

func TestEntry_CategoryOrDefault(t *testing.T) {
	tests := []struct {
		name     string
		category string
		want     string
	}{
		{name: "set category", category: "verbs", want: "verbs"},
		{name: "empty category", category: "", want: UncategorizedCategory},
		{name: "blank category", category: "  ", want: UncategorizedCategory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Entry{Category: tt.category}.CategoryOrDefault())
		})
	}
}

func TestDictionary_AddGetDelete(t *testing.T) {
	dict := NewDictionary()
	require.NoError(t, dict.Add("run", Entry{Meaning: "to move fast", Examples: []string{"I run every day"}}))
	require.NoError(t, dict.Add("walk", Entry{Meaning: "to move slowly"}))

	assert.ErrorIs(t, dict.Add("run", Entry{Meaning: "other"}), ErrDuplicateWord)
	assert.Equal(t, 2, dict.Len())

	got, ok := dict.Get("run")
	require.True(t, ok)
	assert.Equal(t, "to move fast", got.Meaning)
	assert.Equal(t, []string{"I run every day"}, got.Examples)

	got.Examples[0] = "changed"
	again, _ := dict.Get("run")
	assert.Equal(t, "I run every day", again.Examples[0], "Get returns a copy")

	_, ok = dict.Get("Run")
	assert.False(t, ok, "lookup is case-sensitive")

	assert.ErrorIs(t, dict.Delete("missing"), ErrNotFound)
	require.NoError(t, dict.Delete("run"))
	assert.False(t, dict.Has("run"))
	assert.Equal(t, []string{"walk"}, dict.Words())
}

func TestDictionary_Update(t *testing.T) {
	dict := NewDictionary()
	require.NoError(t, dict.Add("a", Entry{Meaning: "first"}))
	require.NoError(t, dict.Add("b", Entry{Meaning: "second"}))

	require.NoError(t, dict.Update("a", Entry{Meaning: "updated"}))
	assert.ErrorIs(t, dict.Update("c", Entry{}), ErrNotFound)

	got, _ := dict.Get("a")
	assert.Equal(t, "updated", got.Meaning)
	assert.Equal(t, []string{"a", "b"}, dict.Words(), "update keeps the position")
}

func TestDictionary_All(t *testing.T) {
	dict := NewDictionary()
	for _, word := range []string{"zeta", "alpha", "mid"} {
		require.NoError(t, dict.Add(word, Entry{Meaning: word}))
	}

	var words []string
	for word, entry := range dict.All() {
		words = append(words, word)
		assert.Equal(t, word, entry.Meaning)
	}
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, words)

	var first []string
	for word := range dict.All() {
		first = append(first, word)
		break
	}
	assert.Equal(t, []string{"zeta"}, first)
}

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "ascii is unchanged", input: "run", want: "run"},
		{name: "decomposed accent is composed", input: "cafe\u0301", want: "caf\u00e9"},
		{name: "invalid byte is replaced", input: "caf\xff", want: "caf\uFFFD"},
		{name: "invalid byte before a combining mark", input: "e\xff\u0301", want: "e\uFFFD\u0301"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeText(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, NormalizeText(got))
		})
	}
}
