package keywords

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeKeepsSortedInput(t *testing.T) {
	words, err := Normalize([]string{"fn", "let", "struct"})
	require.NoError(t, err)

	assert.Equal(t, []string{"fn", "let", "struct"}, words)
}

func TestNormalizeSortsUnsortedInput(t *testing.T) {
	words, err := Normalize([]string{"if", "else"})
	require.NoError(t, err)

	// "else" sorts before "if", so it takes rank 0
	assert.Equal(t, []string{"else", "if"}, words)
}

func TestNormalizeDoesNotMutateInput(t *testing.T) {
	input := []string{"if", "else"}
	_, err := Normalize(input)
	require.NoError(t, err)

	assert.Equal(t, []string{"if", "else"}, input, "caller's slice should be untouched")
}

func TestNormalizeIsIdempotent(t *testing.T) {
	once, err := Normalize([]string{"while", "break", "as", "move"})
	require.NoError(t, err)

	twice, err := Normalize(once)
	require.NoError(t, err)

	assert.Equal(t, once, twice)
}

func TestNormalizeRejectsEmptyEntry(t *testing.T) {
	_, err := Normalize([]string{"fn", "", "let"})
	require.Error(t, err)

	assert.Contains(t, err.Error(), "K0001")
	assert.Contains(t, err.Error(), "empty")
}

func TestNormalizeRejectsDuplicates(t *testing.T) {
	_, err := Normalize([]string{"fn", "let", "fn"})
	require.Error(t, err)

	assert.Contains(t, err.Error(), "K0002")
	assert.Contains(t, err.Error(), `"fn"`)
}

func TestNormalizeRejectsNonIdentifiers(t *testing.T) {
	cases := []string{"my-word", "9lives", "has space", "semi;colon"}

	for _, bad := range cases {
		_, err := Normalize([]string{"fn", bad})
		require.Error(t, err, "expected %q to be rejected", bad)
		assert.Contains(t, err.Error(), "K0003")
	}
}

func TestNormalizeAllowsIdentifierShapes(t *testing.T) {
	words, err := Normalize([]string{"_private", "snake_case", "x86", "UPPER"})
	require.NoError(t, err)

	assert.Len(t, words, 4)
}

func TestCompiledInTableIsNormalized(t *testing.T) {
	words := All()
	require.NotEmpty(t, words)

	normalized, err := Normalize(words)
	require.NoError(t, err)

	assert.Equal(t, words, normalized, "All() should already be in rank order")
	assert.Equal(t, len(words), Count())
}

func TestRanksAreDense(t *testing.T) {
	for i, w := range All() {
		rank, ok := Rank(w)
		assert.True(t, ok, "%q should have a rank", w)
		assert.Equal(t, i, rank, "rank of %q should match its table position", w)
	}
}

func TestRankUnknownWord(t *testing.T) {
	_, ok := Rank("notakeyword")
	assert.False(t, ok)
}

func TestAllReturnsCopy(t *testing.T) {
	first := All()
	first[0] = "tampered"

	assert.NotEqual(t, "tampered", All()[0], "mutating the returned slice should not affect the table")
}

func TestIsKeyword(t *testing.T) {
	assert.True(t, IsKeyword("fn"))
	assert.True(t, IsKeyword("else"))
	assert.True(t, IsKeyword("unsafe"))
	assert.False(t, IsKeyword("main"))
	assert.False(t, IsKeyword(""))
	assert.False(t, IsKeyword("FN"), "keyword matching is case-sensitive")
}
