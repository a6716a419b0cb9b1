package vocabulary

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewReservesMissingSpecials(t *testing.T) {
	vocab, err := New([]string{"hello", "world"}, BertSpecial())
	require.NoError(t, err)
	fmt.Printf("vocabulary of %d symbols\n", vocab.Len())

	require.Equal(t, 7, vocab.Len())
	require.Equal(t, 0, vocab.IndexOf("hello"))
	require.Equal(t, 1, vocab.IndexOf("world"))
	require.Equal(t, 2, vocab.PadID())
	require.Equal(t, 3, vocab.UnkID())
	require.Equal(t, 4, vocab.BosID())
	require.Equal(t, 5, vocab.EosID())
	require.Equal(t, 6, vocab.MaskID())
}

func TestNewKeepsExistingSpecialIndices(t *testing.T) {
	vocab, err := New([]string{"[PAD]", "[CLS]", "[SEP]", "[UNK]", "[MASK]", "hello"}, BertSpecial())
	require.NoError(t, err)

	require.Equal(t, 6, vocab.Len())
	require.Equal(t, 0, vocab.PadID())
	require.Equal(t, 1, vocab.BosID())
	require.Equal(t, 2, vocab.EosID())
	require.Equal(t, 3, vocab.UnkID())
	require.Equal(t, 4, vocab.MaskID())
	require.Equal(t, 5, vocab.IndexOf("hello"))
}

func TestNewRejectsDuplicates(t *testing.T) {
	_, err := New([]string{"hello", "hello"}, BertSpecial())
	require.ErrorContains(t, err, "duplicate symbol")
}

func TestIndexOfUnknownFallsBackToUnk(t *testing.T) {
	vocab, err := New([]string{"hello"}, BertSpecial())
	require.NoError(t, err)
	require.Equal(t, vocab.UnkID(), vocab.IndexOf("xyzzy"))
}

func TestStringOf(t *testing.T) {
	vocab, err := New([]string{"hello"}, BertSpecial())
	require.NoError(t, err)

	symbol, ok := vocab.StringOf(0)
	require.True(t, ok)
	require.Equal(t, "hello", symbol)

	_, ok = vocab.StringOf(vocab.Len())
	require.False(t, ok)
	_, ok = vocab.StringOf(-1)
	require.False(t, ok)
}

func TestSymbolsEnumeratesInOrder(t *testing.T) {
	vocab, err := New([]string{"hello", "world"}, BertSpecial())
	require.NoError(t, err)

	wantFirst := []string{"hello", "world", "[PAD]", "[UNK]", "[CLS]", "[SEP]", "[MASK]"}
	next := 0
	for id, symbol := range vocab.Symbols() {
		require.Equal(t, next, id, "enumeration must follow index order")
		require.Equal(t, wantFirst[next], symbol)
		next++
	}
	require.Equal(t, vocab.Len(), next)
}
