package sentencepiece

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestControlIDs(t *testing.T) {
	p := &Processor{control: GemmaControlIDs()}
	require.Equal(t, 0, p.PadID())
	require.Equal(t, 1, p.EosID())
	require.Equal(t, 2, p.BosID())
	require.Equal(t, 3, p.UnkID())
}

func TestIndexOfFallsBackToUnk(t *testing.T) {
	p := &Processor{control: GemmaControlIDs()}
	require.Equal(t, p.UnkID(), p.IndexOf("▁never▁seen"))

	// Pieces observed during tokenization become resolvable.
	p.pieces.Store("▁hello", 17)
	require.Equal(t, 17, p.IndexOf("▁hello"))
}

func TestSymbolsEnumeratesObservedPieces(t *testing.T) {
	p := &Processor{control: GemmaControlIDs()}
	p.pieces.Store("▁hello", 17)
	p.pieces.Store("▁world", 23)

	seen := map[int]string{}
	for id, piece := range p.Symbols() {
		seen[id] = piece
	}
	require.Equal(t, map[int]string{17: "▁hello", 23: "▁world"}, seen)
}

func TestNewFromPathMissingFile(t *testing.T) {
	_, err := NewFromPath("no-such-tokenizer.model", GemmaControlIDs())
	require.Error(t, err)
}
