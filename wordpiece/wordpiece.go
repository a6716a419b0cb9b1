// Package wordpiece adapts the github.com/sugarme/tokenizer WordPiece model
// (BERT-style sub-word splitting) to the tensorize.Tokenizer interface.
package wordpiece

import (
	"fmt"

	tk "github.com/sugarme/tokenizer"
	wordpiecemodel "github.com/sugarme/tokenizer/model/wordpiece"
	"github.com/sugarme/tokenizer/normalizer"
	"github.com/sugarme/tokenizer/pretokenizer"

	"github.com/pkg/errors"
)

const unkToken = "[UNK]"

// Tokenizer wraps a sugarme WordPiece tokenizer configured with the BERT
// normalizer and pre-tokenizer. No post-processor is installed: boundary
// markers are placed by tensorize.Tensorizer, not here.
type Tokenizer struct {
	t *tk.Tokenizer
}

// FromVocabFile builds the tokenizer from a standard "vocab.txt" file
// (one symbol per line, line number = id).
func FromVocabFile(vocabPath string) (*Tokenizer, error) {
	model, err := wordpiecemodel.NewWordPieceFromFile(vocabPath, unkToken)
	if err != nil {
		return nil, errors.Wrapf(err, "loading wordpiece vocabulary from %q", vocabPath)
	}
	t := tk.NewTokenizer(model)
	t.WithNormalizer(normalizer.NewBertNormalizer(true, true, true, true))
	t.WithPreTokenizer(pretokenizer.NewBertPreTokenizer())
	return &Tokenizer{t: t}, nil
}

// Tokenize implements tensorize.Tokenizer, returning sub-word strings in the
// "##"-continuation convention (e.g. "playing" -> "play", "##ing").
func (w *Tokenizer) Tokenize(text string) ([]string, error) {
	encoding, err := w.t.Encode(tk.NewSingleEncodeInput(tk.NewInputSequence(text)), false)
	if err != nil {
		return nil, err
	}
	return encoding.GetTokens(), nil
}

// Symbols returns the model's symbol table as a dense list ordered by id,
// suitable for vocabulary.New. Ids the model leaves unassigned (vocab files
// are dense in practice, but nothing enforces it) are filled with distinct
// "[unused-N]" placeholders so positions keep matching ids.
func (w *Tokenizer) Symbols() []string {
	return symbolsFromTable(w.t.GetVocab(false))
}

func symbolsFromTable(table map[string]int) []string {
	maxID := -1
	for _, id := range table {
		if id > maxID {
			maxID = id
		}
	}
	symbols := make([]string, maxID+1)
	for token, id := range table {
		if id >= 0 {
			symbols[id] = token
		}
	}
	for id, symbol := range symbols {
		if symbol == "" {
			symbols[id] = fmt.Sprintf("[unused-%d]", id)
		}
	}
	return symbols
}
