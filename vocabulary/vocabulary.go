// Package vocabulary provides an in-memory, immutable token vocabulary with
// the reserved entries (pad/unknown/begin/end/mask) that BERT-style encoding
// relies on. It implements tensorize.Vocabulary.
//
// Symbol lists come from callers or from tokenizer backends that already hold
// a table; this package neither parses vocabulary files nor builds
// vocabularies from a corpus.
package vocabulary

import (
	"iter"

	"github.com/pkg/errors"
)

// Special holds the literal string forms of the reserved symbols.
type Special struct {
	Pad, Unk, Bos, Eos, Mask string
}

// BertSpecial returns the conventional BERT literal forms:
// "[PAD]", "[UNK]", "[CLS]", "[SEP]" and "[MASK]".
func BertSpecial() Special {
	return Special{
		Pad:  "[PAD]",
		Unk:  "[UNK]",
		Bos:  "[CLS]",
		Eos:  "[SEP]",
		Mask: "[MASK]",
	}
}

// Vocabulary is a bijective mapping between symbols and dense indices in
// [0, Len()). It is immutable after construction and safe for concurrent use.
type Vocabulary struct {
	symbols []string
	index   map[string]int

	pad, unk, bos, eos, mask int
}

// New builds a Vocabulary from a dense symbol list: symbols[i] gets index i.
// Reserved symbols missing from the list are appended at the end, so their
// indices stay stable for a given input.
//
// It fails if the symbol list contains duplicates, which would break the
// bijection between symbols and indices.
func New(symbols []string, special Special) (*Vocabulary, error) {
	v := &Vocabulary{
		symbols: make([]string, 0, len(symbols)+5),
		index:   make(map[string]int, len(symbols)+5),
	}
	for _, symbol := range symbols {
		if _, found := v.index[symbol]; found {
			return nil, errors.Errorf("duplicate symbol %q in vocabulary", symbol)
		}
		v.index[symbol] = len(v.symbols)
		v.symbols = append(v.symbols, symbol)
	}
	v.pad = v.reserve(special.Pad)
	v.unk = v.reserve(special.Unk)
	v.bos = v.reserve(special.Bos)
	v.eos = v.reserve(special.Eos)
	v.mask = v.reserve(special.Mask)
	return v, nil
}

func (v *Vocabulary) reserve(symbol string) int {
	if id, found := v.index[symbol]; found {
		return id
	}
	id := len(v.symbols)
	v.index[symbol] = id
	v.symbols = append(v.symbols, symbol)
	return id
}

// IndexOf returns the index of token, or the unknown index if the token is
// not part of the vocabulary.
func (v *Vocabulary) IndexOf(token string) int {
	if id, found := v.index[token]; found {
		return id
	}
	return v.unk
}

// StringOf returns the symbol at the given index, and whether the index is
// within [0, Len()).
func (v *Vocabulary) StringOf(id int) (string, bool) {
	if id < 0 || id >= len(v.symbols) {
		return "", false
	}
	return v.symbols[id], true
}

// Len returns the number of symbols, reserved entries included.
func (v *Vocabulary) Len() int { return len(v.symbols) }

// PadID returns the padding index.
func (v *Vocabulary) PadID() int { return v.pad }

// UnkID returns the unknown-token index.
func (v *Vocabulary) UnkID() int { return v.unk }

// BosID returns the begin-marker index.
func (v *Vocabulary) BosID() int { return v.bos }

// EosID returns the end-marker index.
func (v *Vocabulary) EosID() int { return v.eos }

// MaskID returns the mask-token index.
func (v *Vocabulary) MaskID() int { return v.mask }

// Symbols iterates over all (index, symbol) pairs in index order.
func (v *Vocabulary) Symbols() iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		for id, symbol := range v.symbols {
			if !yield(id, symbol) {
				return
			}
		}
	}
}
