// Package sentencepiece adapts github.com/eliben/go-sentencepiece to the
// tensorize interfaces.
//
// The underlying library exposes encoding and decoding only, so the symbol
// table is not enumerable upfront: piece/id pairs are cached as they are
// observed during tokenization, which is enough for the tokenize-then-lookup
// flow of tensorize.Tensorizer.
package sentencepiece

import (
	"iter"
	"sync"

	esentencepiece "github.com/eliben/go-sentencepiece"
	"github.com/pkg/errors"
)

// ControlIDs holds the reserved token ids of the sentencepiece model.
type ControlIDs struct {
	Pad, Unk, Bos, Eos int
}

// GemmaControlIDs returns the reserved ids used by the Gemma family of
// sentencepiece models.
func GemmaControlIDs() ControlIDs {
	return ControlIDs{Pad: 0, Eos: 1, Bos: 2, Unk: 3}
}

// Processor wraps a sentencepiece model. It implements both
// tensorize.Tokenizer and tensorize.Vocabulary.
type Processor struct {
	*esentencepiece.Processor
	control ControlIDs

	// pieces caches piece-text -> id pairs observed while tokenizing.
	// The mapping is deterministic, so concurrent inserts are benign.
	pieces sync.Map
}

// NewFromPath loads the sentencepiece model file (e.g. "tokenizer.model").
func NewFromPath(vocabPath string, control ControlIDs) (*Processor, error) {
	proc, err := esentencepiece.NewProcessorFromPath(vocabPath)
	if err != nil {
		return nil, errors.Wrapf(err, "can't create sentencepiece from %q", vocabPath)
	}
	return &Processor{
		Processor: proc,
		control:   control,
	}, nil
}

type Token = esentencepiece.Token

// Tokenize returns the sub-word piece texts of the given text. It implements
// tensorize.Tokenizer and never fails.
func (p *Processor) Tokenize(text string) ([]string, error) {
	tokens := p.Processor.Encode(text)
	pieces := make([]string, len(tokens))
	for i, token := range tokens {
		pieces[i] = token.Text
		p.pieces.Store(token.Text, token.ID)
	}
	return pieces, nil
}

// EncodeAsIds returns the text encoded into a sequence of ids.
func (p *Processor) EncodeAsIds(text string) []int {
	tokens := p.Processor.Encode(text)
	ids := make([]int, len(tokens))
	for i, token := range tokens {
		ids[i] = token.ID
	}
	return ids
}

// DecodeIds returns the text from a sequence of ids.
func (p *Processor) DecodeIds(ids []int) string {
	return p.Processor.Decode(ids)
}

// IndexOf returns the id of the given piece, or the unknown id for pieces
// this processor has not produced.
func (p *Processor) IndexOf(token string) int {
	if id, found := p.pieces.Load(token); found {
		return id.(int)
	}
	return p.control.Unk
}

// PadID returns the padding id.
func (p *Processor) PadID() int { return p.control.Pad }

// UnkID returns the unknown-token id.
func (p *Processor) UnkID() int { return p.control.Unk }

// BosID returns the beginning-of-sentence id.
func (p *Processor) BosID() int { return p.control.Bos }

// EosID returns the end-of-sentence id.
func (p *Processor) EosID() int { return p.control.Eos }

// Symbols iterates over the (id, piece) pairs observed so far. The underlying
// library does not expose the full table, so this is a partial enumeration.
func (p *Processor) Symbols() iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		p.pieces.Range(func(key, value any) bool {
			return yield(value.(int), key.(string))
		})
	}
}
