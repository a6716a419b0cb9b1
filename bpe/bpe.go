// Package bpe adapts the byte-level BPE tokenizer from
// github.com/nlpodyssey/gotokenizers (GPT-2/RoBERTa convention) to the
// tensorize interfaces.
package bpe

import (
	"iter"
	"path/filepath"

	"github.com/nlpodyssey/gotokenizers/models"
	"github.com/nlpodyssey/gotokenizers/models/bpemodel"
	"github.com/nlpodyssey/gotokenizers/normalizedstring"
	"github.com/nlpodyssey/gotokenizers/pretokenizedstring"
	"github.com/nlpodyssey/gotokenizers/pretokenizers/bytelevelpretokenizer"
	gtvocabulary "github.com/nlpodyssey/gotokenizers/vocabulary"

	"github.com/pkg/errors"
)

const (
	defaultCacheCapacity           = 0
	defaultDropout                 = 0.0
	defaultUnknownToken            = ""
	defaultContinuingSubwordPrefix = ""
	defaultEndOfWordSuffix         = ""
	defaultPrefixSpaceEnabled      = false
	defaultOffsetsTrimmingEnabled  = true
	defaultUnknownFusionEnabled    = false
)

// ControlIDs holds the reserved token ids of the BPE model. RoBERTa-style
// models use 0/1/2/3 for "<s>"/"<pad>"/"</s>"/"<unk>".
type ControlIDs struct {
	Pad, Unk, Bos, Eos int
}

// RobertaControlIDs returns the reserved ids of the RoBERTa convention.
func RobertaControlIDs() ControlIDs {
	return ControlIDs{Bos: 0, Pad: 1, Eos: 2, Unk: 3}
}

// Tokenizer is a byte-level BPE tokenizer. It implements both
// tensorize.Tokenizer and tensorize.Vocabulary.
type Tokenizer struct {
	preTokenizer *bytelevelpretokenizer.ByteLevelPreTokenizer
	model        *bpemodel.BPEModel
	vocab        *gtvocabulary.Vocabulary
	control      ControlIDs
}

// Load reads "vocab.json" and "merges.txt" from the given directory.
func Load(path string, control ControlIDs) (*Tokenizer, error) {
	vocabularyFilename := filepath.Join(path, "vocab.json")
	vocab, err := gtvocabulary.FromJSONFile(vocabularyFilename)
	if err != nil {
		return nil, errors.Wrapf(err, "loading vocabulary from file %s", vocabularyFilename)
	}

	mergesFilename := filepath.Join(path, "merges.txt")
	merges, err := bpemodel.MergeMapFromFile(
		mergesFilename,
		vocab,
		len(defaultContinuingSubwordPrefix),
	)
	if err != nil {
		return nil, errors.Wrapf(err, "loading merges from file %s", mergesFilename)
	}

	preTokenizer := bytelevelpretokenizer.New(
		bytelevelpretokenizer.DefaultSplittingRegexp,
		defaultPrefixSpaceEnabled,
		defaultOffsetsTrimmingEnabled,
	)

	model := bpemodel.New(
		vocab,
		merges,
		defaultCacheCapacity,
		defaultDropout,
		defaultUnknownToken,
		defaultContinuingSubwordPrefix,
		defaultEndOfWordSuffix,
		defaultUnknownFusionEnabled,
	)

	return &Tokenizer{
		preTokenizer: preTokenizer,
		model:        model,
		vocab:        vocab,
		control:      control,
	}, nil
}

// Tokenize implements tensorize.Tokenizer. It applies byte-level
// pre-tokenization followed by BPE merges and returns the sub-word strings in
// the byte-level alphabet (e.g. "Ġ" marks a leading space).
func (t *Tokenizer) Tokenize(text string) ([]string, error) {
	pts := pretokenizedstring.FromString(text)

	if err := t.preTokenizer.PreTokenize(pts); err != nil {
		return nil, errors.Wrapf(err, "BPE pre-tokenization of %q", text)
	}

	err := pts.Tokenize(
		func(ns *normalizedstring.NormalizedString) ([]models.Token, error) {
			return t.model.Tokenize(ns.Get())
		},
	)
	if err != nil {
		return nil, errors.Wrapf(err, "BPE tokenization of %q", text)
	}

	encoding, err := pts.IntoEncoding(0, 0)
	if err != nil {
		return nil, errors.Wrapf(err, "BPE encoding of %q", text)
	}
	return encoding.Tokens, nil
}

// IndexOf implements tensorize.Vocabulary lookup with unknown-id fallback.
func (t *Tokenizer) IndexOf(token string) int {
	if id, found := t.vocab.GetID(token); found {
		return id
	}
	return t.control.Unk
}

// PadID returns the padding id.
func (t *Tokenizer) PadID() int { return t.control.Pad }

// UnkID returns the unknown-token id.
func (t *Tokenizer) UnkID() int { return t.control.Unk }

// BosID returns the beginning-of-sequence id.
func (t *Tokenizer) BosID() int { return t.control.Bos }

// EosID returns the end-of-sequence id.
func (t *Tokenizer) EosID() int { return t.control.Eos }

// Symbols iterates over the (id, symbol) pairs of the model's vocabulary.
// Ids are dense, so iteration stops at the first gap.
func (t *Tokenizer) Symbols() iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		for id := 0; ; id++ {
			symbol, found := t.vocab.GetString(id)
			if !found {
				return
			}
			if !yield(id, symbol) {
				return
			}
		}
	}
}
