// Package tensorize converts raw textual rows into the fixed-shape integer
// tensors expected by BERT/RoBERTa-style models: token ids, a padding mask and
// per-token segment labels.
//
// The package does not tokenize text itself nor build vocabularies; both are
// consumed through the Tokenizer and Vocabulary interfaces, with concrete
// backends provided by the sentencepiece, wordpiece and bpe packages.
package tensorize

import "iter"

// Tokenizer splits a string into an ordered sequence of sub-word tokens.
//
// Implementations must be deterministic and side-effect free for a given
// input, and safe for concurrent use after construction.
type Tokenizer interface {
	Tokenize(text string) ([]string, error)
}

// Vocabulary maps sub-word tokens to dense non-negative indices and reserves
// entries for the special padding/unknown/boundary symbols.
//
// Implementations are immutable after construction and safe to share across
// concurrently encoding goroutines.
type Vocabulary interface {
	// IndexOf returns the index of token, or the unknown-token index when the
	// token is not part of the vocabulary. It never fails.
	IndexOf(token string) int

	// PadID returns the padding index, used to fill unused tensor positions.
	PadID() int

	// BosID returns the beginning-of-sequence marker index (e.g. "[CLS]").
	BosID() int

	// EosID returns the end-of-sequence marker index (e.g. "[SEP]").
	EosID() int

	// Symbols iterates over all (index, symbol) pairs of the vocabulary.
	Symbols() iter.Seq2[int, string]
}

// Row is one logical input row: a mapping from column name to its raw text.
type Row map[string]string

// EncodedRow is the result of encoding one Row: vocabulary indices with
// boundary markers applied, and one segment label per token identifying the
// source column. It is immutable once returned.
type EncodedRow struct {
	// TokenIDs holds the vocabulary indices, including any boundary markers.
	TokenIDs []int32

	// SegmentLabels holds, per token, the 0-based position of the column the
	// token came from. Same length as TokenIDs, non-decreasing.
	SegmentLabels []int32

	// Length is len(TokenIDs), before any batch padding.
	Length int
}

// SortKey returns the unpadded sequence length. An external batching component
// can group rows with similar sort keys to minimize padding waste.
func (r *EncodedRow) SortKey() int { return r.Length }

// Tensorizer encodes rows against a fixed tokenizer, vocabulary and policy.
//
// All methods are pure transforms over immutable state; a single Tensorizer
// may be used from many goroutines at once.
type Tensorizer struct {
	config    *Config
	tokenizer Tokenizer
	vocab     Vocabulary
}

// New creates a Tensorizer. A nil config is replaced by BertConfig().
func New(config *Config, tokenizer Tokenizer, vocab Vocabulary) *Tensorizer {
	if config == nil {
		config = BertConfig()
	}
	return &Tensorizer{
		config:    config,
		tokenizer: tokenizer,
		vocab:     vocab,
	}
}

// Vocab returns the vocabulary the Tensorizer encodes against.
func (t *Tensorizer) Vocab() Vocabulary { return t.vocab }

// Encode transforms one row into an EncodedRow.
//
// Per configured column, in order: the column text is tokenized, each sub-word
// is looked up in the vocabulary (unknown sub-words resolve to the unknown
// index), and, if AddEosToken is set, the end marker is appended to the
// column's sequence. If AddBosToken is set the begin marker (or the end marker,
// under UseEosTokenForBos) is prepended once, before the first column. The
// concatenated sequence is then capped at MaxSeqLen, dropping trailing tokens
// of the last column(s) first. Every token carries its column's position as
// segment label.
//
// A column named in the config but absent from the row fails with
// *MissingColumnError. Tokenizer errors are returned as-is.
func (t *Tensorizer) Encode(row Row) (*EncodedRow, error) {
	columns := make([][]int32, 0, len(t.config.Columns))
	for _, name := range t.config.Columns {
		text, found := row[name]
		if !found {
			return nil, &MissingColumnError{Column: name}
		}
		words, err := t.tokenizer.Tokenize(text)
		if err != nil {
			return nil, err
		}
		ids := make([]int32, 0, len(words)+1)
		for _, word := range words {
			ids = append(ids, int32(t.vocab.IndexOf(word)))
		}
		if t.config.AddEosToken {
			ids = append(ids, int32(t.vocab.EosID()))
		}
		columns = append(columns, ids)
	}

	if t.config.AddBosToken && len(columns) > 0 {
		bos := t.vocab.BosID()
		if t.config.UseEosTokenForBos {
			bos = t.vocab.EosID()
		}
		columns[0] = append([]int32{int32(bos)}, columns[0]...)
	}

	total := 0
	for _, ids := range columns {
		total += len(ids)
	}
	if t.config.MaxSeqLen > 0 && total > t.config.MaxSeqLen {
		total = t.config.MaxSeqLen
	}

	encoded := &EncodedRow{
		TokenIDs:      make([]int32, 0, total),
		SegmentLabels: make([]int32, 0, total),
	}
	for segment, ids := range columns {
		remaining := total - len(encoded.TokenIDs)
		if remaining <= 0 {
			break
		}
		if len(ids) > remaining {
			ids = ids[:remaining]
		}
		encoded.TokenIDs = append(encoded.TokenIDs, ids...)
		for range ids {
			encoded.SegmentLabels = append(encoded.SegmentLabels, int32(segment))
		}
	}
	encoded.Length = len(encoded.TokenIDs)
	return encoded, nil
}
