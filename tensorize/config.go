package tensorize

// Config selects between the supported encoding conventions. The boundary
// marker placement is driven entirely by the flags below; there is a single
// encoding algorithm, not one code path per model family.
type Config struct {
	// Columns names the row columns to encode, in order. The position of a
	// column in this slice becomes the segment label of its tokens.
	Columns []string

	// MaxSeqLen caps the total length of the concatenated sequence, markers
	// included. Zero means no cap.
	MaxSeqLen int

	// AddBosToken prepends the begin marker once, before the first column.
	AddBosToken bool

	// AddEosToken appends the end marker to every column's token sequence.
	AddEosToken bool

	// UseEosTokenForBos substitutes the end-marker id for the begin-marker id
	// when prepending the begin marker, for models that share one boundary
	// symbol for both roles.
	UseEosTokenForBos bool
}

// BertConfig returns the paired-segment convention: a global begin marker
// ("[CLS]"), an end marker ("[SEP]") closing every column, and per-column
// segment ids consumed by the model's segment embeddings.
func BertConfig() *Config {
	return &Config{
		Columns:     []string{"text"},
		MaxSeqLen:   512,
		AddBosToken: true,
		AddEosToken: true,
	}
}

// RobertaConfig returns the single-boundary convention: no begin marker from
// the encoder (the tokenizer supplies any boundary symbol), an end marker per
// column, and the shorter default length of that model family.
func RobertaConfig() *Config {
	return &Config{
		Columns:     []string{"text"},
		MaxSeqLen:   256,
		AddBosToken: false,
		AddEosToken: true,
	}
}
