package tensorize

import "strings"

// Whitespace is a trivial Tokenizer that splits on Unicode whitespace. It is
// useful for tests and for demos with hand-built vocabularies; real models
// want one of the sub-word backends (wordpiece, bpe, sentencepiece).
type Whitespace struct {
	// Lowercase folds tokens to lower case before vocabulary lookup.
	Lowercase bool
}

// Tokenize implements Tokenizer. It never fails.
func (w Whitespace) Tokenize(text string) ([]string, error) {
	if w.Lowercase {
		text = strings.ToLower(text)
	}
	return strings.Fields(text), nil
}
