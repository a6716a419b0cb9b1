package tensorize

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrEmptyBatch is returned by Tensorize when called with zero rows.
var ErrEmptyBatch = errors.New("empty batch: at least one encoded row is required")

// MissingColumnError reports a configured column absent from an input row.
// It indicates a caller or configuration bug, never a transient condition.
type MissingColumnError struct {
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("column %q is configured but missing from the input row", e.Column)
}
