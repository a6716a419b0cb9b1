package tensorize

import (
	"github.com/gomlx/gomlx/types/shapes"
	"github.com/gomlx/gomlx/types/tensors"
	"github.com/gomlx/gopjrt/dtypes"
)

// Batch is a rectangular collection of encoded rows, padded to the longest
// row. The three tensors share the shape int32[numRows, maxLength]; this shape
// contract is what the downstream model consumes.
type Batch struct {
	// TokenIDs holds the token ids, padded with the vocabulary's pad index.
	TokenIDs *tensors.Tensor

	// PadMask is 1 where TokenIDs holds a real token and 0 where it holds
	// padding.
	PadMask *tensors.Tensor

	// SegmentLabels holds the per-token segment labels, padded with the
	// vocabulary's pad index.
	SegmentLabels *tensors.Tensor
}

// NumRows returns the batch dimension.
func (b *Batch) NumRows() int { return b.TokenIDs.Shape().Dim(0) }

// MaxLength returns the padded sequence dimension.
func (b *Batch) MaxLength() int { return b.TokenIDs.Shape().Dim(1) }

// Tensorize packs already-encoded rows into a Batch, padding every sequence
// to the longest row of the batch. The rows must all have been encoded against
// the Tensorizer's vocabulary, so that the pad index is consistent.
//
// The result is deterministic given the same row order: row r of each tensor
// holds the row's real content in positions [0, rows[r].Length) and padding
// beyond. Calling it with no rows fails with ErrEmptyBatch.
func (t *Tensorizer) Tensorize(rows []*EncodedRow) (*Batch, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyBatch
	}
	numRows := len(rows)
	maxLength := 0
	for _, row := range rows {
		if row.Length > maxLength {
			maxLength = row.Length
		}
	}

	padID := int32(t.vocab.PadID())
	tokenIDs := tensors.FromScalarAndDimensions(padID, numRows, maxLength)
	segmentLabels := tensors.FromScalarAndDimensions(padID, numRows, maxLength)
	padMask := tensors.FromShape(shapes.Make(dtypes.Int32, numRows, maxLength))

	tensors.MutableFlatData(tokenIDs, func(flat []int32) {
		for r, row := range rows {
			copy(flat[r*maxLength:], row.TokenIDs)
		}
	})
	tensors.MutableFlatData(segmentLabels, func(flat []int32) {
		for r, row := range rows {
			copy(flat[r*maxLength:], row.SegmentLabels)
		}
	})
	tensors.MutableFlatData(padMask, func(flat []int32) {
		for r, row := range rows {
			for c := range row.Length {
				flat[r*maxLength+c] = 1
			}
		}
	})

	return &Batch{
		TokenIDs:      tokenIDs,
		PadMask:       padMask,
		SegmentLabels: segmentLabels,
	}, nil
}
