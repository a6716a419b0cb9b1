package bpe

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRobertaControlIDs(t *testing.T) {
	control := RobertaControlIDs()
	require.Equal(t, 0, control.Bos)
	require.Equal(t, 1, control.Pad)
	require.Equal(t, 2, control.Eos)
	require.Equal(t, 3, control.Unk)
}

func TestLoadMissingFiles(t *testing.T) {
	_, err := Load(t.TempDir(), RobertaControlIDs())
	require.ErrorContains(t, err, "loading vocabulary")
}
