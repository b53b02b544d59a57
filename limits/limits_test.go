package limits

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	l := Default()
	require.Equal(t, 1000, l.MaxDepth)
	require.Equal(t, 1_000_000, l.MaxArrayLength)
	require.Equal(t, 1_000_000, l.MaxMapSize)
	require.Equal(t, 100*1024*1024, l.MaxStringLength)
	require.Equal(t, 100*1024*1024, l.MaxBinLength)
	require.Equal(t, 100*1024*1024, l.MaxExtLength)
}
