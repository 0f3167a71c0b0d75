package tokenutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTruncateToTokensKeepsShortText(t *testing.T) {
	require.Equal(t, "hello world", TruncateToTokens("hello world", 100))
	require.Equal(t, "", TruncateToTokens("", 100))
}

func TestTruncateToTokensCutsLongText(t *testing.T) {
	long := strings.Repeat("frequently asked trading platform question and answer ", 500)

	out := TruncateToTokens(long, 50)
	require.Less(t, len(out), len(long))
	require.True(t, strings.HasSuffix(out, "..."))
	require.True(t, strings.HasPrefix(long, strings.TrimSuffix(out, "...")))
}

func TestTruncateToTokensIgnoresNonPositiveBudget(t *testing.T) {
	long := strings.Repeat("x", 10000)
	require.Equal(t, long, TruncateToTokens(long, 0))
	require.Equal(t, long, TruncateToTokens(long, -1))
}
