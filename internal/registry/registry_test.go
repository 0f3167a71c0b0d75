package registry

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolvePrefersSpecificAliases(t *testing.T) {
	reg := New()

	tests := []struct {
		text string
		want ComponentID
	}{
		{"show the market overview please", MarketOverview},
		{"hide the market data", MarketOverview},
		{"open the order panel", OrderPanel},
		{"I want to place an order", OrderPanel},
		{"where is the rise/fall panel", OrderPanel},
		{"show my watch list", Watchlist},
		{"show the watchlist", Watchlist},
		{"make the chart bigger", Chart},
		{"close my positions view", Positions},
		{"what time is it on the world clock", Clock},
		{"open the calculator", Calculator},
	}
	for _, tt := range tests {
		id, ok := reg.Resolve(tt.text)
		require.True(t, ok, "expected a match for %q", tt.text)
		require.Equal(t, tt.want, id, "text: %q", tt.text)
	}
}

func TestResolveMissIsNotAnError(t *testing.T) {
	reg := New()
	_, ok := reg.Resolve("hide the thing")
	require.False(t, ok)
}

func TestResolveIsCaseInsensitive(t *testing.T) {
	reg := New()
	id, ok := reg.Resolve("Show The NEWS Feed")
	require.True(t, ok)
	require.Equal(t, News, id)
}

func TestCatalog(t *testing.T) {
	reg := New()

	require.Len(t, reg.All(), 9)
	require.True(t, reg.Contains(Chart))
	require.False(t, reg.Contains(ComponentID("sidebar")))

	chart, ok := reg.Get(Chart)
	require.True(t, ok)
	require.Equal(t, "Price Chart", chart.Name)
	require.Equal(t, "large", chart.DefaultSize)

	require.Equal(t, "News Feed", reg.Name(News))
	require.Equal(t, "bogus", reg.Name(ComponentID("bogus")))
}
