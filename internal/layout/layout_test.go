package layout

import (
	"testing"

	"github.com/stretchr/testify/require"

	"amy/internal/registry"
)

func TestSizeSteps(t *testing.T) {
	next, ok := SizeSmall.Bigger()
	require.True(t, ok)
	require.Equal(t, SizeMedium, next)

	next, ok = SizeLarge.Bigger()
	require.True(t, ok)
	require.Equal(t, SizeFull, next)

	_, ok = SizeFull.Bigger()
	require.False(t, ok)

	next, ok = SizeMedium.Smaller()
	require.True(t, ok)
	require.Equal(t, SizeSmall, next)

	_, ok = SizeSmall.Smaller()
	require.False(t, ok)
}

func TestValidators(t *testing.T) {
	require.True(t, ValidSize(SizeFull))
	require.False(t, ValidSize(Size("huge")))

	require.True(t, ValidTheme(ThemeDark))
	require.False(t, ValidTheme(Theme("sepia")))

	require.True(t, ValidLanguage("es"))
	require.False(t, ValidLanguage("tlh"))

	require.True(t, ValidAccentColor("#ff444f"))
	require.True(t, ValidAccentColor("#00C853"))
	require.False(t, ValidAccentColor("ff444f"))
	require.False(t, ValidAccentColor("#f4f"))
	require.False(t, ValidAccentColor("#ff444f00"))
	require.False(t, ValidAccentColor("red"))
}

func TestSnapshotState(t *testing.T) {
	snap := &Snapshot{
		Components: map[registry.ComponentID]ComponentState{
			registry.Chart: {Visible: true, Size: SizeLarge, Order: 0},
		},
	}

	require.True(t, snap.State(registry.Chart).Visible)
	require.False(t, snap.State(registry.News).Visible, "missing components read as hidden")

	var nilSnap *Snapshot
	require.False(t, nilSnap.State(registry.Chart).Visible)
}

func TestDescribe(t *testing.T) {
	reg := registry.New()
	snap := &Snapshot{
		Components: map[registry.ComponentID]ComponentState{
			registry.Chart: {Visible: true, Size: SizeLarge, Order: 0},
			registry.News:  {Visible: false, Size: SizeSmall, Order: 5},
		},
		Theme:        ThemeDark,
		Language:     "en",
		AccentColor:  "#ff444f",
		HealthIssues: []string{"websocket disconnected"},
	}

	desc := snap.Describe(reg)
	require.Contains(t, desc, "chart (size: large, order: 0)")
	require.Contains(t, desc, "Hidden components: news")
	require.Contains(t, desc, "Theme: dark, Language: en, Accent: #ff444f")
	require.Contains(t, desc, "websocket disconnected")
}

func TestDescribeEmpty(t *testing.T) {
	var snap *Snapshot
	desc := snap.Describe(registry.New())
	require.Contains(t, desc, "Visible components: none")
	require.Contains(t, desc, "Hidden components: none")
}

func TestUserContextDescribe(t *testing.T) {
	var nilUser *UserContext
	require.Empty(t, nilUser.Describe())

	require.Empty(t, (&UserContext{}).Describe(), "unauthenticated context renders nothing")

	user := &UserContext{Authenticated: true, Balance: 1234.5, Currency: "USD", OpenPositions: 2, TotalPnL: -15.25}
	line := user.Describe()
	require.Contains(t, line, "1234.50 USD")
	require.Contains(t, line, "open positions: 2")
	require.Contains(t, line, "-15.25")
}
