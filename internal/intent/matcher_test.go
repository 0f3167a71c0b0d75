package intent

import (
	"testing"

	"github.com/stretchr/testify/require"

	"amy/internal/command"
	"amy/internal/layout"
	"amy/internal/registry"
)

// defaultSnapshot mirrors the frontend's initial layout: chart, positions,
// watchlist and order panel visible, the rest hidden.
func defaultSnapshot() *layout.Snapshot {
	return &layout.Snapshot{
		Components: map[registry.ComponentID]layout.ComponentState{
			registry.Chart:      {Visible: true, Size: layout.SizeLarge, Order: 0},
			registry.Positions:  {Visible: true, Size: layout.SizeMedium, Order: 1},
			registry.Watchlist:  {Visible: true, Size: layout.SizeMedium, Order: 2},
			registry.OrderPanel: {Visible: true, Size: layout.SizeMedium, Order: 3},
			registry.News:       {Visible: false, Size: layout.SizeSmall, Order: 4},
		},
		Theme:    layout.ThemeDark,
		Language: "en",
	}
}

func TestMatchGreeting(t *testing.T) {
	m := New(registry.New())

	reply, cmds := m.Match("Hello there!", defaultSnapshot())
	require.Equal(t, replyGreeting, reply)
	require.Empty(t, cmds)

	reply, cmds = m.Match("good morning", nil)
	require.Equal(t, replyGreeting, reply)
	require.Empty(t, cmds)
}

func TestMatchGreetingNeedsWordBoundary(t *testing.T) {
	m := New(registry.New())

	// "hi" inside "hide" must not read as a greeting.
	_, cmds := m.Match("hide the positions", defaultSnapshot())
	require.Equal(t, []command.Command{command.Hide(registry.Positions)}, cmds)
}

func TestMatchPreset(t *testing.T) {
	m := New(registry.New())

	tests := []struct {
		msg  string
		want command.Preset
	}{
		{"switch to trading layout", command.PresetTrading},
		{"give me a minimal setup", command.PresetMinimal},
		{"I want to do some analysis", command.PresetAnalysis},
		{"monitoring mode please", command.PresetMonitoring},
		{"back to the default layout", command.PresetDefault},
	}
	for _, tt := range tests {
		reply, cmds := m.Match(tt.msg, defaultSnapshot())
		require.Equal(t, []command.Command{command.ApplyPreset(tt.want)}, cmds, "msg: %q", tt.msg)
		require.Equal(t, presetReplies[tt.want], reply)
	}
}

func TestMatchPresetWinsOverShow(t *testing.T) {
	m := New(registry.New())

	// "show" appears in the message but the preset rule has precedence.
	_, cmds := m.Match("show me the trading layout", defaultSnapshot())
	require.Equal(t, []command.Command{command.ApplyPreset(command.PresetTrading)}, cmds)
}

func TestMatchHide(t *testing.T) {
	m := New(registry.New())
	snap := defaultSnapshot()

	reply, cmds := m.Match("hide the watchlist", snap)
	require.Equal(t, hideReply("Watchlist"), reply)
	require.Equal(t, []command.Command{command.Hide(registry.Watchlist)}, cmds)
}

func TestMatchHideAlreadyHidden(t *testing.T) {
	m := New(registry.New())

	reply, cmds := m.Match("hide the news", &layout.Snapshot{
		Components: map[registry.ComponentID]layout.ComponentState{
			registry.News: {Visible: false},
		},
	})
	require.Equal(t, alreadyHiddenReply("News Feed"), reply)
	require.Empty(t, cmds)
}

func TestMatchHideUnresolvedAsksWhich(t *testing.T) {
	m := New(registry.New())

	reply, cmds := m.Match("hide the thing", defaultSnapshot())
	require.Equal(t, replyWhichComponent, reply)
	require.Empty(t, cmds)
}

func TestMatchShow(t *testing.T) {
	m := New(registry.New())

	reply, cmds := m.Match("show the news", defaultSnapshot())
	require.Equal(t, showReply("News Feed"), reply)
	require.Equal(t, []command.Command{command.Show(registry.News, layout.SizeSmall)}, cmds)
}

func TestMatchShowVisibleHighlightsInstead(t *testing.T) {
	m := New(registry.New())

	reply, cmds := m.Match("show the chart", defaultSnapshot())
	require.Equal(t, alreadyVisibleReply("Price Chart"), reply)
	require.Equal(t, []command.Command{command.Highlight(registry.Chart)}, cmds)
}

func TestMatchShowEverything(t *testing.T) {
	m := New(registry.New())
	snap := defaultSnapshot()

	_, cmds := m.Match("show everything", snap)
	// Five components are absent or hidden in the default snapshot.
	require.Len(t, cmds, 5)
	for _, cmd := range cmds {
		cc, ok := cmd.Component()
		require.True(t, ok)
		require.Equal(t, command.ActionShow, cc.Action)
		require.False(t, snap.State(cc.Component).Visible)
	}
}

func TestMatchShowEverythingAllVisible(t *testing.T) {
	reg := registry.New()
	m := New(reg)

	snap := &layout.Snapshot{Components: map[registry.ComponentID]layout.ComponentState{}}
	for _, c := range reg.All() {
		snap.Components[c.ID] = layout.ComponentState{Visible: true, Size: layout.Size(c.DefaultSize)}
	}

	reply, cmds := m.Match("show all panels", snap)
	require.Equal(t, replyAllVisible, reply)
	require.Empty(t, cmds)
}

func TestMatchResizeSteps(t *testing.T) {
	m := New(registry.New())
	snap := defaultSnapshot()

	_, cmds := m.Match("make the positions bigger", snap)
	require.Equal(t, []command.Command{command.Resize(registry.Positions, layout.SizeLarge)}, cmds)

	_, cmds = m.Match("shrink the watchlist", snap)
	require.Equal(t, []command.Command{command.Resize(registry.Watchlist, layout.SizeSmall)}, cmds)
}

func TestMatchResizeAtBounds(t *testing.T) {
	m := New(registry.New())
	snap := &layout.Snapshot{
		Components: map[registry.ComponentID]layout.ComponentState{
			registry.Chart: {Visible: true, Size: layout.SizeFull},
			registry.News:  {Visible: true, Size: layout.SizeSmall},
		},
	}

	reply, cmds := m.Match("make the chart bigger", snap)
	require.Equal(t, alreadyBiggestReply("Price Chart"), reply)
	require.Empty(t, cmds)

	reply, cmds = m.Match("make the news smaller", snap)
	require.Equal(t, alreadySmallestReply("News Feed"), reply)
	require.Empty(t, cmds)
}

func TestMatchFullWidth(t *testing.T) {
	m := New(registry.New())
	snap := defaultSnapshot()

	reply, cmds := m.Match("make the chart full width", snap)
	require.Equal(t, fullWidthReply("Price Chart"), reply)
	require.Equal(t, []command.Command{command.Resize(registry.Chart, layout.SizeFull)}, cmds)

	// "own row" is the other spelling of the same request.
	_, cmds = m.Match("put the positions on its own row", snap)
	require.Equal(t, []command.Command{command.Resize(registry.Positions, layout.SizeFull)}, cmds)
}

func TestMatchFullWidthIdempotent(t *testing.T) {
	m := New(registry.New())
	snap := &layout.Snapshot{
		Components: map[registry.ComponentID]layout.ComponentState{
			registry.Chart: {Visible: true, Size: layout.SizeFull},
		},
	}

	reply, cmds := m.Match("make the chart full width", snap)
	require.Equal(t, alreadyFullReply("Price Chart"), reply)
	require.Empty(t, cmds)
}

func TestMatchReorder(t *testing.T) {
	m := New(registry.New())
	snap := defaultSnapshot()

	reply, cmds := m.Match("move the chart to the top", snap)
	require.Equal(t, moveFirstReply("Price Chart"), reply)
	require.Equal(t, []command.Command{command.Reorder(registry.Chart, 0)}, cmds)

	_, cmds = m.Match("put the news at the end", snap)
	require.Equal(t, []command.Command{command.Reorder(registry.News, 8)}, cmds)
}

func TestMatchTheme(t *testing.T) {
	m := New(registry.New())
	snap := defaultSnapshot()

	reply, cmds := m.Match("switch to light mode", snap)
	require.Equal(t, replyThemeLight, reply)
	require.Equal(t, []command.Command{command.SetTheme(layout.ThemeLight)}, cmds)

	// The snapshot is already dark; asking for dark is a no-op.
	reply, cmds = m.Match("switch to dark theme", snap)
	require.Equal(t, alreadyThemeReply(layout.ThemeDark), reply)
	require.Empty(t, cmds)
}

func TestMatchLanguage(t *testing.T) {
	m := New(registry.New())
	snap := defaultSnapshot()

	reply, cmds := m.Match("switch to spanish", snap)
	require.Equal(t, languageReplies["es"], reply)
	require.Equal(t, []command.Command{command.SetLanguage("es")}, cmds)

	_, cmds = m.Match("parlez-vous français?", snap)
	require.Equal(t, []command.Command{command.SetLanguage("fr")}, cmds)

	reply, cmds = m.Match("switch to english", snap)
	require.Equal(t, replyLanguageAlready, reply)
	require.Empty(t, cmds)
}

func TestMatchAccentColor(t *testing.T) {
	m := New(registry.New())

	reply, cmds := m.Match("change the color to blue", defaultSnapshot())
	require.Equal(t, accentReplies["#0066ff"], reply)
	require.Equal(t, []command.Command{command.SetAccentColor("#0066ff")}, cmds)

	// Color names without the word "color" must not trigger the rule:
	// "red" alone is too ambiguous ("the chart is red today").
	_, cmds = m.Match("the chart is red today", defaultSnapshot())
	require.Empty(t, cmds)
}

func TestMatchGuidance(t *testing.T) {
	m := New(registry.New())

	reply, cmds := m.Match("where is the calculator?", defaultSnapshot())
	require.Equal(t, guidanceReply("Trading Calculator"), reply)
	require.Equal(t, []command.Command{
		command.Show(registry.Calculator, layout.SizeSmall),
		command.Highlight(registry.Calculator),
	}, cmds, "hidden components are shown before being highlighted")

	_, cmds = m.Match("where is the chart?", defaultSnapshot())
	require.Equal(t, []command.Command{command.Highlight(registry.Chart)}, cmds)

	reply, cmds = m.Match("help", defaultSnapshot())
	require.Equal(t, replyHelp, reply)
	require.Empty(t, cmds)
}

func TestMatchDefaultFallback(t *testing.T) {
	m := New(registry.New())

	reply, cmds := m.Match("what's the meaning of life?", defaultSnapshot())
	require.Equal(t, replyDefault, reply)
	require.Empty(t, cmds)
}

func TestMatchNilSnapshot(t *testing.T) {
	m := New(registry.New())

	// Without a snapshot every component reads as hidden at its zero size.
	_, cmds := m.Match("hide the chart", nil)
	require.Empty(t, cmds)

	_, cmds = m.Match("show the chart", nil)
	require.Equal(t, []command.Command{command.Show(registry.Chart, layout.SizeLarge)}, cmds)
}
