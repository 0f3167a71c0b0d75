package command

import (
	"testing"

	"github.com/stretchr/testify/require"

	"amy/internal/layout"
	"amy/internal/registry"
)

func TestAssembleDeduplicatesPreservingOrder(t *testing.T) {
	resp := Assemble("done", []Command{
		Show(registry.Chart, layout.SizeLarge),
		SetTheme(layout.ThemeDark),
		Show(registry.Chart, layout.SizeLarge),
		Highlight(registry.Chart),
		SetTheme(layout.ThemeDark),
	})

	require.Equal(t, []Command{
		Show(registry.Chart, layout.SizeLarge),
		SetTheme(layout.ThemeDark),
		Highlight(registry.Chart),
	}, resp.UIChanges)
}

func TestAssembleKeepsDistinctValues(t *testing.T) {
	resp := Assemble("ok", []Command{
		Resize(registry.Chart, layout.SizeLarge),
		Resize(registry.Chart, layout.SizeFull),
	})
	require.Len(t, resp.UIChanges, 2)
}

func TestAssembleNonEmptyContract(t *testing.T) {
	resp := Assemble("", nil)
	require.NotEmpty(t, resp.Message)
	require.NotNil(t, resp.UIChanges)
	require.Empty(t, resp.UIChanges)
}
