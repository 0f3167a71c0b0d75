// Package layout models the caller-owned snapshot of the interface state.
// The engine only reads it and proposes deltas; it never mutates it.
package layout

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"amy/internal/registry"
)

// Size is a component's footprint in the grid.
type Size string

const (
	SizeSmall  Size = "small"
	SizeMedium Size = "medium"
	SizeLarge  Size = "large"
	SizeFull   Size = "full"
)

var sizeOrder = []Size{SizeSmall, SizeMedium, SizeLarge, SizeFull}

// ValidSize reports whether s is one of the closed size set.
func ValidSize(s Size) bool {
	for _, v := range sizeOrder {
		if s == v {
			return true
		}
	}
	return false
}

// Bigger returns the next size up and whether a step was possible.
func (s Size) Bigger() (Size, bool) {
	for i, v := range sizeOrder {
		if s == v && i < len(sizeOrder)-1 {
			return sizeOrder[i+1], true
		}
	}
	return s, false
}

// Smaller returns the next size down and whether a step was possible.
func (s Size) Smaller() (Size, bool) {
	for i, v := range sizeOrder {
		if s == v && i > 0 {
			return sizeOrder[i-1], true
		}
	}
	return s, false
}

// Theme is the global color scheme.
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// ValidTheme reports whether t is dark or light.
func ValidTheme(t Theme) bool {
	return t == ThemeDark || t == ThemeLight
}

// Language is an interface language code.
type Language string

var languages = map[Language]bool{
	"en": true, "es": true, "fr": true, "de": true, "zh": true,
	"ar": true, "ja": true, "pt": true, "ru": true,
}

// ValidLanguage reports whether l is a supported language code.
func ValidLanguage(l Language) bool {
	return languages[l]
}

var accentColorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// ValidAccentColor reports whether c is a strict #RRGGBB hex color.
func ValidAccentColor(c string) bool {
	return accentColorPattern.MatchString(c)
}

// ComponentState is the display state of one component.
type ComponentState struct {
	Visible bool `json:"visible"`
	Size    Size `json:"size"`
	Order   int  `json:"order"`
}

// Snapshot describes the current interface state, supplied fresh on every
// request.
type Snapshot struct {
	Components   map[registry.ComponentID]ComponentState `json:"components"`
	Theme        Theme                                   `json:"theme"`
	Language     Language                                `json:"language"`
	AccentColor  string                                  `json:"accentColor"`
	HealthIssues []string                                `json:"healthIssues,omitempty"`
}

// State returns the state for id; missing components read as hidden.
func (s *Snapshot) State(id registry.ComponentID) ComponentState {
	if s == nil || s.Components == nil {
		return ComponentState{}
	}
	return s.Components[id]
}

// Describe renders the snapshot as a compact textual summary for the
// generative backend's context window.
func (s *Snapshot) Describe(reg *registry.Registry) string {
	var visible, hidden []string
	if s != nil {
		ids := make([]string, 0, len(s.Components))
		for id := range s.Components {
			ids = append(ids, string(id))
		}
		sort.Strings(ids)
		for _, raw := range ids {
			id := registry.ComponentID(raw)
			state := s.Components[id]
			if state.Visible {
				visible = append(visible, fmt.Sprintf("%s (size: %s, order: %d)", id, state.Size, state.Order))
			} else {
				hidden = append(hidden, string(id))
			}
		}
	}

	parts := []string{
		"CURRENT LAYOUT - Visible components: " + joinOrNone(visible),
		"Hidden components: " + joinOrNone(hidden),
	}
	if s != nil {
		parts = append(parts, fmt.Sprintf("Theme: %s, Language: %s, Accent: %s", s.Theme, s.Language, s.AccentColor))
		if len(s.HealthIssues) > 0 {
			parts = append(parts, "Detected issues: "+strings.Join(s.HealthIssues, "; "))
		}
	}
	return strings.Join(parts, ". ")
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "none"
	}
	return strings.Join(items, ", ")
}

// UserContext is an optional account summary used only to enrich generated
// text. It never gates command generation.
type UserContext struct {
	Authenticated bool    `json:"authenticated"`
	Balance       float64 `json:"balance,omitempty"`
	Currency      string  `json:"currency,omitempty"`
	OpenPositions int     `json:"openPositions,omitempty"`
	TotalPnL      float64 `json:"totalPnL,omitempty"`
}

// Describe renders the user context as a single prompt line, or "" when the
// user is not authenticated.
func (u *UserContext) Describe() string {
	if u == nil || !u.Authenticated {
		return ""
	}
	return fmt.Sprintf("USER - Balance: %.2f %s, open positions: %d, total P/L: %.2f",
		u.Balance, u.Currency, u.OpenPositions, u.TotalPnL)
}
