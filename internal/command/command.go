// Package command defines the validated UI change command, the permissive
// raw form accepted from untrusted upstream output, and the normalization
// between the two.
package command

import (
	"fmt"
	"strings"

	"amy/internal/layout"
	"amy/internal/registry"
	"amy/internal/shared/jsonx"
)

// Action is a component-targeted operation.
type Action string

const (
	ActionShow      Action = "show"
	ActionHide      Action = "hide"
	ActionResize    Action = "resize"
	ActionHighlight Action = "highlight"
	ActionReorder   Action = "reorder"
	ActionNavigate  Action = "navigate"
)

// ValidAction reports whether a belongs to the closed action set.
func ValidAction(a Action) bool {
	switch a {
	case ActionShow, ActionHide, ActionResize, ActionHighlight, ActionReorder, ActionNavigate:
		return true
	}
	return false
}

// Preset names a fixed bundle of component visibility/size assignments.
// The bundle contents are caller-side configuration; the engine only names
// the preset.
type Preset string

const (
	PresetDefault    Preset = "default"
	PresetTrading    Preset = "trading"
	PresetMinimal    Preset = "minimal"
	PresetAnalysis   Preset = "analysis"
	PresetMonitoring Preset = "monitoring"
)

// ValidPreset reports whether p is a known preset name.
func ValidPreset(p Preset) bool {
	switch p {
	case PresetDefault, PresetTrading, PresetMinimal, PresetAnalysis, PresetMonitoring:
		return true
	}
	return false
}

// ComponentChange targets a single component.
type ComponentChange struct {
	Component registry.ComponentID
	Action    Action
	// Value carries the action argument: a size for resize (and optionally
	// show), a position index for reorder.
	Value string
}

// GlobalChange changes exactly one global display setting.
type GlobalChange struct {
	Theme       layout.Theme
	Language    layout.Language
	AccentColor string
	Preset      Preset
	URL         string
}

// Command is exactly one of a component-scoped change or a global setting
// change. The zero value is invalid; use the constructors.
type Command struct {
	component *ComponentChange
	global    *GlobalChange
}

// NewComponent builds a component-scoped command.
func NewComponent(id registry.ComponentID, action Action, value string) Command {
	return Command{component: &ComponentChange{Component: id, Action: action, Value: value}}
}

// Show shows a component, optionally at a size.
func Show(id registry.ComponentID, size layout.Size) Command {
	return NewComponent(id, ActionShow, string(size))
}

// Hide hides a component.
func Hide(id registry.ComponentID) Command {
	return NewComponent(id, ActionHide, "")
}

// Resize resizes a component.
func Resize(id registry.ComponentID, size layout.Size) Command {
	return NewComponent(id, ActionResize, string(size))
}

// Highlight draws attention to a visible component.
func Highlight(id registry.ComponentID) Command {
	return NewComponent(id, ActionHighlight, "")
}

// Reorder moves a component to a position index.
func Reorder(id registry.ComponentID, order int) Command {
	return NewComponent(id, ActionReorder, fmt.Sprintf("%d", order))
}

// SetTheme switches the global theme.
func SetTheme(t layout.Theme) Command {
	return Command{global: &GlobalChange{Theme: t}}
}

// SetLanguage switches the interface language.
func SetLanguage(l layout.Language) Command {
	return Command{global: &GlobalChange{Language: l}}
}

// SetAccentColor changes the accent color.
func SetAccentColor(hex string) Command {
	return Command{global: &GlobalChange{AccentColor: hex}}
}

// ApplyPreset applies a named layout preset.
func ApplyPreset(p Preset) Command {
	return Command{global: &GlobalChange{Preset: p}}
}

// Navigate points the client at a URL.
func Navigate(url string) Command {
	return Command{global: &GlobalChange{URL: url}}
}

// Component returns the component-scoped change, if any.
func (c Command) Component() (ComponentChange, bool) {
	if c.component == nil {
		return ComponentChange{}, false
	}
	return *c.component, true
}

// Global returns the global change, if any.
func (c Command) Global() (GlobalChange, bool) {
	if c.global == nil {
		return GlobalChange{}, false
	}
	return *c.global, true
}

// key is the dedup identity: component+action+value, or global field+value.
func (c Command) key() string {
	if c.component != nil {
		return strings.Join([]string{"c", string(c.component.Component), string(c.component.Action), c.component.Value}, "|")
	}
	if c.global != nil {
		g := c.global
		switch {
		case g.Theme != "":
			return "g|theme|" + string(g.Theme)
		case g.Language != "":
			return "g|language|" + string(g.Language)
		case g.AccentColor != "":
			return "g|accentColor|" + g.AccentColor
		case g.Preset != "":
			return "g|preset|" + string(g.Preset)
		case g.URL != "":
			return "g|url|" + g.URL
		}
	}
	return ""
}

// wire is the sparse outbound encoding: only the keys relevant to the
// command are emitted.
type wire struct {
	Component string `json:"component,omitempty"`
	Action    string `json:"action,omitempty"`
	Value     string `json:"value,omitempty"`
	Theme     string `json:"theme,omitempty"`
	Language  string `json:"language,omitempty"`
	Accent    string `json:"accentColor,omitempty"`
	Preset    string `json:"preset,omitempty"`
	URL       string `json:"url,omitempty"`
}

// MarshalJSON flattens the tagged union into the sparse wire form.
func (c Command) MarshalJSON() ([]byte, error) {
	w := wire{}
	switch {
	case c.component != nil:
		w.Component = string(c.component.Component)
		w.Action = string(c.component.Action)
		w.Value = c.component.Value
	case c.global != nil:
		w.Theme = string(c.global.Theme)
		w.Language = string(c.global.Language)
		w.Accent = c.global.AccentColor
		w.Preset = string(c.global.Preset)
		w.URL = c.global.URL
	}
	return jsonx.Marshal(w)
}

// Raw is the permissive inbound command shape. Upstream (model) output is
// unmarshalled into Raw and must pass Normalize before use. Value accepts
// either a string or a number since models emit both.
type Raw struct {
	Component string   `json:"component,omitempty"`
	Action    string   `json:"action,omitempty"`
	Value     RawValue `json:"value,omitempty"`
	Theme     string   `json:"theme,omitempty"`
	Language  string   `json:"language,omitempty"`
	Accent    string   `json:"accentColor,omitempty"`
	Preset    string   `json:"preset,omitempty"`
	URL       string   `json:"url,omitempty"`
}

// RawValue tolerates JSON strings and numbers.
type RawValue string

// UnmarshalJSON accepts "full", 3, or 3.0 and stores the string form.
func (v *RawValue) UnmarshalJSON(data []byte) error {
	var s string
	if err := jsonx.Unmarshal(data, &s); err == nil {
		*v = RawValue(s)
		return nil
	}
	var n jsonx.Number
	if err := jsonx.Unmarshal(data, &n); err == nil {
		*v = RawValue(n.String())
		return nil
	}
	return fmt.Errorf("value must be a string or number: %s", string(data))
}

// FromCommand converts a validated command back to its raw form. The intent
// matcher emits Raw through this so both resolution paths feed the
// normalizer identically.
func FromCommand(c Command) Raw {
	raw := Raw{}
	if cc, ok := c.Component(); ok {
		raw.Component = string(cc.Component)
		raw.Action = string(cc.Action)
		raw.Value = RawValue(cc.Value)
	} else if g, ok := c.Global(); ok {
		raw.Theme = string(g.Theme)
		raw.Language = string(g.Language)
		raw.Accent = g.AccentColor
		raw.Preset = string(g.Preset)
		raw.URL = g.URL
	}
	return raw
}

// FromCommands maps FromCommand over a slice.
func FromCommands(cmds []Command) []Raw {
	raws := make([]Raw, 0, len(cmds))
	for _, c := range cmds {
		raws = append(raws, FromCommand(c))
	}
	return raws
}
