package command

import (
	"strconv"
	"strings"

	"amy/internal/layout"
	"amy/internal/logging"
	"amy/internal/registry"
)

// DropReason labels why a raw command was discarded.
type DropReason string

const (
	DropUnknownComponent DropReason = "unknown_component"
	DropUnknownAction    DropReason = "unknown_action"
	DropBadValue         DropReason = "bad_value"
	DropBadTheme         DropReason = "bad_theme"
	DropBadLanguage      DropReason = "bad_language"
	DropBadAccentColor   DropReason = "bad_accent_color"
	DropBadPreset        DropReason = "bad_preset"
	DropMixedScope       DropReason = "mixed_scope"
	DropEmpty            DropReason = "empty"
)

// Normalizer validates raw commands against the component catalog and the
// closed enums, silently dropping anything malformed. Drops are counted and
// debug-logged but never surfaced to the caller.
type Normalizer struct {
	reg    *registry.Registry
	logger logging.Logger
	onDrop func(reason DropReason)
}

// NewNormalizer builds a normalizer. onDrop may be nil.
func NewNormalizer(reg *registry.Registry, logger logging.Logger, onDrop func(DropReason)) *Normalizer {
	return &Normalizer{reg: reg, logger: logging.OrNop(logger), onDrop: onDrop}
}

// Normalize converts raw commands to validated ones, preserving order.
// Invalid entries are dropped, never reported as errors.
func (n *Normalizer) Normalize(raws []Raw) []Command {
	out := make([]Command, 0, len(raws))
	for _, raw := range raws {
		cmds, reason := n.normalizeOne(raw)
		if reason != "" {
			n.drop(raw, reason)
			continue
		}
		out = append(out, cmds...)
	}
	return out
}

func (n *Normalizer) drop(raw Raw, reason DropReason) {
	n.logger.Debug("dropping command (%s): component=%q action=%q value=%q theme=%q language=%q accent=%q preset=%q url=%q",
		reason, raw.Component, raw.Action, raw.Value, raw.Theme, raw.Language, raw.Accent, raw.Preset, raw.URL)
	if n.onDrop != nil {
		n.onDrop(reason)
	}
}

// normalizeOne validates a single raw command. A raw command carrying several
// global settings (a shape models like to emit) is split into one command per
// setting; everything else maps 1:1.
func (n *Normalizer) normalizeOne(raw Raw) ([]Command, DropReason) {
	// A bare navigate with a URL is a global change in disguise.
	componentScoped := raw.Component != "" || (raw.Action != "" && Action(raw.Action) != ActionNavigate)
	globalScoped := raw.Theme != "" || raw.Language != "" || raw.Accent != "" || raw.Preset != "" || raw.URL != ""

	switch {
	case componentScoped && globalScoped:
		// Structural violation: drop the whole command rather than guess
		// which half to honor.
		return nil, DropMixedScope
	case componentScoped:
		cmd, reason := n.normalizeComponent(raw)
		if reason != "" {
			return nil, reason
		}
		return []Command{cmd}, ""
	case globalScoped:
		return n.normalizeGlobal(raw)
	default:
		return nil, DropEmpty
	}
}

func (n *Normalizer) normalizeComponent(raw Raw) (Command, DropReason) {
	id := registry.ComponentID(raw.Component)
	if !n.reg.Contains(id) {
		return Command{}, DropUnknownComponent
	}
	action := Action(strings.ToLower(raw.Action))
	if !ValidAction(action) || action == ActionNavigate {
		return Command{}, DropUnknownAction
	}

	value := string(raw.Value)
	switch action {
	case ActionResize:
		if !layout.ValidSize(layout.Size(value)) {
			return Command{}, DropBadValue
		}
	case ActionReorder:
		if _, err := strconv.Atoi(value); err != nil {
			return Command{}, DropBadValue
		}
	case ActionShow:
		// An optional size hint is kept when valid, cleared otherwise.
		if value != "" && !layout.ValidSize(layout.Size(value)) {
			value = ""
		}
	default:
		value = ""
	}

	return NewComponent(id, action, value), ""
}

func (n *Normalizer) normalizeGlobal(raw Raw) ([]Command, DropReason) {
	var out []Command
	if raw.Theme != "" {
		theme := layout.Theme(strings.ToLower(raw.Theme))
		if !layout.ValidTheme(theme) {
			return nil, DropBadTheme
		}
		out = append(out, SetTheme(theme))
	}
	if raw.Language != "" {
		lang := layout.Language(strings.ToLower(raw.Language))
		if !layout.ValidLanguage(lang) {
			return nil, DropBadLanguage
		}
		out = append(out, SetLanguage(lang))
	}
	if raw.Accent != "" {
		if !layout.ValidAccentColor(raw.Accent) {
			return nil, DropBadAccentColor
		}
		out = append(out, SetAccentColor(strings.ToLower(raw.Accent)))
	}
	if raw.Preset != "" {
		preset := Preset(strings.ToLower(raw.Preset))
		if !ValidPreset(preset) {
			return nil, DropBadPreset
		}
		out = append(out, ApplyPreset(preset))
	}
	if raw.URL != "" {
		out = append(out, Navigate(raw.URL))
	}
	return out, ""
}
