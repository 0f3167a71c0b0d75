// Package intent implements the deterministic rule-based resolver. It maps a
// lower-cased utterance plus the current layout snapshot to a canned reply
// and zero or more UI change commands, with no external dependency.
package intent

import (
	"regexp"
	"strings"

	"amy/internal/command"
	"amy/internal/layout"
	"amy/internal/registry"
)

// rule pairs a predicate over the lower-cased message with the handler that
// produces the response. Rules are evaluated top to bottom; the first
// predicate that matches wins and no further rules are tried, so precedence
// is the order of the table.
type rule struct {
	name string
	when func(msg string) bool
	run  func(m *Matcher, msg string, snap *layout.Snapshot) (string, []command.Command)
}

// Matcher is the deterministic resolver. It is pure and total: Match never
// fails, never guesses a component, and never emits a redundant command.
type Matcher struct {
	reg   *registry.Registry
	rules []rule
}

// New builds a matcher over the component catalog.
func New(reg *registry.Registry) *Matcher {
	return &Matcher{reg: reg, rules: ruleTable}
}

// Match resolves message against the rule table. Unmatched input falls
// through to a static help reply with no commands.
func (m *Matcher) Match(message string, snap *layout.Snapshot) (string, []command.Command) {
	msg := strings.ToLower(strings.TrimSpace(message))
	for _, r := range m.rules {
		if r.when(msg) {
			return r.run(m, msg, snap)
		}
	}
	return replyDefault, nil
}

var (
	greetingPattern   = regexp.MustCompile(`\b(hi|hello|hey|good (morning|afternoon|evening))\b`)
	movePattern       = regexp.MustCompile(`\b(move|put|place)\b`)
	everythingPattern = regexp.MustCompile(`\b(all|everything)\b`)
)

func containsAny(msg string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(msg, w) {
			return true
		}
	}
	return false
}

// ruleTable is the precedence order: greetings, guidance, presets,
// show/hide, resize, reorder, theme, language, accent color. The default
// fallback lives in Match itself.
var ruleTable = []rule{
	{
		name: "greeting",
		when: func(msg string) bool { return greetingPattern.MatchString(msg) },
		run: func(m *Matcher, msg string, snap *layout.Snapshot) (string, []command.Command) {
			return replyGreeting, nil
		},
	},
	{
		name: "guidance",
		when: func(msg string) bool {
			return containsAny(msg, "help", "what can you do", "how do i", "how to", "tutorial", "guide", "where is", "show me how")
		},
		run: (*Matcher).runGuidance,
	},
	{
		name: "preset",
		when: func(msg string) bool {
			return presetFor(msg) != ""
		},
		run: func(m *Matcher, msg string, snap *layout.Snapshot) (string, []command.Command) {
			preset := presetFor(msg)
			return presetReplies[preset], []command.Command{command.ApplyPreset(preset)}
		},
	},
	{
		name: "hide",
		when: func(msg string) bool { return containsAny(msg, "hide", "close", "remove") },
		run:  (*Matcher).runHide,
	},
	{
		name: "show",
		when: func(msg string) bool { return containsAny(msg, "show", "open", "add", "display") },
		run:  (*Matcher).runShow,
	},
	{
		name: "resize",
		when: func(msg string) bool {
			return containsAny(msg, "bigger", "larger", "expand", "smaller", "shrink", "compact") ||
				wantsFullWidth(msg)
		},
		run: (*Matcher).runResize,
	},
	{
		name: "reorder",
		when: func(msg string) bool {
			return movePattern.MatchString(msg) &&
				containsAny(msg, "left", "first", "top", "beginning", "right", "last", "end", "bottom")
		},
		run: (*Matcher).runReorder,
	},
	{
		name: "theme",
		when: func(msg string) bool {
			return containsAny(msg, "dark", "light") && containsAny(msg, "theme", "mode")
		},
		run: (*Matcher).runTheme,
	},
	{
		name: "language",
		when: func(msg string) bool { return languageFor(msg) != "" },
		run: func(m *Matcher, msg string, snap *layout.Snapshot) (string, []command.Command) {
			lang := languageFor(msg)
			if snap != nil && snap.Language == lang {
				return replyLanguageAlready, nil
			}
			return languageReplies[lang], []command.Command{command.SetLanguage(lang)}
		},
	},
	{
		name: "accent-color",
		when: func(msg string) bool {
			return strings.Contains(msg, "color") && accentFor(msg) != ""
		},
		run: func(m *Matcher, msg string, snap *layout.Snapshot) (string, []command.Command) {
			hex := accentFor(msg)
			return accentReplies[hex], []command.Command{command.SetAccentColor(hex)}
		},
	},
}

// runGuidance walks the user to a component: show it first if hidden, then
// highlight it. Without a resolvable component it falls back to the help
// text.
func (m *Matcher) runGuidance(msg string, snap *layout.Snapshot) (string, []command.Command) {
	id, ok := m.reg.Resolve(msg)
	if !ok {
		return replyHelp, nil
	}

	var cmds []command.Command
	state := snap.State(id)
	if !state.Visible {
		cmds = append(cmds, command.Show(id, defaultSize(m.reg, id)))
	}
	cmds = append(cmds, command.Highlight(id))
	return guidanceReply(m.reg.Name(id)), cmds
}

func (m *Matcher) runHide(msg string, snap *layout.Snapshot) (string, []command.Command) {
	id, ok := m.reg.Resolve(msg)
	if !ok {
		return replyWhichComponent, nil
	}
	if !snap.State(id).Visible {
		return alreadyHiddenReply(m.reg.Name(id)), nil
	}
	return hideReply(m.reg.Name(id)), []command.Command{command.Hide(id)}
}

func (m *Matcher) runShow(msg string, snap *layout.Snapshot) (string, []command.Command) {
	if everythingPattern.MatchString(msg) {
		var cmds []command.Command
		for _, c := range m.reg.All() {
			if !snap.State(c.ID).Visible {
				cmds = append(cmds, command.Show(c.ID, layout.Size(c.DefaultSize)))
			}
		}
		if len(cmds) == 0 {
			return replyAllVisible, nil
		}
		return replyShowEverything, cmds
	}

	id, ok := m.reg.Resolve(msg)
	if !ok {
		return replyWhichComponent, nil
	}
	if snap.State(id).Visible {
		// Already on screen: draw the eye instead of re-showing it.
		return alreadyVisibleReply(m.reg.Name(id)), []command.Command{command.Highlight(id)}
	}
	return showReply(m.reg.Name(id)), []command.Command{command.Show(id, defaultSize(m.reg, id))}
}

func (m *Matcher) runResize(msg string, snap *layout.Snapshot) (string, []command.Command) {
	id, ok := m.reg.Resolve(msg)
	if !ok {
		return replyWhichComponent, nil
	}
	name := m.reg.Name(id)
	current := snap.State(id).Size

	if wantsFullWidth(msg) {
		if current == layout.SizeFull {
			return alreadyFullReply(name), nil
		}
		return fullWidthReply(name), []command.Command{command.Resize(id, layout.SizeFull)}
	}

	if containsAny(msg, "bigger", "larger", "expand") {
		next, stepped := current.Bigger()
		if !stepped {
			return alreadyBiggestReply(name), nil
		}
		return biggerReply(name), []command.Command{command.Resize(id, next)}
	}

	next, stepped := current.Smaller()
	if !stepped {
		return alreadySmallestReply(name), nil
	}
	return smallerReply(name), []command.Command{command.Resize(id, next)}
}

func (m *Matcher) runReorder(msg string, snap *layout.Snapshot) (string, []command.Command) {
	id, ok := m.reg.Resolve(msg)
	if !ok {
		return replyWhichComponent, nil
	}
	name := m.reg.Name(id)
	if containsAny(msg, "left", "first", "top", "beginning") {
		return moveFirstReply(name), []command.Command{command.Reorder(id, 0)}
	}
	return moveLastReply(name), []command.Command{command.Reorder(id, 8)}
}

func (m *Matcher) runTheme(msg string, snap *layout.Snapshot) (string, []command.Command) {
	theme := layout.ThemeDark
	if strings.Contains(msg, "light") {
		theme = layout.ThemeLight
	}
	if snap != nil && snap.Theme == theme {
		return alreadyThemeReply(theme), nil
	}
	if theme == layout.ThemeDark {
		return replyThemeDark, []command.Command{command.SetTheme(theme)}
	}
	return replyThemeLight, []command.Command{command.SetTheme(theme)}
}

// wantsFullWidth covers "full width/screen/row" and "on its own row".
func wantsFullWidth(msg string) bool {
	return (strings.Contains(msg, "full") && containsAny(msg, "width", "screen", "row")) ||
		strings.Contains(msg, "own row")
}

func defaultSize(reg *registry.Registry, id registry.ComponentID) layout.Size {
	if c, ok := reg.Get(id); ok {
		return layout.Size(c.DefaultSize)
	}
	return layout.SizeMedium
}

// presetFor maps preset trigger phrases to a preset name, or "".
func presetFor(msg string) command.Preset {
	switch {
	case strings.Contains(msg, "trading") && containsAny(msg, "layout", "setup", "mode"):
		return command.PresetTrading
	case containsAny(msg, "minimal", "simple", "clean"):
		return command.PresetMinimal
	case containsAny(msg, "analysis", "research"):
		return command.PresetAnalysis
	case strings.Contains(msg, "monitor") && containsAny(msg, "layout", "mode"):
		return command.PresetMonitoring
	case strings.Contains(msg, "default") && strings.Contains(msg, "layout"):
		return command.PresetDefault
	}
	return ""
}

// languageFor maps language names (in English and natively) to codes, or "".
func languageFor(msg string) layout.Language {
	switch {
	case containsAny(msg, "spanish", "español"):
		return "es"
	case containsAny(msg, "french", "français"):
		return "fr"
	case containsAny(msg, "german", "deutsch"):
		return "de"
	case containsAny(msg, "chinese", "中文"):
		return "zh"
	case containsAny(msg, "arabic", "العربية"):
		return "ar"
	case containsAny(msg, "japanese", "日本語"):
		return "ja"
	case containsAny(msg, "portuguese", "português"):
		return "pt"
	case containsAny(msg, "russian", "русский"):
		return "ru"
	case strings.Contains(msg, "english"):
		return "en"
	}
	return ""
}

// accentFor maps color names to their hex values, or "".
func accentFor(msg string) string {
	switch {
	case strings.Contains(msg, "red"):
		return "#ff444f"
	case strings.Contains(msg, "blue"):
		return "#0066ff"
	case strings.Contains(msg, "green"):
		return "#00c853"
	case containsAny(msg, "teal", "cyan"):
		return "#00d0ff"
	case strings.Contains(msg, "purple"):
		return "#9c27b0"
	case strings.Contains(msg, "orange"):
		return "#ff9800"
	}
	return ""
}
