package intent

import (
	"fmt"

	"amy/internal/command"
	"amy/internal/layout"
)

const (
	replyGreeting = "Hi! I'm Amy, your trading assistant. I can show or hide panels, resize them, change themes and languages, or set up a whole layout for you. What would you like to do?"

	replyHelp = `Hi! I'm Amy, your AI trading assistant. Here's what I can do:

🎨 **UI Customization:**
- "Switch to dark/light theme"
- "Hide the news panel" / "Show the calculator"
- "Change color to blue/red/green/purple"

📐 **Layout Control:**
- "Make the chart bigger" / "Make positions smaller"
- "Move the chart to the top"
- "Put the positions on its own row" (full width)
- "Switch to trading/minimal/analysis layout"

🌍 **Language:**
- "Switch to Spanish/French/Chinese/Arabic"

📊 **Layout Presets:**
- "Trading layout" - Focus on chart & order panel
- "Minimal layout" - Just the essentials
- "Analysis layout" - Market data & news focus
- "Monitoring layout" - Watch your positions

Just tell me what you need! 🚀`

	replyDefault = "I can help you customize your trading interface! Try:\n\n• \"Make the chart bigger\"\n• \"Switch to trading layout\"\n• \"Move positions to the top\"\n• \"Hide the news\"\n• \"Show everything\"\n\nWhat would you like to adjust?"

	replyWhichComponent = "Which panel do you mean? I can work with the chart, positions, watchlist, order panel, market overview, news, portfolio, clock, or calculator."

	replyShowEverything = "Brought everything onto your workspace! 📊"
	replyAllVisible     = "Everything is already on screen - nothing to add!"

	replyThemeDark  = "Switching to dark theme for easier viewing during long trading sessions! 🌙"
	replyThemeLight = "Switching to light theme! Great for well-lit environments. ☀️"

	replyLanguageAlready = "You're already using that language!"
)

var presetReplies = map[command.Preset]string{
	command.PresetTrading:    "Switching to trading layout! I've optimized the view with a large chart, your positions, and the order panel front and center. Let's trade! 📈",
	command.PresetMinimal:    "Here's a minimal, distraction-free layout with just the essentials: a full-width chart and the order panel. Perfect for focused trading! 🎯",
	command.PresetAnalysis:   "Switching to analysis mode! I've arranged the layout to focus on market data, news, and analysis tools. Great for market research! 📊",
	command.PresetMonitoring: "Monitoring layout activated! Your positions are now prominent so you can keep a close eye on your trades. 👀",
	command.PresetDefault:    "Restored the default layout! Everything is back to the standard arrangement. 🔄",
}

var languageReplies = map[layout.Language]string{
	"en": "Switching back to English!",
	"es": "¡Cambiando a español! La interfaz ahora se mostrará en español.",
	"fr": "Passage au français ! L'interface sera maintenant en français.",
	"de": "Wechsel zu Deutsch! Die Oberfläche wird jetzt auf Deutsch angezeigt.",
	"zh": "切换到中文！界面现在将以中文显示。",
	"ar": "تم التبديل إلى العربية! ستظهر الواجهة الآن باللغة العربية.",
	"ja": "日本語に切り替えます！インターフェースが日本語で表示されます。",
	"pt": "Mudando para português! A interface agora será exibida em português.",
	"ru": "Переключаюсь на русский! Интерфейс теперь будет на русском языке.",
}

var accentReplies = map[string]string{
	"#ff444f": "Changed the accent color to Deriv red! 🔴",
	"#0066ff": "Changed the accent color to blue! 🔵",
	"#00c853": "Changed the accent color to green! 🟢",
	"#00d0ff": "Changed the accent color to teal! Perfect for that modern look! 💎",
	"#9c27b0": "Changed the accent color to purple! 💜",
	"#ff9800": "Changed the accent color to orange! 🟠",
}

func guidanceReply(name string) string {
	return fmt.Sprintf("Sure! I've highlighted the %s for you - that's where you'll find it. 💡", name)
}

func hideReply(name string) string {
	return fmt.Sprintf("Hidden the %s. The layout automatically adjusts to fill the space! 👋", name)
}

func alreadyHiddenReply(name string) string {
	return fmt.Sprintf("The %s is already hidden - nothing to do there!", name)
}

func showReply(name string) string {
	return fmt.Sprintf("Added the %s to your workspace! 📊", name)
}

func alreadyVisibleReply(name string) string {
	return fmt.Sprintf("The %s is already on screen - I've highlighted it for you!", name)
}

func fullWidthReply(name string) string {
	return fmt.Sprintf("The %s now spans the full width! 📺", name)
}

func alreadyFullReply(name string) string {
	return fmt.Sprintf("The %s already spans the full width!", name)
}

func biggerReply(name string) string {
	return fmt.Sprintf("Made the %s larger! It now takes up more space on your screen. 📐", name)
}

func alreadyBiggestReply(name string) string {
	return fmt.Sprintf("The %s is already at its maximum size!", name)
}

func smallerReply(name string) string {
	return fmt.Sprintf("Made the %s smaller to save space! 📏", name)
}

func alreadySmallestReply(name string) string {
	return fmt.Sprintf("The %s is already at its smallest size!", name)
}

func moveFirstReply(name string) string {
	return fmt.Sprintf("Moved the %s to the beginning of the layout! ⬅️", name)
}

func moveLastReply(name string) string {
	return fmt.Sprintf("Moved the %s to the end of the layout! ➡️", name)
}

func alreadyThemeReply(theme layout.Theme) string {
	return fmt.Sprintf("You're already on the %s theme!", theme)
}
