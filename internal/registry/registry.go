// Package registry holds the static catalog of controllable UI components
// and the alias table used to find them in free text.
package registry

import "strings"

// ComponentID identifies one addressable region of the interface.
type ComponentID string

const (
	Chart          ComponentID = "chart"
	Positions      ComponentID = "positions"
	Watchlist      ComponentID = "watchlist"
	OrderPanel     ComponentID = "orderPanel"
	MarketOverview ComponentID = "marketOverview"
	News           ComponentID = "news"
	Portfolio      ComponentID = "portfolio"
	Clock          ComponentID = "clock"
	Calculator     ComponentID = "calculator"
)

// Component describes one catalog entry.
type Component struct {
	ID          ComponentID `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	// DefaultSize is the size a component comes back at when shown after
	// being hidden.
	DefaultSize string `json:"defaultSize"`
}

// alias maps one lowercase phrase to a component. The table is ordered:
// multi-word aliases must precede the generic single-word ones so that
// "market overview" wins over "market".
type alias struct {
	phrase string
	id     ComponentID
}

// Registry is the fixed component catalog. It is immutable after New.
type Registry struct {
	components []Component
	byID       map[ComponentID]Component
	aliases    []alias
}

// New returns the catalog of trading dashboard components.
func New() *Registry {
	components := []Component{
		{Chart, "Price Chart", "Real-time price chart with trading indicators", "large"},
		{Positions, "Open Positions", "Shows current open trades and P/L", "medium"},
		{Watchlist, "Watchlist", "User's favorite markets to track", "medium"},
		{OrderPanel, "Order Panel", "Trade execution panel with buy/sell options", "medium"},
		{MarketOverview, "Market Overview", "Summary of market conditions", "small"},
		{News, "News Feed", "Latest financial news and updates", "small"},
		{Portfolio, "Portfolio Summary", "Account balance and portfolio breakdown", "small"},
		{Clock, "World Clock", "Shows time in major financial centers", "small"},
		{Calculator, "Trading Calculator", "Calculate position sizes and risk", "small"},
	}

	byID := make(map[ComponentID]Component, len(components))
	for _, c := range components {
		byID[c.ID] = c
	}

	return &Registry{
		components: components,
		byID:       byID,
		aliases: []alias{
			{"market overview", MarketOverview},
			{"order panel", OrderPanel},
			{"rise/fall", OrderPanel},
			{"rise fall", OrderPanel},
			{"watch list", Watchlist},
			{"world clock", Clock},
			{"chart", Chart},
			{"position", Positions},
			{"watchlist", Watchlist},
			{"order", OrderPanel},
			{"market", MarketOverview},
			{"news", News},
			{"portfolio", Portfolio},
			{"clock", Clock},
			{"calculator", Calculator},
		},
	}
}

// Resolve scans the alias table and returns the first component whose alias
// occurs as a substring of the lower-cased input. A miss is not an error.
func (r *Registry) Resolve(text string) (ComponentID, bool) {
	lower := strings.ToLower(text)
	for _, a := range r.aliases {
		if strings.Contains(lower, a.phrase) {
			return a.id, true
		}
	}
	return "", false
}

// Contains reports whether id belongs to the closed component set.
func (r *Registry) Contains(id ComponentID) bool {
	_, ok := r.byID[id]
	return ok
}

// Get returns the catalog entry for id.
func (r *Registry) Get(id ComponentID) (Component, bool) {
	c, ok := r.byID[id]
	return c, ok
}

// Name returns the display name for id, or the raw id when unknown.
func (r *Registry) Name(id ComponentID) string {
	if c, ok := r.byID[id]; ok {
		return c.Name
	}
	return string(id)
}

// All returns the catalog in registration order.
func (r *Registry) All() []Component {
	out := make([]Component, len(r.components))
	copy(out, r.components)
	return out
}
