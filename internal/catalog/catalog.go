// Package catalog holds the static table of canonical bipolar labels. The
// table is immutable after package init; concurrent readers need no locking.
package catalog

import "sort"

// Label describes one bipolar axis. A score of +1 expresses full agreement
// with the right phrase, -1 full agreement with the left phrase.
type Label struct {
	ID       string
	Left     string
	Right    string
	Category string
	Weight   int
}

// PhraseFor returns the resulting phrase selected by the score's sign.
// Zero resolves to the right phrase.
func (l Label) PhraseFor(score float64) string {
	if score < 0 {
		return l.Left
	}
	return l.Right
}

// OppositePhraseFor returns the phrase on the other side of the score's sign.
func (l Label) OppositePhraseFor(score float64) string {
	if score < 0 {
		return l.Right
	}
	return l.Left
}

// Macro category IDs. General is the fallback bucket, not a catalog category.
const (
	CategoryPolitics      = "politics"
	CategoryEconomy       = "economy"
	CategorySociety       = "society"
	CategoryTechnology    = "technology"
	CategoryCulture       = "culture"
	CategoryEnvironment   = "environment"
	CategoryEntertainment = "entertainment"
	CategoryLifestyle     = "lifestyle_career"
	CategoryGeneral       = "general"
)

// Categories lists the catalog categories in declaration order.
var Categories = []string{
	CategoryPolitics,
	CategoryEconomy,
	CategorySociety,
	CategoryTechnology,
	CategoryCulture,
	CategoryEnvironment,
	CategoryEntertainment,
	CategoryLifestyle,
}

// IsCategory reports whether id names a catalog category or the general
// fallback bucket.
func IsCategory(id string) bool {
	if id == CategoryGeneral {
		return true
	}
	for _, c := range Categories {
		if c == id {
			return true
		}
	}
	return false
}

// labels is the full catalog, grouped by category in declaration order.
var labels = []Label{
	// politics
	{ID: "ideology", Left: "progressive left-leaning", Right: "conservative right-leaning", Category: CategoryPolitics, Weight: 10},
	{ID: "authority", Left: "questions authority", Right: "defers to authority", Category: CategoryPolitics, Weight: 9},
	{ID: "nationalism", Left: "globally minded", Right: "nation-first", Category: CategoryPolitics, Weight: 8},
	{ID: "institutional_trust", Left: "distrusts institutions", Right: "trusts institutions", Category: CategoryPolitics, Weight: 7},
	{ID: "free_speech", Left: "favors content moderation", Right: "favors unrestricted speech", Category: CategoryPolitics, Weight: 6},

	// economy
	{ID: "market_regulation", Left: "prefers free markets", Right: "prefers state regulation", Category: CategoryEconomy, Weight: 9},
	{ID: "wealth_redistribution", Left: "opposes redistribution", Right: "supports redistribution", Category: CategoryEconomy, Weight: 8},
	{ID: "consumerism", Left: "frugal and saving-oriented", Right: "consumption-oriented", Category: CategoryEconomy, Weight: 6},
	{ID: "economic_optimism", Left: "pessimistic about the economy", Right: "optimistic about the economy", Category: CategoryEconomy, Weight: 5},

	// society
	{ID: "tradition", Left: "embraces social change", Right: "upholds tradition", Category: CategorySociety, Weight: 9},
	{ID: "collectivism", Left: "individualist", Right: "collectivist", Category: CategorySociety, Weight: 8},
	{ID: "diversity", Left: "skeptical of diversity", Right: "embraces diversity", Category: CategorySociety, Weight: 7},
	{ID: "gender_roles", Left: "prefers traditional roles", Right: "egalitarian about roles", Category: CategorySociety, Weight: 6},
	{ID: "social_trust", Left: "wary of strangers", Right: "trusting of strangers", Category: CategorySociety, Weight: 5},
	{ID: "family_centrality", Left: "centers life on self", Right: "centers life on family", Category: CategorySociety, Weight: 4},

	// technology
	{ID: "tech_optimism", Left: "skeptical of technology", Right: "enthusiastic about technology", Category: CategoryTechnology, Weight: 9},
	{ID: "ai_attitude", Left: "wary of AI", Right: "embraces AI", Category: CategoryTechnology, Weight: 8},
	{ID: "privacy", Left: "trades privacy for convenience", Right: "guards personal privacy", Category: CategoryTechnology, Weight: 7},
	{ID: "early_adoption", Left: "waits for maturity", Right: "adopts early", Category: CategoryTechnology, Weight: 5},
	{ID: "screen_time", Left: "prefers being offline", Right: "always online", Category: CategoryTechnology, Weight: 4},

	// culture
	{ID: "cultural_openness", Left: "prefers familiar culture", Right: "seeks out foreign cultures", Category: CategoryCulture, Weight: 8},
	{ID: "art_engagement", Left: "utilitarian about art", Right: "deeply engaged with art", Category: CategoryCulture, Weight: 5},
	{ID: "media_taste", Left: "mainstream tastes", Right: "niche tastes", Category: CategoryCulture, Weight: 5},
	{ID: "nostalgia", Left: "forward-looking", Right: "nostalgic", Category: CategoryCulture, Weight: 4},

	// environment
	{ID: "climate_concern", Left: "unconcerned about climate", Right: "concerned about climate", Category: CategoryEnvironment, Weight: 9},
	{ID: "growth_vs_protection", Left: "prioritizes economic growth", Right: "prioritizes environmental protection", Category: CategoryEnvironment, Weight: 7},
	{ID: "green_lifestyle", Left: "convenience over footprint", Right: "eco-conscious habits", Category: CategoryEnvironment, Weight: 6},
	{ID: "animal_welfare", Left: "indifferent to animal welfare", Right: "animal-welfare minded", Category: CategoryEnvironment, Weight: 5},

	// entertainment
	{ID: "fandom_intensity", Left: "casual viewer", Right: "devoted fan", Category: CategoryEntertainment, Weight: 7},
	{ID: "content_preference", Left: "light entertainment", Right: "demanding art-house fare", Category: CategoryEntertainment, Weight: 6},
	{ID: "humor_style", Left: "dry and ironic humor", Right: "playful and broad humor", Category: CategoryEntertainment, Weight: 5},
	{ID: "celebrity_culture", Left: "dismissive of celebrity culture", Right: "follows celebrity culture", Category: CategoryEntertainment, Weight: 5},
	{ID: "live_experience", Left: "prefers watching at home", Right: "seeks out live events", Category: CategoryEntertainment, Weight: 4},

	// lifestyle_career
	{ID: "work_life_balance", Left: "work-centric", Right: "life-centric", Category: CategoryLifestyle, Weight: 8},
	{ID: "risk_appetite", Left: "risk-averse", Right: "risk-seeking", Category: CategoryLifestyle, Weight: 7},
	{ID: "health_consciousness", Left: "indulgent", Right: "health-conscious", Category: CategoryLifestyle, Weight: 6},
	{ID: "minimalism", Left: "comfortable with abundance", Right: "minimalist", Category: CategoryLifestyle, Weight: 5},
	{ID: "urban_preference", Left: "prefers quiet and rural life", Right: "prefers urban bustle", Category: CategoryLifestyle, Weight: 4},
}

// byID is the id index over labels, built once at init.
var byID = func() map[string]Label {
	m := make(map[string]Label, len(labels))
	for _, l := range labels {
		m[l.ID] = l
	}
	return m
}()

// Lookup returns the label with the given canonical id.
func Lookup(id string) (Label, bool) {
	l, ok := byID[id]
	return l, ok
}

// All returns a copy of the full catalog in declaration order.
func All() []Label {
	out := make([]Label, len(labels))
	copy(out, labels)
	return out
}

// IDs returns every canonical label id in declaration order.
func IDs() []string {
	out := make([]string, 0, len(labels))
	for _, l := range labels {
		out = append(out, l.ID)
	}
	return out
}

// ByCategory returns the labels of one category sorted by descending weight
// (stable on ties). The general bucket gets the single highest-weight label
// of every category, so a general prompt still spans the whole catalog.
func ByCategory(category string) []Label {
	if category == CategoryGeneral {
		out := make([]Label, 0, len(Categories))
		for _, c := range Categories {
			if ls := ByCategory(c); len(ls) > 0 {
				out = append(out, ls[0])
			}
		}
		return out
	}
	var out []Label
	for _, l := range labels {
		if l.Category == category {
			out = append(out, l)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Weight > out[j].Weight })
	return out
}

// TopWeighted returns at most n highest-weight labels of the category.
// n <= 0 means no cap.
func TopWeighted(category string, n int) []Label {
	ls := ByCategory(category)
	if n > 0 && len(ls) > n {
		ls = ls[:n]
	}
	return ls
}
