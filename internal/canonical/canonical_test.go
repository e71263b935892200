package canonical

import (
	"testing"

	"github.com/dshills/valuelens/internal/catalog"
)

func TestNormalizeFolding(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"  Ideology  ", "ideology"},
		{"work-life  balance", "work_life_balance"},
		{"work.life.balance", "work_life_balance"},
		{"WORK__LIFE___BALANCE", "work_life_balance"},
		{"Climate Concern", "climate_concern"},
	}
	for _, c := range cases {
		if got := Normalize(c.in); got != c.want {
			t.Errorf("Normalize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNormalizeAliases(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"LEFT_RIGHT", "ideology"},
		{"right_left", "ideology"},
		{"idealogoy", "ideology"}, // known misspelling
		{"Authoritarianism", "authority"},
		{"trust in institutions", "institutional_trust"},
		{"individualism_vs_collectivism", "collectivism"},
		{"collectivism_vs_individualism", "collectivism"},
		{"global warming", "climate_concern"},
		{"AI", "ai_attitude"},
		{"sense of humor", "humor_style"},
		{"life-work balance", "work_life_balance"},
	}
	for _, c := range cases {
		if got := Normalize(c.in); got != c.want {
			t.Errorf("Normalize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNormalizeSubstringFallback(t *testing.T) {
	// No exact alias, but an alias string is contained in the input.
	if got := Normalize("overall free_market stance"); got != "market_regulation" {
		t.Errorf("Normalize(alias substring) = %q, want market_regulation", got)
	}
	// Canonical id contained after stripping underscores.
	if got := Normalize("user_risk_appetite_axis"); got != "risk_appetite" {
		t.Errorf("Normalize(canonical substring) = %q, want risk_appetite", got)
	}
}

func TestNormalizeUnknownKeptOpaque(t *testing.T) {
	got := Normalize("Favorite Pizza Topping")
	if got != "favorite_pizza_topping" {
		t.Errorf("Normalize(unknown) = %q, want folded input unchanged", got)
	}
	if IsCanonical(got) {
		t.Errorf("%q must not resolve to a catalog id", got)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"LEFT_RIGHT", "idealogoy", "Work-Life Balance", "not a label at all",
		"ideology", "user_risk_appetite_axis", "",
	}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestCanonicalIDsMapToThemselves(t *testing.T) {
	for _, id := range catalog.IDs() {
		if got := Normalize(id); got != id {
			t.Errorf("Normalize(%q) = %q, want identity", id, got)
		}
	}
}

func TestAliasTableTargetsAreCanonical(t *testing.T) {
	for _, a := range aliases {
		if _, ok := catalog.Lookup(a.To); !ok {
			t.Errorf("alias %q targets unknown id %q", a.From, a.To)
		}
		if a.From != fold(a.From) {
			t.Errorf("alias %q is not in normalized form", a.From)
		}
	}
}
