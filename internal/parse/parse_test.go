package parse

import (
	"strings"
	"testing"

	"github.com/dshills/valuelens/internal/schema"
)

const fastOK = `{
  "nickname": "sam",
  "topic_classification": "politics",
  "value_orientation": [{"label": "ideology", "score": -0.4}],
  "summary": "Leans progressive in most posts."
}`

const richOK = `{
  "nickname": "sam",
  "topic_classification": "politics",
  "reasoning": "The posts repeatedly criticize incumbents.",
  "value_orientation": [{"label": "institutional_trust", "score": -0.7}],
  "summary": "Distrusts institutions.",
  "evidence": [
    {"quote": "never trusting them again", "analysis": "distrust language", "source_title": "post 3"}
  ]
}`

func TestParseFastValid(t *testing.T) {
	p, serr := Parse(fastOK, schema.ModeFast)
	if serr != nil {
		t.Fatalf("unexpected error: %v", serr)
	}
	if p.Nickname != "sam" || len(p.ValueOrientation) != 1 {
		t.Errorf("parsed profile = %+v", p)
	}
	if p.ValueOrientation[0].Score != -0.4 {
		t.Errorf("score = %v, want -0.4", p.ValueOrientation[0].Score)
	}
}

func TestParseRichValid(t *testing.T) {
	p, serr := Parse(richOK, schema.ModeBalanced)
	if serr != nil {
		t.Fatalf("unexpected error: %v", serr)
	}
	if p.Reasoning == "" || len(p.Evidence) != 1 {
		t.Errorf("parsed profile = %+v", p)
	}
	if p.Evidence[0].SourceID != "" {
		t.Errorf("source_id = %q, want empty (optional, absent)", p.Evidence[0].SourceID)
	}
}

func TestParseFastToleratesMissingReasoning(t *testing.T) {
	// The fast schema does not require reasoning or evidence.
	if _, serr := Parse(fastOK, schema.ModeFast); serr != nil {
		t.Errorf("fast parse of fast payload failed: %v", serr)
	}
}

func TestParseRichRequiresReasoning(t *testing.T) {
	_, serr := Parse(fastOK, schema.ModeBalanced)
	if serr == nil {
		t.Fatal("balanced parse must reject a payload without reasoning")
	}
	if serr.Path != "reasoning" {
		t.Errorf("error path = %q, want reasoning", serr.Path)
	}
}

func TestParseRejectsScoreOutOfRange(t *testing.T) {
	raw := strings.Replace(fastOK, "-0.4", "1.3", 1)
	_, serr := Parse(raw, schema.ModeFast)
	if serr == nil {
		t.Fatal("expected out-of-range score to be rejected")
	}
	if serr.Path != "value_orientation[0].score" {
		t.Errorf("error path = %q, want value_orientation[0].score", serr.Path)
	}
}

func TestParseRejectsWrongTypes(t *testing.T) {
	cases := []struct {
		name, raw, wantPath string
	}{
		{"non-object", `[1,2,3]`, "$"},
		{"nickname number", `{"nickname": 7, "topic_classification": "x", "value_orientation": [], "summary": "s"}`, "nickname"},
		{"orientation not array", `{"nickname": "n", "topic_classification": "x", "value_orientation": "none", "summary": "s"}`, "value_orientation"},
		{"score string", `{"nickname": "n", "topic_classification": "x", "value_orientation": [{"label": "ideology", "score": "high"}], "summary": "s"}`, "value_orientation[0].score"},
		{"missing summary", `{"nickname": "n", "topic_classification": "x", "value_orientation": []}`, "summary"},
	}
	for _, c := range cases {
		_, serr := Parse(c.raw, schema.ModeFast)
		if serr == nil {
			t.Errorf("%s: expected error", c.name)
			continue
		}
		if serr.Path != c.wantPath {
			t.Errorf("%s: error path = %q, want %q", c.name, serr.Path, c.wantPath)
		}
	}
}

func TestParseRejectsBadEvidence(t *testing.T) {
	raw := strings.Replace(richOK, `"analysis": "distrust language", `, "", 1)
	_, serr := Parse(raw, schema.ModeDeep)
	if serr == nil {
		t.Fatal("expected missing evidence analysis to be rejected")
	}
	if serr.Path != "evidence[0].analysis" {
		t.Errorf("error path = %q, want evidence[0].analysis", serr.Path)
	}
}

func TestSchemaErrorMessageMentionsValidation(t *testing.T) {
	// The retry controller matches on these words; the error text is part
	// of the contract.
	e := &SchemaError{Path: "summary", Message: "required field is missing"}
	if !strings.Contains(e.Error(), "schema") {
		t.Errorf("error text %q must contain \"schema\"", e.Error())
	}
}
