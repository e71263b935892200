// Package parse validates raw LLM output text against the mode-selected
// profile schema. It never coerces: repair of malformed responses happens
// earlier, in the normalize package, against raw text. Violations come back
// as a SchemaError carrying the offending field path.
package parse

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dshills/valuelens/internal/schema"
)

// SchemaError records a single schema violation at a field path.
type SchemaError struct {
	Path    string
	Message string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("schema: %s: %s", e.Path, e.Message)
}

// Parse validates raw against the schema selected by mode and returns the
// typed profile, or a SchemaError naming the first violation. The fast
// schema requires nickname, topic_classification, value_orientation, and
// summary; balanced and deep additionally require reasoning and evidence.
func Parse(raw string, mode schema.Mode) (*schema.Profile, *SchemaError) {
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()
	var doc map[string]any
	if err := dec.Decode(&doc); err != nil {
		return nil, &SchemaError{Path: "$", Message: fmt.Sprintf("not a JSON object: %v", err)}
	}

	var p schema.Profile
	var serr *SchemaError

	if p.Nickname, serr = requireString(doc, "nickname"); serr != nil {
		return nil, serr
	}
	if p.TopicClassification, serr = requireString(doc, "topic_classification"); serr != nil {
		return nil, serr
	}
	if p.Summary, serr = requireString(doc, "summary"); serr != nil {
		return nil, serr
	}
	if p.ValueOrientation, serr = requireOrientations(doc); serr != nil {
		return nil, serr
	}

	if mode.RequiresReasoning() {
		if p.Reasoning, serr = requireString(doc, "reasoning"); serr != nil {
			return nil, serr
		}
		if p.Evidence, serr = requireEvidence(doc); serr != nil {
			return nil, serr
		}
	}

	return &p, nil
}

func requireString(doc map[string]any, key string) (string, *SchemaError) {
	v, ok := doc[key]
	if !ok {
		return "", &SchemaError{Path: key, Message: "required field is missing"}
	}
	s, ok := v.(string)
	if !ok {
		return "", &SchemaError{Path: key, Message: fmt.Sprintf("expected string, got %T", v)}
	}
	return s, nil
}

func requireOrientations(doc map[string]any) ([]schema.ValueOrientation, *SchemaError) {
	v, ok := doc["value_orientation"]
	if !ok {
		return nil, &SchemaError{Path: "value_orientation", Message: "required field is missing"}
	}
	arr, ok := v.([]any)
	if !ok {
		return nil, &SchemaError{Path: "value_orientation", Message: fmt.Sprintf("expected array, got %T", v)}
	}
	out := make([]schema.ValueOrientation, 0, len(arr))
	for i, item := range arr {
		path := fmt.Sprintf("value_orientation[%d]", i)
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, &SchemaError{Path: path, Message: fmt.Sprintf("expected object, got %T", item)}
		}
		label, ok := obj["label"].(string)
		if !ok {
			return nil, &SchemaError{Path: path + ".label", Message: "expected string"}
		}
		num, ok := obj["score"].(json.Number)
		if !ok {
			return nil, &SchemaError{Path: path + ".score", Message: "expected number"}
		}
		score, err := num.Float64()
		if err != nil {
			return nil, &SchemaError{Path: path + ".score", Message: "expected number"}
		}
		if score < -1 || score > 1 {
			return nil, &SchemaError{Path: path + ".score", Message: fmt.Sprintf("score %v outside [-1,1]", score)}
		}
		out = append(out, schema.ValueOrientation{Label: label, Score: score})
	}
	return out, nil
}

func requireEvidence(doc map[string]any) ([]schema.Evidence, *SchemaError) {
	v, ok := doc["evidence"]
	if !ok {
		return nil, &SchemaError{Path: "evidence", Message: "required field is missing"}
	}
	arr, ok := v.([]any)
	if !ok {
		return nil, &SchemaError{Path: "evidence", Message: fmt.Sprintf("expected array, got %T", v)}
	}
	out := make([]schema.Evidence, 0, len(arr))
	for i, item := range arr {
		path := fmt.Sprintf("evidence[%d]", i)
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, &SchemaError{Path: path, Message: fmt.Sprintf("expected object, got %T", item)}
		}
		var ev schema.Evidence
		var serr *SchemaError
		if ev.Quote, serr = requireStringAt(obj, "quote", path); serr != nil {
			return nil, serr
		}
		if ev.Analysis, serr = requireStringAt(obj, "analysis", path); serr != nil {
			return nil, serr
		}
		if ev.SourceTitle, serr = requireStringAt(obj, "source_title", path); serr != nil {
			return nil, serr
		}
		// source_id is optional but must be a string when present.
		if raw, ok := obj["source_id"]; ok {
			s, ok := raw.(string)
			if !ok {
				return nil, &SchemaError{Path: path + ".source_id", Message: fmt.Sprintf("expected string, got %T", raw)}
			}
			ev.SourceID = s
		}
		out = append(out, ev)
	}
	return out, nil
}

func requireStringAt(obj map[string]any, key, parent string) (string, *SchemaError) {
	v, ok := obj[key]
	if !ok {
		return "", &SchemaError{Path: parent + "." + key, Message: "required field is missing"}
	}
	s, ok := v.(string)
	if !ok {
		return "", &SchemaError{Path: parent + "." + key, Message: fmt.Sprintf("expected string, got %T", v)}
	}
	return s, nil
}
