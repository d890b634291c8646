package models

import (
	"bytes"
	"encoding/json"
	"strings"
)

// AnalysisKind discriminates the two analysis shapes
type AnalysisKind string

const (
	AnalysisPlain      AnalysisKind = "plain"
	AnalysisStructured AnalysisKind = "structured"
)

// Feature is one highlighted trait of the top pick. Plain features only carry Text.
type Feature struct {
	Text        string `json:"text,omitempty"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
}

// IsPlain reports whether the feature was a bare string
func (f Feature) IsPlain() bool {
	return f.Name == "" && f.Description == ""
}

// Analysis is the enhancement commentary attached to a result set.
// Kind is AnalysisPlain (Text set) or AnalysisStructured (the remaining fields).
type Analysis struct {
	Kind       AnalysisKind `json:"kind"`
	Text       string       `json:"text,omitempty"`
	TopPick    string       `json:"topPick,omitempty"`
	Features   []Feature    `json:"features,omitempty"`
	Conclusion string       `json:"conclusion,omitempty"`
}

// PlainAnalysis wraps free text
func PlainAnalysis(text string) *Analysis {
	return &Analysis{Kind: AnalysisPlain, Text: text}
}

type rawStructuredAnalysis struct {
	TopGame    string            `json:"top_game"`
	TopPick    string            `json:"top_pick"`
	Features   []json.RawMessage `json:"features"`
	Conclusion string            `json:"conclusion"`
}

// ParseAnalysis discriminates the backend's analysis payload.
// It returns nil for absent, null, blank or unrecognised values.
func ParseAnalysis(raw json.RawMessage) *Analysis {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}

	switch raw[0] {
	case '"':
		var text string
		if err := json.Unmarshal(raw, &text); err != nil {
			return nil
		}
		text = strings.TrimSpace(text)
		if text == "" {
			return nil
		}
		return PlainAnalysis(text)

	case '{':
		var s rawStructuredAnalysis
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil
		}
		a := &Analysis{
			Kind:       AnalysisStructured,
			TopPick:    s.TopGame,
			Conclusion: s.Conclusion,
			Features:   make([]Feature, 0, len(s.Features)),
		}
		if a.TopPick == "" {
			a.TopPick = s.TopPick
		}
		for _, f := range s.Features {
			if feature, ok := parseFeature(f); ok {
				a.Features = append(a.Features, feature)
			}
		}
		return a
	}

	return nil
}

func parseFeature(raw json.RawMessage) (Feature, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return Feature{}, false
	}

	switch raw[0] {
	case '"':
		var text string
		if err := json.Unmarshal(raw, &text); err != nil || strings.TrimSpace(text) == "" {
			return Feature{}, false
		}
		return Feature{Text: text}, true
	case '{':
		var f struct {
			Name        string `json:"name"`
			Description string `json:"description"`
		}
		if err := json.Unmarshal(raw, &f); err != nil {
			return Feature{}, false
		}
		if f.Name == "" && f.Description == "" {
			return Feature{}, false
		}
		return Feature{Name: f.Name, Description: f.Description}, true
	}
	return Feature{}, false
}
