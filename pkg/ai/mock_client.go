// pkg/ai/mock_client.go

package ai

import (
	"strings"

	"farmops/entities"
)

type mockClient struct{}

func NewMock() Client { return &mockClient{} }

func (m *mockClient) ExtractLabel(text string) (*LabelExtraction, error) {
	out := &LabelExtraction{ProductName: "Unknown (mock)"}
	lower := strings.ToLower(text)
	if strings.Contains(lower, "herbicide") || strings.Contains(lower, "glyphosate") {
		phi := 7
		rei := 12.0
		out.Restrictions = &entities.Restrictions{PHIDays: &phi, REIHours: &rei}
	}
	if i := strings.Index(lower, "epa reg. no."); i >= 0 {
		rest := strings.TrimSpace(text[i+len("epa reg. no."):])
		out.EPANumber = strings.Fields(rest + " ")[0]
	}
	return out, nil
}

func (m *mockClient) SuggestRoles(name, description string) ([]RoleSuggestion, error) {
	joined := strings.ToLower(name + " " + description)
	out := make([]RoleSuggestion, 0, 3)
	if strings.Contains(joined, "weed") || strings.Contains(joined, "herbicide") {
		out = append(out, RoleSuggestion{Role: "herbicide", Confidence: 0.8})
	}
	if strings.Contains(joined, "fung") {
		out = append(out, RoleSuggestion{Role: "fungicide", Confidence: 0.8})
	}
	if strings.Contains(joined, "npk") || strings.Contains(joined, "nitrogen") {
		out = append(out, RoleSuggestion{Role: "fertility", Confidence: 0.7})
	}
	if len(out) == 0 {
		out = append(out, RoleSuggestion{Role: "adjuvant", Confidence: 0.3, Reason: "no stronger signal (mock)"})
	}
	return out, nil
}
