// pkg/ai/openai_client.go

package ai

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

type openAI struct {
	endpoint string
	key      string
	model    string
}

func NewOpenAI(endpoint, key, model string) Client {
	return &openAI{endpoint: endpoint, key: key, model: model}
}

func (c *openAI) ExtractLabel(text string) (*LabelExtraction, error) {
	content, err := c.chat(
		"You are an agronomy data clerk. Extract structured product data from chemical labels and SDS sheets. Reply ONLY valid JSON.",
		renderExtractPrompt(text),
	)
	if err != nil {
		return nil, err
	}

	var out LabelExtraction
	if err := json.Unmarshal([]byte(stripFences(content)), &out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExtractionFailed, err)
	}
	return &out, nil
}

func (c *openAI) SuggestRoles(name, description string) ([]RoleSuggestion, error) {
	content, err := c.chat(
		"You classify crop-input products into functional roles (herbicide, fungicide, insecticide, fertility, adjuvant, biological, seed_treatment). Reply ONLY valid JSON.",
		renderRolesPrompt(name, description),
	)
	if err != nil {
		return nil, err
	}

	var payload struct {
		Roles []RoleSuggestion `json:"roles"`
	}
	if err := json.Unmarshal([]byte(stripFences(content)), &payload); err != nil {
		var arr []RoleSuggestion
		if err2 := json.Unmarshal([]byte(stripFences(content)), &arr); err2 != nil {
			return nil, fmt.Errorf("%w: %v", ErrExtractionFailed, err)
		}
		payload.Roles = arr
	}
	return payload.Roles, nil
}

// chat posts one system+user exchange and returns the raw message content.
// Gateway-level failures map to the sentinel error classes.
func (c *openAI) chat(system, user string) (string, error) {
	if c.key == "" {
		return "", ErrUnauthorized
	}
	reqBody := map[string]any{
		"model": c.model,
		"messages": []map[string]string{
			{"role": "system", "content": system},
			{"role": "user", "content": user},
		},
		"temperature": 0.1,
	}
	b, _ := json.Marshal(reqBody)
	httpc := &http.Client{Timeout: 25 * time.Second}
	req, _ := http.NewRequest("POST", strings.TrimRight(c.endpoint, "/")+"/v1/chat/completions", bytes.NewReader(b))
	req.Header.Set("Authorization", "Bearer "+c.key)
	req.Header.Set("Content-Type", "application/json")

	resp, err := httpc.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return "", ErrUnauthorized
	case http.StatusTooManyRequests:
		return "", ErrRateLimited
	case http.StatusPaymentRequired:
		return "", ErrCreditsExhausted
	}

	var out struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("%w: %v", ErrExtractionFailed, err)
	}
	if len(out.Choices) == 0 {
		return "", ErrExtractionFailed
	}
	content := strings.TrimSpace(out.Choices[0].Message.Content)
	if content == "" {
		return "", ErrExtractionFailed
	}
	return content, nil
}

// stripFences removes a markdown code fence if the model wrapped its JSON in
// one despite the instruction.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(s, "```")
	}
	return strings.TrimSpace(s)
}

func renderExtractPrompt(text string) string {
	return fmt.Sprintf(`Extract product data from the label/SDS text below.
Return JSON with this shape (omit unknown fields, never guess numbers):
{"product_name":"...","manufacturer":"...","active_ingredients":["..."],
 "epa_number":"...","signal_word":"...","density":8.34,
 "restrictions":{"phi_days":7,"rei_hours":24,
   "rotation_restrictions":[{"crop_name":"...","interval_days":120}],
   "max_rate_per_application":{"rate":2.0,"unit":"gal/ac"},
   "max_rate_per_season":{"rate":6.0,"unit":"gal/ac"},
   "max_applications_per_season":3}}

LABEL TEXT:
%s
`, text)
}

func renderRolesPrompt(name, description string) string {
	return fmt.Sprintf(`Suggest functional roles for this crop-input product, ranked by confidence.
Return JSON only: {"roles":[{"role":"herbicide","confidence":0.9,"reason":"..."}]}

PRODUCT: %s

DESCRIPTION/LABEL NOTES:
%s
`, name, description)
}
