// pkg/ai/client.go

package ai

import (
	"errors"

	"farmops/entities"
)

// Gateway failure classes. Surfaced to the user by the caller, never retried
// automatically.
var (
	ErrUnauthorized     = errors.New("ai: unauthorized")
	ErrRateLimited      = errors.New("ai: rate limit exceeded")
	ErrCreditsExhausted = errors.New("ai: credits exhausted")
	ErrExtractionFailed = errors.New("ai: no parseable JSON in model output")
)

// LabelExtraction is the model's best-effort structured read of a product
// label or SDS sheet. Advisory only; a human confirms every field before it
// enters the product catalog.
type LabelExtraction struct {
	ProductName       string                 `json:"product_name"`
	Manufacturer      string                 `json:"manufacturer"`
	ActiveIngredients []string               `json:"active_ingredients"`
	EPANumber         string                 `json:"epa_number"`
	SignalWord        string                 `json:"signal_word"`
	Density           *float64               `json:"density,omitempty"`
	Restrictions      *entities.Restrictions `json:"restrictions,omitempty"`
}

type RoleSuggestion struct {
	Role       string  `json:"role"`
	Confidence float64 `json:"confidence"`
	Reason     string  `json:"reason,omitempty"`
}

type Client interface {
	ExtractLabel(text string) (*LabelExtraction, error)
	SuggestRoles(name, description string) ([]RoleSuggestion, error)
}
