package models

// SuggestionDraft is sent by the browser over the suggestion socket each time
// the description textarea changes.
type SuggestionDraft struct {
	Description string `json:"description"`
}

// SuggestionEvent is pushed back once a debounced draft has been classified.
type SuggestionEvent struct {
	Type     string   `json:"type"` // "suggestion"
	Category Category `json:"category"`
}
