package domain

import "github.com/google/uuid"

type CheckType string

const (
	CheckTypeVisibility         CheckType = "visibility"
	CheckTypeContentEnhancement CheckType = "content_enhancement"
	CheckTypeSchemaCompleteness CheckType = "schema_completeness"
)

type SuggestionStatus string

const (
	SuggestionPending     SuggestionStatus = "pending"
	SuggestionImplemented SuggestionStatus = "implemented"
	SuggestionRejected    SuggestionStatus = "rejected"
)

type VisibilityResult struct {
	ID              uuid.UUID `json:"result_id"`
	RequestID       uuid.UUID `json:"request_id"`
	BusinessID      uuid.UUID `json:"business_id"`
	VisibilityScore *float64  `json:"visibility_score"`
	IssuesFound     *string   `json:"issues_found"`
	Recommendations *string   `json:"recommendations"`
	OutputSnapshot  *string   `json:"output_snapshot"`
	CompletedAt     Timestamp `json:"completed_at"`
}

// ScoreBand buckets a score the way the audit page colours it.
func (r VisibilityResult) ScoreBand() string {
	if r.VisibilityScore == nil {
		return "unknown"
	}
	switch s := *r.VisibilityScore; {
	case s >= 80:
		return "good"
	case s >= 50:
		return "fair"
	default:
		return "poor"
	}
}

type VisibilitySuggestion struct {
	ID             uuid.UUID        `json:"suggestion_id"`
	BusinessID     uuid.UUID        `json:"business_id"`
	SuggestionType string           `json:"suggestion_type"`
	Title          string           `json:"title"`
	Status         SuggestionStatus `json:"status"`
	SuggestedAt    Timestamp        `json:"suggested_at"`
	ResolvedAt     *Timestamp       `json:"resolved_at"`
}
