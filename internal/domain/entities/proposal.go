package entities

import "time"

// ProposalStatus mirrors the status vocabulary of the platform's proposal
// resource. The engine only ever writes DRAFT; the sales flow owns the rest.

type ProposalStatus string

const (
	ProposalStatusDraft ProposalStatus = "DRAFT"
)

// ProposalLineItem is a single billable line materialized onto a proposal.
type ProposalLineItem struct {
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Total       float64 `json:"total"`
	Category    string  `json:"category"`
}

// Proposal is the client-facing document created when an estimate is
// promoted. Line items are embedded on the item rather than stored as
// children, matching how the platform's proposal table is written.
//
// Storage model (DynamoDB):
//   - PK: id
type Proposal struct {
	ID          string             `json:"id"`
	EventID     string             `json:"event_id"`
	CreatedByID string             `json:"created_by_id"`
	Status      ProposalStatus     `json:"status"`
	TotalAmount float64            `json:"total_amount"`
	ValidUntil  time.Time          `json:"valid_until"`
	Notes       string             `json:"notes,omitempty"`
	LineItems   []ProposalLineItem `json:"line_items"`
	CreatedAt   time.Time          `json:"created_at"`
}
