package catalog

import "errors"

// Case is a registered missing-person case.
type Case struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Age            int    `json:"age"`
	Status         string `json:"status"` // active | resolved | closed
	Location       string `json:"location"`
	Date           string `json:"date"`
	Description    string `json:"description"`
	Reward         int64  `json:"reward"`
	Tips           int    `json:"tips"`
	BlockchainHash string `json:"blockchain_hash"`
	Submitter      string `json:"submitter"`
}

// Tip is a citizen report attached to a case.
type Tip struct {
	ID             string `json:"id"`
	CaseID         string `json:"case_id"`
	CaseName       string `json:"case_name"`
	Description    string `json:"description"`
	Location       string `json:"location"`
	Timestamp      string `json:"timestamp"`
	Status         string `json:"status"` // pending | verified | rejected
	Reward         int64  `json:"reward"`
	BlockchainHash string `json:"blockchain_hash"`
}

// Alert is a community broadcast for an open case.
type Alert struct {
	ID          string `json:"id"`
	CaseID      string `json:"case_id"`
	CaseName    string `json:"case_name"`
	Age         int    `json:"age"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Radius      int    `json:"radius"`
	Timestamp   string `json:"timestamp"`
	Priority    string `json:"priority"` // high | medium | low
	Status      string `json:"status"`   // active | resolved
	Responders  int    `json:"responders"`
}

// TipTarget is an active case currently seeking tips.
type TipTarget struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Reward int64  `json:"reward"`
}

const (
	CaseActive   = "active"
	CaseResolved = "resolved"
	CaseClosed   = "closed"

	TipPending  = "pending"
	TipVerified = "verified"
	TipRejected = "rejected"

	AlertActive   = "active"
	AlertResolved = "resolved"

	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

var (
	ErrInvalidDraft = errors.New("invalid draft")
	ErrUnknownCase  = errors.New("unknown case")
)

// Empty-state copy shown when a filtered list has no rows.
const (
	EmptyCases  = "No cases found. Try adjusting your search or filter criteria"
	EmptyTips   = "No tips match your current filter criteria"
	EmptyAlerts = "No alerts match your current filter criteria"
)
