package domain

import "time"

// QuoteStatus is the lifecycle state of a quote request. Only pending is
// assigned by this service; follow-up happens offline.
type QuoteStatus string

const QuoteStatusPending QuoteStatus = "pending"

// Quote is an unpriced bulk/custom order request awaiting manual follow-up.
// CustomizationData is an opaque snapshot taken at submission time.
type Quote struct {
	ID                string
	UserEmail         string
	BusinessName      string
	ProductName       string
	CustomizationData map[string]any
	Quantity          int
	Message           *string
	Status            QuoteStatus
	CreatedAt         time.Time
}
