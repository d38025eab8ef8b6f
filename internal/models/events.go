package models

import "time"

const (
	SubmissionReceivedTopic = "moderation.submission.received"
	DonationIntentTopic     = "donations.intent.created"
)

// SubmissionReceivedEvent notifies the moderation pipeline that a new
// item is waiting in the pending queue.
type SubmissionReceivedEvent struct {
	Kind      string    `json:"kind"`
	ID        string    `json:"id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// DonationIntentCreatedEvent records that a checkout payload was handed
// to a donor. It does not mean money moved; settlement happens on the
// gateway side.
type DonationIntentCreatedEvent struct {
	OrderID   string    `json:"order_id"`
	Amount    float64   `json:"amount"`
	Currency  string    `json:"currency"`
	Locale    string    `json:"locale"`
	Public    bool      `json:"public"`
	Signed    bool      `json:"signed"`
	CreatedAt time.Time `json:"created_at"`
}
