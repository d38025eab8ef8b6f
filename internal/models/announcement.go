package models

import (
	"time"

	"github.com/svitlo-fund/donation-service/internal/validation"
)

type SubmissionStatus string
type Locale string

const (
	StatusPending  SubmissionStatus = "pending"
	StatusApproved SubmissionStatus = "approved"
	StatusRejected SubmissionStatus = "rejected"

	LocaleUK Locale = "uk"
	LocaleEN Locale = "en"
)

const (
	TitleMinLen    = 8
	TitleMaxLen    = 140
	BodyMinLen     = 20
	BodyMaxLen     = 5000
	ContactMinLen  = 3
	ContactMaxLen  = 140
	CategoryMinLen = 2
	CategoryMaxLen = 40
)

// Announcement is a community aid request submitted through the public
// site. It enters the store as pending and unverified; an external
// moderation tool flips status and verified later.
type Announcement struct {
	ID        string           `json:"id"`
	Title     string           `json:"title"`
	Body      string           `json:"body"`
	Contact   string           `json:"contact"`
	Category  string           `json:"category"`
	Status    SubmissionStatus `json:"status"`
	Verified  bool             `json:"verified"`
	CreatedAt time.Time        `json:"createdAt"`
}

func (a *Announcement) Validate() error {
	var v validation.Violations
	validation.Length(&v, "title", a.Title, TitleMinLen, TitleMaxLen)
	validation.Length(&v, "body", a.Body, BodyMinLen, BodyMaxLen)
	validation.Length(&v, "contact", a.Contact, ContactMinLen, ContactMaxLen)
	validation.Length(&v, "category", a.Category, CategoryMinLen, CategoryMaxLen)
	return v.OrNil()
}

func (s SubmissionStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	default:
		return false
	}
}

func (l Locale) IsValid() bool {
	switch l {
	case LocaleUK, LocaleEN:
		return true
	default:
		return false
	}
}
