package models

import (
	"fmt"
	"time"

	"github.com/svitlo-fund/donation-service/internal/validation"
)

type ReviewRole string

const (
	RoleDonor     ReviewRole = "donor"
	RoleRecipient ReviewRole = "recipient"

	AuthorNameMinLen = 2
	AuthorNameMaxLen = 80
	ReviewTextMinLen = 10
	ReviewTextMaxLen = 2000
)

// Review is a testimonial left by a donor or an aid recipient. Same
// moderation lifecycle as Announcement.
type Review struct {
	ID         string           `json:"id"`
	AuthorName string           `json:"authorName"`
	Role       ReviewRole       `json:"role"`
	Text       string           `json:"text"`
	Status     SubmissionStatus `json:"status"`
	CreatedAt  time.Time        `json:"createdAt"`
}

func (r *Review) Validate() error {
	var v validation.Violations
	validation.Length(&v, "authorName", r.AuthorName, AuthorNameMinLen, AuthorNameMaxLen)
	if !r.Role.IsValid() {
		v.Add("role", fmt.Sprintf("must be %q or %q", RoleDonor, RoleRecipient))
	}
	validation.Length(&v, "text", r.Text, ReviewTextMinLen, ReviewTextMaxLen)
	return v.OrNil()
}

func (r ReviewRole) IsValid() bool {
	switch r {
	case RoleDonor, RoleRecipient:
		return true
	default:
		return false
	}
}
