package dto

import (
	"strings"

	"github.com/svitlo-fund/donation-service/internal/models"
)

type Announcement struct {
	Title    string `json:"title"`
	Body     string `json:"body"`
	Contact  string `json:"contact"`
	Category string `json:"category"`
}

func (a *Announcement) Sanitize() {
	a.Title = strings.TrimSpace(a.Title)
	a.Body = strings.TrimSpace(a.Body)
	a.Contact = strings.TrimSpace(a.Contact)
	a.Category = strings.TrimSpace(a.Category)
}

func (a *Announcement) ToEntity() *models.Announcement {
	return &models.Announcement{
		Title:    a.Title,
		Body:     a.Body,
		Contact:  a.Contact,
		Category: a.Category,
		Status:   models.StatusPending,
	}
}

type Review struct {
	AuthorName string `json:"authorName"`
	Role       string `json:"role"`
	Text       string `json:"text"`
}

func (r *Review) Sanitize() {
	r.AuthorName = strings.TrimSpace(r.AuthorName)
	r.Text = strings.TrimSpace(r.Text)

	r.Role = strings.ToLower(strings.TrimSpace(r.Role))
}

func (r *Review) ToEntity() *models.Review {
	return &models.Review{
		AuthorName: r.AuthorName,
		Role:       models.ReviewRole(r.Role),
		Text:       r.Text,
		Status:     models.StatusPending,
	}
}
