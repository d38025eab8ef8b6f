package dto

import (
	"strings"

	"github.com/svitlo-fund/donation-service/internal/models"
)

type Donation struct {
	Amount   float64 `json:"amount"`
	IsPublic bool    `json:"isPublic"`
	Name     string  `json:"name"`
	Locale   string  `json:"locale"`
}

func (d *Donation) Sanitize() {
	d.Name = strings.TrimSpace(d.Name)

	d.Locale = strings.ToLower(strings.TrimSpace(d.Locale))
	if d.Locale == "" {
		d.Locale = string(models.LocaleUK)
	}
}
