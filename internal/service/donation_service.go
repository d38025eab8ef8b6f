package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/svitlo-fund/donation-service/internal/liqpay"
	"github.com/svitlo-fund/donation-service/internal/metrics"
	"github.com/svitlo-fund/donation-service/internal/models"
	"github.com/svitlo-fund/donation-service/internal/models/dto"
	"github.com/svitlo-fund/donation-service/internal/validation"
)

// ErrGatewayNotConfigured is returned when a production deployment is
// asked for a checkout payload but has no LiqPay keys to sign it with.
var ErrGatewayNotConfigured = errors.New("LIQPAY_NOT_CONFIGURED")

// IntentBuilder defines the interface for turning donor input into a
// checkout payload.
type IntentBuilder interface {
	Build(amount float64, isPublic bool, donorName string, locale models.Locale) (*liqpay.Checkout, error)
	Configured() bool
}

// DonationService validates donation requests and produces LiqPay
// checkout payloads. In development it degrades to unsigned preview
// payloads when no keys are configured; in production that is a
// configuration error.
type DonationService struct {
	Builder    IntentBuilder
	Publisher  Publisher
	Production bool
}

func NewDonationService(builder IntentBuilder, publisher Publisher, production bool) *DonationService {
	return &DonationService{
		Builder:    builder,
		Publisher:  publisher,
		Production: production,
	}
}

// CreateIntent builds a checkout payload for the donor. The payload is
// handed back to the caller for browser-side submission to the gateway;
// nothing is persisted and the gateway is never called from here.
func (s *DonationService) CreateIntent(ctx context.Context, in *dto.Donation) (*liqpay.Checkout, error) {
	in.Sanitize()

	locale := models.Locale(in.Locale)
	if !locale.IsValid() {
		var v validation.Violations
		v.Add("locale", fmt.Sprintf("must be %q or %q", models.LocaleUK, models.LocaleEN))
		return nil, v
	}

	if s.Production && !s.Builder.Configured() {
		return nil, ErrGatewayNotConfigured
	}

	checkout, err := s.Builder.Build(in.Amount, in.IsPublic, in.Name, locale)
	if err != nil {
		return nil, err
	}

	mode := "signed"
	if checkout.Preview {
		mode = "preview"
	}
	metrics.DonationIntentsTotal.WithLabelValues(in.Locale, mode).Inc()
	metrics.DonationAmounts.WithLabelValues(in.Locale).Observe(checkout.Amount)

	if s.Publisher != nil {
		event := models.DonationIntentCreatedEvent{
			OrderID:   checkout.OrderID,
			Amount:    checkout.Amount,
			Currency:  checkout.Currency,
			Locale:    in.Locale,
			Public:    in.IsPublic,
			Signed:    !checkout.Preview,
			CreatedAt: time.Now().UTC(),
		}
		if err := s.Publisher.Publish(ctx, models.DonationIntentTopic, event); err != nil {
			logrus.Errorf("error publishing donation intent event for order %s: %s", checkout.OrderID, err.Error())
		}
	}

	return checkout, nil
}
