package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/svitlo-fund/donation-service/internal/liqpay"
	"github.com/svitlo-fund/donation-service/internal/models/dto"
	"github.com/svitlo-fund/donation-service/internal/service"
	"github.com/svitlo-fund/donation-service/internal/validation"
)

type DonationService interface {
	CreateIntent(ctx context.Context, in *dto.Donation) (*liqpay.Checkout, error)
}

type DonationHandler struct {
	Service DonationService
}

func NewDonationHandler(s DonationService) *DonationHandler {
	return &DonationHandler{Service: s}
}

// POST /payments/intent
//
// Signed checkouts come back as actionUrl/data/signature for the
// browser to auto-submit. Without configured keys (development only)
// the same payload is returned under payloadPreview, unsigned.
func (h *DonationHandler) CreateIntent(c *gin.Context) {
	var req dto.Donation
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid request body"})
		return
	}

	checkout, err := h.Service.CreateIntent(c.Request.Context(), &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	if checkout.Preview {
		c.JSON(http.StatusOK, gin.H{"ok": true, "payloadPreview": checkout})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":        true,
		"actionUrl": checkout.ActionURL,
		"data":      checkout.Data,
		"signature": checkout.Signature,
	})
}

func (h *DonationHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrGatewayNotConfigured):
		logrus.Error("donation intent requested without configured LiqPay keys")
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": service.ErrGatewayNotConfigured.Error()})
	case errors.Is(err, liqpay.ErrUnknownLocale):
		logrus.Errorf("donation intent failed: %s", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
	case errors.Is(err, liqpay.ErrInvalidAmount),
		errors.Is(err, liqpay.ErrNameRequired),
		errors.Is(err, liqpay.ErrNameTooLong):
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
	default:
		if violations, ok := validation.As(err); ok {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": violations.Error(), "fields": violations})
			return
		}
		logrus.Errorf("error building donation intent: %s", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
	}
}
