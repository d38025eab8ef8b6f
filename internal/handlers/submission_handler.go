package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/svitlo-fund/donation-service/internal/models"
	"github.com/svitlo-fund/donation-service/internal/models/dto"
	"github.com/svitlo-fund/donation-service/internal/validation"
)

type SubmissionService interface {
	SubmitAnnouncement(ctx context.Context, in *dto.Announcement) (*models.Announcement, error)
	ListAnnouncements(ctx context.Context) []models.Announcement
	SubmitReview(ctx context.Context, in *dto.Review) (*models.Review, error)
	ListReviews(ctx context.Context) []models.Review
}

type SubmissionHandler struct {
	Service SubmissionService
}

func NewSubmissionHandler(s SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{Service: s}
}

// GET /announcements
func (h *SubmissionHandler) ListAnnouncements(c *gin.Context) {
	items := h.Service.ListAnnouncements(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// POST /announcements
func (h *SubmissionHandler) CreateAnnouncement(c *gin.Context) {
	var req dto.Announcement
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid request body"})
		return
	}

	item, err := h.Service.SubmitAnnouncement(c.Request.Context(), &req)
	if err != nil {
		respondSubmissionError(c, "announcement", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"ok": true, "item": item})
}

// GET /reviews
func (h *SubmissionHandler) ListReviews(c *gin.Context) {
	items := h.Service.ListReviews(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// POST /reviews
func (h *SubmissionHandler) CreateReview(c *gin.Context) {
	var req dto.Review
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid request body"})
		return
	}

	item, err := h.Service.SubmitReview(c.Request.Context(), &req)
	if err != nil {
		respondSubmissionError(c, "review", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"ok": true, "item": item})
}

func respondSubmissionError(c *gin.Context, kind string, err error) {
	if violations, ok := validation.As(err); ok {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": violations.Error(), "fields": violations})
		return
	}
	logrus.Errorf("error submitting %s: %s", kind, err.Error())
	c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
}
