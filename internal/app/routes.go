package app

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/svitlo-fund/donation-service/internal/handlers"
)

func (a *App) RegisterRoutes(s *handlers.SubmissionHandler, d *handlers.DonationHandler) {
	announcements := a.Router.Group("/announcements")
	announcements.GET("", s.ListAnnouncements)
	announcements.POST("", s.CreateAnnouncement)

	reviews := a.Router.Group("/reviews")
	reviews.GET("", s.ListReviews)
	reviews.POST("", s.CreateReview)

	payments := a.Router.Group("/payments")
	payments.POST("/intent", d.CreateIntent)

	a.Router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
