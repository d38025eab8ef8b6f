package app

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/svitlo-fund/donation-service/config"
	"github.com/svitlo-fund/donation-service/internal/handlers"
	"github.com/svitlo-fund/donation-service/internal/liqpay"
	"github.com/svitlo-fund/donation-service/internal/metrics"
	"github.com/svitlo-fund/donation-service/internal/publisher"
	"github.com/svitlo-fund/donation-service/internal/service"
	"github.com/svitlo-fund/donation-service/internal/store"
)

type App struct {
	config *config.Config
	Router *gin.Engine
}

func (a *App) Initialize(cfg *config.Config) {
	a.config = cfg

	metrics.RegisterMetrics()

	var pub service.Publisher
	if cfg.Kafka.Brokers != "" {
		topics := strings.Split(cfg.Kafka.PublishTopics, ",")
		pub = publisher.NewKafkaPublisher(cfg.Kafka.Brokers, topics, cfg.Kafka.GetRetryConfig())
	}

	submissions := store.New()
	builder := liqpay.NewBuilder(cfg.LiqPay.PublicKey, cfg.LiqPay.PrivateKey, cfg.LiqPay.Sandbox, cfg.APP.SiteBaseURL)

	submissionService := service.NewSubmissionService(submissions, pub)
	donationService := service.NewDonationService(builder, pub, cfg.APP.IsProduction())

	submissionHandler := handlers.NewSubmissionHandler(submissionService)
	donationHandler := handlers.NewDonationHandler(donationService)

	a.Router = gin.Default()
	a.Router.Use(gin.Recovery())
	a.RegisterRoutes(submissionHandler, donationHandler)
}

func (a *App) Run() {
	err := a.Router.Run(fmt.Sprintf(":%s", a.config.APP.PORT))
	if err != nil {
		panic(err)
	}
}
