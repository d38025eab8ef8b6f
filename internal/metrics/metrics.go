package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	SubmissionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "submissions_total",
			Help: "Total number of accepted moderated submissions",
		},
		[]string{"kind"},
	)

	SubmissionRejectionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "submission_rejections_total",
			Help: "Total number of submissions rejected by validation",
		},
		[]string{"kind"},
	)

	DonationIntentsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "donation_intents_total",
			Help: "Total number of checkout payloads built",
		},
		[]string{"locale", "mode"},
	)

	DonationAmounts = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "donation_amounts",
			Help:    "Distribution of requested donation amounts in UAH",
			Buckets: prometheus.ExponentialBuckets(10, 2, 12),
		},
		[]string{"locale"},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		SubmissionsTotal,
		SubmissionRejectionsTotal,
		DonationIntentsTotal,
		DonationAmounts,
	)
}
