package imagehost

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeSuccess = "success"
	outcomeFailure = "failure"
)

var uploadsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "threads",
		Name:      "image_uploads_total",
		Help:      "Image host uploads by outcome.",
	},
	[]string{"outcome"},
)
