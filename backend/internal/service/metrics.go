package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var threadsCreated = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "threads",
	Name:      "threads_created_total",
	Help:      "Threads successfully created.",
})
