// Package metrics exposes the service's Prometheus collectors. Counters
// are registered at init via promauto so wiring stays declarative.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// PlansGenerated counts weekly meal plans composed, including
	// regenerated weeks.
	PlansGenerated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "panpal_meal_plans_generated_total",
		Help: "Number of weekly meal plans generated.",
	})

	// FallbackMeals counts slots filled by the synthetic fallback recipe
	// because no catalog candidate survived filtering. A rising rate means
	// the catalog is too thin for the active profiles.
	FallbackMeals = promauto.NewCounter(prometheus.CounterOpts{
		Name: "panpal_fallback_meals_total",
		Help: "Number of meal slots filled with the fallback recipe.",
	})

	// ShoppingListsBuilt counts shopping lists aggregated from plans.
	ShoppingListsBuilt = promauto.NewCounter(prometheus.CounterOpts{
		Name: "panpal_shopping_lists_built_total",
		Help: "Number of shopping lists generated from meal plans.",
	})

	// HTTPRequests counts API requests by method, path template and status.
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "panpal_http_requests_total",
		Help: "Number of HTTP requests processed.",
	}, []string{"method", "path", "status"})

	// HTTPDuration observes request latency by path template.
	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "panpal_http_request_duration_seconds",
		Help:    "HTTP request latency.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})
)
