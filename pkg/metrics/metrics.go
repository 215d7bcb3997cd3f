package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Domain counters. Registered on the default registry and exposed
// through the /metrics endpoint.
var (
	EvaluationsSaved = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "crewboard",
		Name:      "evaluations_saved_total",
		Help:      "Number of evaluation sets saved (replace + recompute cycles).",
	})

	ScoresRecomputed = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "crewboard",
		Name:      "scores_recomputed_total",
		Help:      "Number of score recomputations performed.",
	})

	ReportsGenerated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "crewboard",
		Name:      "reports_generated_total",
		Help:      "Number of ranking reports rendered to disk.",
	})

	ReportsFailed = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "crewboard",
		Name:      "reports_failed_total",
		Help:      "Number of report jobs that ended in failure.",
	})
)
