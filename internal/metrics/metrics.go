package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Operations counts vault operations by backend, operation and outcome
// kind. The outcome label carries only the error taxonomy label, never
// error details. Registered on the default registry; exposition is the
// embedding process's concern.
var Operations = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "membot",
	Subsystem: "vault",
	Name:      "operations_total",
	Help:      "Vault operations by backend, operation and outcome kind.",
}, []string{"backend", "op", "outcome"})
