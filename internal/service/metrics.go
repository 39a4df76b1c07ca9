package service

import (
	"github.com/prometheus/client_golang/prometheus"

	"legaldocs/internal/document"
)

// Metrics counts store operations per backend.
type Metrics struct {
	operations *prometheus.CounterVec
}

// NewMetrics registers the service metrics on reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		operations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "document_backend_operations_total",
				Help: "Document store operations by backend, operation and outcome.",
			},
			[]string{"backend", "operation", "outcome"},
		),
	}
	if err := reg.Register(m.operations); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Metrics) observe(backend document.Backend, op string, err error) {
	if m == nil {
		return
	}
	outcome := "success"
	if err != nil {
		outcome = KindOf(err).String()
	}
	m.operations.WithLabelValues(backend.String(), op, outcome).Inc()
}
