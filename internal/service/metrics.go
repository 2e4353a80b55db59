package service

import "github.com/prometheus/client_golang/prometheus"

// Upload outcomes recorded in map_uploads_total.
const (
	UploadStored   = "stored"
	UploadRejected = "rejected"
	UploadFailed   = "failed"
)

// Metrics holds the domain counters. A nil *Metrics records nothing.
type Metrics struct {
	uploads     *prometheus.CounterVec
	listEntries prometheus.Gauge
	listErrors  prometheus.Counter
}

// NewMetrics registers the service metrics on reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		uploads: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "map_uploads_total",
				Help: "Map image uploads by outcome.",
			},
			[]string{"result"},
		),
		listEntries: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "document_list_entries",
			Help: "Number of entries seen by the most recent document listing.",
		}),
		listErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "document_list_errors_total",
			Help: "Documents that could not be read, parsed or stat'ed during listing.",
		}),
	}

	for _, c := range []prometheus.Collector{m.uploads, m.listEntries, m.listErrors} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) upload(result string) {
	if m == nil {
		return
	}
	m.uploads.WithLabelValues(result).Inc()
}

func (m *Metrics) listed(entries, failed int) {
	if m == nil {
		return
	}
	m.listEntries.Set(float64(entries))
	m.listErrors.Add(float64(failed))
}
