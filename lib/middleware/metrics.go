package middleware

import (
	"io"

	"github.com/AminahAkhtar/tinydb-withdp/lib/storage"
	"github.com/VictoriaMetrics/metrics"
)

// --------------------------------------------------------------------------
// Metrics Middleware
// --------------------------------------------------------------------------

// MetricsMiddleware counts storage operations. It is a pure observer: every
// call is counted and then forwarded unchanged, results and errors pass
// through untouched.
//
// Each instance owns its own metrics set so multiple decorated databases in
// one process do not share counters.
type MetricsMiddleware struct {
	Middleware

	set    *metrics.Set
	reads  *metrics.Counter
	writes *metrics.Counter
	closes *metrics.Counter
}

// NewMetrics creates a metrics middleware over the given factory.
func NewMetrics(factory storage.Factory) *MetricsMiddleware {
	set := metrics.NewSet()
	m := &MetricsMiddleware{
		Middleware: *New(factory),
		set:        set,
		reads:      set.NewCounter(`tinydb_storage_operations_total{op="read"}`),
		writes:     set.NewCounter(`tinydb_storage_operations_total{op="write"}`),
		closes:     set.NewCounter(`tinydb_storage_operations_total{op="close"}`),
	}
	m.self = m
	return m
}

// WritePrometheus dumps the operation counters in Prometheus text format.
func (m *MetricsMiddleware) WritePrometheus(w io.Writer) {
	m.set.WritePrometheus(w)
}

// --------------------------------------------------------------------------
// Interface Methods (docu see storage/interface.go)
// --------------------------------------------------------------------------

func (m *MetricsMiddleware) Read() (storage.Document, error) {
	m.reads.Inc()

	s, err := m.live(storage.OpRead)
	if err != nil {
		return nil, err
	}
	return s.Read()
}

func (m *MetricsMiddleware) Write(doc storage.Document) error {
	m.writes.Inc()

	s, err := m.live(storage.OpWrite)
	if err != nil {
		return err
	}
	return s.Write(doc)
}

func (m *MetricsMiddleware) Close() error {
	m.closes.Inc()

	s, err := m.live(storage.OpClose)
	if err != nil {
		return err
	}
	return s.Close()
}

// Invoke dispatches the core operations through the counting overrides and
// forwards everything else down the chain uncounted.
func (m *MetricsMiddleware) Invoke(op string, args ...interface{}) (interface{}, error) {
	switch op {
	case storage.OpRead:
		return m.Read()
	case storage.OpWrite:
		doc, err := writeArg(args)
		if err != nil {
			return nil, err
		}
		return nil, m.Write(doc)
	case storage.OpClose:
		return nil, m.Close()
	default:
		return m.Middleware.Invoke(op, args...)
	}
}
