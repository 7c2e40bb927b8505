// Package metrics exposes division statistics as Prometheus metrics and
// reads runtime memory usage for the verbose summary.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/agbru/longdiv/internal/division"
)

const namespace = "longdiv"

// DivisionCollector counts division events. It implements
// division.Observer and is safe for concurrent use.
type DivisionCollector struct {
	divisions   *prometheus.CounterVec
	rejections  *prometheus.CounterVec
	overflows   prometheus.Counter
	refinements prometheus.Counter
	addBacks    prometheus.Counter
	operandSize *prometheus.HistogramVec
}

var _ division.Observer = (*DivisionCollector)(nil)

// NewDivisionCollector creates the collector and registers its metrics on
// reg. Registering twice on the same registry fails.
func NewDivisionCollector(reg prometheus.Registerer) (*DivisionCollector, error) {
	c := &DivisionCollector{
		divisions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "divisions_total",
			Help:      "Division calls by execution path.",
		}, []string{"path"}),
		rejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rejections_total",
			Help:      "Division calls rejected by parameter validation, by reason.",
		}, []string{"reason"}),
		overflows: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "quotient_overflows_total",
			Help:      "Quotient digit estimates that saturated at the maximum digit.",
		}),
		refinements: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "quotient_refinements_total",
			Help:      "Quotient digit estimates decremented by the third-digit test.",
		}),
		addBacks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "add_backs_total",
			Help:      "Quotient digits corrected by adding the divisor back.",
		}),
		operandSize: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "operand_digits",
			Help:      "Operand lengths in 32-bit digits.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
		}, []string{"operand"}),
	}
	for _, col := range []prometheus.Collector{c.divisions, c.rejections, c.overflows, c.refinements, c.addBacks, c.operandSize} {
		if err := reg.Register(col); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// ObserveDivision implements division.Observer.
func (c *DivisionCollector) ObserveDivision(ev division.Event) {
	c.divisions.WithLabelValues(string(ev.Path)).Inc()
	if ev.Path == division.PathRejected {
		c.rejections.WithLabelValues(division.Reason(ev.Err)).Inc()
		return
	}
	c.operandSize.WithLabelValues("dividend").Observe(float64(ev.M))
	c.operandSize.WithLabelValues("divisor").Observe(float64(ev.N))
	if ev.Overflows > 0 {
		c.overflows.Add(float64(ev.Overflows))
	}
	if ev.Refinements > 0 {
		c.refinements.Add(float64(ev.Refinements))
	}
	if ev.AddBacks > 0 {
		c.addBacks.Add(float64(ev.AddBacks))
	}
}

// Summary is a point-in-time copy of the collector's counters.
type Summary struct {
	SingleDigit uint64
	General     uint64
	Rejected    uint64
	Overflows   uint64
	Refinements uint64
	AddBacks    uint64
}

// Summary reads the current counter values.
func (c *DivisionCollector) Summary() Summary {
	return Summary{
		SingleDigit: counterValue(c.divisions.WithLabelValues(string(division.PathSingleDigit))),
		General:     counterValue(c.divisions.WithLabelValues(string(division.PathGeneral))),
		Rejected:    counterValue(c.divisions.WithLabelValues(string(division.PathRejected))),
		Overflows:   counterValue(c.overflows),
		Refinements: counterValue(c.refinements),
		AddBacks:    counterValue(c.addBacks),
	}
}

// WriteTextfile gathers g and writes it in the Prometheus text format to
// filename, atomically, for node_exporter's textfile collector. The name is
// used as given; node_exporter only reads files ending in .prom.
func WriteTextfile(filename string, g prometheus.Gatherer) error {
	return prometheus.WriteToTextfile(filename, g)
}
