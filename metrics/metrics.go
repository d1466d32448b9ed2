// Package metrics exports bag activity as Prometheus counters.
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/plus3/piecebag/bag"
)

// Collector counts draws and refills per attribute. It implements bag.Observer.
// Draws include the lookahead draw made at construction.
type Collector struct {
	draws   *prometheus.CounterVec
	refills *prometheus.CounterVec
}

var _ bag.Observer = (*Collector)(nil)

// NewCollector registers the counters on registerer, or on the default
// registerer when nil. Registering twice on the same registry reuses the
// existing counters.
func NewCollector(registerer prometheus.Registerer) *Collector {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	draws := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "piecebag_draws_total",
		Help: "Values drawn from a bag, by attribute and value.",
	}, []string{"attribute", "value"})
	refills := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "piecebag_refills_total",
		Help: "Bag refills, by attribute.",
	}, []string{"attribute"})

	return &Collector{
		draws:   registerCounterVec(registerer, draws),
		refills: registerCounterVec(registerer, refills),
	}
}

func registerCounterVec(registerer prometheus.Registerer, vec *prometheus.CounterVec) *prometheus.CounterVec {
	if err := registerer.Register(vec); err != nil {
		var already prometheus.AlreadyRegisteredError
		if errors.As(err, &already) {
			if existing, ok := already.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing
			}
		}
	}
	return vec
}

func (c *Collector) ObserveDraw(attr bag.Attribute, value string) {
	if c == nil || c.draws == nil {
		return
	}
	c.draws.WithLabelValues(string(attr), value).Inc()
}

func (c *Collector) ObserveRefill(attr bag.Attribute, _ int) {
	if c == nil || c.refills == nil {
		return
	}
	c.refills.WithLabelValues(string(attr)).Inc()
}

// Draws returns the counter for one attribute/value pair.
func (c *Collector) Draws(attr bag.Attribute, value string) prometheus.Counter {
	return c.draws.WithLabelValues(string(attr), value)
}

// Refills returns the refill counter for one attribute.
func (c *Collector) Refills(attr bag.Attribute) prometheus.Counter {
	return c.refills.WithLabelValues(string(attr))
}
