// Package promstats exports borrowvec Stats as Prometheus metrics.
package promstats

import (
	"sort"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/scigolib/borrowvec"
)

// Collector reports a set of named Stats. Each holder name becomes the
// value of the "holder" label.
type Collector struct {
	mtx   sync.RWMutex
	stats map[string]*borrowvec.Stats

	scopes   *prometheus.Desc
	binds    *prometheus.Desc
	clears   *prometheus.Desc
	grows    *prometheus.Desc
	drops    *prometheus.Desc
	capacity *prometheus.Desc
}

// NewCollector creates an empty Collector.
func NewCollector() *Collector {
	labels := []string{"holder"}
	return &Collector{
		stats: map[string]*borrowvec.Stats{},
		scopes: prometheus.NewDesc(
			"borrowvec_scopes_total",
			"Number of guards released back into their holder.",
			labels, nil),
		binds: prometheus.NewDesc(
			"borrowvec_binds_total",
			"Number of holders converted into bound storage.",
			labels, nil),
		clears: prometheus.NewDesc(
			"borrowvec_clears_total",
			"Number of bound storages cleared back into a holder.",
			labels, nil),
		grows: prometheus.NewDesc(
			"borrowvec_grows_total",
			"Number of uses that returned a larger allocation than they started with.",
			labels, nil),
		drops: prometheus.NewDesc(
			"borrowvec_drops_total",
			"Number of allocations discarded for exceeding the retention bound.",
			labels, nil),
		capacity: prometheus.NewDesc(
			"borrowvec_capacity",
			"Capacity of the allocation currently retained.",
			labels, nil),
	}
}

// Add registers s under name, replacing any Stats already registered under it.
func (c *Collector) Add(name string, s *borrowvec.Stats) {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	c.stats[name] = s
}

// Remove stops reporting name.
func (c *Collector) Remove(name string) {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	delete(c.stats, name)
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.scopes
	ch <- c.binds
	ch <- c.clears
	ch <- c.grows
	ch <- c.drops
	ch <- c.capacity
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.mtx.RLock()
	defer c.mtx.RUnlock()

	names := make([]string, 0, len(c.stats))
	for name := range c.stats {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		s := c.stats[name].Snapshot()
		ch <- prometheus.MustNewConstMetric(c.scopes, prometheus.CounterValue, float64(s.Scopes), name)
		ch <- prometheus.MustNewConstMetric(c.binds, prometheus.CounterValue, float64(s.Binds), name)
		ch <- prometheus.MustNewConstMetric(c.clears, prometheus.CounterValue, float64(s.Clears), name)
		ch <- prometheus.MustNewConstMetric(c.grows, prometheus.CounterValue, float64(s.Grows), name)
		ch <- prometheus.MustNewConstMetric(c.drops, prometheus.CounterValue, float64(s.Drops), name)
		ch <- prometheus.MustNewConstMetric(c.capacity, prometheus.GaugeValue, float64(s.Capacity), name)
	}
}
