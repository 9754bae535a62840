// Package metrics exposes record-pool observability as Prometheus
// metrics.
//
// The pools themselves carry no metrics instrumentation: their hot paths
// are a mutex and a handful of atomics. PoolCollector instead reads the
// registry snapshot at scrape time and emits one series per (type,
// shard) pair.
//
// Registration is explicit; nothing is registered at init time:
//
//	prometheus.MustRegister(metrics.NewPoolCollector("smallobj"))
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/zhelenskiy/smallobj/pkg/small"
)

var poolLabels = []string{"type", "shard"}

// PoolCollector is a prometheus.Collector over the record-pool registry.
type PoolCollector struct {
	constructed *prometheus.Desc
	reused      *prometheus.Desc
	destroyed   *prometheus.Desc
	freed       *prometheus.Desc
	live        *prometheus.Desc
	freeSlots   *prometheus.Desc
}

// NewPoolCollector creates a collector publishing under the given
// metric namespace.
func NewPoolCollector(namespace string) *PoolCollector {
	return &PoolCollector{
		constructed: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "pool", "records_constructed_total"),
			"Records constructed by the pool.",
			poolLabels, nil),
		reused: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "pool", "slots_reused_total"),
			"Constructions served from the pool free list.",
			poolLabels, nil),
		destroyed: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "pool", "records_destroyed_total"),
			"Records destroyed when their last handle was released.",
			poolLabels, nil),
		freed: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "pool", "slots_freed_total"),
			"Slots returned raw with the payload already consumed.",
			poolLabels, nil),
		live: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "pool", "records_live"),
			"Records issued and not yet returned.",
			poolLabels, nil),
		freeSlots: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "pool", "free_slots"),
			"Current free-list length.",
			poolLabels, nil),
	}
}

// Describe implements prometheus.Collector.
func (c *PoolCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.constructed
	ch <- c.reused
	ch <- c.destroyed
	ch <- c.freed
	ch <- c.live
	ch <- c.freeSlots
}

// Collect implements prometheus.Collector.
func (c *PoolCollector) Collect(ch chan<- prometheus.Metric) {
	for _, info := range small.Pools() {
		shard := strconv.Itoa(info.Shard)
		ch <- prometheus.MustNewConstMetric(c.constructed,
			prometheus.CounterValue, float64(info.Stats.Constructed), info.Type, shard)
		ch <- prometheus.MustNewConstMetric(c.reused,
			prometheus.CounterValue, float64(info.Stats.Reused), info.Type, shard)
		ch <- prometheus.MustNewConstMetric(c.destroyed,
			prometheus.CounterValue, float64(info.Stats.Destroyed), info.Type, shard)
		ch <- prometheus.MustNewConstMetric(c.freed,
			prometheus.CounterValue, float64(info.Stats.Freed), info.Type, shard)
		ch <- prometheus.MustNewConstMetric(c.live,
			prometheus.GaugeValue, float64(info.Stats.Live), info.Type, shard)
		ch <- prometheus.MustNewConstMetric(c.freeSlots,
			prometheus.GaugeValue, float64(info.FreeSlots), info.Type, shard)
	}
}
