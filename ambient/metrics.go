package ambient

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/dreamguest/evmgr"
)

// Collector exposes a Manager's Statistics snapshot as Prometheus metrics.
// It implements prometheus.Collector directly rather than registering a set
// of updated-on-the-side gauges, so every scrape reflects a single
// consistent Stats() call instead of several independently-timed reads.
type Collector struct {
	manager *evmgr.Manager

	eventsPublished *prometheus.Desc
	eventsProcessed *prometheus.Desc
	queueCurrent    *prometheus.Desc
	queueMax        *prometheus.Desc
	subscribers     *prometheus.Desc
}

// NewCollector builds a Collector for manager. Register it with a
// prometheus.Registry the usual way:
//
//	reg.MustRegister(ambient.NewCollector(m))
func NewCollector(manager *evmgr.Manager) *Collector {
	return &Collector{
		manager:         manager,
		eventsPublished: prometheus.NewDesc("evmgr_events_published_total", "Total events published.", nil, nil),
		eventsProcessed: prometheus.NewDesc("evmgr_events_processed_total", "Total events processed.", nil, nil),
		queueCurrent:    prometheus.NewDesc("evmgr_async_queue_current", "Current depth of the asynchronous queue set.", nil, nil),
		queueMax:        prometheus.NewDesc("evmgr_async_queue_max", "High-water mark of the asynchronous queue set since the last ResetStats.", nil, nil),
		subscribers:     prometheus.NewDesc("evmgr_subscribers_total", "Current number of active subscribers across all event ids.", nil, nil),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.eventsPublished
	ch <- c.eventsProcessed
	ch <- c.queueCurrent
	ch <- c.queueMax
	ch <- c.subscribers
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	stats, err := c.manager.Stats()
	if err != nil {
		return
	}
	ch <- prometheus.MustNewConstMetric(c.eventsPublished, prometheus.CounterValue, float64(stats.EventsPublished))
	ch <- prometheus.MustNewConstMetric(c.eventsProcessed, prometheus.CounterValue, float64(stats.EventsProcessed))
	ch <- prometheus.MustNewConstMetric(c.queueCurrent, prometheus.GaugeValue, float64(stats.AsyncQueueCurrent))
	ch <- prometheus.MustNewConstMetric(c.queueMax, prometheus.GaugeValue, float64(stats.AsyncQueueMax))
	ch <- prometheus.MustNewConstMetric(c.subscribers, prometheus.GaugeValue, float64(stats.SubscribersTotal))
}
