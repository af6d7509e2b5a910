/*
Copyright (c) the dlt authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package dltstats

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

// PrometheusExporter periodically scrapes a Stats snapshot and serves it
// on /metrics for a long-running scan process.
type PrometheusExporter struct {
	registry *prometheus.Registry
	stats    Stats
	port     int
	interval time.Duration
}

// NewPrometheusExporter returns an exporter that scrapes stats every
// interval and serves the result on listenPort.
func NewPrometheusExporter(stats Stats, listenPort int, interval time.Duration) *PrometheusExporter {
	return &PrometheusExporter{
		registry: prometheus.NewRegistry(),
		stats:    stats,
		port:     listenPort,
		interval: interval,
	}
}

// Start scrapes once immediately, then serves /metrics, refreshing the
// registry every interval. It blocks; callers typically run it in its
// own goroutine.
func (e *PrometheusExporter) Start() error {
	go func() {
		for {
			e.scrape()
			time.Sleep(e.interval)
		}
	}()

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(e.registry, promhttp.HandlerOpts{EnableOpenMetrics: true}))
	return http.ListenAndServe(fmt.Sprintf(":%d", e.port), mux)
}

func (e *PrometheusExporter) scrape() {
	snap := e.stats.Snapshot()
	e.setGauge("dlt_messages_decoded", float64(snap.MessagesDecoded))
	e.setGauge("dlt_fatal_errors", float64(snap.FatalErrors))
	e.setGauge("dlt_resyncs", float64(snap.Resyncs))
	for cause, n := range snap.RecoverableErrors {
		e.setGauge("dlt_recoverable_errors_"+flattenKey(cause), float64(n))
	}
}

func (e *PrometheusExporter) setGauge(name string, value float64) {
	g := prometheus.NewGauge(prometheus.GaugeOpts{Name: name, Help: name})
	if err := e.registry.Register(g); err != nil {
		are := &prometheus.AlreadyRegisteredError{}
		if errors.As(err, are) {
			g = are.ExistingCollector.(prometheus.Gauge)
		} else {
			log.Errorf("dltstats: failed to register metric %s: %v", name, err)
			return
		}
	}
	g.Set(value)
}

func flattenKey(key string) string {
	key = strings.ReplaceAll(key, " ", "_")
	key = strings.ReplaceAll(key, ".", "_")
	key = strings.ReplaceAll(key, "-", "_")
	key = strings.ReplaceAll(key, "=", "_")
	key = strings.ReplaceAll(key, "/", "_")
	return key
}
