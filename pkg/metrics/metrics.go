// Package metrics provides Prometheus metrics for the standings pipeline.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "standings"

var (
	rowsScanned = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rows_scanned_total",
		Help:      "Raw sheet rows scanned inside the configured window.",
	})

	rowsSkipped = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rows_skipped_total",
		Help:      "Rows dropped for blank identity or unparsable score.",
	})

	playersRanked = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "players_ranked",
		Help:      "Players in the ranked table of the latest run.",
	})

	exportsWritten = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "exports_written_total",
		Help:      "Export files written, by format.",
	}, []string{"format"})

	runDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "run_duration_seconds",
		Help:      "Wall-clock duration of a full pipeline run.",
		Buckets:   prometheus.DefBuckets,
	})
)

// AddRowsScanned records rows scanned in the extraction window.
func AddRowsScanned(n int) { rowsScanned.Add(float64(n)) }

// AddRowsSkipped records rows dropped by the aggregation skip rules.
func AddRowsSkipped(n int) { rowsSkipped.Add(float64(n)) }

// SetPlayersRanked records the size of the ranked table.
func SetPlayersRanked(n int) { playersRanked.Set(float64(n)) }

// IncExportWritten records one written export file of the given format.
func IncExportWritten(format string) { exportsWritten.WithLabelValues(format).Inc() }

// ObserveRunDuration records the duration of one pipeline run.
func ObserveRunDuration(d time.Duration) { runDuration.Observe(d.Seconds()) }
