package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

var (
	BooksFormattedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{Name: "books_formatted_total", Help: "Formatted books by source (stored or inline) and pair"}, []string{"source", "pair"})
	FormatErrorsTotal   = prometheus.NewCounterVec(prometheus.CounterOpts{Name: "format_errors_total", Help: "Rejected format requests by reason"}, []string{"reason"})
	SnapshotsStored     = prometheus.NewCounterVec(prometheus.CounterOpts{Name: "snapshots_stored_total", Help: "Snapshots accepted per market"}, []string{"market"})
	SpreadPercentage    = prometheus.NewGaugeVec(prometheus.GaugeOpts{Name: "spread_percentage", Help: "Last spread percentage served per market"}, []string{"market"})
	CrossedBooksTotal   = prometheus.NewCounterVec(prometheus.CounterOpts{Name: "crossed_books_total", Help: "Books served with best ask below best bid"}, []string{"market"})
)

// Init registers the collectors on a fresh registry.
func Init() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	toRegister := []prometheus.Collector{
		BooksFormattedTotal, FormatErrorsTotal, SnapshotsStored, SpreadPercentage, CrossedBooksTotal,
		collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	}
	reg.MustRegister(toRegister...)
	logrus.Info("prometheus metrics initialized")
	return reg
}

func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}
