// Package metrics exposes Prometheus collectors for the API.
package metrics

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	requestCount = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "agriedu_http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"path", "method", "status"},
	)
	requestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "agriedu_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"path"},
	)
	diagnoses = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "agriedu_diagnoses_total",
			Help: "Mock diagnoses served, by crop code and severity",
		}, []string{"crop", "severity"},
	)
	decodeFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "agriedu_image_decode_failures_total",
			Help: "Uploads rejected because they were not decodable images",
		},
	)
	yieldEstimates = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "agriedu_yield_estimates_total",
			Help: "Yield estimates served, by crop code",
		}, []string{"crop"},
	)
)

func init() {
	prometheus.MustRegister(requestCount, requestDuration, diagnoses, decodeFailures, yieldEstimates)
}

func ObserveDiagnosis(crop, severity string) { diagnoses.WithLabelValues(crop, severity).Inc() }

func ObserveDecodeFailure() { decodeFailures.Inc() }

func ObserveYield(crop string) { yieldEstimates.WithLabelValues(crop).Inc() }

// Middleware counts requests by route template, so path params do not
// explode label cardinality.
func Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			path := c.Path()
			if path == "" {
				path = "unmatched"
			}
			status := c.Response().Status
			if err != nil {
				var he *echo.HTTPError
				if errors.As(err, &he) {
					status = he.Code
				} else {
					status = http.StatusInternalServerError
				}
			}
			requestCount.WithLabelValues(path, c.Request().Method, strconv.Itoa(status)).Inc()
			requestDuration.WithLabelValues(path).Observe(time.Since(start).Seconds())
			return err
		}
	}
}

// Handler serves the default registry in the Prometheus text format.
func Handler() echo.HandlerFunc { return echo.WrapHandler(promhttp.Handler()) }
