package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/goto/backoffice/internal/client"
	"github.com/goto/backoffice/pkg/statsd"
	"github.com/goto/backoffice/pkg/telemetry"
	"github.com/goto/salt/log"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/oklog/ulid/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	semconv "go.opentelemetry.io/otel/semconv/v1.20.0"
)

const (
	requestIDHeaderKey = client.RequestIDHeaderKey
	unmatchedRoute     = "unmatched"
)

type interceptedResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func responseWriter(w http.ResponseWriter) *interceptedResponseWriter {
	return &interceptedResponseWriter{w, http.StatusOK}
}

func (lrw *interceptedResponseWriter) WriteHeader(code int) {
	lrw.statusCode = code
	lrw.ResponseWriter.WriteHeader(code)
}

// RequestID keeps the caller's request id or assigns a new ULID, and echoes it
// on the response.
func RequestID() mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(requestIDHeaderKey)
			if id == "" {
				id = ulid.Make().String()
				r.Header.Set(requestIDHeaderKey, id)
			}
			w.Header().Set(requestIDHeaderKey, id)
			next.ServeHTTP(w, r)
		})
	}
}

func Logging(logger log.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rw := responseWriter(w)
			next.ServeHTTP(rw, r)

			logger.Info("request served",
				"method", r.Method,
				"path", r.URL.Path,
				"status", rw.statusCode,
				"duration_ms", time.Since(start).Milliseconds(),
				"request_id", r.Header.Get(requestIDHeaderKey),
			)
		})
	}
}

// StatsD publishes the response time of every request tagged with its route
// template, method and status.
func StatsD(reporter *statsd.Reporter) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rw := responseWriter(w)
			next.ServeHTTP(rw, r)

			reporter.Timing("http.request", time.Since(start)).
				Tag("method", r.Method).
				Tag("route", routeTemplate(r)).
				Tag("status", strconv.Itoa(rw.statusCode)).
				Publish()
		})
	}
}

// OpenTelemetry records the latency of every request on the global meter
// provider, tagged with its route template, method and status.
func OpenTelemetry() mux.MiddlewareFunc {
	duration, err := otel.Meter("github.com/goto/backoffice/internal/server").
		Float64Histogram(telemetry.RequestDurationInstrument, metric.WithUnit("ms"))
	if err != nil {
		otel.Handle(err)
	}

	return func(next http.Handler) http.Handler {
		if duration == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rw := responseWriter(w)
			next.ServeHTTP(rw, r)

			duration.Record(r.Context(), float64(time.Since(start))/float64(time.Millisecond), metric.WithAttributes(
				semconv.HTTPMethod(r.Method),
				semconv.HTTPRoute(routeTemplate(r)),
				semconv.HTTPStatusCode(rw.statusCode),
			))
		})
	}
}

// NewRelic wraps every request in a web transaction. A nil application
// disables it.
func NewRelic(app *newrelic.Application) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		if app == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			txn := app.StartTransaction(r.Method + " " + routeTemplate(r))
			defer txn.End()

			txn.SetWebRequestHTTP(r)
			w = txn.SetWebResponse(w)
			next.ServeHTTP(w, newrelic.RequestWithTransactionContext(r, txn))
		})
	}
}

func routeTemplate(r *http.Request) string {
	route := mux.CurrentRoute(r)
	if route == nil {
		return unmatchedRoute
	}
	tpl, err := route.GetPathTemplate()
	if err != nil {
		return unmatchedRoute
	}
	return tpl
}
