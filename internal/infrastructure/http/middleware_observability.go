package httptransport

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/propagation"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/farmchain/marketplace/internal/pkg/logging"
)

// Observability wires per-request telemetry:
//   - W3C trace context extraction and one span per request
//   - request-scoped zap logger on the context (request id, trace id)
//   - request counter and duration histogram with low-cardinality labels
func Observability(
	base *zap.Logger,
	requests *prometheus.CounterVec,
	durations *prometheus.HistogramVec,
) func(http.Handler) http.Handler {
	tracer := otel.Tracer("marketplace/http")
	prop := otel.GetTextMapPropagator()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := prop.Extract(r.Context(), propagation.HeaderCarrier(r.Header))

			ctx, span := tracer.Start(ctx, r.Method+" "+r.URL.Path,
				oteltrace.WithSpanKind(oteltrace.SpanKindServer),
				oteltrace.WithAttributes(
					attribute.String("http.method", r.Method),
					attribute.String("http.target", r.URL.Path),
				),
			)
			defer span.End()

			requestID := chimiddleware.GetReqID(ctx)
			logger := base.With(zap.String("request_id", requestID))
			if sc := span.SpanContext(); sc.IsValid() {
				logger = logger.With(
					zap.String("trace_id", sc.TraceID().String()),
					zap.String("span_id", sc.SpanID().String()),
				)
			}
			ctx = logging.ContextWithLogger(ctx, logger)

			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r.WithContext(ctx))
			elapsed := time.Since(start)

			route := chi.RouteContext(ctx).RoutePattern()
			if route == "" {
				route = "unmatched"
			}
			status := strconv.Itoa(ww.Status())

			if requests != nil {
				requests.WithLabelValues(r.Method, route, status).Inc()
			}
			if durations != nil {
				durations.WithLabelValues(r.Method, route).Observe(elapsed.Seconds())
			}

			logger.Info("http_request",
				zap.String("method", r.Method),
				zap.String("route", route),
				zap.Int("status", ww.Status()),
				zap.Duration("latency", elapsed),
			)
		})
	}
}
