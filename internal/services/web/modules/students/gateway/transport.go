package gateway

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	apperrors "github.com/louisbranch/studentadmin/internal/services/web/platform/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/louisbranch/studentadmin/internal/services/web/modules/students/gateway"

// TokenSource mints bearer tokens for outbound calls.
type TokenSource interface {
	Token() (string, error)
}

// APIObserver records the outcome of one Student API call.
type APIObserver interface {
	ObserveAPICall(operation string, err error, elapsed time.Duration)
}

type apiRequest struct {
	operation   string
	method      string
	path        string
	body        io.Reader
	contentType string
	// statusKind overrides how a non-success status maps to an error kind.
	statusKind func(int) apperrors.Kind
	decode     func(io.Reader) error
}

func (g HTTPGateway) call(ctx context.Context, in apiRequest) (err error) {
	started := time.Now()
	ctx, span := otel.Tracer(tracerName).Start(ctx, "student_api."+in.operation,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", in.method),
			attribute.String("url.path", in.path),
		),
	)
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
		if g.metrics != nil {
			g.metrics.ObserveAPICall(in.operation, err, time.Since(started))
		}
	}()

	req, err := http.NewRequestWithContext(ctx, in.method, g.baseURL+in.path, in.body)
	if err != nil {
		return apperrors.E(apperrors.KindUnknown, fmt.Sprintf("build %s request: %v", in.operation, err))
	}
	req.Header.Set("Accept", "application/json")
	if in.contentType != "" {
		req.Header.Set("Content-Type", in.contentType)
	}
	if g.tokens != nil {
		token, err := g.tokens.Token()
		if err != nil {
			return apperrors.E(apperrors.KindUnauthorized, fmt.Sprintf("mint token for %s: %v", in.operation, err))
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := g.client.Do(req)
	if err != nil {
		return apperrors.E(apperrors.KindUnavailable, fmt.Sprintf("%s: %v", in.operation, err))
	}
	defer resp.Body.Close()
	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		_, _ = io.Copy(io.Discard, resp.Body)
		kind := apperrors.KindFromStatus(resp.StatusCode)
		if in.statusKind != nil {
			kind = in.statusKind(resp.StatusCode)
		}
		return apperrors.E(kind, fmt.Sprintf("%s: student api returned status %d", in.operation, resp.StatusCode))
	}
	if in.decode == nil {
		return nil
	}
	if err := in.decode(resp.Body); err != nil {
		return apperrors.E(apperrors.KindUnknown, fmt.Sprintf("decode %s response: %v", in.operation, err))
	}
	return nil
}
