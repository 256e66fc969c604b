package obs

import (
	"context"
	"log/slog"
	"time"
)

type ctxKey string

// RequestIDKey carries the JSON-RPC request id through a tool call.
const RequestIDKey ctxKey = "req_id"

// WithRequestID returns a copy of ctx carrying id.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey, id)
}

// Time starts timing op and returns a func that logs its duration and,
// when *errp is non-nil, the error. Use it as
//
//	defer obs.Time(ctx, logger, "pro_slice")(&err)
func Time(ctx context.Context, logger *slog.Logger, op string) func(errp *error) {
	start := time.Now()

	reqID, _ := ctx.Value(RequestIDKey).(string)

	return func(errp *error) {
		dur := time.Since(start)

		if errp != nil && *errp != nil {
			logger.Warn("operation failed", "req_id", reqID, "op", op, "dur_ms", dur.Milliseconds(), "error", *errp)
			return
		}
		logger.Debug("operation complete", "req_id", reqID, "op", op, "dur_ms", dur.Milliseconds())
	}
}
