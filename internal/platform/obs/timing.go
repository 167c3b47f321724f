package obs

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

type ctxKey string

const RequestIDKey ctxKey = "req_id"

// WithRequestID stores the request id used to correlate timing logs.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey, id)
}

func RequestID(ctx context.Context) string {
	reqID, _ := ctx.Value(RequestIDKey).(string)
	return reqID
}

// Time logs the duration of an operation once the returned func is called:
//
//	defer obs.Time(ctx, "ban.Geocode")(&err)
//
// Failed operations are logged at debug level together with the error, since
// most of them are expected absences rather than faults.
func Time(ctx context.Context, name string) func(errp *error) {
	start := time.Now()
	entry := Entry(ctx).WithField("op", name)

	return func(errp *error) {
		entry = entry.WithField("dur_ms", time.Since(start).Milliseconds())

		if errp != nil && *errp != nil {
			entry.WithError(*errp).Debug("operation failed")
			return
		}
		entry.Debug("operation done")
	}
}

// Entry returns a logrus entry carrying the request id found in ctx, if any.
func Entry(ctx context.Context) *logrus.Entry {
	entry := logrus.WithContext(ctx)
	if reqID := RequestID(ctx); reqID != "" {
		entry = entry.WithField("req_id", reqID)
	}
	return entry
}
