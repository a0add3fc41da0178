package observability

import (
	"context"
	"time"
)

// RequestInfo describes the request a span belongs to.
type RequestInfo struct {
	Route     string
	RequestID string
	Started   time.Time
}

type requestInfoKey struct{}

func withRequestInfo(ctx context.Context, info *RequestInfo) context.Context {
	return context.WithValue(ctx, requestInfoKey{}, info)
}

// RequestInfoFrom returns the info stored by Middleware, or nil.
func RequestInfoFrom(ctx context.Context) *RequestInfo {
	info, _ := ctx.Value(requestInfoKey{}).(*RequestInfo)
	return info
}
