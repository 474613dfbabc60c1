// Package reqctx carries request-scoped metadata through context.Context.
//
// The HTTP middleware sets RequestMeta for every request; services read it
// to tag logs and stored records:
//
//	ctx = reqctx.WithRequestMeta(ctx, &reqctx.RequestMeta{
//	    RequestID:   "abc-123",
//	    ClientIP:    "192.168.1.1",
//	    UserAgent:   "Mozilla/5.0",
//	    RequestedAt: time.Now(),
//	})
//
//	rid := reqctx.RequestIDFromContext(ctx)
//
// Context keys are unexported so no other package can collide with them.
package reqctx
