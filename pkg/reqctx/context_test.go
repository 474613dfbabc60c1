package reqctx

import (
	"context"
	"testing"
	"time"
)

func TestRequestMetaRoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		ctx    context.Context
		wantID string
		wantOK bool
	}{
		{
			name:   "set",
			ctx:    WithRequestMeta(context.Background(), &RequestMeta{RequestID: "rid-1", RequestedAt: time.Now()}),
			wantID: "rid-1",
			wantOK: true,
		},
		{
			name: "missing",
			ctx:  context.Background(),
		},
		{
			name: "nil meta",
			ctx:  WithRequestMeta(context.Background(), nil),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := RequestMetaFromContext(tt.ctx)
			if ok != tt.wantOK {
				t.Errorf("RequestMetaFromContext() ok = %v, want %v", ok, tt.wantOK)
			}
			if got := RequestIDFromContext(tt.ctx); got != tt.wantID {
				t.Errorf("RequestIDFromContext() = %q, want %q", got, tt.wantID)
			}
			if got := LogAttrs(tt.ctx); (len(got) > 0) != tt.wantOK {
				t.Errorf("LogAttrs() = %v", got)
			}
		})
	}
}
