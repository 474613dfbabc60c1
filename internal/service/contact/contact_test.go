package contact

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Alijeyrad/portfolio_backend/internal/schema"
	"github.com/Alijeyrad/portfolio_backend/internal/testkit"
	"github.com/Alijeyrad/portfolio_backend/pkg/constants"
	"github.com/Alijeyrad/portfolio_backend/pkg/reqctx"
)

type recordingNotifier struct {
	events []ReceivedEvent
	err    error
}

func (n *recordingNotifier) ContactReceived(_ context.Context, evt ReceivedEvent) error {
	n.events = append(n.events, evt)
	return n.err
}

func TestSubmit_StoresAndReadsBack(t *testing.T) {
	store := testkit.NewMemStore()
	notifier := &recordingNotifier{}
	svc := New(store, notifier)

	ctx := reqctx.WithRequestMeta(context.Background(), &reqctx.RequestMeta{RequestID: "rid-42", RequestedAt: time.Now()})
	id, err := svc.Submit(ctx, schema.Message{Name: "A", Email: "a@example.com", Content: "hi"})
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if id == "" {
		t.Fatal("Submit() returned empty id")
	}
	if n := store.Count(constants.MessageCollection); n != 1 {
		t.Fatalf("stored %d messages, want 1", n)
	}

	got, err := svc.Get(context.Background(), id)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.ID.Hex() != id {
		t.Errorf("Get().ID = %s, want %s", got.ID.Hex(), id)
	}
	if got.Email != "a@example.com" || got.Content != "hi" {
		t.Errorf("Get() = %+v", got)
	}
	if got.RequestID != "rid-42" {
		t.Errorf("RequestID = %q, want rid-42", got.RequestID)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt not set")
	}

	if len(notifier.events) != 1 || notifier.events[0].ID != id {
		t.Errorf("notifier events = %+v", notifier.events)
	}
}

func TestSubmit_NotifierFailureIsIgnored(t *testing.T) {
	store := testkit.NewMemStore()
	svc := New(store, &recordingNotifier{err: errors.New("nats down")})

	id, err := svc.Submit(context.Background(), schema.Message{Name: "A", Email: "a@example.com", Content: "hi"})
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if id == "" {
		t.Error("expected id")
	}
}

func TestSubmit_StoreFailure(t *testing.T) {
	store := testkit.NewMemStore()
	store.Err = errors.New("connection refused")
	notifier := &recordingNotifier{}
	svc := New(store, notifier)

	_, err := svc.Submit(context.Background(), schema.Message{Name: "A", Email: "a@example.com", Content: "hi"})
	if err == nil || err.Error() != "connection refused" {
		t.Fatalf("Submit() error = %v, want store error", err)
	}
	if len(notifier.events) != 0 {
		t.Error("notifier must not run when the write fails")
	}
}

func TestNotConfigured(t *testing.T) {
	svc := New(nil, nil)

	if _, err := svc.Submit(context.Background(), schema.Message{Name: "A"}); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("Submit() error = %v, want ErrNotConfigured", err)
	}
	if _, err := svc.List(context.Background(), 0); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("List() error = %v, want ErrNotConfigured", err)
	}
	if _, err := svc.Get(context.Background(), "x"); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("Get() error = %v, want ErrNotConfigured", err)
	}
}

func TestGet_Errors(t *testing.T) {
	svc := New(testkit.NewMemStore(), nil)

	if _, err := svc.Get(context.Background(), "not-hex"); !errors.Is(err, ErrInvalidID) {
		t.Errorf("Get(not-hex) error = %v, want ErrInvalidID", err)
	}
	if _, err := svc.Get(context.Background(), "65f000000000000000000000"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get(missing) error = %v, want ErrNotFound", err)
	}
}

func TestList(t *testing.T) {
	svc := New(testkit.NewMemStore(), nil)
	for _, name := range []string{"A", "B", "C"} {
		if _, err := svc.Submit(context.Background(), schema.Message{Name: name, Email: "x@example.com", Content: "hi"}); err != nil {
			t.Fatalf("Submit(%s) error = %v", name, err)
		}
	}

	all, err := svc.List(context.Background(), 0)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(all) != 3 || all[0].Name != "A" || all[2].Name != "C" {
		t.Errorf("List() = %+v", all)
	}

	two, err := svc.List(context.Background(), 2)
	if err != nil {
		t.Fatalf("List(2) error = %v", err)
	}
	if len(two) != 2 {
		t.Errorf("List(2) returned %d", len(two))
	}
}
