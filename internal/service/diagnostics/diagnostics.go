package diagnostics

import (
	"context"
	"time"
)

// MaxCollections caps how many collection names a report carries.
const MaxCollections = 10

// Status tags the outcome of a database check.
type Status string

const (
	StatusConnected     Status = "connected"
	StatusNotConfigured Status = "not_configured"
	StatusUnreachable   Status = "unreachable"
	StatusQueryFailed   Status = "query_failed"
)

// Inspector is the read-only view of the document store used for checks.
type Inspector interface {
	Name() string
	Ping(ctx context.Context) error
	ListCollectionNames(ctx context.Context) ([]string, error)
}

// Report is the result of one check. Err is set for unreachable and
// query_failed.
type Report struct {
	Status          Status
	DatabaseName    string
	Collections     []string
	Err             error
	DatabaseURLSet  bool
	DatabaseNameSet bool
}

// Settings says which connection settings were supplied.
type Settings struct {
	DatabaseURLSet  bool
	DatabaseNameSet bool
}

type Service interface {
	// Check never fails; problems are reported in the Report.
	Check(ctx context.Context) Report
}

type diagnosticsService struct {
	store    Inspector
	settings Settings
	timeout  time.Duration
}

// New builds the service. store is nil when no database is configured.
func New(store Inspector, settings Settings, timeout time.Duration) Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &diagnosticsService{store: store, settings: settings, timeout: timeout}
}

func (s *diagnosticsService) Check(ctx context.Context) Report {
	r := Report{
		Status:          StatusNotConfigured,
		Collections:     []string{},
		DatabaseURLSet:  s.settings.DatabaseURLSet,
		DatabaseNameSet: s.settings.DatabaseNameSet,
	}
	if s.store == nil {
		return r
	}
	r.DatabaseName = s.store.Name()

	pingCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	if err := s.store.Ping(pingCtx); err != nil {
		r.Status = StatusUnreachable
		r.Err = err
		return r
	}

	listCtx, cancelList := context.WithTimeout(ctx, s.timeout)
	defer cancelList()
	names, err := s.store.ListCollectionNames(listCtx)
	if err != nil {
		r.Status = StatusQueryFailed
		r.Err = err
		return r
	}

	if len(names) > MaxCollections {
		names = names[:MaxCollections]
	}
	r.Status = StatusConnected
	r.Collections = names
	return r
}
