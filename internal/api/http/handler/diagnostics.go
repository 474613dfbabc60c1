package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Alijeyrad/portfolio_backend/internal/service/diagnostics"
)

const maxErrorText = 50

type DiagnosticsHandler struct {
	svc diagnostics.Service
}

func NewDiagnosticsHandler(svc diagnostics.Service) *DiagnosticsHandler {
	return &DiagnosticsHandler{svc: svc}
}

type diagnosticsResponse struct {
	Status           diagnostics.Status `json:"status"`
	Backend          string             `json:"backend"`
	Database         string             `json:"database"`
	DatabaseURL      string             `json:"database_url"`
	DatabaseName     string             `json:"database_name"`
	ConnectionStatus string             `json:"connection_status"`
	Collections      []string           `json:"collections"`
}

// GET /test
func (h *DiagnosticsHandler) Check(c fiber.Ctx) error {
	return ok(c, describeReport(h.svc.Check(c.Context())))
}

func describeReport(r diagnostics.Report) diagnosticsResponse {
	resp := diagnosticsResponse{
		Status:           r.Status,
		Backend:          "✅ Running",
		DatabaseURL:      setText(r.DatabaseURLSet),
		DatabaseName:     setText(r.DatabaseNameSet),
		ConnectionStatus: "Not Connected",
		Collections:      r.Collections,
	}

	switch r.Status {
	case diagnostics.StatusConnected:
		resp.Database = "✅ Connected & Working"
		resp.ConnectionStatus = "Connected"
	case diagnostics.StatusQueryFailed:
		resp.Database = "⚠️  Connected but Error: " + errText(r.Err)
		resp.ConnectionStatus = "Connected"
	case diagnostics.StatusUnreachable:
		resp.Database = "❌ Unreachable: " + errText(r.Err)
	default:
		resp.Database = "❌ Not Configured"
	}

	if resp.Collections == nil {
		resp.Collections = []string{}
	}
	return resp
}

func setText(set bool) string {
	if set {
		return "✅ Set"
	}
	return "❌ Not Set"
}

func errText(err error) string {
	if err == nil {
		return "unknown error"
	}
	s := []rune(err.Error())
	if len(s) > maxErrorText {
		s = s[:maxErrorText]
	}
	return string(s)
}
