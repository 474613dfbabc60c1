package system

import (
	"fmt"
	"io"
	"strings"

	"github.com/Alijeyrad/portfolio_backend/internal/service/diagnostics"
)

type checkOutput struct {
	Status          diagnostics.Status `json:"status"`
	DatabaseName    string             `json:"database_name,omitempty"`
	DatabaseURLSet  bool               `json:"database_url_set"`
	DatabaseNameSet bool               `json:"database_name_set"`
	Collections     []string           `json:"collections"`
	Error           string             `json:"error,omitempty"`
}

func reportJSON(r diagnostics.Report) checkOutput {
	out := checkOutput{
		Status:          r.Status,
		DatabaseName:    r.DatabaseName,
		DatabaseURLSet:  r.DatabaseURLSet,
		DatabaseNameSet: r.DatabaseNameSet,
		Collections:     r.Collections,
	}
	if r.Err != nil {
		out.Error = r.Err.Error()
	}
	return out
}

func printReport(w io.Writer, r diagnostics.Report) {
	fmt.Fprintf(w, "status:        %s\n", r.Status)
	fmt.Fprintf(w, "database_url:  %s\n", yesNo(r.DatabaseURLSet))
	fmt.Fprintf(w, "database_name: %s\n", yesNo(r.DatabaseNameSet))
	if r.DatabaseName != "" {
		fmt.Fprintf(w, "database:      %s\n", r.DatabaseName)
	}
	if len(r.Collections) > 0 {
		fmt.Fprintf(w, "collections:   %s\n", strings.Join(r.Collections, ", "))
	}
	if r.Err != nil {
		fmt.Fprintf(w, "error:         %v\n", r.Err)
	}
}

func yesNo(set bool) string {
	if set {
		return "set"
	}
	return "not set"
}
