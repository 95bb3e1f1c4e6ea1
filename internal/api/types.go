package api

import (
	"time"

	"github.com/findajay/energy-intelligence/internal/report"
	"github.com/findajay/energy-intelligence/internal/storage"
)

// AnalyzeRequest is the POST /energy/analyze/platform body. Missing
// window bounds are defaulted rather than rejected.
type AnalyzeRequest struct {
	Microservices       []report.MicroserviceGroup `json:"microservices"`
	SharedResourceIDs   []string                   `json:"sharedResourceIds,omitempty"`
	StartTime           *time.Time                 `json:"startTime,omitempty"`
	EndTime             *time.Time                 `json:"endTime,omitempty"`
	UtilizationPercent  float64                    `json:"utilizationPercentage,omitempty"`
	AnalyzeAllResources bool                       `json:"analyzeAllResources,omitempty"`
}

// HistoryResponse is the GET /energy/reports/history body.
type HistoryResponse struct {
	Reports []storage.ReportRecord `json:"reports"`
	Count   int                    `json:"count"`
}

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
