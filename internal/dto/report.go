package dto

import (
	"github.com/zetaenergy/zeta_books/internal/core/domain"
)

// ReportRequest selects the period and filters for a report. Period is one
// of weekly, monthly, quarterly, custom. RefDate, From and To are
// YYYY-MM-DD; RefDate defaults to today. ClientID and Status accept ""
// or "all" to disable the filter.
type ReportRequest struct {
	Period   string `form:"period" binding:"required,oneof=weekly monthly quarterly custom"`
	RefDate  string `form:"refDate" binding:"omitempty,dateformat"`
	From     string `form:"from" binding:"omitempty,dateformat"`
	To       string `form:"to" binding:"omitempty,dateformat"`
	ClientID string `form:"clientId"`
	Status   string `form:"status" binding:"omitempty,oneof=settled pending all"`
}

// ReportResponse is the generated report: the resolved period, the filtered
// rows in insertion order, and the summary statistics.
type ReportResponse struct {
	PeriodLabel string                `json:"periodLabel"`
	PeriodStart string                `json:"periodStart"`
	PeriodEnd   string                `json:"periodEnd"`
	Degenerate  bool                  `json:"degeneratePeriod,omitempty"`
	Rows        []TransactionResponse `json:"rows"`
	Summary     domain.ReportSummary  `json:"summary"`
}
