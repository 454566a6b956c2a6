package services

import (
	"context"
	"io"

	"github.com/zetaenergy/zeta_books/internal/dto"
)

// ReportingSvcFacade generates period-scoped reports over the transaction
// collection and exports them as CSV.
type ReportingSvcFacade interface {
	// GenerateReport resolves the requested period, filters the transaction
	// collection and computes summary statistics. Returns
	// apperrors.ErrValidation on an unparseable date or unknown period kind.
	GenerateReport(ctx context.Context, req dto.ReportRequest) (*dto.ReportResponse, error)

	// WriteReportCSV renders a generated report in the export format:
	// a header row, one row per transaction, a blank separator and the
	// summary rows.
	WriteReportCSV(w io.Writer, report *dto.ReportResponse) error
}
