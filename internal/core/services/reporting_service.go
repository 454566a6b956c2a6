package services

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"time"

	"github.com/zetaenergy/zeta_books/internal/apperrors"
	"github.com/zetaenergy/zeta_books/internal/core/domain"
	portsrepo "github.com/zetaenergy/zeta_books/internal/core/ports/repositories"
	portssvc "github.com/zetaenergy/zeta_books/internal/core/ports/services"
	"github.com/zetaenergy/zeta_books/internal/dto"
	"github.com/zetaenergy/zeta_books/internal/utils"
)

const reportDateFormat = "2006-01-02"

// csvHeader is the fixed export header. Money columns are two-decimal euro
// amounts.
var csvHeader = []string{"Date", "Client", "Product", "Quantity", "Price (€)", "Total (€)", "Paid (€)", "Due (€)", "Status"}

// reportingService aggregates the transaction collection into period-scoped
// reports.
type reportingService struct {
	BaseService
	txnRepo  portsrepo.TransactionReaderRepository
	resolver portssvc.DisplayNameResolverSvc
	now      func() time.Time
}

// ReportingServiceOption is a functional option for configuring the
// reporting service.
type ReportingServiceOption func(*reportingService)

// WithReportingClock overrides the wall clock used for the default
// reference date, for tests.
func WithReportingClock(now func() time.Time) ReportingServiceOption {
	return func(s *reportingService) {
		s.now = now
	}
}

// NewReportingService creates a new reporting service with the provided
// options.
func NewReportingService(
	txnRepo portsrepo.TransactionReaderRepository,
	resolver portssvc.DisplayNameResolverSvc,
	options ...ReportingServiceOption,
) portssvc.ReportingSvcFacade {
	svc := &reportingService{
		txnRepo:  txnRepo,
		resolver: resolver,
		now:      time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// GenerateReport implements portssvc.ReportingSvcFacade.
func (s *reportingService) GenerateReport(ctx context.Context, req dto.ReportRequest) (*dto.ReportResponse, error) {
	kind := domain.PeriodKind(req.Period)
	if !domain.ValidPeriodKind(kind) {
		return nil, fmt.Errorf("%w: unknown report period %q", apperrors.ErrValidation, req.Period)
	}

	ref := s.now()
	if req.RefDate != "" {
		parsed, err := time.Parse(reportDateFormat, req.RefDate)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid refDate %q", apperrors.ErrValidation, req.RefDate)
		}
		ref = parsed
	}

	var customRange domain.DateRange
	if kind == domain.PeriodCustom {
		if req.From != "" {
			from, err := time.Parse(reportDateFormat, req.From)
			if err != nil {
				return nil, fmt.Errorf("%w: invalid from date %q", apperrors.ErrValidation, req.From)
			}
			customRange.From = &from
		}
		if req.To != "" {
			to, err := time.Parse(reportDateFormat, req.To)
			if err != nil {
				return nil, fmt.Errorf("%w: invalid to date %q", apperrors.ErrValidation, req.To)
			}
			customRange.To = &to
		}
	}

	period := domain.ResolvePeriod(kind, ref, customRange)
	if period.Degenerate {
		// A custom range without both bounds collapses to a single day;
		// surface it instead of silently filtering almost everything out.
		s.LogWarn(ctx, "Custom report period missing a bound, using single-day range",
			slog.String("date", period.Start.Format(reportDateFormat)))
	}

	transactions, err := s.txnRepo.ListTransactions(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load transactions for report")
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	filtered := domain.FilterTransactions(transactions, period, req.ClientID, domain.PaymentStatus(req.Status))
	summary := domain.Summarize(filtered)

	rows := make([]dto.TransactionResponse, len(filtered))
	for i, t := range filtered {
		rows[i] = dto.ToTransactionResponse(t,
			s.resolver.ClientDisplayName(ctx, t.ClientID),
			s.resolver.ProductDisplayName(ctx, t.ProductID),
		)
	}

	s.LogInfo(ctx, "Report generated",
		slog.String("period", string(kind)),
		slog.String("label", period.Label),
		slog.Int("row_count", len(rows)))

	return &dto.ReportResponse{
		PeriodLabel: period.Label,
		PeriodStart: period.Start.Format(reportDateFormat),
		PeriodEnd:   period.End.Format(reportDateFormat),
		Degenerate:  period.Degenerate,
		Rows:        rows,
		Summary:     summary,
	}, nil
}

// WriteReportCSV implements portssvc.ReportingSvcFacade.
func (s *reportingService) WriteReportCSV(w io.Writer, report *dto.ReportResponse) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, row := range report.Rows {
		record := []string{
			row.Date.Format("02/01/2006"),
			row.ClientName,
			row.ProductName,
			strconv.FormatInt(row.Quantity, 10),
			utils.FormatMoney(row.PricePerUnit),
			utils.FormatMoney(row.TotalPrice),
			utils.FormatMoney(row.AmountPaid),
			utils.FormatMoney(row.AmountDue),
			domain.PaymentStatus(row.PaymentStatus).DisplayName(),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	// Blank separator, then summary rows.
	summaryRows := [][]string{
		{""},
		{"Report Summary", report.PeriodLabel},
		{"Total Transactions", strconv.Itoa(report.Summary.TransactionCount)},
		{"Total Amount", utils.FormatEuro(report.Summary.TotalAmount)},
		{"Total Paid", utils.FormatEuro(report.Summary.TotalPaid)},
		{"Total Due", utils.FormatEuro(report.Summary.TotalDue)},
	}
	for _, record := range summaryRows {
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV summary: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
