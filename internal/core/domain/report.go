package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// PeriodKind selects how a report period is resolved.
type PeriodKind string

const (
	PeriodWeekly    PeriodKind = "weekly"
	PeriodMonthly   PeriodKind = "monthly"
	PeriodQuarterly PeriodKind = "quarterly"
	PeriodCustom    PeriodKind = "custom"
)

// ValidPeriodKind reports whether k is a known period kind.
func ValidPeriodKind(k PeriodKind) bool {
	switch k {
	case PeriodWeekly, PeriodMonthly, PeriodQuarterly, PeriodCustom:
		return true
	}
	return false
}

// DateRange is a caller-supplied custom range. Either bound may be nil.
type DateRange struct {
	From *time.Time
	To   *time.Time
}

// Period is a contiguous, inclusive date range scoping a report. Start is the
// first instant of the first day and End the last instant of the last day.
// Degenerate marks a custom period that collapsed to a single day because a
// bound was missing; callers should surface it rather than silently filter.
type Period struct {
	Start      time.Time
	End        time.Time
	Label      string
	Degenerate bool
}

// Contains reports whether d falls within the period, inclusive at both ends.
func (p Period) Contains(d time.Time) bool {
	return !d.Before(p.Start) && !d.After(p.End)
}

// ResolvePeriod computes the date range for a report relative to ref.
// Weeks start on Monday. Custom uses the supplied range; a missing bound
// defaults to ref for both, yielding a single-day degenerate period.
func ResolvePeriod(kind PeriodKind, ref time.Time, custom DateRange) Period {
	switch kind {
	case PeriodWeekly:
		start := startOfWeek(ref)
		end := start.AddDate(0, 0, 6)
		return Period{
			Start: startOfDay(start),
			End:   endOfDay(end),
			Label: fmt.Sprintf("Week of %s", start.Format("Jan 2, 2006")),
		}
	case PeriodMonthly:
		start := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
		end := start.AddDate(0, 1, -1)
		return Period{
			Start: start,
			End:   endOfDay(end),
			Label: ref.Format("January 2006"),
		}
	case PeriodQuarterly:
		q := (int(ref.Month()) - 1) / 3
		start := time.Date(ref.Year(), time.Month(q*3+1), 1, 0, 0, 0, 0, ref.Location())
		end := start.AddDate(0, 3, -1)
		return Period{
			Start: start,
			End:   endOfDay(end),
			Label: fmt.Sprintf("Q%d %d", q+1, ref.Year()),
		}
	default: // PeriodCustom
		from, to := custom.From, custom.To
		degenerate := from == nil || to == nil
		if degenerate {
			from, to = &ref, &ref
		}
		label := "Custom Range"
		if !degenerate {
			label = fmt.Sprintf("%s - %s", from.Format("Jan 2, 2006"), to.Format("Jan 2, 2006"))
		}
		return Period{
			Start:      startOfDay(*from),
			End:        endOfDay(*to),
			Label:      label,
			Degenerate: degenerate,
		}
	}
}

// FilterTransactions returns the transactions falling inside the period and
// matching the optional client and status filters. An empty string or "all"
// disables a filter. Insertion order is preserved; no re-sorting.
func FilterTransactions(transactions []Transaction, period Period, clientID string, status PaymentStatus) []Transaction {
	filtered := make([]Transaction, 0, len(transactions))
	for _, t := range transactions {
		if !period.Contains(t.Date) {
			continue
		}
		if clientID != "" && clientID != "all" && t.ClientID != clientID {
			continue
		}
		if status != "" && status != "all" && t.PaymentStatus != status {
			continue
		}
		filtered = append(filtered, t)
	}
	return filtered
}

// ReportSummary aggregates a filtered transaction set. Sums are exact
// decimals; rounding happens only at display.
type ReportSummary struct {
	TransactionCount     int             `json:"transactionCount"`
	TotalAmount          decimal.Decimal `json:"totalAmount"`
	TotalPaid            decimal.Decimal `json:"totalPaid"`
	TotalDue             decimal.Decimal `json:"totalDue"`
	SettledCount         int             `json:"settledCount"`
	PendingCount         int             `json:"pendingCount"`
	DistinctClientCount  int             `json:"distinctClientCount"`
	DistinctProductCount int             `json:"distinctProductCount"`
}

// Summarize computes the summary statistics over a filtered transaction set.
func Summarize(filtered []Transaction) ReportSummary {
	summary := ReportSummary{
		TransactionCount: len(filtered),
		TotalAmount:      decimal.Zero,
		TotalPaid:        decimal.Zero,
		TotalDue:         decimal.Zero,
	}
	clients := make(map[string]struct{})
	products := make(map[string]struct{})
	for _, t := range filtered {
		summary.TotalAmount = summary.TotalAmount.Add(t.TotalPrice)
		summary.TotalPaid = summary.TotalPaid.Add(t.AmountPaid)
		summary.TotalDue = summary.TotalDue.Add(t.AmountDue)
		if t.PaymentStatus == StatusSettled {
			summary.SettledCount++
		} else {
			summary.PendingCount++
		}
		clients[t.ClientID] = struct{}{}
		products[t.ProductID] = struct{}{}
	}
	summary.DistinctClientCount = len(clients)
	summary.DistinctProductCount = len(products)
	return summary
}

// startOfWeek returns the Monday of ref's week at ref's clock time.
func startOfWeek(ref time.Time) time.Time {
	offset := (int(ref.Weekday()) + 6) % 7
	return ref.AddDate(0, 0, -offset)
}

func startOfDay(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location())
}

func endOfDay(d time.Time) time.Time {
	return startOfDay(d).AddDate(0, 0, 1).Add(-time.Nanosecond)
}
