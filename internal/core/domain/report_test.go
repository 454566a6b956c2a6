package domain_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zetaenergy/zeta_books/internal/core/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestResolvePeriod_Weekly(t *testing.T) {
	tests := []struct {
		name      string
		ref       time.Time
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name:      "monday reference",
			ref:       date(2024, time.January, 1), // Monday
			wantStart: date(2024, time.January, 1),
			wantEnd:   date(2024, time.January, 7),
		},
		{
			name:      "mid week reference",
			ref:       date(2024, time.January, 4), // Thursday
			wantStart: date(2024, time.January, 1),
			wantEnd:   date(2024, time.January, 7),
		},
		{
			name:      "sunday belongs to preceding monday week",
			ref:       date(2024, time.January, 7),
			wantStart: date(2024, time.January, 1),
			wantEnd:   date(2024, time.January, 7),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := domain.ResolvePeriod(domain.PeriodWeekly, tt.ref, domain.DateRange{})
			assert.Equal(t, tt.wantStart, p.Start)
			assert.True(t, p.Contains(tt.wantEnd), "end day must be inclusive")
			assert.False(t, p.Contains(tt.wantEnd.AddDate(0, 0, 1)))
			assert.Equal(t, "Week of Jan 1, 2024", p.Label)
			assert.False(t, p.Degenerate)
		})
	}
}

func TestResolvePeriod_Monthly(t *testing.T) {
	p := domain.ResolvePeriod(domain.PeriodMonthly, date(2024, time.February, 14), domain.DateRange{})

	assert.Equal(t, date(2024, time.February, 1), p.Start)
	assert.True(t, p.Contains(date(2024, time.February, 29)), "leap February end inclusive")
	assert.False(t, p.Contains(date(2024, time.March, 1)))
	assert.Equal(t, "February 2024", p.Label)
}

func TestResolvePeriod_Quarterly(t *testing.T) {
	tests := []struct {
		ref       time.Time
		wantStart time.Time
		wantLast  time.Time
		wantLabel string
	}{
		{date(2024, time.January, 15), date(2024, time.January, 1), date(2024, time.March, 31), "Q1 2024"},
		{date(2024, time.May, 2), date(2024, time.April, 1), date(2024, time.June, 30), "Q2 2024"},
		{date(2024, time.December, 31), date(2024, time.October, 1), date(2024, time.December, 31), "Q4 2024"},
	}

	for _, tt := range tests {
		t.Run(tt.wantLabel, func(t *testing.T) {
			p := domain.ResolvePeriod(domain.PeriodQuarterly, tt.ref, domain.DateRange{})
			assert.Equal(t, tt.wantStart, p.Start)
			assert.True(t, p.Contains(tt.wantLast))
			assert.False(t, p.Contains(tt.wantLast.AddDate(0, 0, 1)))
			assert.Equal(t, tt.wantLabel, p.Label)
		})
	}
}

func TestResolvePeriod_CustomMissingBoundIsDegenerate(t *testing.T) {
	ref := date(2024, time.July, 10)
	from := date(2024, time.July, 1)

	p := domain.ResolvePeriod(domain.PeriodCustom, ref, domain.DateRange{From: &from})

	assert.True(t, p.Degenerate)
	assert.Equal(t, ref, p.Start)
	assert.True(t, p.Contains(ref))
	assert.False(t, p.Contains(ref.AddDate(0, 0, 1)))
	assert.Equal(t, "Custom Range", p.Label)
}

func TestResolvePeriod_CustomFullRange(t *testing.T) {
	from := date(2024, time.July, 1)
	to := date(2024, time.July, 9)

	p := domain.ResolvePeriod(domain.PeriodCustom, date(2024, time.July, 20), domain.DateRange{From: &from, To: &to})

	assert.False(t, p.Degenerate)
	assert.Equal(t, "Jul 1, 2024 - Jul 9, 2024", p.Label)
	assert.True(t, p.Contains(to))
	assert.False(t, p.Contains(to.AddDate(0, 0, 1)))
}

func TestFilterTransactions(t *testing.T) {
	period := domain.ResolvePeriod(domain.PeriodWeekly, date(2024, time.January, 1), domain.DateRange{})
	inWeek := domain.Transaction{TransactionID: "a", ClientID: "c1", PaymentStatus: domain.StatusPending, Date: date(2024, time.January, 1)}
	outOfWeek := domain.Transaction{TransactionID: "b", ClientID: "c1", PaymentStatus: domain.StatusSettled, Date: date(2024, time.January, 10)}
	otherClient := domain.Transaction{TransactionID: "c", ClientID: "c2", PaymentStatus: domain.StatusSettled, Date: date(2024, time.January, 3)}
	all := []domain.Transaction{inWeek, outOfWeek, otherClient}

	t.Run("period only", func(t *testing.T) {
		got := domain.FilterTransactions(all, period, "", "")
		require.Len(t, got, 2)
		assert.Equal(t, "a", got[0].TransactionID)
		assert.Equal(t, "c", got[1].TransactionID)
	})

	t.Run("all sentinels disable filters", func(t *testing.T) {
		got := domain.FilterTransactions(all, period, "all", "all")
		assert.Len(t, got, 2)
	})

	t.Run("client filter", func(t *testing.T) {
		got := domain.FilterTransactions(all, period, "c2", "")
		require.Len(t, got, 1)
		assert.Equal(t, "c", got[0].TransactionID)
	})

	t.Run("status filter", func(t *testing.T) {
		got := domain.FilterTransactions(all, period, "", domain.StatusPending)
		require.Len(t, got, 1)
		assert.Equal(t, "a", got[0].TransactionID)
	})
}

func TestSummarize(t *testing.T) {
	txns := []domain.Transaction{
		{
			ClientID: "c1", ProductID: "p1",
			TotalPrice: decimal.NewFromInt(100), AmountPaid: decimal.NewFromInt(100),
			AmountDue: decimal.Zero, PaymentStatus: domain.StatusSettled,
		},
		{
			ClientID: "c2", ProductID: "p1",
			TotalPrice: decimal.NewFromInt(50), AmountPaid: decimal.NewFromInt(50),
			AmountDue: decimal.Zero, PaymentStatus: domain.StatusSettled,
		},
		{
			ClientID: "c1", ProductID: "p2",
			TotalPrice: decimal.NewFromInt(25), AmountPaid: decimal.Zero,
			AmountDue: decimal.NewFromInt(25), PaymentStatus: domain.StatusPending,
		},
	}

	s := domain.Summarize(txns)

	assert.Equal(t, 3, s.TransactionCount)
	assert.True(t, s.TotalAmount.Equal(decimal.NewFromInt(175)))
	assert.True(t, s.TotalPaid.Equal(decimal.NewFromInt(150)))
	assert.True(t, s.TotalDue.Equal(decimal.NewFromInt(25)))
	assert.Equal(t, 2, s.SettledCount)
	assert.Equal(t, 1, s.PendingCount)
	assert.Equal(t, 2, s.DistinctClientCount)
	assert.Equal(t, 2, s.DistinctProductCount)
}

func TestSummarize_CurrencyScaleSums(t *testing.T) {
	// 0.1 + 0.2 style float drift must not appear in decimal sums.
	txns := make([]domain.Transaction, 0, 10)
	for i := 0; i < 10; i++ {
		txns = append(txns, domain.Transaction{
			ClientID:   "c1",
			ProductID:  "p1",
			TotalPrice: decimal.NewFromFloat(0.1),
			AmountPaid: decimal.NewFromFloat(0.1),
			AmountDue:  decimal.Zero,
		})
	}

	s := domain.Summarize(txns)
	assert.True(t, s.TotalAmount.Equal(decimal.NewFromInt(1)), "got %s", s.TotalAmount)
}

func TestProductSlug(t *testing.T) {
	at := time.UnixMilli(1700000000000).UTC()
	slug := domain.ProductSlug(at, "Granit Maximum 15W40", "20L")
	assert.Equal(t, "1700000000000_granit_maximum_15w40_20l", slug)
}

func TestSameProduct(t *testing.T) {
	assert.True(t, domain.SameProduct("Granit Maximum 15W40", "20L", "granit maximum 15w40", "20l"))
	assert.True(t, domain.SameProduct(" Granit Maximum 15W40 ", "20L", "Granit Maximum 15W40", " 20L"))
	assert.False(t, domain.SameProduct("Granit Maximum 15W40", "20L", "Granit Maximum 15W40", "205L"))
}
