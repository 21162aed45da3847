package core

import (
	"fmt"
	"sort"
	"time"
)

// NameAmount is an amount aggregated under a display name (category, payment
// method, investment type, interest type). Chart-ready: one slice entry per
// pie segment or bar.
type NameAmount struct {
	Name   string
	Amount float64
}

// MonthAmount is a total for a specific year+month bucket.
type MonthAmount struct {
	Year   int
	Month  int // 1-12
	Amount float64
}

// Summaries as the backend reports them. All totals are server-computed; the
// client renders them as-is.
type (
	ExpenseSummary struct {
		TotalExpenses      float64            `json:"totalExpenses"`
		ExpensesByCategory map[string]float64 `json:"expensesByCategory"`
	}

	InvestmentSummary struct {
		TotalInvested     float64            `json:"totalInvested"`
		TotalCurrentValue float64            `json:"totalCurrentValue"`
		TotalProfitLoss   float64            `json:"totalProfitLoss"`
		ValueByType       map[string]float64 `json:"valueByType"`
	}

	LoanSummary struct {
		TotalPrincipal   float64            `json:"totalPrincipal"`
		TotalOutstanding float64            `json:"totalOutstanding"`
		TotalInterest    float64            `json:"totalInterest"`
		BalanceByType    map[string]float64 `json:"balanceByType"`
	}

	SIPSummary struct {
		TotalMonthlyAmount float64 `json:"totalMonthlyAmount"`
		TotalInvested      float64 `json:"totalInvested"`
		TotalCurrentValue  float64 `json:"totalCurrentValue"`
	}
)

// TrailingMonths is the window the monthly spending chart covers.
const TrailingMonths = 6

// ExpensesByCategory sums expense amounts per category.
func ExpensesByCategory(expenses []Expense) []NameAmount {
	return groupAmounts(expenses, func(e Expense) (string, float64) {
		return e.Category, e.Amount
	})
}

// ExpensesByPaymentMethod sums expense amounts per payment method.
func ExpensesByPaymentMethod(expenses []Expense) []NameAmount {
	return groupAmounts(expenses, func(e Expense) (string, float64) {
		return e.PaymentMethod, e.Amount
	})
}

// InvestmentValueByType sums quantity×currentPrice per investment type.
func InvestmentValueByType(investments []Investment) []NameAmount {
	return groupAmounts(investments, func(i Investment) (string, float64) {
		return string(i.Type), i.Quantity * i.CurrentPrice
	})
}

// LoanBalanceByInterestType sums outstanding balances per interest type.
func LoanBalanceByInterestType(loans []Loan) []NameAmount {
	return groupAmounts(loans, func(l Loan) (string, float64) {
		return string(l.InterestType), l.CurrentBalance
	})
}

// SIPMonthlyByName lists each plan's monthly commitment, largest first.
func SIPMonthlyByName(sips []SIP) []NameAmount {
	return groupAmounts(sips, func(s SIP) (string, float64) {
		return s.Name, s.MonthlyAmount
	})
}

// MonthlyExpenseTotals buckets expenses into the trailing n calendar months
// ending at now. Every month in the window appears, zero-filled when nothing
// was spent; expenses outside the window are ignored.
func MonthlyExpenseTotals(expenses []Expense, n int, now time.Time) []MonthAmount {
	if n <= 0 {
		return nil
	}

	totals := make([]MonthAmount, n)
	index := make(map[string]int, n)
	for i := 0; i < n; i++ {
		m := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, i-n+1, 0)
		totals[i] = MonthAmount{Year: m.Year(), Month: int(m.Month())}
		index[monthKey(m.Year(), int(m.Month()))] = i
	}

	for _, e := range expenses {
		if e.Date.IsZero() {
			continue
		}
		if i, ok := index[monthKey(e.Date.Year(), int(e.Date.Month()))]; ok {
			totals[i].Amount += e.Amount
		}
	}
	return totals
}

func monthKey(year, month int) string {
	return fmt.Sprintf("%04d-%02d", year, month)
}

// groupAmounts folds items into per-name sums, ordered by amount descending
// with name as the tiebreaker so repeated renders are identical.
func groupAmounts[T any](items []T, key func(T) (string, float64)) []NameAmount {
	sums := make(map[string]float64)
	for _, it := range items {
		name, amount := key(it)
		sums[name] += amount
	}

	out := make([]NameAmount, 0, len(sums))
	for name, amount := range sums {
		out = append(out, NameAmount{Name: name, Amount: amount})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Amount != out[j].Amount {
			return out[i].Amount > out[j].Amount
		}
		return out[i].Name < out[j].Name
	})
	return out
}
