package report

import (
	"fmt"

	"fintrack/internal/core"
)

// Row builders turn a page's filtered list plus its summary into sheet rows:
// header, one row per record, a blank spacer, then totals. They are pure so
// the layout is testable without a spreadsheet.

func expenseRows(expenses []core.Expense, summary core.ExpenseSummary) [][]any {
	rows := [][]any{{"Date", "Description", "Category", "Payment Method", "Amount"}}
	for _, e := range expenses {
		rows = append(rows, []any{e.Date.String(), e.Description, e.Category, e.PaymentMethod, e.Amount})
	}
	rows = append(rows, []any{}, []any{"Total Expenses", "", "", "", summary.TotalExpenses})
	for _, ca := range core.ExpensesByCategory(expenses) {
		rows = append(rows, []any{"", ca.Name, "", "", ca.Amount})
	}
	return rows
}

func investmentRows(investments []core.Investment, summary core.InvestmentSummary) [][]any {
	rows := [][]any{{"Name", "Symbol", "Type", "Quantity", "Purchase Price", "Current Price", "Current Value", "Profit/Loss"}}
	for _, inv := range investments {
		rows = append(rows, []any{
			inv.Name, inv.Symbol, string(inv.Type),
			inv.Quantity, inv.PurchasePrice, inv.CurrentPrice,
			optional(inv.CurrentValue), optional(inv.ProfitLoss),
		})
	}
	rows = append(rows, []any{},
		[]any{"Total Invested", summary.TotalInvested},
		[]any{"Total Current Value", summary.TotalCurrentValue},
		[]any{"Total Profit/Loss", summary.TotalProfitLoss})
	return rows
}

func loanRows(loans []core.Loan, summary core.LoanSummary) [][]any {
	rows := [][]any{{"Name", "Principal", "Rate %", "Interest Type", "Start Date", "Tenure Months", "Balance", "EMI"}}
	for _, l := range loans {
		rows = append(rows, []any{
			l.Name, l.PrincipalAmount, l.InterestRate, string(l.InterestType),
			l.StartDate.String(), l.TenureMonths, l.CurrentBalance,
			optional(l.EMIAmount),
		})
	}
	rows = append(rows, []any{},
		[]any{"Total Principal", summary.TotalPrincipal},
		[]any{"Total Outstanding", summary.TotalOutstanding},
		[]any{"Total Interest", summary.TotalInterest})
	return rows
}

func sipRows(sips []core.SIP, summary core.SIPSummary) [][]any {
	rows := [][]any{{"Name", "Scheme Code", "Monthly Amount", "Start Date", "Duration Months", "NAV", "Units", "Current Value"}}
	for _, s := range sips {
		rows = append(rows, []any{
			s.Name, s.SchemeCode, s.MonthlyAmount, s.StartDate.String(),
			s.DurationMonths, s.CurrentNAV, s.TotalUnits,
			optional(s.CurrentValue),
		})
	}
	rows = append(rows, []any{},
		[]any{"Total Monthly Amount", summary.TotalMonthlyAmount},
		[]any{"Total Invested", summary.TotalInvested},
		[]any{"Total Current Value", summary.TotalCurrentValue})
	return rows
}

// optional renders a server-computed field, blank when the backend did not
// provide it.
func optional(v *float64) any {
	if v == nil {
		return ""
	}
	return *v
}

func sheetRange(sheet string) string {
	return fmt.Sprintf("%s!A1", sheet)
}
