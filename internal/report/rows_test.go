package report

import (
	"testing"

	"fintrack/internal/core"
)

func TestExpenseRows(t *testing.T) {
	expenses := []core.Expense{
		{Description: "Coffee", Amount: 3.5, Date: core.NewDate(2026, 1, 10), Category: "Food", PaymentMethod: "Cash"},
		{Description: "Metro", Amount: 20, Date: core.NewDate(2026, 1, 11), Category: "Transportation", PaymentMethod: "UPI"},
	}
	summary := core.ExpenseSummary{TotalExpenses: 23.5}

	rows := expenseRows(expenses, summary)

	// header + 2 data rows + spacer + total + 2 category lines
	if len(rows) != 7 {
		t.Fatalf("got %d rows, want 7", len(rows))
	}
	if rows[0][0] != "Date" || rows[0][4] != "Amount" {
		t.Errorf("header = %v", rows[0])
	}
	if rows[1][0] != "2026-01-10" || rows[1][1] != "Coffee" {
		t.Errorf("first data row = %v", rows[1])
	}
	if len(rows[3]) != 0 {
		t.Errorf("spacer row not empty: %v", rows[3])
	}
	if rows[4][0] != "Total Expenses" || rows[4][4] != 23.5 {
		t.Errorf("totals row = %v", rows[4])
	}
	// Category breakdown follows, largest amount first.
	if rows[5][1] != "Transportation" || rows[5][4] != 20.0 {
		t.Errorf("breakdown row = %v", rows[5])
	}
}

func TestInvestmentRows(t *testing.T) {
	value := 2200.0
	investments := []core.Investment{
		{Name: "Index fund", Symbol: "NIFTYBEES", Type: core.InvestmentETF, Quantity: 10, PurchasePrice: 200, CurrentPrice: 220, CurrentValue: &value},
		{Name: "Pending", Type: core.InvestmentStock, Quantity: 1, PurchasePrice: 50, CurrentPrice: 55},
	}
	summary := core.InvestmentSummary{TotalInvested: 2050, TotalCurrentValue: 2255, TotalProfitLoss: 205}

	rows := investmentRows(investments, summary)

	if len(rows) != 7 {
		t.Fatalf("got %d rows, want 7", len(rows))
	}
	if rows[1][6] != 2200.0 {
		t.Errorf("server-computed value = %v, want 2200", rows[1][6])
	}
	if rows[2][6] != "" {
		t.Errorf("missing server value should render blank, got %v", rows[2][6])
	}
	if rows[4][0] != "Total Invested" || rows[4][1] != 2050.0 {
		t.Errorf("totals row = %v", rows[4])
	}
}

func TestLoanRows(t *testing.T) {
	loans := []core.Loan{
		{Name: "Car loan", PrincipalAmount: 500000, InterestRate: 8.5, InterestType: core.InterestSimple,
			StartDate: core.NewDate(2024, 3, 1), TenureMonths: 60, CurrentBalance: 400000},
	}
	summary := core.LoanSummary{TotalPrincipal: 500000, TotalOutstanding: 400000, TotalInterest: 85000}

	rows := loanRows(loans, summary)
	if len(rows) != 6 {
		t.Fatalf("got %d rows, want 6", len(rows))
	}
	if rows[1][3] != "SIMPLE" || rows[1][4] != "2024-03-01" {
		t.Errorf("data row = %v", rows[1])
	}
	if rows[5][0] != "Total Interest" || rows[5][1] != 85000.0 {
		t.Errorf("last totals row = %v", rows[5])
	}
}

func TestSIPRows(t *testing.T) {
	sips := []core.SIP{
		{Name: "Bluechip fund", SchemeCode: "120503", MonthlyAmount: 5000,
			StartDate: core.NewDate(2024, 1, 1), DurationMonths: 36, CurrentNAV: 85.2, TotalUnits: 700},
	}
	summary := core.SIPSummary{TotalMonthlyAmount: 5000, TotalInvested: 120000, TotalCurrentValue: 131000}

	rows := sipRows(sips, summary)
	if len(rows) != 6 {
		t.Fatalf("got %d rows, want 6", len(rows))
	}
	if rows[1][0] != "Bluechip fund" || rows[1][7] != "" {
		t.Errorf("data row = %v", rows[1])
	}
	if rows[3][0] != "Total Monthly Amount" || rows[3][1] != 5000.0 {
		t.Errorf("totals row = %v", rows[3])
	}
}

func TestSheetRange(t *testing.T) {
	if got := sheetRange("Expenses"); got != "Expenses!A1" {
		t.Errorf("sheetRange = %q, want Expenses!A1", got)
	}
}
