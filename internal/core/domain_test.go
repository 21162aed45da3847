package core

import (
	"encoding/json"
	"errors"
	"testing"
)

func validExpense() Expense {
	return Expense{
		Description:   "Groceries run",
		Amount:        42.5,
		Date:          NewDate(2026, 1, 15),
		Category:      "Groceries",
		PaymentMethod: "UPI",
	}
}

func TestExpenseValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Expense)
		wantErr error
	}{
		{name: "valid", mutate: func(e *Expense) {}},
		{name: "empty description", mutate: func(e *Expense) { e.Description = "  " }, wantErr: ErrEmptyDescription},
		{name: "zero amount", mutate: func(e *Expense) { e.Amount = 0 }, wantErr: ErrInvalidAmount},
		{name: "negative amount", mutate: func(e *Expense) { e.Amount = -5 }, wantErr: ErrInvalidAmount},
		{name: "zero date", mutate: func(e *Expense) { e.Date = Date{} }, wantErr: ErrZeroDate},
		{name: "empty category", mutate: func(e *Expense) { e.Category = "" }, wantErr: ErrEmptyCategory},
		{name: "empty payment method", mutate: func(e *Expense) { e.PaymentMethod = "" }, wantErr: ErrEmptyPaymentMethod},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := validExpense()
			tt.mutate(&e)
			if err := e.Validate(); !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func validInvestment() Investment {
	return Investment{
		Name:          "Index fund",
		Symbol:        "NIFTYBEES",
		Type:          InvestmentETF,
		Quantity:      10,
		PurchasePrice: 200,
		CurrentPrice:  220,
		PurchaseDate:  NewDate(2025, 6, 1),
	}
}

func TestInvestmentValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Investment)
		wantErr error
	}{
		{name: "valid", mutate: func(i *Investment) {}},
		{name: "empty name", mutate: func(i *Investment) { i.Name = "" }, wantErr: ErrEmptyName},
		{name: "bad type", mutate: func(i *Investment) { i.Type = "CRYPTO" }, wantErr: ErrInvalidType},
		{name: "zero quantity", mutate: func(i *Investment) { i.Quantity = 0 }, wantErr: ErrInvalidQuantity},
		{name: "zero purchase price", mutate: func(i *Investment) { i.PurchasePrice = 0 }, wantErr: ErrInvalidPrice},
		{name: "zero current price", mutate: func(i *Investment) { i.CurrentPrice = 0 }, wantErr: ErrInvalidPrice},
		{name: "zero date", mutate: func(i *Investment) { i.PurchaseDate = Date{} }, wantErr: ErrZeroDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			i := validInvestment()
			tt.mutate(&i)
			if err := i.Validate(); !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func validLoan() Loan {
	return Loan{
		Name:            "Car loan",
		PrincipalAmount: 500000,
		InterestRate:    8.5,
		InterestType:    InterestSimple,
		StartDate:       NewDate(2024, 3, 1),
		TenureMonths:    60,
		CurrentBalance:  400000,
	}
}

func TestLoanValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Loan)
		wantErr error
	}{
		{name: "valid simple", mutate: func(l *Loan) {}},
		{name: "valid compound", mutate: func(l *Loan) {
			l.InterestType = InterestCompound
			l.CompoundingFrequency = CompoundQuarterly
		}},
		{name: "simple ignores compounding", mutate: func(l *Loan) { l.CompoundingFrequency = "WEEKLY" }},
		{name: "empty name", mutate: func(l *Loan) { l.Name = "" }, wantErr: ErrEmptyName},
		{name: "zero principal", mutate: func(l *Loan) { l.PrincipalAmount = 0 }, wantErr: ErrInvalidAmount},
		{name: "zero rate", mutate: func(l *Loan) { l.InterestRate = 0 }, wantErr: ErrInvalidRate},
		{name: "bad interest type", mutate: func(l *Loan) { l.InterestType = "FLAT" }, wantErr: ErrInvalidInterestType},
		{name: "compound needs frequency", mutate: func(l *Loan) {
			l.InterestType = InterestCompound
			l.CompoundingFrequency = ""
		}, wantErr: ErrInvalidCompounding},
		{name: "zero date", mutate: func(l *Loan) { l.StartDate = Date{} }, wantErr: ErrZeroDate},
		{name: "zero tenure", mutate: func(l *Loan) { l.TenureMonths = 0 }, wantErr: ErrInvalidTenure},
		{name: "zero balance", mutate: func(l *Loan) { l.CurrentBalance = 0 }, wantErr: ErrInvalidBalance},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := validLoan()
			tt.mutate(&l)
			if err := l.Validate(); !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func validSIP() SIP {
	return SIP{
		Name:           "Bluechip fund",
		SchemeCode:     "120503",
		MonthlyAmount:  5000,
		StartDate:      NewDate(2024, 1, 1),
		DurationMonths: 36,
		CurrentNAV:     85.2,
		TotalUnits:     700,
	}
}

func TestSIPValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*SIP)
		wantErr error
	}{
		{name: "valid", mutate: func(s *SIP) {}},
		{name: "empty name", mutate: func(s *SIP) { s.Name = "" }, wantErr: ErrEmptyName},
		{name: "zero monthly amount", mutate: func(s *SIP) { s.MonthlyAmount = 0 }, wantErr: ErrInvalidAmount},
		{name: "zero date", mutate: func(s *SIP) { s.StartDate = Date{} }, wantErr: ErrZeroDate},
		{name: "zero duration", mutate: func(s *SIP) { s.DurationMonths = 0 }, wantErr: ErrInvalidTenure},
		{name: "zero nav", mutate: func(s *SIP) { s.CurrentNAV = 0 }, wantErr: ErrInvalidPrice},
		{name: "zero units", mutate: func(s *SIP) { s.TotalUnits = 0 }, wantErr: ErrInvalidQuantity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validSIP()
			tt.mutate(&s)
			if err := s.Validate(); !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestDateJSON(t *testing.T) {
	t.Run("marshal", func(t *testing.T) {
		got, err := json.Marshal(NewDate(2026, 1, 5))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(got) != `"2026-01-05"` {
			t.Errorf("got %s, want \"2026-01-05\"", got)
		}
	})

	t.Run("unmarshal iso date", func(t *testing.T) {
		var d Date
		if err := json.Unmarshal([]byte(`"2026-01-05"`), &d); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if d.String() != "2026-01-05" {
			t.Errorf("got %s, want 2026-01-05", d)
		}
	})

	t.Run("unmarshal timestamp keeps date part", func(t *testing.T) {
		var d Date
		if err := json.Unmarshal([]byte(`"2026-01-05T14:22:09.123Z"`), &d); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if d.String() != "2026-01-05" {
			t.Errorf("got %s, want 2026-01-05", d)
		}
	})

	t.Run("unmarshal null yields zero date", func(t *testing.T) {
		var d Date
		if err := json.Unmarshal([]byte(`null`), &d); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !d.IsZero() {
			t.Errorf("got %v, want zero date", d)
		}
	})

	t.Run("round trip inside entity", func(t *testing.T) {
		e := validExpense()
		data, err := json.Marshal(e)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		var back Expense
		if err := json.Unmarshal(data, &back); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if back.Date.String() != e.Date.String() {
			t.Errorf("date changed across round trip: %s != %s", back.Date, e.Date)
		}
	})
}

func TestFixedSets(t *testing.T) {
	if !IsCategory("Groceries") {
		t.Error("Groceries should be a known category")
	}
	if IsCategory("groceries") {
		t.Error("category match must be exact")
	}
	if !IsPaymentMethod("Net Banking") {
		t.Error("Net Banking should be a known payment method")
	}
	if IsPaymentMethod("Cheque") {
		t.Error("Cheque is not a known payment method")
	}
}

func TestEnumValid(t *testing.T) {
	for _, typ := range []InvestmentType{InvestmentStock, InvestmentMutualFund, InvestmentETF, InvestmentBond, InvestmentOther} {
		if !typ.Valid() {
			t.Errorf("%s should be valid", typ)
		}
	}
	if InvestmentType("stock").Valid() {
		t.Error("lowercase investment type should be invalid")
	}
	if !InterestCompound.Valid() || InterestType("").Valid() {
		t.Error("interest type validity broken")
	}
	if !CompoundYearly.Valid() || CompoundingFrequency("DAILY").Valid() {
		t.Error("compounding frequency validity broken")
	}
}
