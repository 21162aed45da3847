package core

import (
	"errors"
	"strings"
	"time"
)

const (
	InvestmentStock      InvestmentType = "STOCK"
	InvestmentMutualFund InvestmentType = "MUTUAL_FUND"
	InvestmentETF        InvestmentType = "ETF"
	InvestmentBond       InvestmentType = "BOND"
	InvestmentOther      InvestmentType = "OTHER"

	InterestSimple   InterestType = "SIMPLE"
	InterestCompound InterestType = "COMPOUND"

	CompoundMonthly   CompoundingFrequency = "MONTHLY"
	CompoundQuarterly CompoundingFrequency = "QUARTERLY"
	CompoundYearly    CompoundingFrequency = "YEARLY"
)

type (
	InvestmentType       string
	InterestType         string
	CompoundingFrequency string

	// Date is a calendar date serialized as ISO "2006-01-02", the format the
	// backend uses for all date fields.
	Date struct {
		time.Time
	}

	Expense struct {
		ID            int64   `json:"id,omitempty"`
		Description   string  `json:"description"`
		Amount        float64 `json:"amount"`
		Date          Date    `json:"date"`
		Category      string  `json:"category"`
		PaymentMethod string  `json:"paymentMethod"`
	}

	Investment struct {
		ID            int64          `json:"id,omitempty"`
		Name          string         `json:"name"`
		Symbol        string         `json:"symbol"`
		Type          InvestmentType `json:"type"`
		Quantity      float64        `json:"quantity"`
		PurchasePrice float64        `json:"purchasePrice"`
		CurrentPrice  float64        `json:"currentPrice"`
		PurchaseDate  Date           `json:"purchaseDate"`

		// Server-computed, absent until the backend fills them in.
		CurrentValue     *float64 `json:"currentValue,omitempty"`
		ProfitLoss       *float64 `json:"profitLoss,omitempty"`
		ReturnPercentage *float64 `json:"returnPercentage,omitempty"`
	}

	Loan struct {
		ID                   int64                `json:"id,omitempty"`
		Name                 string               `json:"name"`
		PrincipalAmount      float64              `json:"principalAmount"`
		InterestRate         float64              `json:"interestRate"`
		InterestType         InterestType         `json:"interestType"`
		CompoundingFrequency CompoundingFrequency `json:"compoundingFrequency,omitempty"`
		StartDate            Date                 `json:"startDate"`
		TenureMonths         int                  `json:"tenureMonths"`
		CurrentBalance       float64              `json:"currentBalance"`

		// Server-computed.
		EMIAmount       *float64 `json:"emiAmount,omitempty"`
		RemainingMonths *int     `json:"remainingMonths,omitempty"`
		TotalInterest   *float64 `json:"totalInterest,omitempty"`
	}

	SIP struct {
		ID             int64   `json:"id,omitempty"`
		Name           string  `json:"name"`
		SchemeCode     string  `json:"schemeCode"`
		MonthlyAmount  float64 `json:"monthlyAmount"`
		StartDate      Date    `json:"startDate"`
		DurationMonths int     `json:"durationMonths"`
		CurrentNAV     float64 `json:"currentNav"`
		TotalUnits     float64 `json:"totalUnits"`

		// Server-computed.
		TotalInvested *float64 `json:"totalInvested,omitempty"`
		CurrentValue  *float64 `json:"currentValue,omitempty"`
	}
)

// Categories is the fixed expense category set the backend accepts.
var Categories = []string{
	"Food", "Groceries", "Transportation", "Entertainment", "Shopping",
	"Utilities", "Rent", "Health", "Travel", "Education", "Miscellaneous",
}

// PaymentMethods is the fixed payment method set the backend accepts.
var PaymentMethods = []string{
	"Cash", "Credit Card", "Debit Card", "UPI", "Net Banking", "Wallet", "Other",
}

var (
	ErrInvalidAmount        = errors.New("amount must be positive")
	ErrInvalidQuantity      = errors.New("quantity must be positive")
	ErrInvalidPrice         = errors.New("price must be positive")
	ErrInvalidRate          = errors.New("interest rate must be positive")
	ErrInvalidTenure        = errors.New("tenure months must be positive")
	ErrInvalidBalance       = errors.New("current balance must be positive")
	ErrEmptyDescription     = errors.New("empty description")
	ErrEmptyName            = errors.New("empty name")
	ErrEmptyCategory        = errors.New("empty category")
	ErrEmptyPaymentMethod   = errors.New("empty payment method")
	ErrInvalidType          = errors.New("invalid investment type")
	ErrInvalidInterestType  = errors.New("invalid interest type")
	ErrInvalidCompounding   = errors.New("invalid compounding frequency")
	ErrZeroDate             = errors.New("date cannot be zero")
)

const dateLayout = "2006-01-02"

// NewDate creates a Date from year, month, day at UTC midnight.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// Today returns the current calendar date at UTC midnight.
func Today() Date {
	now := time.Now().UTC()
	return NewDate(now.Year(), int(now.Month()), now.Day())
}

func (d Date) String() string {
	return d.Format(dateLayout)
}

func (d Date) Validate() error {
	if d.IsZero() {
		return ErrZeroDate
	}
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		d.Time = time.Time{}
		return nil
	}
	// Backends occasionally send full timestamps; keep the date part.
	if len(s) > len(dateLayout) {
		s = s[:len(dateLayout)]
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

func (t InvestmentType) Valid() bool {
	switch t {
	case InvestmentStock, InvestmentMutualFund, InvestmentETF, InvestmentBond, InvestmentOther:
		return true
	}
	return false
}

func (t InterestType) Valid() bool {
	return t == InterestSimple || t == InterestCompound
}

func (f CompoundingFrequency) Valid() bool {
	switch f {
	case CompoundMonthly, CompoundQuarterly, CompoundYearly:
		return true
	}
	return false
}

// IsCategory reports whether s is one of the fixed expense categories.
func IsCategory(s string) bool {
	return containsString(Categories, s)
}

// IsPaymentMethod reports whether s is one of the fixed payment methods.
func IsPaymentMethod(s string) bool {
	return containsString(PaymentMethods, s)
}

func containsString(set []string, s string) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}

func (e Expense) Validate() error {
	if len(strings.TrimSpace(e.Description)) == 0 {
		return ErrEmptyDescription
	}
	if e.Amount <= 0 {
		return ErrInvalidAmount
	}
	if err := e.Date.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(e.Category) == "" {
		return ErrEmptyCategory
	}
	if strings.TrimSpace(e.PaymentMethod) == "" {
		return ErrEmptyPaymentMethod
	}
	return nil
}

func (i Investment) Validate() error {
	if len(strings.TrimSpace(i.Name)) == 0 {
		return ErrEmptyName
	}
	if !i.Type.Valid() {
		return ErrInvalidType
	}
	if i.Quantity <= 0 {
		return ErrInvalidQuantity
	}
	if i.PurchasePrice <= 0 || i.CurrentPrice <= 0 {
		return ErrInvalidPrice
	}
	if err := i.PurchaseDate.Validate(); err != nil {
		return err
	}
	return nil
}

func (l Loan) Validate() error {
	if len(strings.TrimSpace(l.Name)) == 0 {
		return ErrEmptyName
	}
	if l.PrincipalAmount <= 0 {
		return ErrInvalidAmount
	}
	if l.InterestRate <= 0 {
		return ErrInvalidRate
	}
	if !l.InterestType.Valid() {
		return ErrInvalidInterestType
	}
	// Compounding frequency only matters for compound interest.
	if l.InterestType == InterestCompound && !l.CompoundingFrequency.Valid() {
		return ErrInvalidCompounding
	}
	if err := l.StartDate.Validate(); err != nil {
		return err
	}
	if l.TenureMonths <= 0 {
		return ErrInvalidTenure
	}
	if l.CurrentBalance <= 0 {
		return ErrInvalidBalance
	}
	return nil
}

func (s SIP) Validate() error {
	if len(strings.TrimSpace(s.Name)) == 0 {
		return ErrEmptyName
	}
	if s.MonthlyAmount <= 0 {
		return ErrInvalidAmount
	}
	if err := s.StartDate.Validate(); err != nil {
		return err
	}
	if s.DurationMonths <= 0 {
		return ErrInvalidTenure
	}
	if s.CurrentNAV <= 0 {
		return ErrInvalidPrice
	}
	if s.TotalUnits <= 0 {
		return ErrInvalidQuantity
	}
	return nil
}
