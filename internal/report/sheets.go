// Package report exports a page's currently filtered list plus its summary
// totals to a Google Sheets spreadsheet. It is the external report collaborator
// of the dashboard; pages hand it in-memory data and it owns the file side.
package report

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	goption "google.golang.org/api/option"
	gsheet "google.golang.org/api/sheets/v4"

	"fintrack/internal/core"
	applog "fintrack/internal/log"
)

type Writer struct {
	svc           *gsheet.Service
	spreadsheetID string
	log           *applog.Logger
}

// NewWriterFromEnv creates a Sheets writer using service account credentials.
// Required: GOOGLE_SPREADSHEET_ID. Credentials come from
// GOOGLE_SERVICE_ACCOUNT_JSON, GOOGLE_SERVICE_ACCOUNT_FILE, or
// GOOGLE_APPLICATION_CREDENTIALS.
func NewWriterFromEnv(ctx context.Context, logger *applog.Logger) (*Writer, error) {
	spreadsheetID := strings.TrimSpace(os.Getenv("GOOGLE_SPREADSHEET_ID"))
	if spreadsheetID == "" {
		return nil, errors.New("missing GOOGLE_SPREADSHEET_ID")
	}

	credentialsJSON, err := loadCredentials()
	if err != nil {
		return nil, err
	}

	svc, err := gsheet.NewService(ctx,
		goption.WithCredentialsJSON(credentialsJSON),
		goption.WithScopes(gsheet.SpreadsheetsScope))
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}

	return &Writer{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		log:           logger.WithComponent(applog.ComponentReport),
	}, nil
}

func loadCredentials() ([]byte, error) {
	if inline := strings.TrimSpace(os.Getenv("GOOGLE_SERVICE_ACCOUNT_JSON")); inline != "" {
		return []byte(inline), nil
	}
	file := strings.TrimSpace(os.Getenv("GOOGLE_SERVICE_ACCOUNT_FILE"))
	if file == "" {
		file = strings.TrimSpace(os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"))
	}
	if file == "" {
		return nil, errors.New("missing service account credentials (set GOOGLE_SERVICE_ACCOUNT_JSON, GOOGLE_SERVICE_ACCOUNT_FILE, or GOOGLE_APPLICATION_CREDENTIALS)")
	}
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("read service account file: %w", err)
	}
	return data, nil
}

func (w *Writer) WriteExpenseReport(ctx context.Context, sheet string, expenses []core.Expense, summary core.ExpenseSummary) error {
	return w.write(ctx, sheet, expenseRows(expenses, summary))
}

func (w *Writer) WriteInvestmentReport(ctx context.Context, sheet string, investments []core.Investment, summary core.InvestmentSummary) error {
	return w.write(ctx, sheet, investmentRows(investments, summary))
}

func (w *Writer) WriteLoanReport(ctx context.Context, sheet string, loans []core.Loan, summary core.LoanSummary) error {
	return w.write(ctx, sheet, loanRows(loans, summary))
}

func (w *Writer) WriteSIPReport(ctx context.Context, sheet string, sips []core.SIP, summary core.SIPSummary) error {
	return w.write(ctx, sheet, sipRows(sips, summary))
}

func (w *Writer) write(ctx context.Context, sheet string, rows [][]any) error {
	if w.svc == nil {
		return errors.New("sheets service not initialized")
	}

	// Clear previous report content so a shorter export never leaves rows
	// from the last run behind.
	_, err := w.svc.Spreadsheets.Values.
		Clear(w.spreadsheetID, sheet, &gsheet.ClearValuesRequest{}).
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("clear sheet: %w", err)
	}

	vr := &gsheet.ValueRange{Values: rows}
	_, err = w.svc.Spreadsheets.Values.
		Update(w.spreadsheetID, sheetRange(sheet), vr).
		ValueInputOption("RAW").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	w.log.InfoContext(ctx, "Report written",
		applog.FieldOperation, applog.OpExport,
		"sheet", sheet,
		"rows", len(rows))
	return nil
}
