package main

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"fintrack/internal/core"
	"fintrack/internal/forms"
	"fintrack/internal/pages"
	"fintrack/internal/report"
)

func runExpenses(ctx context.Context, d *deps, action string, args []string) error {
	page := d.expenses

	switch action {
	case "list":
		fs := flag.NewFlagSet("expenses list", flag.ExitOnError)
		start := fs.String("start", "", "start date (YYYY-MM-DD, default first of month)")
		end := fs.String("end", "", "end date (YYYY-MM-DD, default today)")
		search := fs.String("search", "", "free-text filter on description/category")
		category := fs.String("category", "", "category filter")
		method := fs.String("method", "", "payment method filter")
		fs.Parse(args)

		if *start != "" && *end != "" {
			s, err := core.ParseDate(*start)
			if err != nil {
				return fmt.Errorf("invalid -start: %w", err)
			}
			e, err := core.ParseDate(*end)
			if err != nil {
				return fmt.Errorf("invalid -end: %w", err)
			}
			if err := page.SetDateRange(ctx, s, e); err != nil {
				return expensesFallback(ctx, page, err)
			}
		} else if err := page.Load(ctx); err != nil {
			return expensesFallback(ctx, page, err)
		}

		page.Search = *search
		page.CategoryFilter = *category
		page.PaymentMethodFilter = *method

		w := newTable()
		fmt.Fprintln(w, "ID\tDATE\tDESCRIPTION\tCATEGORY\tMETHOD\tAMOUNT")
		for _, e := range page.Filtered() {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%.2f\n",
				e.ID, e.Date, e.Description, e.Category, e.PaymentMethod, e.Amount)
		}
		w.Flush()
		printBreakdown("By category", page.CategoryBreakdown())
		printBreakdown("By payment method", page.PaymentMethodBreakdown())
		printMonthly(page.MonthlyTotals())
		return nil

	case "summary":
		if err := page.Load(ctx); err != nil {
			return err
		}
		s := page.Summary()
		fmt.Printf("Total expenses: %.2f\n", s.TotalExpenses)
		for name, amount := range s.ExpensesByCategory {
			fmt.Printf("  %s: %.2f\n", name, amount)
		}
		return nil

	case "add":
		fs := flag.NewFlagSet("expenses add", flag.ExitOnError)
		form := forms.NewExpenseForm(d.bus)
		fs.StringVar(&form.Description, "description", "", "what the money went to")
		fs.StringVar(&form.Amount, "amount", "", "amount spent")
		fs.StringVar(&form.Date, "date", form.Date, "date (YYYY-MM-DD)")
		fs.StringVar(&form.Category, "category", "", "one of the fixed categories")
		fs.StringVar(&form.PaymentMethod, "method", "", "payment method")
		fs.Parse(args)

		payload, ok := form.Submit()
		if !ok {
			return errors.New("validation failed")
		}
		created, err := page.Create(ctx, payload)
		if err != nil {
			form.Fail()
			return err
		}
		d.bus.Success("Expense added")
		fmt.Printf("Created expense %d\n", created.ID)
		return nil

	case "update":
		fs := flag.NewFlagSet("expenses update", flag.ExitOnError)
		id := fs.Int64("id", 0, "expense id")
		description := fs.String("description", "", "new description")
		amount := fs.String("amount", "", "new amount")
		date := fs.String("date", "", "new date")
		category := fs.String("category", "", "new category")
		method := fs.String("method", "", "new payment method")
		fs.Parse(args)

		if err := page.Load(ctx); err != nil {
			return err
		}
		existing, found := findExpense(page.Expenses(), *id)
		if !found {
			return fmt.Errorf("expense %d not loaded", *id)
		}

		form := forms.EditExpenseForm(d.bus, existing)
		overrideString(&form.Description, *description)
		overrideString(&form.Amount, *amount)
		overrideString(&form.Date, *date)
		overrideString(&form.Category, *category)
		overrideString(&form.PaymentMethod, *method)

		payload, ok := form.Submit()
		if !ok {
			return errors.New("validation failed")
		}

		actions := pages.NewRowActions(d.expensesAPI.Update, d.expensesAPI.Delete)
		actions.OnUpdated = page.ApplyUpdate
		if err := actions.Update(ctx, *id, payload); err != nil {
			form.Fail()
			return err
		}
		d.bus.Success("Expense updated")
		return nil

	case "delete":
		fs := flag.NewFlagSet("expenses delete", flag.ExitOnError)
		id := fs.Int64("id", 0, "expense id")
		fs.Parse(args)

		actions := pages.NewRowActions(d.expensesAPI.Update, d.expensesAPI.Delete)
		actions.OnDeleted = page.ApplyDelete
		if err := actions.Delete(ctx, *id); err != nil {
			return err
		}
		d.bus.Success("Expense deleted")
		return nil

	case "export":
		fs := flag.NewFlagSet("expenses export", flag.ExitOnError)
		sheet := fs.String("sheet", "Expenses", "target sheet name")
		fs.Parse(args)

		if err := page.Load(ctx); err != nil {
			return err
		}
		writer, err := report.NewWriterFromEnv(ctx, d.log)
		if err != nil {
			return err
		}
		if err := writer.WriteExpenseReport(ctx, *sheet, page.Filtered(), page.Summary()); err != nil {
			d.bus.Error("Failed to export report")
			return err
		}
		d.bus.Success("Report exported")
		return nil

	default:
		return fmt.Errorf("unknown action %q", action)
	}
}

// expensesFallback renders the last snapshot when a cold load cannot reach
// the backend; with no snapshot the original load error stands.
func expensesFallback(ctx context.Context, page *pages.ExpensesPage, loadErr error) error {
	fetchedAt, err := page.RestoreSnapshot(ctx)
	if err != nil {
		return loadErr
	}
	printStaleNotice(fetchedAt)
	return nil
}

func findExpense(list []core.Expense, id int64) (core.Expense, bool) {
	for _, e := range list {
		if e.ID == id {
			return e, true
		}
	}
	return core.Expense{}, false
}

// overrideString replaces dst only when the flag was actually given.
func overrideString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
