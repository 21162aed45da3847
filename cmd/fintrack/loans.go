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

func runLoans(ctx context.Context, d *deps, action string, args []string) error {
	page := d.loans

	switch action {
	case "list":
		fs := flag.NewFlagSet("loans list", flag.ExitOnError)
		search := fs.String("search", "", "free-text filter on name")
		interestType := fs.String("interest-type", "", "SIMPLE or COMPOUND")
		fs.Parse(args)

		if err := page.Load(ctx); err != nil {
			if fetchedAt, rerr := page.RestoreSnapshot(ctx); rerr == nil {
				printStaleNotice(fetchedAt)
			} else {
				return err
			}
		}
		page.Search = *search
		page.InterestTypeFilter = *interestType

		w := newTable()
		fmt.Fprintln(w, "ID\tNAME\tPRINCIPAL\tRATE\tTYPE\tSTART\tMONTHS\tBALANCE\tEMI")
		for _, l := range page.Filtered() {
			fmt.Fprintf(w, "%d\t%s\t%.2f\t%.2f\t%s\t%s\t%d\t%.2f\t%s\n",
				l.ID, l.Name, l.PrincipalAmount, l.InterestRate, l.InterestType,
				l.StartDate, l.TenureMonths, l.CurrentBalance,
				optionalAmount(l.EMIAmount))
		}
		w.Flush()
		printBreakdown("Balance by interest type", page.BalanceByInterestType())
		return nil

	case "summary":
		if err := page.Load(ctx); err != nil {
			return err
		}
		s := page.Summary()
		fmt.Printf("Total principal:   %.2f\n", s.TotalPrincipal)
		fmt.Printf("Total outstanding: %.2f\n", s.TotalOutstanding)
		fmt.Printf("Total interest:    %.2f\n", s.TotalInterest)
		return nil

	case "add":
		fs := flag.NewFlagSet("loans add", flag.ExitOnError)
		form := forms.NewLoanForm(d.bus)
		fs.StringVar(&form.Name, "name", "", "loan name")
		fs.StringVar(&form.PrincipalAmount, "principal", "", "principal amount")
		fs.StringVar(&form.InterestRate, "rate", "", "interest rate percentage")
		fs.StringVar(&form.InterestType, "interest-type", form.InterestType, "SIMPLE or COMPOUND")
		fs.StringVar(&form.CompoundingFrequency, "compounding", form.CompoundingFrequency, "MONTHLY, QUARTERLY or YEARLY")
		fs.StringVar(&form.StartDate, "start", form.StartDate, "start date (YYYY-MM-DD)")
		fs.StringVar(&form.TenureMonths, "tenure", "", "tenure in months")
		fs.StringVar(&form.CurrentBalance, "balance", "", "current balance")
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
		d.bus.Success("Loan added")
		fmt.Printf("Created loan %d\n", created.ID)
		return nil

	case "update":
		fs := flag.NewFlagSet("loans update", flag.ExitOnError)
		id := fs.Int64("id", 0, "loan id")
		name := fs.String("name", "", "new name")
		principal := fs.String("principal", "", "new principal")
		rate := fs.String("rate", "", "new rate")
		interestType := fs.String("interest-type", "", "new interest type")
		compounding := fs.String("compounding", "", "new compounding frequency")
		start := fs.String("start", "", "new start date")
		tenure := fs.String("tenure", "", "new tenure months")
		balance := fs.String("balance", "", "new balance")
		fs.Parse(args)

		if err := page.Load(ctx); err != nil {
			return err
		}
		existing, found := findLoan(page.Loans(), *id)
		if !found {
			return fmt.Errorf("loan %d not loaded", *id)
		}

		form := forms.EditLoanForm(d.bus, existing)
		overrideString(&form.Name, *name)
		overrideString(&form.PrincipalAmount, *principal)
		overrideString(&form.InterestRate, *rate)
		overrideString(&form.InterestType, *interestType)
		overrideString(&form.CompoundingFrequency, *compounding)
		overrideString(&form.StartDate, *start)
		overrideString(&form.TenureMonths, *tenure)
		overrideString(&form.CurrentBalance, *balance)

		payload, ok := form.Submit()
		if !ok {
			return errors.New("validation failed")
		}

		actions := pages.NewRowActions(d.loansAPI.Update, d.loansAPI.Delete)
		actions.OnUpdated = page.ApplyUpdate
		if err := actions.Update(ctx, *id, payload); err != nil {
			form.Fail()
			return err
		}
		d.bus.Success("Loan updated")
		return nil

	case "delete":
		fs := flag.NewFlagSet("loans delete", flag.ExitOnError)
		id := fs.Int64("id", 0, "loan id")
		fs.Parse(args)

		actions := pages.NewRowActions(d.loansAPI.Update, d.loansAPI.Delete)
		actions.OnDeleted = page.ApplyDelete
		if err := actions.Delete(ctx, *id); err != nil {
			return err
		}
		d.bus.Success("Loan deleted")
		return nil

	case "export":
		fs := flag.NewFlagSet("loans export", flag.ExitOnError)
		sheet := fs.String("sheet", "Loans", "target sheet name")
		fs.Parse(args)

		if err := page.Load(ctx); err != nil {
			return err
		}
		writer, err := report.NewWriterFromEnv(ctx, d.log)
		if err != nil {
			return err
		}
		if err := writer.WriteLoanReport(ctx, *sheet, page.Filtered(), page.Summary()); err != nil {
			d.bus.Error("Failed to export report")
			return err
		}
		d.bus.Success("Report exported")
		return nil

	default:
		return fmt.Errorf("unknown action %q", action)
	}
}

func findLoan(list []core.Loan, id int64) (core.Loan, bool) {
	for _, l := range list {
		if l.ID == id {
			return l, true
		}
	}
	return core.Loan{}, false
}
