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

func runSIPs(ctx context.Context, d *deps, action string, args []string) error {
	page := d.sips

	switch action {
	case "list":
		fs := flag.NewFlagSet("sips list", flag.ExitOnError)
		search := fs.String("search", "", "free-text filter on name/scheme code")
		fs.Parse(args)

		if err := page.Load(ctx); err != nil {
			if fetchedAt, rerr := page.RestoreSnapshot(ctx); rerr == nil {
				printStaleNotice(fetchedAt)
			} else {
				return err
			}
		}
		page.Search = *search

		w := newTable()
		fmt.Fprintln(w, "ID\tNAME\tSCHEME\tMONTHLY\tSTART\tMONTHS\tNAV\tUNITS\tVALUE")
		for _, s := range page.Filtered() {
			fmt.Fprintf(w, "%d\t%s\t%s\t%.2f\t%s\t%d\t%.2f\t%.2f\t%s\n",
				s.ID, s.Name, s.SchemeCode, s.MonthlyAmount, s.StartDate,
				s.DurationMonths, s.CurrentNAV, s.TotalUnits,
				optionalAmount(s.CurrentValue))
		}
		w.Flush()
		printBreakdown("Monthly commitment", page.MonthlyByName())
		return nil

	case "summary":
		if err := page.Load(ctx); err != nil {
			return err
		}
		s := page.Summary()
		fmt.Printf("Total monthly amount: %.2f\n", s.TotalMonthlyAmount)
		fmt.Printf("Total invested:       %.2f\n", s.TotalInvested)
		fmt.Printf("Current value:        %.2f\n", s.TotalCurrentValue)
		return nil

	case "add":
		fs := flag.NewFlagSet("sips add", flag.ExitOnError)
		form := forms.NewSIPForm(d.bus)
		fs.StringVar(&form.Name, "name", "", "plan name")
		fs.StringVar(&form.SchemeCode, "scheme", "", "scheme code")
		fs.StringVar(&form.MonthlyAmount, "monthly", "", "monthly amount")
		fs.StringVar(&form.StartDate, "start", form.StartDate, "start date (YYYY-MM-DD)")
		fs.StringVar(&form.DurationMonths, "duration", "", "duration in months")
		fs.StringVar(&form.CurrentNAV, "nav", "", "current NAV")
		fs.StringVar(&form.TotalUnits, "units", "", "total units held")
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
		d.bus.Success("SIP added")
		fmt.Printf("Created SIP %d\n", created.ID)
		return nil

	case "update":
		fs := flag.NewFlagSet("sips update", flag.ExitOnError)
		id := fs.Int64("id", 0, "SIP id")
		name := fs.String("name", "", "new name")
		scheme := fs.String("scheme", "", "new scheme code")
		monthly := fs.String("monthly", "", "new monthly amount")
		start := fs.String("start", "", "new start date")
		duration := fs.String("duration", "", "new duration months")
		nav := fs.String("nav", "", "new NAV")
		units := fs.String("units", "", "new total units")
		fs.Parse(args)

		if err := page.Load(ctx); err != nil {
			return err
		}
		existing, found := findSIP(page.SIPs(), *id)
		if !found {
			return fmt.Errorf("SIP %d not loaded", *id)
		}

		form := forms.EditSIPForm(d.bus, existing)
		overrideString(&form.Name, *name)
		overrideString(&form.SchemeCode, *scheme)
		overrideString(&form.MonthlyAmount, *monthly)
		overrideString(&form.StartDate, *start)
		overrideString(&form.DurationMonths, *duration)
		overrideString(&form.CurrentNAV, *nav)
		overrideString(&form.TotalUnits, *units)

		payload, ok := form.Submit()
		if !ok {
			return errors.New("validation failed")
		}

		actions := pages.NewRowActions(d.sipsAPI.Update, d.sipsAPI.Delete)
		actions.OnUpdated = page.ApplyUpdate
		if err := actions.Update(ctx, *id, payload); err != nil {
			form.Fail()
			return err
		}
		d.bus.Success("SIP updated")
		return nil

	case "delete":
		fs := flag.NewFlagSet("sips delete", flag.ExitOnError)
		id := fs.Int64("id", 0, "SIP id")
		fs.Parse(args)

		actions := pages.NewRowActions(d.sipsAPI.Update, d.sipsAPI.Delete)
		actions.OnDeleted = page.ApplyDelete
		if err := actions.Delete(ctx, *id); err != nil {
			return err
		}
		d.bus.Success("SIP deleted")
		return nil

	case "export":
		fs := flag.NewFlagSet("sips export", flag.ExitOnError)
		sheet := fs.String("sheet", "SIPs", "target sheet name")
		fs.Parse(args)

		if err := page.Load(ctx); err != nil {
			return err
		}
		writer, err := report.NewWriterFromEnv(ctx, d.log)
		if err != nil {
			return err
		}
		if err := writer.WriteSIPReport(ctx, *sheet, page.Filtered(), page.Summary()); err != nil {
			d.bus.Error("Failed to export report")
			return err
		}
		d.bus.Success("Report exported")
		return nil

	default:
		return fmt.Errorf("unknown action %q", action)
	}
}

func findSIP(list []core.SIP, id int64) (core.SIP, bool) {
	for _, s := range list {
		if s.ID == id {
			return s, true
		}
	}
	return core.SIP{}, false
}
