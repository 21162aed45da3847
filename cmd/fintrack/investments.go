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

func runInvestments(ctx context.Context, d *deps, action string, args []string) error {
	page := d.investments

	switch action {
	case "list":
		fs := flag.NewFlagSet("investments list", flag.ExitOnError)
		search := fs.String("search", "", "free-text filter on name/symbol/type")
		typeFilter := fs.String("type", "", "investment type filter")
		fs.Parse(args)

		if err := page.Load(ctx); err != nil {
			if fetchedAt, rerr := page.RestoreSnapshot(ctx); rerr == nil {
				printStaleNotice(fetchedAt)
			} else {
				return err
			}
		}
		page.Search = *search
		page.TypeFilter = *typeFilter

		w := newTable()
		fmt.Fprintln(w, "ID\tNAME\tSYMBOL\tTYPE\tQTY\tBUY\tNOW\tVALUE\tP/L")
		for _, inv := range page.Filtered() {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%.2f\t%.2f\t%.2f\t%s\t%s\n",
				inv.ID, inv.Name, inv.Symbol, inv.Type,
				inv.Quantity, inv.PurchasePrice, inv.CurrentPrice,
				optionalAmount(inv.CurrentValue), optionalAmount(inv.ProfitLoss))
		}
		w.Flush()
		printBreakdown("Value by type", page.ValueByType())
		return nil

	case "summary":
		if err := page.Load(ctx); err != nil {
			return err
		}
		s := page.Summary()
		fmt.Printf("Total invested: %.2f\n", s.TotalInvested)
		fmt.Printf("Current value:  %.2f\n", s.TotalCurrentValue)
		fmt.Printf("Profit/loss:    %.2f\n", s.TotalProfitLoss)
		return nil

	case "add":
		fs := flag.NewFlagSet("investments add", flag.ExitOnError)
		form := forms.NewInvestmentForm(d.bus)
		fs.StringVar(&form.Name, "name", "", "investment name")
		fs.StringVar(&form.Symbol, "symbol", "", "ticker or scheme symbol")
		fs.StringVar(&form.Type, "type", "", "STOCK, MUTUAL_FUND, ETF, BOND or OTHER")
		fs.StringVar(&form.Quantity, "quantity", "", "units held")
		fs.StringVar(&form.PurchasePrice, "buy-price", "", "purchase price per unit")
		fs.StringVar(&form.CurrentPrice, "current-price", "", "current price per unit")
		fs.StringVar(&form.PurchaseDate, "date", form.PurchaseDate, "purchase date (YYYY-MM-DD)")
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
		d.bus.Success("Investment added")
		fmt.Printf("Created investment %d\n", created.ID)
		return nil

	case "update":
		fs := flag.NewFlagSet("investments update", flag.ExitOnError)
		id := fs.Int64("id", 0, "investment id")
		name := fs.String("name", "", "new name")
		symbol := fs.String("symbol", "", "new symbol")
		typeFlag := fs.String("type", "", "new type")
		quantity := fs.String("quantity", "", "new quantity")
		buyPrice := fs.String("buy-price", "", "new purchase price")
		currentPrice := fs.String("current-price", "", "new current price")
		date := fs.String("date", "", "new purchase date")
		fs.Parse(args)

		if err := page.Load(ctx); err != nil {
			return err
		}
		existing, found := findInvestment(page.Investments(), *id)
		if !found {
			return fmt.Errorf("investment %d not loaded", *id)
		}

		form := forms.EditInvestmentForm(d.bus, existing)
		overrideString(&form.Name, *name)
		overrideString(&form.Symbol, *symbol)
		overrideString(&form.Type, *typeFlag)
		overrideString(&form.Quantity, *quantity)
		overrideString(&form.PurchasePrice, *buyPrice)
		overrideString(&form.CurrentPrice, *currentPrice)
		overrideString(&form.PurchaseDate, *date)

		payload, ok := form.Submit()
		if !ok {
			return errors.New("validation failed")
		}

		actions := pages.NewRowActions(d.investmentsAPI.Update, d.investmentsAPI.Delete)
		actions.OnUpdated = page.ApplyUpdate
		if err := actions.Update(ctx, *id, payload); err != nil {
			form.Fail()
			return err
		}
		d.bus.Success("Investment updated")
		return nil

	case "delete":
		fs := flag.NewFlagSet("investments delete", flag.ExitOnError)
		id := fs.Int64("id", 0, "investment id")
		fs.Parse(args)

		actions := pages.NewRowActions(d.investmentsAPI.Update, d.investmentsAPI.Delete)
		actions.OnDeleted = page.ApplyDelete
		if err := actions.Delete(ctx, *id); err != nil {
			return err
		}
		d.bus.Success("Investment deleted")
		return nil

	case "export":
		fs := flag.NewFlagSet("investments export", flag.ExitOnError)
		sheet := fs.String("sheet", "Investments", "target sheet name")
		fs.Parse(args)

		if err := page.Load(ctx); err != nil {
			return err
		}
		writer, err := report.NewWriterFromEnv(ctx, d.log)
		if err != nil {
			return err
		}
		if err := writer.WriteInvestmentReport(ctx, *sheet, page.Filtered(), page.Summary()); err != nil {
			d.bus.Error("Failed to export report")
			return err
		}
		d.bus.Success("Report exported")
		return nil

	default:
		return fmt.Errorf("unknown action %q", action)
	}
}

func findInvestment(list []core.Investment, id int64) (core.Investment, bool) {
	for _, inv := range list {
		if inv.ID == id {
			return inv, true
		}
	}
	return core.Investment{}, false
}
