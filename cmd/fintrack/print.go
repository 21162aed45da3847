package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"fintrack/internal/core"
)

func newTable() *tabwriter.Writer {
	return tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
}

func printBreakdown(title string, rows []core.NameAmount) {
	if len(rows) == 0 {
		return
	}
	fmt.Printf("\n%s\n", title)
	w := newTable()
	for _, r := range rows {
		fmt.Fprintf(w, "  %s\t%.2f\n", r.Name, r.Amount)
	}
	w.Flush()
}

func printMonthly(rows []core.MonthAmount) {
	if len(rows) == 0 {
		return
	}
	fmt.Println("\nMonthly spending")
	w := newTable()
	for _, r := range rows {
		fmt.Fprintf(w, "  %04d-%02d\t%.2f\n", r.Year, r.Month, r.Amount)
	}
	w.Flush()
}

func printStaleNotice(fetchedAt time.Time) {
	fmt.Printf("(offline: showing data fetched %s)\n", fetchedAt.Format(time.RFC3339))
}

func optionalAmount(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.2f", *v)
}
