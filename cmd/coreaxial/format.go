package main

import (
	"fmt"

	"github.com/nucleonics/coreaxial/pkg/report"
	"github.com/nucleonics/coreaxial/pkg/validate"
)

func printValidationReport(r *validate.Report) {
	if len(r.Errors) > 0 {
		fmt.Printf("ERRORS (%d):\n", len(r.Errors))
		for _, e := range r.Errors {
			fmt.Printf("  [%s] %s\n", e.Level, e.Message)
			if e.Path != "" {
				fmt.Printf("    -> %s = %v\n", e.Path, e.ActualValue)
			}
			if e.Expected != "" {
				fmt.Printf("    expected: %s\n", e.Expected)
			}
			for _, s := range e.Suggestions {
				fmt.Printf("    * %s\n", s)
			}
		}
		fmt.Println()
	}

	if len(r.Warnings) > 0 {
		fmt.Printf("WARNINGS (%d):\n", len(r.Warnings))
		for _, w := range r.Warnings {
			fmt.Printf("  [%s] %s\n", w.Level, w.Message)
			if w.Path != "" {
				fmt.Printf("    -> %s = %v\n", w.Path, w.ActualValue)
			}
			if w.Expected != "" {
				fmt.Printf("    expected: %s\n", w.Expected)
			}
			for _, s := range w.Suggestions {
				fmt.Printf("    * %s\n", s)
			}
		}
		fmt.Println()
	}

	if len(r.Info) > 0 {
		fmt.Printf("INFO (%d):\n", len(r.Info))
		for _, i := range r.Info {
			fmt.Printf("  [%s] %s\n", i.Level, i.Message)
		}
		fmt.Println()
	}

	if r.Valid {
		fmt.Printf("Result: VALID (%s)\n", r.Summary)
	} else {
		fmt.Printf("Result: INVALID (%s)\n", r.Summary)
	}
}

func printInventory(s *report.AssemblySummary) {
	fmt.Printf("Assembly %s (num %d)\n", s.Assembly, s.Num)
	fmt.Println("==================================")
	fmt.Println()

	fmt.Printf("%-14s %10s %10s %10s %12s %12s\n",
		"Block", "z-bot [cm]", "z-top [cm]", "height", "mean T [C]", "mass")
	fmt.Printf("%-14s %10s %10s %10s %12s %12s\n",
		"--------------", "----------", "----------", "----------", "------------", "------------")

	for _, b := range s.Blocks {
		fmt.Printf("%-14s %10.3f %10.3f %10.3f %12.1f %12s\n",
			b.Name, b.ZBottom, b.ZTop, b.Height, b.MeanSolidTemp, formatMass(b.Mass))
	}

	fmt.Println()
	fmt.Printf("Total height: %.3f cm\n", s.TotalHeight)
	fmt.Printf("Total mass:   %s\n", formatMass(s.TotalMass))
}

func formatMass(grams float64) string {
	if grams >= 1_000_000 {
		return fmt.Sprintf("%.3f t", grams/1_000_000)
	}
	if grams >= 1_000 {
		return fmt.Sprintf("%.3f kg", grams/1_000)
	}
	return fmt.Sprintf("%.3f g", grams)
}
