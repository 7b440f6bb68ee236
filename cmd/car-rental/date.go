package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/username/car-rental/pkg/dateutil"
	"go.uber.org/zap"
)

type dateReport struct {
	Date     string `json:"date"`
	Tomorrow string `json:"tomorrow"`
	LeapYear bool   `json:"leap_year"`
}

type diffReport struct {
	From string `json:"from"`
	To   string `json:"to"`
	Days int    `json:"days"`
}

func dateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "date",
		Short: "Calendar date helpers",
	}

	cmd.AddCommand(dateShowCmd())
	cmd.AddCommand(dateDiffCmd())

	return cmd
}

func dateShowCmd() *cobra.Command {
	var dateStr string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show a date and the day after it",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := parseDateFlag("date", dateStr)
			if err != nil {
				return err
			}

			report := dateReport{
				Date:     d.String(),
				Tomorrow: d.Tomorrow().String(),
				LeapYear: dateutil.IsLeapYear(d.Year()),
			}

			logger.Debug("Date shown",
				zap.String("date", report.Date),
				zap.String("tomorrow", report.Tomorrow))

			text := fmt.Sprintf("date:     %s\ntomorrow: %s\nleap:     %t", report.Date, report.Tomorrow, report.LeapYear)
			return printResult(cmd, text, report)
		},
	}

	cmd.Flags().StringVar(&dateStr, "date", "", "Date in DD/MM/YYYY format (default: today)")

	return cmd
}

func dateDiffCmd() *cobra.Command {
	var fromStr string
	var toStr string

	cmd := &cobra.Command{
		Use:   "diff",
		Short: "Count days between two dates",
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := parseDateFlag("from", fromStr)
			if err != nil {
				return err
			}
			to, err := parseDateFlag("to", toStr)
			if err != nil {
				return err
			}

			report := diffReport{
				From: from.String(),
				To:   to.String(),
				Days: from.Difference(to),
			}

			logger.Debug("Date difference",
				zap.String("from", report.From),
				zap.String("to", report.To),
				zap.Int("days", report.Days))

			return printResult(cmd, fmt.Sprintf("days: %d", report.Days), report)
		},
	}

	cmd.Flags().StringVar(&fromStr, "from", "", "First date in DD/MM/YYYY format (default: today)")
	cmd.Flags().StringVar(&toStr, "to", "", "Second date in DD/MM/YYYY format")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}
