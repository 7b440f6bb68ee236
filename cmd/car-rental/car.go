package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type compareReport struct {
	A      string `json:"a"`
	B      string `json:"b"`
	Equal  bool   `json:"equal"`
	Better bool   `json:"better"`
	Worse  bool   `json:"worse"`
}

func carCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "car",
		Short: "Car helpers",
	}

	cmd.AddCommand(carCompareCmd())

	return cmd
}

func carCompareCmd() *cobra.Command {
	var a, b carFlags

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare two cars",
		Long:  "Compare car A with car B. A car is better if it has a higher category, or the same category with an automatic gearbox.",
		RunE: func(cmd *cobra.Command, args []string) error {
			carA, err := a.car()
			if err != nil {
				return err
			}
			carB, err := b.car()
			if err != nil {
				return err
			}

			report := compareReport{
				A:      carA.String(),
				B:      carB.String(),
				Equal:  carA.Equal(carB),
				Better: carA.Better(carB),
				Worse:  carA.Worse(carB),
			}

			logger.Info("Cars compared",
				zap.String("a", report.A),
				zap.String("b", report.B),
				zap.Bool("equal", report.Equal),
				zap.Bool("better", report.Better),
				zap.Bool("worse", report.Worse))

			text := fmt.Sprintf("a:      %s\nb:      %s\nequal:  %t\nbetter: %t\nworse:  %t",
				report.A, report.B, report.Equal, report.Better, report.Worse)
			return printResult(cmd, text, report)
		},
	}

	a.register(cmd, "a-", "first car")
	b.register(cmd, "b-", "second car")

	return cmd
}
