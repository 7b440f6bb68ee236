package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/username/car-rental/internal/rental"
	"go.uber.org/zap"
)

// rentFlags binds the flags describing one rental agreement
type rentFlags struct {
	name    string
	car     carFlags
	fromStr string
	toStr   string
}

func (f *rentFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "Customer name")
	cmd.Flags().StringVar(&f.fromStr, "from", "", "Pickup date in DD/MM/YYYY format (default: today)")
	cmd.Flags().StringVar(&f.toStr, "to", "", "Return date in DD/MM/YYYY format")
	f.car.register(cmd, "", "rented car")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("to")
}

func (f *rentFlags) rent() (*rental.Rent, error) {
	car, err := f.car.car()
	if err != nil {
		return nil, err
	}
	pick, err := parseDateFlag("from", f.fromStr)
	if err != nil {
		return nil, err
	}
	ret, err := parseDateFlag("to", f.toStr)
	if err != nil {
		return nil, err
	}

	r := rental.NewRent(f.name, car, pick, ret)
	if !r.ReturnDate().Equal(ret) {
		logger.Warn("Return date is not after pickup, using the next day",
			zap.String("pick_date", pick.String()),
			zap.String("requested_return_date", ret.String()),
			zap.String("return_date", r.ReturnDate().String()))
	}
	return r, nil
}

type upgradeReport struct {
	Upgraded bool           `json:"upgraded"`
	Delta    int            `json:"delta"`
	Rent     rental.Summary `json:"rent"`
}

type overlapReport struct {
	Overlap bool            `json:"overlap"`
	Rent    *rental.Summary `json:"rent,omitempty"`
}

func rentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rent",
		Short: "Rental agreement calculations",
	}

	cmd.AddCommand(rentQuoteCmd())
	cmd.AddCommand(rentUpgradeCmd())
	cmd.AddCommand(rentOverlapCmd())

	return cmd
}

func rentQuoteCmd() *cobra.Command {
	var flags rentFlags

	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Price a rental agreement",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := flags.rent()
			if err != nil {
				return err
			}

			logger.Info("Rent quoted",
				zap.String("name", r.Name()),
				zap.String("category", r.Car().Category().String()),
				zap.Int("days", r.HowManyDays()),
				zap.Int("price", r.Price()))

			return printResult(cmd, r.String(), r.Summary())
		},
	}

	flags.register(cmd)

	return cmd
}

func rentUpgradeCmd() *cobra.Command {
	var flags rentFlags
	var newCar carFlags

	cmd := &cobra.Command{
		Use:   "upgrade",
		Short: "Upgrade the car of a rental agreement",
		Long:  "Replace the rented car with the new car if the new car is better, and print the price difference.",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := flags.rent()
			if err != nil {
				return err
			}
			replacement, err := newCar.car()
			if err != nil {
				return err
			}

			before := r.Car()
			upgraded := replacement.Better(before)
			delta := r.Upgrade(replacement)

			logger.Info("Upgrade requested",
				zap.String("name", r.Name()),
				zap.String("car", before.String()),
				zap.String("new_car", replacement.String()),
				zap.Bool("upgraded", upgraded),
				zap.Int("delta", delta))

			status := "not upgraded: new car is not better"
			if upgraded {
				status = fmt.Sprintf("upgraded: %+d", delta)
			}

			report := upgradeReport{Upgraded: upgraded, Delta: delta, Rent: r.Summary()}
			return printResult(cmd, status+"\n"+r.String(), report)
		},
	}

	flags.register(cmd)
	newCar.register(cmd, "new-", "replacement car")

	return cmd
}

func rentOverlapCmd() *cobra.Command {
	var flags rentFlags
	var otherName string
	var otherFromStr string
	var otherToStr string

	cmd := &cobra.Command{
		Use:   "overlap",
		Short: "Merge two rentals of the same car by the same customer",
		Long:  "Merge two rentals if their periods intersect or touch. The second rental uses the same car; its customer defaults to --name.",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := flags.rent()
			if err != nil {
				return err
			}

			second := flags
			second.fromStr = otherFromStr
			second.toStr = otherToStr
			if otherName != "" {
				second.name = otherName
			}
			other, err := second.rent()
			if err != nil {
				return err
			}

			merged, ok := r.Overlap(other)

			logger.Info("Overlap checked",
				zap.String("first", r.String()),
				zap.String("second", other.String()),
				zap.Bool("overlap", ok))

			if !ok {
				return printResult(cmd, "no overlap", overlapReport{})
			}

			summary := merged.Summary()
			return printResult(cmd, merged.String(), overlapReport{Overlap: true, Rent: &summary})
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&otherName, "other-name", "", "Customer name of the second rental (default: --name)")
	cmd.Flags().StringVar(&otherFromStr, "other-from", "", "Pickup date of the second rental in DD/MM/YYYY format (default: today)")
	cmd.Flags().StringVar(&otherToStr, "other-to", "", "Return date of the second rental in DD/MM/YYYY format")
	_ = cmd.MarkFlagRequired("other-to")

	return cmd
}
