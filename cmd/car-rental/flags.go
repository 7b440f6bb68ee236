package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/username/car-rental/internal/rental"
	"github.com/username/car-rental/pkg/dateutil"
)

// carFlags binds the flags describing one car
type carFlags struct {
	prefix   string
	id       int
	category string
	brand    string
	manual   bool
}

func (f *carFlags) register(cmd *cobra.Command, prefix, what string) {
	f.prefix = prefix
	cmd.Flags().IntVar(&f.id, prefix+"id", rental.DefaultCarID, "License number of the "+what+" (7 digits)")
	cmd.Flags().StringVar(&f.category, prefix+"category", rental.DefaultCategory.String(), "Category of the "+what+" (A, B, C or D)")
	cmd.Flags().StringVar(&f.brand, prefix+"brand", "", "Brand of the "+what)
	cmd.Flags().BoolVar(&f.manual, prefix+"manual", false, "The "+what+" has a manual gearbox")
}

func (f *carFlags) car() (rental.Car, error) {
	category, err := rental.ParseCategory(f.category)
	if err != nil {
		return rental.Car{}, fmt.Errorf("--%scategory: %w", f.prefix, err)
	}
	return rental.NewCar(f.id, category, f.brand, f.manual), nil
}

// parseDateFlag parses a DD/MM/YYYY flag value; empty means today
func parseDateFlag(name, value string) (dateutil.Date, error) {
	if value == "" {
		return dateutil.Today(), nil
	}
	d, err := dateutil.ParseDate(value)
	if err != nil {
		return dateutil.Date{}, fmt.Errorf("--%s: %w", name, err)
	}
	return d, nil
}
