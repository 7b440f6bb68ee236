package rental

import (
	"fmt"

	"github.com/username/car-rental/pkg/dateutil"
)

// Pricing constants
const (
	DaysPerWeek           = 7
	WeeklyDiscountPercent = 10
)

// Rent is a rental agreement of one car by one customer.
// The return date is always strictly after the pickup date.
type Rent struct {
	name       string
	car        Car
	pickDate   dateutil.Date
	returnDate dateutil.Date
}

// Summary is a flat view of a Rent for reports and JSON output
type Summary struct {
	Name       string `json:"name"`
	CarID      int    `json:"car_id"`
	Category   string `json:"category"`
	Brand      string `json:"brand"`
	Gear       string `json:"gear"`
	PickDate   string `json:"pick_date"`
	ReturnDate string `json:"return_date"`
	Days       int    `json:"days"`
	Price      int    `json:"price"`
}

// NewRent creates a rental agreement. If ret is not after pick, the car is
// returned the day after pickup.
func NewRent(name string, car Car, pick, ret dateutil.Date) *Rent {
	r := &Rent{
		name:     name,
		car:      car,
		pickDate: pick,
	}
	if ret.After(pick) {
		r.returnDate = ret
	} else {
		r.returnDate = pick.Tomorrow()
	}
	return r
}

// Clone returns an independent copy of r
func (r *Rent) Clone() *Rent {
	clone := *r
	return &clone
}

func (r *Rent) Name() string {
	return r.name
}

// Car returns a copy of the rented car
func (r *Rent) Car() Car {
	return r.car
}

// PickDate returns a copy of the pickup date
func (r *Rent) PickDate() dateutil.Date {
	return r.pickDate
}

// ReturnDate returns a copy of the return date
func (r *Rent) ReturnDate() dateutil.Date {
	return r.returnDate
}

func (r *Rent) SetName(name string) {
	r.name = name
}

func (r *Rent) SetCar(car Car) {
	r.car = car
}

// SetPickDate changes the pickup date if it stays before the return date
func (r *Rent) SetPickDate(pick dateutil.Date) {
	if pick.Before(r.returnDate) {
		r.pickDate = pick
	}
}

// SetReturnDate changes the return date if it stays after the pickup date
func (r *Rent) SetReturnDate(ret dateutil.Date) {
	if ret.After(r.pickDate) {
		r.returnDate = ret
	}
}

// Equal compares customer name, car and both dates
func (r *Rent) Equal(other *Rent) bool {
	return r.name == other.name &&
		r.car.Equal(other.car) &&
		r.pickDate.Equal(other.pickDate) &&
		r.returnDate.Equal(other.returnDate)
}

// HowManyDays returns the length of the rental in days
func (r *Rent) HowManyDays() int {
	return r.pickDate.Difference(r.returnDate)
}

// Price returns the total cost. Every full week is charged at the weekly
// rate and the remaining days at the daily rate.
func (r *Rent) Price() int {
	category := r.car.Category()
	days := r.HowManyDays()

	return days/DaysPerWeek*category.WeeklyRate() + days%DaysPerWeek*category.DailyRate()
}

// Upgrade replaces the car if newCar is better and returns the price increase.
// Otherwise the rent is unchanged and 0 is returned.
func (r *Rent) Upgrade(newCar Car) int {
	if !newCar.Better(r.car) {
		return 0
	}

	oldPrice := r.Price()
	r.car = newCar
	return r.Price() - oldPrice
}

// Overlap merges two rentals of the same car by the same customer whose
// periods intersect or touch. The merged rent runs from the earlier pickup to
// the later return. The second result is false if the rentals cannot be merged.
func (r *Rent) Overlap(other *Rent) (*Rent, bool) {
	if r.name != other.name || !r.car.Equal(other.car) {
		return nil, false
	}
	if r.pickDate.After(other.returnDate) || r.returnDate.Before(other.pickDate) {
		return nil, false
	}

	pick := r.pickDate
	if other.pickDate.Before(pick) {
		pick = other.pickDate
	}
	ret := r.returnDate
	if other.returnDate.After(ret) {
		ret = other.returnDate
	}

	return NewRent(r.name, r.car, pick, ret), true
}

// Summary returns the rent as a flat report row
func (r *Rent) Summary() Summary {
	return Summary{
		Name:       r.name,
		CarID:      r.car.ID(),
		Category:   r.car.Category().String(),
		Brand:      r.car.Brand(),
		Gear:       r.car.gear(),
		PickDate:   r.pickDate.String(),
		ReturnDate: r.returnDate.String(),
		Days:       r.HowManyDays(),
		Price:      r.Price(),
	}
}

// String formats the rent as
// "Name:<name> From:<pickup> To:<return> Type:<category> Days:<days> Price:<price>"
func (r *Rent) String() string {
	return fmt.Sprintf("Name:%s From:%s To:%s Type:%s Days:%d Price:%d",
		r.name, r.pickDate, r.returnDate, r.car.Category(), r.HowManyDays(), r.Price())
}
