package rental

import "fmt"

// License numbers are seven digits long
const (
	MinCarID     = 1000000
	MaxCarID     = 9999999
	DefaultCarID = 9999999
)

// Car is a rentable vehicle. Car is a value type: assigning it copies it.
type Car struct {
	id       int
	category Category
	brand    string
	manual   bool
}

// NewCar creates a car. An id that is not seven digits becomes DefaultCarID
// and an unknown category becomes DefaultCategory.
func NewCar(id int, category Category, brand string, manual bool) Car {
	c := Car{
		id:       DefaultCarID,
		category: DefaultCategory,
		brand:    brand,
		manual:   manual,
	}
	if validCarID(id) {
		c.id = id
	}
	if category.Valid() {
		c.category = category
	}
	return c
}

func validCarID(id int) bool {
	return id >= MinCarID && id <= MaxCarID
}

// ID returns the license number
func (c Car) ID() int {
	return c.id
}

func (c Car) Category() Category {
	return c.category
}

func (c Car) Brand() string {
	return c.brand
}

// IsManual returns true for a manual gearbox
func (c Car) IsManual() bool {
	return c.manual
}

// SetID changes the license number; invalid ids are ignored
func (c *Car) SetID(id int) {
	if validCarID(id) {
		c.id = id
	}
}

// SetCategory changes the category; unknown categories are ignored
func (c *Car) SetCategory(category Category) {
	if category.Valid() {
		c.category = category
	}
}

func (c *Car) SetBrand(brand string) {
	c.brand = brand
}

func (c *Car) SetManual(manual bool) {
	c.manual = manual
}

// Equal compares category, brand and gearbox. The license number is not compared.
func (c Car) Equal(other Car) bool {
	return c.category == other.category && c.brand == other.brand && c.manual == other.manual
}

// Better returns true if c has a higher category than other, or the same
// category with an automatic gearbox where other is manual.
func (c Car) Better(other Car) bool {
	if c.category == other.category {
		return !c.manual && other.manual
	}
	return c.category.Rank() > other.category.Rank()
}

// Worse returns true if other is better than c
func (c Car) Worse(other Car) bool {
	return other.Better(c)
}

func (c Car) gear() string {
	if c.manual {
		return "manual"
	}
	return "auto"
}

// String formats the car as "id:<id> type:<category> brand:<brand> gear:<manual|auto>"
func (c Car) String() string {
	return fmt.Sprintf("id:%d type:%s brand:%s gear:%s", c.id, c.category, c.brand, c.gear())
}
