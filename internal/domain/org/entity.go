package org

import (
	"time"

	"github.com/shopspring/decimal"
)

// Workdays is a Monday-first weekday bitmask (bit 0 = Monday).
type Workdays uint8

const (
	Monday Workdays = 1 << iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday

	// WorkdaysMonToFri is the default work week.
	WorkdaysMonToFri = Monday | Tuesday | Wednesday | Thursday | Friday
)

var weekdayBits = map[time.Weekday]Workdays{
	time.Monday:    Monday,
	time.Tuesday:   Tuesday,
	time.Wednesday: Wednesday,
	time.Thursday:  Thursday,
	time.Friday:    Friday,
	time.Saturday:  Saturday,
	time.Sunday:    Sunday,
}

var workdayNames = []struct {
	bit  Workdays
	name string
}{
	{Monday, "monday"},
	{Tuesday, "tuesday"},
	{Wednesday, "wednesday"},
	{Thursday, "thursday"},
	{Friday, "friday"},
	{Saturday, "saturday"},
	{Sunday, "sunday"},
}

// Contains reports whether d is a workday.
func (w Workdays) Contains(d time.Weekday) bool {
	return w&weekdayBits[d] != 0
}

// Names returns the lowercase weekday names in Monday-first order.
func (w Workdays) Names() []string {
	var names []string
	for _, wd := range workdayNames {
		if w&wd.bit != 0 {
			names = append(names, wd.name)
		}
	}
	return names
}

// ParseWorkdays builds a bitmask from lowercase weekday names.
func ParseWorkdays(names []string) (Workdays, bool) {
	var w Workdays
	for _, name := range names {
		found := false
		for _, wd := range workdayNames {
			if wd.name == name {
				w |= wd.bit
				found = true
				break
			}
		}
		if !found {
			return 0, false
		}
	}
	return w, true
}

// Organization is the tenancy root. Every other entity belongs to
// exactly one organization and is never shared across them.
type Organization struct {
	ID   string
	Name string

	// Work policy used as the expected-hours baseline during payroll
	// generation.
	StandardDailyHours decimal.Decimal
	Workdays           Workdays

	CreatedAt time.Time
	UpdatedAt time.Time
}
