// Package pricing holds the pure booking arithmetic: travel fees, booking
// numbers and the business-hours rules. Nothing in here touches storage.
package pricing

import (
	"fmt"
	"math"
	"math/rand"
	"sharmoria/shared/timezone"
	"time"
)

// Pricing constants in minor currency units. These are business rules, fixed
// at build time rather than configuration.
const (
	MinimumBookingAmount int64 = 50000
	TravelFeePerKM       int64 = 1500
	FreeTravelRadiusKM         = 5.0
)

const bookingNumberPrefix = "BK"

// Window is a daily opening window expressed in minutes from midnight, both
// endpoints inclusive.
type Window struct {
	Start int
	End   int
}

func (w Window) String() string {
	return fmt.Sprintf("%02d:%02d - %02d:%02d", w.Start/60, w.Start%60, w.End/60, w.End%60)
}

// Contains reports whether the minute-of-day falls inside the window.
func (w Window) Contains(minuteOfDay int) bool {
	return minuteOfDay >= w.Start && minuteOfDay <= w.End
}

var (
	sundayHours   = Window{Start: 8 * 60, End: 13 * 60}
	saturdayHours = Window{Start: 8 * 60, End: 15 * 60}
	weekdayHours  = Window{Start: 8 * 60, End: 17 * 60}

	// bookableHours is the coarse day-independent window offered by the
	// funnel's time picker. The per-day window enforced at submission is
	// stricter; both are kept because the funnel checks them at different
	// moments.
	bookableHours = Window{Start: 8 * 60, End: 21 * 60}
)

// CalculateTravelFee returns the surcharge for a service address distanceKm
// from the city center: free within the radius, then a per-started-km fee.
// Callers guarantee distanceKm is non-negative.
func CalculateTravelFee(distanceKm float64) int64 {
	if distanceKm <= FreeTravelRadiusKM {
		return 0
	}

	extraKm := distanceKm - FreeTravelRadiusKM

	return int64(math.Ceil(extraKm)) * TravelFeePerKM
}

// GenerateBookingNumber issues a human-readable booking code: "BK", the last
// six digits of the unix-millisecond clock and a zero-padded random suffix.
// Uniqueness is probabilistic, which is acceptable at this booking volume.
func GenerateBookingNumber() string {
	millis := timezone.Now().UnixMilli()
	timestamp := millis % 1000000
	suffix := rand.Intn(1000) //nolint:gosec

	return fmt.Sprintf("%s%06d%03d", bookingNumberPrefix, timestamp, suffix)
}

// IsValidBookingDate reports whether the date, taken at local midnight, is
// today or later in the application timezone.
func IsValidBookingDate(date time.Time) bool {
	loc := timezone.GetLocation()
	now := timezone.Now()

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc)

	return !day.Before(today)
}

// BusinessHoursFor returns the opening window for a given weekday.
func BusinessHoursFor(day time.Weekday) Window {
	switch day {
	case time.Sunday:
		return sundayHours
	case time.Saturday:
		return saturdayHours
	default:
		return weekdayHours
	}
}

// IsWithinBusinessHours checks a "HH:MM" time against the opening window of
// the date's weekday. This is the check enforced at submission.
func IsWithinBusinessHours(date time.Time, clock string) bool {
	minuteOfDay, err := parseClock(clock)
	if err != nil {
		return false
	}

	return BusinessHoursFor(date.Weekday()).Contains(minuteOfDay)
}

// IsValidBookingTime checks a "HH:MM" time against the coarse day-independent
// bookable window (08:00 - 21:00).
func IsValidBookingTime(clock string) bool {
	minuteOfDay, err := parseClock(clock)
	if err != nil {
		return false
	}

	return bookableHours.Contains(minuteOfDay)
}

func parseClock(clock string) (int, error) {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return 0, fmt.Errorf("failed to parse clock value: %w", err)
	}

	return t.Hour()*60 + t.Minute(), nil
}

// Quote is the price breakdown shown to the customer before submission. The
// minimum-amount gate belongs to whoever presents the quote, not to the
// booking gateway itself.
type Quote struct {
	TotalAmount   int64
	TravelFee     int64
	GrandTotal    int64
	MeetsMinimum  bool
	AmountMissing int64
}

// NewQuote sums the selected service prices and the travel fee for the given
// distance (zero when the distance is unknown).
func NewQuote(servicePrices []int64, distanceKm float64) Quote {
	var total int64
	for _, price := range servicePrices {
		total += price
	}

	var fee int64
	if distanceKm > 0 {
		fee = CalculateTravelFee(distanceKm)
	}

	quote := Quote{
		TotalAmount:  total,
		TravelFee:    fee,
		GrandTotal:   total + fee,
		MeetsMinimum: total >= MinimumBookingAmount,
	}

	if !quote.MeetsMinimum {
		quote.AmountMissing = MinimumBookingAmount - total
	}

	return quote
}
