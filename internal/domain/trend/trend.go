// Package trend buckets timestamped events into daily, weekly or monthly
// counts with a trailing moving average.
package trend

import (
	"math"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// Unit is the bucket size of a trend.
type Unit string

const (
	Daily   Unit = "daily"
	Weekly  Unit = "weekly"
	Monthly Unit = "monthly"
)

// WindowUnit is the unit a moving-average window is expressed in.
type WindowUnit string

const (
	Days   WindowUnit = "days"
	Weeks  WindowUnit = "weeks"
	Months WindowUnit = "months"
)

// Conversion table between window and bucket units.
const (
	daysPerWeek   = 7
	daysPerMonth  = 30
	weeksPerMonth = 4.345
)

// Upper bounds, in buckets, on what one query may cover.
const (
	MaxWindowBuckets = 365
	MaxRangeBuckets  = 3660
)

var (
	ErrInvalidUnit       = errors.New("invalid bucket unit")
	ErrInvalidWindowUnit = errors.New("invalid moving average unit")
	ErrInvalidRange      = errors.New("start is after end")
	ErrWindowTooLarge    = errors.Errorf("moving average window exceeds %d buckets", MaxWindowBuckets)
	ErrRangeTooLarge     = errors.Errorf("date range exceeds %d buckets", MaxRangeBuckets)
)

// Window is the span a moving average covers.
type Window struct {
	Value int        `json:"value"`
	Unit  WindowUnit `json:"unit"`
}

// Query describes one trend computation.
type Query struct {
	Start    time.Time
	End      time.Time
	Unit     Unit
	Window   Window
	Location *time.Location
}

// Point is one bucket of a trend.
type Point struct {
	Bucket        string  `json:"bucket"`
	Count         int     `json:"count"`
	MovingAverage float64 `json:"movingAverage"`
}

// ParseUnit converts a request value into a Unit.
func ParseUnit(s string) (Unit, error) {
	switch u := Unit(s); u {
	case Daily, Weekly, Monthly:
		return u, nil
	default:
		return "", errors.Wrapf(ErrInvalidUnit, "%q", s)
	}
}

// ParseWindowUnit converts a request value into a WindowUnit.
func ParseWindowUnit(s string) (WindowUnit, error) {
	switch u := WindowUnit(s); u {
	case Days, Weeks, Months:
		return u, nil
	default:
		return "", errors.Wrapf(ErrInvalidWindowUnit, "%q", s)
	}
}

// WindowBuckets converts a window into a whole number of buckets of unit.
// Zero or negative windows mean no smoothing.
func WindowBuckets(w Window, unit Unit) int {
	if w.Value <= 0 {
		return 1
	}

	v := float64(w.Value)
	var n float64
	switch unit {
	case Daily:
		switch w.Unit {
		case Weeks:
			n = v * daysPerWeek
		case Months:
			n = v * daysPerMonth
		default:
			n = v
		}
	case Weekly:
		switch w.Unit {
		case Days:
			n = math.Ceil(v / daysPerWeek)
		case Months:
			n = v * math.Round(weeksPerMonth)
		default:
			n = v
		}
	case Monthly:
		switch w.Unit {
		case Days:
			n = math.Ceil(v / daysPerMonth)
		case Weeks:
			n = math.Ceil(v / weeksPerMonth)
		default:
			n = v
		}
	}

	return max(int(n), 1)
}

// BucketStart truncates t to the start of its bucket in loc.
func BucketStart(t time.Time, unit Unit, loc *time.Location) time.Time {
	t = t.In(loc)
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)

	switch unit {
	case Weekly:
		offset := (int(day.Weekday()) + 6) % 7
		return day.AddDate(0, 0, -offset)
	case Monthly:
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, loc)
	default:
		return day
	}
}

// BucketKey formats the bucket t falls in. Weekly keys are the ISO week's Monday.
func BucketKey(t time.Time, unit Unit, loc *time.Location) string {
	start := BucketStart(t, unit, loc)
	if unit == Monthly {
		return start.Format("2006-01")
	}

	return start.Format(time.DateOnly)
}

func step(t time.Time, unit Unit, n int) time.Time {
	switch unit {
	case Weekly:
		return t.AddDate(0, 0, 7*n)
	case Monthly:
		return t.AddDate(0, n, 0)
	default:
		return t.AddDate(0, 0, n)
	}
}

func (q Query) location() *time.Location {
	if q.Location == nil {
		return time.UTC
	}

	return q.Location
}

// Validate checks the units, the order of the range and the size caps.
func (q Query) Validate() error {
	if _, err := ParseUnit(string(q.Unit)); err != nil {
		return err
	}
	if q.Window.Value > 0 {
		if _, err := ParseWindowUnit(string(q.Window.Unit)); err != nil {
			return err
		}
		// The raw check keeps the conversion below far from overflow.
		if q.Window.Value > MaxWindowBuckets*daysPerMonth || WindowBuckets(q.Window, q.Unit) > MaxWindowBuckets {
			return ErrWindowTooLarge
		}
	}
	if q.Start.After(q.End) {
		return ErrInvalidRange
	}
	if q.rangeBuckets() > MaxRangeBuckets {
		return ErrRangeTooLarge
	}

	return nil
}

// rangeBuckets counts the buckets from Start to End inclusive. Spans beyond
// what time.Duration holds saturate, which still exceeds the cap.
func (q Query) rangeBuckets() int {
	loc := q.location()
	first := BucketStart(q.Start, q.Unit, loc)
	last := BucketStart(q.End, q.Unit, loc)

	switch q.Unit {
	case Monthly:
		return (last.Year()-first.Year())*12 + int(last.Month()) - int(first.Month()) + 1
	case Weekly:
		return int(last.Sub(first).Hours()/(24*daysPerWeek)) + 1
	default:
		return int(last.Sub(first).Hours()/24) + 1
	}
}

// ExtendedStart is the earliest instant whose events affect the first
// displayed bucket. Callers fetch events from here onwards.
func (q Query) ExtendedStart() time.Time {
	loc := q.location()
	first := BucketStart(q.Start, q.Unit, loc)

	return step(first, q.Unit, -(WindowBuckets(q.Window, q.Unit) - 1))
}

// Aggregate counts events per bucket over [Start, End] and attaches the
// moving average of each bucket. Every bucket in the range is present, and
// the first one averages over a full window taken from before Start.
func Aggregate(events []time.Time, q Query) ([]Point, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	loc := q.location()
	window := WindowBuckets(q.Window, q.Unit)
	from := q.ExtendedStart()
	last := BucketStart(q.End, q.Unit, loc)

	keys := make([]string, 0)
	for b := from; !b.After(last); b = step(b, q.Unit, 1) {
		keys = append(keys, BucketKey(b, q.Unit, loc))
	}

	counts := make(map[string]int, len(keys))
	for _, ts := range events {
		if ts.Before(from) || !BucketStart(ts, q.Unit, loc).Before(step(last, q.Unit, 1)) {
			continue
		}
		counts[BucketKey(ts, q.Unit, loc)]++
	}

	points := make([]Point, 0, len(keys)-(window-1))
	sum := 0
	for i, key := range keys {
		sum += counts[key]
		if i >= window {
			sum -= counts[keys[i-window]]
		}
		if i < window-1 {
			continue
		}

		n := min(i+1, window)
		avg := decimal.NewFromInt(int64(sum)).
			Div(decimal.NewFromInt(int64(n))).
			Round(2)

		points = append(points, Point{
			Bucket:        key,
			Count:         counts[key],
			MovingAverage: avg.InexactFloat64(),
		})
	}

	return points, nil
}
