package trend

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}

	return t
}

func TestWindowBuckets(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		window Window
		unit   Unit
		want   int
	}{
		{"zero window", Window{}, Daily, 1},
		{"days to days", Window{7, Days}, Daily, 7},
		{"weeks to days", Window{2, Weeks}, Daily, 14},
		{"months to days", Window{1, Months}, Daily, 30},
		{"days to weeks rounds up", Window{10, Days}, Weekly, 2},
		{"months to weeks", Window{3, Months}, Weekly, 12},
		{"weeks to weeks", Window{4, Weeks}, Weekly, 4},
		{"days to months rounds up", Window{31, Days}, Monthly, 2},
		{"weeks to months rounds up", Window{5, Weeks}, Monthly, 2},
		{"one day in months", Window{1, Days}, Monthly, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, WindowBuckets(tt.window, tt.unit))
		})
	}
}

func TestBucketKey(t *testing.T) {
	t.Parallel()

	ts := time.Date(2024, 1, 10, 23, 30, 0, 0, time.UTC)

	assert.Equal(t, "2024-01-10", BucketKey(ts, Daily, time.UTC))
	assert.Equal(t, "2024-01-08", BucketKey(ts, Weekly, time.UTC))
	assert.Equal(t, "2024-01", BucketKey(ts, Monthly, time.UTC))

	// Sunday belongs to the week that started the previous Monday.
	assert.Equal(t, "2024-01-08", BucketKey(day("2024-01-14"), Weekly, time.UTC))
	assert.Equal(t, "2024-01-15", BucketKey(day("2024-01-15"), Weekly, time.UTC))
	// ISO week 1 of 2025 starts in 2024.
	assert.Equal(t, "2024-12-30", BucketKey(day("2025-01-01"), Weekly, time.UTC))

	cet := time.FixedZone("CET", 3600)
	assert.Equal(t, "2024-01-11", BucketKey(ts, Daily, cet))
}

func TestAggregate_ZeroFilledCoverage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		unit  Unit
		start string
		end   string
		want  []string
	}{
		{"daily", Daily, "2024-02-27", "2024-03-02", []string{"2024-02-27", "2024-02-28", "2024-02-29", "2024-03-01", "2024-03-02"}},
		{"weekly", Weekly, "2024-01-03", "2024-01-22", []string{"2024-01-01", "2024-01-08", "2024-01-15", "2024-01-22"}},
		{"monthly", Monthly, "2023-11-15", "2024-02-01", []string{"2023-11", "2023-12", "2024-01", "2024-02"}},
		{"single day", Daily, "2024-01-01", "2024-01-01", []string{"2024-01-01"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			points, err := Aggregate(nil, Query{Start: day(tt.start), End: day(tt.end), Unit: tt.unit, Window: Window{3, Days}})
			require.NoError(t, err)

			keys := make([]string, 0, len(points))
			for _, p := range points {
				keys = append(keys, p.Bucket)
				assert.Zero(t, p.Count)
				assert.Zero(t, p.MovingAverage)
			}
			assert.Equal(t, tt.want, keys)
		})
	}
}

func TestAggregate_FirstBucketUsesFullWindow(t *testing.T) {
	t.Parallel()

	events := []time.Time{
		day("2024-01-03"), // outside the window of the first bucket
		day("2024-01-04"),
		day("2024-01-04"),
		day("2024-01-06"),
		day("2024-01-10").Add(9 * time.Hour),
		day("2024-01-11"),
	}

	q := Query{Start: day("2024-01-10"), End: day("2024-01-11"), Unit: Daily, Window: Window{7, Days}}
	assert.Equal(t, day("2024-01-04"), q.ExtendedStart())

	points, err := Aggregate(events, q)
	require.NoError(t, err)
	require.Len(t, points, 2)

	assert.Equal(t, Point{Bucket: "2024-01-10", Count: 1, MovingAverage: 0.57}, points[0])
	// 2024-01-04 drops out of the window.
	assert.Equal(t, Point{Bucket: "2024-01-11", Count: 1, MovingAverage: 0.43}, points[1])
}

func TestAggregate_IgnoresEventsOutsideRange(t *testing.T) {
	t.Parallel()

	events := []time.Time{day("2023-12-31"), day("2024-01-02"), day("2024-01-05")}
	points, err := Aggregate(events, Query{Start: day("2024-01-01"), End: day("2024-01-03"), Unit: Daily})
	require.NoError(t, err)

	assert.Equal(t, []Point{
		{Bucket: "2024-01-01", Count: 0, MovingAverage: 0},
		{Bucket: "2024-01-02", Count: 1, MovingAverage: 1},
		{Bucket: "2024-01-03", Count: 0, MovingAverage: 0},
	}, points)
}

func TestAggregate_Weekly(t *testing.T) {
	t.Parallel()

	events := []time.Time{
		day("2024-01-01"), day("2024-01-07"), // week of 01-01
		day("2024-01-09"),                    // week of 01-08
	}

	points, err := Aggregate(events, Query{Start: day("2024-01-08"), End: day("2024-01-14"), Unit: Weekly, Window: Window{2, Weeks}})
	require.NoError(t, err)
	require.Len(t, points, 1)
	assert.Equal(t, "2024-01-08", points[0].Bucket)
	assert.Equal(t, 1, points[0].Count)
	assert.InDelta(t, 1.5, points[0].MovingAverage, 0.001)
}

func TestAggregate_InvalidQuery(t *testing.T) {
	t.Parallel()

	_, err := Aggregate(nil, Query{Start: day("2024-01-02"), End: day("2024-01-01"), Unit: Daily})
	require.ErrorIs(t, err, ErrInvalidRange)

	_, err = Aggregate(nil, Query{Start: day("2024-01-01"), End: day("2024-01-02"), Unit: "hourly"})
	require.ErrorIs(t, err, ErrInvalidUnit)

	_, err = Aggregate(nil, Query{Start: day("2024-01-01"), End: day("2024-01-02"), Unit: Daily, Window: Window{2, "years"}})
	require.ErrorIs(t, err, ErrInvalidWindowUnit)
}

func TestQueryValidate_Caps(t *testing.T) {
	t.Parallel()

	week := Query{Start: day("2024-01-01"), End: day("2024-01-07"), Unit: Daily}

	tests := []struct {
		name    string
		mutate  func(q *Query)
		wantErr error
	}{
		{name: "window at cap", mutate: func(q *Query) { q.Window = Window{MaxWindowBuckets, Days} }},
		{name: "window over cap", mutate: func(q *Query) { q.Window = Window{MaxWindowBuckets + 1, Days} }, wantErr: ErrWindowTooLarge},
		{name: "window over cap after conversion", mutate: func(q *Query) { q.Window = Window{13, Months} }, wantErr: ErrWindowTooLarge},
		{name: "huge raw window", mutate: func(q *Query) { q.Window = Window{2_000_000_000, Days} }, wantErr: ErrWindowTooLarge},
		{
			name: "monthly buckets fit a long window",
			mutate: func(q *Query) {
				q.Unit = Monthly
				q.Window = Window{104, Weeks}
			},
		},
		{name: "range over cap", mutate: func(q *Query) { q.Start = day("2000-01-01") }, wantErr: ErrRangeTooLarge},
		{
			name: "monthly range over cap",
			mutate: func(q *Query) {
				q.Unit = Monthly
				q.Start = time.Date(1500, 1, 1, 0, 0, 0, 0, time.UTC)
			},
			wantErr: ErrRangeTooLarge,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			q := week
			tt.mutate(&q)
			err := q.Validate()
			if tt.wantErr == nil {
				require.NoError(t, err)

				return
			}
			require.ErrorIs(t, err, tt.wantErr)

			_, err = Aggregate(nil, q)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestParseUnit(t *testing.T) {
	t.Parallel()

	u, err := ParseUnit("monthly")
	require.NoError(t, err)
	assert.Equal(t, Monthly, u)

	_, err = ParseUnit("Monthly")
	require.Error(t, err)
}
