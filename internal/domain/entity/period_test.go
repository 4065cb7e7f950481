package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestLastFullMonth(t *testing.T) {
	tests := []struct {
		name      string
		today     time.Time
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name:      "middle of the year",
			today:     date(2024, time.July, 15),
			wantStart: date(2024, time.June, 1),
			wantEnd:   date(2024, time.June, 30),
		},
		{
			name:      "january wraps to december of previous year",
			today:     date(2024, time.January, 15),
			wantStart: date(2023, time.December, 1),
			wantEnd:   date(2023, time.December, 31),
		},
		{
			name:      "previous month is a leap february",
			today:     date(2024, time.March, 10),
			wantStart: date(2024, time.February, 1),
			wantEnd:   date(2024, time.February, 29),
		},
		{
			name:      "first day of month",
			today:     date(2024, time.May, 1),
			wantStart: date(2024, time.April, 1),
			wantEnd:   date(2024, time.April, 30),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			period := LastFullMonth(tt.today)
			assert.Equal(t, tt.wantStart, period.Start)
			assert.Equal(t, tt.wantEnd, period.End)
		})
	}
}

func TestCurrentMonthToDate(t *testing.T) {
	tests := []struct {
		name      string
		today     time.Time
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name:      "middle of the year",
			today:     date(2024, time.July, 15),
			wantStart: date(2024, time.July, 1),
			wantEnd:   date(2024, time.August, 1),
		},
		{
			name:      "december wraps to january of next year",
			today:     date(2023, time.December, 5),
			wantStart: date(2023, time.December, 1),
			wantEnd:   date(2024, time.January, 1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			period := CurrentMonthToDate(tt.today)
			assert.Equal(t, tt.wantStart, period.Start)
			assert.Equal(t, tt.wantEnd, period.End)
		})
	}
}

func TestBillingPeriodString(t *testing.T) {
	period := BillingPeriod{Start: date(2023, time.December, 1), End: date(2023, time.December, 31)}
	assert.Equal(t, "2023-12-01 to 2023-12-31", period.String())
}

func TestAccountDirectoryNameFor(t *testing.T) {
	directory := AccountDirectory{"111122223333": "Production"}

	assert.Equal(t, "Production", directory.NameFor("111122223333"))
	assert.Equal(t, UnknownAccountName, directory.NameFor("999988887777"))
	assert.Equal(t, UnknownAccountName, AccountDirectory{}.NameFor("111122223333"))
}
