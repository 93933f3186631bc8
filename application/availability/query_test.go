package availability_test

import (
	"testing"
	"time"

	"github.com/muhammadheryan/rental-shop/application/availability"
	"github.com/muhammadheryan/rental-shop/constant"
	"github.com/muhammadheryan/rental-shop/model"
	cerr "github.com/muhammadheryan/rental-shop/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQuery(t *testing.T) {
	now := time.Date(2024, time.March, 1, 8, 30, 0, 0, time.UTC)

	tests := []struct {
		name    string
		params  model.AvailabilityParams
		want    *model.AvailabilityRequest
		wantErr constant.ErrorType
	}{
		{
			name:   "defaults without window",
			params: model.AvailabilityParams{},
			want:   &model.AvailabilityRequest{Quantity: 1, Location: time.UTC, Precision: constant.PrecisionSecond},
		},
		{
			name:   "date expands to the UTC day",
			params: model.AvailabilityParams{OutletID: "3", Quantity: "2", Date: "2024-01-15"},
			want: &model.AvailabilityRequest{
				OutletID:  3,
				Quantity:  2,
				HasWindow: true,
				Start:     time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC),
				End:       time.Date(2024, time.January, 15, 23, 59, 59, int(999*time.Millisecond), time.UTC),
				Location:  time.UTC,
				Precision: constant.PrecisionSecond,
			},
		},
		{
			name:   "explicit window is normalized to UTC",
			params: model.AvailabilityParams{Start: "2024-01-10T09:00:00+07:00", End: "2024-01-12T18:00:00+07:00", Precision: "minute"},
			want: &model.AvailabilityRequest{
				Quantity:  1,
				HasWindow: true,
				Start:     time.Date(2024, time.January, 10, 2, 0, 0, 0, time.UTC),
				End:       time.Date(2024, time.January, 12, 11, 0, 0, 0, time.UTC),
				Location:  time.UTC,
				Precision: constant.PrecisionMinute,
			},
		},
		{
			name:   "plain date end covers the whole day",
			params: model.AvailabilityParams{Start: "2024-01-10", End: "2024-01-12"},
			want: &model.AvailabilityRequest{
				Quantity:  1,
				HasWindow: true,
				Start:     time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC),
				End:       time.Date(2024, time.January, 12, 23, 59, 59, int(999*time.Millisecond), time.UTC),
				Location:  time.UTC,
				Precision: constant.PrecisionSecond,
			},
		},
		{
			name:   "end without start starts now",
			params: model.AvailabilityParams{End: "2024-03-05T00:00:00Z"},
			want: &model.AvailabilityRequest{
				Quantity:  1,
				HasWindow: true,
				Start:     now,
				End:       time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC),
				Location:  time.UTC,
				Precision: constant.PrecisionSecond,
			},
		},
		{
			name:    "start without end",
			params:  model.AvailabilityParams{Start: "2024-01-10"},
			wantErr: constant.ErrInvalidRequest,
		},
		{
			name:    "end before start",
			params:  model.AvailabilityParams{Start: "2024-01-12T00:00:00Z", End: "2024-01-10T00:00:00Z"},
			wantErr: constant.ErrInvalidDateRange,
		},
		{
			name:    "date together with start",
			params:  model.AvailabilityParams{Date: "2024-01-15", Start: "2024-01-10"},
			wantErr: constant.ErrInvalidRequest,
		},
		{
			name:    "malformed date",
			params:  model.AvailabilityParams{Date: "15/01/2024"},
			wantErr: constant.ErrInvalidRequest,
		},
		{
			name:    "malformed start",
			params:  model.AvailabilityParams{Start: "yesterday", End: "2024-01-10"},
			wantErr: constant.ErrInvalidRequest,
		},
		{
			name:    "zero quantity",
			params:  model.AvailabilityParams{Quantity: "0"},
			wantErr: constant.ErrInvalidRequest,
		},
		{
			name:    "negative quantity",
			params:  model.AvailabilityParams{Quantity: "-2"},
			wantErr: constant.ErrInvalidRequest,
		},
		{
			name:    "zero outlet",
			params:  model.AvailabilityParams{OutletID: "0"},
			wantErr: constant.ErrInvalidRequest,
		},
		{
			name:    "unknown timezone",
			params:  model.AvailabilityParams{Timezone: "Mars/Olympus_Mons"},
			wantErr: constant.ErrInvalidRequest,
		},
		{
			name:    "unknown precision",
			params:  model.AvailabilityParams{Precision: "hour"},
			wantErr: constant.ErrInvalidRequest,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got, err := availability.ParseQuery(tt.params, now)
			if tt.want == nil {
				require.Error(t, err)
				assert.True(t, cerr.IsType(err, tt.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseQuery_Timezone(t *testing.T) {
	got, err := availability.ParseQuery(model.AvailabilityParams{Timezone: "Asia/Jakarta"}, time.Now())
	require.NoError(t, err)
	assert.Equal(t, "Asia/Jakarta", got.Location.String())
}

func TestFormatTime(t *testing.T) {
	ts := time.Date(2024, time.January, 15, 2, 4, 5, int(678*time.Millisecond), time.UTC)
	jakarta, err := time.LoadLocation("Asia/Jakarta")
	require.NoError(t, err)

	assert.Equal(t, "2024-01-15T02:04Z", availability.FormatTime(ts, time.UTC, constant.PrecisionMinute))
	assert.Equal(t, "2024-01-15T02:04:05Z", availability.FormatTime(ts, nil, constant.PrecisionSecond))
	assert.Equal(t, "2024-01-15T09:04:05.678+07:00", availability.FormatTime(ts, jakarta, constant.PrecisionMillisecond))
}

func TestDayWindow(t *testing.T) {
	ts := time.Date(2024, time.January, 15, 23, 30, 0, 0, time.FixedZone("WIB", 7*3600))
	start, end := availability.DayWindow(ts)
	assert.Equal(t, time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, start.Add(24*time.Hour-time.Millisecond), end)
}
