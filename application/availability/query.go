package availability

import (
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/muhammadheryan/rental-shop/constant"
	"github.com/muhammadheryan/rental-shop/model"
	"github.com/muhammadheryan/rental-shop/utils/errors"
	validatorx "github.com/muhammadheryan/rental-shop/utils/validator"
)

const endOfDayOffset = 24*time.Hour - time.Millisecond

type availabilityQuery struct {
	OutletID  string `validate:"omitempty,number"`
	Quantity  string `validate:"omitempty,number"`
	Date      string `validate:"omitempty,datetime=2006-01-02,excluded_with=Start End"`
	Start     string
	End       string
	Timezone  string `validate:"omitempty,timezone"`
	Precision string `validate:"omitempty,oneof=minute second millisecond"`
}

// ParseQuery turns raw query values into an engine request. now is used as the
// window start when only an end is supplied.
func ParseQuery(params model.AvailabilityParams, now time.Time) (*model.AvailabilityRequest, error) {
	q := availabilityQuery{
		OutletID:  strings.TrimSpace(params.OutletID),
		Quantity:  strings.TrimSpace(params.Quantity),
		Date:      strings.TrimSpace(params.Date),
		Start:     strings.TrimSpace(params.Start),
		End:       strings.TrimSpace(params.End),
		Timezone:  strings.TrimSpace(params.Timezone),
		Precision: strings.TrimSpace(params.Precision),
	}
	if err := validatorx.ValidateStruct(&q); err != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	req := &model.AvailabilityRequest{
		Quantity:  1,
		Location:  time.UTC,
		Precision: constant.PrecisionSecond,
	}

	if q.OutletID != "" {
		id, err := strconv.ParseUint(q.OutletID, 10, 64)
		if err != nil || id == 0 {
			return nil, errors.SetCustomError(constant.ErrInvalidRequest)
		}
		req.OutletID = id
	}

	if q.Quantity != "" {
		qty, err := strconv.ParseInt(q.Quantity, 10, 64)
		if err != nil || qty < 1 {
			return nil, errors.SetCustomError(constant.ErrInvalidRequest)
		}
		req.Quantity = qty
	}

	if q.Timezone != "" {
		loc, err := time.LoadLocation(q.Timezone)
		if err != nil {
			return nil, errors.SetCustomError(constant.ErrInvalidRequest)
		}
		req.Location = loc
	}
	if q.Precision != "" {
		req.Precision = constant.TimePrecision(q.Precision)
	}

	switch {
	case q.Date != "":
		day, err := time.ParseInLocation(constant.DateLayout, q.Date, time.UTC)
		if err != nil {
			return nil, errors.SetCustomError(constant.ErrInvalidRequest)
		}
		req.HasWindow = true
		req.Start, req.End = DayWindow(day)
	case q.Start != "" || q.End != "":
		if q.End == "" {
			return nil, errors.SetCustomError(constant.ErrInvalidRequest)
		}
		end, err := parseBoundary(q.End, true)
		if err != nil {
			return nil, errors.SetCustomError(constant.ErrInvalidRequest)
		}
		start := now.UTC()
		if q.Start != "" {
			start, err = parseBoundary(q.Start, false)
			if err != nil {
				return nil, errors.SetCustomError(constant.ErrInvalidRequest)
			}
		}
		if end.Before(start) {
			return nil, errors.SetCustomError(constant.ErrInvalidDateRange)
		}
		req.HasWindow = true
		req.Start, req.End = start, end
	}

	return req, nil
}

// DayWindow returns [00:00:00.000, 23:59:59.999] UTC of the calendar day of t in UTC.
func DayWindow(t time.Time) (time.Time, time.Time) {
	u := t.UTC()
	start := time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
	return start, start.Add(endOfDayOffset)
}

// parseBoundary accepts RFC3339 timestamps or plain dates. A plain date used as an
// end boundary covers the whole day.
func parseBoundary(value string, isEnd bool) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t.UTC(), nil
	}
	day, err := time.ParseInLocation(constant.DateLayout, value, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	start, end := DayWindow(day)
	if isEnd {
		return end, nil
	}
	return start, nil
}

var precisionLayout = map[constant.TimePrecision]string{
	constant.PrecisionMinute:      "2006-01-02T15:04Z07:00",
	constant.PrecisionSecond:      time.RFC3339,
	constant.PrecisionMillisecond: "2006-01-02T15:04:05.000Z07:00",
}

// FormatTime renders t for display in loc. Nothing computed from the result feeds back
// into availability math.
func FormatTime(t time.Time, loc *time.Location, precision constant.TimePrecision) string {
	if loc == nil {
		loc = time.UTC
	}
	layout, ok := precisionLayout[precision]
	if !ok {
		layout = time.RFC3339
	}
	return t.In(loc).Format(layout)
}
