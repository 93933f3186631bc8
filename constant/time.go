package constant

// TimePrecision selects how timestamps are rendered in responses.
type TimePrecision string

const (
	PrecisionMinute      TimePrecision = "minute"
	PrecisionSecond      TimePrecision = "second"
	PrecisionMillisecond TimePrecision = "millisecond"
)

const DateLayout = "2006-01-02"
