package constant

import (
	"encoding/json"
	"fmt"
)

// OverlapKind classifies how an existing rental window meets a requested one.
type OverlapKind int

const (
	CompleteOverlap OverlapKind = iota + 1
	PeriodOverlap
)

var overlapKindName = map[OverlapKind]string{
	CompleteOverlap: "complete_overlap",
	PeriodOverlap:   "period_overlap",
}

func (k OverlapKind) String() string {
	if name, ok := overlapKindName[k]; ok {
		return name
	}
	return fmt.Sprintf("OverlapKind(%d)", int(k))
}

func (k OverlapKind) MarshalJSON() ([]byte, error) {
	name, ok := overlapKindName[k]
	if !ok {
		return nil, fmt.Errorf("unknown overlap kind %d", int(k))
	}
	return json.Marshal(name)
}
