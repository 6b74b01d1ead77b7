package dto

import (
	"encoding/json"
	"math"
)

// MetricSummary holds the dashboard numbers for one fee stream.
type MetricSummary struct {
	Total              int     `json:"total"`
	Outstanding        int     `json:"outstanding"`
	CollectedThisMonth int     `json:"collectedThisMonth"`
	PendingStudents    int     `json:"pendingStudents"`
	PercentPaid        float64 `json:"percentPaid"`
}

// MarshalJSON renders a NaN percentPaid as null. The registration stream can
// divide by a zero total, and Go encoders refuse NaN outright while the
// console already handles a null percentage.
func (m MetricSummary) MarshalJSON() ([]byte, error) {
	type alias MetricSummary
	if !math.IsNaN(m.PercentPaid) && !math.IsInf(m.PercentPaid, 0) {
		return json.Marshal(alias(m))
	}
	return json.Marshal(struct {
		alias
		PercentPaid *float64 `json:"percentPaid"`
	}{alias: alias(m)})
}

// FeeReportsResponse keys keep the historical registeration spelling the
// console reads.
type FeeReportsResponse struct {
	Registration MetricSummary `json:"registeration"`
	Installments MetricSummary `json:"installments"`
}

// MonthlyPoint is one bar of the dashboard chart. The Fees casing is what
// the charting layer binds to.
type MonthlyPoint struct {
	Month string `json:"month"`
	Fees  int    `json:"Fees"`
}

type MonthlyChartResponse struct {
	Registration []MonthlyPoint `json:"registeration"`
	Installments []MonthlyPoint `json:"installments"`
}
