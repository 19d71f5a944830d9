package models

// DerivedProgress is the locally computed target progress. It is recomputed
// on every fetch cycle and never persisted.
type DerivedProgress struct {
	Achieved          float64 `json:"achieved"`
	Total             float64 `json:"total"`
	Remaining         float64 `json:"remaining"`
	Percentage        float64 `json:"percentage"`        // raw, may exceed 100
	DisplayPercentage float64 `json:"displayPercentage"` // clamped to [0, 100]
}

// DashboardMetrics is the aggregated dashboard payload for one agent.
type DashboardMetrics struct {
	Progress        DerivedProgress `json:"progress"`
	HasTarget       bool            `json:"hasTarget"`
	TodayCollection float64         `json:"todayCollection"`
	FromDate        string          `json:"fromDate"`
	ToDate          string          `json:"toDate"`
}
