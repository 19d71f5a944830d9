package models

// Target is a monthly business-value goal, bound either to a specific agent
// or to every agent sharing a designation.
type Target struct {
	ID            string      `json:"_id,omitempty"`
	AgentID       string      `json:"agent_id,omitempty"`
	DesignationID string      `json:"designation_id,omitempty"`
	TotalTarget   interface{} `json:"total_target"` // number or formatted string upstream
	StartDate     string      `json:"start_date,omitempty"`
	EndDate       string      `json:"end_date,omitempty"`
}

// CommissionSummary is the server-side commission roll-up for a date range.
// Numeric fields are opaque until normalized; actual_business in particular
// arrives either as a number or a currency-formatted string.
type CommissionSummary struct {
	ActualBusiness interface{} `json:"actual_business"`
	TotalActual    interface{} `json:"total_actual,omitempty"`
	TotalCustomers int         `json:"total_customers,omitempty"`
	TotalGroups    int         `json:"total_groups,omitempty"`
}
