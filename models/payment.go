package models

// Payment is a single collection record for an agent.
type Payment struct {
	ID         string      `json:"_id,omitempty"`
	AgentID    string      `json:"agent_id,omitempty"`
	CustomerID string      `json:"customer_id,omitempty"`
	Amount     interface{} `json:"amount"` // number or numeric string
	PayDate    string      `json:"pay_date"`
	Mode       string      `json:"mode,omitempty"`
}
