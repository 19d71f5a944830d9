package models

import "time"

// AttendanceStatus is the punch status an agent can submit.
type AttendanceStatus string

const (
	AttendancePresent    AttendanceStatus = "Present"
	AttendancePending    AttendanceStatus = "Pending"
	AttendanceInProgress AttendanceStatus = "In Progress"
)

// Next returns the cyclic successor: Present -> Pending -> In Progress -> Present.
// Repeated taps on the punch prompt walk this cycle.
func (s AttendanceStatus) Next() AttendanceStatus {
	switch s {
	case AttendancePresent:
		return AttendancePending
	case AttendancePending:
		return AttendanceInProgress
	default:
		return AttendancePresent
	}
}

// Valid reports whether s is one of the known statuses.
func (s AttendanceStatus) Valid() bool {
	switch s {
	case AttendancePresent, AttendancePending, AttendanceInProgress:
		return true
	}
	return false
}

// AttendanceModal is the upstream answer to "must this agent punch today".
type AttendanceModal struct {
	ShowModal     bool   `json:"show_modal"`
	AlreadyMarked bool   `json:"already_marked"`
	Message       string `json:"message,omitempty"`
}

// AttendancePunchRequest is the payload sent to /employee-attendance/punch.
type AttendancePunchRequest struct {
	AgentID string           `json:"agent_id"`
	Status  AttendanceStatus `json:"status"`
	Note    string           `json:"note,omitempty"`
	Date    string           `json:"date"`
}

// PunchRecord is the local audit copy of a submitted punch.
type PunchRecord struct {
	ID          string           `bson:"_id" json:"_id"`
	AgentID     string           `bson:"agentId" json:"agentId"`
	Status      AttendanceStatus `bson:"status" json:"status"`
	Note        string           `bson:"note,omitempty" json:"note,omitempty"`
	ProductLine ProductLine      `bson:"productLine" json:"productLine"`
	PunchedAt   time.Time        `bson:"punchedAt" json:"punchedAt"`
}
