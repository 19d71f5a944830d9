package service

import (
	"context"
	"time"

	"github.com/aurumchit/agent_end/models"
	"github.com/aurumchit/agent_end/utils"

	"github.com/google/uuid"
)

// AttendanceGateway is the slice of the upstream API the attendance flow
// consumes.
type AttendanceGateway interface {
	AttendanceModal(ctx context.Context, agentID string, date time.Time) (*models.AttendanceModal, error)
	AttendancePunch(ctx context.Context, req models.AttendancePunchRequest) error
}

// PunchAudit stores a local audit copy of a submitted punch.
type PunchAudit func(ctx context.Context, record models.PunchRecord) error

// EligibilityResult says whether the punch prompt should be shown.
type EligibilityResult struct {
	ShowPrompt bool   `json:"showPrompt"`
	Message    string `json:"message,omitempty"`
}

// AttendanceService drives the attendance eligibility check and punch
// submission.
type AttendanceService struct {
	gw    AttendanceGateway
	audit PunchAudit
	now   func() time.Time
}

// NewAttendanceService creates the service. audit may be nil when no local
// punch log is wanted.
func NewAttendanceService(gw AttendanceGateway, audit PunchAudit) *AttendanceService {
	return &AttendanceService{gw: gw, audit: audit, now: time.Now}
}

// CheckEligibility asks the upstream whether the agent must punch today.
//
// A non-2xx response or an "already marked" answer is terminal for the day:
// the prompt is simply not shown, nothing is escalated as an error.
func (s *AttendanceService) CheckEligibility(ctx context.Context, agentID string) EligibilityResult {
	modal, err := s.gw.AttendanceModal(ctx, agentID, s.now())
	if err != nil {
		utils.Logger.Info().Err(err).Str("agentId", agentID).Msg("attendance check terminal for today")
		return EligibilityResult{ShowPrompt: false}
	}

	if modal.AlreadyMarked {
		return EligibilityResult{ShowPrompt: false, Message: modal.Message}
	}

	return EligibilityResult{ShowPrompt: modal.ShowModal, Message: modal.Message}
}

// Punch submits a status plus optional note and records a local audit copy.
func (s *AttendanceService) Punch(ctx context.Context, agentID string, line models.ProductLine, status models.AttendanceStatus, note string) (*models.PunchRecord, error) {
	if !status.Valid() {
		return nil, utils.CreateBadRequestError("unknown attendance status: " + string(status))
	}

	now := s.now()
	req := models.AttendancePunchRequest{
		AgentID: agentID,
		Status:  status,
		Note:    note,
		Date:    utils.FormatAPIDate(now),
	}

	if err := s.gw.AttendancePunch(ctx, req); err != nil {
		return nil, err
	}

	record := models.PunchRecord{
		ID:          uuid.NewString(),
		AgentID:     agentID,
		Status:      status,
		Note:        note,
		ProductLine: line,
		PunchedAt:   now,
	}

	// the upstream accepted the punch; a failed audit write is log-only
	if s.audit != nil {
		if err := s.audit(ctx, record); err != nil {
			utils.LogError(err, map[string]interface{}{"agentId": agentID}, "punch audit write failed")
		}
	}

	return &record, nil
}
