package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aurumchit/agent_end/gateway"
	"github.com/aurumchit/agent_end/models"
	"github.com/aurumchit/agent_end/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckEligibility_ShowsPrompt(t *testing.T) {
	gw := &fakeGateway{modal: &models.AttendanceModal{ShowModal: true, Message: "mark attendance"}}
	svc := NewAttendanceService(gw, nil)

	result := svc.CheckEligibility(context.Background(), "A1")

	assert.True(t, result.ShowPrompt)
	assert.Equal(t, "mark attendance", result.Message)
}

func TestCheckEligibility_AlreadyMarkedIsTerminal(t *testing.T) {
	gw := &fakeGateway{modal: &models.AttendanceModal{ShowModal: true, AlreadyMarked: true}}
	svc := NewAttendanceService(gw, nil)

	result := svc.CheckEligibility(context.Background(), "A1")

	assert.False(t, result.ShowPrompt)
}

func TestCheckEligibility_UpstreamErrorIsTerminalNotFatal(t *testing.T) {
	cases := []struct {
		name string
		err  error
	}{
		{"non-2xx", &gateway.StatusError{StatusCode: 409, Message: "already marked"}},
		{"network", errors.New("connection refused")},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gw := &fakeGateway{modalErr: tc.err}
			result := NewAttendanceService(gw, nil).CheckEligibility(context.Background(), "A1")
			assert.False(t, result.ShowPrompt)
		})
	}
}

func TestPunch_SubmitsAndAudits(t *testing.T) {
	gw := &fakeGateway{}

	var audited []models.PunchRecord
	audit := func(_ context.Context, record models.PunchRecord) error {
		audited = append(audited, record)
		return nil
	}

	svc := NewAttendanceService(gw, audit)
	svc.now = func() time.Time { return time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC) }

	record, err := svc.Punch(context.Background(), "A1", models.ProductLineGold, models.AttendancePresent, "on field")
	require.NoError(t, err)

	require.Len(t, gw.punches, 1)
	assert.Equal(t, "A1", gw.punches[0].AgentID)
	assert.Equal(t, models.AttendancePresent, gw.punches[0].Status)
	assert.Equal(t, "2026-03-10", gw.punches[0].Date)

	require.Len(t, audited, 1)
	assert.NotEmpty(t, record.ID)
	assert.Equal(t, models.ProductLineGold, record.ProductLine)
	assert.Equal(t, "on field", record.Note)
}

func TestPunch_RejectsUnknownStatus(t *testing.T) {
	gw := &fakeGateway{}
	svc := NewAttendanceService(gw, nil)

	_, err := svc.Punch(context.Background(), "A1", models.ProductLineChit, models.AttendanceStatus("Sleeping"), "")
	require.Error(t, err)

	apiErr, ok := err.(*utils.ApiError)
	require.True(t, ok)
	assert.Equal(t, 400, apiErr.StatusCode)
	assert.Empty(t, gw.punches, "invalid status must not reach the upstream")
}

func TestPunch_UpstreamFailurePropagates(t *testing.T) {
	gw := &fakeGateway{punchErr: &gateway.StatusError{StatusCode: 500, Message: "server error"}}
	svc := NewAttendanceService(gw, nil)

	_, err := svc.Punch(context.Background(), "A1", models.ProductLineChit, models.AttendancePending, "")
	require.Error(t, err)
}

func TestPunch_AuditFailureIsLogOnly(t *testing.T) {
	gw := &fakeGateway{}
	audit := func(_ context.Context, _ models.PunchRecord) error {
		return errors.New("mongo down")
	}

	record, err := NewAttendanceService(gw, audit).Punch(context.Background(), "A1", models.ProductLineChit, models.AttendanceInProgress, "")
	require.NoError(t, err, "an audit write failure must not fail the punch")
	assert.NotNil(t, record)
}
