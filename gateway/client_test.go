package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aurumchit/agent_end/models"
	"github.com/aurumchit/agent_end/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	utils.InitLogger()
}

func newTestClient(handler http.Handler) (*Client, *httptest.Server) {
	server := httptest.NewServer(handler)
	client := New(Config{BaseURL: server.URL, Line: models.ProductLineChit, Timeout: 5 * time.Second})
	return client, server
}

func TestLoginAgent(t *testing.T) {
	var gotBody models.UpstreamLoginRequest
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/agent/login-agent", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		json.NewEncoder(w).Encode(map[string]string{"userId": "A1", "token": "tok"})
	}))
	defer server.Close()

	resp, err := client.LoginAgent(context.Background(), models.UpstreamLoginRequest{Phone: "9000000001", Password: "pw"})
	require.NoError(t, err)

	assert.Equal(t, "A1", resp.UserID)
	assert.Equal(t, "tok", resp.Token)
	assert.Equal(t, "9000000001", gotBody.Phone)
}

func TestGetTargets_QueryParams(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/target/get-targets", r.URL.Path)
		assert.Equal(t, "2026-03-01", r.URL.Query().Get("fromDate"))
		assert.Equal(t, "2026-03-31", r.URL.Query().Get("toDate"))

		json.NewEncoder(w).Encode([]map[string]interface{}{
			{"_id": "T1", "agent_id": "A1", "total_target": 10000},
		})
	}))
	defer server.Close()

	from := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, time.March, 31, 23, 59, 59, 0, time.UTC)

	targets, err := client.GetTargets(context.Background(), from, to)
	require.NoError(t, err)
	require.Len(t, targets, 1)
	assert.Equal(t, "A1", targets[0].AgentID)
	assert.Equal(t, 10000.0, utils.ParseCurrency(targets[0].TotalTarget))
}

func TestGetDetailedCommission(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/enroll/get-detailed-commission-per-month", r.URL.Path)
		assert.Equal(t, "A1", r.URL.Query().Get("agent_id"))
		assert.Equal(t, "2026-03-01", r.URL.Query().Get("from_date"))
		assert.Equal(t, "2026-03-31", r.URL.Query().Get("to_date"))

		json.NewEncoder(w).Encode(map[string]interface{}{
			"actual_business": "₹4,500.00",
			"total_customers": 12,
		})
	}))
	defer server.Close()

	from := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, time.March, 31, 0, 0, 0, 0, time.UTC)

	summary, err := client.GetDetailedCommission(context.Background(), "A1", from, to)
	require.NoError(t, err)
	assert.Equal(t, 4500.0, utils.ParseCurrency(summary.ActualBusiness))
	assert.Equal(t, 12, summary.TotalCustomers)
}

func TestGetAgentPayments(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/payment/get-payment-agent/A1", r.URL.Path)

		json.NewEncoder(w).Encode([]map[string]interface{}{
			{"amount": "100.50", "pay_date": "2026-03-10"},
			{"amount": 50, "pay_date": "2026-03-09"},
		})
	}))
	defer server.Close()

	payments, err := client.GetAgentPayments(context.Background(), "A1")
	require.NoError(t, err)
	require.Len(t, payments, 2)
	assert.Equal(t, "2026-03-10", payments[0].PayDate)
}

func TestStatusError_CarriesUpstreamMessage(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]string{"error": "attendance already marked"})
	}))
	defer server.Close()

	_, err := client.AttendanceModal(context.Background(), "A1", time.Now())
	require.Error(t, err)

	statusErr, ok := err.(*StatusError)
	require.True(t, ok)
	assert.Equal(t, http.StatusConflict, statusErr.StatusCode)
	assert.Equal(t, "attendance already marked", statusErr.Message)
}

func TestStatusError_FallsBackToMessageField(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"message": "bad input"})
	}))
	defer server.Close()

	_, err := client.GetAgentByID(context.Background(), "A1")
	require.Error(t, err)

	statusErr, ok := err.(*StatusError)
	require.True(t, ok)
	assert.Equal(t, "bad input", statusErr.Message)
}

func TestAttendancePunch(t *testing.T) {
	var got models.AttendancePunchRequest
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/employee-attendance/punch", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	err := client.AttendancePunch(context.Background(), models.AttendancePunchRequest{
		AgentID: "A1",
		Status:  models.AttendancePresent,
		Date:    "2026-03-10",
	})
	require.NoError(t, err)
	assert.Equal(t, "A1", got.AgentID)
	assert.Equal(t, models.AttendancePresent, got.Status)
}

func TestSet_ForLine(t *testing.T) {
	set := NewSet("http://chit.local", "http://gold.local", time.Second)

	assert.Equal(t, "http://chit.local", set.ForLine(models.ProductLineChit).baseURL)
	assert.Equal(t, "http://gold.local", set.ForLine(models.ProductLineGold).baseURL)
	assert.Equal(t, "http://chit.local", set.ForLine(models.ProductLine("unknown")).baseURL)
}
