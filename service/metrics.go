package service

import (
	"context"
	"sync"
	"time"

	"github.com/aurumchit/agent_end/models"
	"github.com/aurumchit/agent_end/utils"
)

// MetricsGateway is the slice of the upstream API the aggregator consumes.
type MetricsGateway interface {
	GetTargets(ctx context.Context, from, to time.Time) ([]models.Target, error)
	GetDetailedCommission(ctx context.Context, agentID string, from, to time.Time) (*models.CommissionSummary, error)
	GetAgentPayments(ctx context.Context, agentID string) ([]models.Payment, error)
}

// MetricsAggregator computes the current month's target progress and
// today's collection total for a resolved agent.
type MetricsAggregator struct {
	gw  MetricsGateway
	now func() time.Time
}

// NewMetricsAggregator creates an aggregator over the given gateway.
func NewMetricsAggregator(gw MetricsGateway) *MetricsAggregator {
	return &MetricsAggregator{gw: gw, now: time.Now}
}

// Collect runs the target/commission lookup and the payments lookup
// concurrently and merges the results.
//
// The two lookups are independent failure domains: a failed fetch zeroes
// only its own metric and is logged, never surfaced as a blocking error.
// The month window is computed from the clock at call time, not cached.
func (a *MetricsAggregator) Collect(ctx context.Context, agent *models.AgentInfo) models.DashboardMetrics {
	now := a.now()
	from, to := utils.MonthWindow(now)

	var (
		wg        sync.WaitGroup
		progress  models.DerivedProgress
		hasTarget bool
		today     float64
	)

	wg.Add(2)

	go func() {
		defer wg.Done()
		progress, hasTarget = a.targetProgress(ctx, agent, from, to)
	}()

	go func() {
		defer wg.Done()
		today = a.todayCollection(ctx, agent.ID, now)
	}()

	wg.Wait()

	return models.DashboardMetrics{
		Progress:        progress,
		HasTarget:       hasTarget,
		TodayCollection: today,
		FromDate:        utils.FormatAPIDate(from),
		ToDate:          utils.FormatAPIDate(to),
	}
}

// targetProgress resolves the month's target and the achieved business
// against it.
func (a *MetricsAggregator) targetProgress(ctx context.Context, agent *models.AgentInfo, from, to time.Time) (models.DerivedProgress, bool) {
	targets, err := a.gw.GetTargets(ctx, from, to)
	if err != nil {
		utils.LogError(err, map[string]interface{}{"agentId": agent.ID}, "target fetch failed")
		return models.DerivedProgress{}, false
	}

	target := SelectTarget(targets, agent)
	if target == nil {
		// no target assigned is a zero state, not an error
		return models.DerivedProgress{}, false
	}

	total := utils.ParseCurrency(target.TotalTarget)

	achieved := 0.0
	summary, err := a.gw.GetDetailedCommission(ctx, agent.ID, from, to)
	if err != nil {
		utils.LogError(err, map[string]interface{}{"agentId": agent.ID}, "commission fetch failed")
	} else if summary != nil {
		achieved = utils.ParseCurrency(summary.ActualBusiness)
	}

	return DeriveProgress(achieved, total), true
}

// todayCollection sums payments dated today.
func (a *MetricsAggregator) todayCollection(ctx context.Context, agentID string, now time.Time) float64 {
	payments, err := a.gw.GetAgentPayments(ctx, agentID)
	if err != nil {
		utils.LogError(err, map[string]interface{}{"agentId": agentID}, "payments fetch failed")
		return 0
	}

	var sum float64
	for _, p := range payments {
		if utils.SameCalendarDay(utils.ParsePayDate(p.PayDate), now) {
			sum += utils.ParseCurrency(p.Amount)
		}
	}

	return sum
}

// SelectTarget picks at most one target for the agent: an explicit
// agent-bound target first, else a designation-bound target with no agent
// binding, else nil.
func SelectTarget(targets []models.Target, agent *models.AgentInfo) *models.Target {
	for i := range targets {
		if targets[i].AgentID != "" && targets[i].AgentID == agent.ID {
			return &targets[i]
		}
	}

	for i := range targets {
		if targets[i].AgentID == "" && targets[i].DesignationID != "" &&
			targets[i].DesignationID == agent.DesignationID {
			return &targets[i]
		}
	}

	return nil
}

// DeriveProgress computes the derived metrics from achieved business and
// the target total. Division by a zero total yields a zero percentage.
func DeriveProgress(achieved, total float64) models.DerivedProgress {
	remaining := total - achieved
	if remaining < 0 {
		remaining = 0
	}

	percentage := 0.0
	if total > 0 {
		percentage = achieved / total * 100
	}

	display := percentage
	if display > 100 {
		display = 100
	}
	if display < 0 {
		display = 0
	}

	return models.DerivedProgress{
		Achieved:          achieved,
		Total:             total,
		Remaining:         remaining,
		Percentage:        percentage,
		DisplayPercentage: display,
	}
}
