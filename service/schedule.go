package service

import (
	"time"

	"github.com/aurumchit/agent_end/repository"
	"github.com/aurumchit/agent_end/utils"
)

// staleSessionAge is how long an untouched device entry survives in the
// persisted store before the daily sweep removes it.
const staleSessionAge = 45 * 24 * time.Hour

// ScheduleDailyTaskAt runs task every day at the given wall-clock time.
func ScheduleDailyTaskAt(hour, min, sec int, task func()) {
	go func() {
		for {
			now := time.Now()
			next := time.Date(now.Year(), now.Month(), now.Day(), hour, min, sec, 0, now.Location())
			if now.After(next) {
				next = next.Add(24 * time.Hour)
			}
			time.Sleep(next.Sub(now))
			task()
		}
	}()
}

// SweepStaleSessions purges long-untouched entries from the persisted
// session store.
func SweepStaleSessions() {
	store := repository.NewKVStore()

	deleted, err := store.SweepStale(repository.GetContext(), staleSessionAge)
	if err != nil {
		utils.Logger.Error().Err(err).Msg("session sweep failed")
		return
	}

	utils.Logger.Info().Int64("deleted", deleted).Msg("session sweep completed")
}
