package analytics

import (
	"time"

	"github.com/Durga62823/work-board-sub000/internal/entities"
)

// TaskMetrics computes lead and cycle time of DONE tasks completed at or after
// since. A task without startedAt reports a cycle time of 0 and Started=false.
func TaskMetrics(teamID string, windowDays int, since time.Time, tasks []entities.Task) entities.TaskMetrics {
	res := entities.TaskMetrics{
		TeamID:     teamID,
		WindowDays: windowDays,
		Tasks:      make([]entities.TaskTiming, 0, len(tasks)),
	}

	var leadSum, cycleSum float64
	for _, t := range tasks {
		if t.Status != entities.TaskDone || t.CompletedAt == nil || t.CompletedAt.Before(since) {
			continue
		}
		timing := entities.TaskTiming{
			TaskID:      t.ID,
			Title:       t.Title,
			CompletedAt: *t.CompletedAt,
			LeadTime:    days(t.CompletedAt.Sub(t.CreatedAt)),
		}
		if t.StartedAt != nil {
			timing.CycleTime = days(t.CompletedAt.Sub(*t.StartedAt))
			timing.Started = true
		}
		leadSum += timing.LeadTime
		cycleSum += timing.CycleTime
		res.Tasks = append(res.Tasks, timing)
	}

	res.Count = len(res.Tasks)
	if res.Count > 0 {
		res.AvgLeadTime = leadSum / float64(res.Count)
		res.AvgCycleTime = cycleSum / float64(res.Count)
	}
	return res
}

func days(d time.Duration) float64 {
	return d.Hours() / 24
}
