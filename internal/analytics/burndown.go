package analytics

import (
	"math"
	"time"

	"github.com/Durga62823/work-board-sub000/internal/entities"
)

const day = 24 * time.Hour

// SprintDays is the sprint span in whole days, rounded up.
func SprintDays(s entities.Sprint) int {
	span := s.EndDate.Sub(s.StartDate)
	if span <= 0 {
		return 0
	}
	return int(math.Ceil(float64(span) / float64(day)))
}

// Burndown computes ideal and actual remaining points for days 0..SprintDays.
// A DONE task counts on the day of its completedAt; completions before the
// sprint start count on day 0 and completions after the last day are not shown.
func Burndown(s entities.Sprint, tasks []entities.Task) entities.BurndownSeries {
	total := TotalPoints(tasks)
	days := SprintDays(s)

	res := entities.BurndownSeries{
		SprintID:    s.ID,
		TotalPoints: total,
		SprintDays:  days,
		Days:        make([]int, days+1),
		Ideal:       make([]float64, days+1),
		Actual:      make([]int, days+1),
	}

	burned := make([]int, days+1)
	for _, t := range tasks {
		if t.Status != entities.TaskDone || t.CompletedAt == nil {
			continue
		}
		d := int(math.Floor(float64(t.CompletedAt.Sub(s.StartDate)) / float64(day)))
		if d < 0 {
			d = 0
		}
		if d > days {
			continue
		}
		burned[d] += t.Points()
	}

	cumulative := 0
	for d := 0; d <= days; d++ {
		res.Days[d] = d
		if days == 0 {
			res.Ideal[d] = float64(total)
		} else {
			res.Ideal[d] = float64(total) - float64(total)/float64(days)*float64(d)
		}
		cumulative += burned[d]
		res.Actual[d] = max(total-cumulative, 0)
	}
	return res
}
