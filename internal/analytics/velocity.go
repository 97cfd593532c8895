package analytics

import "github.com/Durga62823/work-board-sub000/internal/entities"

// CompletedPoints sums story points of DONE tasks.
func CompletedPoints(tasks []entities.Task) int {
	total := 0
	for _, t := range tasks {
		if t.Status == entities.TaskDone {
			total += t.Points()
		}
	}
	return total
}

// TotalPoints sums story points of all tasks regardless of status.
func TotalPoints(tasks []entities.Task) int {
	total := 0
	for _, t := range tasks {
		total += t.Points()
	}
	return total
}

// Velocity builds the history for sprints in the given order. tasksBySprint
// maps a sprint id to the tasks currently linked to it.
func Velocity(teamID string, sprints []entities.Sprint, tasksBySprint map[string][]entities.Task) entities.VelocityHistory {
	res := entities.VelocityHistory{
		TeamID:  teamID,
		Sprints: make([]entities.SprintVelocity, 0, len(sprints)),
	}
	if len(sprints) == 0 {
		return res
	}

	sum := 0
	for _, s := range sprints {
		tasks := tasksBySprint[s.ID]
		done := CompletedPoints(tasks)
		sum += done
		res.Sprints = append(res.Sprints, entities.SprintVelocity{
			SprintID:        s.ID,
			Name:            s.Name,
			EndDate:         s.EndDate,
			CompletedPoints: done,
			CommittedPoints: TotalPoints(tasks),
		})
	}
	res.AvgVelocity = float64(sum) / float64(len(sprints))
	return res
}
