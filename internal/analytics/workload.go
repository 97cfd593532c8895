package analytics

import "github.com/Durga62823/work-board-sub000/internal/entities"

// Workload returns one snapshot per member, in member order. Done tasks and
// tasks assigned to non-members are ignored; unassigned tasks count for nobody.
func Workload(members []entities.User, tasks []entities.Task) []entities.WorkloadSnapshot {
	res := make([]entities.WorkloadSnapshot, 0, len(members))
	idx := make(map[string]int, len(members))
	for _, m := range members {
		idx[m.ID] = len(res)
		res = append(res, entities.WorkloadSnapshot{UserID: m.ID, Username: m.Username})
	}

	for _, t := range tasks {
		if t.Status == entities.TaskDone || t.AssigneeID == nil {
			continue
		}
		i, ok := idx[*t.AssigneeID]
		if !ok {
			continue
		}
		w := &res[i]
		w.TaskCount++
		w.StoryPoints += t.Points()
		w.EstimatedHours += t.Hours()
		switch t.Status {
		case entities.TaskBlocked:
			w.BlockedCount++
		case entities.TaskInProgress:
			w.InProgressCount++
		}
	}
	return res
}
