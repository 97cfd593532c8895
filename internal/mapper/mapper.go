// Package mapper converts between domain models and transport DTOs.
package mapper

import (
	"github.com/Durga62823/work-board-sub000/internal/entities"
	"github.com/Durga62823/work-board-sub000/internal/transport/http/dto"
)

// FromDTOTeam builds an entities.Team from transport DTO.
func FromDTOTeam(src dto.Team) entities.Team {
	members := make([]entities.User, 0, len(src.Members))
	for _, m := range src.Members {
		members = append(members, entities.User{
			ID:       m.UserID,
			Username: m.Username,
			TeamID:   src.TeamID,
			IsActive: m.IsActive,
		})
	}

	return entities.Team{
		ID:      src.TeamID,
		Name:    src.TeamName,
		Members: members,
	}
}

// ToDTOTeam maps entities.Team to transport model.
func ToDTOTeam(team entities.Team) dto.Team {
	members := make([]dto.TeamMember, 0, len(team.Members))
	for _, m := range team.Members {
		members = append(members, dto.TeamMember{
			UserID:   m.ID,
			Username: m.Username,
			IsActive: m.IsActive,
		})
	}

	return dto.Team{
		TeamID:   team.ID,
		TeamName: team.Name,
		Members:  members,
	}
}

// ToDTOUser maps entities.User to transport model.
func ToDTOUser(u entities.User) dto.User {
	return dto.User{
		UserID:   u.ID,
		Username: u.Username,
		TeamID:   u.TeamID,
		IsActive: u.IsActive,
	}
}

// ToDTOProject maps entities.Project to transport model.
func ToDTOProject(p entities.Project) dto.Project {
	return dto.Project{ProjectID: p.ID, Name: p.Name, TeamID: p.TeamID}
}

// FromDTOCreateTask builds a new task reported by reporterID.
func FromDTOCreateTask(src dto.CreateTaskRequest, reporterID string) entities.Task {
	return entities.Task{
		Title:          src.Title,
		Description:    src.Description,
		Status:         entities.TaskStatus(src.Status),
		Priority:       entities.Priority(src.Priority),
		AssigneeID:     src.AssigneeID,
		ReporterID:     reporterID,
		ProjectID:      src.ProjectID,
		SprintID:       src.SprintID,
		StoryPoints:    src.StoryPoints,
		EstimatedHours: src.EstimatedHours,
		BlockedReason:  src.BlockedReason,
		Tags:           src.Tags,
		DueDate:        src.DueDate,
	}
}

// FromDTOUpdateTask converts a partial update request into a patch.
func FromDTOUpdateTask(src dto.UpdateTaskRequest) entities.TaskPatch {
	patch := entities.TaskPatch{
		Title:          src.Title,
		Description:    src.Description,
		AssigneeID:     src.AssigneeID,
		ProjectID:      src.ProjectID,
		SprintID:       src.SprintID,
		StoryPoints:    src.StoryPoints,
		EstimatedHours: src.EstimatedHours,
		ActualHours:    src.ActualHours,
		BlockedReason:  src.BlockedReason,
		Tags:           src.Tags,
		DueDate:        src.DueDate,
	}
	if src.Status != nil {
		s := entities.TaskStatus(*src.Status)
		patch.Status = &s
	}
	if src.Priority != nil {
		p := entities.Priority(*src.Priority)
		patch.Priority = &p
	}
	return patch
}

// ToDTOTask maps entities.Task to transport model.
func ToDTOTask(t entities.Task) dto.Task {
	tags := t.Tags
	if tags == nil {
		tags = []string{}
	}
	return dto.Task{
		TaskID:         t.ID,
		Title:          t.Title,
		Description:    t.Description,
		Status:         string(t.Status),
		Priority:       string(t.Priority),
		AssigneeID:     t.AssigneeID,
		ReporterID:     t.ReporterID,
		ProjectID:      t.ProjectID,
		SprintID:       t.SprintID,
		StoryPoints:    t.StoryPoints,
		EstimatedHours: t.EstimatedHours,
		ActualHours:    t.ActualHours,
		BlockedReason:  t.BlockedReason,
		Tags:           tags,
		DueDate:        t.DueDate,
		StartedAt:      t.StartedAt,
		CompletedAt:    t.CompletedAt,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}
}

// ToDTOTasks maps a task list, never returning nil.
func ToDTOTasks(tasks []entities.Task) []dto.Task {
	res := make([]dto.Task, 0, len(tasks))
	for _, t := range tasks {
		res = append(res, ToDTOTask(t))
	}
	return res
}

// FromDTOPriorityChanges converts bulk items.
func FromDTOPriorityChanges(src []dto.PriorityChange) []entities.PriorityChange {
	res := make([]entities.PriorityChange, 0, len(src))
	for _, c := range src {
		res = append(res, entities.PriorityChange{TaskID: c.TaskID, Priority: entities.Priority(c.Priority)})
	}
	return res
}

// ToDTOBulkResults maps per-item bulk outcomes.
func ToDTOBulkResults(src []entities.BulkResult) []dto.BulkResult {
	res := make([]dto.BulkResult, 0, len(src))
	for _, r := range src {
		res = append(res, dto.BulkResult{TaskID: r.TaskID, OK: r.OK, Error: r.Error})
	}
	return res
}

// FromDTOCreateSprint builds a new sprint.
func FromDTOCreateSprint(src dto.CreateSprintRequest) entities.Sprint {
	return entities.Sprint{
		Name:          src.Name,
		Goal:          src.Goal,
		TeamID:        src.TeamID,
		StartDate:     src.StartDate,
		EndDate:       src.EndDate,
		CapacityHours: src.CapacityHours,
	}
}

// ToDTOSprint maps entities.Sprint to transport model.
func ToDTOSprint(s entities.Sprint) dto.Sprint {
	return dto.Sprint{
		SprintID:           s.ID,
		Name:               s.Name,
		Goal:               s.Goal,
		TeamID:             s.TeamID,
		StartDate:          s.StartDate,
		EndDate:            s.EndDate,
		Status:             string(s.Status),
		CapacityHours:      s.CapacityHours,
		Velocity:           s.Velocity,
		RetrospectiveNotes: s.RetrospectiveNotes,
		CreatedAt:          s.CreatedAt,
		UpdatedAt:          s.UpdatedAt,
	}
}

// ToDTOSprints maps a sprint list, never returning nil.
func ToDTOSprints(sprints []entities.Sprint) []dto.Sprint {
	res := make([]dto.Sprint, 0, len(sprints))
	for _, s := range sprints {
		res = append(res, ToDTOSprint(s))
	}
	return res
}

// FromDTOProject builds an entities.Project from transport DTO.
func FromDTOProject(src dto.Project) entities.Project {
	return entities.Project{ID: src.ProjectID, Name: src.Name, TeamID: src.TeamID}
}
