package tasks

import (
	"context"
	"sort"
	"time"

	"github.com/GitNimay/lumino-crm-vc/ent"
	"github.com/GitNimay/lumino-crm-vc/ent/task"
	"github.com/GitNimay/lumino-crm-vc/pkg/domain"
	"github.com/GitNimay/lumino-crm-vc/pkg/models"
	"github.com/GitNimay/lumino-crm-vc/pkg/realtime"
)

const dueDateLayout = "2006-01-02"

// Service handles task CRUD and completion toggling.
type Service struct {
	db  *ent.Client
	hub *realtime.Hub
}

func NewService(db *ent.Client, hub *realtime.Hub) *Service {
	return &Service{db: db, hub: hub}
}

// List returns the owner's tasks ordered by due date, soonest first.
// Tasks without a due date sort last. When leadID is set, only tasks
// linked to that lead are returned; when status is set, only tasks in
// that status.
func (s *Service) List(ctx context.Context, ownerID, leadID, status string) ([]models.TaskResponse, error) {
	if ownerID == "" {
		return nil, domain.NewUnauthorizedError("authentication required")
	}

	query := s.db.Task.Query().
		Where(task.OwnerID(ownerID))
	if status != "" {
		query = query.Where(task.StatusEQ(task.Status(status)))
	}

	rows, err := query.All(ctx)
	if err != nil {
		return nil, domain.NewInternalError("failed to list tasks", err)
	}

	if leadID != "" {
		filtered := rows[:0]
		for _, t := range rows {
			if containsID(t.LeadIds, leadID) {
				filtered = append(filtered, t)
			}
		}
		rows = filtered
	}

	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i].DueDate, rows[j].DueDate
		switch {
		case a == nil && b == nil:
			return rows[i].CreatedAt.Before(rows[j].CreatedAt)
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return a.Before(*b)
		}
	})

	out := make([]models.TaskResponse, 0, len(rows))
	for _, t := range rows {
		out = append(out, toTaskResponse(t))
	}
	return out, nil
}

// Create inserts a new task for the owner.
func (s *Service) Create(ctx context.Context, ownerID string, req models.TaskCreateRequest) (*models.TaskResponse, error) {
	if ownerID == "" {
		return nil, domain.NewUnauthorizedError("authentication required")
	}

	priority := req.Priority
	if priority == "" {
		priority = task.PriorityMedium.String()
	}

	create := s.db.Task.Create().
		SetOwnerID(ownerID).
		SetTitle(req.Title).
		SetDescription(req.Description).
		SetPriority(task.Priority(priority)).
		SetStatus(task.StatusOpen)

	if req.DueDate != "" {
		due, err := time.Parse(dueDateLayout, req.DueDate)
		if err != nil {
			return nil, domain.NewValidationError("invalid due date", err)
		}
		create.SetDueDate(due)
	}
	if len(req.LeadIDs) > 0 {
		create.SetLeadIds(req.LeadIDs)
	}

	t, err := create.Save(ctx)
	if err != nil {
		return nil, domain.NewInternalError("failed to create task", err)
	}

	s.tasksChanged(ctx)
	resp := toTaskResponse(t)
	return &resp, nil
}

// Update applies a partial update to a task.
func (s *Service) Update(ctx context.Context, ownerID, id string, req models.TaskUpdateRequest) (*models.TaskResponse, error) {
	if ownerID == "" {
		return nil, domain.NewUnauthorizedError("authentication required")
	}

	t, err := s.db.Task.Query().
		Where(task.ID(id), task.OwnerID(ownerID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.NewNotFoundError("task")
		}
		return nil, domain.NewInternalError("failed to get task", err)
	}

	upd := t.Update()
	if req.Title != nil {
		upd.SetTitle(*req.Title)
	}
	if req.Description != nil {
		upd.SetDescription(*req.Description)
	}
	if req.Priority != nil {
		upd.SetPriority(task.Priority(*req.Priority))
	}
	if req.Status != nil {
		upd.SetStatus(task.Status(*req.Status))
	}
	if req.DueDate != nil {
		if *req.DueDate == "" {
			upd.ClearDueDate()
		} else {
			due, err := time.Parse(dueDateLayout, *req.DueDate)
			if err != nil {
				return nil, domain.NewValidationError("invalid due date", err)
			}
			upd.SetDueDate(due)
		}
	}
	if req.LeadIDs != nil {
		upd.SetLeadIds(req.LeadIDs)
	}

	updated, err := upd.Save(ctx)
	if err != nil {
		return nil, domain.NewInternalError("failed to update task", err)
	}

	s.tasksChanged(ctx)
	resp := toTaskResponse(updated)
	return &resp, nil
}

// ToggleComplete flips a task between completed and open.
func (s *Service) ToggleComplete(ctx context.Context, ownerID, id string) (*models.TaskResponse, error) {
	if ownerID == "" {
		return nil, domain.NewUnauthorizedError("authentication required")
	}

	t, err := s.db.Task.Query().
		Where(task.ID(id), task.OwnerID(ownerID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.NewNotFoundError("task")
		}
		return nil, domain.NewInternalError("failed to get task", err)
	}

	next := task.StatusCompleted
	if t.Status == task.StatusCompleted {
		next = task.StatusOpen
	}

	updated, err := t.Update().SetStatus(next).Save(ctx)
	if err != nil {
		return nil, domain.NewInternalError("failed to toggle task", err)
	}

	s.tasksChanged(ctx)
	resp := toTaskResponse(updated)
	return &resp, nil
}

// Delete removes a task.
func (s *Service) Delete(ctx context.Context, ownerID, id string) error {
	if ownerID == "" {
		return domain.NewUnauthorizedError("authentication required")
	}

	n, err := s.db.Task.Delete().
		Where(task.ID(id), task.OwnerID(ownerID)).
		Exec(ctx)
	if err != nil {
		return domain.NewInternalError("failed to delete task", err)
	}
	if n == 0 {
		return domain.NewNotFoundError("task")
	}

	s.tasksChanged(ctx)
	return nil
}

func (s *Service) tasksChanged(ctx context.Context) {
	if s.hub != nil {
		s.hub.Notify(ctx, realtime.CollectionTasks)
	}
}

func containsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func toTaskResponse(t *ent.Task) models.TaskResponse {
	leadIDs := t.LeadIds
	if leadIDs == nil {
		leadIDs = []string{}
	}
	resp := models.TaskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Priority:    t.Priority.String(),
		Status:      t.Status.String(),
		LeadIDs:     leadIDs,
		CreatedAt:   t.CreatedAt.Format(time.RFC3339),
	}
	if t.DueDate != nil {
		resp.DueDate = t.DueDate.Format(dueDateLayout)
	}
	return resp
}
