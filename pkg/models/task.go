package models

// TaskCreateRequest represents the payload for creating a task
type TaskCreateRequest struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description"`
	Priority    string   `json:"priority" validate:"omitempty,oneof=low medium high"`
	DueDate     string   `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
	LeadIDs     []string `json:"lead_ids"`
}

// TaskUpdateRequest represents a partial field patch for a task
type TaskUpdateRequest struct {
	Title       *string  `json:"title,omitempty"`
	Description *string  `json:"description,omitempty"`
	Priority    *string  `json:"priority,omitempty" validate:"omitempty,oneof=low medium high"`
	Status      *string  `json:"status,omitempty" validate:"omitempty,oneof=open in_progress completed archived"`
	DueDate     *string  `json:"due_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	LeadIDs     []string `json:"lead_ids,omitempty"`
}

// TaskResponse represents a single task in API responses
type TaskResponse struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Priority    string   `json:"priority"`
	Status      string   `json:"status"`
	DueDate     string   `json:"due_date,omitempty"`
	LeadIDs     []string `json:"lead_ids"`
	CreatedAt   string   `json:"created_at"`
}

// TaskListResponse represents a collection of tasks
type TaskListResponse struct {
	Data  []TaskResponse `json:"data"`
	Total int            `json:"total"`
}
