package models

// ListCreateRequest represents the payload for creating a saved segment.
// LeadIDs optionally seeds the membership at creation time.
type ListCreateRequest struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description"`
	LeadIDs     []string `json:"lead_ids"`
}

// ListAddLeadsRequest represents an add-to-list operation
type ListAddLeadsRequest struct {
	LeadIDs []string `json:"lead_ids" validate:"required,min=1"`
}

// ListResponse represents a saved segment with its current lead count
type ListResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	LeadCount   int    `json:"lead_count"`
	CreatedAt   string `json:"created_at"`
}

// ListListResponse represents all saved segments for a user
type ListListResponse struct {
	Data  []ListResponse `json:"data"`
	Total int            `json:"total"`
}
