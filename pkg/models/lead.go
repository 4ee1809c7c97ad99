package models

// LeadCreateRequest represents the payload for creating a lead.
// Value accepts either a JSON number or a formatted string such as
// "$12,000"; the service strips formatting before parsing.
type LeadCreateRequest struct {
	Name      string   `json:"name"`
	Company   string   `json:"company"`
	Email     string   `json:"email" validate:"omitempty,email"`
	Phone     string   `json:"phone"`
	Value     any      `json:"value"`
	Stage     string   `json:"stage" validate:"omitempty,oneof=new contacted qualified proposal won lost"`
	Tags      []string `json:"tags"`
	AvatarURL string   `json:"avatar_url"`
}

// LeadUpdateRequest represents a partial field patch for a lead.
// Identifier and creation timestamp are immutable and ignored if sent.
type LeadUpdateRequest struct {
	Name      *string  `json:"name,omitempty"`
	Company   *string  `json:"company,omitempty"`
	Email     *string  `json:"email,omitempty" validate:"omitempty,email"`
	Phone     *string  `json:"phone,omitempty"`
	Value     any      `json:"value,omitempty"`
	Status    *string  `json:"status,omitempty" validate:"omitempty,oneof=active cold closed"`
	Tags      []string `json:"tags,omitempty"`
	AvatarURL *string  `json:"avatar_url,omitempty"`
}

// LeadStageRequest represents a pipeline stage transition.
type LeadStageRequest struct {
	Stage string `json:"stage" validate:"required,oneof=new contacted qualified proposal won lost"`
}

// LeadResponse represents a single lead in API responses
type LeadResponse struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Company      string   `json:"company"`
	Email        string   `json:"email,omitempty"`
	Phone        string   `json:"phone,omitempty"`
	Value        float64  `json:"value"`
	Stage        string   `json:"stage"`
	Status       string   `json:"status"`
	Tags         []string `json:"tags"`
	AvatarURL    string   `json:"avatar_url,omitempty"`
	CreatedAt    string   `json:"created_at"`
	LastActivity string   `json:"last_activity"`
}

// LeadListResponse represents a collection of leads
type LeadListResponse struct {
	Data  []LeadResponse `json:"data"`
	Total int            `json:"total"`
}
