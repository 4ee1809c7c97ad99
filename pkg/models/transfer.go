package models

// ImportPreviewResponse represents the first step of the CSV import
// wizard: detected headers, a few sample rows, and the auto-suggested
// column mapping.
type ImportPreviewResponse struct {
	Headers  []string            `json:"headers"`
	Preview  []map[string]string `json:"preview"`
	Mappings map[string]string   `json:"mappings"`
}

// ImportRequest carries the committed column mapping for the final
// import step. Mapping values are lead field names or "ignore".
type ImportRequest struct {
	Mappings     map[string]string `json:"mappings" validate:"required"`
	TargetListID string            `json:"target_list_id"`
}

// ImportResultResponse reports aggregate import counts; per-row error
// detail is not retained.
type ImportResultResponse struct {
	Success int `json:"success"`
	Failed  int `json:"failed"`
}

// ExportRequest selects leads and a file format for export
type ExportRequest struct {
	Format  string   `json:"format" validate:"omitempty,oneof=csv xlsx"`
	LeadIDs []string `json:"lead_ids"`
}

// ExportResponse describes a generated export file
type ExportResponse struct {
	Filename  string `json:"filename"`
	Format    string `json:"format"`
	LeadCount int    `json:"lead_count"`
	FileURL   string `json:"file_url,omitempty"`
}

// CheckoutRequest starts a subscription checkout for a pricing tier
type CheckoutRequest struct {
	Tier string `json:"tier" validate:"required,oneof=starter pro business"`
}

// CheckoutResponse carries the hosted checkout URL
type CheckoutResponse struct {
	SessionID   string `json:"session_id"`
	CheckoutURL string `json:"checkout_url"`
}

// PricingTier represents one public pricing plan
type PricingTier struct {
	Tier         string   `json:"tier"`
	Name         string   `json:"name"`
	PriceMonthly int      `json:"price_monthly"`
	Features     []string `json:"features"`
}
