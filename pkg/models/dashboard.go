package models

// TrendMetric pairs a headline value with its trailing-month delta.
// Delta is a relative percentage for most metrics; the conversion-rate
// trend is a percentage-point difference instead.
type TrendMetric struct {
	Value float64 `json:"value"`
	Trend float64 `json:"trend"`
}

// DashboardStats represents the headline dashboard metrics
type DashboardStats struct {
	TotalLeads     TrendMetric `json:"total_leads"`
	PipelineValue  TrendMetric `json:"pipeline_value"`
	ConversionRate TrendMetric `json:"conversion_rate"`
	ActiveDeals    TrendMetric `json:"active_deals"`
	GeneratedAt    string      `json:"generated_at"`
}

// StageSummary represents one pipeline board column
type StageSummary struct {
	Stage      string         `json:"stage"`
	LeadCount  int            `json:"lead_count"`
	TotalValue float64        `json:"total_value"`
	Leads      []LeadResponse `json:"leads"`
}

// PipelineBoardResponse represents the full kanban board, one column
// per stage in pipeline order, empty columns included.
type PipelineBoardResponse struct {
	Stages []StageSummary `json:"stages"`
}
