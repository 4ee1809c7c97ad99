package dashboard

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/GitNimay/lumino-crm-vc/ent"
	"github.com/GitNimay/lumino-crm-vc/ent/lead"
	"github.com/GitNimay/lumino-crm-vc/pkg/cache"
	"github.com/GitNimay/lumino-crm-vc/pkg/domain"
	"github.com/GitNimay/lumino-crm-vc/pkg/models"
)

const statsCacheTTL = 60 * time.Second

// Service computes the headline dashboard metrics. Pure read-side
// projection over the owner's leads; results are cached briefly in
// Redis and invalidated by the lead service on every mutation.
type Service struct {
	db    *ent.Client
	cache *cache.Client
}

func NewService(db *ent.Client, cacheClient *cache.Client) *Service {
	return &Service{db: db, cache: cacheClient}
}

// Stats returns the four KPI metrics with their month-over-month
// trends, computed against now.
func (s *Service) Stats(ctx context.Context, ownerID string, now time.Time) (*models.DashboardStats, error) {
	if ownerID == "" {
		return nil, domain.NewUnauthorizedError("authentication required")
	}

	cacheKey := fmt.Sprintf("dashboard:stats:%s", ownerID)
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, cacheKey); err == nil && cached != "" {
			var stats models.DashboardStats
			if err := json.Unmarshal([]byte(cached), &stats); err == nil {
				return &stats, nil
			}
		}
	}

	rows, err := s.db.Lead.Query().Where(lead.OwnerID(ownerID)).All(ctx)
	if err != nil {
		return nil, domain.NewInternalError("failed to load leads", err)
	}

	stats := compute(rows, now)

	if s.cache != nil {
		if payload, err := json.Marshal(stats); err == nil {
			if err := s.cache.Set(ctx, cacheKey, string(payload), statsCacheTTL); err != nil {
				log.Printf("⚠️ Failed to cache dashboard stats: %v", err)
			}
		}
	}
	return stats, nil
}

func compute(rows []*ent.Lead, now time.Time) *models.DashboardStats {
	thisMonth := monthStart(now)
	lastMonth := thisMonth.AddDate(0, -1, 0)

	var (
		totalLeads    float64
		pipelineValue float64
		activeDeals   float64
		won, lost     float64

		createdCur, createdPrev float64
		valueCur, valuePrev     float64

		wonCur, closedCur   float64
		wonPrev, closedPrev float64
	)

	for _, l := range rows {
		if l.Status != lead.StatusClosed {
			totalLeads++
		}

		inPipeline := l.Status == lead.StatusActive && l.Stage != lead.StageLost
		if inPipeline {
			pipelineValue += l.Value
		}
		if l.Status == lead.StatusActive && isMidFunnel(l.Stage) {
			activeDeals++
		}
		switch l.Stage {
		case lead.StageWon:
			won++
		case lead.StageLost:
			lost++
		}

		// Volume and value trends bucket by creation month.
		switch {
		case inMonth(l.CreatedAt, thisMonth):
			createdCur++
			if inPipeline {
				valueCur += l.Value
			}
		case inMonth(l.CreatedAt, lastMonth):
			createdPrev++
			if inPipeline {
				valuePrev += l.Value
			}
		}

		// The conversion trend buckets by last activity instead, so a
		// deal closed this month counts this month regardless of when
		// it was created.
		if l.Stage == lead.StageWon || l.Stage == lead.StageLost {
			switch {
			case inMonth(l.LastActivity, thisMonth):
				closedCur++
				if l.Stage == lead.StageWon {
					wonCur++
				}
			case inMonth(l.LastActivity, lastMonth):
				closedPrev++
				if l.Stage == lead.StageWon {
					wonPrev++
				}
			}
		}
	}

	conversionRate := 0.0
	if won+lost > 0 {
		conversionRate = won / (won + lost) * 100
	}

	leadsTrend := trendDelta(createdCur, createdPrev)

	return &models.DashboardStats{
		TotalLeads:    models.TrendMetric{Value: totalLeads, Trend: leadsTrend},
		PipelineValue: models.TrendMetric{Value: pipelineValue, Trend: trendDelta(valueCur, valuePrev)},
		ConversionRate: models.TrendMetric{
			Value: conversionRate,
			// Percentage-point difference of the monthly won rates,
			// unlike the relative deltas above.
			Trend: monthlyWonRate(wonCur, closedCur) - monthlyWonRate(wonPrev, closedPrev),
		},
		// The active-deals trend reuses the leads-count trend rather
		// than being computed from the deal subset.
		ActiveDeals: models.TrendMetric{Value: activeDeals, Trend: leadsTrend},
		GeneratedAt: now.Format(time.RFC3339),
	}
}

// trendDelta is the month-over-month relative change. A zero previous
// month maps to +100 when anything happened this month and 0 otherwise.
func trendDelta(current, previous float64) float64 {
	if previous == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}
	return (current - previous) / previous * 100
}

func monthlyWonRate(won, closed float64) float64 {
	if closed == 0 {
		return 0
	}
	return won / closed * 100
}

func isMidFunnel(stage lead.Stage) bool {
	switch stage {
	case lead.StageContacted, lead.StageQualified, lead.StageProposal:
		return true
	}
	return false
}

func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func inMonth(t, start time.Time) bool {
	return t.Year() == start.Year() && t.Month() == start.Month()
}
