package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/GitNimay/lumino-crm-vc/ent"
	"github.com/GitNimay/lumino-crm-vc/ent/enttest"
	"github.com/GitNimay/lumino-crm-vc/ent/lead"
	"github.com/GitNimay/lumino-crm-vc/pkg/cache"
	"github.com/alicebob/miniredis/v2"
	_ "github.com/mattn/go-sqlite3"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC)

func setupTest(t *testing.T) (*Service, *ent.Client) {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	t.Cleanup(func() { client.Close() })
	return NewService(client, nil), client
}

func seedLead(t *testing.T, client *ent.Client, stage lead.Stage, status lead.Status, value float64, createdAt time.Time) {
	t.Helper()
	client.Lead.Create().
		SetOwnerID("owner-1").
		SetName("Lead").
		SetCompany("Acme").
		SetValue(value).
		SetStage(stage).
		SetStatus(status).
		SetCreatedAt(createdAt).
		SetLastActivity(createdAt).
		SaveX(context.Background())
}

func TestTrendDelta(t *testing.T) {
	assert.Equal(t, float64(100), trendDelta(5, 0))
	assert.Equal(t, float64(0), trendDelta(0, 0))
	assert.Equal(t, float64(-25), trendDelta(150, 200))
	assert.Equal(t, float64(50), trendDelta(150, 100))
}

func TestStatsEmpty(t *testing.T) {
	svc, _ := setupTest(t)

	stats, err := svc.Stats(context.Background(), "owner-1", now)
	require.NoError(t, err)

	assert.Equal(t, float64(0), stats.TotalLeads.Value)
	assert.Equal(t, float64(0), stats.PipelineValue.Value)
	assert.Equal(t, float64(0), stats.ConversionRate.Value)
	assert.Equal(t, float64(0), stats.ActiveDeals.Value)
	assert.Equal(t, float64(0), stats.TotalLeads.Trend)
}

func TestPipelineValueExcludesLostAndClosed(t *testing.T) {
	svc, client := setupTest(t)

	seedLead(t, client, lead.StageQualified, lead.StatusActive, 1000, now)
	seedLead(t, client, lead.StageLost, lead.StatusClosed, 500, now)
	seedLead(t, client, lead.StageWon, lead.StatusClosed, 900, now)
	seedLead(t, client, lead.StageContacted, lead.StatusCold, 300, now)

	stats, err := svc.Stats(context.Background(), "owner-1", now)
	require.NoError(t, err)

	assert.Equal(t, float64(1000), stats.PipelineValue.Value)
}

func TestConversionRateAllHistory(t *testing.T) {
	svc, client := setupTest(t)

	old := now.AddDate(0, -6, 0)
	seedLead(t, client, lead.StageWon, lead.StatusClosed, 100, old)
	seedLead(t, client, lead.StageWon, lead.StatusClosed, 100, old)
	seedLead(t, client, lead.StageLost, lead.StatusClosed, 100, old)
	seedLead(t, client, lead.StageNew, lead.StatusActive, 100, now)

	stats, err := svc.Stats(context.Background(), "owner-1", now)
	require.NoError(t, err)

	assert.InDelta(t, 66.666, stats.ConversionRate.Value, 0.01)
}

func TestConversionTrendIsPercentagePointDiff(t *testing.T) {
	svc, client := setupTest(t)

	lastMonth := now.AddDate(0, -1, 0)
	// Last month: 1 of 2 closed deals won (50%). This month: 1 of 1 (100%).
	seedLead(t, client, lead.StageWon, lead.StatusClosed, 100, lastMonth)
	seedLead(t, client, lead.StageLost, lead.StatusClosed, 100, lastMonth)
	seedLead(t, client, lead.StageWon, lead.StatusClosed, 100, now)

	stats, err := svc.Stats(context.Background(), "owner-1", now)
	require.NoError(t, err)

	assert.Equal(t, float64(50), stats.ConversionRate.Trend)
}

func TestActiveDealsTrendAliasesLeadsTrend(t *testing.T) {
	svc, client := setupTest(t)

	lastMonth := now.AddDate(0, -1, 0)
	seedLead(t, client, lead.StageNew, lead.StatusActive, 100, lastMonth)
	seedLead(t, client, lead.StageQualified, lead.StatusActive, 100, now)
	seedLead(t, client, lead.StageProposal, lead.StatusActive, 100, now)

	stats, err := svc.Stats(context.Background(), "owner-1", now)
	require.NoError(t, err)

	// 2 created this month vs 1 last month.
	assert.Equal(t, float64(100), stats.TotalLeads.Trend)
	assert.Equal(t, stats.TotalLeads.Trend, stats.ActiveDeals.Trend)
	assert.Equal(t, float64(2), stats.ActiveDeals.Value)
}

func TestTotalLeadsExcludesClosed(t *testing.T) {
	svc, client := setupTest(t)

	seedLead(t, client, lead.StageNew, lead.StatusActive, 100, now)
	seedLead(t, client, lead.StageContacted, lead.StatusCold, 100, now)
	seedLead(t, client, lead.StageWon, lead.StatusClosed, 100, now)

	stats, err := svc.Stats(context.Background(), "owner-1", now)
	require.NoError(t, err)

	assert.Equal(t, float64(2), stats.TotalLeads.Value)
}

func TestStatsCachedInRedis(t *testing.T) {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	t.Cleanup(func() { client.Close() })

	mr := miniredis.RunT(t)
	cacheClient := &cache.Client{Redis: redis.NewClient(&redis.Options{Addr: mr.Addr()})}
	svc := NewService(client, cacheClient)
	ctx := context.Background()

	seedLead(t, client, lead.StageNew, lead.StatusActive, 100, now)

	first, err := svc.Stats(ctx, "owner-1", now)
	require.NoError(t, err)
	assert.Equal(t, float64(1), first.TotalLeads.Value)

	// A direct insert bypasses the invalidation hook, so the cached
	// snapshot is served until the TTL expires.
	seedLead(t, client, lead.StageNew, lead.StatusActive, 100, now)

	second, err := svc.Stats(ctx, "owner-1", now)
	require.NoError(t, err)
	assert.Equal(t, float64(1), second.TotalLeads.Value)

	mr.FastForward(2 * time.Minute)

	third, err := svc.Stats(ctx, "owner-1", now)
	require.NoError(t, err)
	assert.Equal(t, float64(2), third.TotalLeads.Value)
}
