package pipeline

import (
	"context"
	"testing"

	"github.com/GitNimay/lumino-crm-vc/ent/enttest"
	"github.com/GitNimay/lumino-crm-vc/pkg/leads"
	"github.com/GitNimay/lumino-crm-vc/pkg/models"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTest(t *testing.T) *Service {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	t.Cleanup(func() { client.Close() })
	leadService := leads.NewService(client, nil, nil)
	return NewService(client, leadService)
}

func TestBoardHasAllStagesInOrder(t *testing.T) {
	svc := setupTest(t)
	ctx := context.Background()

	board, err := svc.Board(ctx, "owner-1")
	require.NoError(t, err)
	require.Len(t, board.Stages, 6)

	want := []string{"new", "contacted", "qualified", "proposal", "won", "lost"}
	for i, col := range board.Stages {
		assert.Equal(t, want[i], col.Stage)
		assert.Equal(t, 0, col.LeadCount)
		assert.NotNil(t, col.Leads)
	}
}

func TestBoardGroupsAndSums(t *testing.T) {
	svc := setupTest(t)
	ctx := context.Background()

	_, err := svc.leads.Create(ctx, "owner-1", models.LeadCreateRequest{
		Name: "New A", Company: "A", Value: float64(100),
	})
	require.NoError(t, err)
	_, err = svc.leads.Create(ctx, "owner-1", models.LeadCreateRequest{
		Name: "New B", Company: "B", Value: float64(250),
	})
	require.NoError(t, err)
	_, err = svc.leads.Create(ctx, "owner-1", models.LeadCreateRequest{
		Name: "Closed", Company: "C", Value: float64(900), Stage: "won",
	})
	require.NoError(t, err)

	board, err := svc.Board(ctx, "owner-1")
	require.NoError(t, err)

	newCol := board.Stages[0]
	assert.Equal(t, 2, newCol.LeadCount)
	assert.Equal(t, float64(350), newCol.TotalValue)

	wonCol := board.Stages[4]
	assert.Equal(t, 1, wonCol.LeadCount)
	assert.Equal(t, float64(900), wonCol.TotalValue)
}

func TestMoveLeadUpdatesStageAndStatus(t *testing.T) {
	svc := setupTest(t)
	ctx := context.Background()

	lead, err := svc.leads.Create(ctx, "owner-1", models.LeadCreateRequest{
		Name: "Deal", Company: "A",
	})
	require.NoError(t, err)

	moved, err := svc.MoveLead(ctx, "owner-1", lead.ID, "won")
	require.NoError(t, err)
	assert.Equal(t, "won", moved.Stage)
	assert.Equal(t, "closed", moved.Status)
}
