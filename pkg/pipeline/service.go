package pipeline

import (
	"context"

	"github.com/GitNimay/lumino-crm-vc/ent"
	"github.com/GitNimay/lumino-crm-vc/ent/lead"
	"github.com/GitNimay/lumino-crm-vc/pkg/domain"
	"github.com/GitNimay/lumino-crm-vc/pkg/leads"
	"github.com/GitNimay/lumino-crm-vc/pkg/models"
)

// stageOrder is the fixed kanban column order.
var stageOrder = []lead.Stage{
	lead.StageNew,
	lead.StageContacted,
	lead.StageQualified,
	lead.StageProposal,
	lead.StageWon,
	lead.StageLost,
}

// Service builds the kanban board view and moves leads between stages.
type Service struct {
	db    *ent.Client
	leads *leads.Service
}

func NewService(db *ent.Client, leadService *leads.Service) *Service {
	return &Service{db: db, leads: leadService}
}

// Board returns one column per pipeline stage in fixed order. Stages
// with no leads still appear as empty columns, and won/lost leads stay
// on the board.
func (s *Service) Board(ctx context.Context, ownerID string) (*models.PipelineBoardResponse, error) {
	if ownerID == "" {
		return nil, domain.NewUnauthorizedError("authentication required")
	}

	rows, err := s.leads.List(ctx, ownerID, "")
	if err != nil {
		return nil, err
	}

	byStage := make(map[string][]models.LeadResponse, len(stageOrder))
	for _, l := range rows {
		byStage[l.Stage] = append(byStage[l.Stage], l)
	}

	board := &models.PipelineBoardResponse{
		Stages: make([]models.StageSummary, 0, len(stageOrder)),
	}
	for _, stage := range stageOrder {
		column := byStage[stage.String()]
		if column == nil {
			column = []models.LeadResponse{}
		}
		total := 0.0
		for _, l := range column {
			total += l.Value
		}
		board.Stages = append(board.Stages, models.StageSummary{
			Stage:      stage.String(),
			LeadCount:  len(column),
			TotalValue: total,
			Leads:      column,
		})
	}
	return board, nil
}

// MoveLead drags a lead to another column. Status derivation happens
// in the lead service so board moves and direct stage updates behave
// the same.
func (s *Service) MoveLead(ctx context.Context, ownerID, leadID, stage string) (*models.LeadResponse, error) {
	return s.leads.UpdateStage(ctx, ownerID, leadID, stage)
}
