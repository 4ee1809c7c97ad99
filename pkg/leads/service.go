package leads

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/GitNimay/lumino-crm-vc/ent"
	"github.com/GitNimay/lumino-crm-vc/ent/lead"
	"github.com/GitNimay/lumino-crm-vc/ent/listmembership"
	"github.com/GitNimay/lumino-crm-vc/ent/task"
	"github.com/GitNimay/lumino-crm-vc/pkg/cache"
	"github.com/GitNimay/lumino-crm-vc/pkg/domain"
	"github.com/GitNimay/lumino-crm-vc/pkg/models"
	"github.com/GitNimay/lumino-crm-vc/pkg/phone"
	"github.com/GitNimay/lumino-crm-vc/pkg/realtime"
)

const (
	defaultLeadName    = "Unknown Lead"
	defaultCompanyName = "Unknown Company"
)

// Service handles lead CRUD and stage transitions.
type Service struct {
	db    *ent.Client
	cache *cache.Client
	hub   *realtime.Hub
}

func NewService(db *ent.Client, cacheClient *cache.Client, hub *realtime.Hub) *Service {
	return &Service{db: db, cache: cacheClient, hub: hub}
}

// List returns the owner's leads ordered by most recent activity.
// When listID is set, only leads belonging to that list are returned.
func (s *Service) List(ctx context.Context, ownerID, listID string) ([]models.LeadResponse, error) {
	if ownerID == "" {
		return nil, domain.NewUnauthorizedError("authentication required")
	}

	query := s.db.Lead.Query().Where(lead.OwnerID(ownerID))

	if listID != "" {
		leadIDs, err := s.db.ListMembership.Query().
			Where(listmembership.ListID(listID)).
			Select(listmembership.FieldLeadID).
			Strings(ctx)
		if err != nil {
			return nil, domain.NewInternalError("failed to load list members", err)
		}
		if len(leadIDs) == 0 {
			return []models.LeadResponse{}, nil
		}
		query = query.Where(lead.IDIn(leadIDs...))
	}

	rows, err := query.Order(ent.Desc(lead.FieldLastActivity)).All(ctx)
	if err != nil {
		return nil, domain.NewInternalError("failed to list leads", err)
	}

	out := make([]models.LeadResponse, 0, len(rows))
	for _, l := range rows {
		out = append(out, toLeadResponse(l))
	}
	return out, nil
}

// Get returns a single lead scoped to its owner.
func (s *Service) Get(ctx context.Context, ownerID, id string) (*models.LeadResponse, error) {
	if ownerID == "" {
		return nil, domain.NewUnauthorizedError("authentication required")
	}

	l, err := s.db.Lead.Query().
		Where(lead.ID(id), lead.OwnerID(ownerID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.NewNotFoundError("lead")
		}
		return nil, domain.NewInternalError("failed to get lead", err)
	}

	resp := toLeadResponse(l)
	return &resp, nil
}

// Create inserts a new lead. Missing name and company fall back to
// placeholder values so partial imports still produce usable records.
func (s *Service) Create(ctx context.Context, ownerID string, req models.LeadCreateRequest) (*models.LeadResponse, error) {
	if ownerID == "" {
		return nil, domain.NewUnauthorizedError("authentication required")
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = defaultLeadName
	}
	company := strings.TrimSpace(req.Company)
	if company == "" {
		company = defaultCompanyName
	}

	stage := req.Stage
	if stage == "" {
		stage = lead.StageNew.String()
	}

	create := s.db.Lead.Create().
		SetOwnerID(ownerID).
		SetName(name).
		SetCompany(company).
		SetEmail(strings.TrimSpace(req.Email)).
		SetPhone(phone.Normalize(req.Phone)).
		SetValue(NormalizeValue(req.Value)).
		SetStage(lead.Stage(stage)).
		SetStatus(lead.Status(statusForStage(stage)))

	if req.AvatarURL != "" {
		create.SetAvatarURL(req.AvatarURL)
	}
	if len(req.Tags) > 0 {
		create.SetTags(req.Tags)
	}

	l, err := create.Save(ctx)
	if err != nil {
		return nil, domain.NewInternalError("failed to create lead", err)
	}

	s.leadsChanged(ctx, ownerID)
	resp := toLeadResponse(l)
	return &resp, nil
}

// Update applies a partial update. Ownership and creation time are
// immutable; stage changes go through UpdateStage so status stays
// consistent.
func (s *Service) Update(ctx context.Context, ownerID, id string, req models.LeadUpdateRequest) (*models.LeadResponse, error) {
	if ownerID == "" {
		return nil, domain.NewUnauthorizedError("authentication required")
	}

	l, err := s.db.Lead.Query().
		Where(lead.ID(id), lead.OwnerID(ownerID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.NewNotFoundError("lead")
		}
		return nil, domain.NewInternalError("failed to get lead", err)
	}

	upd := l.Update().SetLastActivity(time.Now())
	if req.Name != nil {
		upd.SetName(*req.Name)
	}
	if req.Company != nil {
		upd.SetCompany(*req.Company)
	}
	if req.Email != nil {
		upd.SetEmail(strings.TrimSpace(*req.Email))
	}
	if req.Phone != nil {
		upd.SetPhone(phone.Normalize(*req.Phone))
	}
	if req.AvatarURL != nil {
		upd.SetAvatarURL(*req.AvatarURL)
	}
	if req.Value != nil {
		upd.SetValue(NormalizeValue(req.Value))
	}
	if req.Status != nil {
		upd.SetStatus(lead.Status(*req.Status))
	}
	if req.Tags != nil {
		upd.SetTags(req.Tags)
	}

	updated, err := upd.Save(ctx)
	if err != nil {
		return nil, domain.NewInternalError("failed to update lead", err)
	}

	s.leadsChanged(ctx, ownerID)
	resp := toLeadResponse(updated)
	return &resp, nil
}

// UpdateStage moves a lead to a new pipeline stage and derives the
// matching status: won and lost close the deal, every other stage
// reactivates it.
func (s *Service) UpdateStage(ctx context.Context, ownerID, id, stage string) (*models.LeadResponse, error) {
	if ownerID == "" {
		return nil, domain.NewUnauthorizedError("authentication required")
	}

	l, err := s.db.Lead.Query().
		Where(lead.ID(id), lead.OwnerID(ownerID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.NewNotFoundError("lead")
		}
		return nil, domain.NewInternalError("failed to get lead", err)
	}

	updated, err := l.Update().
		SetStage(lead.Stage(stage)).
		SetStatus(lead.Status(statusForStage(stage))).
		SetLastActivity(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, domain.NewInternalError("failed to update lead stage", err)
	}

	s.leadsChanged(ctx, ownerID)
	resp := toLeadResponse(updated)
	return &resp, nil
}

// Delete removes a lead along with its list memberships and detaches
// it from any tasks that reference it.
func (s *Service) Delete(ctx context.Context, ownerID, id string) error {
	if ownerID == "" {
		return domain.NewUnauthorizedError("authentication required")
	}

	exists, err := s.db.Lead.Query().
		Where(lead.ID(id), lead.OwnerID(ownerID)).
		Exist(ctx)
	if err != nil {
		return domain.NewInternalError("failed to check lead", err)
	}
	if !exists {
		return domain.NewNotFoundError("lead")
	}

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return domain.NewInternalError("failed to start transaction", err)
	}

	if _, err := tx.ListMembership.Delete().
		Where(listmembership.LeadID(id)).
		Exec(ctx); err != nil {
		tx.Rollback()
		return domain.NewInternalError("failed to remove list memberships", err)
	}

	// lead_ids is a JSON column, so referencing tasks are filtered in
	// memory rather than with a JSON predicate.
	tasks, err := tx.Task.Query().Where(task.OwnerID(ownerID)).All(ctx)
	if err != nil {
		tx.Rollback()
		return domain.NewInternalError("failed to load tasks", err)
	}
	for _, t := range tasks {
		trimmed, changed := removeID(t.LeadIds, id)
		if !changed {
			continue
		}
		if _, err := t.Update().SetLeadIds(trimmed).Save(ctx); err != nil {
			tx.Rollback()
			return domain.NewInternalError("failed to detach lead from task", err)
		}
	}

	if _, err := tx.Lead.Delete().
		Where(lead.ID(id), lead.OwnerID(ownerID)).
		Exec(ctx); err != nil {
		tx.Rollback()
		return domain.NewInternalError("failed to delete lead", err)
	}

	if err := tx.Commit(); err != nil {
		return domain.NewInternalError("failed to commit delete", err)
	}

	s.leadsChanged(ctx, ownerID)
	return nil
}

// NormalizeValue coerces the flexible value field into a non-negative
// amount. Strings are stripped of currency symbols and separators
// before parsing; anything unparsable becomes zero.
func NormalizeValue(v any) float64 {
	var f float64
	switch val := v.(type) {
	case nil:
		return 0
	case float64:
		f = val
	case int:
		f = float64(val)
	case int64:
		f = float64(val)
	case string:
		var b strings.Builder
		for _, r := range val {
			if (r >= '0' && r <= '9') || r == '.' || r == '-' {
				b.WriteRune(r)
			}
		}
		parsed, err := strconv.ParseFloat(b.String(), 64)
		if err != nil {
			return 0
		}
		f = parsed
	default:
		return 0
	}
	if f < 0 {
		return 0
	}
	return f
}

func statusForStage(stage string) string {
	switch stage {
	case lead.StageWon.String(), lead.StageLost.String():
		return lead.StatusClosed.String()
	default:
		return lead.StatusActive.String()
	}
}

func removeID(ids []string, id string) ([]string, bool) {
	out := ids[:0:0]
	changed := false
	for _, v := range ids {
		if v == id {
			changed = true
			continue
		}
		out = append(out, v)
	}
	return out, changed
}

func (s *Service) leadsChanged(ctx context.Context, ownerID string) {
	if s.cache != nil {
		key := fmt.Sprintf("dashboard:stats:%s", ownerID)
		if err := s.cache.Delete(ctx, key); err != nil {
			log.Printf("⚠️ Failed to invalidate dashboard cache: %v", err)
		}
	}
	if s.hub != nil {
		s.hub.Notify(ctx, realtime.CollectionLeads)
	}
}

func toLeadResponse(l *ent.Lead) models.LeadResponse {
	tags := l.Tags
	if tags == nil {
		tags = []string{}
	}
	return models.LeadResponse{
		ID:           l.ID,
		Name:         l.Name,
		Company:      l.Company,
		Email:        l.Email,
		Phone:        l.Phone,
		AvatarURL:    l.AvatarURL,
		Value:        l.Value,
		Stage:        l.Stage.String(),
		Status:       l.Status.String(),
		Tags:         tags,
		CreatedAt:    l.CreatedAt.Format(time.RFC3339),
		LastActivity: l.LastActivity.Format(time.RFC3339),
	}
}
