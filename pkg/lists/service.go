package lists

import (
	"context"
	"time"

	"github.com/GitNimay/lumino-crm-vc/ent"
	"github.com/GitNimay/lumino-crm-vc/ent/list"
	"github.com/GitNimay/lumino-crm-vc/ent/listmembership"
	"github.com/GitNimay/lumino-crm-vc/pkg/domain"
	"github.com/GitNimay/lumino-crm-vc/pkg/models"
	"github.com/GitNimay/lumino-crm-vc/pkg/realtime"
)

// Service handles saved segments and their lead membership.
type Service struct {
	db  *ent.Client
	hub *realtime.Hub
}

func NewService(db *ent.Client, hub *realtime.Hub) *Service {
	return &Service{db: db, hub: hub}
}

// List returns the owner's segments with their lead counts. Counts are
// resolved with a single grouped query instead of one count per list.
func (s *Service) List(ctx context.Context, ownerID string) ([]models.ListResponse, error) {
	if ownerID == "" {
		return nil, domain.NewUnauthorizedError("authentication required")
	}

	rows, err := s.db.List.Query().
		Where(list.OwnerID(ownerID)).
		Order(ent.Desc(list.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, domain.NewInternalError("failed to list segments", err)
	}

	counts, err := s.membershipCounts(ctx, rows)
	if err != nil {
		return nil, err
	}

	out := make([]models.ListResponse, 0, len(rows))
	for _, l := range rows {
		out = append(out, toListResponse(l, counts[l.ID]))
	}
	return out, nil
}

// Create inserts a new segment, optionally seeding its membership.
func (s *Service) Create(ctx context.Context, ownerID string, req models.ListCreateRequest) (*models.ListResponse, error) {
	if ownerID == "" {
		return nil, domain.NewUnauthorizedError("authentication required")
	}

	l, err := s.db.List.Create().
		SetOwnerID(ownerID).
		SetName(req.Name).
		SetDescription(req.Description).
		Save(ctx)
	if err != nil {
		return nil, domain.NewInternalError("failed to create list", err)
	}

	count := 0
	if len(req.LeadIDs) > 0 {
		count, err = s.addMembers(ctx, l.ID, req.LeadIDs)
		if err != nil {
			return nil, err
		}
	}

	s.listsChanged(ctx)
	resp := toListResponse(l, count)
	return &resp, nil
}

// AddLeads attaches leads to a segment. Leads already in the segment
// are skipped, so repeating the call is safe.
func (s *Service) AddLeads(ctx context.Context, ownerID, listID string, leadIDs []string) (*models.ListResponse, error) {
	if ownerID == "" {
		return nil, domain.NewUnauthorizedError("authentication required")
	}

	l, err := s.db.List.Query().
		Where(list.ID(listID), list.OwnerID(ownerID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, domain.NewNotFoundError("list")
		}
		return nil, domain.NewInternalError("failed to get list", err)
	}

	if _, err := s.addMembers(ctx, l.ID, leadIDs); err != nil {
		return nil, err
	}

	total, err := s.db.ListMembership.Query().
		Where(listmembership.ListID(l.ID)).
		Count(ctx)
	if err != nil {
		return nil, domain.NewInternalError("failed to count members", err)
	}

	s.listsChanged(ctx)
	resp := toListResponse(l, total)
	return &resp, nil
}

// RemoveLead detaches a lead from a segment. The lead itself is
// untouched.
func (s *Service) RemoveLead(ctx context.Context, ownerID, listID, leadID string) error {
	if ownerID == "" {
		return domain.NewUnauthorizedError("authentication required")
	}

	exists, err := s.db.List.Query().
		Where(list.ID(listID), list.OwnerID(ownerID)).
		Exist(ctx)
	if err != nil {
		return domain.NewInternalError("failed to check list", err)
	}
	if !exists {
		return domain.NewNotFoundError("list")
	}

	if _, err := s.db.ListMembership.Delete().
		Where(listmembership.ListID(listID), listmembership.LeadID(leadID)).
		Exec(ctx); err != nil {
		return domain.NewInternalError("failed to remove lead from list", err)
	}

	s.listsChanged(ctx)
	return nil
}

// Delete removes a segment and its membership rows. Member leads are
// untouched.
func (s *Service) Delete(ctx context.Context, ownerID, listID string) error {
	if ownerID == "" {
		return domain.NewUnauthorizedError("authentication required")
	}

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return domain.NewInternalError("failed to start transaction", err)
	}

	n, err := tx.List.Delete().
		Where(list.ID(listID), list.OwnerID(ownerID)).
		Exec(ctx)
	if err != nil {
		tx.Rollback()
		return domain.NewInternalError("failed to delete list", err)
	}
	if n == 0 {
		tx.Rollback()
		return domain.NewNotFoundError("list")
	}

	if _, err := tx.ListMembership.Delete().
		Where(listmembership.ListID(listID)).
		Exec(ctx); err != nil {
		tx.Rollback()
		return domain.NewInternalError("failed to delete memberships", err)
	}

	if err := tx.Commit(); err != nil {
		return domain.NewInternalError("failed to commit delete", err)
	}

	s.listsChanged(ctx)
	return nil
}

func (s *Service) addMembers(ctx context.Context, listID string, leadIDs []string) (int, error) {
	existing, err := s.db.ListMembership.Query().
		Where(listmembership.ListID(listID)).
		Select(listmembership.FieldLeadID).
		Strings(ctx)
	if err != nil {
		return 0, domain.NewInternalError("failed to load members", err)
	}

	seen := make(map[string]bool, len(existing))
	for _, id := range existing {
		seen[id] = true
	}

	added := 0
	for _, leadID := range leadIDs {
		if leadID == "" || seen[leadID] {
			continue
		}
		seen[leadID] = true
		_, err := s.db.ListMembership.Create().
			SetListID(listID).
			SetLeadID(leadID).
			Save(ctx)
		if err != nil {
			// A concurrent add can race the existence check; the unique
			// index makes the duplicate harmless.
			if ent.IsConstraintError(err) {
				continue
			}
			return added, domain.NewInternalError("failed to add lead to list", err)
		}
		added++
	}
	return len(existing) + added, nil
}

func (s *Service) membershipCounts(ctx context.Context, rows []*ent.List) (map[string]int, error) {
	counts := make(map[string]int, len(rows))
	if len(rows) == 0 {
		return counts, nil
	}

	ids := make([]string, 0, len(rows))
	for _, l := range rows {
		ids = append(ids, l.ID)
	}

	var grouped []struct {
		ListID string `json:"list_id"`
		Count  int    `json:"count"`
	}
	err := s.db.ListMembership.Query().
		Where(listmembership.ListIDIn(ids...)).
		GroupBy(listmembership.FieldListID).
		Aggregate(ent.Count()).
		Scan(ctx, &grouped)
	if err != nil {
		return nil, domain.NewInternalError("failed to count members", err)
	}

	for _, g := range grouped {
		counts[g.ListID] = g.Count
	}
	return counts, nil
}

func (s *Service) listsChanged(ctx context.Context) {
	if s.hub != nil {
		s.hub.Notify(ctx, realtime.CollectionLists)
	}
}

func toListResponse(l *ent.List, count int) models.ListResponse {
	return models.ListResponse{
		ID:          l.ID,
		Name:        l.Name,
		Description: l.Description,
		LeadCount:   count,
		CreatedAt:   l.CreatedAt.Format(time.RFC3339),
	}
}
