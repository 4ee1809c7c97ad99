package jobs

import (
	"context"
	"log"
	"time"

	"github.com/GitNimay/lumino-crm-vc/ent"
	"github.com/GitNimay/lumino-crm-vc/ent/lead"
	"github.com/GitNimay/lumino-crm-vc/ent/list"
	"github.com/GitNimay/lumino-crm-vc/ent/listmembership"
	"github.com/GitNimay/lumino-crm-vc/ent/task"
)

// staleTaskAge is how long a completed task sits before auto-archive.
const staleTaskAge = 30 * 24 * time.Hour

// Maintenance runs periodic consistency sweeps over the data set.
type Maintenance struct {
	db     *ent.Client
	logger *log.Logger
}

func NewMaintenance(db *ent.Client, logger *log.Logger) *Maintenance {
	if logger == nil {
		logger = log.Default()
	}
	return &Maintenance{db: db, logger: logger}
}

// SweepOrphanedMemberships deletes membership rows whose lead or list
// no longer exists. Orphans would silently inflate list counts.
func (m *Maintenance) SweepOrphanedMemberships(ctx context.Context) (int, error) {
	leadIDs, err := m.db.Lead.Query().Select(lead.FieldID).Strings(ctx)
	if err != nil {
		return 0, err
	}
	listIDs, err := m.db.List.Query().Select(list.FieldID).Strings(ctx)
	if err != nil {
		return 0, err
	}

	removed := 0
	if len(leadIDs) == 0 || len(listIDs) == 0 {
		n, err := m.db.ListMembership.Delete().Exec(ctx)
		if err != nil {
			return 0, err
		}
		return n, nil
	}

	n, err := m.db.ListMembership.Delete().
		Where(listmembership.LeadIDNotIn(leadIDs...)).
		Exec(ctx)
	if err != nil {
		return removed, err
	}
	removed += n

	n, err = m.db.ListMembership.Delete().
		Where(listmembership.ListIDNotIn(listIDs...)).
		Exec(ctx)
	if err != nil {
		return removed, err
	}
	removed += n

	return removed, nil
}

// ArchiveStaleTasks moves completed tasks older than 30 days to
// archived so the default task views stay small.
func (m *Maintenance) ArchiveStaleTasks(ctx context.Context) (int, error) {
	cutoff := time.Now().Add(-staleTaskAge)

	return m.db.Task.Update().
		Where(
			task.StatusEQ(task.StatusCompleted),
			task.CreatedAtLT(cutoff),
		).
		SetStatus(task.StatusArchived).
		Save(ctx)
}
