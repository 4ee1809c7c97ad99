package jobs

import (
	"context"
	"log"
	"time"

	"github.com/GitNimay/lumino-crm-vc/ent"
	"github.com/robfig/cron/v3"
)

// CronManager manages scheduled jobs
type CronManager struct {
	cron        *cron.Cron
	maintenance *Maintenance
	logger      *log.Logger
}

// NewCronManager creates a new cron manager
func NewCronManager(db *ent.Client, logger *log.Logger) *CronManager {
	if logger == nil {
		logger = log.Default()
	}

	return &CronManager{
		cron:        cron.New(),
		maintenance: NewMaintenance(db, logger),
		logger:      logger,
	}
}

// SetupJobs configures all scheduled jobs
func (cm *CronManager) SetupJobs() error {
	cm.logger.Println("Setting up cron jobs...")

	// Nightly at 3 AM: remove orphaned list memberships
	_, err := cm.cron.AddFunc("0 3 * * *", func() {
		cm.logger.Println("🕐 Running membership sweep job...")

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		removed, err := cm.maintenance.SweepOrphanedMemberships(ctx)
		if err != nil {
			cm.logger.Printf("❌ Membership sweep failed: %v", err)
			return
		}
		cm.logger.Printf("✅ Membership sweep completed, removed %d orphaned rows", removed)
	})
	if err != nil {
		return err
	}

	// Nightly at 4 AM: archive completed tasks older than 30 days
	_, err = cm.cron.AddFunc("0 4 * * *", func() {
		cm.logger.Println("🕐 Running task archive job...")

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		archived, err := cm.maintenance.ArchiveStaleTasks(ctx)
		if err != nil {
			cm.logger.Printf("❌ Task archive failed: %v", err)
			return
		}
		cm.logger.Printf("✅ Task archive completed, archived %d tasks", archived)
	})
	if err != nil {
		return err
	}

	cm.logger.Println("✅ Cron jobs configured successfully")
	cm.logger.Println("  - Nightly at 3 AM: Sweep orphaned list memberships")
	cm.logger.Println("  - Nightly at 4 AM: Archive stale completed tasks")

	return nil
}

// Start starts the cron scheduler
func (cm *CronManager) Start() {
	cm.logger.Println("🚀 Starting cron scheduler...")
	cm.cron.Start()
}

// Stop stops the cron scheduler
func (cm *CronManager) Stop() {
	cm.logger.Println("🛑 Stopping cron scheduler...")
	cm.cron.Stop()
}

// GetMaintenance returns the maintenance worker (for manual triggers)
func (cm *CronManager) GetMaintenance() *Maintenance {
	return cm.maintenance
}
