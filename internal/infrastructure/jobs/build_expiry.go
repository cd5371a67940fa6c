package jobs

import (
	"context"
	"log"
	"time"

	"appforge.backend/internal/infrastructure/repositories"
	"github.com/google/uuid"
)

// BuildExpiryJob marks dispatched builds that never reported back as
// stale, so the dispatch history does not show runs as in-flight forever.
type BuildExpiryJob struct {
	repo     *repositories.BuildRepository
	interval time.Duration
	maxAge   time.Duration
	stop     chan struct{}
}

func NewBuildExpiryJob(repo *repositories.BuildRepository) *BuildExpiryJob {
	return &BuildExpiryJob{
		repo:     repo,
		interval: 5 * time.Minute,
		maxAge:   2 * time.Hour,
		stop:     make(chan struct{}),
	}
}

func (j *BuildExpiryJob) Start(ctx context.Context) {
	log.Println("🕐 Starting build expiry job...")

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("⏹️ Build expiry job stopped (context cancelled)")
			return
		case <-j.stop:
			log.Println("⏹️ Build expiry job stopped")
			return
		case <-ticker.C:
			j.processStaleBuilds(ctx)
		}
	}
}

func (j *BuildExpiryJob) Stop() {
	close(j.stop)
}

func (j *BuildExpiryJob) processStaleBuilds(ctx context.Context) {
	cutoff := time.Now().Add(-j.maxAge)

	stale, err := j.repo.GetDispatchedBefore(ctx, cutoff, 100)
	if err != nil {
		log.Printf("❌ Error fetching stale builds: %v", err)
		return
	}

	if len(stale) == 0 {
		return
	}

	var ids []uuid.UUID
	for _, b := range stale {
		ids = append(ids, b.ID)
	}

	if err := j.repo.MarkStale(ctx, ids); err != nil {
		log.Printf("❌ Error marking builds stale: %v", err)
		return
	}

	log.Printf("✅ Marked %d builds stale", len(stale))
}
