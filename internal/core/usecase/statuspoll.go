package usecase

import (
	"context"

	"github.com/mmgen/minutes-console/internal/core/domain"
	"golang.org/x/time/rate"
)

// PollServerStatus probes the backend until it reports ready or ctx ends.
// The first probe fires immediately; later ones are paced at PollInterval.
// Loading and offline states both reschedule; only ready stops the loop.
func (s *Session) PollServerStatus(ctx context.Context) {
	limiter := rate.NewLimiter(rate.Every(s.cfg.PollInterval), 1)
	for {
		if err := limiter.Wait(ctx); err != nil {
			return
		}

		status := s.probeStatus(ctx)
		s.view.ShowServerStatus(status)
		if status.State == domain.ServerReady {
			s.logger.Info("backend_ready", "message", status.Message)
			return
		}
	}
}
