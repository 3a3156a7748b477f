package usecase

import (
	"context"

	"github.com/azkaafiq/consultant-api/internal/domain"
)

type healthUsecase struct {
	components map[string]domain.Pinger
	required   map[string]bool
}

// NewHealthUsecase checks every component; only required ones can make the status degraded.
func NewHealthUsecase(components map[string]domain.Pinger, required ...string) domain.HealthUsecase {
	req := make(map[string]bool, len(required))
	for _, name := range required {
		req[name] = true
	}
	return &healthUsecase{components: components, required: req}
}

func (u *healthUsecase) Check(ctx context.Context) domain.HealthStatus {
	status := domain.HealthStatus{Status: "ok", Components: map[string]string{}}
	for name, p := range u.components {
		if err := p.Ping(ctx); err != nil {
			status.Components[name] = "unavailable"
			if u.required[name] {
				status.Status = "degraded"
			}
			continue
		}
		status.Components[name] = "ok"
	}
	return status
}
