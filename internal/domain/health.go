package domain

import "context"

// Pinger is anything whose reachability is part of the health report.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthStatus struct {
	Status     string            `json:"status"`
	Components map[string]string `json:"components"`
}

type HealthUsecase interface {
	Check(ctx context.Context) HealthStatus
}
