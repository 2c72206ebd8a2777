package usecase

import "context"

type HealthUsecase interface {
	Check(ctx context.Context) map[string]string
}

// HealthProbe reports whether an optional dependency answers.
type HealthProbe func(ctx context.Context) error

type healthUsecase struct {
	scriptID string
	redis    HealthProbe
}

// NewHealthUsecase creates the health usecase. redis may be nil when no
// Redis is configured.
func NewHealthUsecase(scriptID string, redis HealthProbe) HealthUsecase {
	return &healthUsecase{
		scriptID: scriptID,
		redis:    redis,
	}
}

func (u *healthUsecase) Check(ctx context.Context) map[string]string {
	status := map[string]string{
		"status":     "ok",
		"script_id":  u.scriptID,
		"rate_limit": "memory",
	}
	if u.redis != nil && u.redis(ctx) == nil {
		status["rate_limit"] = "redis"
	}
	return status
}
