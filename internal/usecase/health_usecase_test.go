package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/azkaafiq/consultant-api/internal/domain"
	"github.com/azkaafiq/consultant-api/internal/usecase"

	"github.com/stretchr/testify/assert"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestHealthCheck(t *testing.T) {
	ok := pingFunc(func(context.Context) error { return nil })
	down := pingFunc(func(context.Context) error { return errors.New("refused") })

	t.Run("Should be ok when all components respond", func(t *testing.T) {
		uc := usecase.NewHealthUsecase(map[string]domain.Pinger{"database": ok, "redis": ok}, "database")
		status := uc.Check(context.Background())
		assert.Equal(t, "ok", status.Status)
		assert.Equal(t, map[string]string{"database": "ok", "redis": "ok"}, status.Components)
	})

	t.Run("Should stay ok when an optional component is down", func(t *testing.T) {
		uc := usecase.NewHealthUsecase(map[string]domain.Pinger{"database": ok, "redis": down}, "database")
		status := uc.Check(context.Background())
		assert.Equal(t, "ok", status.Status)
		assert.Equal(t, "unavailable", status.Components["redis"])
	})

	t.Run("Should degrade when a required component is down", func(t *testing.T) {
		uc := usecase.NewHealthUsecase(map[string]domain.Pinger{"database": down}, "database")
		status := uc.Check(context.Background())
		assert.Equal(t, "degraded", status.Status)
	})
}
