package settings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeRepo struct {
	getFn  func(ctx context.Context) (*Settings, error)
	saveFn func(ctx context.Context, s *Settings) error
}

func (f *fakeRepo) Get(ctx context.Context) (*Settings, error)  { return f.getFn(ctx) }
func (f *fakeRepo) Save(ctx context.Context, s *Settings) error { return f.saveFn(ctx, s) }

func ptr(v float64) *float64 { return &v }

func TestService_Get_DefaultsWhenMissing(t *testing.T) {
	repo := &fakeRepo{
		getFn: func(ctx context.Context) (*Settings, error) { return nil, gorm.ErrRecordNotFound },
	}
	resp, usedDefaults, err := NewService(repo, nil).Get(context.Background())
	assert.NoError(t, err)
	assert.True(t, usedDefaults)
	assert.Zero(t, resp.BaseSalary)
	assert.Zero(t, resp.PerTripRate)
	assert.Zero(t, resp.AbsencePenalty)
}

func TestService_Save(t *testing.T) {
	var saved Settings
	repo := &fakeRepo{
		saveFn: func(ctx context.Context, s *Settings) error { saved = *s; return nil },
	}
	resp, err := NewService(repo, nil).Save(context.Background(), SaveSettingsRequest{
		BaseSalary:     ptr(100),
		PerTripRate:    ptr(20),
		AbsencePenalty: ptr(50),
	})
	assert.NoError(t, err)
	assert.Equal(t, 100.0, saved.BaseSalary)
	assert.Equal(t, 20.0, resp.PerTripRate)
	assert.Equal(t, 50.0, resp.AbsencePenalty)
}

func TestService_Save_RejectsNegative(t *testing.T) {
	_, err := NewService(&fakeRepo{}, nil).Save(context.Background(), SaveSettingsRequest{
		BaseSalary:     ptr(-1),
		PerTripRate:    ptr(20),
		AbsencePenalty: ptr(50),
	})
	assert.ErrorIs(t, err, ErrNegativeAmount)
}
