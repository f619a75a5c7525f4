package service

import (
	"StuffKeeper/internal/identity"
	"StuffKeeper/internal/model"
	"StuffKeeper/internal/repo"
	"context"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/mock"
)

// мок для repo.Repository[R]
type mockRepo[R any] struct{ mock.Mock }

func (m *mockRepo[R]) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockRepo[R]) ListPage(ctx context.Context, offset, limit int) ([]R, error) {
	args := m.Called(ctx, offset, limit)
	if v, ok := args.Get(0).([]R); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepo[R]) CountMatching(ctx context.Context, term string) (int64, error) {
	args := m.Called(ctx, term)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockRepo[R]) ListMatching(ctx context.Context, term string) ([]R, error) {
	args := m.Called(ctx, term)
	if v, ok := args.Get(0).([]R); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepo[R]) GetByID(ctx context.Context, id string) (*R, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*R); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepo[R]) Create(ctx context.Context, rec *R) error { return m.Called(ctx, rec).Error(0) }
func (m *mockRepo[R]) Save(ctx context.Context, rec *R) error   { return m.Called(ctx, rec).Error(0) }
func (m *mockRepo[R]) Delete(ctx context.Context, rec *R) error { return m.Called(ctx, rec).Error(0) }

var (
	_ repo.Repository[model.User]  = (*mockRepo[model.User])(nil)
	_ repo.Repository[model.Stuff] = (*mockRepo[model.Stuff])(nil)
)

type mockResolver struct{ mock.Mock }

func (m *mockResolver) Resolve(ctx context.Context, credential, operation string) (identity.Identity, error) {
	args := m.Called(ctx, credential, operation)
	return args.Get(0).(identity.Identity), args.Error(1)
}

var fixedNow = time.Date(2024, 5, 17, 8, 30, 0, 0, time.UTC)

func mockClock() *clock.Mock {
	c := clock.NewMock()
	c.Set(fixedNow)
	return c
}

func withToken(token string) context.Context {
	return identity.WithCredential(context.Background(), token)
}
