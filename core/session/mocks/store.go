package mocks

import (
	"context"

	"redelex-panel/core/session"

	"github.com/stretchr/testify/mock"
)

// Store is a mock implementation of session.Store
type Store struct {
	mock.Mock
}

func (m *Store) Save(ctx context.Context, token string, user session.User) error {
	args := m.Called(ctx, token, user)
	return args.Error(0)
}

func (m *Store) Load(ctx context.Context, token string) (*session.User, error) {
	args := m.Called(ctx, token)
	if u, ok := args.Get(0).(*session.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Store) Delete(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}
