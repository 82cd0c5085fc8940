package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/brigere/shield-api/internal/auth/domain"
	apperror "github.com/brigere/shield-api/internal/errors"
	"github.com/brigere/shield-api/internal/mocks"
	"github.com/brigere/shield-api/internal/user/service"
	"github.com/golang/mock/gomock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserService(t *testing.T) (*service.UserService, *mocks.MockUserReader) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := mocks.NewMockUserReader(ctrl)

	return service.NewUserService(mockRepo, zerolog.Nop()), mockRepo
}

func TestUserService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("passes limit and skip through", func(t *testing.T) {
		svc, mockRepo := newUserService(t)
		expected := []domain.User{{ID: 1, Email: "a@x.com"}, {ID: 2, Email: "b@x.com"}}

		mockRepo.EXPECT().List(gomock.Any(), 25, 50).Return(expected, nil)

		users, err := svc.List(ctx, 25, 50)
		require.NoError(t, err)
		assert.Equal(t, expected, users)
	})

	t.Run("zero limit falls back to the default page size", func(t *testing.T) {
		svc, mockRepo := newUserService(t)

		mockRepo.EXPECT().List(gomock.Any(), service.DefaultListLimit, 0).Return([]domain.User{}, nil)

		_, err := svc.List(ctx, 0, 0)
		require.NoError(t, err)
	})

	t.Run("oversized limit is clamped", func(t *testing.T) {
		svc, mockRepo := newUserService(t)

		mockRepo.EXPECT().List(gomock.Any(), service.MaxListLimit, 0).Return([]domain.User{}, nil)

		_, err := svc.List(ctx, 10000, -5)
		require.NoError(t, err)
	})

	t.Run("propagates store failure", func(t *testing.T) {
		svc, mockRepo := newUserService(t)

		mockRepo.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("connection refused"))

		_, err := svc.List(ctx, 10, 0)
		assert.Error(t, err)
	})
}

func TestUserService_Profile(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the user", func(t *testing.T) {
		svc, mockRepo := newUserService(t)
		now := time.Now()
		expected := &domain.User{ID: 1, Email: "a@x.com", CreatedAt: now, UpdatedAt: now}

		mockRepo.EXPECT().GetByID(gomock.Any(), 1).Return(expected, nil)

		user, err := svc.Profile(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, expected, user)
	})

	t.Run("missing user maps to not found", func(t *testing.T) {
		svc, mockRepo := newUserService(t)

		mockRepo.EXPECT().GetByID(gomock.Any(), 99).Return(nil, nil)

		_, err := svc.Profile(ctx, 99)
		assert.ErrorIs(t, err, apperror.ErrUserNotFound)
	})
}
