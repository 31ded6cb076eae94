package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/xiebiao/petstore/pkg/errors"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) Create(ctx context.Context, u *User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *mockRepository) FindByID(ctx context.Context, id uint) (*User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *mockRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func TestRegister_Success(t *testing.T) {
	repo := new(mockRepository)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*user.User")).Return(nil)

	svc := NewService(repo)
	u, err := svc.Register(context.Background(), "alice@example.com", "passw0rd123", "alice")

	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", u.Email)
	assert.NotEqual(t, "passw0rd123", u.Password, "密码必须加密存储")

	// 存储的是可验证的bcrypt哈希
	err = bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("passw0rd123"))
	assert.NoError(t, err)

	repo.AssertExpectations(t)
}

func TestRegister_Validation(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		nickname string
		wantCode int
	}{
		{"邮箱格式错误", "not-an-email", "passw0rd123", "alice", apperrors.ErrCodeInvalidParams},
		{"密码太短", "alice@example.com", "abc1", "alice", apperrors.ErrCodeWeakPassword},
		{"密码缺少数字", "alice@example.com", "onlyletters", "alice", apperrors.ErrCodeWeakPassword},
		{"密码缺少字母", "alice@example.com", "1234567890", "alice", apperrors.ErrCodeWeakPassword},
		{"昵称太短", "alice@example.com", "passw0rd123", "a", apperrors.ErrCodeInvalidParams},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mockRepository)
			svc := NewService(repo)

			_, err := svc.Register(context.Background(), tt.email, tt.password, tt.nickname)

			require.Error(t, err)
			assert.Equal(t, tt.wantCode, apperrors.GetAppError(err).Code)
			repo.AssertNotCalled(t, "Create")
		})
	}
}

func TestLogin(t *testing.T) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("passw0rd123"), bcrypt.MinCost)
	require.NoError(t, err)

	stored := &User{ID: 1, Email: "alice@example.com", Password: string(hashed), Nickname: "alice"}

	t.Run("成功", func(t *testing.T) {
		repo := new(mockRepository)
		repo.On("FindByEmail", mock.Anything, "alice@example.com").Return(stored, nil)

		svc := NewService(repo)
		u, err := svc.Login(context.Background(), "alice@example.com", "passw0rd123")

		require.NoError(t, err)
		assert.Equal(t, uint(1), u.ID)
	})

	t.Run("密码错误", func(t *testing.T) {
		repo := new(mockRepository)
		repo.On("FindByEmail", mock.Anything, "alice@example.com").Return(stored, nil)

		svc := NewService(repo)
		_, err := svc.Login(context.Background(), "alice@example.com", "wrong-password")

		assert.ErrorIs(t, err, apperrors.ErrInvalidPassword)
	})

	t.Run("用户不存在", func(t *testing.T) {
		repo := new(mockRepository)
		repo.On("FindByEmail", mock.Anything, "nobody@example.com").Return(nil, apperrors.ErrUserNotFound)

		svc := NewService(repo)
		_, err := svc.Login(context.Background(), "nobody@example.com", "passw0rd123")

		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	})
}
