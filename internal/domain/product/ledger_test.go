package product

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "github.com/xiebiao/petstore/pkg/errors"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) Create(ctx context.Context, p *Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *mockRepository) FindByID(ctx context.Context, id uint) (*Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Product), args.Error(1)
}

func (m *mockRepository) List(ctx context.Context, params ListParams) ([]*Product, int64, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*Product), args.Get(1).(int64), args.Error(2)
}

func (m *mockRepository) LockByID(ctx context.Context, id uint) (*Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Product), args.Error(1)
}

func (m *mockRepository) UpdateStock(ctx context.Context, id uint, delta int) error {
	args := m.Called(ctx, id, delta)
	return args.Error(0)
}

func TestLedger_Reserve(t *testing.T) {
	ctx := context.Background()

	t.Run("正常预留扣减库存并返回快照", func(t *testing.T) {
		repo := new(mockRepository)
		repo.On("LockByID", mock.Anything, uint(10)).Return(&Product{
			ID:    10,
			Name:  "猫粮",
			Price: 1999,
			Stock: 5,
		}, nil)
		repo.On("UpdateStock", mock.Anything, uint(10), -2).Return(nil)

		ledger := NewLedger(repo)
		snapshot, err := ledger.Reserve(ctx, 10, 2)

		require.NoError(t, err)
		assert.Equal(t, int64(1999), snapshot.Price, "快照必须保留锁定时的价格")
		assert.Equal(t, 3, snapshot.Stock, "快照库存反映扣减后的值")
		repo.AssertExpectations(t)
	})

	t.Run("库存不足时返回带商品名称的错误", func(t *testing.T) {
		repo := new(mockRepository)
		repo.On("LockByID", mock.Anything, uint(10)).Return(&Product{
			ID:    10,
			Name:  "猫粮",
			Price: 1999,
			Stock: 5,
		}, nil)

		ledger := NewLedger(repo)
		_, err := ledger.Reserve(ctx, 10, 10)

		require.Error(t, err)
		appErr := apperrors.GetAppError(err)
		assert.Equal(t, apperrors.ErrCodeInsufficientStock, appErr.Code)
		assert.Contains(t, appErr.Message, "猫粮", "错误信息应包含商品名称")
		assert.Contains(t, appErr.Message, "5", "错误信息应包含当前库存")
		// 库存不足时绝不能执行扣减
		repo.AssertNotCalled(t, "UpdateStock", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("商品不存在", func(t *testing.T) {
		repo := new(mockRepository)
		repo.On("LockByID", mock.Anything, uint(999)).Return(nil, ErrProductNotFound)

		ledger := NewLedger(repo)
		_, err := ledger.Reserve(ctx, 999, 1)

		assert.ErrorIs(t, err, ErrProductNotFound)
	})

	t.Run("数量必须大于0", func(t *testing.T) {
		repo := new(mockRepository)
		ledger := NewLedger(repo)

		_, err := ledger.Reserve(ctx, 10, 0)
		assert.ErrorIs(t, err, ErrInvalidQuantity)

		_, err = ledger.Reserve(ctx, 10, -1)
		assert.ErrorIs(t, err, ErrInvalidQuantity)

		repo.AssertNotCalled(t, "LockByID", mock.Anything, mock.Anything)
	})
}
