package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestParseStatus 状态字符串解析,空串默认pending
func TestParseStatus(t *testing.T) {
	tests := []struct {
		input   string
		want    Status
		wantErr bool
	}{
		{"", StatusPending, false},
		{"pending", StatusPending, false},
		{"paid", StatusPaid, false},
		{"shipped", StatusShipped, false},
		{"delivered", StatusDelivered, false},
		{"cancelled", StatusCancelled, false},
		{"unknown", 0, true},
		{"PAID", 0, true}, // 大小写敏感
	}

	for _, tt := range tests {
		t.Run("input="+tt.input, func(t *testing.T) {
			got, err := ParseStatus(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidStatus)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestStatus_String 状态对外序列化为字符串
func TestStatus_String(t *testing.T) {
	assert.Equal(t, "pending", StatusPending.String())
	assert.Equal(t, "cancelled", StatusCancelled.String())
	assert.Equal(t, "unknown", Status(99).String())
}

// TestOrder_Transitions 状态机:只允许合法流转
func TestOrder_Transitions(t *testing.T) {
	t.Run("待支付可以支付或取消", func(t *testing.T) {
		o := &Order{Status: StatusPending}
		assert.True(t, o.CanTransitionTo(StatusPaid))
		assert.True(t, o.CanTransitionTo(StatusCancelled))
		assert.False(t, o.CanTransitionTo(StatusDelivered))
	})

	t.Run("终态不允许任何流转", func(t *testing.T) {
		o := &Order{Status: StatusDelivered}
		assert.False(t, o.CanTransitionTo(StatusPending))
		assert.False(t, o.CanTransitionTo(StatusCancelled))

		o = &Order{Status: StatusCancelled}
		assert.False(t, o.CanTransitionTo(StatusPaid))
	})

	t.Run("TransitionTo拒绝非法流转并保持原状态", func(t *testing.T) {
		o := &Order{Status: StatusPending}

		err := o.TransitionTo(StatusDelivered)
		assert.ErrorIs(t, err, ErrInvalidStatusTransition)
		assert.Equal(t, StatusPending, o.Status)

		err = o.TransitionTo(StatusPaid)
		assert.NoError(t, err)
		assert.Equal(t, StatusPaid, o.Status)
	})
}

// TestOrder_IsOwnedBy 订单归属校验
func TestOrder_IsOwnedBy(t *testing.T) {
	o := &Order{UserID: 7}
	assert.True(t, o.IsOwnedBy(7))
	assert.False(t, o.IsOwnedBy(8))
}
