package product

import (
	"fmt"

	apperrors "github.com/xiebiao/petstore/pkg/errors"
)

// 商品领域错误定义
var (
	// ErrProductNotFound 商品不存在
	ErrProductNotFound = apperrors.New(apperrors.ErrCodeProductNotFound, "商品不存在")

	// ErrInvalidPrice 无效的价格
	ErrInvalidPrice = apperrors.New(apperrors.ErrCodeInvalidParams, "价格不能为负数")

	// ErrInvalidStock 无效的库存
	ErrInvalidStock = apperrors.New(apperrors.ErrCodeInvalidParams, "库存不能为负数")

	// ErrInvalidQuantity 无效的数量
	ErrInvalidQuantity = apperrors.New(apperrors.ErrCodeInvalidParams, "数量必须大于0")

	// ErrInsufficientStock 库存不足(通用,无商品上下文时使用)
	ErrInsufficientStock = apperrors.New(apperrors.ErrCodeInsufficientStock, "库存不足")
)

// NewInsufficientStockError 带商品上下文的库存不足错误
// 错误信息必须包含商品名称和当前库存,供前端直接展示
func NewInsufficientStockError(name string, stock, need int) *apperrors.AppError {
	return apperrors.New(
		apperrors.ErrCodeInsufficientStock,
		fmt.Sprintf("商品《%s》库存不足，当前库存：%d，需要：%d", name, stock, need),
	)
}
