package product

import (
	"context"

	"github.com/xiebiao/petstore/internal/domain/product"
)

// CreateProductUseCase 商品上架用例
type CreateProductUseCase struct {
	productRepo product.Repository
}

// NewCreateProductUseCase 创建上架用例
func NewCreateProductUseCase(productRepo product.Repository) *CreateProductUseCase {
	return &CreateProductUseCase{productRepo: productRepo}
}

// CreateProductRequest 上架请求DTO
type CreateProductRequest struct {
	Name        string // 商品名称
	Description string // 商品描述
	Price       int64  // 价格(分)
	Stock       int    // 初始库存
}

// Execute 执行上架
// 业务规则校验(价格非负、库存非负)由实体工厂负责
func (uc *CreateProductUseCase) Execute(ctx context.Context, req CreateProductRequest) (*product.Product, error) {
	p, err := product.NewProduct(req.Name, req.Description, req.Price, req.Stock)
	if err != nil {
		return nil, err
	}

	if err := uc.productRepo.Create(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}
