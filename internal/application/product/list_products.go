package product

import (
	"context"

	"github.com/xiebiao/petstore/internal/domain/product"
)

// ListProductsUseCase 商品列表查询用例
type ListProductsUseCase struct {
	productRepo product.Repository
}

// NewListProductsUseCase 创建列表查询用例
func NewListProductsUseCase(productRepo product.Repository) *ListProductsUseCase {
	return &ListProductsUseCase{productRepo: productRepo}
}

// ListProductsRequest 列表查询请求DTO
type ListProductsRequest struct {
	Page     int
	PageSize int
	Keyword  string
}

// ListProductsResponse 列表查询响应DTO
type ListProductsResponse struct {
	Products []*product.Product
	Total    int64
	Page     int
	PageSize int
}

// Execute 执行列表查询,分页参数越界时回退默认值
func (uc *ListProductsUseCase) Execute(ctx context.Context, req ListProductsRequest) (*ListProductsResponse, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PageSize < 1 {
		req.PageSize = 20
	}
	if req.PageSize > 100 {
		req.PageSize = 100
	}

	products, total, err := uc.productRepo.List(ctx, product.ListParams{
		Page:     req.Page,
		PageSize: req.PageSize,
		Keyword:  req.Keyword,
	})
	if err != nil {
		return nil, err
	}

	return &ListProductsResponse{
		Products: products,
		Total:    total,
		Page:     req.Page,
		PageSize: req.PageSize,
	}, nil
}

// GetProductUseCase 商品详情查询用例
type GetProductUseCase struct {
	productRepo product.Repository
}

// NewGetProductUseCase 创建详情查询用例
func NewGetProductUseCase(productRepo product.Repository) *GetProductUseCase {
	return &GetProductUseCase{productRepo: productRepo}
}

// Execute 按ID查询商品
func (uc *GetProductUseCase) Execute(ctx context.Context, id uint) (*product.Product, error) {
	return uc.productRepo.FindByID(ctx, id)
}
