package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	apporder "github.com/xiebiao/petstore/internal/application/order"
	"github.com/xiebiao/petstore/internal/domain/order"
	"github.com/xiebiao/petstore/internal/interface/http/dto"
	"github.com/xiebiao/petstore/internal/interface/http/middleware"
	"github.com/xiebiao/petstore/pkg/response"
)

// placeOrderMaxAttempts 订单号冲突时的最大尝试次数
// 订单号带毫秒时间戳和随机数,连续撞三次基本不可能,
// 重试只是兜底
const placeOrderMaxAttempts = 3

// OrderHandler 订单HTTP处理器
type OrderHandler struct {
	placeOrderUseCase  *apporder.PlaceOrderUseCase
	getOrderUseCase    *apporder.GetOrderUseCase
	listOrdersUseCase  *apporder.ListOrdersUseCase
	updateOrderUseCase *apporder.UpdateOrderUseCase
	deleteOrderUseCase *apporder.DeleteOrderUseCase
}

// NewOrderHandler 创建订单处理器
func NewOrderHandler(
	placeOrderUseCase *apporder.PlaceOrderUseCase,
	getOrderUseCase *apporder.GetOrderUseCase,
	listOrdersUseCase *apporder.ListOrdersUseCase,
	updateOrderUseCase *apporder.UpdateOrderUseCase,
	deleteOrderUseCase *apporder.DeleteOrderUseCase,
) *OrderHandler {
	return &OrderHandler{
		placeOrderUseCase:  placeOrderUseCase,
		getOrderUseCase:    getOrderUseCase,
		listOrdersUseCase:  listOrdersUseCase,
		updateOrderUseCase: updateOrderUseCase,
		deleteOrderUseCase: deleteOrderUseCase,
	}
}

// PlaceOrder 创建订单
// @Summary      创建订单
// @Description  下单购买商品（需要登录），单事务内完成库存预留与订单落库，悲观锁防止超卖
// @Tags         订单
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.PlaceOrderRequest true "订单信息"
// @Success      200 {object} response.Response{data=dto.OrderResponse} "下单成功"
// @Failure      400 {object} response.Response "参数错误或库存不足"
// @Failure      401 {object} response.Response "未登录"
// @Failure      404 {object} response.Response "商品不存在"
// @Router       /api/v1/orders [post]
func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	var req dto.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}

	userID := middleware.MustGetUserID(c)

	items := make([]apporder.PlaceOrderItem, len(req.Items))
	for i, item := range req.Items {
		items[i] = apporder.PlaceOrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		}
	}

	ucReq := apporder.PlaceOrderRequest{
		UserID:  userID,
		OrderNo: req.OrderNo,
		Status:  req.Status,
		Remark:  req.Remark,
		Items:   items,
	}

	// 订单号冲突重试:只对自动生成的订单号生效,
	// 调用方指定了订单号时冲突原样返回,由调用方决定
	result, err := h.placeOrderUseCase.Execute(c.Request.Context(), ucReq)
	for attempt := 1; err != nil && req.OrderNo == "" &&
		errors.Is(err, order.ErrOrderNoConflict) && attempt < placeOrderMaxAttempts; attempt++ {
		result, err = h.placeOrderUseCase.Execute(c.Request.Context(), ucReq)
	}

	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.ToOrderResponse(result))
}

// GetOrder 订单详情
// @Summary      订单详情
// @Description  按ID查询订单（仅本人可见），优先走缓存
// @Tags         订单
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "订单ID"
// @Success      200 {object} response.Response{data=dto.OrderResponse} "查询成功"
// @Failure      401 {object} response.Response "未登录"
// @Failure      403 {object} response.Response "无权限"
// @Failure      404 {object} response.Response "订单不存在"
// @Router       /api/v1/orders/{id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	orderID, ok := parseOrderID(c)
	if !ok {
		return
	}

	userID := middleware.MustGetUserID(c)

	result, err := h.getOrderUseCase.Execute(c.Request.Context(), orderID, userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.ToOrderResponse(result))
}

// ListOrders 订单列表
// @Summary      订单列表
// @Description  分页查询当前用户的订单
// @Tags         订单
// @Produce      json
// @Security     BearerAuth
// @Param        page query int false "页码" default(1)
// @Param        page_size query int false "每页数量" default(10)
// @Success      200 {object} response.Response "查询成功"
// @Failure      401 {object} response.Response "未登录"
// @Router       /api/v1/orders [get]
func (h *OrderHandler) ListOrders(c *gin.Context) {
	var req dto.ListOrdersRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}

	if req.Page < 1 {
		req.Page = 1
	}
	if req.PageSize < 1 {
		req.PageSize = 10
	}

	userID := middleware.MustGetUserID(c)

	orders, total, err := h.listOrdersUseCase.Execute(c.Request.Context(), userID, req.Page, req.PageSize)
	if err != nil {
		response.Error(c, err)
		return
	}

	list := make([]*dto.OrderResponse, len(orders))
	for i, o := range orders {
		list[i] = dto.ToOrderResponse(o)
	}

	response.SuccessWithPage(c, list, total, req.Page, req.PageSize)
}

// UpdateOrder 更新订单
// @Summary      更新订单
// @Description  更新订单状态或备注（仅本人），状态变更需符合状态机
// @Tags         订单
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "订单ID"
// @Param        request body dto.UpdateOrderRequest true "更新内容"
// @Success      200 {object} response.Response{data=dto.OrderResponse} "更新成功"
// @Failure      400 {object} response.Response "非法状态流转"
// @Failure      401 {object} response.Response "未登录"
// @Failure      403 {object} response.Response "无权限"
// @Failure      404 {object} response.Response "订单不存在"
// @Router       /api/v1/orders/{id} [patch]
func (h *OrderHandler) UpdateOrder(c *gin.Context) {
	orderID, ok := parseOrderID(c)
	if !ok {
		return
	}

	var req dto.UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, 40900, "参数错误: "+err.Error())
		return
	}

	userID := middleware.MustGetUserID(c)

	result, err := h.updateOrderUseCase.Execute(c.Request.Context(), apporder.UpdateOrderRequest{
		OrderID: orderID,
		UserID:  userID,
		Status:  req.Status,
		Remark:  req.Remark,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.ToOrderResponse(result))
}

// DeleteOrder 删除订单
// @Summary      删除订单
// @Description  删除订单及其明细（仅本人），不回补库存
// @Tags         订单
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "订单ID"
// @Success      200 {object} response.Response "删除成功"
// @Failure      401 {object} response.Response "未登录"
// @Failure      403 {object} response.Response "无权限"
// @Failure      404 {object} response.Response "订单不存在"
// @Router       /api/v1/orders/{id} [delete]
func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	orderID, ok := parseOrderID(c)
	if !ok {
		return
	}

	userID := middleware.MustGetUserID(c)

	if err := h.deleteOrderUseCase.Execute(c.Request.Context(), orderID, userID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, nil)
}

// parseOrderID 解析路径参数中的订单ID
func parseOrderID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.ErrorWithCode(c, 40900, "无效的订单ID")
		return 0, false
	}
	return uint(id), true
}
