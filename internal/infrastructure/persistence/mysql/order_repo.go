package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/petstore/internal/domain/order"
	apperrors "github.com/xiebiao/petstore/pkg/errors"
)

// orderRepository 订单仓储实现(MySQL)
// 1. Order和OrderItem是聚合关系,必须一起保存
// 2. 写入不依赖ORM级联:先写订单头拿到自增ID,
//    再带着订单ID逐条写明细,两步都在调用方的事务里
// 3. 查询使用Preload预加载明细,避免N+1问题
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository 创建订单仓储
func NewOrderRepository(db *gorm.DB) order.Repository {
	return &orderRepository{db: db}
}

// Create 创建订单(订单头+明细,两次显式写入)
// 必须在事务中调用;订单号撞上唯一索引时返回ErrOrderNoConflict
func (r *orderRepository) Create(ctx context.Context, o *order.Order) error {
	db := getDB(ctx, r.db)

	// 1. 订单头:不带Items,避免GORM级联写入
	header := &OrderModel{
		OrderNo: o.OrderNo,
		UserID:  o.UserID,
		Total:   o.Total,
		Status:  int(o.Status),
		Remark:  o.Remark,
	}
	if err := db.Create(header).Error; err != nil {
		if isDuplicateError(err) {
			return order.ErrOrderNoConflict
		}
		return apperrors.Wrap(err, "创建订单失败")
	}

	// 2. 明细:带着订单头的自增ID落库
	if len(o.Items) > 0 {
		itemModels := make([]OrderItemModel, len(o.Items))
		for i, item := range o.Items {
			itemModels[i] = OrderItemModel{
				OrderID:   header.ID,
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				Price:     item.Price,
				Subtotal:  item.Subtotal,
			}
		}
		if err := db.Create(&itemModels).Error; err != nil {
			return apperrors.Wrap(err, "创建订单明细失败")
		}
		for i := range o.Items {
			o.Items[i].ID = itemModels[i].ID
			o.Items[i].OrderID = header.ID
		}
	}

	// 3. 回填自增ID与时间戳
	o.ID = header.ID
	o.CreatedAt = header.CreatedAt
	o.UpdatedAt = header.UpdatedAt
	return nil
}

// FindByID 根据ID查找订单(含明细)
func (r *orderRepository) FindByID(ctx context.Context, id uint) (*order.Order, error) {
	var model OrderModel
	err := getDB(ctx, r.db).Preload("Items").First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, order.ErrOrderNotFound
		}
		return nil, apperrors.Wrap(err, "查询订单失败")
	}
	return toOrderEntity(&model), nil
}

// FindByOrderNo 根据订单号查找订单(含明细)
func (r *orderRepository) FindByOrderNo(ctx context.Context, orderNo string) (*order.Order, error) {
	var model OrderModel
	err := getDB(ctx, r.db).Preload("Items").Where("order_no = ?", orderNo).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, order.ErrOrderNotFound
		}
		return nil, apperrors.Wrap(err, "查询订单失败")
	}
	return toOrderEntity(&model), nil
}

// Update 按字段更新订单
// 只更新Update结构体中显式设置的字段,未设置的列不进UPDATE语句
func (r *orderRepository) Update(ctx context.Context, id uint, upd order.Update) error {
	columns := make(map[string]interface{}, 2)
	if upd.Status != nil {
		columns["status"] = int(*upd.Status)
	}
	if upd.Remark != nil {
		columns["remark"] = *upd.Remark
	}
	if len(columns) == 0 {
		return nil
	}

	result := getDB(ctx, r.db).Model(&OrderModel{}).Where("id = ?", id).Updates(columns)
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "更新订单失败")
	}
	if result.RowsAffected == 0 {
		return order.ErrOrderNotFound
	}
	return nil
}

// Delete 删除订单及其明细
// 先删明细再删订单头,两步在同一事务中
func (r *orderRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).Delete(&OrderItemModel{}).Error; err != nil {
			return apperrors.Wrap(err, "删除订单明细失败")
		}

		result := tx.Delete(&OrderModel{}, id)
		if result.Error != nil {
			return apperrors.Wrap(result.Error, "删除订单失败")
		}
		if result.RowsAffected == 0 {
			return order.ErrOrderNotFound
		}
		return nil
	})
}

// ListByUserID 查询用户的订单列表(分页,含明细)
func (r *orderRepository) ListByUserID(ctx context.Context, userID uint, page, pageSize int) ([]*order.Order, int64, error) {
	var models []OrderModel
	var total int64

	db := getDB(ctx, r.db)
	query := db.Model(&OrderModel{}).Where("user_id = ?", userID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "查询订单总数失败")
	}

	offset := (page - 1) * pageSize
	err := query.Preload("Items").
		Order("created_at DESC").
		Limit(pageSize).
		Offset(offset).
		Find(&models).Error
	if err != nil {
		return nil, 0, apperrors.Wrap(err, "查询订单列表失败")
	}

	orders := make([]*order.Order, len(models))
	for i := range models {
		orders[i] = toOrderEntity(&models[i])
	}
	return orders, total, nil
}

// toOrderEntity GORM模型 → 领域实体
func toOrderEntity(model *OrderModel) *order.Order {
	items := make([]order.Item, len(model.Items))
	for i, item := range model.Items {
		items[i] = order.Item{
			ID:        item.ID,
			OrderID:   item.OrderID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
			Subtotal:  item.Subtotal,
		}
	}

	return &order.Order{
		ID:        model.ID,
		OrderNo:   model.OrderNo,
		UserID:    model.UserID,
		Total:     model.Total,
		Status:    order.Status(model.Status),
		Remark:    model.Remark,
		Items:     items,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}
