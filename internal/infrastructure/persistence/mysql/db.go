package mysql

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/xiebiao/petstore/internal/infrastructure/config"
)

// NewDB 创建数据库连接
// 1. GORM v2作为ORM框架
// 2. 配置连接池参数
// 3. debug模式打印SQL,其余模式关闭
// 4. 自动迁移表结构
func NewDB(cfg *config.Config) (*gorm.DB, error) {
	dsn := cfg.Database.DSN()

	logLevel := logger.Silent
	if cfg.Server.Mode == "debug" {
		logLevel = logger.Info
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("连接数据库失败: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("获取SQL DB失败: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("数据库连接测试失败: %w", err)
	}

	log.Println("✓ 数据库连接成功")

	// 自动迁移表结构(开发环境)
	// 生产环境应使用版本化的迁移脚本,不要依赖AutoMigrate
	if err := autoMigrate(db); err != nil {
		return nil, fmt.Errorf("数据库迁移失败: %w", err)
	}

	return db, nil
}

// autoMigrate 自动迁移表结构
// AutoMigrate只会创建表、添加字段,不会删除或修改现有字段
func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&UserModel{},
		&ProductModel{},
		&OrderModel{},
		&OrderItemModel{},
	)
}

// UserModel GORM用户模型
// infrastructure层的数据模型,包含GORM tag;
// domain/user/entity.go是领域实体,不依赖GORM,
// Repository负责两者之间的转换
type UserModel struct {
	ID        uint           `gorm:"primaryKey"`
	Email     string         `gorm:"uniqueIndex;size:100;not null;comment:邮箱"`
	Password  string         `gorm:"size:255;not null;comment:密码(bcrypt加密)"`
	Nickname  string         `gorm:"size:50;not null;comment:昵称"`
	CreatedAt time.Time      `gorm:"comment:创建时间"`
	UpdatedAt time.Time      `gorm:"comment:更新时间"`
	DeletedAt gorm.DeletedAt `gorm:"index;comment:删除时间(软删除)"`
}

// TableName 指定表名
func (UserModel) TableName() string {
	return "users"
}

// ProductModel GORM商品模型
// 价格使用int64存储"分"为单位,避免浮点数精度问题
type ProductModel struct {
	ID          uint           `gorm:"primaryKey"`
	Name        string         `gorm:"index:idx_search;size:200;not null;comment:商品名称"`
	Description string         `gorm:"type:text;comment:商品描述"`
	Price       int64          `gorm:"index:idx_list;not null;comment:价格(分)"`
	Stock       int            `gorm:"default:0;comment:库存数量"`
	CreatedAt   time.Time      `gorm:"index:idx_list;comment:创建时间"`
	UpdatedAt   time.Time      `gorm:"comment:更新时间"`
	DeletedAt   gorm.DeletedAt `gorm:"index;comment:删除时间(软删除)"`
}

// TableName 指定表名
func (ProductModel) TableName() string {
	return "products"
}

// OrderModel GORM订单模型
// 1. 与OrderItemModel是一对多关系,但写入不走级联,
//    由orderRepository.Create显式先写订单头再写明细
// 2. OrderNo有唯一索引(业务主键),并发冲突由它兜底
// 3. Status使用tinyint存储
type OrderModel struct {
	ID        uint             `gorm:"primaryKey"`
	OrderNo   string           `gorm:"uniqueIndex;size:32;not null;comment:订单号"`
	UserID    uint             `gorm:"index;not null;comment:买家用户ID"`
	Total     int64            `gorm:"not null;comment:订单总金额(分)"`
	Status    int              `gorm:"index;type:tinyint;default:1;comment:订单状态(1待支付2已支付3已发货4已送达5已取消)"`
	Remark    string           `gorm:"size:500;comment:买家备注"`
	Items     []OrderItemModel `gorm:"foreignKey:OrderID"` // 仅用于Preload读取
	CreatedAt time.Time        `gorm:"index;comment:创建时间"`
	UpdatedAt time.Time        `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel GORM订单明细模型
// Price和Subtotal是下单时刻的价格快照,商品改价不回溯
type OrderItemModel struct {
	ID        uint  `gorm:"primaryKey"`
	OrderID   uint  `gorm:"index;not null;comment:订单ID"`
	ProductID uint  `gorm:"index;not null;comment:商品ID"`
	Quantity  int   `gorm:"not null;comment:购买数量"`
	Price     int64 `gorm:"not null;comment:下单时单价(分)"`
	Subtotal  int64 `gorm:"not null;comment:行小计(分)"`
}

// TableName 指定表名
func (OrderItemModel) TableName() string {
	return "order_items"
}
