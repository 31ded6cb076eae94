package user

import (
	"time"
)

// User 用户实体（聚合根）
// 设计说明：
// 1. 密码已加密存储（bcrypt），不暴露明文
// 2. 领域实体不依赖GORM tag（infrastructure层的Repository实现时处理映射）
// 3. 下单流程只读用户（校验存在性），不修改用户
type User struct {
	ID        uint
	Email     string
	Password  string // bcrypt哈希值
	Nickname  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewUser 创建新用户（工厂方法）
// hashedPassword必须是bcrypt加密后的密码
func NewUser(email, hashedPassword, nickname string) *User {
	now := time.Now()
	return &User{
		Email:     email,
		Password:  hashedPassword,
		Nickname:  nickname,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
