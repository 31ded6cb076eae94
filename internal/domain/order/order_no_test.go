package order

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestGenerateOrderNo_Format 订单号格式:ORD前缀+时间戳+6位随机数
func TestGenerateOrderNo_Format(t *testing.T) {
	no := GenerateOrderNo()

	assert.True(t, strings.HasPrefix(no, "ORD"), "订单号应以ORD开头")
	assert.GreaterOrEqual(t, len(no), 16, "订单号长度不足: %s", no)

	for _, c := range no[3:] {
		assert.True(t, c >= '0' && c <= '9', "ORD后应全部为数字: %s", no)
	}
}

// TestGenerateOrderNo_Concurrent 并发生成大概率不冲突
// (最终唯一性由数据库唯一索引兜底,这里只验证随机性足够)
func TestGenerateOrderNo_Concurrent(t *testing.T) {
	const n = 1000

	var mu sync.Mutex
	seen := make(map[string]struct{}, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			no := GenerateOrderNo()
			mu.Lock()
			seen[no] = struct{}{}
			mu.Unlock()
		}()
	}
	wg.Wait()

	// 毫秒时间戳+6位随机数,1000次并发出现碰撞的概率可以忽略;
	// 留1%余量避免极小概率的偶发失败
	assert.Greater(t, len(seen), n*99/100, "并发生成的订单号重复过多")
}
