package ingest

import (
	"math/rand"
	"strings"
	"time"
)

// 与平台导出约定一致的小写 base36 字符集
const skuSuffixAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

const skuSuffixLength = 4

// skuRegistry 记录单次导入已占用的 SKU，保证全局唯一
// 仅在一次 Load 会话内有效，不跨调用共享
type skuRegistry struct {
	used map[string]struct{}
	rand *rand.Rand
}

func newSKURegistry() *skuRegistry {
	return newSKURegistryWithSeed(time.Now().UnixNano())
}

func newSKURegistryWithSeed(seed int64) *skuRegistry {
	return &skuRegistry{
		used: make(map[string]struct{}),
		rand: rand.New(rand.NewSource(seed)),
	}
}

// Claim 占用一个 SKU
// 与已占用 SKU 冲突时追加 "-" 加 4 位随机 base36 后缀，重试直至唯一
func (r *skuRegistry) Claim(base string) string {
	sku := base
	for {
		if _, taken := r.used[sku]; !taken {
			r.used[sku] = struct{}{}
			return sku
		}
		sku = base + "-" + r.suffix()
	}
}

func (r *skuRegistry) suffix() string {
	var b strings.Builder
	b.Grow(skuSuffixLength)
	for i := 0; i < skuSuffixLength; i++ {
		b.WriteByte(skuSuffixAlphabet[r.rand.Intn(len(skuSuffixAlphabet))])
	}
	return b.String()
}
