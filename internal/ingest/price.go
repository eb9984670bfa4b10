package ingest

import (
	"strings"

	"github.com/shopspring/decimal"
)

// CSV 中固定的四个价格列，列名即币种代码
var priceCurrencies = []string{"usd", "eur", "cad", "xof"}

// parsePrice 将价格列转换为最小货币单位（分）
// 空串或非法数字返回 ok=false（该币种不计入价格列表）；"0" 是合法值
func parsePrice(raw string) (amount int64, ok bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return 0, false
	}
	return d.Shift(2).Round(0).IntPart(), true
}
