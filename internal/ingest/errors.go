package ingest

import (
	"errors"
	"fmt"
)

// ErrEmptySalesChannels 前置条件失败：默认销售渠道列表为空
// 在读取任何 CSV 行之前返回
var ErrEmptySalesChannels = errors.New("ingest: 默认销售渠道列表为空")

// ParseError CSV 流级解析失败（如引号不闭合）
// 属于终止性错误：整次导入中止，不返回部分结果
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("ingest: CSV 解析失败: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
