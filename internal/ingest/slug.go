package ingest

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	// NFD 拆分后去掉所有组合附加符号（é -> e），再合回 NFC
	deaccent = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

	// Go 的 \s 只覆盖 ASCII 空白，补上 Unicode 分隔符（NBSP、全角空格等）和 BOM
	whitespaceRun = regexp.MustCompile(`[\s\p{Z}\x{FEFF}]+`)
	invalidChars  = regexp.MustCompile(`[^\w-]+`)
	hyphenRun     = regexp.MustCompile(`-{2,}`)
)

// Slugify 生成 URL 安全的商品 handle
// 规则：去变音符号 -> 小写 -> 裁剪首尾空白 -> 内部空白折叠为连字符
// -> 去除 [A-Za-z0-9_-] 以外的字符 -> 压缩连续连字符 -> 裁剪首尾连字符
// 对任意输入满足幂等：Slugify(Slugify(x)) == Slugify(x)
func Slugify(text string) string {
	if text == "" {
		return ""
	}
	if normalized, _, err := transform.String(deaccent, text); err == nil {
		text = normalized
	}
	text = strings.TrimSpace(strings.ToLower(text))
	text = whitespaceRun.ReplaceAllString(text, "-")
	text = invalidChars.ReplaceAllString(text, "")
	text = hyphenRun.ReplaceAllString(text, "-")
	return strings.Trim(text, "-")
}
