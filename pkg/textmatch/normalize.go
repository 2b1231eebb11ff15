// Package textmatch 提供问答搜索所需的文本匹配基础能力：
// 文本规范化、键盘布局转写、模糊相似度打分与命中位置定位。
// 该包是纯函数集合，不依赖任何外部状态。
package textmatch

import (
	"regexp"
	"strings"
)

var spaceRe = regexp.MustCompile(`\s+`)

// Normalize 将文本转为小写，把连续空白压缩为单个空格并去掉首尾空白。
// 纯函数且幂等：Normalize(Normalize(s)) == Normalize(s)。
func Normalize(s string) string {
	return strings.TrimSpace(spaceRe.ReplaceAllString(strings.ToLower(s), " "))
}

// IsLatin 当且仅当所有码点都低于 128 时返回 true。
// 这是一个启发式判断：只含标点的字符串也会被认为是拉丁文本。
func IsLatin(s string) bool {
	for _, r := range s {
		if r >= 128 {
			return false
		}
	}
	return true
}

// IsCyrillic 当文本中至少存在一个西里尔字符（U+0400–U+04FF）时返回 true。
func IsCyrillic(s string) bool {
	for _, r := range s {
		if r >= 0x0400 && r <= 0x04FF {
			return true
		}
	}
	return false
}
