package textmatch

import "strings"

// MatchPosition 描述查询串在候选文本某个字段中的字面命中位置。
// Start/End 为 rune 偏移，End 为开区间，供前端高亮使用。
type MatchPosition struct {
	Field string `json:"field"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

// FindBestMatchPosition 依次尝试查询串从全长到 3 个字符的各个前缀，
// 返回第一个在 candidate 中字面出现的前缀的位置；全部落空时返回 nil。
// 匹配不区分大小写。这是为界面高亮服务的近似：字面子串定位与模糊打分
// 是两套算法，这里不保证找到的就是驱动模糊得分的那段文本。
func FindBestMatchPosition(candidate, query, field string) *MatchPosition {
	cRunes := []rune(strings.ToLower(candidate))
	qRunes := []rune(strings.ToLower(query))

	for n := len(qRunes); n >= 3; n-- {
		if idx := indexRunes(cRunes, qRunes[:n]); idx >= 0 {
			return &MatchPosition{Field: field, Start: idx, End: idx + n}
		}
	}
	return nil
}

// indexRunes 在 haystack 中查找 needle 首次出现的 rune 下标，未找到返回 -1。
func indexRunes(haystack, needle []rune) int {
	if len(needle) == 0 || len(needle) > len(haystack) {
		return -1
	}
	for i := 0; i+len(needle) <= len(haystack); i++ {
		j := 0
		for ; j < len(needle); j++ {
			if haystack[i+j] != needle[j] {
				break
			}
		}
		if j == len(needle) {
			return i
		}
	}
	return -1
}
