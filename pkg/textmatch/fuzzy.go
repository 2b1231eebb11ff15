package textmatch

import "sort"

// Match 是模糊匹配的一条命中记录。
type Match struct {
	Key       uint
	Score     int
	Candidate string
}

// levenshtein 计算两个 rune 序列的编辑距离，使用双行 DP 以控制内存。
func levenshtein(a, b []rune) int {
	la, lb := len(a), len(b)
	if la == 0 {
		return lb
	}
	if lb == 0 {
		return la
	}

	prev := make([]int, lb+1)
	curr := make([]int, lb+1)
	for j := 0; j <= lb; j++ {
		prev[j] = j
	}

	for i := 1; i <= la; i++ {
		curr[0] = i
		for j := 1; j <= lb; j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			insert := curr[j-1] + 1
			remove := prev[j] + 1
			replace := prev[j-1] + cost

			m := insert
			if remove < m {
				m = remove
			}
			if replace < m {
				m = replace
			}
			curr[j] = m
		}
		prev, curr = curr, prev
	}
	return prev[lb]
}

// ratioRunes 把编辑距离换算为 0-100 的相似度分值。
func ratioRunes(a, b []rune) int {
	longest := len(a)
	if len(b) > longest {
		longest = len(b)
	}
	if longest == 0 {
		return 100
	}
	return (longest - levenshtein(a, b)) * 100 / longest
}

// Ratio 计算两个字符串整体的相似度（0-100），完全相同为 100。
func Ratio(a, b string) int {
	return ratioRunes([]rune(a), []rune(b))
}

// PartialRatio 计算部分相似度：取较短串与较长串所有等长窗口相似度的最大值。
// 当较长串完整包含较短串时得分为 100，与两串的长度差无关，
// 适合候选文档远长于查询串的场景。
func PartialRatio(a, b string) int {
	ar, br := []rune(a), []rune(b)
	if len(ar) > len(br) {
		ar, br = br, ar
	}
	if len(ar) == 0 {
		if len(br) == 0 {
			return 100
		}
		return 0
	}
	if len(ar) == len(br) {
		return ratioRunes(ar, br)
	}

	best := 0
	for i := 0; i+len(ar) <= len(br); i++ {
		if score := ratioRunes(ar, br[i:i+len(ar)]); score > best {
			best = score
			if best == 100 {
				break
			}
		}
	}
	return best
}

// Extract 对候选集合逐一计算 PartialRatio，返回得分不低于 threshold 的前 limit 条，
// 按得分降序排列。得分相同的候选保持 keys 中的先后顺序（稳定排序）。
// keys 决定遍历顺序，candidates 提供候选文本，两者共同构成候选映射。
func Extract(query string, keys []uint, candidates map[uint]string, threshold, limit int) []Match {
	matches := make([]Match, 0, len(keys))
	for _, key := range keys {
		candidate := candidates[key]
		score := PartialRatio(query, candidate)
		if score >= threshold {
			matches = append(matches, Match{Key: key, Score: score, Candidate: candidate})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}
