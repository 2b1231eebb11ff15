package textmatch_test

import (
	"testing"

	"hotline-faq-go/pkg/textmatch"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindBestMatchPosition_FullQuery(t *testing.T) {
	pos := textmatch.FindBestMatchPosition("restore your password here", "password", "text")
	require.NotNil(t, pos)
	assert.Equal(t, "text", pos.Field)
	assert.Equal(t, 13, pos.Start)
	assert.Equal(t, 21, pos.End)
}

func TestFindBestMatchPosition_PrefixFallback(t *testing.T) {
	// 完整查询串不在候选中，退到能字面命中的最长前缀
	pos := textmatch.FindBestMatchPosition("сброс пароля", "паролем", "answer")
	require.NotNil(t, pos)
	assert.Equal(t, "answer", pos.Field)
	// 前缀逐步缩短，最终命中长度为 5 的 "парол"
	assert.Equal(t, 6, pos.Start)
	assert.Equal(t, 11, pos.End)
}

func TestFindBestMatchPosition_RuneOffsets(t *testing.T) {
	// 偏移按 rune 计数，byte 偏移对西里尔文本没有意义
	pos := textmatch.FindBestMatchPosition("Как восстановить пароль?", "пароль", "text")
	require.NotNil(t, pos)
	assert.Equal(t, 17, pos.Start)
	assert.Equal(t, 23, pos.End)
}

func TestFindBestMatchPosition_CaseInsensitive(t *testing.T) {
	pos := textmatch.FindBestMatchPosition("Сброс ПАРОЛЯ", "пароля", "text")
	require.NotNil(t, pos)
	assert.Equal(t, 6, pos.Start)
	assert.Equal(t, 12, pos.End)
}

func TestFindBestMatchPosition_NoMatch(t *testing.T) {
	// 长度不足 3 的前缀不再尝试
	assert.Nil(t, textmatch.FindBestMatchPosition("ничего общего", "xyz", "text"))
	assert.Nil(t, textmatch.FindBestMatchPosition("short", "ab", "text"))
	assert.Nil(t, textmatch.FindBestMatchPosition("", "пароль", "text"))
}
