package textmatch_test

import (
	"testing"

	"hotline-faq-go/pkg/textmatch"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "как восстановить пароль?", textmatch.Normalize("  Как   восстановить\tпароль?  "))
	assert.Equal(t, "hello world", textmatch.Normalize("Hello\n\n World"))
	assert.Equal(t, "", textmatch.Normalize("   \t\n  "))
	assert.Equal(t, "", textmatch.Normalize(""))
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"  Как   восстановить пароль?  ",
		"ПРИВЕТ",
		"a  b\tc\nd",
		"",
		"already normalized",
	}
	for _, s := range inputs {
		once := textmatch.Normalize(s)
		assert.Equal(t, once, textmatch.Normalize(once), "normalize must be idempotent for %q", s)
	}
}

func TestIsLatin(t *testing.T) {
	assert.True(t, textmatch.IsLatin("gfhjkm"))
	assert.True(t, textmatch.IsLatin("hello, world! 123"))
	// 只含标点的字符串按启发式也算拉丁文本
	assert.True(t, textmatch.IsLatin("?!."))
	assert.True(t, textmatch.IsLatin(""))
	assert.False(t, textmatch.IsLatin("пароль"))
	assert.False(t, textmatch.IsLatin("password пароль"))
}

func TestIsCyrillic(t *testing.T) {
	assert.True(t, textmatch.IsCyrillic("пароль"))
	assert.True(t, textmatch.IsCyrillic("mostly latin но не совсем"))
	assert.False(t, textmatch.IsCyrillic("password"))
	assert.False(t, textmatch.IsCyrillic(""))
}
