package textmatch_test

import (
	"testing"

	"hotline-faq-go/pkg/textmatch"

	"github.com/stretchr/testify/assert"
)

func TestTransliterate_LatinToCyrillic(t *testing.T) {
	// "gfhjkm" 是在 ЙЦУКЕН 键位上输入 "пароль" 时拉丁布局产出的串
	assert.Equal(t, "пароль", textmatch.Transliterate("gfhjkm"))
	assert.Equal(t, "привет", textmatch.Transliterate("ghbdtn"))
}

func TestTransliterate_CyrillicToLatin(t *testing.T) {
	assert.Equal(t, "gfhjkm", textmatch.Transliterate("пароль"))
}

func TestTransliterate_Involution(t *testing.T) {
	// 映射是双射且自逆：转写两次必须回到原串
	inputs := []string{"gfhjkm", "пароль", "qwerty", "йцукен", "ghbdtn vbh"}
	for _, s := range inputs {
		assert.Equal(t, s, textmatch.Transliterate(textmatch.Transliterate(s)), "double transliteration must restore %q", s)
	}
}

func TestTransliterate_UnmappedPassThrough(t *testing.T) {
	// 数字和未映射字符原样保留
	assert.Equal(t, "пароль 123", textmatch.Transliterate("gfhjkm 123"))
	assert.Equal(t, "", textmatch.Transliterate(""))
}
