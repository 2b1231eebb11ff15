package textmatch

import "strings"

// layoutPairs 按物理键位列出 Latin-QWERTY 与 Cyrillic-ЙЦУКЕН 布局的对应关系。
// 映射是双射的：正反两个方向都会写入 layoutMap，因此 Transliterate 是自身的逆。
var layoutPairs = [...][2]rune{
	{'q', 'й'}, {'w', 'ц'}, {'e', 'у'}, {'r', 'к'}, {'t', 'е'},
	{'y', 'н'}, {'u', 'г'}, {'i', 'ш'}, {'o', 'щ'}, {'p', 'з'},
	{'[', 'х'}, {']', 'ъ'},
	{'a', 'ф'}, {'s', 'ы'}, {'d', 'в'}, {'f', 'а'}, {'g', 'п'},
	{'h', 'р'}, {'j', 'о'}, {'k', 'л'}, {'l', 'д'}, {';', 'ж'},
	{'\'', 'э'},
	{'z', 'я'}, {'x', 'ч'}, {'c', 'с'}, {'v', 'м'}, {'b', 'и'},
	{'n', 'т'}, {'m', 'ь'}, {',', 'б'}, {'.', 'ю'}, {'`', 'ё'},
}

var layoutMap = make(map[rune]rune, len(layoutPairs)*2)

func init() {
	for _, p := range layoutPairs {
		layoutMap[p[0]] = p[1]
		layoutMap[p[1]] = p[0]
	}
}

// Transliterate 按共享键位把文本在两种键盘布局之间逐字符转写。
// 不在映射表中的字符原样保留，对任意输入都不会出错。
// 典型场景：用户在拉丁布局下输入了本想用西里尔布局输入的查询（"gfhjkm" -> "пароль"）。
func Transliterate(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if mapped, ok := layoutMap[r]; ok {
			b.WriteRune(mapped)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
