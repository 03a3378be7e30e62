package address

import (
	"regexp"
	"strings"
)

// Последний токен строки, начинающийся с 1-5 цифр:
// цифры - номер дома, хвост - дополнение (литера, "-3", "/2")
var houseNumberRe = regexp.MustCompile(`^(.*\S)\s+(\d{1,5})([A-Za-z0-9/-]*)$`)

// Decompose разбирает строку "улица + номер дома" на составляющие.
// Если номер дома не найден, вся строка возвращается как улица,
// номер и дополнение остаются пустыми - это не ошибка
func Decompose(line string) (street string, houseNumber string, addition string) {
	line = strings.TrimSpace(line)

	m := houseNumberRe.FindStringSubmatch(line)
	if m == nil {
		return line, "", ""
	}
	return m[1], m[2], m[3]
}
