// Package cancelcode генерирует коды управления бронированием.
// Формат: CXL-XXXXXXXX (8 символов ограниченного алфавита).
// Код может повторяться между несвязанными группами бронирований —
// уникальность на уровне БД сознательно не требуется, но все строки
// одной группы обязаны разделять один и тот же код.
package cancelcode

import (
	"math/rand/v2"
	"regexp"
	"strings"
)

// Prefix фиксированный префикс всех кодов
const Prefix = "CXL-"

// Алфавит без визуально неоднозначных символов (I, O, 0, 1)
const alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const codeLength = 8

var codePattern = regexp.MustCompile(`^CXL-[A-Z2-9]{8}$`)

// Generate возвращает новый код группы бронирования
func Generate() string {
	var b strings.Builder
	b.Grow(len(Prefix) + codeLength)
	b.WriteString(Prefix)
	for i := 0; i < codeLength; i++ {
		b.WriteByte(alphabet[rand.IntN(len(alphabet))])
	}
	return b.String()
}

// IsValid проверяет формат кода
func IsValid(code string) bool {
	return codePattern.MatchString(code)
}
