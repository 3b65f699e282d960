package types

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrInvalidTimeString возвращается при некорректном формате времени
	ErrInvalidTimeString = errors.New("types: invalid time string format")
)

var timePattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// TimeString время суток в каноническом виде "HH:MM" (с ведущими нулями).
// Лексикографическое сравнение двух TimeString совпадает с хронологическим —
// на этом контракте построен весь поиск конфликтов и подсказок слотов,
// поэтому значения никогда не конвертируются во внутреннее time.Time.
type TimeString string

// NewTimeString создает TimeString из настенного времени time.Time
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format("15:04"))
}

// NewTimeStringFromString парсит строку "HH:MM" или "HH:MM:SS".
// Секунды отбрасываются: хранилище работает с точностью до секунд,
// а доменная логика — с точностью до минут.
func NewTimeStringFromString(s string) (TimeString, error) {
	trimmed := strings.TrimSpace(s)
	if len(trimmed) == 8 && trimmed[2] == ':' && trimmed[5] == ':' {
		trimmed = trimmed[:5]
	}
	ts := TimeString(trimmed)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// Validate проверяет канонический формат "HH:MM"
func (t TimeString) Validate() error {
	if !timePattern.MatchString(string(t)) {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return nil
}

// IsZero возвращает true для пустого значения
func (t TimeString) IsZero() bool {
	return t == ""
}

// String возвращает каноническую форму "HH:MM"
func (t TimeString) String() string {
	return string(t)
}

// IsBefore строгое хронологическое "раньше" (строковое сравнение)
func (t TimeString) IsBefore(other TimeString) bool {
	return string(t) < string(other)
}

// IsAfter строгое хронологическое "позже" (строковое сравнение)
func (t TimeString) IsAfter(other TimeString) bool {
	return string(t) > string(other)
}

// Minutes возвращает время как количество минут от полуночи
func (t TimeString) Minutes() (int, error) {
	if err := t.Validate(); err != nil {
		return 0, err
	}
	h, _ := strconv.Atoi(string(t)[:2])
	m, _ := strconv.Atoi(string(t)[3:])
	return h*60 + m, nil
}

// AddMinutes возвращает время через delta минут.
// На границе суток значение заворачивается по модулю 24 часов:
// рабочая сетка до границы не доходит, но вычисление не должно падать.
func (t TimeString) AddMinutes(delta int) (TimeString, error) {
	total, err := t.Minutes()
	if err != nil {
		return "", err
	}
	total = (total + delta) % (24 * 60)
	if total < 0 {
		total += 24 * 60
	}
	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}

// WithSeconds возвращает значение в форме хранения "HH:MM:SS"
func (t TimeString) WithSeconds() string {
	return string(t) + ":00"
}

// Format12h возвращает 12-часовое представление с испанской
// маркировкой периода ("9:30 a. m.", "2:30 p. m.")
func (t TimeString) Format12h() string {
	if t.IsZero() {
		return ""
	}
	if err := t.Validate(); err != nil {
		return string(t)
	}
	h, _ := strconv.Atoi(string(t)[:2])
	suffix := "a. m."
	if h >= 12 {
		suffix = "p. m."
	}
	h12 := h % 12
	if h12 == 0 {
		h12 = 12
	}
	return fmt.Sprintf("%d:%s %s", h12, string(t)[3:], suffix)
}
