// Package models содержит доменные структуры каталога ревьюеров (учебных материалов),
// а также вспомогательные типы для приёма данных из JSON-запросов.
package models

import (
	"strings"
	"time"
)

// Канонические значения сложности ревьюера.
const (
	DifficultyEasy   = "Easy"
	DifficultyMedium = "Medium"
	DifficultyHard   = "Hard"
)

// Subjects — закрытый список предметных категорий каталога.
// Порядок соответствует кнопкам фильтра на витрине.
var Subjects = []string{
	"Practice Sets",
	"Mock Exams",
	"Tips & Cheatsheets",
	"Bundles",
	"Others",
}

// Reviewer представляет собой товар каталога — цифровой учебный материал.
// Поля ID и CreatedAt назначаются хранилищем при создании и далее неизменны.
// ImageURL и PreviewURL опциональны: пустая строка означает, что витрина
// подставит заглушку, а кнопка предпросмотра будет неактивна.
type Reviewer struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Subject     string    `json:"subject"`
	Difficulty  string    `json:"difficulty"`
	Price       int       `json:"price"`
	PaymentURL  string    `json:"payment_url"`
	ImageURL    string    `json:"image_url,omitempty"`
	PreviewURL  string    `json:"preview_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// DummyReviewer используется для приёма данных из JSON-запроса на создание,
// прежде чем конвертировать их в Reviewer. ID и CreatedAt клиент не передаёт.
type DummyReviewer struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Subject     string `json:"subject" validate:"required"`
	Difficulty  string `json:"difficulty" validate:"required"`
	Price       int    `json:"price" validate:"gte=0"`
	PaymentURL  string `json:"payment_url" validate:"required"`
	ImageURL    string `json:"image_url"`
	PreviewURL  string `json:"preview_url"`
}

// UpdateReviewer описывает частичное обновление: nil-поле означает
// "оставить как есть". Ключевые поля (id, created_at) не обновляются.
type UpdateReviewer struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Subject     *string `json:"subject,omitempty"`
	Difficulty  *string `json:"difficulty,omitempty"`
	Price       *int    `json:"price,omitempty" validate:"omitempty,gte=0"`
	PaymentURL  *string `json:"payment_url,omitempty"`
	ImageURL    *string `json:"image_url,omitempty"`
	PreviewURL  *string `json:"preview_url,omitempty"`
}

// NormalizeDifficulty приводит значение сложности к каноническому виду.
// Сравнение нечувствительно к регистру: в ранних версиях каталога
// встречалось "easy" вместо "Easy". Для неизвестного значения возвращает
// пустую строку и false.
func NormalizeDifficulty(v string) (string, bool) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "easy":
		return DifficultyEasy, true
	case "medium":
		return DifficultyMedium, true
	case "hard":
		return DifficultyHard, true
	}
	return "", false
}

// ValidSubject сообщает, входит ли предмет в закрытый список категорий.
func ValidSubject(v string) bool {
	for _, s := range Subjects {
		if s == v {
			return true
		}
	}
	return false
}

// Merge накладывает заполненные поля обновления на существующую запись
// и возвращает результат. Исходная запись не меняется.
func (u UpdateReviewer) Merge(r Reviewer) Reviewer {
	if u.Title != nil {
		r.Title = *u.Title
	}
	if u.Description != nil {
		r.Description = *u.Description
	}
	if u.Subject != nil {
		r.Subject = *u.Subject
	}
	if u.Difficulty != nil {
		r.Difficulty = *u.Difficulty
	}
	if u.Price != nil {
		r.Price = *u.Price
	}
	if u.PaymentURL != nil {
		r.PaymentURL = *u.PaymentURL
	}
	if u.ImageURL != nil {
		r.ImageURL = *u.ImageURL
	}
	if u.PreviewURL != nil {
		r.PreviewURL = *u.PreviewURL
	}
	return r
}
