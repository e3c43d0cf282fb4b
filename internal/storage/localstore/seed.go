package localstore

import "github.com/examreviewph/storefront/internal/models"

// SampleReviewers возвращает встроенный стартовый каталог. Им заполняется
// пустое локальное хранилище при первом обращении; этим же списком
// инициализируется пустая база в удалённом режиме.
func SampleReviewers() []models.DummyReviewer {
	return []models.DummyReviewer{
		{
			Title:       "Complete Math Reviewer for UPCAT",
			Description: "Comprehensive math review covering algebra, geometry, and trigonometry with practice problems.",
			Subject:     "Practice Sets",
			Difficulty:  models.DifficultyHard,
			Price:       299,
			PaymentURL:  "https://ko-fi.com/s/math-upcat-reviewer",
			ImageURL:    "/preview-math.png",
			PreviewURL:  "https://example.com/preview/math-upcat",
		},
		{
			Title:       "English Grammar Essentials",
			Description: "Master English grammar rules, vocabulary, and reading comprehension for entrance exams.",
			Subject:     "Practice Sets",
			Difficulty:  models.DifficultyMedium,
			Price:       199,
			PaymentURL:  "https://gumroad.com/l/english-grammar-essentials",
			ImageURL:    "/preview-english.png",
			PreviewURL:  "https://example.com/preview/english-grammar",
		},
		{
			Title:       "Filipino Literature and Language",
			Description: "Complete guide to Filipino literature, grammar, and language comprehension for college entrance exams.",
			Subject:     "Practice Sets",
			Difficulty:  models.DifficultyMedium,
			Price:       179,
			PaymentURL:  "https://ko-fi.com/s/filipino-literature",
			ImageURL:    "/preview-filipino.png",
			PreviewURL:  "https://example.com/preview/filipino-lit",
		},
		{
			Title:       "Logic and Critical Thinking",
			Description: "Develop your analytical and logical reasoning skills with comprehensive practice exercises.",
			Subject:     "Practice Sets",
			Difficulty:  models.DifficultyHard,
			Price:       249,
			PaymentURL:  "https://gumroad.com/l/logic-critical-thinking",
			ImageURL:    "/preview-logic.png",
			PreviewURL:  "https://example.com/preview/logic-thinking",
		},
		{
			Title:       "Reading Comprehension Mastery",
			Description: "Improve your reading comprehension skills with varied passages and strategic techniques.",
			Subject:     "Practice Sets",
			Difficulty:  models.DifficultyEasy,
			Price:       149,
			PaymentURL:  "https://ko-fi.com/s/reading-comprehension",
			ImageURL:    "/preview-reading.png",
			PreviewURL:  "https://example.com/preview/reading-comp",
		},
	}
}
