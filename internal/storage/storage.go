// Package storage определяет общую таксономию ошибок хранилищ каталога.
// Конкретные реализации (PostgreSQL и локальный файл) живут в подпакетах
// и возвращают эти ошибки, чтобы вызывающий код не зависел от бэкенда.
package storage

import "errors"

var (
	// ErrReviewerNotFound возвращается при update/delete по несуществующему id.
	// Политика единая для обоих бэкендов: "тихий успех" локального варианта
	// считается ошибкой и не воспроизводится.
	ErrReviewerNotFound = errors.New("reviewer not found")

	// ErrBackendUnavailable сообщает, что удалённое хранилище недоступно.
	// На пути чтения эта ошибка поглощается переходом на локальную копию.
	ErrBackendUnavailable = errors.New("storage backend unavailable")
)
