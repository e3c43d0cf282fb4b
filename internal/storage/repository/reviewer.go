package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/examreviewph/storefront/internal/models"
	"github.com/examreviewph/storefront/internal/storage"
)

// CreateReviewer вставляет запись каталога. ID и created_at уже назначены
// сервисом каталога и сохраняются как есть.
func (s *Storage) CreateReviewer(ctx context.Context, r models.Reviewer) error {
	const op = "repository.CreateReviewer"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO reviewers (id, title, description, subject, difficulty,
	              price, payment_url, image_url, preview_url, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := s.DB.ExecContext(ctx, query,
		r.ID, r.Title, r.Description, r.Subject, r.Difficulty,
		r.Price, r.PaymentURL, r.ImageURL, r.PreviewURL, r.CreatedAt)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// ListReviewers возвращает весь каталог, отсортированный по дате создания
// по убыванию: свежие записи первыми, как на витрине.
func (s *Storage) ListReviewers(ctx context.Context) ([]models.Reviewer, error) {
	const op = "repository.ListReviewers"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, title, description, subject, difficulty,
	              price, payment_url, image_url, preview_url, created_at
	          FROM reviewers
	          ORDER BY created_at DESC`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []models.Reviewer
	for rows.Next() {
		var item models.Reviewer
		if err := rows.Scan(&item.ID, &item.Title, &item.Description, &item.Subject,
			&item.Difficulty, &item.Price, &item.PaymentURL, &item.ImageURL,
			&item.PreviewURL, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// UpdateReviewer накладывает частичное обновление: nil-поля сохраняют прежние
// значения через COALESCE. Возвращает запись после слияния либо
// storage.ErrReviewerNotFound.
func (s *Storage) UpdateReviewer(ctx context.Context, id string, upd models.UpdateReviewer) (*models.Reviewer, error) {
	const op = "repository.UpdateReviewer"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE reviewers
	          SET title       = COALESCE($2, title),
	              description = COALESCE($3, description),
	              subject     = COALESCE($4, subject),
	              difficulty  = COALESCE($5, difficulty),
	              price       = COALESCE($6, price),
	              payment_url = COALESCE($7, payment_url),
	              image_url   = COALESCE($8, image_url),
	              preview_url = COALESCE($9, preview_url)
	          WHERE id = $1
	          RETURNING id, title, description, subject, difficulty,
	              price, payment_url, image_url, preview_url, created_at`
	row := s.DB.QueryRowContext(ctx, query, id,
		upd.Title, upd.Description, upd.Subject, upd.Difficulty,
		upd.Price, upd.PaymentURL, upd.ImageURL, upd.PreviewURL)

	var result models.Reviewer
	err := row.Scan(&result.ID, &result.Title, &result.Description, &result.Subject,
		&result.Difficulty, &result.Price, &result.PaymentURL, &result.ImageURL,
		&result.PreviewURL, &result.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrReviewerNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &result, nil
}

// RemoveReviewer удаляет запись по id, сообщая storage.ErrReviewerNotFound,
// если удалять было нечего.
func (s *Storage) RemoveReviewer(ctx context.Context, id string) error {
	const op = "repository.RemoveReviewer"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM reviewers WHERE id = $1`
	result, err := s.DB.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrReviewerNotFound)
	}
	return nil
}
