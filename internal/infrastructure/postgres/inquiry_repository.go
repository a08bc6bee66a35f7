package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/agrilconnect-api/internal/domain"
	"github.com/jhoicas/agrilconnect-api/internal/domain/entity"
	"github.com/jhoicas/agrilconnect-api/internal/domain/repository"
)

var _ repository.InquiryRepository = (*InquiryRepo)(nil)

// InquiryRepo persiste las consultas del formulario de contacto (contact_submissions).
type InquiryRepo struct {
	q Querier
}

// NewInquiryRepository construye el adaptador de consultas.
func NewInquiryRepository(q Querier) *InquiryRepo {
	return &InquiryRepo{q: q}
}

func (r *InquiryRepo) Create(ctx context.Context, in *entity.Inquiry) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO contact_submissions (id, name, business, email, phone, message, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		in.ID, in.Name, in.Business, in.Email, in.Phone, in.Message, string(in.Status), in.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert inquiry: %w", err)
	}
	return nil
}

func (r *InquiryRepo) List(ctx context.Context, status entity.InquiryStatus) ([]*entity.Inquiry, error) {
	query := `SELECT id, name, business, email, phone, message, status, created_at FROM contact_submissions`
	args := []any{}
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, string(status))
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list inquiries: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Inquiry, 0)
	for rows.Next() {
		var (
			in     entity.Inquiry
			status string
		)
		if err := rows.Scan(&in.ID, &in.Name, &in.Business, &in.Email, &in.Phone, &in.Message, &status, &in.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan inquiry: %w", err)
		}
		in.Status = entity.InquiryStatus(status)
		list = append(list, &in)
	}
	return list, rows.Err()
}

func (r *InquiryRepo) UpdateStatus(ctx context.Context, id string, status entity.InquiryStatus) error {
	cmd, err := r.q.Exec(ctx, `UPDATE contact_submissions SET status = $2 WHERE id = $1`, id, string(status))
	if err != nil {
		return fmt.Errorf("update inquiry status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
