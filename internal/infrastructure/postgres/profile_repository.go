package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/agrilconnect-api/internal/domain"
	"github.com/jhoicas/agrilconnect-api/internal/domain/entity"
	"github.com/jhoicas/agrilconnect-api/internal/domain/rbac"
	"github.com/jhoicas/agrilconnect-api/internal/domain/repository"
)

var _ repository.ProfileRepository = (*ProfileRepo)(nil)

const profileColumns = `id, user_id, business_name, owner_name, owner_mobile, manager_mobile, role, is_admin, created_at, updated_at`

// ProfileRepo implementación de ProfileRepository sobre la tabla business_profiles.
type ProfileRepo struct {
	q Querier
}

// NewProfileRepository construye el adaptador de perfiles. Pasar pool o tx.
func NewProfileRepository(q Querier) *ProfileRepo {
	return &ProfileRepo{q: q}
}

func scanProfile(row pgx.Row) (*entity.BusinessProfile, error) {
	var (
		p    entity.BusinessProfile
		role string
	)
	err := row.Scan(&p.ID, &p.UserID, &p.BusinessName, &p.OwnerName, &p.OwnerMobile,
		&p.ManagerMobile, &role, &p.IsAdmin, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	// Un valor desconocido en la columna cae al rol por defecto.
	p.Role = rbac.ParseRole(role)
	return &p, nil
}

// Create persiste el perfil; is_admin se escribe derivado del rol.
func (r *ProfileRepo) Create(ctx context.Context, p *entity.BusinessProfile) error {
	p.SetRole(p.Role)
	_, err := r.q.Exec(ctx, `INSERT INTO business_profiles (`+profileColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		p.ID, p.UserID, p.BusinessName, p.OwnerName, p.OwnerMobile, p.ManagerMobile,
		string(p.Role), p.IsAdmin, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert business profile: %w", err)
	}
	return nil
}

func (r *ProfileRepo) GetByID(ctx context.Context, id string) (*entity.BusinessProfile, error) {
	return r.findOne(ctx, `id = $1`, id)
}

func (r *ProfileRepo) GetByUserID(ctx context.Context, userID string) (*entity.BusinessProfile, error) {
	return r.findOne(ctx, `user_id = $1`, userID)
}

// GetByBusinessName búsqueda exacta sin distinguir mayúsculas.
func (r *ProfileRepo) GetByBusinessName(ctx context.Context, businessName string) (*entity.BusinessProfile, error) {
	return r.findOne(ctx, `lower(business_name) = lower($1)`, businessName)
}

func (r *ProfileRepo) findOne(ctx context.Context, where string, arg any) (*entity.BusinessProfile, error) {
	p, err := scanProfile(r.q.QueryRow(ctx, `SELECT `+profileColumns+` FROM business_profiles WHERE `+where, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get business profile: %w", err)
	}
	return p, nil
}

// Update reescribe datos de contacto y rol.
func (r *ProfileRepo) Update(ctx context.Context, p *entity.BusinessProfile) error {
	p.SetRole(p.Role)
	cmd, err := r.q.Exec(ctx, `
		UPDATE business_profiles SET business_name = $2, owner_name = $3, owner_mobile = $4,
			manager_mobile = $5, role = $6, is_admin = $7, updated_at = $8
		WHERE id = $1`,
		p.ID, p.BusinessName, p.OwnerName, p.OwnerMobile, p.ManagerMobile,
		string(p.Role), p.IsAdmin, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update business profile: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ProfileRepo) List(ctx context.Context) ([]*entity.BusinessProfile, error) {
	rows, err := r.q.Query(ctx, `SELECT `+profileColumns+` FROM business_profiles ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list business profiles: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.BusinessProfile, 0)
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("scan business profile: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func (r *ProfileRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM business_profiles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete business profile: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
