package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/agrilconnect-api/internal/application/dto"
	"github.com/jhoicas/agrilconnect-api/internal/application/session"
	"github.com/jhoicas/agrilconnect-api/internal/domain"
	"github.com/jhoicas/agrilconnect-api/internal/domain/entity"
	"github.com/jhoicas/agrilconnect-api/internal/domain/rbac"
	"github.com/jhoicas/agrilconnect-api/internal/domain/repository"
	"github.com/jhoicas/agrilconnect-api/pkg/logger"
)

// AccountCreator alta de cuenta + perfil en una transacción (implementado por auth.AuthUseCase).
type AccountCreator interface {
	CreateAccount(ctx context.Context, in dto.SignUpRequest, role rbac.Role) (*entity.User, *entity.BusinessProfile, error)
}

// UserUseCase panel de usuarios: perfiles de negocio y sus roles.
type UserUseCase struct {
	profiles repository.ProfileRepository
	accounts AccountCreator
	log      *logger.Logger
}

func NewUserUseCase(profiles repository.ProfileRepository, accounts AccountCreator, log *logger.Logger) *UserUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &UserUseCase{profiles: profiles, accounts: accounts, log: log.Component("users")}
}

func (uc *UserUseCase) List(ctx context.Context, s session.Session) (*dto.UserListResponse, error) {
	ev := s.Permissions()
	if err := ev.Authorize(rbac.ActionRead, rbac.ResourceUsers); err != nil {
		return nil, err
	}
	list, err := uc.profiles.List(ctx)
	if err != nil {
		return nil, err
	}
	controls := dto.ControlsFor(ev, rbac.ResourceUsers)
	return &dto.UserListResponse{Items: dto.FromProfiles(list), Controls: &controls}, nil
}

// Create alta de cuenta desde el panel. Sin rol explícito queda como user.
func (uc *UserUseCase) Create(ctx context.Context, s session.Session, in dto.CreateUserRequest) (*dto.ProfileResponse, error) {
	if err := s.Permissions().Authorize(rbac.ActionCreate, rbac.ResourceUsers); err != nil {
		return nil, err
	}
	role := rbac.DefaultRole
	if in.Role != "" {
		role = rbac.Role(in.Role)
	}
	_, profile, err := uc.accounts.CreateAccount(ctx, in.SignUpRequest, role)
	if err != nil {
		return nil, err
	}
	out := dto.FromProfile(profile)
	return &out, nil
}

// Update edición parcial del perfil, incluido el rol. El cambio de rol aplica en la
// siguiente petición del afectado.
func (uc *UserUseCase) Update(ctx context.Context, s session.Session, id string, in dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	if err := s.Permissions().Authorize(rbac.ActionUpdate, rbac.ResourceUsers); err != nil {
		return nil, err
	}
	p, err := uc.profiles.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}

	if in.BusinessName != nil {
		name := strings.TrimSpace(*in.BusinessName)
		if name == "" {
			return nil, domain.ErrInvalidInput
		}
		if !strings.EqualFold(name, p.BusinessName) {
			taken, err := uc.profiles.GetByBusinessName(ctx, name)
			if err != nil {
				return nil, err
			}
			if taken != nil && taken.ID != p.ID {
				return nil, fmt.Errorf("nombre de negocio %q: %w", name, domain.ErrDuplicate)
			}
		}
		p.BusinessName = name
	}
	if in.OwnerName != nil {
		p.OwnerName = strings.TrimSpace(*in.OwnerName)
	}
	if in.OwnerMobile != nil {
		p.OwnerMobile = strings.TrimSpace(*in.OwnerMobile)
	}
	if in.ManagerMobile != nil {
		p.ManagerMobile = strings.TrimSpace(*in.ManagerMobile)
	}
	previous := p.Role
	if in.Role != nil {
		role := rbac.Role(*in.Role)
		if !role.IsValid() {
			return nil, fmt.Errorf("rol %q: %w", *in.Role, domain.ErrInvalidInput)
		}
		p.SetRole(role)
	}
	p.UpdatedAt = time.Now().UTC()

	if err := uc.profiles.Update(ctx, p); err != nil {
		return nil, err
	}
	if p.Role != previous {
		uc.log.Info().
			Str("profile_id", p.ID).
			Str("from", string(previous)).
			Str("to", string(p.Role)).
			Str("by", s.UserID).
			Msg("rol actualizado")
	}
	out := dto.FromProfile(p)
	return &out, nil
}

// Delete elimina el perfil de negocio; la cuenta de acceso se conserva y queda con rol user.
// El permiso se verifica aquí aunque la ruta ya lo haya hecho.
func (uc *UserUseCase) Delete(ctx context.Context, s session.Session, id string) error {
	if err := s.Permissions().Authorize(rbac.ActionDelete, rbac.ResourceUsers); err != nil {
		return err
	}
	if err := uc.profiles.Delete(ctx, id); err != nil {
		return err
	}
	uc.log.Info().Str("profile_id", id).Str("by", s.UserID).Msg("perfil eliminado")
	return nil
}
