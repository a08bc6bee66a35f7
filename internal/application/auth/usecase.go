package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/agrilconnect-api/internal/application/dto"
	"github.com/jhoicas/agrilconnect-api/internal/application/session"
	"github.com/jhoicas/agrilconnect-api/internal/domain"
	"github.com/jhoicas/agrilconnect-api/internal/domain/entity"
	"github.com/jhoicas/agrilconnect-api/internal/domain/rbac"
	"github.com/jhoicas/agrilconnect-api/internal/domain/repository"
	"github.com/jhoicas/agrilconnect-api/pkg/jwt"
	"github.com/jhoicas/agrilconnect-api/pkg/logger"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// TxRunner crea cuenta y perfil en una sola transacción.
type TxRunner interface {
	RunSignUp(ctx context.Context, fn func(
		userRepo repository.UserRepository,
		profileRepo repository.ProfileRepository,
	) error) error
}

// AuthUseCase registro, login y resolución de la sesión de cada petición.
type AuthUseCase struct {
	tx          TxRunner
	userRepo    repository.UserRepository
	profileRepo repository.ProfileRepository
	jwtCfg      JWTConfig
	log         *logger.Logger
	bcryptCost  int
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(
	tx TxRunner,
	userRepo repository.UserRepository,
	profileRepo repository.ProfileRepository,
	jwtCfg JWTConfig,
	log *logger.Logger,
) *AuthUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &AuthUseCase{
		tx:          tx,
		userRepo:    userRepo,
		profileRepo: profileRepo,
		jwtCfg:      jwtCfg,
		log:         log.Component("auth"),
		bcryptCost:  bcrypt.DefaultCost,
	}
}

// WithBcryptCost ajusta el costo de bcrypt (los tests usan bcrypt.MinCost).
func (uc *AuthUseCase) WithBcryptCost(cost int) *AuthUseCase {
	uc.bcryptCost = cost
	return uc
}

// SignUp registro público: cuenta + perfil con rol user, y token de sesión.
func (uc *AuthUseCase) SignUp(ctx context.Context, in dto.SignUpRequest) (*dto.AuthResponse, error) {
	user, profile, err := uc.CreateAccount(ctx, in, rbac.DefaultRole)
	if err != nil {
		return nil, err
	}
	return uc.issue(user, profile)
}

// CreateAccount crea cuenta y perfil con el rol dado en una transacción: si el perfil
// no se puede insertar no queda cuenta huérfana.
func (uc *AuthUseCase) CreateAccount(ctx context.Context, in dto.SignUpRequest, role rbac.Role) (*entity.User, *entity.BusinessProfile, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	businessName := strings.TrimSpace(in.BusinessName)
	if email == "" || businessName == "" || in.Password == "" {
		return nil, nil, domain.ErrInvalidInput
	}
	if !role.IsValid() {
		return nil, nil, fmt.Errorf("rol %q: %w", role, domain.ErrInvalidInput)
	}

	existing, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, nil, err
	}
	if existing != nil {
		return nil, nil, domain.ErrEmailAlreadyExists
	}
	taken, err := uc.profileRepo.GetByBusinessName(ctx, businessName)
	if err != nil {
		return nil, nil, err
	}
	if taken != nil {
		return nil, nil, fmt.Errorf("nombre de negocio %q: %w", businessName, domain.ErrDuplicate)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), uc.bcryptCost)
	if err != nil {
		return nil, nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	profile := &entity.BusinessProfile{
		ID:            uuid.New().String(),
		UserID:        user.ID,
		BusinessName:  businessName,
		OwnerName:     strings.TrimSpace(in.OwnerName),
		OwnerMobile:   strings.TrimSpace(in.OwnerMobile),
		ManagerMobile: strings.TrimSpace(in.ManagerMobile),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	profile.SetRole(role)

	err = uc.tx.RunSignUp(ctx, func(userRepo repository.UserRepository, profileRepo repository.ProfileRepository) error {
		if err := userRepo.Create(ctx, user); err != nil {
			return err
		}
		return profileRepo.Create(ctx, profile)
	})
	if err != nil {
		return nil, nil, err
	}

	uc.log.Info().Str("user_id", user.ID).Str("role", string(profile.Role)).Msg("cuenta creada")
	return user, profile, nil
}

// Login acepta nombre de negocio o email. Credenciales desconocidas o incorrectas → ErrUnauthorized.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.AuthResponse, error) {
	var (
		user    *entity.User
		profile *entity.BusinessProfile
		err     error
	)
	if name := strings.TrimSpace(in.BusinessName); name != "" {
		profile, err = uc.profileRepo.GetByBusinessName(ctx, name)
		if err != nil {
			return nil, err
		}
		if profile == nil {
			return nil, domain.ErrUnauthorized
		}
		user, err = uc.userRepo.GetByID(ctx, profile.UserID)
	} else {
		user, err = uc.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(in.Email)))
	}
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if profile == nil {
		if profile, err = uc.profileRepo.GetByUserID(ctx, user.ID); err != nil {
			return nil, err
		}
	}
	return uc.issue(user, profile)
}

// Resolve reconstruye la sesión de una petición a partir de los claims del token.
// El rol se relee del perfil, así un cambio de rol aplica en la siguiente petición.
func (uc *AuthUseCase) Resolve(ctx context.Context, userID, email string) (session.Session, error) {
	profile, err := uc.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return session.Session{}, err
	}
	if profile == nil {
		user, err := uc.userRepo.GetByID(ctx, userID)
		if err != nil {
			return session.Session{}, err
		}
		if user == nil {
			return session.Session{}, domain.ErrUnauthorized
		}
		return session.New(userID, email, rbac.DefaultRole), nil
	}
	s := session.New(userID, email, profile.Role)
	s.ProfileID = profile.ID
	s.HasProfile = true
	return s, nil
}

// Me identidad de la sesión con permisos vigentes.
func (uc *AuthUseCase) Me(ctx context.Context, s session.Session) (*dto.MeResponse, error) {
	if !s.IsAuthenticated() {
		return nil, domain.ErrUnauthorized
	}
	ev := s.Permissions()
	out := &dto.MeResponse{
		UserID:          s.UserID,
		Email:           s.Email,
		Role:            string(ev.CurrentRole()),
		Permissions:     dto.FromPermissions(rbac.PermissionsFor(ev.CurrentRole())),
		CanEnterConsole: ev.CanEnterConsole(),
	}
	profile, err := uc.profileRepo.GetByUserID(ctx, s.UserID)
	if err != nil {
		return nil, err
	}
	if profile != nil {
		p := dto.FromProfile(profile)
		out.Profile = &p
	}
	return out, nil
}

func (uc *AuthUseCase) issue(user *entity.User, profile *entity.BusinessProfile) (*dto.AuthResponse, error) {
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Email, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, fmt.Errorf("generar token: %w", err)
	}
	out := &dto.AuthResponse{Token: token, Email: user.Email}
	if profile != nil {
		p := dto.FromProfile(profile)
		out.Profile = &p
	}
	return out, nil
}

// IsCredentialError indica si err debe contarse como intento fallido de login.
func IsCredentialError(err error) bool {
	return errors.Is(err, domain.ErrUnauthorized)
}
