package usecase

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/sns-api/internal/application/dto"
	"github.com/jhoicas/sns-api/internal/domain"
	"github.com/jhoicas/sns-api/internal/domain/entity"
	"github.com/jhoicas/sns-api/internal/domain/repository"
)

// AdminUseCase alta y mantenimiento de administradores. El password siempre se guarda hasheado con bcrypt.
type AdminUseCase struct {
	repo repository.AdminRepository
}

// NewAdminUseCase construye el caso de uso.
func NewAdminUseCase(repo repository.AdminRepository) *AdminUseCase {
	return &AdminUseCase{repo: repo}
}

// Create crea un admin activo. ErrDuplicate si username o email ya existen.
func (uc *AdminUseCase) Create(ctx context.Context, in dto.CreateAdminRequest) (*dto.AdminResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	hash, err := hashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	a := &entity.Admin{
		Username:       in.Username,
		Email:          in.Email,
		HashedPassword: hash,
		IsActive:       true,
		CreatedAt:      clock(),
	}
	if err := uc.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return ToAdminResponse(a), nil
}

// Update aplica solo los campos presentes; un password nuevo se re-hashea.
func (uc *AdminUseCase) Update(ctx context.Context, id int64, in dto.UpdateAdminRequest) (*dto.AdminResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	a, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.ErrNotFound
	}
	if err := applyAdminUpdate(a, in); err != nil {
		return nil, err
	}
	a.UpdatedAt = nowPtr()
	if err := uc.repo.Update(ctx, a); err != nil {
		return nil, err
	}
	return ToAdminResponse(a), nil
}

// UpdateProfile cambios que un admin hace sobre sí mismo (email y password).
func (uc *AdminUseCase) UpdateProfile(ctx context.Context, id int64, in dto.UpdateProfileRequest) (*dto.AdminResponse, error) {
	return uc.Update(ctx, id, dto.UpdateAdminRequest{Email: in.Email, Password: in.Password})
}

func applyAdminUpdate(a *entity.Admin, in dto.UpdateAdminRequest) error {
	setString(&a.Username, in.Username)
	setString(&a.Email, in.Email)
	setBool(&a.IsActive, in.IsActive)
	if in.Password != nil {
		hash, err := hashPassword(*in.Password)
		if err != nil {
			return err
		}
		a.HashedPassword = hash
	}
	return nil
}

func hashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		// el tag max cuenta runas; bcrypt limita a 72 bytes
		return "", fmt.Errorf("%w: password must be at most 72 bytes", domain.ErrInvalidInput)
	}
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// ToAdminResponse convierte la entidad a salida HTTP omitiendo el hash.
func ToAdminResponse(a *entity.Admin) *dto.AdminResponse {
	if a == nil {
		return nil
	}
	return &dto.AdminResponse{
		ID:        a.ID,
		Username:  a.Username,
		Email:     a.Email,
		IsActive:  a.IsActive,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}
