package usecase

import (
	"context"

	"github.com/jhoicas/sns-api/internal/application/dto"
	"github.com/jhoicas/sns-api/internal/domain"
	"github.com/jhoicas/sns-api/internal/domain/entity"
	"github.com/jhoicas/sns-api/internal/domain/repository"
)

// CompanyInfoUseCase lectura y actualización de la ficha singleton de la empresa.
// Create solo lo usa la provisión (arranque y cmd/seed); no hay ruta HTTP para crear.
type CompanyInfoUseCase struct {
	repo repository.CompanyInfoRepository
}

// NewCompanyInfoUseCase construye el caso de uso.
func NewCompanyInfoUseCase(repo repository.CompanyInfoRepository) *CompanyInfoUseCase {
	return &CompanyInfoUseCase{repo: repo}
}

// Get devuelve la ficha; ErrNotFound si aún no se provisionó.
func (uc *CompanyInfoUseCase) Get(ctx context.Context) (*dto.CompanyInfoResponse, error) {
	info, err := uc.find(ctx)
	if err != nil {
		return nil, err
	}
	return toCompanyInfoResponse(info), nil
}

// Create persiste la ficha aplicando valores por defecto a los contadores.
func (uc *CompanyInfoUseCase) Create(ctx context.Context, in dto.CreateCompanyInfoRequest) (*dto.CompanyInfoResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	info := &entity.CompanyInfo{
		CompanyName:        in.CompanyName,
		Address:            in.Address,
		Phone:              in.Phone,
		Email:              in.Email,
		Website:            in.Website,
		Mission:            in.Mission,
		Vision:             in.Vision,
		AboutUs:            in.AboutUs,
		FoundedYear:        in.FoundedYear,
		TotalClients:       intOrDefault(in.TotalClients, 0),
		TotalBrands:        intOrDefault(in.TotalBrands, 0),
		ServiceDaysPerYear: intOrDefault(in.ServiceDaysPerYear, entity.DefaultServiceDaysPerYear),
		CreatedAt:          clock(),
	}
	if err := uc.repo.Create(ctx, info); err != nil {
		return nil, err
	}
	return toCompanyInfoResponse(info), nil
}

// Update fusiona los campos presentes en la ficha existente.
func (uc *CompanyInfoUseCase) Update(ctx context.Context, in dto.UpdateCompanyInfoRequest) (*dto.CompanyInfoResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	info, err := uc.find(ctx)
	if err != nil {
		return nil, err
	}
	applyCompanyInfoUpdate(info, in)
	info.UpdatedAt = nowPtr()
	if err := uc.repo.Update(ctx, info); err != nil {
		return nil, err
	}
	return toCompanyInfoResponse(info), nil
}

func (uc *CompanyInfoUseCase) find(ctx context.Context) (*entity.CompanyInfo, error) {
	info, err := uc.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if info == nil {
		return nil, domain.ErrNotFound
	}
	return info, nil
}

func applyCompanyInfoUpdate(info *entity.CompanyInfo, in dto.UpdateCompanyInfoRequest) {
	setString(&info.CompanyName, in.CompanyName)
	setOptString(&info.Address, in.Address)
	setOptString(&info.Phone, in.Phone)
	setOptString(&info.Email, in.Email)
	setOptString(&info.Website, in.Website)
	setOptString(&info.Mission, in.Mission)
	setOptString(&info.Vision, in.Vision)
	setOptString(&info.AboutUs, in.AboutUs)
	setOptInt(&info.FoundedYear, in.FoundedYear)
	setOptInt(&info.TotalClients, in.TotalClients)
	setOptInt(&info.TotalBrands, in.TotalBrands)
	setOptInt(&info.ServiceDaysPerYear, in.ServiceDaysPerYear)
}

func toCompanyInfoResponse(info *entity.CompanyInfo) *dto.CompanyInfoResponse {
	return &dto.CompanyInfoResponse{
		ID:                 info.ID,
		CompanyName:        info.CompanyName,
		Address:            info.Address,
		Phone:              info.Phone,
		Email:              info.Email,
		Website:            info.Website,
		Mission:            info.Mission,
		Vision:             info.Vision,
		AboutUs:            info.AboutUs,
		FoundedYear:        info.FoundedYear,
		TotalClients:       info.TotalClients,
		TotalBrands:        info.TotalBrands,
		ServiceDaysPerYear: info.ServiceDaysPerYear,
		CreatedAt:          info.CreatedAt,
		UpdatedAt:          info.UpdatedAt,
	}
}
