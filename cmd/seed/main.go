// seed deja una base nueva con el contenido inicial del sitio de SNS: admin, ficha de empresa,
// categorías, servicios, soluciones y logos de clientes.
//
// Uso: go run ./cmd/seed
// Es idempotente: lo que ya existe no se vuelve a crear.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jhoicas/sns-api/internal/application/dto"
	"github.com/jhoicas/sns-api/internal/application/usecase"
	"github.com/jhoicas/sns-api/internal/infrastructure/storage"
	"github.com/jhoicas/sns-api/pkg/config"
	"github.com/jhoicas/sns-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cargar configuración:", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level, File: cfg.Log.File})

	ctx := context.Background()
	repos, err := storage.Open(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacenamiento")
	}
	defer repos.Close()

	s := seeder{
		admins:     usecase.NewAdminUseCase(repos.Admins),
		categories: usecase.NewCategoryUseCase(repos.Categories),
		services:   usecase.NewServiceUseCase(repos.Services, repos.Categories),
		solutions:  usecase.NewSolutionUseCase(repos.Solutions),
		customers:  usecase.NewCustomerUseCase(repos.Customers),
		company:    usecase.NewCompanyInfoUseCase(repos.CompanyInfo),
	}
	s.provision = usecase.NewProvisionUseCase(repos.Admins, s.admins, s.company, s.categories)

	if err := s.run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("seed")
	}
	log.Info().Msg("seed completado")
}

type seeder struct {
	provision  *usecase.ProvisionUseCase
	admins     *usecase.AdminUseCase
	categories *usecase.CategoryUseCase
	services   *usecase.ServiceUseCase
	solutions  *usecase.SolutionUseCase
	customers  *usecase.CustomerUseCase
	company    *usecase.CompanyInfoUseCase
}

func (s seeder) run(ctx context.Context, cfg *config.Config, log *logger.Logger) error {
	created, err := s.provision.EnsureAdmin(ctx, dto.CreateAdminRequest{
		Username: cfg.Admin.Username,
		Email:    cfg.Admin.Email,
		Password: cfg.Admin.Password,
	})
	if err != nil {
		return fmt.Errorf("admin: %w", err)
	}
	log.Info().Bool("created", created).Str("username", cfg.Admin.Username).Msg("admin")

	if created, err = s.provision.EnsureCompanyInfo(ctx, snsCompanyInfo()); err != nil {
		return fmt.Errorf("company info: %w", err)
	}
	log.Info().Bool("created", created).Msg("información de la empresa")

	n, err := s.provision.SeedCategories(ctx, snsCategories())
	if err != nil {
		return fmt.Errorf("categorías: %w", err)
	}
	log.Info().Int("created", n).Msg("categorías")

	categoryIDs, err := s.categoryIDs(ctx)
	if err != nil {
		return err
	}

	existingServices, err := s.services.List(ctx, dto.PageRequest{Limit: 1})
	if err != nil {
		return fmt.Errorf("servicios: %w", err)
	}
	if len(existingServices) == 0 {
		for _, in := range snsServices(categoryIDs) {
			if _, err := s.services.Create(ctx, in); err != nil {
				return fmt.Errorf("servicio %q: %w", in.Name, err)
			}
		}
		log.Info().Int("created", len(snsServices(categoryIDs))).Msg("servicios")
	}

	existingSolutions, err := s.solutions.List(ctx, dto.PageRequest{Limit: 1})
	if err != nil {
		return fmt.Errorf("soluciones: %w", err)
	}
	if len(existingSolutions) == 0 {
		for _, in := range snsSolutions() {
			if _, err := s.solutions.Create(ctx, in); err != nil {
				return fmt.Errorf("solución %q: %w", in.Name, err)
			}
		}
		log.Info().Int("created", len(snsSolutions())).Msg("soluciones")
	}

	existingCustomers, err := s.customers.List(ctx, dto.PageRequest{Limit: 1})
	if err != nil {
		return fmt.Errorf("clientes: %w", err)
	}
	if len(existingCustomers) == 0 {
		for _, in := range snsCustomers() {
			if _, err := s.customers.Create(ctx, in); err != nil {
				return fmt.Errorf("cliente %q: %w", in.Name, err)
			}
		}
		log.Info().Int("created", len(snsCustomers())).Msg("clientes")
	}
	return nil
}

// categoryIDs mapa nombre -> id de las categorías existentes.
func (s seeder) categoryIDs(ctx context.Context) (map[string]int64, error) {
	list, err := s.categories.List(ctx, dto.PageRequest{Limit: dto.MaxLimit})
	if err != nil {
		return nil, fmt.Errorf("listar categorías: %w", err)
	}
	ids := make(map[string]int64, len(list))
	for _, c := range list {
		ids[c.Name] = c.ID
	}
	return ids, nil
}
