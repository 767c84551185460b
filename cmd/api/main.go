package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jhoicas/sns-api/docs"
	"github.com/jhoicas/sns-api/internal/application/auth"
	"github.com/jhoicas/sns-api/internal/application/dto"
	"github.com/jhoicas/sns-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/sns-api/internal/infrastructure/pdf"
	"github.com/jhoicas/sns-api/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/sns-api/internal/interfaces/http"
	"github.com/jhoicas/sns-api/pkg/config"
	"github.com/jhoicas/sns-api/pkg/logger"
)

// @title        SNS Backend API
// @version      1.0.0
// @description  API del sitio corporativo de Star Network Solutions: catálogo, servicios, soluciones, clientes e información de la empresa.
// @BasePath     /
// @securityDefinitions.apikey Bearer
// @in           header
// @name         Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
		File:  cfg.Log.File,
	})
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("configuración inválida")
	}
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("db_driver", cfg.DB.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	repos, err := storage.Open(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacenamiento")
	}
	defer repos.Close()

	adminUC := usecase.NewAdminUseCase(repos.Admins)
	categoryUC := usecase.NewCategoryUseCase(repos.Categories)
	productUC := usecase.NewProductUseCase(repos.Products, repos.Categories, repos.Tx)
	subProductUC := usecase.NewSubProductUseCase(repos.SubProducts, repos.Products, infrapdf.NewMarotoPDFGenerator(cfg.App.Name))
	serviceUC := usecase.NewServiceUseCase(repos.Services, repos.Categories)
	solutionUC := usecase.NewSolutionUseCase(repos.Solutions)
	customerUC := usecase.NewCustomerUseCase(repos.Customers)
	companyInfoUC := usecase.NewCompanyInfoUseCase(repos.CompanyInfo)
	authUC := auth.NewAuthUseCase(repos.Admins, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		Algorithm:  cfg.JWT.Algorithm,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	if cfg.App.Provision {
		provision := usecase.NewProvisionUseCase(repos.Admins, adminUC, companyInfoUC, categoryUC)
		provisionDefaults(ctx, log, cfg, provision)
	}

	app := httpRouter.NewApp(cfg, log, httpRouter.RouterDeps{
		AuthUC:        authUC,
		AdminUC:       adminUC,
		CategoryUC:    categoryUC,
		ProductUC:     productUC,
		SubProductUC:  subProductUC,
		ServiceUC:     serviceUC,
		SolutionUC:    solutionUC,
		CustomerUC:    customerUC,
		CompanyInfoUC: companyInfoUC,
		Version:       cfg.App.Version,
		Assets:        cfg.Assets,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

// provisionDefaults crea el admin configurado y una ficha de empresa mínima si faltan.
// Un fallo aquí no impide arrancar.
func provisionDefaults(ctx context.Context, log *logger.Logger, cfg *config.Config, provision *usecase.ProvisionUseCase) {
	created, err := provision.EnsureAdmin(ctx, dto.CreateAdminRequest{
		Username: cfg.Admin.Username,
		Email:    cfg.Admin.Email,
		Password: cfg.Admin.Password,
	})
	switch {
	case err != nil:
		log.Error().Err(err).Str("username", cfg.Admin.Username).Msg("provisionar admin")
	case created:
		log.Info().Str("username", cfg.Admin.Username).Msg("admin por defecto creado")
	}

	created, err = provision.EnsureCompanyInfo(ctx, usecase.DefaultCompanyInfo(cfg.App.Name))
	switch {
	case err != nil:
		log.Error().Err(err).Msg("provisionar información de la empresa")
	case created:
		log.Info().Msg("información de la empresa por defecto creada")
	}
}
