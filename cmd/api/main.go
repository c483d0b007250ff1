package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/crypto/bcrypt"

	appanalytics "github.com/jhoicas/wms-almacen/internal/application/analytics"
	"github.com/jhoicas/wms-almacen/internal/application/auth"
	"github.com/jhoicas/wms-almacen/internal/application/inventory"
	"github.com/jhoicas/wms-almacen/internal/application/picking"
	"github.com/jhoicas/wms-almacen/internal/application/usecase"
	infraexcel "github.com/jhoicas/wms-almacen/internal/infrastructure/excel"
	"github.com/jhoicas/wms-almacen/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/wms-almacen/internal/infrastructure/pdf"
	httpRouter "github.com/jhoicas/wms-almacen/internal/interfaces/http"
	"github.com/jhoicas/wms-almacen/pkg/config"
	"github.com/jhoicas/wms-almacen/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Bool("strict_stock", cfg.Inventory.StrictStock).
		Msg("iniciando aplicación")

	opts := []memory.Option{memory.WithLatency(cfg.Store.Latency())}
	if cfg.Store.Seed {
		data, err := memory.DemoData(bcrypt.DefaultCost)
		if err != nil {
			log.Fatal().Err(err).Msg("datos de demostración")
		}
		opts = append(opts, memory.WithData(data))
		log.Info().
			Int("products", len(data.Products)).
			Int("locations", len(data.Locations)).
			Int("orders", len(data.Orders)).
			Msg("almacén cargado con datos de demostración")
	}
	store := memory.NewStore(opts...)

	productRepo := memory.NewProductRepository(store)
	locationRepo := memory.NewLocationRepository(store)
	movementRepo := memory.NewMovementRepository(store)
	orderRepo := memory.NewPickingOrderRepository(store)
	userRepo := memory.NewUserRepository(store)
	txRunner := memory.NewTxRunner(store)

	ledgerUC := inventory.NewLedgerUseCase(txRunner, movementRepo, cfg.Inventory.StrictStock)
	receptionUC := inventory.NewReceptionUseCase(txRunner)
	replenishmentUC := inventory.NewReplenishmentUseCase(productRepo, movementRepo)
	pickingUC := picking.NewUseCase(txRunner, orderRepo, cfg.Inventory.StrictStock)
	dashboardUC := appanalytics.NewDashboardUseCase(productRepo, orderRepo, movementRepo)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := httpRouter.NewApp(httpRouter.AppConfig{
		Name:     cfg.App.Name,
		DocsFile: cfg.Docs.File,
	}, httpRouter.RouterDeps{
		ProductUC:     usecase.NewProductUseCase(txRunner, productRepo),
		LocationUC:    usecase.NewLocationUseCase(locationRepo),
		StockUC:       usecase.NewStockUseCase(productRepo),
		UserUC:        usecase.NewUserUseCase(userRepo),
		Ledger:        ledgerUC,
		Reception:     receptionUC,
		Replenishment: replenishmentUC,
		PickingUC:     pickingUC,
		DashboardUC:   dashboardUC,
		AuthUC:        authUC,
		PickingSheets: infrapdf.NewPickingSheetGenerator(cfg.App.Name),
		StockReport:   infraexcel.NewStockReport(),
		Logger:        log.Component("http"),
		JWTSecret:     cfg.JWT.Secret,
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
