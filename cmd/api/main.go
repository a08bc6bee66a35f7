package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	appanalytics "github.com/jhoicas/agrilconnect-api/internal/application/analytics"
	"github.com/jhoicas/agrilconnect-api/internal/application/auth"
	"github.com/jhoicas/agrilconnect-api/internal/application/checkout"
	"github.com/jhoicas/agrilconnect-api/internal/application/ports"
	"github.com/jhoicas/agrilconnect-api/internal/application/usecase"
	"github.com/jhoicas/agrilconnect-api/internal/infrastructure/payment"
	infrapdf "github.com/jhoicas/agrilconnect-api/internal/infrastructure/pdf"
	"github.com/jhoicas/agrilconnect-api/internal/infrastructure/postgres"
	infraredis "github.com/jhoicas/agrilconnect-api/internal/infrastructure/redis"
	httpRouter "github.com/jhoicas/agrilconnect-api/internal/interfaces/http"
	"github.com/jhoicas/agrilconnect-api/pkg/config"
	"github.com/jhoicas/agrilconnect-api/pkg/logger"
)

const swaggerFile = "./docs/swagger.json"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	applied, err := postgres.Migrate(ctx, pool)
	if err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}
	if len(applied) > 0 {
		log.Info().Ints("versions", applied).Msg("migraciones aplicadas")
	}

	rdb, err := infraredis.NewClient(ctx, cfg.Redis)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a Redis")
	}
	defer rdb.Close()

	userRepo := postgres.NewUserRepository(pool)
	profileRepo := postgres.NewProfileRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	inquiryRepo := postgres.NewInquiryRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	cartStore := infraredis.NewCartStore(rdb, cfg.Redis.CartTTL)
	loginThrottle := infraredis.NewLoginThrottle(rdb, infraredis.DefaultThrottleConfig)

	authUC := auth.NewAuthUseCase(txRunner, userRepo, profileRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, log)

	// Sin credenciales de Razorpay sólo se acepta pago contra entrega.
	var gateway ports.PaymentGateway
	if cfg.Payment.Enabled() {
		gateway = payment.NewRazorpayGateway(cfg.Payment)
	} else {
		log.Warn().Msg("pasarela de pago deshabilitada: RAZORPAY_KEY_ID vacío")
	}

	storeLoc := cfg.Store.Location()
	receipts := infrapdf.NewReceiptGenerator()

	productUC := usecase.NewProductUseCase(productRepo, categoryRepo, log)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	cartUC := usecase.NewCartUseCase(cartStore, productRepo)
	checkoutUC := checkout.NewCheckoutUseCase(
		txRunner, orderRepo, productRepo, profileRepo, cartStore, gateway,
		checkout.Config{
			StoreName: cfg.Store.Name,
			Currency:  cfg.Payment.Currency,
			Location:  storeLoc,
		}, log,
	)
	// Barrido de pagos en línea abandonados.
	sweepCtx, stopSweep := context.WithCancel(ctx)
	defer stopSweep()
	if gateway != nil {
		sweeper, err := checkoutUC.ScheduleExpiry(sweepCtx, cfg.Payment.SweepCron, cfg.Payment.PendingTTL)
		if err != nil {
			log.Fatal().Err(err).Msg("PAYMENT_SWEEP_CRON")
		}
		sweeper.Start()
		defer sweeper.Stop()
	}

	orderUC := usecase.NewOrderUseCase(orderRepo, receipts, usecase.OrderConfig{
		StoreName: cfg.Store.Name,
		Location:  storeLoc,
	}, log)
	inquiryUC := usecase.NewInquiryUseCase(inquiryRepo)
	userUC := usecase.NewUserUseCase(profileRepo, authUC, log)
	summaryUC := appanalytics.NewDeliverySummaryUseCase(orderRepo, storeLoc, nil)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 20,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.AccessLog(log))

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "AgrilConnect API",
		}))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:          authUC,
		ProductUC:       productUC,
		CategoryUC:      categoryUC,
		CartUC:          cartUC,
		CheckoutUC:      checkoutUC,
		OrderUC:         orderUC,
		InquiryUC:       inquiryUC,
		UserUC:          userUC,
		DeliverySummary: summaryUC,
		LoginLimiter:    loginThrottle,
		Sessions:        authUC,
		JWTSecret:       cfg.JWT.Secret,
		Logger:          log,
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
