package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	acceptBookingHandler "github.com/omkargore6239/vegobike-checkout-service/internal/api/handlers/accept_booking"
	cancelBookingHandler "github.com/omkargore6239/vegobike-checkout-service/internal/api/handlers/cancel_booking"
	checkoutQuoteHandler "github.com/omkargore6239/vegobike-checkout-service/internal/api/handlers/checkout_quote"
	completeBookingHandler "github.com/omkargore6239/vegobike-checkout-service/internal/api/handlers/complete_booking"
	completePaymentHandler "github.com/omkargore6239/vegobike-checkout-service/internal/api/handlers/complete_payment"
	getCustomerBookingsHandler "github.com/omkargore6239/vegobike-checkout-service/internal/api/handlers/get_customer_bookings"
	submitCheckoutHandler "github.com/omkargore6239/vegobike-checkout-service/internal/api/handlers/submit_checkout"
	"github.com/omkargore6239/vegobike-checkout-service/internal/api/middleware"
	"github.com/omkargore6239/vegobike-checkout-service/internal/config"
	handoffCache "github.com/omkargore6239/vegobike-checkout-service/internal/infra/cache/handoff"
	couponRepo "github.com/omkargore6239/vegobike-checkout-service/internal/infra/storage/coupon"
	bookingServiceClient "github.com/omkargore6239/vegobike-checkout-service/internal/integrations/bookingservice"
	paymentGatewayClient "github.com/omkargore6239/vegobike-checkout-service/internal/integrations/paymentgateway"
	bookingsService "github.com/omkargore6239/vegobike-checkout-service/internal/service/bookings"
	paymentService "github.com/omkargore6239/vegobike-checkout-service/internal/service/payment"
	pricingService "github.com/omkargore6239/vegobike-checkout-service/internal/service/pricing"
	checkoutUC "github.com/omkargore6239/vegobike-checkout-service/internal/usecase/checkout"
	"github.com/omkargore6239/vegobike-checkout-service/pkg/dbmetrics"
	"github.com/omkargore6239/vegobike-checkout-service/pkg/logger"
	"github.com/omkargore6239/vegobike-checkout-service/pkg/metrics"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting vegobike-checkout-service...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Резолвер купонов: PostgreSQL или встроенная таблица,
	// если база выключена в конфигурации
	var couponResolver pricingService.CouponResolver

	if cfg.Database.Enabled {
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()

		// Настраиваем connection pool
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		if err := db.Ping(); err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		if cfg.Metrics.Enabled {
			couponResolver = couponRepo.NewRepository(dbmetrics.Wrap(db, metricsCollector))
			log.Info("Database metrics collection started")
		} else {
			couponResolver = couponRepo.NewRepository(db)
		}
	} else {
		couponResolver = couponRepo.NewStaticResolver()
		log.Info("Database disabled, using built-in coupon table")
	}

	// Подключаемся к Redis (handoff-кеш последнего бронирования)
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		pingCancel()
		log.Fatal("Failed to ping redis at %s: %v", cfg.Redis.Addr, err)
	}
	pingCancel()
	log.Info("Successfully connected to redis (addr=%s, db=%d)", cfg.Redis.Addr, cfg.Redis.DB)

	handoff := handoffCache.NewRedisCache(redisClient, time.Duration(cfg.Redis.HandoffTTL)*time.Second)

	// Инициализируем интеграционных клиентов
	bookingClient := bookingServiceClient.NewClient(
		cfg.BookingService.URL,
		time.Duration(cfg.BookingService.Timeout)*time.Second,
		log,
		metricsCollector,
	)
	gatewayClient := paymentGatewayClient.NewClient(
		cfg.PaymentGateway.URL,
		time.Duration(cfg.PaymentGateway.Timeout)*time.Second,
		log,
		metricsCollector,
	)
	log.Info("Integration clients initialized (BookingService=%s timeout=%ds, PaymentGateway=%s timeout=%ds)",
		cfg.BookingService.URL, cfg.BookingService.Timeout, cfg.PaymentGateway.URL, cfg.PaymentGateway.Timeout)

	// Инициализируем сервисы
	pricingSvc := pricingService.NewService(couponResolver, log)
	paymentSvc := paymentService.NewService(gatewayClient, log)
	bookingSvc := bookingsService.NewService(bookingClient, handoff, log)

	// Инициализируем use case оформления
	checkoutUseCase := checkoutUC.NewUseCase(
		pricingSvc,
		bookingClient,
		handoff,
		paymentSvc,
		log,
	)

	// Инициализируем handlers
	checkoutQuote := checkoutQuoteHandler.NewHandler(pricingSvc, log)
	submitCheckout := submitCheckoutHandler.NewHandler(checkoutUseCase, log)
	completePayment := completePaymentHandler.NewHandler(paymentSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	completeBooking := completeBookingHandler.NewHandler(bookingSvc, log)
	acceptBooking := acceptBookingHandler.NewHandler(bookingSvc, log)
	getCustomerBookings := getCustomerBookingsHandler.NewHandler(bookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Расчёт стоимости checkout-сессии (с купоном или без)
	api.HandleFunc("/checkout/quote", checkoutQuote.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Оформление и оплата ---
	// Оформление бронирования
	protected.HandleFunc("/checkout", submitCheckout.Handle).Methods(http.MethodPost)

	// Результат работы платёжного виджета
	protected.HandleFunc("/checkout/payment/result", completePayment.Handle).Methods(http.MethodPost)

	// --- Жизненный цикл бронирования ---
	// Отмена бронирования
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// Завершение аренды
	protected.HandleFunc("/bookings/{bookingId}/complete", completeBooking.Handle).Methods(http.MethodPatch)

	// Подтверждение бронирования
	protected.HandleFunc("/bookings/{bookingId}/accept", acceptBooking.Handle).Methods(http.MethodPatch)

	// История бронирований клиента
	protected.HandleFunc("/customers/{customerId}/bookings", getCustomerBookings.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
