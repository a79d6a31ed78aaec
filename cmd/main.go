package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	bookingsHandler "github.com/m04kA/SMC-ParkingAdminService/internal/api/handlers/bookings"
	complaintsHandler "github.com/m04kA/SMC-ParkingAdminService/internal/api/handlers/complaints"
	discountsHandler "github.com/m04kA/SMC-ParkingAdminService/internal/api/handlers/discounts"
	pricingHandler "github.com/m04kA/SMC-ParkingAdminService/internal/api/handlers/pricing"
	quotesHandler "github.com/m04kA/SMC-ParkingAdminService/internal/api/handlers/quotes"
	reportsHandler "github.com/m04kA/SMC-ParkingAdminService/internal/api/handlers/reports"
	slotsHandler "github.com/m04kA/SMC-ParkingAdminService/internal/api/handlers/slots"
	"github.com/m04kA/SMC-ParkingAdminService/internal/api/middleware"
	"github.com/m04kA/SMC-ParkingAdminService/internal/config"
	"github.com/m04kA/SMC-ParkingAdminService/internal/domain"
	"github.com/m04kA/SMC-ParkingAdminService/internal/infra/fixtures"
	bookingRepo "github.com/m04kA/SMC-ParkingAdminService/internal/infra/storage/booking"
	complaintRepo "github.com/m04kA/SMC-ParkingAdminService/internal/infra/storage/complaint"
	discountRepo "github.com/m04kA/SMC-ParkingAdminService/internal/infra/storage/discount"
	pricingRepo "github.com/m04kA/SMC-ParkingAdminService/internal/infra/storage/pricing"
	reportRepo "github.com/m04kA/SMC-ParkingAdminService/internal/infra/storage/report"
	slotRepo "github.com/m04kA/SMC-ParkingAdminService/internal/infra/storage/slot"
	bookingsService "github.com/m04kA/SMC-ParkingAdminService/internal/service/bookings"
	complaintsService "github.com/m04kA/SMC-ParkingAdminService/internal/service/complaints"
	discountsService "github.com/m04kA/SMC-ParkingAdminService/internal/service/discounts"
	pricingService "github.com/m04kA/SMC-ParkingAdminService/internal/service/pricing"
	reportsService "github.com/m04kA/SMC-ParkingAdminService/internal/service/reports"
	slotsService "github.com/m04kA/SMC-ParkingAdminService/internal/service/slots"
	evaluateDiscountUC "github.com/m04kA/SMC-ParkingAdminService/internal/usecase/evaluate_discount"
	matchPricingRuleUC "github.com/m04kA/SMC-ParkingAdminService/internal/usecase/match_pricing_rule"
	quoteBookingUC "github.com/m04kA/SMC-ParkingAdminService/internal/usecase/quote_booking"
	"github.com/m04kA/SMC-ParkingAdminService/pkg/logger"
	"github.com/m04kA/SMC-ParkingAdminService/pkg/metrics"
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

	log.Info("Starting SMC-ParkingAdminService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Наполняем in-memory хранилища демонстрационными данными
	var (
		seedSlots      []domain.ParkingSlot
		seedBookings   []domain.Booking
		seedComplaints []domain.Complaint
		seedRules      []domain.PricingRule
		seedDiscounts  []domain.Discount
		seedReport     domain.ReportData
	)
	if cfg.Fixtures.Seed {
		seedSlots = fixtures.ParkingSlots()
		seedBookings = fixtures.Bookings()
		seedComplaints = fixtures.Complaints()
		seedRules = fixtures.PricingRules()
		seedDiscounts = fixtures.Discounts()
		seedReport = fixtures.Report()
		log.Info("Fixture data loaded: slots=%d, bookings=%d, complaints=%d, rules=%d, discounts=%d",
			len(seedSlots), len(seedBookings), len(seedComplaints), len(seedRules), len(seedDiscounts))
	} else {
		log.Info("Fixture seeding disabled, starting with empty storage")
	}

	// Инициализируем репозитории
	slotRepository := slotRepo.NewRepository(seedSlots)
	bookingRepository := bookingRepo.NewRepository(seedBookings)
	complaintRepository := complaintRepo.NewRepository(seedComplaints)
	pricingRepository := pricingRepo.NewRepository(seedRules)
	discountRepository := discountRepo.NewRepository(seedDiscounts)
	reportRepository := reportRepo.NewRepository(seedReport)

	// Инициализируем сервисы
	slotSvc := slotsService.NewService(slotRepository, log)
	bookingSvc := bookingsService.NewService(bookingRepository, slotRepository, log)
	complaintSvc := complaintsService.NewService(complaintRepository, log)
	pricingSvc := pricingService.NewService(pricingRepository, log)
	discountSvc := discountsService.NewService(discountRepository, log)
	reportSvc := reportsService.NewService(reportRepository, log)

	// Инициализируем use cases
	evaluateDiscountUseCase := evaluateDiscountUC.NewUseCase(discountRepository, log)
	matchPricingRuleUseCase := matchPricingRuleUC.NewUseCase(pricingRepository, log)
	quoteBookingUseCase := quoteBookingUC.NewUseCase(
		slotRepository,
		matchPricingRuleUseCase,
		evaluateDiscountUseCase,
		log,
	)

	// Инициализируем handlers
	slots := slotsHandler.NewHandler(slotSvc, log)
	bookings := bookingsHandler.NewHandler(bookingSvc, log)
	complaints := complaintsHandler.NewHandler(complaintSvc, log)
	pricing := pricingHandler.NewHandler(pricingSvc, matchPricingRuleUseCase, log)
	discounts := discountsHandler.NewHandler(discountSvc, evaluateDiscountUseCase, log)
	reports := reportsHandler.NewHandler(reportSvc, log)
	quotes := quotesHandler.NewHandler(quoteBookingUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Просмотр парковочных мест
	api.HandleFunc("/slots", slots.HandleList).Methods(http.MethodGet)
	api.HandleFunc("/slots/{slotId}", slots.HandleGet).Methods(http.MethodGet)

	// Просмотр тарифов и подбор тарифа
	api.HandleFunc("/pricing-rules", pricing.HandleList).Methods(http.MethodGet)
	api.HandleFunc("/pricing-rules/match", pricing.HandleMatch).Methods(http.MethodPost)
	api.HandleFunc("/pricing-rules/{ruleId}", pricing.HandleGet).Methods(http.MethodGet)

	// Оценка скидки и расчет стоимости
	api.HandleFunc("/discounts/evaluate", discounts.HandleEvaluate).Methods(http.MethodPost)
	api.HandleFunc("/quotes", quotes.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-Admin-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Парковочные места ---
	protected.HandleFunc("/slots", slots.HandleCreate).Methods(http.MethodPost)
	protected.HandleFunc("/slots/{slotId}", slots.HandleUpdate).Methods(http.MethodPatch)
	protected.HandleFunc("/slots/{slotId}", slots.HandleDelete).Methods(http.MethodDelete)
	protected.HandleFunc("/slots/{slotId}/toggle-active", slots.HandleToggleActive).Methods(http.MethodPatch)
	protected.HandleFunc("/slots/{slotId}/occupancy", slots.HandleSetOccupied).Methods(http.MethodPatch)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", bookings.HandleList).Methods(http.MethodGet)
	protected.HandleFunc("/bookings", bookings.HandleCreate).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}", bookings.HandleGet).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}", bookings.HandleUpdate).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}", bookings.HandleDelete).Methods(http.MethodDelete)
	protected.HandleFunc("/bookings/{bookingId}/status", bookings.HandleUpdateStatus).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}/payment-status", bookings.HandleSetPaymentStatus).Methods(http.MethodPatch)

	// --- Жалобы ---
	protected.HandleFunc("/complaints", complaints.HandleList).Methods(http.MethodGet)
	protected.HandleFunc("/complaints", complaints.HandleCreate).Methods(http.MethodPost)
	protected.HandleFunc("/complaints/{complaintId}", complaints.HandleGet).Methods(http.MethodGet)
	protected.HandleFunc("/complaints/{complaintId}", complaints.HandleUpdate).Methods(http.MethodPatch)
	protected.HandleFunc("/complaints/{complaintId}", complaints.HandleDelete).Methods(http.MethodDelete)
	protected.HandleFunc("/complaints/{complaintId}/resolve", complaints.HandleResolve).Methods(http.MethodPatch)
	protected.HandleFunc("/complaints/{complaintId}/reopen", complaints.HandleReopen).Methods(http.MethodPatch)

	// --- Тарифы ---
	protected.HandleFunc("/pricing-rules", pricing.HandleCreate).Methods(http.MethodPost)
	protected.HandleFunc("/pricing-rules/{ruleId}", pricing.HandleUpdate).Methods(http.MethodPatch)
	protected.HandleFunc("/pricing-rules/{ruleId}", pricing.HandleDelete).Methods(http.MethodDelete)
	protected.HandleFunc("/pricing-rules/{ruleId}/toggle-active", pricing.HandleToggleActive).Methods(http.MethodPatch)

	// --- Скидки ---
	protected.HandleFunc("/discounts", discounts.HandleList).Methods(http.MethodGet)
	protected.HandleFunc("/discounts", discounts.HandleCreate).Methods(http.MethodPost)
	protected.HandleFunc("/discounts/generate-code", discounts.HandleGenerateCode).Methods(http.MethodGet)
	protected.HandleFunc("/discounts/{discountId}", discounts.HandleGet).Methods(http.MethodGet)
	protected.HandleFunc("/discounts/{discountId}", discounts.HandleUpdate).Methods(http.MethodPatch)
	protected.HandleFunc("/discounts/{discountId}", discounts.HandleDelete).Methods(http.MethodDelete)
	protected.HandleFunc("/discounts/{discountId}/toggle-active", discounts.HandleToggleActive).Methods(http.MethodPatch)

	// --- Отчеты ---
	protected.HandleFunc("/reports/summary", reports.HandleGetSummary).Methods(http.MethodGet)

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
