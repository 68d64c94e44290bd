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

	createBookingHandler "github.com/m04kA/SMC-StudioBooking/internal/api/handlers/create_booking"
	createPortfolioItemHandler "github.com/m04kA/SMC-StudioBooking/internal/api/handlers/create_portfolio_item"
	deletePortfolioItemHandler "github.com/m04kA/SMC-StudioBooking/internal/api/handlers/delete_portfolio_item"
	getAvailableDatesHandler "github.com/m04kA/SMC-StudioBooking/internal/api/handlers/get_available_dates"
	getAvailableSlotsHandler "github.com/m04kA/SMC-StudioBooking/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/SMC-StudioBooking/internal/api/handlers/get_booking"
	getCalendarHandler "github.com/m04kA/SMC-StudioBooking/internal/api/handlers/get_calendar"
	getHomePageHandler "github.com/m04kA/SMC-StudioBooking/internal/api/handlers/get_homepage"
	getMeHandler "github.com/m04kA/SMC-StudioBooking/internal/api/handlers/get_me"
	getMyPhotographerHandler "github.com/m04kA/SMC-StudioBooking/internal/api/handlers/get_my_photographer"
	getPhotographerHandler "github.com/m04kA/SMC-StudioBooking/internal/api/handlers/get_photographer"
	listBookingsHandler "github.com/m04kA/SMC-StudioBooking/internal/api/handlers/list_bookings"
	listMyPortfolioHandler "github.com/m04kA/SMC-StudioBooking/internal/api/handlers/list_my_portfolio"
	listPhotographersHandler "github.com/m04kA/SMC-StudioBooking/internal/api/handlers/list_photographers"
	listPortfolioHandler "github.com/m04kA/SMC-StudioBooking/internal/api/handlers/list_portfolio"
	listServicesHandler "github.com/m04kA/SMC-StudioBooking/internal/api/handlers/list_services"
	resetDiscountHandler "github.com/m04kA/SMC-StudioBooking/internal/api/handlers/reset_discount"
	sendResultsEmailHandler "github.com/m04kA/SMC-StudioBooking/internal/api/handlers/send_results_email"
	updateBookingHandler "github.com/m04kA/SMC-StudioBooking/internal/api/handlers/update_booking"
	updateHomePageHandler "github.com/m04kA/SMC-StudioBooking/internal/api/handlers/update_homepage"
	updateMyCalendarHandler "github.com/m04kA/SMC-StudioBooking/internal/api/handlers/update_my_calendar"
	updateMyPhotographerHandler "github.com/m04kA/SMC-StudioBooking/internal/api/handlers/update_my_photographer"
	updatePortfolioItemHandler "github.com/m04kA/SMC-StudioBooking/internal/api/handlers/update_portfolio_item"
	uploadResultsHandler "github.com/m04kA/SMC-StudioBooking/internal/api/handlers/upload_results"
	"github.com/m04kA/SMC-StudioBooking/internal/api/middleware"
	"github.com/m04kA/SMC-StudioBooking/internal/config"
	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/internal/infra/filestore"
	bookingRepo "github.com/m04kA/SMC-StudioBooking/internal/infra/storage/booking"
	catalogRepo "github.com/m04kA/SMC-StudioBooking/internal/infra/storage/catalog"
	homePageRepo "github.com/m04kA/SMC-StudioBooking/internal/infra/storage/homepage"
	photographerRepo "github.com/m04kA/SMC-StudioBooking/internal/infra/storage/photographer"
	portfolioRepo "github.com/m04kA/SMC-StudioBooking/internal/infra/storage/portfolio"
	userRepo "github.com/m04kA/SMC-StudioBooking/internal/infra/storage/user"
	"github.com/m04kA/SMC-StudioBooking/internal/integrations/mailer"
	bookingsService "github.com/m04kA/SMC-StudioBooking/internal/service/bookings"
	calendarService "github.com/m04kA/SMC-StudioBooking/internal/service/calendar"
	catalogService "github.com/m04kA/SMC-StudioBooking/internal/service/catalog"
	homePageService "github.com/m04kA/SMC-StudioBooking/internal/service/homepage"
	notificationsService "github.com/m04kA/SMC-StudioBooking/internal/service/notifications"
	photographersService "github.com/m04kA/SMC-StudioBooking/internal/service/photographers"
	portfolioService "github.com/m04kA/SMC-StudioBooking/internal/service/portfolio"
	usersService "github.com/m04kA/SMC-StudioBooking/internal/service/users"
	createBookingUC "github.com/m04kA/SMC-StudioBooking/internal/usecase/create_booking"
	getAvailableDatesUC "github.com/m04kA/SMC-StudioBooking/internal/usecase/get_available_dates"
	getAvailableSlotsUC "github.com/m04kA/SMC-StudioBooking/internal/usecase/get_available_slots"
	sendResultsEmailUC "github.com/m04kA/SMC-StudioBooking/internal/usecase/send_results_email"
	updateBookingUC "github.com/m04kA/SMC-StudioBooking/internal/usecase/update_booking"
	uploadResultsUC "github.com/m04kA/SMC-StudioBooking/internal/usecase/upload_results"
	"github.com/m04kA/SMC-StudioBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-StudioBooking/pkg/logger"
	"github.com/m04kA/SMC-StudioBooking/pkg/metrics"
	"github.com/m04kA/SMC-StudioBooking/pkg/txmanager"
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

	log.Info("Starting SMC-StudioBooking...")

	location, err := cfg.Booking.Location()
	if err != nil {
		log.Fatal("Failed to load timezone %q: %v", cfg.Booking.Timezone, err)
	}
	log.Info("Studio timezone: %s", location)

	// Инициализируем метрики (если включены).
	// С nil коллектором dbmetrics и счётчики use case работают как no-op.
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
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

	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Репозитории
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	photographerRepository := photographerRepo.NewRepository(wrappedDB)
	catalogRepository := catalogRepo.NewRepository(wrappedDB)
	userRepository := userRepo.NewRepository(wrappedDB)
	portfolioRepository := portfolioRepo.NewRepository(wrappedDB)
	homePageRepository := homePageRepo.NewRepository(wrappedDB)

	// Хранилище результатов и почта
	fileStore := filestore.New(cfg.Media.Dir, cfg.Media.URLPrefix, cfg.Media.MaxUploadSizeMB<<20)

	smtpTLS, err := mailer.ParseTLSMode(cfg.SMTP.TLS)
	if err != nil {
		log.Fatal("Invalid SMTP configuration: %v", err)
	}
	mailClient := mailer.NewClient(mailer.Config{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
		TLSMode:  smtpTLS,
		Timeout:  time.Duration(cfg.SMTP.Timeout) * time.Second,
	}, log)
	log.Info("SMTP client initialized (host=%s, port=%d, tls=%s)", cfg.SMTP.Host, cfg.SMTP.Port, smtpTLS)

	// Сервисы
	notifier := notificationsService.NewService(
		mailClient,
		photographerRepository,
		userRepository,
		cfg.Media.PublicBaseURL,
		time.Duration(cfg.SMTP.Timeout)*time.Second,
		metricsCollector,
		log,
	)
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	calendarSvc := calendarService.NewService(photographerRepository, log)
	catalogSvc := catalogService.NewService(catalogRepository, log)
	userSvc := usersService.NewService(userRepository, txMgr, log)
	photographerSvc := photographersService.NewService(photographerRepository, catalogRepository, log)
	portfolioSvc := portfolioService.NewService(portfolioRepository, catalogRepository, fileStore, txMgr, log)
	homePageSvc := homePageService.NewService(homePageRepository, log)

	// Use cases
	slotRules := domain.SlotRules{GranularityMinutes: cfg.Booking.SlotGranularityMinutes}
	discountPolicy := domain.DiscountPolicy{
		Increment: cfg.Booking.Increment(),
		Cap:       cfg.Booking.Cap(),
	}

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingRepository,
		photographerRepository,
		catalogRepository,
		slotRules,
		location,
		log,
	)
	getAvailableDatesUseCase := getAvailableDatesUC.NewUseCase(
		bookingRepository,
		photographerRepository,
		catalogRepository,
		slotRules,
		cfg.Booking.HorizonDays,
		cfg.Booking.DefaultDurationMinutes,
		location,
		log,
	)
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		photographerRepository,
		catalogRepository,
		userRepository,
		txMgr,
		slotRules,
		location,
		log,
	)
	updateBookingUseCase := updateBookingUC.NewUseCase(
		bookingRepository,
		photographerRepository,
		catalogRepository,
		userRepository,
		notifier,
		metricsCollector,
		txMgr,
		discountPolicy,
		log,
	)
	uploadResultsUseCase := uploadResultsUC.NewUseCase(
		bookingRepository,
		fileStore,
		txMgr,
		log,
	)
	sendResultsEmailUseCase := sendResultsEmailUC.NewUseCase(
		bookingRepository,
		notifier,
		log,
	)

	// Handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getAvailableDates := getAvailableDatesHandler.NewHandler(getAvailableDatesUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	updateBooking := updateBookingHandler.NewHandler(updateBookingUseCase, log)
	uploadResults := uploadResultsHandler.NewHandler(uploadResultsUseCase, cfg.Media.MaxRequestSizeMB<<20, log)
	sendResultsEmail := sendResultsEmailHandler.NewHandler(sendResultsEmailUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	listMyBookings := listBookingsHandler.NewHandler(bookingSvc, listBookingsHandler.ScopeMy, log)
	listPhotographerBookings := listBookingsHandler.NewHandler(bookingSvc, listBookingsHandler.ScopePhotographer, log)
	listAllBookings := listBookingsHandler.NewHandler(bookingSvc, listBookingsHandler.ScopeAll, log)
	getCalendar := getCalendarHandler.NewHandler(calendarSvc, log)
	updateMyCalendar := updateMyCalendarHandler.NewHandler(calendarSvc, log)
	listServices := listServicesHandler.NewHandler(catalogSvc, log)
	getMe := getMeHandler.NewHandler(userSvc, log)
	resetDiscount := resetDiscountHandler.NewHandler(userSvc, log)
	listPhotographers := listPhotographersHandler.NewHandler(photographerSvc, log)
	getPhotographer := getPhotographerHandler.NewHandler(photographerSvc, log)
	getMyPhotographer := getMyPhotographerHandler.NewHandler(photographerSvc, log)
	updateMyPhotographer := updateMyPhotographerHandler.NewHandler(photographerSvc, log)
	listPortfolio := listPortfolioHandler.NewHandler(portfolioSvc, log)
	listMyPortfolio := listMyPortfolioHandler.NewHandler(portfolioSvc, log)
	createPortfolioItem := createPortfolioItemHandler.NewHandler(portfolioSvc, cfg.Media.MaxRequestSizeMB<<20, log)
	updatePortfolioItem := updatePortfolioItemHandler.NewHandler(portfolioSvc, cfg.Media.MaxRequestSizeMB<<20, log)
	deletePortfolioItem := deletePortfolioItemHandler.NewHandler(portfolioSvc, log)
	getHomePage := getHomePageHandler.NewHandler(homePageSvc, log)
	updateHomePage := updateHomePageHandler.NewHandler(homePageSvc, log)

	authn := middleware.NewAuthenticator(cfg.Auth.JWTSecret, photographerRepository, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Загруженные результаты и портфолио отдаются как статика
	r.PathPrefix(cfg.Media.URLPrefix).Handler(middleware.NoSniff(
		http.StripPrefix(cfg.Media.URLPrefix, http.FileServer(http.Dir(cfg.Media.Dir))),
	)).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	api.HandleFunc("/bookings/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/available-dates", getAvailableDates.Handle).Methods(http.MethodGet)
	api.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)
	api.HandleFunc("/photographers", listPhotographers.Handle).Methods(http.MethodGet)
	api.HandleFunc("/photographers/{id:[0-9]+}", getPhotographer.Handle).Methods(http.MethodGet)
	api.HandleFunc("/photographers/{id:[0-9]+}/calendar", getCalendar.Handle).Methods(http.MethodGet)
	api.HandleFunc("/portfolio", listPortfolio.Handle).Methods(http.MethodGet)
	api.HandleFunc("/homepage-content", getHomePage.Handle).Methods(http.MethodGet)

	// Гостевое бронирование: токен необязателен
	optional := api.PathPrefix("").Subrouter()
	optional.Use(authn.OptionalAuth)
	optional.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (Authorization: Bearer <jwt>)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(authn.Auth)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", listAllBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/my", listMyBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/photographer", listPhotographerBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{id:[0-9]+}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{id:[0-9]+}", updateBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{id:[0-9]+}/upload-results", uploadResults.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{id:[0-9]+}/send-results-email", sendResultsEmail.Handle).Methods(http.MethodPost)

	// --- Фотограф ---
	protected.HandleFunc("/photographers/me", getMyPhotographer.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/photographers/me", updateMyPhotographer.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/photographers/me/calendar", updateMyCalendar.Handle).Methods(http.MethodPut)

	// --- Портфолио ---
	protected.HandleFunc("/portfolio/my", listMyPortfolio.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/portfolio/my", createPortfolioItem.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/portfolio/{id:[0-9]+}", updatePortfolioItem.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/portfolio/{id:[0-9]+}", deletePortfolioItem.Handle).Methods(http.MethodDelete)

	// --- Контент главной страницы ---
	protected.HandleFunc("/homepage-content", updateHomePage.Handle).Methods(http.MethodPut, http.MethodPatch)

	// --- Пользователи ---
	protected.HandleFunc("/users/me", getMe.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/users/{id:[0-9]+}/discount/reset", resetDiscount.Handle).Methods(http.MethodPost)

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

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	// Дожидаемся писем с результатами, отправляемых в фоне
	if err := notifier.Wait(shutdownCtx); err != nil {
		log.Error("Results emails were not delivered before shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
