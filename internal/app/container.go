package app

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"

	"github.com/coworkly/coworkly-backend/internal/amenity"
	"github.com/coworkly/coworkly-backend/internal/api"
	"github.com/coworkly/coworkly-backend/internal/audit"
	"github.com/coworkly/coworkly-backend/internal/auth"
	"github.com/coworkly/coworkly-backend/internal/backup"
	"github.com/coworkly/coworkly-backend/internal/booking"
	"github.com/coworkly/coworkly-backend/internal/config"
	"github.com/coworkly/coworkly-backend/internal/contact"
	"github.com/coworkly/coworkly-backend/internal/email"
	"github.com/coworkly/coworkly-backend/internal/payment"
	"github.com/coworkly/coworkly-backend/internal/reservation"
	"github.com/coworkly/coworkly-backend/internal/pkg/storage"
	"github.com/coworkly/coworkly-backend/internal/space"
	"github.com/coworkly/coworkly-backend/internal/user"
)

// Container holds the initialized components that are needed externally.
type Container struct {
	Router          *gin.Engine
	JWTManager      *auth.JWTManager
	BackupScheduler *backup.Scheduler
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg *config.Config, pool *pgxpool.Pool) (*Container, error) {
	// Init Components
	passwordHasher := auth.NewBcryptPasswordHasherWithCost(cfg.BcryptCost)
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTAccessTokenTTL)

	store, err := storage.NewLocalStorage(cfg.StorageDir)
	if err != nil {
		return nil, fmt.Errorf("init storage: %w", err)
	}
	imageProcessor := storage.NewImageProcessor()

	// Outbound email is optional. Without credentials the services run
	// with notifications disabled.
	var sender email.Sender
	if cfg.SESAccessKeyID != "" {
		sesClient, err := email.NewSESClient(cfg.SESAccessKeyID, cfg.SESSecretAccessKey, cfg.SESRegion, cfg.EmailSender)
		if err != nil {
			return nil, fmt.Errorf("init email client: %w", err)
		}
		sender = sesClient
	} else {
		log.Warn().Msg("SES credentials not configured, outbound email disabled")
	}

	// Stripe is optional as well. Without a key only manual payments are
	// accepted.
	var gateway payment.Gateway
	if cfg.StripeSecretKey != "" {
		gateway = payment.NewStripeGateway(cfg.StripeSecretKey, "")
	} else {
		log.Warn().Msg("Stripe key not configured, card payments disabled")
	}

	// Audit Module
	auditRepo := audit.NewPgxRepository(pool)
	auditService := audit.NewService(auditRepo)

	// User Module
	userRepo := user.NewPgxRepository(pool)
	userService := user.NewService(userRepo, passwordHasher, auditService)

	// Space Module
	spaceRepo := space.NewPgxRepository(pool)
	spaceService := space.NewService(spaceRepo, store, imageProcessor, auditService)

	// Booking Module
	bookingRepo := booking.NewPgxRepository(pool)
	bookingService := booking.NewService(bookingRepo, spaceService, userService, sender, auditService)

	// Reservation Module
	reservationRepo := reservation.NewPgxRepository(pool)
	reservationService := reservation.NewService(reservationRepo, spaceService)

	// Payment Module
	paymentRepo := payment.NewPgxRepository(pool)
	paymentService := payment.NewService(paymentRepo, reservationRepo, userService, gateway, sender, auditService)

	// Amenity Module
	amenityRepo := amenity.NewPgxRepository(pool)
	amenityService := amenity.NewService(amenityRepo, auditService)

	// Contact Module
	contactRepo := contact.NewRepository(pool)
	contactService := contact.NewService(contactRepo, sender, cfg.ContactInbox)

	// Backup Module
	backupService := backup.NewService(cfg.DBDSN, cfg.BackupDir, cfg.BackupKeep)
	backupScheduler, err := backup.NewScheduler(backupService, cfg.BackupCronExpr)
	if err != nil {
		return nil, fmt.Errorf("init backup scheduler: %w", err)
	}

	// API Router Config
	routerParams := api.Config{
		IsProduction:       cfg.IsProduction,
		ProdOrigins:        cfg.ProdOrigins,
		UserService:        userService,
		SpaceService:       spaceService,
		BookingService:     bookingService,
		ReservationService: reservationService,
		PaymentService:     paymentService,
		AmenityService:     amenityService,
		ContactService:     contactService,
		AuditService:       auditService,
		BackupService:      backupService,
		JWTManager:         jwtManager,
	}

	// Router
	router := api.NewRouter(routerParams)

	return &Container{
		Router:          router,
		JWTManager:      jwtManager,
		BackupScheduler: backupScheduler,
	}, nil
}
