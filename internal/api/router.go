package api

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/coworkly/coworkly-backend/internal/amenity"
	amenityHttp "github.com/coworkly/coworkly-backend/internal/amenity/http"
	"github.com/coworkly/coworkly-backend/internal/audit"
	auditHttp "github.com/coworkly/coworkly-backend/internal/audit/http"
	"github.com/coworkly/coworkly-backend/internal/auth"
	"github.com/coworkly/coworkly-backend/internal/backup"
	backupHttp "github.com/coworkly/coworkly-backend/internal/backup/http"
	"github.com/coworkly/coworkly-backend/internal/booking"
	bookingHttp "github.com/coworkly/coworkly-backend/internal/booking/http"
	"github.com/coworkly/coworkly-backend/internal/contact"
	contactHttp "github.com/coworkly/coworkly-backend/internal/contact/http"
	"github.com/coworkly/coworkly-backend/internal/payment"
	paymentHttp "github.com/coworkly/coworkly-backend/internal/payment/http"
	"github.com/coworkly/coworkly-backend/internal/reservation"
	reservationHttp "github.com/coworkly/coworkly-backend/internal/reservation/http"
	"github.com/coworkly/coworkly-backend/internal/space"
	spaceHttp "github.com/coworkly/coworkly-backend/internal/space/http"
	"github.com/coworkly/coworkly-backend/internal/user"
	userHttp "github.com/coworkly/coworkly-backend/internal/user/http"
)

// Config holds the services and settings the router needs.
type Config struct {
	IsProduction bool
	ProdOrigins  string

	UserService        user.Service
	SpaceService       space.Service
	BookingService     booking.Service
	ReservationService reservation.Service
	PaymentService     payment.Service
	AmenityService     amenity.Service
	ContactService     contact.Service
	AuditService       audit.Service
	BackupService      backup.Service

	JWTManager *auth.JWTManager
}

// NewRouter initializes the HTTP router engine.
// It is responsible for assembling middleware (CORS, Logger, Auth) and registering routes for various modules.
func NewRouter(cfg Config) *gin.Engine {
	r := gin.New()

	// Global Middleware:
	// - Logger: Logs request information to the console.
	// - Recovery: Captures panics to prevent server crashes and returns a 500 error.
	r.Use(gin.Logger(), gin.Recovery())

	// Configure CORS (Cross-Origin Resource Sharing).
	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction && cfg.ProdOrigins != "" {
		corsConfig.AllowOrigins = strings.Split(cfg.ProdOrigins, ",")
	} else {
		corsConfig.AllowOrigins = []string{
			"http://localhost:3000", // Frontend dev server
			"http://localhost:8081", // Swagger
		}
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	// authMiddleware: Validates if the request contains a valid JWT.
	authMiddleware := auth.AuthRequired(cfg.JWTManager)
	// adminMiddleware: Further checks if the authenticated user has admin privileges.
	adminMiddleware := RequireAdmin(cfg.UserService)

	// Initialize HTTP Handlers for each module (injecting Service dependencies).
	userHandler := userHttp.NewHandler(cfg.UserService, cfg.JWTManager)
	spaceHandler := spaceHttp.NewHandler(cfg.SpaceService)
	bookingHandler := bookingHttp.NewHandler(cfg.BookingService, cfg.UserService)
	reservationHandler := reservationHttp.NewHandler(cfg.ReservationService)
	paymentHandler := paymentHttp.NewHandler(cfg.PaymentService)
	amenityHandler := amenityHttp.NewHandler(cfg.AmenityService)
	contactHandler := contactHttp.NewHandler(cfg.ContactService)
	auditHandler := auditHttp.NewHandler(cfg.AuditService)
	backupHandler := backupHttp.NewHandler(cfg.BackupService)

	// Register API routes under /v1
	v1 := r.Group("/v1")
	{
		userHttp.RegisterRoutes(v1, userHandler, authMiddleware, adminMiddleware)
		spaceHttp.RegisterRoutes(v1, spaceHandler, authMiddleware, adminMiddleware)
		bookingHttp.RegisterRoutes(v1, bookingHandler, authMiddleware, adminMiddleware)
		reservationHttp.RegisterRoutes(v1, reservationHandler, authMiddleware, adminMiddleware)
		paymentHttp.RegisterRoutes(v1, paymentHandler, authMiddleware, adminMiddleware)
		amenityHttp.RegisterRoutes(v1, amenityHandler, authMiddleware, adminMiddleware)
		contactHttp.RegisterRoutes(v1, contactHandler, authMiddleware, adminMiddleware)
		auditHttp.RegisterRoutes(v1, auditHandler, authMiddleware, adminMiddleware)
		backupHttp.RegisterRoutes(v1, backupHandler, authMiddleware, adminMiddleware)
	}

	return r
}
