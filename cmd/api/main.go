package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"taxiforms/internal/config"
	"taxiforms/internal/database"
	"taxiforms/internal/middleware"
	"taxiforms/internal/modules/auth"
	"taxiforms/internal/modules/booking"
	"taxiforms/internal/modules/embed"
	"taxiforms/internal/modules/fleet"
	"taxiforms/internal/modules/layout"
	"taxiforms/internal/modules/partner"
	"taxiforms/internal/modules/render"
	"taxiforms/internal/modules/settings"
	jwtsvc "taxiforms/internal/pkg/jwt"
	"taxiforms/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadRuntimeConfig()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}

	if err := repository.Migrate(db); err != nil {
		log.Fatal(err)
	}

	layoutRepo := repository.NewLayoutRepository(db)
	draftRepo := repository.NewDraftRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	vehicleRepo := repository.NewVehicleRepository(db)
	driverRepo := repository.NewDriverRepository(db)
	partnerRepo := repository.NewPartnerRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	userRepo := repository.NewUserRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTAccessTTL)

	hub := embed.NewHub()
	defer hub.Close()

	layoutService := layout.NewService(layoutRepo, draftRepo, hub)
	sessionManager := layout.NewManager(layoutService, draftRepo, cfg.AutosaveDebounce)
	layoutHandler := layout.NewHandler(layoutService, sessionManager)

	renderHandler := render.NewHandler(sessionManager)

	bookingService := booking.NewService(bookingRepo, vehicleRepo, layoutService)
	bookingHandler := booking.NewHandler(bookingService, cfg.TenantID)

	fleetService := fleet.NewService(vehicleRepo, driverRepo)
	fleetHandler := fleet.NewHandler(fleetService, cfg.TenantID)

	partnerService := partner.NewService(partnerRepo, layoutService)
	partnerHandler := partner.NewHandler(partnerService)

	settingsService := settings.NewService(settingsRepo)
	settingsHandler := settings.NewHandler(settingsService)

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	embedHandler := embed.NewHandler(partnerService, layoutService, bookingService, hub)

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(middleware.ErrorLogger())
	r.Use(middleware.CORS())

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterPublicRoutes(v1)
		bookingHandler.RegisterPublicRoutes(v1)
		fleetHandler.RegisterPublicRoutes(v1)
		embedHandler.RegisterRoutes(v1)

		// protected (dashboard)
		protected := v1.Group("/")
		protected.Use(middleware.JWTAuth(j))
		{
			authHandler.RegisterRoutes(protected)
			layoutHandler.RegisterRoutes(protected)
			renderHandler.RegisterRoutes(protected)
			bookingHandler.RegisterRoutes(protected)
			fleetHandler.RegisterRoutes(protected)
			settingsHandler.RegisterRoutes(protected)

			admin := protected.Group("/")
			admin.Use(middleware.RequireRole("admin"))
			{
				partnerHandler.RegisterRoutes(admin)
			}
		}
	}

	log.Println("Listening on", cfg.ListenAddr)
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatal(err)
	}
}
