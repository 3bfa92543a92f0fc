package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"taxiforms/internal/database"
	"taxiforms/internal/domain"
	"taxiforms/internal/modules/layout"
	"taxiforms/internal/repository"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "taxiforms.db"
	}
	tenantID := os.Getenv("TENANT_ID")
	if tenantID == "" {
		tenantID = "default"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := repository.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	ctx := context.Background()

	// ================== ADMIN ==================
	log.Println("Creating admin user...")
	userRepo := repository.NewUserRepository(db)

	adminEmail := "admin@taxiforms.local"
	existing, err := userRepo.GetByEmail(ctx, adminEmail)
	if err != nil {
		log.Fatal(err)
	}
	if existing == nil {
		hash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
		admin := domain.User{
			TenantID:     tenantID,
			Email:        adminEmail,
			PasswordHash: string(hash),
			Name:         "Administrator",
			Role:         domain.RoleAdmin,
			IsActive:     true,
		}
		if err := userRepo.Create(ctx, &admin); err != nil {
			log.Fatal(err)
		}
		log.Println("Admin created:", adminEmail, "/ admin123")
	} else {
		log.Println("Admin already present, skipping")
	}

	// ================== DEFAULT LAYOUT ==================
	log.Println("Creating default layout...")
	layoutRepo := repository.NewLayoutRepository(db)

	def, err := layoutRepo.GetDefault(ctx, tenantID)
	if err != nil {
		log.Fatal(err)
	}
	if def == nil {
		l := &domain.Layout{
			ID:          uuid.NewString(),
			TenantID:    tenantID,
			Name:        "Booking form",
			Description: "Seeded starter form",
			Fields:      starterFields(),
			IsActive:    true,
			IsDefault:   true,
		}
		if err := layoutRepo.Create(ctx, l); err != nil {
			log.Fatal(err)
		}
		log.Println("Default layout created:", l.ID)
	} else {
		log.Println("Default layout already present, skipping")
	}

	// ================== VEHICLES ==================
	log.Println("Creating vehicle classes...")
	vehicleRepo := repository.NewVehicleRepository(db)

	vehicles, err := vehicleRepo.List(ctx, tenantID)
	if err != nil {
		log.Fatal(err)
	}
	if len(vehicles) == 0 {
		starter := []domain.Vehicle{
			{Name: "Sedan", Description: "Up to 3 passengers", Icon: "car", Capacity: 3, Luggage: 2, BaseFare: 5, PerKM: 1.5, PerHour: 35, MinimumFare: 10, SortOrder: 1},
			{Name: "Minivan", Description: "Up to 6 passengers", Icon: "van", Capacity: 6, Luggage: 5, BaseFare: 8, PerKM: 2, PerHour: 45, MinimumFare: 15, SortOrder: 2},
			{Name: "Executive", Description: "Business class", Icon: "star", Capacity: 3, Luggage: 2, BaseFare: 15, PerKM: 3, PerHour: 70, MinimumFare: 25, SortOrder: 3},
		}
		for i := range starter {
			starter[i].TenantID = tenantID
			starter[i].IsActive = true
			if err := vehicleRepo.Create(ctx, &starter[i]); err != nil {
				log.Fatal(err)
			}
		}
		log.Printf("Created %d vehicle classes\n", len(starter))
	} else {
		log.Println("Vehicles already present, skipping")
	}

	// ================== SETTINGS ==================
	log.Println("Creating settings...")
	settingsRepo := repository.NewSettingsRepository(db)

	st, err := settingsRepo.Get(ctx, tenantID)
	if err != nil {
		log.Fatal(err)
	}
	if st == nil {
		if err := settingsRepo.Upsert(ctx, &domain.Settings{
			TenantID:     tenantID,
			CompanyName:  "Taxi Forms Demo",
			Currency:     "USD",
			DistanceUnit: "km",
		}); err != nil {
			log.Fatal(err)
		}
	} else {
		log.Println("Settings already present, skipping")
	}

	log.Println("Seed completed!")
	log.Println("Admin:", adminEmail, "/ admin123")
}

// starterFields builds one enabled field per registry entry in canonical
// order, carrying over the registry defaults.
func starterFields() []domain.Field {
	fields := make([]domain.Field, 0, len(layout.AllFieldTypes))
	for i, t := range layout.AllFieldTypes {
		meta, _ := layout.Lookup(t)

		f := domain.Field{
			ID:          fmt.Sprintf("fld-%s", t),
			Type:        t,
			Label:       meta.Label,
			Required:    meta.Required,
			Enabled:     true,
			Width:       meta.DefaultWidth,
			Order:       i,
			VisibleWhen: meta.VisibleWhen,
		}
		if meta.SupportsBorder {
			v := true
			f.ShowBorder = &v
		}
		fields = append(fields, f)
	}
	return fields
}
