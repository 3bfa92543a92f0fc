package repository

import "gorm.io/gorm"

// Migrate brings the schema up to date. The partial index keeps a tenant
// from ever holding two default layouts, which SetDefault relies on.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&layoutModel{},
		&draftModel{},
		&bookingModel{},
		&vehicleModel{},
		&driverModel{},
		&partnerModel{},
		&settingsModel{},
		&userModel{},
	); err != nil {
		return err
	}

	return db.Exec(
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_one_default_layout
		 ON layouts (tenant_id) WHERE is_default`,
	).Error
}
