package postgres

import (
	"sepulka/internal/adapters/out/postgres/flowrepo"
	"sepulka/internal/adapters/out/postgres/sepulkarepo"
	"sepulka/internal/adapters/out/postgres/userrepo"

	"gorm.io/gorm"
)

// Models lists every persisted DTO in dependency order.
func Models() []any {
	return []any{
		&userrepo.UserDTO{},
		&sepulkarepo.SepulkaDTO{},
		&sepulkarepo.ProcessDTO{},
		&sepulkarepo.DeliveryDTO{},
		&flowrepo.FlowDTO{},
	}
}

// Migrate creates or alters the schema to match Models.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
