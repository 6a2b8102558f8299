// database/bootstrap.go
package database

import (
	"log"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"gorm.io/gorm"

	"farmops/entities"
)

func OpenSQLite(path string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Fatalf("open sqlite: %v", err)
	}

	if err := db.AutoMigrate(
		&entities.Season{},
		&entities.Crop{},
		&entities.Tier{},
		&entities.ApplicationTiming{},
		&entities.PlannedApplication{},
		&entities.Product{},
		&entities.InventoryItem{},
		&entities.PurchaseOrder{},
		&entities.PurchaseOrderLine{},
		&entities.PriceBookEntry{},
		&entities.Invoice{},
		&entities.InvoiceLine{},
		&entities.Field{},
		&entities.FieldAssignment{},
		&entities.ApplicationRecord{},
	); err != nil {
		log.Fatalf("automigrate: %v", err)
	}

	return db
}
