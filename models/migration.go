package models

import (
	"log"

	"github.com/jirajara/invoices_backend/config"
)

func MigrateTable() {
	db := config.GetDB()

	err := db.AutoMigrate(
		&User{},
		&Address{},
		&Tax{},
		&Invoice{},
		&InvoiceItem{},
	)
	if err != nil {
		log.Fatal(err)
	}
}
