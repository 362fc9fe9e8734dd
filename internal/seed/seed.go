package seed

import (
	"log"
	"time"

	"invoice-dashboard-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Run clears all tables and repopulates them from the fixture set. Deletes go
// child-first so the invoice→customer constraint never trips.
func Run(db *gorm.DB) error {
	for _, m := range []interface{}{
		&models.Revenue{},
		&models.InvoiceAuditLog{},
		&models.Invoice{},
		&models.Customer{},
		&models.User{},
	} {
		if err := db.Where("1 = 1").Delete(m).Error; err != nil {
			return err
		}
	}

	for i := range users {
		u := users[i]
		u.CreatedAt = time.Now().UTC()
		if err := db.Create(&u).Error; err != nil {
			return err
		}
	}

	for i := range customers {
		c := customers[i]
		c.CreatedAt = time.Now().UTC()
		if err := db.Create(&c).Error; err != nil {
			return err
		}
	}

	for _, f := range invoices {
		inv := models.Invoice{
			ID:         uuid.New(),
			CustomerID: customers[f.customer].ID,
			Amount:     f.amount,
			Status:     f.status,
			Date:       mustDate(f.date),
			CreatedAt:  time.Now().UTC(),
		}
		if err := db.Create(&inv).Error; err != nil {
			return err
		}
	}

	for i := range revenue {
		r := revenue[i]
		if err := db.Create(&r).Error; err != nil {
			return err
		}
	}

	log.Printf("seeded %d users, %d customers, %d invoices, %d revenue rows",
		len(users), len(customers), len(invoices), len(revenue))
	return nil
}
