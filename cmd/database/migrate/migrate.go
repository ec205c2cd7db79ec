package migration

import (
	"Food-Sharing-Platform/entities"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"
)

// legacyColumns were added to deployed databases after their tables existed.
var legacyColumns = []struct {
	model  any
	table  string
	column string
}{
	{&entities.Food{}, "foods", "english_name"},
	{&entities.Food{}, "foods", "owner_email"},
	{&entities.Food{}, "foods", "created_at"},
	{&entities.Notification{}, "notifications", "is_read"},
}

func Migrate(db *gorm.DB) error {
	models := []struct {
		name  string
		model any
	}{
		{"user", &entities.User{}},
		{"food", &entities.Food{}},
		{"saved location", &entities.SavedLocation{}},
		{"notification", &entities.Notification{}},
		{"food request", &entities.FoodRequest{}},
		{"message", &entities.Message{}},
		{"review", &entities.Review{}},
	}

	for _, m := range models {
		if err := db.AutoMigrate(m.model); err != nil {
			return fmt.Errorf("migrating %s table: %w", m.name, err)
		}
	}

	if err := addLegacyColumns(db); err != nil {
		return err
	}

	log.Info("Database migration complete")
	return nil
}

func addLegacyColumns(db *gorm.DB) error {
	migrator := db.Migrator()
	for _, c := range legacyColumns {
		if migrator.HasColumn(c.model, c.column) {
			continue
		}
		if err := migrator.AddColumn(c.model, c.column); err != nil {
			if isDuplicateColumn(err) {
				log.Debugf("column %s.%s already present: %v", c.table, c.column, err)
				continue
			}
			return fmt.Errorf("adding column %s.%s: %w", c.table, c.column, err)
		}
		log.Infof("added column %s.%s", c.table, c.column)
	}
	return nil
}

func isDuplicateColumn(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate column") || strings.Contains(msg, "already exists")
}
