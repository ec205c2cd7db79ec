package seed

import (
	"Food-Sharing-Platform/domain"
	"Food-Sharing-Platform/entities"
	"fmt"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"
)

const seedLocation = "Düzce Üniversitesi Yemekhane"

func foods() []entities.Food {
	return []entities.Food{
		{
			Name:        "Tavuklu Pilav",
			EnglishName: "chicken pilaf",
			Image:       "images/tavuk-pilav.jpg",
			Description: "Taze, sıcak tavuklu pilav. Acil alınmalı.",
			Quantity:    "6 porsiyon",
			Time:        "19:00",
			Location:    seedLocation,
			Status:      domain.FoodStatusReady,
		},
		{
			Name:        "Sebzeli Salata",
			EnglishName: "vegetable salad",
			Image:       "images/sebzeli-salata.jpg",
			Description: "Hazırda soğuk servis, yeşillikler taze.",
			Quantity:    "4 porsiyon",
			Time:        "18:30",
			Location:    seedLocation,
			Status:      domain.FoodStatusReady,
		},
		{
			Name:        "Mercimek Çorbası",
			EnglishName: "lentil soup",
			Image:       "images/MercimekÇorbası.jpg",
			Description: "Sıcak çorba, kısa sürede alınmalı.",
			Quantity:    "8 porsiyon",
			Time:        "20:00",
			Location:    seedLocation,
			Status:      domain.FoodStatusSoon,
		},
	}
}

// Seed inserts the starter listings into an empty foods table.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&entities.Food{}).Count(&count).Error; err != nil {
		return fmt.Errorf("counting foods: %w", err)
	}
	if count > 0 {
		return nil
	}

	rows := foods()
	if err := db.Create(&rows).Error; err != nil {
		return fmt.Errorf("seeding foods: %w", err)
	}
	log.Infof("seeded %d food listings", len(rows))
	return nil
}
