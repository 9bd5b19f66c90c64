package services

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/tableside/restaurant-api/models"
	"github.com/tableside/restaurant-api/utils"
)

// setupTestDB opens a named in-memory SQLite database and migrates every
// model. A distinct name per test keeps the databases isolated.
func setupTestDB(t *testing.T, name string) *gorm.DB {
	t.Helper()
	utils.InitLogger()

	db, err := gorm.Open(sqlite.Open("file:"+name+"?mode=memory&cache=shared"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to open in-memory sqlite: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Restaurant{},
		&models.Table{},
		&models.FoodType{},
		&models.Food{},
		&models.Unavailable{},
		&models.Order{},
		&models.OrderItem{},
		&models.Comment{},
	)
	if err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

// seedCatalog creates a restaurant with one 4-seat table, a type, and a
// food priced 12.50. Returns the created rows for the tests to reference.
func seedCatalog(t *testing.T, db *gorm.DB) (models.Restaurant, models.Table, models.Food) {
	t.Helper()

	restaurant := models.Restaurant{Name: "Golden Duck", Location: "12 Canal Street"}
	if err := db.Create(&restaurant).Error; err != nil {
		t.Fatalf("seed restaurant: %v", err)
	}

	table := models.Table{RestaurantID: restaurant.ID, MaxNo: 4, Available: true}
	if err := db.Create(&table).Error; err != nil {
		t.Fatalf("seed table: %v", err)
	}

	foodType := models.FoodType{ChineseName: "主菜", EnglishName: "Mains"}
	if err := db.Create(&foodType).Error; err != nil {
		t.Fatalf("seed type: %v", err)
	}

	food := models.Food{
		TypeID:      foodType.ID,
		ChineseName: "烤鸭",
		EnglishName: "Roast Duck",
		Price:       12.50,
	}
	if err := db.Create(&food).Error; err != nil {
		t.Fatalf("seed food: %v", err)
	}

	return restaurant, table, food
}
