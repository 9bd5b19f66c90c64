package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/tableside/restaurant-api/models"
	"github.com/tableside/restaurant-api/router"
	"github.com/tableside/restaurant-api/utils"
)

// setupEnv builds an in-memory database, the full router, and two users:
// an admin and a customer. Returns their bearer tokens along with the
// handles the tests need.
func setupEnv(t *testing.T, name string) (*gorm.DB, *gin.Engine, string, string) {
	t.Helper()
	utils.InitLogger()
	gin.SetMode(gin.TestMode)

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

	adminUser := models.User{Name: "Admin", Email: "admin@" + name + ".test", Password: "x", Role: models.RoleAdmin}
	customer := models.User{Name: "Customer", Email: "customer@" + name + ".test", Password: "x", Role: models.RoleCustomer}
	db.Create(&adminUser)
	db.Create(&customer)

	adminToken, err := utils.GenerateToken(adminUser.ID, adminUser.Role)
	if err != nil {
		t.Fatalf("token: %v", err)
	}
	customerToken, err := utils.GenerateToken(customer.ID, customer.Role)
	if err != nil {
		t.Fatalf("token: %v", err)
	}

	return db, router.SetupRouter(db), adminToken, customerToken
}

// seedMenu creates a restaurant, a table, a type, and one food.
func seedMenu(t *testing.T, db *gorm.DB) (models.Restaurant, models.Table, models.Food) {
	t.Helper()

	restaurant := models.Restaurant{Name: "Golden Duck", Location: "12 Canal Street"}
	db.Create(&restaurant)
	table := models.Table{RestaurantID: restaurant.ID, MaxNo: 4, Available: true}
	db.Create(&table)
	foodType := models.FoodType{ChineseName: "主菜", EnglishName: "Mains"}
	db.Create(&foodType)
	food := models.Food{TypeID: foodType.ID, ChineseName: "烤鸭", EnglishName: "Roast Duck", Price: 12.50}
	db.Create(&food)

	return restaurant, table, food
}

// doJSON performs a request with an optional bearer token and decodes the
// response envelope.
func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) (int, map[string]interface{}) {
	t.Helper()

	var buf *bytes.Buffer
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		buf = bytes.NewBuffer(raw)
	} else {
		buf = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp map[string]interface{}
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal response %q: %v", w.Body.String(), err)
		}
	}
	return w.Code, resp
}

func dataMap(t *testing.T, resp map[string]interface{}) map[string]interface{} {
	t.Helper()
	data, ok := resp["data"].(map[string]interface{})
	if !ok {
		t.Fatalf("response data is not an object: %v", resp)
	}
	return data
}
