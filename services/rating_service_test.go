package services

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tableside/restaurant-api/models"
)

func TestAddRatingRunningMean(t *testing.T) {
	db := setupTestDB(t, "rating_add")
	restaurant, _, food := seedCatalog(t, db)
	svc := NewRatingService(db)

	_, err := svc.AddRating(owner, food.ID, restaurant.ID, 4.0, "decent")
	assert.NoError(t, err)

	var reloaded models.Food
	db.First(&reloaded, food.ID)
	assert.InDelta(t, 4.0, reloaded.AvePoint, 0.01)
	assert.Equal(t, 1, reloaded.NoOfComment)

	// (4.0*1 + 5.0) / 2 = 4.5
	_, err = svc.AddRating(stranger, food.ID, restaurant.ID, 5.0, "excellent")
	assert.NoError(t, err)

	db.First(&reloaded, food.ID)
	assert.InDelta(t, 4.5, reloaded.AvePoint, 0.01)
	assert.Equal(t, 2, reloaded.NoOfComment)

	_, err = svc.AddRating(admin, food.ID, restaurant.ID, 3.5, "")
	assert.NoError(t, err)

	db.First(&reloaded, food.ID)
	// mean(4.0, 5.0, 3.5) = 4.17 at the stored 2-decimal scale
	assert.InDelta(t, 4.17, reloaded.AvePoint, 0.01)
	assert.Equal(t, 3, reloaded.NoOfComment)
}

func TestAddRatingValidation(t *testing.T) {
	db := setupTestDB(t, "rating_validation")
	restaurant, _, food := seedCatalog(t, db)
	svc := NewRatingService(db)

	_, err := svc.AddRating(owner, food.ID, restaurant.ID, -0.5, "")
	assertCode(t, err, http.StatusBadRequest)

	_, err = svc.AddRating(owner, food.ID, restaurant.ID, 5.5, "")
	assertCode(t, err, http.StatusBadRequest)

	// More than one decimal place is rejected.
	_, err = svc.AddRating(owner, food.ID, restaurant.ID, 4.25, "")
	assertCode(t, err, http.StatusBadRequest)

	_, err = svc.AddRating(owner, 4242, restaurant.ID, 4.0, "")
	assertCode(t, err, http.StatusNotFound)

	_, err = svc.AddRating(owner, food.ID, 4242, 4.0, "")
	assertCode(t, err, http.StatusNotFound)

	// No failed attempt may have touched the aggregate.
	var reloaded models.Food
	db.First(&reloaded, food.ID)
	assert.Equal(t, 0, reloaded.NoOfComment)
	assert.InDelta(t, 0.0, reloaded.AvePoint, 0.001)
}

func TestDeleteCommentReversesMean(t *testing.T) {
	db := setupTestDB(t, "rating_delete")
	restaurant, _, food := seedCatalog(t, db)
	svc := NewRatingService(db)

	c1, _ := svc.AddRating(owner, food.ID, restaurant.ID, 4.0, "a")
	c2, _ := svc.AddRating(stranger, food.ID, restaurant.ID, 5.0, "b")

	// Strangers cannot delete someone else's comment.
	err := svc.DeleteComment(stranger, c1.ID)
	assertCode(t, err, http.StatusForbidden)

	// Author delete reverses the mean: (4.5*2 - 5.0) / 1 = 4.0.
	assert.NoError(t, svc.DeleteComment(stranger, c2.ID))
	var reloaded models.Food
	db.First(&reloaded, food.ID)
	assert.InDelta(t, 4.0, reloaded.AvePoint, 0.01)
	assert.Equal(t, 1, reloaded.NoOfComment)

	// Removing the last rating resets the aggregate instead of dividing
	// by zero. Admin may delete any comment.
	assert.NoError(t, svc.DeleteComment(admin, c1.ID))
	db.First(&reloaded, food.ID)
	assert.Equal(t, 0.0, reloaded.AvePoint)
	assert.Equal(t, 0, reloaded.NoOfComment)

	err = svc.DeleteComment(admin, c1.ID)
	assertCode(t, err, http.StatusNotFound)
}

func TestDeleteCommentsDownToZero(t *testing.T) {
	db := setupTestDB(t, "rating_drain")
	restaurant, _, food := seedCatalog(t, db)
	svc := NewRatingService(db)

	c1, _ := svc.AddRating(owner, food.ID, restaurant.ID, 4.0, "a")
	c2, _ := svc.AddRating(stranger, food.ID, restaurant.ID, 5.0, "b")
	c3, _ := svc.AddRating(admin, food.ID, restaurant.ID, 3.0, "c")

	// Every step of the drain holds mean == sum(points)/count, and the
	// final step resets rather than dividing by an empty count.
	var reloaded models.Food

	assert.NoError(t, svc.DeleteComment(admin, c3.ID))
	db.First(&reloaded, food.ID)
	assert.InDelta(t, 4.5, reloaded.AvePoint, 0.01)
	assert.Equal(t, 2, reloaded.NoOfComment)

	assert.NoError(t, svc.DeleteComment(admin, c2.ID))
	db.First(&reloaded, food.ID)
	assert.InDelta(t, 4.0, reloaded.AvePoint, 0.01)
	assert.Equal(t, 1, reloaded.NoOfComment)

	assert.NoError(t, svc.DeleteComment(admin, c1.ID))
	db.First(&reloaded, food.ID)
	assert.Equal(t, 0.0, reloaded.AvePoint)
	assert.Equal(t, 0, reloaded.NoOfComment)

	// The aggregate restarts cleanly after a full drain.
	_, err := svc.AddRating(owner, food.ID, restaurant.ID, 2.0, "back")
	assert.NoError(t, err)
	db.First(&reloaded, food.ID)
	assert.InDelta(t, 2.0, reloaded.AvePoint, 0.01)
	assert.Equal(t, 1, reloaded.NoOfComment)
}

func TestEditComment(t *testing.T) {
	db := setupTestDB(t, "rating_edit")
	restaurant, _, food := seedCatalog(t, db)
	svc := NewRatingService(db)

	c1, _ := svc.AddRating(owner, food.ID, restaurant.ID, 4.0, "original")
	_, _ = svc.AddRating(stranger, food.ID, restaurant.ID, 5.0, "other")

	// Text-only edit leaves the aggregate alone.
	text := "edited"
	updated, err := svc.EditComment(owner, c1.ID, &text, nil)
	assert.NoError(t, err)
	assert.Equal(t, "edited", updated.Content)

	var reloaded models.Food
	db.First(&reloaded, food.ID)
	assert.InDelta(t, 4.5, reloaded.AvePoint, 0.01)
	assert.Equal(t, 2, reloaded.NoOfComment)

	// Point edit swaps the old point for the new one:
	// (4.5*2 - 4.0 + 2.0) / 2 = 3.5.
	newPoint := 2.0
	updated, err = svc.EditComment(owner, c1.ID, nil, &newPoint)
	assert.NoError(t, err)
	assert.Equal(t, 2.0, updated.GivePoint)

	db.First(&reloaded, food.ID)
	assert.InDelta(t, 3.5, reloaded.AvePoint, 0.01)
	assert.Equal(t, 2, reloaded.NoOfComment)

	// Only the author may edit; admins included.
	_, err = svc.EditComment(admin, c1.ID, &text, nil)
	assertCode(t, err, http.StatusForbidden)

	badPoint := 9.0
	_, err = svc.EditComment(owner, c1.ID, nil, &badPoint)
	assertCode(t, err, http.StatusBadRequest)
}

func TestSearchComments(t *testing.T) {
	db := setupTestDB(t, "rating_search")
	restaurant, _, food := seedCatalog(t, db)
	svc := NewRatingService(db)

	_, _ = svc.AddRating(owner, food.ID, restaurant.ID, 4.0, "good duck")
	_, _ = svc.AddRating(stranger, food.ID, restaurant.ID, 2.0, "too salty")

	low := 3.0
	got, err := svc.SearchComments(CommentFilter{MinPoint: &low})
	assert.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, "good duck", got[0].Content)

	got, err = svc.SearchComments(CommentFilter{FoodName: "Duck"})
	assert.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = svc.SearchComments(CommentFilter{UserID: stranger.ID})
	assert.NoError(t, err)
	assert.Len(t, got, 1)

	got, err = svc.SearchComments(CommentFilter{RestaurantID: restaurant.ID + 100})
	assert.NoError(t, err)
	assert.Len(t, got, 0)
}
