package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tableside/restaurant-api/models"
)

func TestCanWriteCatalog(t *testing.T) {
	assert.True(t, CanWriteCatalog(Caller{ID: 1, Role: models.RoleAdmin}))
	assert.False(t, CanWriteCatalog(Caller{ID: 1, Role: models.RoleCustomer}))
	assert.False(t, CanWriteCatalog(Caller{ID: 1, Role: ""}))
}

func TestOrderPolicies(t *testing.T) {
	order := &models.Order{UserID: 7}

	tests := []struct {
		name      string
		caller    Caller
		canView   bool
		canModify bool
	}{
		{"owner", Caller{ID: 7, Role: models.RoleCustomer}, true, true},
		{"stranger", Caller{ID: 8, Role: models.RoleCustomer}, false, false},
		{"admin", Caller{ID: 99, Role: models.RoleAdmin}, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.canView, CanViewOrder(tt.caller, order))
			assert.Equal(t, tt.canModify, CanModifyOrder(tt.caller, order))
		})
	}

	// Completion and deletion never fall to the owner.
	assert.False(t, CanCompleteOrder(Caller{ID: 7, Role: models.RoleCustomer}))
	assert.True(t, CanCompleteOrder(Caller{ID: 99, Role: models.RoleAdmin}))
}

func TestCommentPolicies(t *testing.T) {
	comment := &models.Comment{UserID: 3}

	author := Caller{ID: 3, Role: models.RoleCustomer}
	stranger := Caller{ID: 4, Role: models.RoleCustomer}
	admin := Caller{ID: 5, Role: models.RoleAdmin}

	assert.True(t, CanEditComment(author, comment))
	assert.False(t, CanEditComment(stranger, comment))
	// Editing is author-only even for admins.
	assert.False(t, CanEditComment(admin, comment))

	assert.True(t, CanDeleteComment(author, comment))
	assert.False(t, CanDeleteComment(stranger, comment))
	assert.True(t, CanDeleteComment(admin, comment))
}
