package services_test

import (
	"testing"

	"knowledgebase/models"
	"knowledgebase/services"

	"github.com/stretchr/testify/assert"
)

func TestIsAdmin(t *testing.T) {
	tests := []struct {
		name string
		user *models.User
		want bool
	}{
		{"nil user", nil, false},
		{"plain user", &models.User{}, false},
		{"superuser", &models.User{IsSuperuser: true}, true},
		{
			"administrators group",
			&models.User{Groups: []models.Group{{Name: models.GroupAdministrators}}},
			true,
		},
		{
			"redactors group only",
			&models.User{Groups: []models.Group{{Name: models.GroupRedactors}}},
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, services.IsAdmin(tt.user))
		})
	}
}

func TestIsRedactor(t *testing.T) {
	tests := []struct {
		name string
		user *models.User
		want bool
	}{
		{"nil user", nil, false},
		{"plain user", &models.User{}, false},
		// Superuser alone does not imply redactor; the checks are independent.
		{"superuser without group", &models.User{IsSuperuser: true}, false},
		{
			"redactors group",
			&models.User{Groups: []models.Group{{Name: models.GroupRedactors}}},
			true,
		},
		{
			"both groups",
			&models.User{Groups: []models.Group{
				{Name: models.GroupAdministrators},
				{Name: models.GroupRedactors},
			}},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, services.IsRedactor(tt.user))
		})
	}
}
