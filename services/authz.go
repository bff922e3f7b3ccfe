package services

import "knowledgebase/models"

// IsAdmin reports whether the user is a superuser or belongs to the
// Administrators group. Expects groups to be preloaded.
func IsAdmin(user *models.User) bool {
	if user == nil {
		return false
	}
	if user.IsSuperuser {
		return true
	}
	return inGroup(user, models.GroupAdministrators)
}

// IsRedactor reports whether the user belongs to the Redactors group.
func IsRedactor(user *models.User) bool {
	if user == nil {
		return false
	}
	return inGroup(user, models.GroupRedactors)
}

func inGroup(user *models.User, name string) bool {
	for _, group := range user.Groups {
		if group.Name == name {
			return true
		}
	}
	return false
}
