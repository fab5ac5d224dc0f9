package internal

import (
	"bitwise74/chores-api/internal/service"
	"bitwise74/chores-api/internal/store"

	"gorm.io/gorm"
)

// Deps is everything a handler may need. Avatars is nil when storage.type
// is none.
type Deps struct {
	DB           *gorm.DB
	Store        *store.Store
	Users        *service.UserService
	Verification *service.VerificationService
	Sessions     *service.SessionService
	Avatars      *service.AvatarUploader
}
