package users

import (
	"log"
	"os"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"swaram_backend/internals/constants"
	"swaram_backend/internals/features/users/auth/model"
)

var rolePermissions = map[string]string{
	constants.RoleStaff: `{"students":["read"],"courses":["read"],"batches":["read"],"fees":["read"],"reports":["read"]}`,
	constants.RoleAdmin: `{"students":["read","write"],"courses":["read","write"],"batches":["read","write"],"fees":["read","write"],"reports":["read"]}`,
	constants.RoleOwner: `{"*":["read","write","manage"]}`,
}

// SeedRoles inserts the three fixed roles, skipping ones that exist.
func SeedRoles(db *gorm.DB) error {
	for _, name := range constants.AllRoles {
		n := name
		role := model.Role{
			Name:        &n,
			Permissions: datatypes.JSON(rolePermissions[name]),
		}
		if err := db.
			Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "name"}},
				DoNothing: true,
			}).
			Create(&role).Error; err != nil {
			return err
		}
	}
	log.Println("✅ roles seeded")
	return nil
}

// SeedOwnerAccount creates the bootstrap owner from SEED_OWNER_EMAIL /
// SEED_OWNER_PASSWORD. Skipped silently when the vars are unset or the
// account already exists.
func SeedOwnerAccount(db *gorm.DB) error {
	email := os.Getenv("SEED_OWNER_EMAIL")
	password := os.Getenv("SEED_OWNER_PASSWORD")
	if email == "" || password == "" {
		return nil
	}

	var count int64
	if err := db.Model(&model.User{}).Where("LOWER(email) = LOWER(?)", email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	var ownerRole model.Role
	if err := db.Where("name = ?", constants.RoleOwner).First(&ownerRole).Error; err != nil {
		return err
	}

	u := model.User{
		Name:   "Owner",
		Email:  email,
		RoleID: &ownerRole.ID,
	}
	if err := u.SetPassword(password); err != nil {
		return err
	}
	if err := db.Create(&u).Error; err != nil {
		return err
	}
	log.Printf("✅ owner account %s seeded", email)
	return nil
}
