package constants

import "fmt"

const (
	RoleStaff = "staff"
	RoleAdmin = "admin"
	RoleOwner = "owner"
)

var (
	AllRoles = []string{
		RoleStaff,
		RoleAdmin,
		RoleOwner,
	}

	AdminAndAbove = []string{
		RoleAdmin,
		RoleOwner,
	}
)

const (
	ErrOnlyAdminsCanAccess = "Only admins may access %s."
	ErrOnlyOwnersCanAccess = "Only the owner may access %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorOwner(feature string) string {
	return fmt.Sprintf(ErrOnlyOwnersCanAccess, feature)
}
