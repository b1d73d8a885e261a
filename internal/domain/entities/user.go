package entities

import (
	"strings"
	"time"

	"taller_dashboards/internal/domain/correlate"
)

type UserRole string

const (
	RoleAdmin        UserRole = "ADMIN"
	RoleReceptionist UserRole = "RECEPTIONIST"
	RoleMechanic     UserRole = "MECHANIC"
	RoleUnknown      UserRole = "UNKNOWN"
)

func NormalizeRole(raw string) UserRole {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "ADMIN", "ADMINISTRADOR", "ADMINISTRATOR":
		return RoleAdmin
	case "RECEPTIONIST", "RECEPCIONISTA":
		return RoleReceptionist
	case "MECHANIC", "MECANICO":
		return RoleMechanic
	default:
		return RoleUnknown
	}
}

// User is a workshop system user (mechanics included).
type User struct {
	ID        string
	FullName  string
	Username  string
	Email     string
	Role      UserRole
	Active    bool
	LastLogin time.Time
}

// Keys returns the candidates under which orders reference their assigned
// mechanic or creator.
func (u User) Keys() correlate.Ref {
	return correlate.NewRef(u.ID, u.Username)
}
