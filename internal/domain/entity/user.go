package entity

import "strings"

// Roles válidos para User.
const (
	RoleAdmin      = "admin"
	RoleSupervisor = "supervisor"
	RoleOperator   = "operator"
	RoleSeller     = "seller"
)

// Secciones de la aplicación sobre las que se decide el acceso por rol.
const (
	SectionDashboard = "dashboard"
	SectionProducts  = "products"
	SectionReception = "reception"
	SectionLocations = "locations"
	SectionPicking   = "picking"
	SectionDispatch  = "dispatch"
	SectionStock     = "stock"
	SectionMovements = "movements"
	SectionReports   = "reports"
	SectionUsers     = "users"
)

// User representa un usuario del sistema.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string // bcrypt
	Role         string
}

// Clone devuelve una copia independiente del usuario.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	c := *u
	return &c
}

// sectionRoles tabla estática de permisos por sección.
var sectionRoles = map[string][]string{
	SectionDashboard: {RoleAdmin, RoleSupervisor},
	SectionProducts:  {RoleAdmin, RoleSupervisor, RoleOperator, RoleSeller},
	SectionReception: {RoleAdmin, RoleSupervisor, RoleOperator},
	SectionLocations: {RoleAdmin, RoleSupervisor, RoleOperator},
	SectionPicking:   {RoleAdmin, RoleSupervisor, RoleOperator},
	SectionDispatch:  {RoleAdmin, RoleSupervisor, RoleOperator},
	SectionStock:     {RoleAdmin, RoleSupervisor, RoleSeller},
	SectionMovements: {RoleAdmin, RoleSupervisor},
	SectionReports:   {RoleAdmin, RoleSupervisor},
	SectionUsers:     {RoleAdmin},
}

// sectionOrder orden de presentación del menú.
var sectionOrder = []string{
	SectionDashboard, SectionProducts, SectionReception, SectionLocations, SectionPicking,
	SectionDispatch, SectionStock, SectionMovements, SectionReports, SectionUsers,
}

// RolesFor devuelve los roles con acceso a la sección (copia).
func RolesFor(section string) []string {
	return append([]string(nil), sectionRoles[section]...)
}

// CanAccess indica si el rol puede entrar a la sección.
func CanAccess(role, section string) bool {
	for _, r := range sectionRoles[section] {
		if r == role {
			return true
		}
	}
	return false
}

// SectionsFor lista las secciones visibles para el rol, en orden de menú.
func SectionsFor(role string) []string {
	out := make([]string, 0, len(sectionOrder))
	for _, s := range sectionOrder {
		if CanAccess(role, s) {
			out = append(out, s)
		}
	}
	return out
}

// LandingSection sección inicial a la que se redirige cada rol.
func LandingSection(role string) string {
	switch role {
	case RoleAdmin, RoleSupervisor:
		return SectionDashboard
	case RoleOperator:
		return SectionReception
	default:
		return SectionProducts
	}
}

// NormalizeRole traduce alias (operario/vendedor) al rol canónico; "" si no es válido.
func NormalizeRole(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case RoleAdmin:
		return RoleAdmin
	case RoleSupervisor:
		return RoleSupervisor
	case RoleOperator, "operario":
		return RoleOperator
	case RoleSeller, "vendedor":
		return RoleSeller
	}
	return ""
}
