package entity

// Role grupo de autorización del backend. Los valores coinciden con los nombres de grupo.
type Role string

const (
	RoleAdministrador         Role = "Administrador"
	RoleAdministradorEmpleado Role = "Administrador Empleado"
	RoleUsuarioComun          Role = "Usuario Comun"
)

var knownRoles = map[string]Role{
	string(RoleAdministrador):         RoleAdministrador,
	string(RoleAdministradorEmpleado): RoleAdministradorEmpleado,
	string(RoleUsuarioComun):          RoleUsuarioComun,
}

// RoleSet conjunto de roles; el orden y los duplicados de entrada no importan.
type RoleSet map[Role]struct{}

// ParseRoles convierte nombres de grupo en roles conocidos. Los grupos desconocidos se ignoran.
func ParseRoles(groups []string) RoleSet {
	set := make(RoleSet, len(groups))
	for _, g := range groups {
		if r, ok := knownRoles[g]; ok {
			set[r] = struct{}{}
		}
	}
	return set
}

// Has indica si el conjunto contiene el rol.
func (s RoleSet) Has(r Role) bool {
	_, ok := s[r]
	return ok
}

// Capabilities flags derivados del conjunto de roles.
func (s RoleSet) Capabilities() Capabilities {
	isAdmin := s.Has(RoleAdministrador)
	isAdminOrEmployee := isAdmin || s.Has(RoleAdministradorEmpleado)
	return Capabilities{
		IsAdmin:           isAdmin,
		IsAdminOrEmployee: isAdminOrEmployee,
		IsNormalUser:      s.Has(RoleUsuarioComun) && !isAdminOrEmployee,
	}
}

// Capabilities flags de autorización. Invariantes:
// IsAdmin ⇒ IsAdminOrEmployee; IsNormalUser ⇒ ¬IsAdminOrEmployee.
type Capabilities struct {
	IsAdmin           bool
	IsAdminOrEmployee bool
	IsNormalUser      bool
}

// CapabilitiesFor atajo sobre una lista de grupos.
func CapabilitiesFor(groups []string) Capabilities {
	return ParseRoles(groups).Capabilities()
}

// RolePredicate decide si unas capacidades habilitan una acción.
type RolePredicate func(Capabilities) bool

// Predicados usados por las vistas protegidas.
var (
	IsAdmin           RolePredicate = func(c Capabilities) bool { return c.IsAdmin }
	IsAdminOrEmployee RolePredicate = func(c Capabilities) bool { return c.IsAdminOrEmployee }
	IsNormalUser      RolePredicate = func(c Capabilities) bool { return c.IsNormalUser }
)
