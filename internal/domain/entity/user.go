package entity

import "time"

// Profile perfil del usuario autenticado tal como lo devuelve el backend.
// Solo existe mientras haya un token de sesión.
type Profile struct {
	ID        int64
	Username  string
	Email     string
	FirstName string
	LastName  string
	Persona   *Persona // datos personales opcionales
	Groups    []string // nombres de grupo tal cual llegan; ver Roles()
}

// Persona datos personales asociados a la cuenta (registro aparte en el backend).
type Persona struct {
	ID        int64
	Name      string
	LastName  string
	Address   string
	Phone     string
	BirthDate time.Time // fecha sin hora; cero si el backend no la envía
}

// Roles devuelve los grupos reconocidos del perfil.
func (p *Profile) Roles() RoleSet {
	if p == nil {
		return RoleSet{}
	}
	return ParseRoles(p.Groups)
}

// Capabilities flags de autorización derivados de los grupos; nunca se cachean.
func (p *Profile) Capabilities() Capabilities {
	return p.Roles().Capabilities()
}

// DisplayName nombre para mostrar: persona, nombre de la cuenta o username.
func (p *Profile) DisplayName() string {
	if p == nil {
		return ""
	}
	if p.Persona != nil && p.Persona.Name != "" {
		return joinNonEmpty(p.Persona.Name, p.Persona.LastName)
	}
	if p.FirstName != "" {
		return joinNonEmpty(p.FirstName, p.LastName)
	}
	return p.Username
}

// AccountInput datos para crear una cuenta (registro o alta de empleado).
type AccountInput struct {
	Username string
	Email    string
	Password string
}

func joinNonEmpty(a, b string) string {
	if b == "" {
		return a
	}
	return a + " " + b
}
