package entity

// SessionState foto inmutable del estado de sesión en un instante.
type SessionState struct {
	Token          string // vacío = sin sesión
	Loading        bool   // lectura inicial del almacenamiento en curso
	Profile        *Profile
	ProfileLoading bool
	ProfileErr     error
}

// Authenticated indica si hay token.
func (s SessionState) Authenticated() bool { return s.Token != "" }

// Capabilities flags del perfil actual (todo falso sin perfil).
func (s SessionState) Capabilities() Capabilities {
	return s.Profile.Capabilities()
}
