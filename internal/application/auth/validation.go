package auth

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"

	"github.com/jhoicas/mate-social/internal/application/dto"
	"github.com/jhoicas/mate-social/internal/domain"
	"github.com/jhoicas/mate-social/internal/domain/entity"
)

var (
	emailPattern    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]{3,}$`)
)

// Nombres que el backend no acepta como usuario (comparación sin mayúsculas).
var reservedUsernames = map[string]struct{}{
	"admin":         {},
	"administrador": {},
	"soporte":       {},
	"root":          {},
	"superuser":     {},
	"moderador":     {},
}

const minPasswordLength = 8

// ValidateRegistration valida el registro público en el mismo orden que el formulario:
// campos completos, email, usuario, contraseña fuerte y confirmación.
func ValidateRegistration(in dto.RegisterRequest) (entity.AccountInput, error) {
	account, err := validateCommon(in)
	if err != nil {
		return entity.AccountInput{}, err
	}
	if !usernamePattern.MatchString(account.Username) {
		return entity.AccountInput{}, domain.NewValidationError("username",
			"El usuario debe tener al menos 3 caracteres y solo puede contener letras, números y guiones bajos.")
	}
	if IsReservedUsername(account.Username) {
		return entity.AccountInput{}, domain.NewValidationError("username", "Este nombre de usuario no está disponible.")
	}
	if !StrongPassword(account.Password) {
		return entity.AccountInput{}, domain.NewValidationError("password",
			"La contraseña debe tener al menos 8 caracteres, una mayúscula y un número.")
	}
	if err := confirmMatches(in, account.Password); err != nil {
		return entity.AccountInput{}, err
	}
	return account, nil
}

// ValidateEmployee validación del alta de empleados desde el panel de administración.
func ValidateEmployee(in dto.RegisterRequest) (entity.AccountInput, error) {
	account, err := validateCommon(in)
	if err != nil {
		return entity.AccountInput{}, err
	}
	if err := confirmMatches(in, account.Password); err != nil {
		return entity.AccountInput{}, err
	}
	return account, nil
}

func validateCommon(in dto.RegisterRequest) (entity.AccountInput, error) {
	account := entity.AccountInput{
		Username: strings.TrimSpace(in.Username),
		Email:    strings.TrimSpace(in.Email),
		Password: strings.TrimSpace(in.Password),
	}
	if account.Username == "" || account.Email == "" || account.Password == "" || strings.TrimSpace(in.ConfirmPassword) == "" {
		return entity.AccountInput{}, domain.NewValidationError("", "Por favor completa todos los campos")
	}
	if !emailPattern.MatchString(account.Email) {
		return entity.AccountInput{}, domain.NewValidationError("email", "Por favor ingresa un correo electrónico válido")
	}
	return account, nil
}

func confirmMatches(in dto.RegisterRequest, password string) error {
	if strings.TrimSpace(in.ConfirmPassword) != password {
		return domain.NewValidationError("confirm_password", "Las contraseñas no coinciden")
	}
	return nil
}

// StrongPassword al menos 8 caracteres, una mayúscula (A-Z) y un dígito.
func StrongPassword(p string) bool {
	if utf8.RuneCountInString(p) < minPasswordLength {
		return false
	}
	var upper, digit bool
	for _, r := range p {
		switch {
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		}
	}
	return upper && digit
}

// IsReservedUsername compara con case folding.
func IsReservedUsername(username string) bool {
	_, ok := reservedUsernames[cases.Fold().String(username)]
	return ok
}
