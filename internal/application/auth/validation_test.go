package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/mate-social/internal/application/auth"
	"github.com/jhoicas/mate-social/internal/application/dto"
	"github.com/jhoicas/mate-social/internal/domain"
)

func TestValidateRegistration(t *testing.T) {
	valid := dto.RegisterRequest{Username: "ana_1", Email: "ana@example.com", Password: "Secret123", ConfirmPassword: "Secret123"}

	cases := []struct {
		name   string
		mutate func(*dto.RegisterRequest)
		want   string
	}{
		{"campo vacío", func(r *dto.RegisterRequest) { r.ConfirmPassword = " " }, "Por favor completa todos los campos"},
		{"email inválido", func(r *dto.RegisterRequest) { r.Email = "ana@example" }, "Por favor ingresa un correo electrónico válido"},
		{"usuario corto", func(r *dto.RegisterRequest) { r.Username = "an" }, "El usuario debe tener al menos 3 caracteres y solo puede contener letras, números y guiones bajos."},
		{"usuario con espacios", func(r *dto.RegisterRequest) { r.Username = "ana maria" }, "El usuario debe tener al menos 3 caracteres y solo puede contener letras, números y guiones bajos."},
		{"usuario reservado", func(r *dto.RegisterRequest) { r.Username = "Soporte" }, "Este nombre de usuario no está disponible."},
		{"sin mayúscula", func(r *dto.RegisterRequest) { r.Password, r.ConfirmPassword = "secret123", "secret123" }, "La contraseña debe tener al menos 8 caracteres, una mayúscula y un número."},
		{"sin número", func(r *dto.RegisterRequest) { r.Password, r.ConfirmPassword = "SecretSecret", "SecretSecret" }, "La contraseña debe tener al menos 8 caracteres, una mayúscula y un número."},
		{"corta", func(r *dto.RegisterRequest) { r.Password, r.ConfirmPassword = "Sec1", "Sec1" }, "La contraseña debe tener al menos 8 caracteres, una mayúscula y un número."},
		{"no coinciden", func(r *dto.RegisterRequest) { r.ConfirmPassword = "Secret124" }, "Las contraseñas no coinciden"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := valid
			tc.mutate(&in)
			_, err := auth.ValidateRegistration(in)
			require.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Equal(t, tc.want, domain.UserMessage(err))
		})
	}

	account, err := auth.ValidateRegistration(valid)
	require.NoError(t, err)
	assert.Equal(t, "ana_1", account.Username)
}

func TestValidateEmployee_SinReglasDeFortaleza(t *testing.T) {
	_, err := auth.ValidateEmployee(dto.RegisterRequest{Username: "ab", Email: "e@x.co", Password: "x", ConfirmPassword: "x"})
	assert.NoError(t, err)

	_, err = auth.ValidateEmployee(dto.RegisterRequest{Username: "ab", Email: "e@x.co", Password: "x", ConfirmPassword: "y"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestIsReservedUsername_CaseFolding(t *testing.T) {
	assert.True(t, auth.IsReservedUsername("ADMIN"))
	assert.True(t, auth.IsReservedUsername("Moderador"))
	assert.False(t, auth.IsReservedUsername("administradora"))
	assert.True(t, auth.StrongPassword("Secret123"))
}
