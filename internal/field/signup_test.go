package field

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func validSignUp() SignUp {
	return SignUp{
		Name:     "Samu P",
		Phone:    "+573012345678",
		Email:    "sa.pico@javeriana.edu.co",
		Password: "1ManzanaGrande!",
	}
}

func TestValidateSignUpAccepts(t *testing.T) {
	t.Parallel()

	errs := NewRegistry().ValidateSignUp(validSignUp())
	require.True(t, errs.Valid(), errs)
}

func TestValidateSignUpReportsEachField(t *testing.T) {
	t.Parallel()

	form := validSignUp()
	form.Name = "   "
	form.Phone = "300"
	form.Email = "bad-email"
	form.Password = ""

	errs := NewRegistry().ValidateSignUp(form)
	require.Equal(t, FormErrors{
		"name":     RequiredMessage,
		"phone":    Phone.ErrorMessage,
		"email":    Email.ErrorMessage,
		"password": RequiredMessage,
	}, errs)
}

func TestValidateSignUpHonoursReplacedPreset(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	custom := Email
	custom.Pattern = MustCompilePattern(`[^@]+@javeriana\.edu\.co`)
	custom.ErrorMessage = "Usa tu correo institucional"
	require.NoError(t, reg.Register(custom))

	form := validSignUp()
	form.Email = "a@b.co"
	require.Equal(t, FormErrors{"email": "Usa tu correo institucional"}, reg.ValidateSignUp(form))
}

func TestRegistry(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	require.Equal(t, []string{"email", "password", "phone", "plain"}, reg.Names())

	p, ok := reg.Get("phone")
	require.True(t, ok)
	require.Equal(t, "Celular", p.Label)

	_, ok = reg.Get("fax")
	require.False(t, ok)

	require.Error(t, reg.Register(Preset{}))
}
