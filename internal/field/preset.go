package field

// Preset is the data that turns the generic text field into a specific one:
// its copy, the rule it is validated against, the keyboard it asks for and
// how its value is shown.
type Preset struct {
	Name         string
	Label        string
	Placeholder  string
	Pattern      Pattern
	ErrorMessage string
	Keyboard     Keyboard
	Transform    Transform
}

// Preset names used by the sign-up form.
const (
	NamePlain    = "plain"
	NamePhone    = "phone"
	NameEmail    = "email"
	NamePassword = "password"
)

const (
	EmailExpr    = `^[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}$`
	PhoneExpr    = `^\+\d{10,14}$`
	PasswordExpr = `^(?=.*[a-z])(?=.*[A-Z])(?=.*\d)(?=.*[@$!%*?&])[A-Za-z\d@$!%*?&]{8,}$`
)

// Built-in presets.
var (
	Plain = Preset{
		Name:        NamePlain,
		Label:       "Nombre",
		Placeholder: "John Doe",
	}

	Phone = Preset{
		Name:         NamePhone,
		Label:        "Celular",
		Placeholder:  "+57 300 123 4567",
		Pattern:      MustCompilePattern(PhoneExpr),
		ErrorMessage: "Número de teléfono inválido",
		Keyboard:     KeyboardPhone,
		Transform:    TransformPhone,
	}

	Email = Preset{
		Name:         NameEmail,
		Label:        "Correo electrónico",
		Placeholder:  "johndoe@mail.com",
		Pattern:      MustCompilePattern(EmailExpr),
		ErrorMessage: "Correo electrónico inválido",
		Keyboard:     KeyboardEmail,
	}

	Password = Preset{
		Name:         NamePassword,
		Label:        "Contraseña",
		Placeholder:  "*********",
		Pattern:      MustCompilePattern(PasswordExpr),
		ErrorMessage: "La contraseña debe tener al menos 8 caracteres, incluyendo letras, números y símbolos",
		Keyboard:     KeyboardPassword,
		Transform:    TransformMask,
	}
)

// Rule returns the validation rule for the preset, or nil when it has no pattern.
func (p Preset) Rule() *Rule {
	if p.Pattern == nil {
		return nil
	}
	return &Rule{Pattern: p.Pattern, Message: p.ErrorMessage}
}

// Validate runs Validate with the preset's rule.
func (p Preset) Validate(value, externalError string) Result {
	return Validate(value, p.Rule(), externalError)
}

// Sanitize filters typed input through the preset's keyboard and transform.
// A '+' is only accepted as the first character of a phone value.
func (p Preset) Sanitize(input string) string {
	runes := make([]rune, 0, len(input))
	for _, r := range input {
		if !p.Keyboard.Accepts(r) {
			continue
		}
		if r == '+' && p.Keyboard == KeyboardPhone && len(runes) > 0 {
			continue
		}
		runes = append(runes, r)
	}
	return p.Transform.Sanitize(string(runes))
}
