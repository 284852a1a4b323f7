package validators

const (
	MsgInvalidEmail   = "Ingresa un email válido"
	MsgShortPassword  = "La contraseña debe tener al menos 6 caracteres"
	MsgShortName      = "El nombre debe tener al menos 3 caracteres"
	MsgInvalidPhone   = "Ingresa un número de teléfono válido (10 dígitos)"
	MsgInvalidRequest = "Datos inválidos"
)

// FieldErrors maps a form field to its message. Empty means valid.
type FieldErrors map[string]string

// First returns one message for single-line JSON errors, in form order.
func (f FieldErrors) First(order ...string) string {
	for _, k := range order {
		if msg, ok := f[k]; ok {
			return msg
		}
	}
	for _, msg := range f {
		return msg
	}
	return ""
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,emailshape"`
	Password string `json:"password" binding:"required,min=6"`
}

var loginMessages = map[string]string{
	"email":    MsgInvalidEmail,
	"password": MsgShortPassword,
}

// Errors translates a bind or Validate failure into form messages.
func (LoginInput) Errors(err error) FieldErrors {
	return Translate(err, loginMessages, MsgInvalidRequest)
}

func (in LoginInput) Validate() FieldErrors {
	return in.Errors(Struct(in))
}

type RegisterInput struct {
	Name     string `json:"name" binding:"required,min=3"`
	Phone    string `json:"phone" binding:"required,len=10,number"`
	Email    string `json:"email" binding:"required,emailshape"`
	Password string `json:"password" binding:"required,min=6"`
}

var registerMessages = map[string]string{
	"name":     MsgShortName,
	"phone":    MsgInvalidPhone,
	"email":    MsgInvalidEmail,
	"password": MsgShortPassword,
}

func (RegisterInput) Errors(err error) FieldErrors {
	return Translate(err, registerMessages, MsgInvalidRequest)
}

func (in RegisterInput) Validate() FieldErrors {
	return in.Errors(Struct(in))
}
