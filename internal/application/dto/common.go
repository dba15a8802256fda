package dto

import "time"

// timestampLayout es el formato de fecha-hora de todas las respuestas.
const timestampLayout = "2006-01-02T15:04:05"

// Timestamp serializa time.Time como yyyy-MM-dd'T'HH:mm:ss.
type Timestamp time.Time

// MarshalJSON implementa json.Marshaler.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(`"` + time.Time(t).Format(timestampLayout) + `"`), nil
}

// UnmarshalJSON implementa json.Unmarshaler.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" || s == `""` {
		return nil
	}
	parsed, err := time.Parse(`"`+timestampLayout+`"`, s)
	if err != nil {
		return err
	}
	*t = Timestamp(parsed)
	return nil
}

// TimestampPtr convierte un *time.Time opcional a *Timestamp.
func TimestampPtr(t *time.Time) *Timestamp {
	if t == nil {
		return nil
	}
	ts := Timestamp(*t)
	return &ts
}

// StandardError es el cuerpo de error HTTP estándar.
type StandardError struct {
	Timestamp Timestamp `json:"timestamp"`
	Status    int       `json:"status"`
	Error     string    `json:"error"`
	Message   string    `json:"message,omitempty"`
	Path      string    `json:"path"`
}

// FieldError es un error de validación de un atributo concreto.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError es la variante de StandardError con errores por campo.
type ValidationError struct {
	StandardError
	Errors []FieldError `json:"errors"`
}
