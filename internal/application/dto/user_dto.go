package dto

import (
	"regexp"

	"github.com/allanborges/restaurant-api/internal/domain/entity"
)

// AddressDTO dirección de un usuario.
type AddressDTO struct {
	ID           int64  `json:"id,omitempty"`
	StreetName   string `json:"streetName"`
	DoorNumber   string `json:"doorNumber,omitempty"`
	PostalCode   string `json:"postalCode"`
	District     string `json:"district"`
	Municipality string `json:"municipality"`
	Neighborhood string `json:"neighborhood,omitempty"`
	Primary      bool   `json:"primaryAddress"`
}

// RegisterUserRequest entrada de registro (password en claro, se hashea en el
// caso de uso y nunca se persiste ni se loggea).
type RegisterUserRequest struct {
	Username  string       `json:"username"`
	Password  string       `json:"password"`
	Name      string       `json:"name"`
	Email     string       `json:"email"`
	NIF       string       `json:"nif,omitempty"`
	Addresses []AddressDTO `json:"addresses,omitempty"`
}

var (
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	nifPattern   = regexp.MustCompile(`^\d{9}$`)
)

// Validate devuelve los errores por campo de la petición de registro.
func (r RegisterUserRequest) Validate() []FieldError {
	var errs []FieldError
	if n := len(r.Username); n < 3 || n > 80 {
		errs = append(errs, FieldError{Field: "username", Message: "username debe tener entre 3 y 80 caracteres"})
	}
	if n := len(r.Password); n < 6 || n > 100 {
		errs = append(errs, FieldError{Field: "password", Message: "password debe tener entre 6 y 100 caracteres"})
	}
	if r.Name == "" {
		errs = append(errs, FieldError{Field: "name", Message: "name es requerido"})
	}
	if !emailPattern.MatchString(r.Email) {
		errs = append(errs, FieldError{Field: "email", Message: "email inválido"})
	}
	if r.NIF != "" && !nifPattern.MatchString(r.NIF) {
		errs = append(errs, FieldError{Field: "nif", Message: "NIF debe tener 9 dígitos"})
	}
	for _, a := range r.Addresses {
		if a.StreetName == "" || a.PostalCode == "" || a.District == "" || a.Municipality == "" {
			errs = append(errs, FieldError{Field: "addresses", Message: "streetName, postalCode, district y municipality son requeridos"})
			break
		}
	}
	return errs
}

// AuthRequest entrada de login.
type AuthRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthResponse salida de login con el bearer token.
type AuthResponse struct {
	Token string `json:"token"`
}

// ApproveUserRequest entrada de aprobación. Enabled nulo significa "true"
// (semántica de habilitar por defecto); roles vacíos conservan los actuales.
type ApproveUserRequest struct {
	Roles   []string `json:"roles"`
	Enabled *bool    `json:"enabled"`
}

// UserResponse proyección pública de una cuenta, nunca incluye el hash.
type UserResponse struct {
	ID              int64        `json:"id"`
	Username        string       `json:"username"`
	Name            string       `json:"name"`
	Email           string       `json:"email"`
	NIF             *string      `json:"nif,omitempty"`
	Roles           []string     `json:"roles"`
	Enabled         bool         `json:"enabled"`
	InactivatedDate *Timestamp   `json:"inactivatedDate,omitempty"`
	Addresses       []AddressDTO `json:"addresses,omitempty"`
}

// ToUserResponse proyecta la entidad a la respuesta pública.
func ToUserResponse(u *entity.UserAccount) *UserResponse {
	if u == nil {
		return nil
	}
	addresses := make([]AddressDTO, 0, len(u.Addresses))
	for _, a := range u.Addresses {
		addresses = append(addresses, AddressDTO{
			ID:           a.ID,
			StreetName:   a.StreetName,
			DoorNumber:   a.DoorNumber,
			PostalCode:   a.PostalCode,
			District:     a.District,
			Municipality: a.Municipality,
			Neighborhood: a.Neighborhood,
			Primary:      a.Primary,
		})
	}
	return &UserResponse{
		ID:              u.ID,
		Username:        u.Username,
		Name:            u.Name,
		Email:           u.Email,
		NIF:             u.NIF,
		Roles:           u.Roles,
		Enabled:         u.Enabled,
		InactivatedDate: TimestampPtr(u.InactivatedDate),
		Addresses:       addresses,
	}
}

// ToAddressEntity convierte el DTO a entidad.
func (a AddressDTO) ToAddressEntity() entity.Address {
	return entity.Address{
		StreetName:   a.StreetName,
		DoorNumber:   a.DoorNumber,
		PostalCode:   a.PostalCode,
		District:     a.District,
		Municipality: a.Municipality,
		Neighborhood: a.Neighborhood,
		Primary:      a.Primary,
	}
}
