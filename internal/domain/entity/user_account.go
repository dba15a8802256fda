package entity

import (
	"errors"
	"time"
)

// Roles válidos para UserAccount.
const (
	RoleAdmin   = "ADMIN"
	RoleWaiter  = "WAITER"
	RoleClient  = "CLIENT"
	RoleKitchen = "KITCHEN"
)

// ValidRole indica si el nombre de rol pertenece al conjunto soportado.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleWaiter, RoleClient, RoleKitchen:
		return true
	}
	return false
}

// ErrMultiplePrimaryAddresses se devuelve al intentar asignar más de una dirección principal.
var ErrMultiplePrimaryAddresses = errors.New("solo se permite una dirección principal por usuario")

// UserAccount representa una cuenta de usuario del sistema.
//
// Ciclo de vida: el autoregistro crea la cuenta deshabilitada e inactivada
// (pendiente de aprobación por un admin); el alta de admin por bootstrap la crea
// habilitada y activa. Nunca se borra físicamente.
type UserAccount struct {
	ID           int64
	Username     string // único
	PasswordHash string // bcrypt, nunca en claro después de persistir
	Name         string
	Email        string  // único
	NIF          *string // identificación fiscal, única, opcional
	Roles        []string
	Enabled      bool
	Addresses    []Address
	Audit
}

// HasRole indica si la cuenta posee el rol dado.
func (u *UserAccount) HasRole(role string) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// SetAddresses reemplaza las direcciones manteniendo la invariante de una única
// dirección principal: más de una marcada es error; si ninguna está marcada y
// la lista no está vacía, la primera se promueve automáticamente.
func (u *UserAccount) SetAddresses(addresses []Address) error {
	primaries := 0
	for _, a := range addresses {
		if a.Primary {
			primaries++
		}
	}
	if primaries > 1 {
		return ErrMultiplePrimaryAddresses
	}
	if primaries == 0 && len(addresses) > 0 {
		addresses[0].Primary = true
	}
	u.Addresses = addresses
	return nil
}

// Pending indica si la cuenta sigue a la espera de aprobación.
func (u *UserAccount) Pending() bool {
	return !u.Enabled && u.InactivatedDate != nil
}

// CanAuthenticate indica si la cuenta puede portar una identidad en una petición:
// debe estar habilitada y no inactivada. Es independiente de la verificación de credenciales.
func (u *UserAccount) CanAuthenticate() bool {
	return u.Enabled && u.Active()
}

// Approve aplica la acción de aprobación de un admin: habilita o deshabilita la
// cuenta y, al habilitar, limpia la inactivación registrando el actor aprobador.
func (u *UserAccount) Approve(enabled bool, by string, at time.Time) {
	u.Enabled = enabled
	if enabled {
		u.Reactivate(by)
	}
	u.Touch(by, at)
}
