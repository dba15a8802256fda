package entity

// Address es una dirección de un UserAccount (composición: borrar la cuenta
// borra sus direcciones).
type Address struct {
	ID           int64
	UserID       int64
	StreetName   string
	DoorNumber   string
	PostalCode   string
	District     string
	Municipality string
	Neighborhood string
	Primary      bool
	Audit
}
