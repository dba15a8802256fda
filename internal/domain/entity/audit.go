package entity

import "time"

// Audit agrupa las columnas de auditoría que comparten todas las entidades:
// quién y cuándo creó, modificó e inactivó la fila. Se incrusta por composición
// en cada entidad en lugar de heredar de una base.
type Audit struct {
	CreatedBy       *string
	CreatedDate     time.Time
	UpdatedBy       *string
	UpdatedDate     time.Time
	InactivatedBy   *string
	InactivatedDate *time.Time
}

// Active indica si la fila no está soft-inactivada (InactivatedDate nulo).
func (a Audit) Active() bool { return a.InactivatedDate == nil }

// Inactivate marca la fila como inactiva registrando actor y momento.
// La fila nunca se borra físicamente; las lecturas filtran por InactivatedDate nulo.
func (a *Audit) Inactivate(by string, at time.Time) {
	a.InactivatedBy = &by
	a.InactivatedDate = &at
}

// Reactivate limpia la marca de inactivación. El campo InactivatedBy se reutiliza
// como rastro del actor que cambió el estado por última vez.
func (a *Audit) Reactivate(by string) {
	a.InactivatedDate = nil
	a.InactivatedBy = &by
}

// Touch actualiza las columnas de última modificación.
func (a *Audit) Touch(by string, at time.Time) {
	a.UpdatedBy = &by
	a.UpdatedDate = at
}

// Stamp inicializa las columnas de creación y modificación.
func (a *Audit) Stamp(by string, at time.Time) {
	a.CreatedBy = &by
	a.CreatedDate = at
	a.UpdatedBy = &by
	a.UpdatedDate = at
}
