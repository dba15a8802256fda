package dto

import (
	"encoding/json"
	"regexp"

	"github.com/shopspring/decimal"

	"github.com/allanborges/restaurant-api/internal/domain/entity"
)

// DishCodeDTO taxonomía de plato. Acepta en JSON tanto el objeto
// {"code": "...", "description": "..."} como la forma corta "CODE".
type DishCodeDTO struct {
	ID          int64   `json:"id,omitempty"`
	Code        string  `json:"code"`
	Description *string `json:"description,omitempty"`
}

// UnmarshalJSON admite cadena simple u objeto.
func (d *DishCodeDTO) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var code string
		if err := json.Unmarshal(data, &code); err != nil {
			return err
		}
		d.Code = code
		return nil
	}
	type alias DishCodeDTO
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*d = DishCodeDTO(a)
	return nil
}

var codePattern = regexp.MustCompile(`^[A-Z0-9_\-]+$`)

// DishRequest entrada de creación/actualización. En actualización los campos
// nulos dejan intacto el valor existente (merge parcial).
type DishRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Stock       *int             `json:"stock"`
	Code        *DishCodeDTO     `json:"code"`
	ImageURL    *string          `json:"imageUrl"`
}

// ValidateForCreate exige todos los campos obligatorios de un plato nuevo.
func (r DishRequest) ValidateForCreate() []FieldError {
	var errs []FieldError
	if r.Name == nil || len(*r.Name) < 5 {
		errs = append(errs, FieldError{Field: "name", Message: "name es requerido y debe tener al menos 5 caracteres"})
	}
	if r.Description == nil || len(*r.Description) < 10 {
		errs = append(errs, FieldError{Field: "description", Message: "description es requerida y debe tener al menos 10 caracteres"})
	}
	if r.Price == nil {
		errs = append(errs, FieldError{Field: "price", Message: "price es requerido"})
	}
	if r.Stock == nil {
		errs = append(errs, FieldError{Field: "stock", Message: "stock es requerido"})
	}
	if r.Code == nil || r.Code.Code == "" {
		errs = append(errs, FieldError{Field: "code", Message: "code es requerido"})
	}
	if r.ImageURL == nil || *r.ImageURL == "" {
		errs = append(errs, FieldError{Field: "imageUrl", Message: "imageUrl es requerido"})
	} else if len(*r.ImageURL) > 400 {
		errs = append(errs, FieldError{Field: "imageUrl", Message: "imageUrl admite máximo 400 caracteres"})
	}
	return append(errs, r.validateCommon()...)
}

// ValidateForUpdate valida solo los campos presentes (merge parcial).
func (r DishRequest) ValidateForUpdate() []FieldError {
	var errs []FieldError
	if r.Name != nil && len(*r.Name) < 5 {
		errs = append(errs, FieldError{Field: "name", Message: "name debe tener al menos 5 caracteres"})
	}
	if r.Description != nil && len(*r.Description) < 10 {
		errs = append(errs, FieldError{Field: "description", Message: "description debe tener al menos 10 caracteres"})
	}
	if r.ImageURL != nil && len(*r.ImageURL) > 400 {
		errs = append(errs, FieldError{Field: "imageUrl", Message: "imageUrl admite máximo 400 caracteres"})
	}
	return append(errs, r.validateCommon()...)
}

func (r DishRequest) validateCommon() []FieldError {
	var errs []FieldError
	if r.Price != nil {
		if r.Price.IsNegative() {
			errs = append(errs, FieldError{Field: "price", Message: "price debe ser >= 0"})
		}
		// hasta 10 dígitos enteros y 2 decimales
		if r.Price.Exponent() < -2 || len(r.Price.Abs().Truncate(0).String()) > 10 {
			errs = append(errs, FieldError{Field: "price", Message: "price admite hasta 10 dígitos enteros y 2 decimales"})
		}
	}
	if r.Stock != nil && *r.Stock < 0 {
		errs = append(errs, FieldError{Field: "stock", Message: "stock debe ser >= 0"})
	}
	if r.Code != nil && r.Code.Code != "" {
		if n := len(r.Code.Code); n < 3 || n > 64 {
			errs = append(errs, FieldError{Field: "code", Message: "code debe tener entre 3 y 64 caracteres"})
		}
	}
	return errs
}

// DishResponse salida de un plato, incluidos los campos de auditoría.
type DishResponse struct {
	ID              int64           `json:"id"`
	Name            string          `json:"name"`
	Description     string          `json:"description,omitempty"`
	Price           decimal.Decimal `json:"price"`
	Stock           int             `json:"stock"`
	Code            *DishCodeDTO    `json:"code,omitempty"`
	ImageURL        string          `json:"imageUrl,omitempty"`
	CreatedBy       *string         `json:"createdBy,omitempty"`
	CreatedDate     *Timestamp      `json:"createdDate,omitempty"`
	UpdatedBy       *string         `json:"updatedBy,omitempty"`
	UpdatedDate     *Timestamp      `json:"updatedDate,omitempty"`
	InactivatedBy   *string         `json:"inactivatedBy,omitempty"`
	InactivatedDate *Timestamp      `json:"inactivatedDate,omitempty"`
}

// DishPageResponse página de platos con el total calculado con el mismo
// filtrado que el contenido.
type DishPageResponse struct {
	Content []DishResponse `json:"content"`
	Page    int            `json:"page"`
	Size    int            `json:"size"`
	Total   int64          `json:"total"`
}

// ToDishResponse proyecta la entidad a la respuesta.
func ToDishResponse(d *entity.Dish) *DishResponse {
	if d == nil {
		return nil
	}
	resp := &DishResponse{
		ID:              d.ID,
		Name:            d.Name,
		Description:     d.Description,
		Price:           d.Price,
		Stock:           d.Stock,
		ImageURL:        d.ImageURL,
		CreatedBy:       d.CreatedBy,
		UpdatedBy:       d.UpdatedBy,
		InactivatedBy:   d.InactivatedBy,
		InactivatedDate: TimestampPtr(d.InactivatedDate),
	}
	if !d.CreatedDate.IsZero() {
		ts := Timestamp(d.CreatedDate)
		resp.CreatedDate = &ts
	}
	if !d.UpdatedDate.IsZero() {
		ts := Timestamp(d.UpdatedDate)
		resp.UpdatedDate = &ts
	}
	if d.Code != nil {
		resp.Code = &DishCodeDTO{ID: d.Code.ID, Code: d.Code.Code, Description: d.Code.Description}
	}
	return resp
}
