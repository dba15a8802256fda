package http

import (
	"net/url"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/allanborges/restaurant-api/internal/application/dto"
	"github.com/allanborges/restaurant-api/internal/application/usecase"
	"github.com/allanborges/restaurant-api/internal/domain"
	"github.com/allanborges/restaurant-api/internal/domain/query"
	"github.com/allanborges/restaurant-api/pkg/logger"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// DishHandler maneja el CRUD y los listados del catálogo de platos.
type DishHandler struct {
	uc  *usecase.DishUseCase
	log *logger.Logger
}

// NewDishHandler construye el handler de platos.
func NewDishHandler(uc *usecase.DishUseCase, log *logger.Logger) *DishHandler {
	return &DishHandler{uc: uc, log: log}
}

// Create godoc
// @Summary      Crear plato
// @Tags         dishes
// @Accept       json
// @Produce      json
// @Param        body  body  dto.DishRequest  true  "plato con code obligatorio"
// @Success      201   {object}  dto.DishResponse
// @Failure      400   {object}  dto.ValidationError
// @Router       /v1/dishes [post]
// @Security     BearerAuth
func (h *DishHandler) Create(c *fiber.Ctx) error {
	var in dto.DishRequest
	if err := c.BodyParser(&in); err != nil {
		return writeStatus(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	if errs := in.ValidateForCreate(); len(errs) > 0 {
		return writeValidation(c, errs)
	}
	dish, err := h.uc.Create(c.UserContext(), in, Username(c))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dish)
}

// GetByID godoc
// @Summary      Obtener plato por id
// @Tags         dishes
// @Produce      json
// @Param        id  path  int  true  "id del plato"
// @Success      200  {object}  dto.DishResponse
// @Failure      404  {object}  dto.StandardError
// @Router       /v1/dishes/{id} [get]
func (h *DishHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return writeError(c, h.log, err)
	}
	dish, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dish)
}

// Update godoc
// @Summary      Actualizar plato (merge parcial)
// @Tags         dishes
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "id del plato"
// @Param        body  body  dto.DishRequest  true  "campos a actualizar"
// @Success      200   {object}  dto.DishResponse
// @Failure      404   {object}  dto.StandardError
// @Router       /v1/dishes/{id} [put]
// @Security     BearerAuth
func (h *DishHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return writeError(c, h.log, err)
	}
	var in dto.DishRequest
	if err := c.BodyParser(&in); err != nil {
		return writeStatus(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	if errs := in.ValidateForUpdate(); len(errs) > 0 {
		return writeValidation(c, errs)
	}
	dish, err := h.uc.Update(c.UserContext(), id, in, Username(c))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dish)
}

// Delete godoc
// @Summary      Inactivar plato (borrado lógico)
// @Tags         dishes
// @Param        id  path  int  true  "id del plato"
// @Success      204
// @Failure      404  {object}  dto.StandardError
// @Router       /v1/dishes/{id} [delete]
// @Security     BearerAuth
func (h *DishHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return writeError(c, h.log, err)
	}
	if err := h.uc.Delete(c.UserContext(), id, Username(c)); err != nil {
		return writeError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// List godoc
// @Summary      Listar catálogo activo
// @Tags         dishes
// @Produce      json
// @Success      200  {array}  dto.DishResponse
// @Router       /v1/dishes [get]
func (h *DishHandler) List(c *fiber.Ctx) error {
	dishes, err := h.uc.ListAll(c.UserContext())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(dishes)
}

// ListPaged godoc
// @Summary      Listado paginado con filtros dinámicos
// @Tags         dishes
// @Produce      json
// @Param        page     query  int     false  "página base cero"
// @Param        size     query  int     false  "tamaño de página"
// @Param        sort     query  string  false  "ASC o DESC (DESC por defecto)"
// @Param        orderBy  query  string  false  "campo de orden"
// @Param        id       query  int     false  "igualdad exacta"
// @Param        name     query  string  false  "subcadena sin mayúsculas"
// @Param        code     query  string  false  "códigos separados por coma o repetidos"
// @Success      200  {object}  dto.DishPageResponse
// @Failure      400  {object}  dto.StandardError
// @Router       /v1/dishes/paged [get]
func (h *DishHandler) ListPaged(c *fiber.Ctx) error {
	values := queryValues(c)

	filter, err := query.ParseDishFilter(values)
	if err != nil {
		return writeError(c, h.log, err)
	}
	sort, err := query.ParseSort(values.Get("sort"), values.Get("orderBy"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	page, err := parsePage(values)
	if err != nil {
		return writeError(c, h.log, err)
	}

	result, err := h.uc.ListPaged(c.UserContext(), filter, sort, page)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(result)
}

// MenuPDF godoc
// @Summary      Carta imprimible del catálogo activo
// @Tags         dishes
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /v1/dishes/menu.pdf [get]
func (h *DishHandler) MenuPDF(c *fiber.Ctx) error {
	pdfBytes, err := h.uc.MenuPDF(c.UserContext())
	if err != nil {
		return writeError(c, h.log, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="menu.pdf"`)
	return c.Send(pdfBytes)
}

func parseID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.ErrValidation
	}
	return id, nil
}

// queryValues reconstruye url.Values preservando claves repetidas, que Fiber
// colapsa en c.Queries().
func queryValues(c *fiber.Ctx) url.Values {
	values := url.Values{}
	c.Context().QueryArgs().VisitAll(func(key, val []byte) {
		values.Add(string(key), string(val))
	})
	return values
}

func parsePage(values url.Values) (query.Page, error) {
	page := query.Page{Number: 0, Size: defaultPageSize}
	if raw := values.Get("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return query.Page{}, domain.ErrValidation
		}
		page.Number = n
	}
	if raw := values.Get("size"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 || n > maxPageSize {
			return query.Page{}, domain.ErrValidation
		}
		page.Size = n
	}
	return page, nil
}
