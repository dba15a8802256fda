package usecase

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/allanborges/restaurant-api/internal/application/dto"
	"github.com/allanborges/restaurant-api/internal/domain"
	"github.com/allanborges/restaurant-api/internal/domain/entity"
	"github.com/allanborges/restaurant-api/internal/domain/query"
	"github.com/allanborges/restaurant-api/internal/domain/repository"
	"github.com/allanborges/restaurant-api/pkg/logger"
)

// DishTxRunner ejecuta un callback con los repositorios de platos y códigos
// atados a una misma transacción: resolver-o-crear el código y guardar el
// plato confirman o revierten juntos.
type DishTxRunner interface {
	Run(ctx context.Context, fn func(dishes repository.DishRepository, codes repository.DishCodeRepository) error) error
}

// MenuPDFGenerator genera la carta imprimible a partir del catálogo activo.
type MenuPDFGenerator interface {
	GenerateMenuPDF(ctx context.Context, dishes []*entity.Dish) ([]byte, error)
}

// DishUseCase CRUD y listado paginado/filtrado del catálogo de platos.
type DishUseCase struct {
	tx     DishTxRunner
	dishes repository.DishRepository
	codes  repository.DishCodeRepository
	pdf    MenuPDFGenerator
	log    *logger.Logger
}

// NewDishUseCase construye el caso de uso.
func NewDishUseCase(tx DishTxRunner, dishes repository.DishRepository, codes repository.DishCodeRepository, pdf MenuPDFGenerator, log *logger.Logger) *DishUseCase {
	return &DishUseCase{tx: tx, dishes: dishes, codes: codes, pdf: pdf, log: log}
}

var codeCharset = regexp.MustCompile(`^[A-Z0-9_\-]+$`)

// normalizeCode recorta, pliega acentos y pasa a mayúsculas, validando
// longitud (3–64) y charset [A-Z0-9_-].
func normalizeCode(raw string) (string, error) {
	tokens := query.NormalizeCodes([]string{raw})
	if len(tokens) == 0 {
		return "", fmt.Errorf("%w: code es requerido", domain.ErrValidation)
	}
	code := tokens[0]
	if n := len(code); n < 3 || n > 64 {
		return "", fmt.Errorf("%w: code debe tener entre 3 y 64 caracteres", domain.ErrValidation)
	}
	if !codeCharset.MatchString(code) {
		return "", fmt.Errorf("%w: code admite mayúsculas, dígitos, _ y -", domain.ErrValidation)
	}
	return code, nil
}

// resolveOrCreateCode busca el código normalizado (sin distinguir mayúsculas)
// y lo crea solo si no existe, devolviendo el registro existente o el nuevo.
func resolveOrCreateCode(ctx context.Context, codes repository.DishCodeRepository, rawCode string, rawDescription *string, actor string) (*entity.DishCode, error) {
	normalized, err := normalizeCode(rawCode)
	if err != nil {
		return nil, err
	}
	existing, err := codes.FindByCode(ctx, normalized)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}
	code := &entity.DishCode{Code: normalized, Description: trimDescription(rawDescription)}
	code.Stamp(actor, time.Now())
	if err := codes.Create(ctx, code); err != nil {
		return nil, err
	}
	return code, nil
}

func trimDescription(desc *string) *string {
	if desc == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*desc)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// Create persiste un plato nuevo; el sub-objeto code es obligatorio y se
// resuelve-o-crea dentro de la misma transacción que el insert del plato.
func (uc *DishUseCase) Create(ctx context.Context, in dto.DishRequest, actor string) (*dto.DishResponse, error) {
	if in.Code == nil || strings.TrimSpace(in.Code.Code) == "" {
		return nil, fmt.Errorf("%w: code es requerido", domain.ErrValidation)
	}
	dish := &entity.Dish{
		Name:        deref(in.Name),
		Description: deref(in.Description),
		Stock:       derefInt(in.Stock),
		ImageURL:    deref(in.ImageURL),
	}
	if in.Price != nil {
		dish.Price = *in.Price
	}
	dish.Stamp(actor, time.Now())

	err := uc.tx.Run(ctx, func(dishes repository.DishRepository, codes repository.DishCodeRepository) error {
		code, err := resolveOrCreateCode(ctx, codes, in.Code.Code, in.Code.Description, actor)
		if err != nil {
			return err
		}
		dish.Code = code
		return dishes.Create(ctx, dish)
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Int64("id", dish.ID).Str("code", dish.Code.Code).Msg("plato creado")
	return dto.ToDishResponse(dish), nil
}

// GetByID devuelve el plato o NotFound.
func (uc *DishUseCase) GetByID(ctx context.Context, id int64) (*dto.DishResponse, error) {
	dish, err := uc.dishes.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if dish == nil {
		return nil, fmt.Errorf("%w: id %d", domain.ErrDishNotFound, id)
	}
	return dto.ToDishResponse(dish), nil
}

// Update carga el plato existente y fusiona los campos no nulos de la
// petición (merge parcial: los nulos dejan el valor actual intacto). Si llega
// un código nuevo, se resuelve-o-crea y se reata en la misma transacción.
func (uc *DishUseCase) Update(ctx context.Context, id int64, in dto.DishRequest, actor string) (*dto.DishResponse, error) {
	dish, err := uc.dishes.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if dish == nil {
		return nil, fmt.Errorf("%w: id %d", domain.ErrDishNotFound, id)
	}

	if in.Name != nil {
		dish.Name = *in.Name
	}
	if in.Description != nil {
		dish.Description = *in.Description
	}
	if in.Price != nil {
		dish.Price = *in.Price
	}
	if in.Stock != nil {
		dish.Stock = *in.Stock
	}
	if in.ImageURL != nil {
		dish.ImageURL = *in.ImageURL
	}
	dish.Touch(actor, time.Now())

	err = uc.tx.Run(ctx, func(dishes repository.DishRepository, codes repository.DishCodeRepository) error {
		if in.Code != nil && strings.TrimSpace(in.Code.Code) != "" {
			code, err := resolveOrCreateCode(ctx, codes, in.Code.Code, in.Code.Description, actor)
			if err != nil {
				return err
			}
			dish.Code = code
		}
		return dishes.Update(ctx, dish)
	})
	if err != nil {
		return nil, err
	}
	return dto.ToDishResponse(dish), nil
}

// Delete inactiva el plato (soft delete): fija inactivatedDate y el actor.
// La fila nunca se elimina; las lecturas dejan de devolverla.
func (uc *DishUseCase) Delete(ctx context.Context, id int64, actor string) error {
	dish, err := uc.dishes.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if dish == nil {
		return fmt.Errorf("%w: id %d", domain.ErrDishNotFound, id)
	}
	if !dish.Active() {
		return nil // ya inactivado, idempotente
	}
	dish.Inactivate(actor, time.Now())
	dish.Touch(actor, time.Now())
	return uc.dishes.Update(ctx, dish)
}

// ListAll devuelve el catálogo activo sin paginar.
func (uc *DishUseCase) ListAll(ctx context.Context) ([]dto.DishResponse, error) {
	dishes, err := uc.dishes.FindAllActive(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.DishResponse, 0, len(dishes))
	for _, d := range dishes {
		out = append(out, *dto.ToDishResponse(d))
	}
	return out, nil
}

// ListPaged construye los predicados del filtro, valida que todos los códigos
// pedidos existan en la taxonomía y delega en el repositorio, que ejecuta la
// página y el conteo total con filtrado idéntico.
func (uc *DishUseCase) ListPaged(ctx context.Context, filter query.DishFilter, sort query.Sort, page query.Page) (*dto.DishPageResponse, error) {
	preds, err := filter.Predicates()
	if err != nil {
		return nil, err
	}
	if codes := query.NormalizeCodes(filter.Codes); len(codes) > 0 {
		if err := uc.checkCodesExist(ctx, codes); err != nil {
			return nil, err
		}
	}
	dishes, total, err := uc.dishes.FindPage(ctx, preds, sort, page)
	if err != nil {
		return nil, err
	}
	content := make([]dto.DishResponse, 0, len(dishes))
	for _, d := range dishes {
		content = append(content, *dto.ToDishResponse(d))
	}
	return &dto.DishPageResponse{
		Content: content,
		Page:    page.Number,
		Size:    page.Size,
		Total:   total,
	}, nil
}

// MenuPDF genera la carta imprimible con el catálogo activo.
func (uc *DishUseCase) MenuPDF(ctx context.Context) ([]byte, error) {
	dishes, err := uc.dishes.FindAllActive(ctx)
	if err != nil {
		return nil, err
	}
	return uc.pdf.GenerateMenuPDF(ctx, dishes)
}

// checkCodesExist falla con error de validación si algún token no resuelve a
// un código conocido.
func (uc *DishUseCase) checkCodesExist(ctx context.Context, codes []string) error {
	found, err := uc.codes.FindByCodes(ctx, codes)
	if err != nil {
		return err
	}
	known := make(map[string]bool, len(found))
	for _, c := range found {
		known[strings.ToUpper(c.Code)] = true
	}
	for _, c := range codes {
		if !known[c] {
			return fmt.Errorf("%w: %s", domain.ErrUnknownDishCode, c)
		}
	}
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefInt(n *int) int {
	if n == nil {
		return 0
	}
	return *n
}
