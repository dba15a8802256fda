package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/jackc/pgx/v5"

	"github.com/allanborges/restaurant-api/internal/domain/entity"
	"github.com/allanborges/restaurant-api/internal/domain/query"
	"github.com/allanborges/restaurant-api/internal/domain/repository"
)

var _ repository.DishRepository = (*DishRepo)(nil)

// DishRepo implementación del puerto DishRepository sobre PostgreSQL. Todas
// las lecturas hacen JOIN con dish_codes para devolver el código resuelto.
type DishRepo struct {
	db DB
}

// NewDishRepository construye el adaptador de persistencia de platos.
func NewDishRepository(db DB) *DishRepo {
	return &DishRepo{db: db}
}

const dishColumns = `d.id, d.name, d.description, d.price, d.stock, d.image_url,
	d.created_by, d.created_date, d.updated_by, d.updated_date, d.inactivated_by, d.inactivated_date,
	c.id, c.code, c.description`

const dishFrom = ` FROM dishes d JOIN dish_codes c ON c.id = d.code_id`

// Create inserta el plato referenciando el código ya resuelto.
func (r *DishRepo) Create(ctx context.Context, dish *entity.Dish) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO dishes (name, description, price, stock, code_id, image_url,
			created_by, created_date, updated_by, updated_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`,
		dish.Name, dish.Description, dish.Price, dish.Stock, dish.Code.ID, dish.ImageURL,
		dish.CreatedBy, dish.CreatedDate, dish.UpdatedBy, dish.UpdatedDate,
	).Scan(&dish.ID)
	if err != nil {
		return fmt.Errorf("insert dish: %w", err)
	}
	return nil
}

// FindByID obtiene un plato por ID; (nil, nil) si no existe. Incluye filas
// inactivadas para que actualizar/borrar puedan razonar sobre el estado.
func (r *DishRepo) FindByID(ctx context.Context, id int64) (*entity.Dish, error) {
	row := r.db.QueryRow(ctx, `SELECT `+dishColumns+dishFrom+` WHERE d.id = $1`, id)
	dish, err := scanDish(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get dish: %w", err)
	}
	return dish, nil
}

// Update persiste campos, código y estado de inactivación del plato.
func (r *DishRepo) Update(ctx context.Context, dish *entity.Dish) error {
	_, err := r.db.Exec(ctx, `
		UPDATE dishes SET name = $2, description = $3, price = $4, stock = $5,
			code_id = $6, image_url = $7, updated_by = $8, updated_date = $9,
			inactivated_by = $10, inactivated_date = $11
		WHERE id = $1`,
		dish.ID, dish.Name, dish.Description, dish.Price, dish.Stock,
		dish.Code.ID, dish.ImageURL, dish.UpdatedBy, dish.UpdatedDate,
		dish.InactivatedBy, dish.InactivatedDate,
	)
	if err != nil {
		return fmt.Errorf("update dish: %w", err)
	}
	return nil
}

// FindAllActive devuelve el catálogo activo ordenado por nombre.
func (r *DishRepo) FindAllActive(ctx context.Context) ([]*entity.Dish, error) {
	rows, err := r.db.Query(ctx, `SELECT `+dishColumns+dishFrom+
		` WHERE d.inactivated_date IS NULL ORDER BY d.name`)
	if err != nil {
		return nil, fmt.Errorf("list dishes: %w", err)
	}
	defer rows.Close()
	return collectDishes(rows)
}

// FindPage traduce los predicados a SQL y ejecuta la consulta dos veces: una
// acotada por LIMIT/OFFSET y otra de count(*) con el mismo WHERE.
func (r *DishRepo) FindPage(ctx context.Context, preds []query.Predicate, sort query.Sort, page query.Page) ([]*entity.Dish, int64, error) {
	where, args := buildWhere(preds)

	var total int64
	countSQL := `SELECT count(*)` + dishFrom + where
	if err := r.db.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count dishes: %w", err)
	}

	pageSQL := `SELECT ` + dishColumns + dishFrom + where +
		` ORDER BY ` + resolveOrderColumn(sort.Field) + ` ` + string(sort.Direction) +
		fmt.Sprintf(` LIMIT %d OFFSET %d`, page.Size, page.Offset())
	rows, err := r.db.Query(ctx, pageSQL, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("page dishes: %w", err)
	}
	defer rows.Close()

	dishes, err := collectDishes(rows)
	if err != nil {
		return nil, 0, err
	}
	return dishes, total, nil
}

// buildWhere traduce la conjunción de predicados a una cláusula WHERE con
// placeholders posicionales. Los campos lógicos vienen del conjunto cerrado
// del paquete query; nunca de entrada de usuario sin resolver.
func buildWhere(preds []query.Predicate) (string, []any) {
	var clauses []string
	var args []any
	next := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}
	for _, p := range preds {
		switch pred := p.(type) {
		case query.IsNull:
			clauses = append(clauses, filterColumn(pred.Field)+" IS NULL")
		case query.Exact:
			clauses = append(clauses, filterColumn(pred.Field)+" = "+next(pred.Value))
		case query.Substring:
			clauses = append(clauses, filterColumn(pred.Field)+" ILIKE "+next("%"+pred.Value+"%"))
		case query.Range:
			col := filterColumn(pred.Field)
			if pred.From != nil {
				clauses = append(clauses, col+" >= "+next(*pred.From))
			}
			if pred.To != nil {
				clauses = append(clauses, col+" <= "+next(*pred.To))
			}
		case query.InSet:
			lowered := make([]string, 0, len(pred.Values))
			for _, v := range pred.Values {
				lowered = append(lowered, strings.ToLower(v))
			}
			clauses = append(clauses, "lower("+filterColumn(pred.Field)+") = ANY("+next(lowered)+")")
		}
	}
	if len(clauses) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

// filterColumn resuelve un campo lógico de filtro a su columna calificada.
func filterColumn(field string) string {
	switch field {
	case query.FieldCode:
		return "c.code"
	default:
		return "d." + field
	}
}

// resolveOrderColumn resuelve el campo de orden pedido contra la lista blanca
// de columnas. "code" ordena por el texto del código resuelto; la ruta con
// punto "code.description" ordena por la descripción del código. Campos
// camelCase se normalizan a snake_case; lo que no resuelve cae en
// d.created_date.
func resolveOrderColumn(field string) string {
	switch normalized := camelToSnake(field); normalized {
	case "id", "name", "description", "price", "stock", "created_date", "updated_date":
		return "d." + normalized
	case "code":
		return "c.code"
	case "code.code":
		return "c.code"
	case "code.description":
		return "c.description"
	default:
		return "d.created_date"
	}
}

func camelToSnake(s string) string {
	var b strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func scanDish(row rowScanner) (*entity.Dish, error) {
	var d entity.Dish
	var code entity.DishCode
	err := row.Scan(
		&d.ID, &d.Name, &d.Description, &d.Price, &d.Stock, &d.ImageURL,
		&d.CreatedBy, &d.CreatedDate, &d.UpdatedBy, &d.UpdatedDate,
		&d.InactivatedBy, &d.InactivatedDate,
		&code.ID, &code.Code, &code.Description,
	)
	if err != nil {
		return nil, err
	}
	d.Code = &code
	return &d, nil
}

func collectDishes(rows pgx.Rows) ([]*entity.Dish, error) {
	var dishes []*entity.Dish
	for rows.Next() {
		d, err := scanDish(rows)
		if err != nil {
			return nil, fmt.Errorf("scan dish: %w", err)
		}
		dishes = append(dishes, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return dishes, nil
}
