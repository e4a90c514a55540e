package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tu-usuario/inventario-movil/internal/domain/entity"
	"github.com/tu-usuario/inventario-movil/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `product_id, product_name, brand_id, product_length, product_depth, product_width, base_price, hierarchy_id, qr_code, image_url, arrival_date`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL
// (tabla products, solo lectura). Usable con pool o tx (Querier).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de catálogo. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	var qrCode, imageURL *string
	err := row.Scan(
		&p.ID, &p.Name, &p.BrandID, &p.Length, &p.Depth, &p.Width,
		&p.BasePrice, &p.HierarchyID, &qrCode, &imageURL, &p.ArrivalDate,
	)
	if err != nil {
		return nil, err
	}
	if qrCode != nil {
		p.QRCode = *qrCode
	}
	if imageURL != nil {
		p.ImageURL = *imageURL
	}
	return &p, nil
}

func (r *ProductRepo) collect(rows pgx.Rows) ([]*entity.Product, error) {
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// List devuelve una página del catálogo ordenada por nombre.
func (r *ProductRepo) List(ctx context.Context, limit, offset int) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY product_name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return r.collect(rows)
}

// Search filtra por nombre o código QR sin distinguir tildes: unaccent se
// aplica a ambos lados (columna y patrón) para que "cafe" encuentre "Café"
// y viceversa. Requiere la extensión unaccent de PostgreSQL.
func (r *ProductRepo) Search(ctx context.Context, pattern string, limit, offset int) ([]*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE unaccent(product_name) ILIKE '%' || unaccent($1) || '%'
		   OR unaccent(qr_code) ILIKE '%' || unaccent($1) || '%'
		ORDER BY product_name LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, pattern, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	return r.collect(rows)
}

// GetByID obtiene un producto por id. nil, nil si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE product_id = $1`
	p, err := scanProduct(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// GetByQRCode obtiene un producto por su código QR. nil, nil si no existe.
func (r *ProductRepo) GetByQRCode(ctx context.Context, code string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE qr_code = $1`
	p, err := scanProduct(r.q.QueryRow(ctx, query, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product by qr code: %w", err)
	}
	return p, nil
}

// ListByIDs lookup batcheado de productos por id.
func (r *ProductRepo) ListByIDs(ctx context.Context, ids []int64) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE product_id = ANY($1)`
	rows, err := r.q.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("list products by ids: %w", err)
	}
	return r.collect(rows)
}
