package usecase

import (
	"context"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/tu-usuario/inventario-movil/internal/domain/entity"
	"github.com/tu-usuario/inventario-movil/internal/domain/repository"
)

// ProductUseCase lecturas del catálogo: listado paginado, búsqueda por
// nombre/código y resolución de códigos escaneados. El catálogo lo
// administra un proceso externo; aquí no hay escrituras.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// List devuelve una página del catálogo.
func (uc *ProductUseCase) List(ctx context.Context, limit, offset int) ([]*entity.Product, error) {
	return uc.repo.List(ctx, limit, offset)
}

// Search busca por nombre o código QR. El término se normaliza (minúsculas,
// sin tildes) para que "café" y "cafe" encuentren lo mismo.
func (uc *ProductUseCase) Search(ctx context.Context, query string, limit, offset int) ([]*entity.Product, error) {
	pattern := NormalizeSearch(query)
	if pattern == "" {
		return uc.repo.List(ctx, limit, offset)
	}
	return uc.repo.Search(ctx, pattern, limit, offset)
}

// GetByID obtiene un producto. nil, nil si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	return uc.repo.GetByID(ctx, id)
}

// ResolveScannedCode resuelve el dato leído por el escáner del cliente:
// primero como qr_code y, si el texto es numérico, como product_id.
// nil, nil si ningún producto coincide.
func (uc *ProductUseCase) ResolveScannedCode(ctx context.Context, code string) (*entity.Product, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, nil
	}
	product, err := uc.repo.GetByQRCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if product != nil {
		return product, nil
	}
	id, convErr := strconv.ParseInt(code, 10, 64)
	if convErr != nil {
		return nil, nil
	}
	return uc.repo.GetByID(ctx, id)
}

// NormalizeSearch pasa el término a minúsculas y elimina marcas diacríticas
// (NFD + descarte de Mn + NFC) antes de construir el patrón de búsqueda.
// La ñ no es una vocal acentuada: se protege antes de eliminar las marcas
// (en NFD se descompone en n + U+0303, una marca Mn) y se restaura después.
func NormalizeSearch(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ""
	}
	const enhePlaceholder = "\x00"
	s = strings.ReplaceAll(s, "ñ", enhePlaceholder)
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ReplaceAll(out, enhePlaceholder, "ñ")
}
