package inventory_test

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/inventario-movil/internal/application/inventory"
	"github.com/tu-usuario/inventario-movil/internal/domain/entity"
)

// fakeCatalog implementa repository.ProductRepository para los tests de
// lectura; solo ListByIDs tiene comportamiento real.
type fakeCatalog struct {
	byID map[int64]*entity.Product
}

func (f *fakeCatalog) List(_ context.Context, _, _ int) ([]*entity.Product, error) {
	return nil, nil
}

func (f *fakeCatalog) Search(_ context.Context, _ string, _, _ int) ([]*entity.Product, error) {
	return nil, nil
}

func (f *fakeCatalog) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	return f.byID[id], nil
}

func (f *fakeCatalog) GetByQRCode(_ context.Context, _ string) (*entity.Product, error) {
	return nil, nil
}

func (f *fakeCatalog) ListByIDs(_ context.Context, ids []int64) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, id := range ids {
		if p, ok := f.byID[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

// El listado une cada fila de stock con su producto; las filas cuyo
// producto ya no está en el catálogo se omiten.
func TestListStore_UneStockConCatalogo(t *testing.T) {
	invRepo := newFakeInventoryRepo()
	invRepo.seed(1, 10, 5)
	invRepo.seed(1, 20, 0)
	invRepo.seed(1, 99, 3) // producto huérfano, sin fila de catálogo
	catalog := &fakeCatalog{byID: map[int64]*entity.Product{
		10: {ID: 10, Name: "Silla"},
		20: {ID: 20, Name: "Mesa"},
	}}
	uc := inventory.NewInventoryQueryUseCase(invRepo, catalog)

	items, err := uc.ListStore(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, items, 2, "la fila huérfana se omite")

	sort.Slice(items, func(i, j int) bool { return items[i].Product.ID < items[j].Product.ID })
	assert.Equal(t, "Silla", items[0].Product.Name)
	assert.True(t, items[0].InStock)
	assert.Equal(t, "Mesa", items[1].Product.Name)
	assert.False(t, items[1].InStock, "cantidad cero no cuenta como en stock")
}

func TestListStore_TiendaVacia(t *testing.T) {
	uc := inventory.NewInventoryQueryUseCase(newFakeInventoryRepo(), &fakeCatalog{})

	items, err := uc.ListStore(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, items)
}
