package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/inventario-movil/internal/application/usecase"
	"github.com/tu-usuario/inventario-movil/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake del repositorio de productos
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	byID     map[int64]*entity.Product
	byQRCode map[string]*entity.Product

	lastSearchPattern string
	listCalls         int
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	f := &fakeProductRepo{
		byID:     make(map[int64]*entity.Product),
		byQRCode: make(map[string]*entity.Product),
	}
	for _, p := range products {
		f.byID[p.ID] = p
		if p.QRCode != "" {
			f.byQRCode[p.QRCode] = p
		}
	}
	return f
}

func (f *fakeProductRepo) List(_ context.Context, _, _ int) ([]*entity.Product, error) {
	f.listCalls++
	out := make([]*entity.Product, 0, len(f.byID))
	for _, p := range f.byID {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeProductRepo) Search(_ context.Context, pattern string, _, _ int) ([]*entity.Product, error) {
	f.lastSearchPattern = pattern
	return nil, nil
}

func (f *fakeProductRepo) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	return f.byID[id], nil
}

func (f *fakeProductRepo) GetByQRCode(_ context.Context, code string) (*entity.Product, error) {
	return f.byQRCode[code], nil
}

func (f *fakeProductRepo) ListByIDs(_ context.Context, ids []int64) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, id := range ids {
		if p, ok := f.byID[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// NormalizeSearch
// ──────────────────────────────────────────────────────────────────────────────

func TestNormalizeSearch(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Café", "cafe"},
		{"AZÚCAR Moreno", "azucar moreno"},
		{"  Té Verde  ", "te verde"},
		{"ñame", "ñame"}, // la ñ se conserva: no es una vocal acentuada
		{"Ñame", "ñame"},
		{"señal café", "señal cafe"}, // ñ intacta, tilde eliminada en la misma cadena
		{"leche", "leche"},
		{"", ""},
		{"   ", ""},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, usecase.NormalizeSearch(tc.in))
		})
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Search
// ──────────────────────────────────────────────────────────────────────────────

// El término llega al repositorio ya normalizado.
func TestSearch_NormalizaElTermino(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)

	_, err := uc.Search(context.Background(), "Café", 20, 0)
	require.NoError(t, err)
	assert.Equal(t, "cafe", repo.lastSearchPattern)
}

// Un término vacío degrada a listado, no a búsqueda con patrón vacío.
func TestSearch_TerminoVacioLista(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)

	_, err := uc.Search(context.Background(), "   ", 20, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.listCalls)
	assert.Empty(t, repo.lastSearchPattern)
}

// ──────────────────────────────────────────────────────────────────────────────
// ResolveScannedCode
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: El código coincide con un qr_code → se resuelve por QR.
func TestResolveScannedCode_PorQR(t *testing.T) {
	repo := newFakeProductRepo(
		&entity.Product{ID: 1, Name: "Silla", QRCode: "QR-123"},
	)
	uc := usecase.NewProductUseCase(repo)

	p, err := uc.ResolveScannedCode(context.Background(), "QR-123")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, int64(1), p.ID)
}

// Caso 2: Sin coincidencia por QR pero el código es numérico → se intenta
// como product_id.
func TestResolveScannedCode_FallbackPorID(t *testing.T) {
	repo := newFakeProductRepo(
		&entity.Product{ID: 42, Name: "Mesa"},
	)
	uc := usecase.NewProductUseCase(repo)

	p, err := uc.ResolveScannedCode(context.Background(), "42")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "Mesa", p.Name)
}

// Caso 3: El QR gana sobre el ID cuando ambos podrían coincidir.
func TestResolveScannedCode_QRGanaSobreID(t *testing.T) {
	repo := newFakeProductRepo(
		&entity.Product{ID: 42, Name: "Mesa"},
		&entity.Product{ID: 7, Name: "Silla", QRCode: "42"},
	)
	uc := usecase.NewProductUseCase(repo)

	p, err := uc.ResolveScannedCode(context.Background(), "42")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "Silla", p.Name)
}

// Caso 4: Código no numérico sin coincidencia → nil, nil (no es un error).
func TestResolveScannedCode_SinCoincidencia(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	p, err := uc.ResolveScannedCode(context.Background(), "XYZ")
	require.NoError(t, err)
	assert.Nil(t, p)
}

// Caso 5: Código vacío → nil, nil sin consultar el repositorio.
func TestResolveScannedCode_CodigoVacio(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	p, err := uc.ResolveScannedCode(context.Background(), "  ")
	require.NoError(t, err)
	assert.Nil(t, p)
}
