package auth

import (
	"context"
	"time"

	"github.com/tu-usuario/inventario-movil/internal/domain"
)

// Session es la sesión que entrega el servicio de autenticación hospedado.
// El token lo emite y firma el servicio; esta app solo lo valida.
type Session struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int
	UserID       string
	Email        string
}

// Provider puerto hacia el servicio de autenticación externo. La app no
// guarda credenciales: delega el login por completo y enruta según
// éxito/fracaso.
type Provider interface {
	SignInWithPassword(ctx context.Context, email, password string) (*Session, error)
	RefreshSession(ctx context.Context, refreshToken string) (*Session, error)
}

// UseCase caso de uso de autenticación delegada.
type UseCase struct {
	provider Provider
	timeout  time.Duration
}

// NewUseCase construye el caso de uso. timeout acota cada llamada al
// servicio externo para que un login colgado no bloquee al cliente.
func NewUseCase(provider Provider, timeout time.Duration) *UseCase {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &UseCase{provider: provider, timeout: timeout}
}

// Login delega las credenciales al servicio externo.
func (uc *UseCase) Login(ctx context.Context, email, password string) (*Session, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidInput
	}
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()
	return uc.provider.SignInWithPassword(ctx, email, password)
}

// Refresh renueva la sesión con el refresh token del servicio externo.
func (uc *UseCase) Refresh(ctx context.Context, refreshToken string) (*Session, error) {
	if refreshToken == "" {
		return nil, domain.ErrInvalidInput
	}
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()
	return uc.provider.RefreshSession(ctx, refreshToken)
}
