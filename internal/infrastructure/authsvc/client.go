// Package authsvc implementa el cliente REST hacia el servicio de
// autenticación hospedado (GoTrue / Supabase Auth). La app no maneja
// credenciales propias: delega el password grant y valida después el JWT
// que emite el servicio.
package authsvc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/tu-usuario/inventario-movil/internal/application/auth"
	"github.com/tu-usuario/inventario-movil/internal/domain"
)

var _ auth.Provider = (*Client)(nil)

// Client implementa auth.Provider contra el endpoint /auth/v1/token.
// Usa net/http de la stdlib; no requiere librerías de terceros.
type Client struct {
	baseURL    string // ej. https://<proyecto>.supabase.co
	apiKey     string // anon key del proyecto
	httpClient *http.Client
}

// NewClient construye el cliente con timeout de red propio.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
	RefreshToken string `json:"refresh_token"`
	User         struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	} `json:"user"`
}

// SignInWithPassword ejecuta el password grant contra el servicio.
// Credenciales rechazadas -> domain.ErrUnauthorized.
func (c *Client) SignInWithPassword(ctx context.Context, email, password string) (*auth.Session, error) {
	body := map[string]string{"email": email, "password": password}
	return c.token(ctx, "password", body)
}

// RefreshSession renueva la sesión con el refresh token.
func (c *Client) RefreshSession(ctx context.Context, refreshToken string) (*auth.Session, error) {
	body := map[string]string{"refresh_token": refreshToken}
	return c.token(ctx, "refresh_token", body)
}

func (c *Client) token(ctx context.Context, grantType string, body map[string]string) (*auth.Session, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("auth: serializar petición: %w", err)
	}
	url := fmt.Sprintf("%s/auth/v1/token?grant_type=%s", c.baseURL, grantType)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("auth: construir petición: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("auth: llamar al servicio: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		// sigue abajo
	case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnauthorized:
		return nil, domain.ErrUnauthorized
	default:
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("auth: respuesta inesperada %d: %s", resp.StatusCode, msg)
	}

	var tr tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return nil, fmt.Errorf("auth: decodificar respuesta: %w", err)
	}
	return &auth.Session{
		AccessToken:  tr.AccessToken,
		RefreshToken: tr.RefreshToken,
		ExpiresIn:    tr.ExpiresIn,
		UserID:       tr.User.ID,
		Email:        tr.User.Email,
	}, nil
}
