package service_test

import (
	"context"
	"testing"

	"github.com/jeffersonaandrade/pousada-backend/internal/apperr"
	"github.com/jeffersonaandrade/pousada-backend/internal/config"
	"github.com/jeffersonaandrade/pousada-backend/internal/dto"
	"github.com/jeffersonaandrade/pousada-backend/internal/model"
	"github.com/jeffersonaandrade/pousada-backend/internal/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildAuthSvc() (service.AuthService, *stubUsuarioRepo, *config.Config) {
	repo := newStubUsuarioRepo()
	cfg := &config.Config{JWTSecret: "segredo-de-teste", JWTExpirationHours: 8}
	return service.NewAuthService(service.NewUsuarioService(repo), cfg), repo, cfg
}

func TestLoginEmiteToken(t *testing.T) {
	svc, repo, cfg := buildAuthSvc()
	gerente := seedUsuario(repo, "Paula", "1234", model.CargoGerente)

	resp, err := svc.Login(context.Background(), dto.LoginRequest{Pin: "1234"})
	require.NoError(t, err)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, 8*3600, resp.ExpiresIn)
	assert.Equal(t, gerente.ID.String(), resp.User.ID)

	token, err := jwt.Parse(resp.AccessToken, func(_ *jwt.Token) (interface{}, error) {
		return []byte(cfg.JWTSecret), nil
	})
	require.NoError(t, err)
	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, gerente.ID.String(), claims["user_id"])
	assert.Equal(t, "Paula", claims["nome"])
	assert.Equal(t, string(model.CargoGerente), claims["cargo"])
}

func TestLoginPinInvalido(t *testing.T) {
	svc, repo, _ := buildAuthSvc()
	seedUsuario(repo, "Paula", "1234", model.CargoGerente)

	_, err := svc.Login(context.Background(), dto.LoginRequest{Pin: "9999"})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindForbidden))
}
