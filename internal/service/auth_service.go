package service

import (
	"context"
	"time"

	"github.com/jeffersonaandrade/pousada-backend/internal/config"
	"github.com/jeffersonaandrade/pousada-backend/internal/dto"
	"github.com/jeffersonaandrade/pousada-backend/internal/model"

	"github.com/golang-jwt/jwt/v5"
)

type AuthService interface {
	// Login autentica o funcionário pelo PIN e emite o token de acesso.
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
}

type authService struct {
	usuarios UsuarioService
	cfg      *config.Config
}

func NewAuthService(usuarios UsuarioService, cfg *config.Config) AuthService {
	return &authService{usuarios: usuarios, cfg: cfg}
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.usuarios.ResolverPin(ctx, req.Pin)
	if err != nil {
		return nil, err
	}

	token, err := s.generateToken(user, time.Duration(s.cfg.JWTExpirationHours)*time.Hour)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   s.cfg.JWTExpirationHours * 3600,
		User: dto.UsuarioResponse{
			ID:    user.ID.String(),
			Nome:  user.Nome,
			Cargo: string(user.Cargo),
			Ativo: user.Ativo,
		},
	}, nil
}

func (s *authService) generateToken(user *model.Usuario, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID.String(),
		"nome":    user.Nome,
		"cargo":   string(user.Cargo),
		"exp":     time.Now().Add(duration).Unix(),
		"iat":     time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}
