package service

import (
	"context"
	"crypto/subtle"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/pedrodiniz00/sistema-obras/internal/config"
	"github.com/pedrodiniz00/sistema-obras/internal/dto"
	"github.com/pedrodiniz00/sistema-obras/internal/sessao"
)

// Token kinds carried in the "tipo" claim.
const (
	TokenAcesso  = "access"
	TokenRefresh = "refresh"
)

// AuthService authenticates the single operator configured through
// OPERATOR_USERNAME / OPERATOR_PASSWORD_HASH. Each login opens a new UI
// session whose id travels in the tokens; refresh keeps the same session.
type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*dto.LoginResponse, error)
	Logout(ctx context.Context, sessaoID string) error
}

type authService struct {
	cfg     *config.Config
	sessoes sessao.Store
}

func NewAuthService(cfg *config.Config, sessoes sessao.Store) AuthService {
	return &authService{cfg: cfg, sessoes: sessoes}
}

func (s *authService) Login(_ context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	if s.cfg.OperatorPasswordHash == "" {
		return nil, ErrCredenciaisInvalidas
	}
	if subtle.ConstantTimeCompare([]byte(req.Username), []byte(s.cfg.OperatorUsername)) != 1 {
		return nil, ErrCredenciaisInvalidas
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.cfg.OperatorPasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrCredenciaisInvalidas
	}
	return s.emitir(uuid.NewString())
}

func (s *authService) Refresh(_ context.Context, refreshToken string) (*dto.LoginResponse, error) {
	token, err := jwt.Parse(refreshToken, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrTokenInvalido
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrTokenInvalido
	}
	if tipo, _ := claims["tipo"].(string); tipo != TokenRefresh {
		return nil, ErrTokenInvalido
	}
	sessaoID, _ := claims["sessao_id"].(string)
	if _, err := uuid.Parse(sessaoID); err != nil {
		return nil, ErrTokenInvalido
	}
	if usuario, _ := claims["username"].(string); usuario != s.cfg.OperatorUsername {
		return nil, ErrTokenInvalido
	}
	return s.emitir(sessaoID)
}

// Logout drops the session's UI state. Tokens stay valid until they expire.
func (s *authService) Logout(ctx context.Context, sessaoID string) error {
	if sessaoID == "" {
		return sessao.ErrSemSessao
	}
	return s.sessoes.Remover(ctx, sessaoID)
}

func (s *authService) emitir(sessaoID string) (*dto.LoginResponse, error) {
	accessToken, err := s.generateToken(sessaoID, TokenAcesso, time.Duration(s.cfg.JWTExpirationHours)*time.Hour)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.generateToken(sessaoID, TokenRefresh, time.Duration(s.cfg.JWTRefreshHours)*time.Hour)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "bearer",
		ExpiresIn:    s.cfg.JWTExpirationHours * 3600,
		Usuario:      s.cfg.OperatorUsername,
	}, nil
}

func (s *authService) generateToken(sessaoID, tipo string, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"username":  s.cfg.OperatorUsername,
		"sessao_id": sessaoID,
		"tipo":      tipo,
		"jti":       uuid.NewString(),
		"exp":       time.Now().Add(duration).Unix(),
		"iat":       time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}
