package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"clinica/config"
	"clinica/internal/domain"
	"clinica/internal/repository"
	"clinica/pkg/auth"
)

var (
	ErrInvalidCredentials = errors.New("e-mail ou senha inválidos")
	ErrSessionExpired     = errors.New("sessão expirada")
	ErrInvalidToken       = errors.New("token inválido")
	ErrUserInactive       = errors.New("usuário desativado")
)

type tokenClaims struct {
	jwt.RegisteredClaims
	UserID int64           `json:"user_id"`
	Role   domain.UserRole `json:"role"`
}

type AuthServiceImpl struct {
	authRepo repository.AuthRepository
	userRepo repository.UserRepository
	jwtCfg   config.JWTConfig
	logger   *zap.Logger
}

func NewAuthService(
	authRepo repository.AuthRepository,
	userRepo repository.UserRepository,
	jwtCfg config.JWTConfig,
	logger *zap.Logger,
) *AuthServiceImpl {
	return &AuthServiceImpl{
		authRepo: authRepo,
		userRepo: userRepo,
		jwtCfg:   jwtCfg,
		logger:   logger,
	}
}

func (s *AuthServiceImpl) Login(ctx context.Context, dto domain.LoginRequest, userAgent, ip string) (*domain.Tokens, error) {
	user, err := s.userRepo.GetByEmail(ctx, dto.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("erro ao buscar usuário: %w", err)
	}

	ok, err := auth.VerifyPassword(dto.Password, user.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("erro ao verificar senha: %w", err)
	}
	if !ok {
		return nil, ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, ErrUserInactive
	}

	tokens, err := s.createSession(ctx, user, userAgent, ip)
	if err != nil {
		return nil, err
	}

	s.logger.Info("login realizado",
		zap.Int64("user_id", user.ID),
		zap.String("role", string(user.Role)),
	)

	return tokens, nil
}

func (s *AuthServiceImpl) RefreshTokens(ctx context.Context, refreshToken, userAgent, ip string) (*domain.Tokens, error) {
	session, err := s.authRepo.GetSessionByRefreshToken(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, fmt.Errorf("erro ao buscar sessão: %w", err)
	}

	if time.Now().After(session.ExpiresAt) {
		if err := s.authRepo.DeleteSession(ctx, session.ID); err != nil {
			s.logger.Warn("erro ao remover sessão expirada", zap.Error(err))
		}
		return nil, ErrSessionExpired
	}

	user, err := s.userRepo.GetByID(ctx, session.UserID)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar usuário da sessão: %w", err)
	}
	if !user.IsActive {
		return nil, ErrUserInactive
	}

	// Rotação: a sessão antiga é descartada e uma nova é criada.
	if err := s.authRepo.DeleteSession(ctx, session.ID); err != nil {
		return nil, fmt.Errorf("erro ao rotacionar sessão: %w", err)
	}

	return s.createSession(ctx, user, userAgent, ip)
}

func (s *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	session, err := s.authRepo.GetSessionByRefreshToken(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("erro ao buscar sessão: %w", err)
	}

	return s.authRepo.DeleteSession(ctx, session.ID)
}

func (s *AuthServiceImpl) ParseToken(ctx context.Context, accessToken string) (int64, domain.UserRole, error) {
	token, err := jwt.ParseWithClaims(accessToken, &tokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de assinatura inesperado: %v", token.Header["alg"])
		}
		return []byte(s.jwtCfg.SigningKey), nil
	})
	if err != nil {
		return 0, "", ErrInvalidToken
	}

	claims, ok := token.Claims.(*tokenClaims)
	if !ok || !token.Valid {
		return 0, "", ErrInvalidToken
	}

	return claims.UserID, claims.Role, nil
}

func (s *AuthServiceImpl) createSession(ctx context.Context, user *domain.User, userAgent, ip string) (*domain.Tokens, error) {
	accessToken, err := s.signToken(user, s.jwtCfg.AccessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar token de acesso: %w", err)
	}

	refreshToken, err := auth.GenerateRandomToken(32)
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar token de atualização: %w", err)
	}

	session := domain.Session{
		ID:           uuid.New().String(),
		UserID:       user.ID,
		RefreshToken: refreshToken,
		UserAgent:    userAgent,
		IP:           ip,
		ExpiresAt:    time.Now().Add(s.jwtCfg.RefreshTokenTTL),
		CreatedAt:    time.Now(),
	}

	if err := s.authRepo.CreateSession(ctx, session); err != nil {
		return nil, fmt.Errorf("erro ao criar sessão: %w", err)
	}

	return &domain.Tokens{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (s *AuthServiceImpl) signToken(user *domain.User, ttl time.Duration) (string, error) {
	claims := tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprintf("%d", user.ID),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
		UserID: user.ID,
		Role:   user.Role,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtCfg.SigningKey))
}
