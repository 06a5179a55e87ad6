package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/minishop/internal/config"
	"github.com/minishop/internal/logger"
	"github.com/minishop/internal/models"
	"github.com/minishop/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const (
	usernameMinLength     = 3
	usernameMaxLength     = 64
	defaultJWTExpireHours = 2
)

// UserAuthService 用户认证服务
type UserAuthService struct {
	cfg        *config.Config
	userRepo   repository.UserRepository
	now        func() time.Time
	bcryptCost int

	dummyOnce sync.Once
	dummyHash []byte
}

// NewUserAuthService 创建用户认证服务
func NewUserAuthService(cfg *config.Config, userRepo repository.UserRepository) *UserAuthService {
	return &UserAuthService{
		cfg:        cfg,
		userRepo:   userRepo,
		now:        time.Now,
		bcryptCost: bcrypt.DefaultCost,
	}
}

// UserJWTClaims 用户 JWT 声明，sub 为用户名
type UserJWTClaims struct {
	UserID uint `json:"userId"`
	jwt.RegisteredClaims
}

// Session 登录成功后的会话
type Session struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      *models.User `json:"user"`
}

// Register 用户注册
func (s *UserAuthService) Register(ctx context.Context, username, password string) (*models.User, error) {
	normalized, err := normalizeUsername(username)
	if err != nil {
		return nil, err
	}
	if err := validatePassword(s.cfg.Security.PasswordPolicy, password); err != nil {
		return nil, err
	}

	exist, err := s.userRepo.GetByUsername(ctx, normalized)
	if err != nil {
		return nil, err
	}
	if exist != nil {
		return nil, ErrUsernameExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, err
	}
	user := &models.User{
		Username:     normalized,
		PasswordHash: string(hashed),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		// 并发注册由唯一索引兜底
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrUsernameExists
		}
		return nil, err
	}
	logger.Infow("user_registered", "user_id", user.ID, "username", user.Username)
	return user, nil
}

// Authenticate 校验用户名密码并签发会话令牌
func (s *UserAuthService) Authenticate(ctx context.Context, username, password string) (*Session, error) {
	normalized := strings.TrimSpace(username)
	if normalized == "" || password == "" {
		return nil, ErrInvalidCredentials
	}
	user, err := s.userRepo.GetByUsername(ctx, normalized)
	if err != nil {
		return nil, err
	}
	if user == nil {
		// 用户不存在时同样执行一次哈希比较，避免通过耗时判断用户名
		_ = bcrypt.CompareHashAndPassword(s.dummyPasswordHash(), []byte(password))
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, expiresAt, err := s.GenerateUserJWT(user)
	if err != nil {
		return nil, err
	}
	return &Session{Token: token, ExpiresAt: expiresAt, User: user}, nil
}

// GenerateUserJWT 生成用户 JWT Token
func (s *UserAuthService) GenerateUserJWT(user *models.User) (string, time.Time, error) {
	now := s.now()
	expiresAt := now.Add(s.tokenTTL())
	claims := UserJWTClaims{
		UserID: user.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Username,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.cfg.JWT.SecretKey))
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

// ParseUserJWT 解析用户 JWT Token
func (s *UserAuthService) ParseUserJWT(tokenString string) (*UserJWTClaims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	claims := &UserJWTClaims{}
	token, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.JWT.SecretKey), nil
	})
	if err != nil {
		return nil, ErrInvalidToken.wrap(err)
	}
	if !token.Valid || claims.UserID == 0 {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func (s *UserAuthService) tokenTTL() time.Duration {
	hours := s.cfg.JWT.ExpireHours
	if hours <= 0 {
		hours = defaultJWTExpireHours
	}
	return time.Duration(hours) * time.Hour
}

func (s *UserAuthService) dummyPasswordHash() []byte {
	s.dummyOnce.Do(func() {
		hash, err := bcrypt.GenerateFromPassword([]byte("minishop-dummy-password"), s.bcryptCost)
		if err != nil {
			logger.Warnw("user_auth_dummy_hash_failed", "error", err)
			return
		}
		s.dummyHash = hash
	})
	return s.dummyHash
}

func normalizeUsername(username string) (string, error) {
	normalized := strings.TrimSpace(username)
	if normalized == "" {
		return "", ErrUsernameRequired
	}
	length := utf8.RuneCountInString(normalized)
	if length < usernameMinLength || length > usernameMaxLength {
		return "", ErrUsernameInvalid
	}
	return normalized, nil
}
