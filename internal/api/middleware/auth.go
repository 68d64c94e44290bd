package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	jwtlib "github.com/golang-jwt/jwt/v5"

	"github.com/m04kA/SMC-StudioBooking/internal/api/handlers"
	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	photographerRepo "github.com/m04kA/SMC-StudioBooking/internal/infra/storage/photographer"
)

var (
	// ErrMissingToken нет заголовка Authorization
	ErrMissingToken = errors.New("auth: missing bearer token")

	// ErrInvalidToken подпись, срок действия или claims токена некорректны
	ErrInvalidToken = errors.New("auth: invalid token")
)

// Claims полезная нагрузка токена
type Claims struct {
	UserID int64  `json:"user_id"`
	Role   string `json:"role"`
	jwtlib.RegisteredClaims
}

// PhotographerLookup находит профиль фотографа по пользователю
type PhotographerLookup interface {
	GetByUserID(ctx context.Context, userID int64) (*domain.Photographer, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Authenticator проверяет HS256 bearer-токены. Токены сервис не выпускает.
type Authenticator struct {
	secret        []byte
	photographers PhotographerLookup
	logger        Logger
}

// NewAuthenticator создает middleware аутентификации
func NewAuthenticator(secret string, photographers PhotographerLookup, logger Logger) *Authenticator {
	return &Authenticator{
		secret:        []byte(secret),
		photographers: photographers,
		logger:        logger,
	}
}

// Auth пропускает только запросы с валидным токеном, иначе 401
func (a *Authenticator) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor, err := a.authenticate(r)
		if err != nil {
			a.reject(w, r, err)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithActor(r.Context(), actor)))
	})
}

// OptionalAuth пропускает анонимные запросы без изменений.
// Переданный, но невалидный токен всё равно даёт 401.
func (a *Authenticator) OptionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor, err := a.authenticate(r)
		switch {
		case errors.Is(err, ErrMissingToken):
			next.ServeHTTP(w, r)
		case err != nil:
			a.reject(w, r, err)
		default:
			next.ServeHTTP(w, r.WithContext(WithActor(r.Context(), actor)))
		}
	})
}

func (a *Authenticator) reject(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, ErrMissingToken) || errors.Is(err, ErrInvalidToken) {
		a.logger.Warn("%s %s - Unauthorized: %v", r.Method, r.URL.Path, err)
		handlers.RespondUnauthorized(w)
		return
	}
	a.logger.Error("%s %s - Failed to authenticate: %v", r.Method, r.URL.Path, err)
	handlers.RespondInternalError(w)
}

func (a *Authenticator) authenticate(r *http.Request) (domain.Actor, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return domain.Actor{}, ErrMissingToken
	}

	token, found := strings.CutPrefix(header, "Bearer ")
	if !found || strings.TrimSpace(token) == "" {
		return domain.Actor{}, fmt.Errorf("%w: malformed authorization header", ErrInvalidToken)
	}

	claims, err := a.parse(strings.TrimSpace(token))
	if err != nil {
		return domain.Actor{}, err
	}

	role, err := domain.ParseRole(claims.Role)
	if err != nil {
		return domain.Actor{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	actor := domain.Actor{UserID: claims.UserID, Role: role}
	if role != domain.RolePhotographer {
		return actor, nil
	}

	// Пользователь с ролью photographer без профиля остаётся без PhotographerID
	p, err := a.photographers.GetByUserID(r.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, photographerRepo.ErrPhotographerNotFound) {
			a.logger.Warn("auth: photographer profile not found for user=%d", claims.UserID)
			return actor, nil
		}
		return domain.Actor{}, fmt.Errorf("resolve photographer profile: %w", err)
	}
	actor.PhotographerID = &p.ID

	return actor, nil
}

func (a *Authenticator) parse(raw string) (*Claims, error) {
	token, err := jwtlib.ParseWithClaims(raw, &Claims{}, func(t *jwtlib.Token) (any, error) {
		return a.secret, nil
	}, jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || claims.UserID <= 0 {
		return nil, fmt.Errorf("%w: bad claims", ErrInvalidToken)
	}
	return claims, nil
}
