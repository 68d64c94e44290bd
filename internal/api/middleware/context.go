package middleware

import (
	"context"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
)

type contextKey string

const actorKey contextKey = "actor"

// WithActor кладёт аутентифицированного пользователя в контекст
func WithActor(ctx context.Context, actor domain.Actor) context.Context {
	return context.WithValue(ctx, actorKey, actor)
}

// GetActor достаёт пользователя из контекста; ok=false для анонимного запроса
func GetActor(ctx context.Context) (domain.Actor, bool) {
	actor, ok := ctx.Value(actorKey).(domain.Actor)
	return actor, ok
}
