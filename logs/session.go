package logs

import (
	"context"

	"github.com/google/uuid"
)

// Session identifies one scan of one source across log records and errors.
type Session string

type sessionKey struct{}

var SessionKey sessionKey

func SessionOf(ctx context.Context) (Session, bool) {
	session, ok := ctx.Value(SessionKey).(Session)
	return session, ok
}

type NewSession func(ctx context.Context, name string) (context.Context, Session)

func (Module) NewSession(
	logger Logger,
) NewSession {
	return func(ctx context.Context, name string) (context.Context, Session) {
		var args []any
		if parent, ok := SessionOf(ctx); ok {
			args = append(args, "parent", parent)
		}
		if name != "" {
			args = append(args, "name", name)
		}

		session := Session(uuid.NewString())
		ctx = context.WithValue(ctx, SessionKey, session)
		logger.DebugContext(ctx, "new session", args...)

		return ctx, session
	}
}
