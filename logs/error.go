package logs

import (
	"context"
	"errors"
	"fmt"
)

func WrapSession(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	session, ok := SessionOf(ctx)
	if !ok {
		return err
	}
	return errors.Join(err, fmt.Errorf("session: %s", session))
}
