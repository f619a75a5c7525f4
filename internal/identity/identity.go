// Package identity определяет, кто вызывает API, по предъявленному bearer-токену.
package identity

import (
	"context"
	"errors"
	"fmt"
)

// Identity: вызывающий пользователь, извлечённый из токена.
type Identity struct {
	ID         string `json:"sub"`
	Name       string `json:"name"`
	GivenName  string `json:"given_name"`
	FamilyName string `json:"family_name"`
	Email      string `json:"email"`
}

// Source извлекает Identity из токена. Реализации взаимозаменяемы и выбираются конфигурацией.
type Source interface {
	Identify(ctx context.Context, credential string) (Identity, error)
}

// ErrNoCredential: в контексте запроса нет bearer-токена.
var ErrNoCredential = errors.New("no bearer credential")

// ResolutionError: не удалось определить пользователя (токен не декодируется или upstream вернул ошибку).
type ResolutionError struct {
	Err error
}

func (e *ResolutionError) Error() string {
	return e.Err.Error()
}

func (e *ResolutionError) Unwrap() error { return e.Err }

func resolutionErrorf(format string, args ...any) *ResolutionError {
	return &ResolutionError{Err: fmt.Errorf(format, args...)}
}

type credentialKey struct{}

// WithCredential кладёт bearer-токен в контекст запроса.
func WithCredential(ctx context.Context, credential string) context.Context {
	return context.WithValue(ctx, credentialKey{}, credential)
}

// CredentialFromContext возвращает bearer-токен, если он был положен middleware.
func CredentialFromContext(ctx context.Context) (string, bool) {
	c, ok := ctx.Value(credentialKey{}).(string)
	return c, ok && c != ""
}
