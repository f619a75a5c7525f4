package service

import (
	"StuffKeeper/internal/identity"
	"StuffKeeper/internal/model/view"
	"StuffKeeper/internal/repo"
	"context"
	"errors"
	"time"

	"github.com/benbjohnson/clock"
	"gorm.io/gorm"
)

// ItemsPerPage: размер страницы и одновременно предел результатов поиска.
const ItemsPerPage = 6

// IdentityResolver определяет вызывающего по bearer-токену.
type IdentityResolver interface {
	Resolve(ctx context.Context, credential, operation string) (identity.Identity, error)
}

// Kind описывает, чем один ресурс отличается от другого: проверки, перевод моделей,
// владельца записи и поведение при чтении отсутствующей записи.
type Kind[R any, V any] struct {
	// Name подставляется в аудит: "updated <Name>", "deleted <Name>".
	Name string

	Check   func(in *V) error
	InputID func(in *V) string
	// OwnerID: кому принадлежит запись; изменять её может только он.
	OwnerID func(rec *R) string

	ToView      func(rec *R) *V
	NewRecord   func(in *V, now time.Time) *R
	ApplyUpdate func(in *V, rec *R, now time.Time)

	// OnCreate вызывается для ресурсов с владельцем: определяет пользователя и привязывает его к записи.
	// nil: запись сохраняется как есть.
	OnCreate func(ctx context.Context, rec *R, now time.Time) error

	// ReadMissing: ошибка при чтении отсутствующей записи; nil: вернуть пустой результат без ошибки.
	ReadMissing error
}

// Collection: список, поиск, создание, чтение, изменение и удаление записей одного ресурса.
type Collection[R any, V any] struct {
	kind  Kind[R, V]
	repo  repo.Repository[R]
	auth  IdentityResolver
	clock clock.Clock
}

func newCollection[R any, V any](kind Kind[R, V], r repo.Repository[R], auth IdentityResolver, clk clock.Clock) *Collection[R, V] {
	if clk == nil {
		clk = clock.New()
	}
	return &Collection[R, V]{kind: kind, repo: r, auth: auth, clock: clk}
}

// List возвращает страницу page. Страница вне диапазона (или <= 0) превращается в первую.
func (c *Collection[R, V]) List(ctx context.Context, page int) (view.Page[V], error) {
	if page <= 0 {
		page = 1
	}

	count, err := c.repo.Count(ctx)
	if err != nil {
		return view.Page[V]{}, err
	}
	totalPages := 1
	if count > 0 {
		totalPages = int((count-1)/ItemsPerPage) + 1
	}
	if count == 0 || page > totalPages {
		page = 1
	}

	records, err := c.repo.ListPage(ctx, ItemsPerPage*(page-1), ItemsPerPage)
	if err != nil {
		return view.Page[V]{}, err
	}
	return toPage(records, c.kind.ToView, page, count, totalPages), nil
}

// Search ищет term без учёта регистра. Результат либо помещается на одну страницу, либо ErrTooManyResults.
func (c *Collection[R, V]) Search(ctx context.Context, term string) (view.Page[V], error) {
	count, err := c.repo.CountMatching(ctx, term)
	if err != nil {
		return view.Page[V]{}, err
	}
	if count > ItemsPerPage {
		return view.Page[V]{}, ErrTooManyResults
	}

	records, err := c.repo.ListMatching(ctx, term)
	if err != nil {
		return view.Page[V]{}, err
	}
	return toPage(records, c.kind.ToView, 1, count, 1), nil
}

// Create проверяет и сохраняет новую запись.
func (c *Collection[R, V]) Create(ctx context.Context, in *V) (*V, error) {
	if err := c.kind.Check(in); err != nil {
		return nil, err
	}

	now := c.clock.Now()
	rec := c.kind.NewRecord(in, now)
	if c.kind.OnCreate != nil {
		if err := c.kind.OnCreate(ctx, rec, now); err != nil {
			return nil, err
		}
	}

	if err := c.repo.Create(ctx, rec); err != nil {
		return nil, err
	}
	return c.kind.ToView(rec), nil
}

// Read возвращает запись по id. Для отсутствующей записи: Kind.ReadMissing или (nil, nil).
func (c *Collection[R, V]) Read(ctx context.Context, id string) (*V, error) {
	rec, err := c.repo.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, c.kind.ReadMissing
	}
	if err != nil {
		return nil, err
	}
	return c.kind.ToView(rec), nil
}

// Update изменяет запись id. Изменять может только владелец.
func (c *Collection[R, V]) Update(ctx context.Context, id string, in *V) (*V, error) {
	if err := c.kind.Check(in); err != nil {
		return nil, err
	}
	if id != c.kind.InputID(in) {
		return nil, ErrCorruptedData
	}

	rec, err := c.owned(ctx, id, "updated "+c.kind.Name)
	if err != nil {
		return nil, err
	}

	c.kind.ApplyUpdate(in, rec, c.clock.Now())
	if err := c.repo.Save(ctx, rec); err != nil {
		return nil, err
	}
	return c.kind.ToView(rec), nil
}

// Delete удаляет запись id. Удалять может только владелец.
func (c *Collection[R, V]) Delete(ctx context.Context, id string) error {
	rec, err := c.owned(ctx, id, "deleted "+c.kind.Name)
	if err != nil {
		return err
	}
	return c.repo.Delete(ctx, rec)
}

// owned определяет вызывающего и возвращает запись id, только если он её владелец.
func (c *Collection[R, V]) owned(ctx context.Context, id, operation string) (*R, error) {
	who, err := c.resolve(ctx, operation)
	if err != nil {
		return nil, err
	}

	rec, err := c.repo.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCorruptedData
	}
	if err != nil {
		return nil, err
	}
	if c.kind.OwnerID(rec) != who.ID {
		return nil, ErrCorruptedData
	}
	return rec, nil
}

func (c *Collection[R, V]) resolve(ctx context.Context, operation string) (identity.Identity, error) {
	return resolveCaller(ctx, c.auth, operation)
}

func resolveCaller(ctx context.Context, auth IdentityResolver, operation string) (identity.Identity, error) {
	credential, ok := identity.CredentialFromContext(ctx)
	if !ok {
		return identity.Identity{}, &identity.ResolutionError{Err: identity.ErrNoCredential}
	}
	return auth.Resolve(ctx, credential, operation)
}
