package repo

import (
	"context"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository: контракт хранилища для записей одного типа.
// Отсутствующая запись возвращается как gorm.ErrRecordNotFound.
type Repository[R any] interface {
	// Count возвращает общее количество записей.
	Count(ctx context.Context) (int64, error)
	// ListPage возвращает окно записей, свежие изменения первыми.
	ListPage(ctx context.Context, offset, limit int) ([]R, error)
	// CountMatching считает записи, в которых term встречается без учёта регистра.
	CountMatching(ctx context.Context, term string) (int64, error)
	// ListMatching возвращает все записи, в которых встречается term.
	ListMatching(ctx context.Context, term string) ([]R, error)
	GetByID(ctx context.Context, id string) (*R, error)
	Create(ctx context.Context, rec *R) error
	Save(ctx context.Context, rec *R) error
	Delete(ctx context.Context, rec *R) error
}

// tableSpec описывает, чем таблицы отличаются друг от друга.
type tableSpec struct {
	idColumn      string
	orderBy       string
	searchColumns []string
	// ownerSearch: условие по владельцу (подзапрос), nil если владельца нет
	ownerSearch *ownerSearch
	preload     []string
}

type ownerSearch struct {
	foreignKey string
	table      string
	key        string
	columns    []string
}

type table[R any] struct {
	db   *gorm.DB
	spec tableSpec
}

func (t *table[R]) model(ctx context.Context) *gorm.DB {
	return t.db.WithContext(ctx).Model(new(R))
}

func (t *table[R]) withPreload(q *gorm.DB) *gorm.DB {
	for _, p := range t.spec.preload {
		q = q.Preload(p)
	}
	return q
}

func (t *table[R]) Count(ctx context.Context) (int64, error) {
	var n int64
	err := t.model(ctx).Count(&n).Error
	return n, err
}

func (t *table[R]) ListPage(ctx context.Context, offset, limit int) ([]R, error) {
	var res []R
	err := t.withPreload(t.model(ctx)).
		Order(t.spec.orderBy).
		Offset(offset).
		Limit(limit).
		Find(&res).Error
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (t *table[R]) CountMatching(ctx context.Context, term string) (int64, error) {
	var n int64
	err := t.matching(t.model(ctx), term).Count(&n).Error
	return n, err
}

func (t *table[R]) ListMatching(ctx context.Context, term string) ([]R, error) {
	var res []R
	err := t.matching(t.withPreload(t.model(ctx)), term).
		Order(t.spec.orderBy).
		Find(&res).Error
	if err != nil {
		return nil, err
	}
	return res, nil
}

// matching добавляет OR-условие LOWER(col) LIKE %term% по всем колонкам поиска.
func (t *table[R]) matching(q *gorm.DB, term string) *gorm.DB {
	pattern := "%" + escapeLike(strings.ToLower(term)) + "%"

	conds := make([]string, 0, len(t.spec.searchColumns)+1)
	args := make([]any, 0, len(t.spec.searchColumns)+2)
	for _, c := range t.spec.searchColumns {
		conds = append(conds, likeExpr(c))
		args = append(args, pattern)
	}
	if o := t.spec.ownerSearch; o != nil {
		ownerConds := make([]string, 0, len(o.columns))
		for _, c := range o.columns {
			ownerConds = append(ownerConds, likeExpr(c))
			args = append(args, pattern)
		}
		conds = append(conds, o.foreignKey+" IN (SELECT "+o.key+" FROM "+o.table+" WHERE "+strings.Join(ownerConds, " OR ")+")")
	}
	return q.Where(strings.Join(conds, " OR "), args...)
}

func likeExpr(column string) string {
	return "LOWER(" + column + `) LIKE ? ESCAPE '\'`
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func (t *table[R]) GetByID(ctx context.Context, id string) (*R, error) {
	var rec R
	err := t.withPreload(t.db.WithContext(ctx)).
		Where(t.spec.idColumn+" = ?", id).
		First(&rec).Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (t *table[R]) Create(ctx context.Context, rec *R) error {
	return t.db.WithContext(ctx).Omit(clause.Associations).Create(rec).Error
}

func (t *table[R]) Save(ctx context.Context, rec *R) error {
	return t.db.WithContext(ctx).Omit(clause.Associations).Save(rec).Error
}

func (t *table[R]) Delete(ctx context.Context, rec *R) error {
	return t.db.WithContext(ctx).Delete(rec).Error
}
