package service

import (
	"StuffKeeper/internal/identity"
	"StuffKeeper/internal/model"
	"StuffKeeper/internal/model/view"
	"StuffKeeper/internal/repo"
	"context"
	"errors"
	"time"

	"github.com/benbjohnson/clock"
	"gorm.io/gorm"
)

// StuffService: записи пользователей. Создатель записи становится её владельцем.
type StuffService = Collection[model.Stuff, view.Datum]

// NewStuffService создаёт сервис записей. users нужен, чтобы завести владельца при первой записи.
func NewStuffService(stuffs repo.Repository[model.Stuff], users repo.Repository[model.User], auth IdentityResolver, clk clock.Clock) *StuffService {
	o := &owners{users: users, auth: auth}
	return newCollection(Kind[model.Stuff, view.Datum]{
		Name:        "datum",
		Check:       CheckDatum,
		InputID:     func(in *view.Datum) string { return in.ID },
		OwnerID:     func(rec *model.Stuff) string { return rec.UserID },
		ToView:      stuffToView,
		NewRecord:   newStuffRecord,
		ApplyUpdate: applyStuffUpdate,
		OnCreate:    o.attach,
		ReadMissing: ErrStuffNotFound,
	}, stuffs, auth, clk)
}

type owners struct {
	users repo.Repository[model.User]
	auth  IdentityResolver
}

// attach делает вызывающего владельцем записи. Если пользователя ещё нет в t_user, он создаётся.
// Создание пользователя и записи: две отдельные операции: при гонке двух первых записей
// одного пользователя вторая получит ошибку уникальности.
func (o *owners) attach(ctx context.Context, rec *model.Stuff, now time.Time) error {
	who, err := resolveCaller(ctx, o.auth, "created datum")
	if err != nil {
		return err
	}

	owner, err := o.users.GetByID(ctx, who.ID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		owner = provisionUser(who, now)
		if err := o.users.Create(ctx, owner); err != nil {
			return err
		}
	} else if err != nil {
		return err
	}

	rec.UserID = who.ID
	rec.User = owner
	return nil
}

func provisionUser(who identity.Identity, now time.Time) *model.User {
	name := who.Name
	if name == "" && (who.GivenName != "" || who.FamilyName != "") {
		name = displayName(who.GivenName, who.FamilyName)
	}
	return &model.User{
		ID:         who.ID,
		Name:       name,
		GivenName:  who.GivenName,
		FamilyName: who.FamilyName,
		Email:      who.Email,
		CreatedAt:  formatTime(now),
	}
}
