package service

import (
	"StuffKeeper/internal/model"
	"StuffKeeper/internal/model/view"
	"StuffKeeper/internal/repo"

	"github.com/benbjohnson/clock"
)

// UserService: справочник пользователей. Пользователь владеет только собой.
type UserService = Collection[model.User, view.User]

// NewUserService создаёт сервис пользователей. Чтение отсутствующего пользователя не ошибка.
func NewUserService(users repo.Repository[model.User], auth IdentityResolver, clk clock.Clock) *UserService {
	return newCollection(Kind[model.User, view.User]{
		Name:        "user",
		Check:       CheckUser,
		InputID:     func(in *view.User) string { return in.ID },
		OwnerID:     func(rec *model.User) string { return rec.ID },
		ToView:      userToView,
		NewRecord:   newUserRecord,
		ApplyUpdate: applyUserUpdate,
	}, users, auth, clk)
}
