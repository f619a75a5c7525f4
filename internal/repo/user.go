package repo

import (
	"StuffKeeper/internal/model"

	"gorm.io/gorm"
)

// NewUserRepository создаёт репозиторий пользователей (t_user).
func NewUserRepository(db *gorm.DB) Repository[model.User] {
	return &table[model.User]{db: db, spec: tableSpec{
		idColumn:      "usr_id",
		orderBy:       "usr_updated_at DESC, usr_created_at DESC",
		searchColumns: []string{"usr_given_name", "usr_family_name"},
	}}
}
