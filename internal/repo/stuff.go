package repo

import (
	"StuffKeeper/internal/model"

	"gorm.io/gorm"
)

// NewStuffRepository создаёт репозиторий записей (t_stuff). Владелец всегда подгружается.
func NewStuffRepository(db *gorm.DB) Repository[model.Stuff] {
	return &table[model.Stuff]{db: db, spec: tableSpec{
		idColumn:      "stf_id",
		orderBy:       "stf_updated_at DESC, stf_created_at DESC",
		searchColumns: []string{"stf_label", "stf_description", "stf_other_info"},
		ownerSearch: &ownerSearch{
			foreignKey: "stf_user_id",
			table:      "t_user",
			key:        "usr_id",
			columns:    []string{"usr_given_name", "usr_family_name"},
		},
		preload: []string{"User"},
	}}
}
