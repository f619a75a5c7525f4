package model

// Stuff: запись пользователя (datum). Владелец задаётся внешним ключом UserID.
type Stuff struct {
	ID     string `gorm:"column:stf_id;primaryKey"`
	UserID string `gorm:"column:stf_user_id;not null;index"` // ссылка на t_user.usr_id

	// Связи
	User *User `gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`

	Label       string `gorm:"column:stf_label;not null"`
	Description string `gorm:"column:stf_description"`
	OtherInfo   string `gorm:"column:stf_other_info"`

	CreatedAt string `gorm:"column:stf_created_at"`
	UpdatedAt string `gorm:"column:stf_updated_at"`
}

func (Stuff) TableName() string { return "t_stuff" }
