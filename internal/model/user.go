package model

// User: серверная запись пользователя. ID выдаётся провайдером идентичности (sub), сервер его не генерирует.
type User struct {
	ID         string `gorm:"column:usr_id;primaryKey"`
	Name       string `gorm:"column:usr_name"`
	GivenName  string `gorm:"column:usr_given_name"`
	FamilyName string `gorm:"column:usr_family_name"`
	Email      string `gorm:"column:usr_email"`

	// Метки времени храним строками в сортируемом формате (см. view.TimeLayout)
	CreatedAt string `gorm:"column:usr_created_at"`
	UpdatedAt string `gorm:"column:usr_updated_at"`

	Stuffs []Stuff `gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (User) TableName() string { return "t_user" }
