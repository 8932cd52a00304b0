package models

// User - учетная запись маркетплейса. Хранит только идентичность:
// выпуск токенов и пароли живут за пределами этого сервиса.
type User struct {
	BaseModel
	Name  string `gorm:"not null" json:"name"`
	Email string `gorm:"uniqueIndex;not null" json:"email"`
}
