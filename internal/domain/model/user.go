package model

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID             int    `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	Username       string `json:"username" gorm:"column:username;uniqueIndex;not null"`
	HashedPassword string `json:"-" gorm:"column:password;not null"`
	Role           string `json:"role" gorm:"column:role;not null"`
}

func (User) TableName() string {
	return "usuarios"
}
