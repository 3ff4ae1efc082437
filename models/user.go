package models

import "time"

// User 账号；Google 登录的账号没有密码
type User struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement:false" json:"id"`
	Username  string    `gorm:"column:username;type:varchar(64);not null;uniqueIndex" json:"username"`
	Email     *string   `gorm:"column:email;type:varchar(255);uniqueIndex" json:"email"`
	Password  *string   `gorm:"column:password;type:varchar(255)" json:"-"`
	GoogleID  *string   `gorm:"column:google_id;type:varchar(64);uniqueIndex" json:"-"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
