package model

import (
	"encoding/hex"
	"errors"
	"time"

	"github.com/traPtitech/traPin/utils"
)

var (
	// ErrUserWrongIDOrPassword メールアドレスまたはパスワードが違います
	ErrUserWrongIDOrPassword = errors.New("wrong email or password")
)

// DefaultGroupName サインアップ時に作成されるグループの名前
const DefaultGroupName = "기본그룹"

// User ユーザー構造体
type User struct {
	ID        int       `gorm:"primaryKey;autoIncrement" json:"userId"`
	Email     string    `gorm:"type:varchar(255);not null;unique" json:"email"`
	Nickname  string    `gorm:"type:varchar(32);not null" json:"nickname"`
	Password  string    `gorm:"type:char(128);not null" json:"-"`
	Salt      string    `gorm:"type:char(128);not null" json:"-"`
	CreatedAt time.Time `gorm:"precision:6" json:"createdAt"`
	UpdatedAt time.Time `gorm:"precision:6" json:"updatedAt"`
}

// TableName User構造体のテーブル名
func (*User) TableName() string {
	return "users"
}

// Authenticate パスワードを検証します
//
// 一致しない場合はErrUserWrongIDOrPasswordを返します
func (user *User) Authenticate(password string) error {
	if len(user.Password) == 0 || len(user.Salt) == 0 {
		return ErrUserWrongIDOrPassword
	}
	storedPassword, err := hex.DecodeString(user.Password)
	if err != nil {
		return err
	}
	salt, err := hex.DecodeString(user.Salt)
	if err != nil {
		return err
	}
	if !utils.ComparePassword(storedPassword, password, salt) {
		return ErrUserWrongIDOrPassword
	}
	return nil
}

// SetPassword ソルトを生成してパスワードハッシュを設定します
func (user *User) SetPassword(password string, salt []byte) {
	user.Salt = hex.EncodeToString(salt)
	user.Password = hex.EncodeToString(utils.HashPassword(password, salt))
}
