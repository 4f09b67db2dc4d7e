package utils

import (
	"crypto/sha512"
	"crypto/subtle"

	"golang.org/x/crypto/pbkdf2"
)

const (
	passwordHashIterations = 65536
	passwordHashLength     = 64
)

// HashPassword パスワードをハッシュ化します
func HashPassword(pass string, salt []byte) []byte {
	return pbkdf2.Key([]byte(pass), salt, passwordHashIterations, passwordHashLength, sha512.New)
}

// ComparePassword ハッシュ化済みパスワードと平文パスワードを定数時間で比較します
func ComparePassword(hashed []byte, pass string, salt []byte) bool {
	return subtle.ConstantTimeCompare(hashed, HashPassword(pass, salt)) == 1
}
