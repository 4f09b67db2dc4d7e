package random

import (
	crand "crypto/rand"
	"io"
	"math/rand/v2"
)

const alphaNumericLetters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ1234567890"

// AlphaNumeric 指定した文字数のランダム英数字文字列を生成します
// この関数はmath/randが生成する擬似乱数を使用します
func AlphaNumeric(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = alphaNumericLetters[rand.IntN(len(alphaNumericLetters))]
	}
	return string(b)
}

// SecureAlphaNumeric 指定した文字数のランダム英数字文字列を生成します
// この関数はcrypto/randが生成する暗号学的に安全な乱数を使用します
func SecureAlphaNumeric(n int) string {
	b := make([]byte, n)
	buf := make([]byte, 1)
	for i := 0; i < n; {
		if _, err := crand.Read(buf); err != nil {
			panic(err)
		}
		// 62の倍数未満のみ採用して偏りを無くす
		if v := int(buf[0]); v < 248 {
			b[i] = alphaNumericLetters[v%len(alphaNumericLetters)]
			i++
		}
	}
	return string(b)
}

// Salt 64bytesソルトを生成します
func Salt() []byte {
	salt := make([]byte, 64)
	_, _ = io.ReadFull(crand.Reader, salt)
	return salt
}
