package utils

import (
	"crypto/rand"
	"encoding/hex"
)

// ShareTokenBytes 分享链接的随机字节数
const ShareTokenBytes = 16

// GenerateShareToken 生成 32 位十六进制的分享令牌
func GenerateShareToken() (string, error) {
	b := make([]byte, ShareTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
