package services

import (
	"encoding/base64"
	"errors"
	"net/http"
	"strings"

	"golang.org/x/crypto/scrypt"
)

// fallbackAddress 本地运行时没有转发头，统一落到这个哨兵地址
const fallbackAddress = "0.0.0.0"

// scrypt 参数固定，改动会让既有访客标识全部失效
const (
	scryptN      = 1 << 15
	scryptR      = 8
	scryptP      = 1
	scryptKeyLen = 32
)

// VisitorIdentifier 把客户端地址变成稳定且不可逆的访客标识。
// 同一地址加同一份盐永远得到同一个标识，点赞记录才能跨请求对上；
// 所以这里用固定配置盐的 scrypt，而不是每次自带随机盐的 bcrypt
type VisitorIdentifier struct {
	salt []byte
}

func NewVisitorIdentifier(salt string) (*VisitorIdentifier, error) {
	if salt == "" {
		return nil, errors.New("visitor id salt is empty")
	}
	return &VisitorIdentifier{salt: []byte(salt)}, nil
}

// FromHeaders 从请求头取客户端地址并派生标识
func (v *VisitorIdentifier) FromHeaders(headers http.Header) (string, error) {
	return v.Derive(ClientAddress(headers))
}

// Derive 对地址做加盐慢哈希，输出 base64，不可逆推回地址
func (v *VisitorIdentifier) Derive(address string) (string, error) {
	key, err := scrypt.Key([]byte(address), v.salt, scryptN, scryptR, scryptP, scryptKeyLen)
	if err != nil {
		return "", err
	}
	return base64.RawStdEncoding.EncodeToString(key), nil
}

// ClientAddress 取 X-Forwarded-For 的第一段，缺失时退回哨兵地址
func ClientAddress(headers http.Header) string {
	forwarded := headers.Get("X-Forwarded-For")
	if forwarded == "" {
		return fallbackAddress
	}
	return strings.TrimSpace(strings.SplitN(forwarded, ",", 2)[0])
}
