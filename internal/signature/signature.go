package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
)

// Sign подписывает тело запроса общим секретом:
// base64 от HMAC-SHA256 по сырым байтам
func Sign(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// Verify проверяет подпись тела запроса.
// Считать подпись нужно по сырым байтам до разбора JSON:
// перекодирование изменило бы байты и сломало бы проверку.
// Пустой секрет или пустая подпись - всегда отказ
func Verify(secret string, body []byte, provided string) bool {
	if secret == "" || provided == "" {
		return false
	}

	expected := Sign(secret, body)

	// сравнение за постоянное время, несовпадение длин - просто отказ
	return hmac.Equal([]byte(expected), []byte(provided))
}
