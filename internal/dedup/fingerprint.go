package dedup

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Fingerprint строит детерминированный ключ "одной и той же попытки отправки":
// координаты, округленные до 4 знаков, минутная корзина времени и nonce клиента.
// Чистая функция без побочных эффектов.
func Fingerprint(lat, lon float64, nonce uuid.UUID, at time.Time) string {
	bucket := at.Unix() / 60
	return fmt.Sprintf("%.4f:%.4f:%d:%s", lat, lon, bucket, nonce)
}
