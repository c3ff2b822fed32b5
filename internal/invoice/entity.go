// AngelaMos | 2026
// entity.go

package invoice

import (
	"github.com/carterperez-dev/moments-matrimony/internal/core"
)

const OrderGranted = "granted"

const (
	fieldEmail = "email"
	fieldOrder = "order"
)

// isGranted reports whether inv carries the granted order marker. Any other
// value, of any type, is not granted.
func isGranted(inv core.Document) bool {
	order, ok := inv[fieldOrder].(string)
	return ok && order == OrderGranted
}
