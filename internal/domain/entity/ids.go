package entity

import (
	"fmt"
	"sync"
	"time"
)

// Prefijos de ID por tipo de entidad.
const (
	PrefixProduct      = "PROD"
	PrefixRegistration = "CAD"
	PrefixMovement     = "MOV"
	PrefixReturn       = "DEV"
)

var (
	idMu     sync.Mutex
	lastIDMs int64
)

// NewID genera un ID "<prefijo>-<ms epoch>". El contador avanza de forma
// monótona dentro del proceso: dos llamadas en el mismo milisegundo nunca
// producen el mismo sufijo.
func NewID(prefix string) string {
	idMu.Lock()
	defer idMu.Unlock()
	ms := time.Now().UnixMilli()
	if ms <= lastIDMs {
		ms = lastIDMs + 1
	}
	lastIDMs = ms
	return fmt.Sprintf("%s-%d", prefix, ms)
}
