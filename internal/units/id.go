// ABOUTME: Identifier generation for all persisted rows.
// ABOUTME: RFC4122 v4 UUIDs with a pseudo-random fallback source.
package units

import (
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
)

// fallbackSource feeds uuid.NewRandomFromReader when crypto/rand fails.
// math/rand output still gets the v4 version and variant bits applied,
// which is acceptable for non-security identifiers.
var fallbackSource = struct {
	sync.Mutex
	r *rand.Rand
}{r: rand.New(rand.NewSource(time.Now().UnixNano()))}

// NewID returns a new v4 UUID string.
func NewID() string {
	id, err := uuid.NewRandom()
	if err == nil {
		return id.String()
	}

	fallbackSource.Lock()
	defer fallbackSource.Unlock()
	id, err = uuid.NewRandomFromReader(fallbackSource.r)
	if err != nil {
		// math/rand.Read cannot fail; this is unreachable.
		panic(err)
	}
	return id.String()
}
