package evts

import "github.com/google/uuid"

// Key is an opaque access token. Keys are compared by pointer identity and
// can only be obtained from Lock, so a freshly issued key is never equal to
// any other value, including nil. The embedded ID is a display label only;
// knowing it does not let a caller forge the key.
type Key struct {
	id string
}

func newKey() *Key {
	return &Key{id: uuid.New().String()}
}

// String returns a short display label for logs and error messages.
func (k *Key) String() string {
	if k == nil {
		return "key(none)"
	}
	return "key(" + k.id[:8] + ")"
}
