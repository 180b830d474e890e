package badger

import (
	"fmt"

	"github.com/poiesic/laureate/core"
)

// Key prefixes for different data types
const (
	publicationPrefix = "pubrec"
)

// makePublicationKey generates a key for a publication by ID.
func makePublicationKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%s", publicationPrefix, id))
}
