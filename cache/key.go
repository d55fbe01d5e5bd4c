package cache

import (
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// Key derives the cache key for an extraction request. The content-type
// flag is folded into the hash so the same bytes submitted as HTML and as
// plain text do not collide.
func Key(content string, isHTML bool) string {
	d := xxhash.New()
	if isHTML {
		_, _ = d.Write([]byte{1})
	} else {
		_, _ = d.Write([]byte{0})
	}
	_, _ = d.WriteString(content)
	return strconv.FormatUint(d.Sum64(), 16)
}
