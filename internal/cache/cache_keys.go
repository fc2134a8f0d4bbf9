package cache

import (
	"crypto/md5"
	"fmt"
	"strings"
	"time"
)

const (
	SearchCacheTTL = 5 * time.Minute
)

// SearchKey builds the cache key for a free-text query. Queries are normalized
// and hashed so arbitrary user text never lands in a key verbatim.
func SearchKey(query string) string {
	normalized := strings.ToLower(strings.TrimSpace(query))
	sum := md5.Sum([]byte(normalized))
	return fmt.Sprintf("search:q:%x", sum)
}
