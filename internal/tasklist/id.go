package tasklist

import (
	"math/rand/v2"
	"strconv"
	"strings"
	"time"
)

const (
	tokenLen = 9
	// tokenSpace is 36^tokenLen, the number of distinct tokens.
	tokenSpace = 101559956668416
)

// newID combines the creation time with a short random base-36 token.
// Collisions are possible in principle and are not checked for.
func newID(now time.Time, r *rand.Rand) string {
	var n uint64
	if r != nil {
		n = r.Uint64N(tokenSpace)
	} else {
		n = rand.Uint64N(tokenSpace)
	}
	token := strconv.FormatUint(n, 36)
	if len(token) < tokenLen {
		token = strings.Repeat("0", tokenLen-len(token)) + token
	}
	return strconv.FormatInt(now.UnixMilli(), 10) + "-" + token
}
