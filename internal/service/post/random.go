package post

import (
	"io"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Random is the source of every non-deterministic choice made while
// synthesizing posts. *rand.Rand satisfies it. Implementations need not be
// safe for concurrent use.
type Random interface {
	Intn(n int) int
	Int63n(n int64) int64
	io.Reader
}

// Clock returns the current time
type Clock func() time.Time

// NewRandom returns a seeded source. A zero seed seeds from the clock.
func NewRandom(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

func pick(r Random, options []string) string {
	if len(options) == 0 {
		return ""
	}
	return options[r.Intn(len(options))]
}

// newPostID builds "post_<unix-ms>_<9 random hex chars>"
func newPostID(r Random, now time.Time) (string, error) {
	u, err := uuid.NewRandomFromReader(r)
	if err != nil {
		return "", err
	}
	suffix := strings.ReplaceAll(u.String(), "-", "")[:9]
	return "post_" + strconv.FormatInt(now.UnixMilli(), 10) + "_" + suffix, nil
}
