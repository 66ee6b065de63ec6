package flexy

import (
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// TagPrefix starts every class identifier handed out by the allocators.
const TagPrefix = "css-"

// TagAllocator hands out class identifiers that scope injected style rules to
// one mounted instance.
type TagAllocator interface {
	Allocate() string
}

type tagAllocator struct {
	mu     sync.Mutex
	issued map[string]struct{}
	next   func() string
}

// Allocate never returns the same identifier twice for a given allocator.
func (t *tagAllocator) Allocate() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	for {
		tag := TagPrefix + t.next()
		if _, ok := t.issued[tag]; ok {
			continue
		}
		t.issued[tag] = struct{}{}
		return tag
	}
}

// NewTagAllocator returns an allocator of random, seven character identifiers.
func NewTagAllocator() TagAllocator {
	return &tagAllocator{
		issued: make(map[string]struct{}),
		next: func() string {
			return strings.ReplaceAll(uuid.NewString(), "-", "")[:7]
		},
	}
}

// SequentialTags returns a deterministic allocator: css-<prefix>1, css-<prefix>2...
// It is meant for reproducible renders.
func SequentialTags(prefix string) TagAllocator {
	var n int
	return &tagAllocator{
		issued: make(map[string]struct{}),
		next: func() string {
			n++
			return prefix + strconv.Itoa(n)
		},
	}
}

// DefaultTags is used by containers created without WithTags.
var DefaultTags = NewTagAllocator()
