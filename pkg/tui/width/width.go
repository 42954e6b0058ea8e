// ABOUTME: Terminal cell widths of text, segmented into grapheme clusters
// ABOUTME: LRU cache for non-ASCII widths; fast path for pure ASCII

package width

import (
	"container/list"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

const cacheSize = 512

type lruEntry struct {
	key   string
	value int
}

// cache is an O(1) LRU cache of string widths.
type cache struct {
	mu    sync.Mutex
	items map[string]*list.Element
	order *list.List
	size  int
}

func newCache(size int) *cache {
	return &cache{
		items: make(map[string]*list.Element, size),
		order: list.New(),
		size:  size,
	}
}

func (c *cache) get(key string) (int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	elem, ok := c.items[key]
	if !ok {
		return 0, false
	}
	c.order.MoveToFront(elem)
	return elem.Value.(lruEntry).value, true
}

func (c *cache) put(key string, value int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.items[key]; ok {
		return
	}
	if c.order.Len() >= c.size {
		if back := c.order.Back(); back != nil {
			c.order.Remove(back)
			delete(c.items, back.Value.(lruEntry).key)
		}
	}
	c.items[key] = c.order.PushFront(lruEntry{key: key, value: value})
}

var widthCache = newCache(cacheSize)

// String returns the number of terminal columns s occupies.
func String(s string) int {
	if isPlainASCII(s) {
		return len(s)
	}
	if w, ok := widthCache.get(s); ok {
		return w
	}
	w := 0
	Graphemes(s, func(_ string, cw int) bool {
		w += cw
		return true
	})
	widthCache.put(s, w)
	return w
}

// Graphemes calls fn for each grapheme cluster of s with its cell width,
// stopping early when fn returns false.
func Graphemes(s string, fn func(cluster string, cols int) bool) {
	state := -1
	for len(s) > 0 {
		cluster, rest, _, newState := uniseg.FirstGraphemeClusterInString(s, state)
		if !fn(cluster, Cluster(cluster)) {
			return
		}
		s = rest
		state = newState
	}
}

// Cluster returns the cell width of a single grapheme cluster: 0, 1 or 2.
func Cluster(cluster string) int {
	if cluster == "" {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(cluster)
	return runewidth.RuneWidth(r)
}

// Truncate cuts s to at most cols columns without splitting a cluster.
func Truncate(s string, cols int) string {
	if cols <= 0 {
		return ""
	}
	if String(s) <= cols {
		return s
	}
	var b strings.Builder
	used := 0
	Graphemes(s, func(cluster string, cw int) bool {
		if used+cw > cols {
			return false
		}
		b.WriteString(cluster)
		used += cw
		return true
	})
	return b.String()
}

// isPlainASCII reports whether s contains only printable ASCII.
func isPlainASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] > 0x7e {
			return false
		}
	}
	return true
}
