package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/kamstrup/intmap"
)

// cueCache renders each cue once and hands out the same buffer afterwards.
type cueCache struct {
	mu    sync.Mutex
	store *intmap.Map[Cue, *beep.Buffer]
}

func newCueCache() *cueCache {
	return &cueCache{store: intmap.New[Cue, *beep.Buffer](int(cueCount))}
}

func (c *cueCache) get(cue Cue) (*beep.Buffer, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if buf, ok := c.store.Get(cue); ok {
		return buf, nil
	}

	buf, err := render(cue)
	if err != nil {
		return nil, err
	}
	c.store.Put(cue, buf)
	return buf, nil
}

func (c *cueCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.store.Len()
}

// preload renders the cues heard on nearly every piece.
func (c *cueCache) preload() error {
	for _, cue := range []Cue{CueLock, CueRotate, CueSingle} {
		if _, err := c.get(cue); err != nil {
			return err
		}
	}
	return nil
}
