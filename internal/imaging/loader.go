package imaging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // Register WebP format decoder

	"github.com/ironsheep/led-locator/internal/detection"
)

// FrameCache provides thread-safe caching of decoded frames to avoid
// redundant disk reads.
//
// Frames are keyed by the exact path string passed to Load. Cached frames
// remain in memory until removed via Evict or Clear.
//
// # Example Usage
//
//	cache := imaging.NewFrameCache()
//	frame, err := cache.Load("frames/base.png")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	baseline, err := detection.BuildBaseline(frame)
type FrameCache struct {
	mu     sync.RWMutex
	frames map[string]*detection.Frame
}

// NewFrameCache creates and initializes a new empty frame cache.
func NewFrameCache() *FrameCache {
	return &FrameCache{
		frames: make(map[string]*detection.Frame),
	}
}

// Load retrieves a frame from the cache or decodes it from disk.
//
// Returns:
//   - *detection.Frame: 4-channel RGBA frame. Callers must not modify Pix.
//   - error: Non-nil if the file cannot be opened or decoded.
func (c *FrameCache) Load(path string) (*detection.Frame, error) {
	c.mu.RLock()
	if f, ok := c.frames[path]; ok {
		c.mu.RUnlock()
		return f, nil
	}
	c.mu.RUnlock()

	f, err := LoadFrame(path)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.frames[path] = f
	c.mu.Unlock()

	return f, nil
}

// Clear removes all frames from the cache.
func (c *FrameCache) Clear() {
	c.mu.Lock()
	c.frames = make(map[string]*detection.Frame)
	c.mu.Unlock()
}

// Evict removes a specific frame from the cache by its path.
//
// If the path is not in the cache, this method does nothing.
func (c *FrameCache) Evict(path string) {
	c.mu.Lock()
	delete(c.frames, path)
	c.mu.Unlock()
}

// Len returns the number of cached frames.
func (c *FrameCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.frames)
}

// LoadFrame decodes an image file into a 4-channel RGBA frame without caching.
//
// EXIF orientation tags are honoured so that pixel coordinates match what the
// camera operator saw.
func LoadFrame(path string) (*detection.Frame, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	// Clone always returns a tightly packed NRGBA with its origin at (0,0).
	nrgba := imaging.Clone(img)
	b := nrgba.Bounds()
	f, err := detection.NewFrame(b.Dx(), b.Dy(), 4, nrgba.Pix)
	if err != nil {
		return nil, fmt.Errorf("invalid image %s: %w", path, err)
	}
	return f, nil
}

// ListFrames returns the capture files in dir in lexicographic order.
//
// Directories, hidden files (leading '.') and the file named baseName are
// skipped. The returned paths are joined with dir.
func ListFrames(dir, baseName string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read frames directory: %w", err)
	}

	// os.ReadDir sorts entries by filename.
	paths := make([]string, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || name == baseName || strings.HasPrefix(name, ".") {
			continue
		}
		paths = append(paths, filepath.Join(dir, name))
	}
	return paths, nil
}
