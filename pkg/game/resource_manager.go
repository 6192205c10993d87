package game

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// defaultFontPaths lists the candidate CJK font files probed in order by
// DefaultFace. The game ships no font binaries, so it borrows one from the
// host system; the first readable and parseable file wins.
var defaultFontPaths = []string{
	"assets/fonts/SimHei.ttf",
	"/usr/share/fonts/truetype/wqy/wqy-microhei.ttc",
	"/usr/share/fonts/opentype/noto/NotoSansCJK-Regular.ttc",
	"/usr/share/fonts/noto-cjk/NotoSansCJK-Regular.ttc",
	"/System/Library/Fonts/PingFang.ttc",
	"/System/Library/Fonts/STHeiti Light.ttc",
	"C:\\Windows\\Fonts\\msyh.ttc",
	"C:\\Windows\\Fonts\\simhei.ttf",
}

// ResourceManager is responsible for centralized management of font resources.
// It provides loading and caching for text faces, ensuring each face is built
// only once and reused throughout the game.
//
// Everything else the game draws is vector-generated at runtime, so fonts are
// the only on-disk resource. When no usable font file is found the manager
// degrades to a built-in bitmap face (ASCII coverage only) with a warning;
// rendering never fails, CJK labels just show as boxes on such systems.
//
// Thread Safety Note:
// This implementation is NOT thread-safe. The internal caches use standard Go
// maps. For the current single-threaded game loop, no synchronization is needed.
type ResourceManager struct {
	fontFaceCache map[string]text.Face // Cache for text faces: "path:size" -> Face

	// fontSource is the resolved default font, nil when discovery failed.
	fontSource     *text.GoTextFaceSource
	sourceResolved bool

	// explicitPath is probed before the built-in candidates (from --font).
	explicitPath string
}

// NewResourceManager creates a new ResourceManager with empty caches.
// No file I/O happens until the first face is requested.
func NewResourceManager() *ResourceManager {
	return &ResourceManager{
		fontFaceCache: make(map[string]text.Face),
	}
}

// SetFontPath overrides font discovery with an explicit file path.
// Must be called before the first DefaultFace call to take effect.
func (rm *ResourceManager) SetFontPath(path string) {
	rm.explicitPath = path
}

// LoadFont loads a TrueType/OpenType font from the specified path and creates
// a text face with the given size. The face is cached under "path:size".
// Supported formats: .ttf, .otf, .ttc (first face of a collection).
func (rm *ResourceManager) LoadFont(path string, size float64) (text.Face, error) {
	cacheKey := fmt.Sprintf("%s:%.1f", path, size)
	if cachedFace, exists := rm.fontFaceCache[cacheKey]; exists {
		return cachedFace, nil
	}

	source, err := loadFontSource(path)
	if err != nil {
		return nil, err
	}

	face := &text.GoTextFace{
		Source:    source,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	rm.fontFaceCache[cacheKey] = face
	return face, nil
}

// DefaultFace returns a text face at the given size, resolving the default
// font on first use. Never returns nil: if no candidate font file is usable
// the built-in bitmap face is returned instead (its size is fixed).
func (rm *ResourceManager) DefaultFace(size float64) text.Face {
	cacheKey := fmt.Sprintf("default:%.1f", size)
	if cachedFace, exists := rm.fontFaceCache[cacheKey]; exists {
		return cachedFace
	}

	rm.resolveSource()

	var face text.Face
	if rm.fontSource != nil {
		face = &text.GoTextFace{
			Source:    rm.fontSource,
			Size:      size,
			Direction: text.DirectionLeftToRight,
		}
	} else {
		face = text.NewGoXFace(basicfont.Face7x13)
	}

	rm.fontFaceCache[cacheKey] = face
	return face
}

// HasCJKFont reports whether a real font file was resolved (as opposed to the
// ASCII-only fallback face).
func (rm *ResourceManager) HasCJKFont() bool {
	rm.resolveSource()
	return rm.fontSource != nil
}

// resolveSource probes the candidate font files once and keeps the first hit.
func (rm *ResourceManager) resolveSource() {
	if rm.sourceResolved {
		return
	}
	rm.sourceResolved = true

	candidates := make([]string, 0, len(defaultFontPaths)+2)
	if rm.explicitPath != "" {
		candidates = append(candidates, rm.explicitPath)
	}
	if envPath := os.Getenv("LUCKYPICK_FONT"); envPath != "" {
		candidates = append(candidates, envPath)
	}
	candidates = append(candidates, defaultFontPaths...)

	for _, path := range candidates {
		source, err := loadFontSource(path)
		if err != nil {
			continue
		}
		rm.fontSource = source
		log.Printf("[ResourceManager] Using font: %s", path)
		return
	}

	log.Printf("[ResourceManager] WARNING: no usable font found, falling back to built-in bitmap face (ASCII only)")
}

// loadFontSource reads and parses a single font file.
func loadFontSource(path string) (*text.GoTextFaceSource, error) {
	fontData, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read font file %s: %w", path, err)
	}

	// Collection files hold several faces; the first one is good enough here.
	if strings.HasSuffix(strings.ToLower(path), ".ttc") {
		sources, err := text.NewGoTextFaceSourcesFromCollection(bytes.NewReader(fontData))
		if err != nil {
			return nil, fmt.Errorf("failed to parse font collection %s: %w", path, err)
		}
		if len(sources) == 0 {
			return nil, fmt.Errorf("font collection %s contains no faces", path)
		}
		return sources[0], nil
	}

	source, err := text.NewGoTextFaceSource(bytes.NewReader(fontData))
	if err != nil {
		return nil, fmt.Errorf("failed to create font source for %s: %w", path, err)
	}
	return source, nil
}
