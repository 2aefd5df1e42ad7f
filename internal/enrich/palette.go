package enrich

import (
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"sort"

	"github.com/rs/zerolog/log"
)

// Palette is the dominant-color summary for an image clip.
type Palette struct {
	Path      string   `json:"path"`
	Colors    []string `json:"colors"`
	Available bool     `json:"available"`
}

const (
	paletteSize = 5
	// bucketShift quantizes each channel to 16 levels so near-identical
	// shades collapse into one bucket.
	bucketShift = 4
)

// ExtractPalette decodes an on-disk image and returns its dominant colors
// as #rrggbb strings, most frequent first, memoized per path.
func (e *Enricher) ExtractPalette(ctx context.Context, imagePath string) Palette {
	v := e.memo.do(keyFrom("palette", imagePath), func() any {
		colors, err := dominantColors(imagePath)
		if err != nil {
			log.Warn().Err(err).Str("path", imagePath).Msg("palette extraction failed")
			return Palette{Path: imagePath}
		}
		return Palette{Path: imagePath, Colors: colors, Available: true}
	})
	return v.(Palette)
}

func dominantColors(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	type bucket struct {
		key   uint32
		count int
		r, g, b uint64
	}
	counts := make(map[uint32]*bucket)
	bounds := img.Bounds()
	// Sample a grid rather than every pixel so huge screenshots stay cheap.
	stepX := (bounds.Dx() / 64) + 1
	stepY := (bounds.Dy() / 64) + 1
	for y := bounds.Min.Y; y < bounds.Max.Y; y += stepY {
		for x := bounds.Min.X; x < bounds.Max.X; x += stepX {
			r, g, b, a := img.At(x, y).RGBA()
			if a < 0x8000 {
				continue
			}
			r8, g8, b8 := r>>8, g>>8, b>>8
			key := uint32(r8>>bucketShift)<<8 | uint32(g8>>bucketShift)<<4 | uint32(b8>>bucketShift)
			bk, ok := counts[key]
			if !ok {
				bk = &bucket{key: key}
				counts[key] = bk
			}
			bk.count++
			bk.r += uint64(r8)
			bk.g += uint64(g8)
			bk.b += uint64(b8)
		}
	}
	if len(counts) == 0 {
		return nil, fmt.Errorf("no opaque pixels")
	}
	buckets := make([]*bucket, 0, len(counts))
	for _, bk := range counts {
		buckets = append(buckets, bk)
	}
	sort.Slice(buckets, func(i, j int) bool {
		if buckets[i].count != buckets[j].count {
			return buckets[i].count > buckets[j].count
		}
		return buckets[i].key < buckets[j].key
	})
	if len(buckets) > paletteSize {
		buckets = buckets[:paletteSize]
	}
	out := make([]string, 0, len(buckets))
	for _, bk := range buckets {
		n := uint64(bk.count)
		out = append(out, fmt.Sprintf("#%02x%02x%02x", bk.r/n, bk.g/n, bk.b/n))
	}
	return out, nil
}
