package extract

import (
	"fmt"
	"image"
	"image/draw"
	"math"
	"sort"

	"github.com/anthonynsimon/bild/transform"

	"github.com/hueforge/color-tools-mcp/internal/colorspace"
)

// Options tunes the sampling stage of the extraction. The defaults trade a
// little accuracy for speed on large images; callers with small inputs can
// set Stride to 1 and AlphaThreshold to 0 to consider every pixel.
type Options struct {
	// Stride is the pixel sampling interval: 1 inspects every pixel,
	// 4 every fourth pixel, and so on. Values below 1 are treated as the
	// default.
	Stride int `json:"stride"`

	// AlphaThreshold is the minimum alpha for a pixel to count as visible.
	// Pixels with alpha below the threshold are skipped. 0 keeps every
	// pixel, including fully transparent ones.
	AlphaThreshold uint8 `json:"alpha_threshold"`

	// MaxDimension, when positive, downsamples the image so its longer
	// side is at most this many pixels before sampling. The resize is
	// nearest-neighbor, so sampled values are always actual image colors,
	// never blends invented by a filter.
	MaxDimension int `json:"max_dimension"`
}

// DefaultOptions returns the observed production tuning: every fourth
// pixel, alpha threshold 128, no downsampling.
func DefaultOptions() Options {
	return Options{
		Stride:         4,
		AlphaThreshold: 128,
		MaxDimension:   0,
	}
}

// normalized fills in usable values for out-of-range fields.
func (o Options) normalized() Options {
	if o.Stride < 1 {
		o.Stride = DefaultOptions().Stride
	}
	if o.MaxDimension < 0 {
		o.MaxDimension = 0
	}
	return o
}

// bucket is a splittable group of sampled pixels. Pixels are stored as
// flat RGB triples; the bucket owns its slice.
type bucket []colorspace.RGB

// widestChannel returns the channel index (0=R, 1=G, 2=B) with the largest
// max-min range across the bucket's members, and that range.
func (b bucket) widestChannel() (channel, spread int) {
	var min, max [3]int
	for i := range min {
		min[i] = 256
		max[i] = -1
	}
	for _, p := range b {
		for i, v := range [3]int{int(p.R), int(p.G), int(p.B)} {
			if v < min[i] {
				min[i] = v
			}
			if v > max[i] {
				max[i] = v
			}
		}
	}
	for i := range min {
		if r := max[i] - min[i]; r > spread {
			channel, spread = i, r
		}
	}
	return channel, spread
}

// channelValue returns the pixel's value on the given channel index.
func channelValue(p colorspace.RGB, channel int) uint8 {
	switch channel {
	case 0:
		return p.R
	case 1:
		return p.G
	default:
		return p.B
	}
}

// mean reduces the bucket to its representative color: the arithmetic mean
// of each channel, rounded to the nearest integer.
func (b bucket) mean() colorspace.RGB {
	var sumR, sumG, sumB int
	for _, p := range b {
		sumR += int(p.R)
		sumG += int(p.G)
		sumB += int(p.B)
	}
	n := float64(len(b))
	return colorspace.FromFloats(
		math.Round(float64(sumR)/n),
		math.Round(float64(sumG)/n),
		math.Round(float64(sumB)/n),
	)
}

// FromRGBA extracts up to count representative colors from a flat RGBA
// byte buffer (4 bytes per pixel, channels not premultiplied by alpha).
//
// The result may be shorter than count: an all-transparent or empty buffer
// yields no colors, and an image with fewer distinct sampled colors than
// count stops splitting early. Result order is bucket-creation order, which
// is deterministic for a given buffer and options but not sorted by
// prevalence.
func FromRGBA(pix []uint8, count int, opts Options) []colorspace.RGB {
	opts = opts.normalized()
	if count < 1 || len(pix) < 4 {
		return nil
	}

	// Sampling stage: every Stride-th pixel, visible pixels only.
	step := 4 * opts.Stride
	samples := make(bucket, 0, len(pix)/step+1)
	for i := 0; i+3 < len(pix); i += step {
		if pix[i+3] < opts.AlphaThreshold {
			continue
		}
		samples = append(samples, colorspace.RGB{R: pix[i], G: pix[i+1], B: pix[i+2]})
	}
	if len(samples) == 0 {
		return nil
	}

	buckets := []bucket{samples}
	for len(buckets) < count {
		// Split the most populated splittable bucket; ties keep creation
		// order. Uniform buckets (zero channel spread) cannot be split and
		// must not shadow smaller buckets that still can: a large solid
		// background would otherwise stop extraction early.
		target, channel := -1, 0
		for i, b := range buckets {
			if len(b) < 2 || (target >= 0 && len(b) <= len(buckets[target])) {
				continue
			}
			ch, spread := b.widestChannel()
			if spread == 0 {
				continue
			}
			target, channel = i, ch
		}
		if target < 0 {
			break
		}

		b := buckets[target]
		sort.SliceStable(b, func(i, j int) bool {
			return channelValue(b[i], channel) < channelValue(b[j], channel)
		})
		mid := len(b) / 2
		buckets[target] = b[:mid]
		buckets = append(buckets, b[mid:])
	}

	colors := make([]colorspace.RGB, 0, len(buckets))
	for _, b := range buckets {
		colors = append(colors, b.mean())
	}
	if len(colors) > count {
		colors = colors[:count]
	}
	return colors
}

// FromImage extracts up to count representative colors from a decoded
// image.
//
// When opts.MaxDimension is positive and the image is larger, it is first
// downsampled with a nearest-neighbor resize so extraction cost stays
// bounded on large inputs. The image is then flattened to a non-premultiplied
// RGBA buffer and handed to FromRGBA.
func FromImage(img image.Image, count int, opts Options) ([]colorspace.RGB, error) {
	if img == nil {
		return nil, fmt.Errorf("nil image")
	}
	opts = opts.normalized()

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w == 0 || h == 0 {
		return nil, nil
	}

	if opts.MaxDimension > 0 && (w > opts.MaxDimension || h > opts.MaxDimension) {
		scale := float64(opts.MaxDimension) / float64(w)
		if h > w {
			scale = float64(opts.MaxDimension) / float64(h)
		}
		nw, nh := int(float64(w)*scale), int(float64(h)*scale)
		if nw < 1 {
			nw = 1
		}
		if nh < 1 {
			nh = 1
		}
		img = transform.Resize(img, nw, nh, transform.NearestNeighbor)
		bounds = img.Bounds()
	}

	// Flatten to NRGBA, never RGBA: RGBA stores alpha-premultiplied
	// channels, which would darken every visible semi-transparent pixel.
	// Drawing into an NRGBA destination un-premultiplies. The resize above
	// returns premultiplied RGBA, so it takes this path too.
	nrgba, ok := img.(*image.NRGBA)
	if !ok || bounds.Min != (image.Point{}) {
		flat := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
		draw.Draw(flat, flat.Bounds(), img, bounds.Min, draw.Src)
		nrgba = flat
	}

	return FromRGBA(nrgba.Pix, count, opts), nil
}
