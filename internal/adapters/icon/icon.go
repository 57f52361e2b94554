// Package icon generates and loads status indicator icons.
package icon

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	"image/png"
	"io/fs"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"unicode"

	"github.com/bmestref/pycronx/internal/core/domain"
	"github.com/cespare/xxhash/v2"
	"go.trai.ch/zerr"
	_ "golang.org/x/image/bmp" // register BMP decoder
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	// Size is the edge length of generated icons in pixels.
	Size = 64
	// TextLen is the number of label characters drawn on generated icons.
	TextLen = 4

	minChannel         = 100
	luminanceThreshold = 160
)

// Provider implements ports.IconProvider on the icons directory.
type Provider struct {
	dir string

	mu  sync.Mutex
	rnd *rand.Rand
}

// Option configures a Provider.
type Option func(*Provider)

// WithRand sets the source of background colours.
func WithRand(r *rand.Rand) Option {
	return func(p *Provider) {
		p.rnd = r
	}
}

// NewProvider creates a Provider storing generated icons in dir.
func NewProvider(dir string, opts ...Option) *Provider {
	p := &Provider{
		dir: dir,
		rnd: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())), //nolint:gosec // colours only
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Generate renders a badge with a random background and the label's initials.
// Identical renders share one file.
func (p *Provider) Generate(label string) (*domain.Icon, error) {
	bg := p.background()
	text := BadgeText(label)
	img := render(bg, text)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, zerr.Wrap(err, domain.ErrIconWriteFailed.Error())
	}
	data := buf.Bytes()

	name := fmt.Sprintf("%sIcon-%016x.png", label, xxhash.Sum64(data))
	path := filepath.Join(p.dir, name)

	if err := writeOnce(path, data); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrIconWriteFailed.Error()), "path", path)
	}

	return &domain.Icon{Path: path, Text: text, Color: hexColor(bg), TextColor: hexColor(TextColor(bg))}, nil
}

// Load decodes an existing PNG, JPEG, GIF or BMP file.
func (p *Provider) Load(path string) (*domain.Icon, error) {
	if !filepath.IsAbs(path) {
		path = filepath.Join(p.dir, path)
	}

	//nolint:gosec // G304: the icon path comes from the task descriptor
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(domain.ErrIconNotFound, "path", path)
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrIconNotFound.Error()), "path", path)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrIconDecode.Error()), "path", path)
	}

	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	avg := averageColor(img)
	return &domain.Icon{
		Path:      path,
		Text:      BadgeText(base),
		Color:     hexColor(avg),
		TextColor: hexColor(TextColor(avg)),
	}, nil
}

func (p *Provider) background() color.RGBA {
	p.mu.Lock()
	defer p.mu.Unlock()

	channel := func() uint8 {
		return uint8(minChannel + p.rnd.IntN(256-minChannel)) //nolint:gosec // bounded to [100,255]
	}
	return color.RGBA{R: channel(), G: channel(), B: channel(), A: 0xff}
}

// BadgeText returns the first characters of the title-cased label,
// with underscores read as spaces.
func BadgeText(label string) string {
	words := strings.Fields(strings.ReplaceAll(label, "_", " "))
	for i, w := range words {
		words[i] = titleWord(w)
	}
	runes := []rune(strings.Join(words, " "))
	if len(runes) > TextLen {
		runes = runes[:TextLen]
	}
	return string(runes)
}

func titleWord(w string) string {
	runes := []rune(strings.ToLower(w))
	if len(runes) > 0 {
		runes[0] = unicode.ToUpper(runes[0])
	}
	return string(runes)
}

// TextColor picks black or white text for the background.
func TextColor(bg color.RGBA) color.Color {
	luminance := 0.299*float64(bg.R) + 0.587*float64(bg.G) + 0.114*float64(bg.B)
	if luminance > luminanceThreshold {
		return color.Black
	}
	return color.White
}

func render(bg color.RGBA, text string) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, Size, Size))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: bg}, image.Point{}, draw.Src)

	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(TextColor(bg)),
		Face: face,
	}
	width := d.MeasureString(text).Ceil()
	x := (Size - width) / 2
	y := (Size-face.Height)/2 + face.Ascent
	d.Dot = fixed.P(x, y)
	d.DrawString(text)

	return img
}

func averageColor(img image.Image) color.RGBA {
	var r, g, b, n uint64
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			pr, pg, pb, pa := img.At(x, y).RGBA()
			if pa == 0 {
				continue
			}
			r += uint64(pr >> 8)
			g += uint64(pg >> 8)
			b += uint64(pb >> 8)
			n++
		}
	}
	if n == 0 {
		return color.RGBA{A: 0xff}
	}
	return color.RGBA{R: uint8(r / n), G: uint8(g / n), B: uint8(b / n), A: 0xff} //nolint:gosec // averages of 8-bit values
}

func hexColor(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02X%02X%02X", r>>8, g>>8, b>>8)
}

// writeOnce writes data to path unless the file already exists.
func writeOnce(path string, data []byte) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".icon-*")
	if err != nil {
		return err
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), domain.FilePerm); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
