package gallery

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"golang.org/x/image/draw"
)

const (
	// ThumbWidth is the maximum width of a generated thumbnail.
	ThumbWidth  = 480
	jpegQuality = 80
	maxSource   = 25 << 20
)

// ErrNotImage is returned for paths that are not a decodable image.
var ErrNotImage = errors.New("gallery: not an image")

// ErrOutsideRoot is returned for paths escaping the image directory.
var ErrOutsideRoot = errors.New("gallery: path outside image directory")

// Thumbnailer serves downsized JPEG copies of images under a root directory.
type Thumbnailer struct {
	root  string
	cache *cache.Cache
}

// NewThumbnailer creates a Thumbnailer for images under root. Generated
// thumbnails are kept for ttl.
func NewThumbnailer(root string, ttl time.Duration) *Thumbnailer {
	return &Thumbnailer{
		root:  root,
		cache: cache.New(ttl, 2*ttl),
	}
}

// Thumbnail returns the JPEG thumbnail for the image at name, relative to the
// root.
func (t *Thumbnailer) Thumbnail(name string) ([]byte, error) {
	path, err := t.resolve(name)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	key := fmt.Sprintf("%s@%d", path, info.ModTime().UnixNano())
	if v, ok := t.cache.Get(key); ok {
		return v.([]byte), nil
	}
	if info.Size() > maxSource {
		return nil, ErrNotImage
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := resize(f)
	if err != nil {
		return nil, err
	}
	t.cache.SetDefault(key, data)
	return data, nil
}

func (t *Thumbnailer) resolve(name string) (string, error) {
	clean := filepath.Clean("/" + strings.TrimPrefix(name, "/"))
	root, err := filepath.Abs(t.root)
	if err != nil {
		return "", err
	}
	path := filepath.Join(root, clean)
	if path != root && !strings.HasPrefix(path, root+string(filepath.Separator)) {
		return "", ErrOutsideRoot
	}
	return path, nil
}

// resize decodes an image, scales it down to ThumbWidth if wider, and encodes
// it as JPEG.
func resize(src io.Reader) ([]byte, error) {
	img, _, err := image.Decode(src)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotImage, err)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w > ThumbWidth {
		newH := h * ThumbWidth / w
		if newH < 1 {
			newH = 1
		}
		dst := image.NewRGBA(image.Rect(0, 0, ThumbWidth, newH))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
		img = dst
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}
