package gfont

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

const dpi = 72

// FontCache keeps one parsed font and hands out faces per size, creating
// each face at most once.
type FontCache struct {
	font  *opentype.Font
	faces map[float64]font.Face
}

// LoadFonts parses the font at path, or the embedded Go Regular font when
// path is empty.
func LoadFonts(path string) (*FontCache, error) {
	data := goregular.TTF
	if path != "" {
		var err error
		if data, err = os.ReadFile(path); err != nil {
			return nil, err
		}
	}
	return NewFontCache(data)
}

func NewFontCache(data []byte) (*FontCache, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("error parse font: %w", err)
	}
	return &FontCache{font: f, faces: make(map[float64]font.Face)}, nil
}

func (fc *FontCache) Face(size float64) (font.Face, error) {
	if face, ok := fc.faces[size]; ok {
		return face, nil
	}
	face, err := opentype.NewFace(fc.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     dpi,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, err
	}
	fc.faces[size] = face
	return face, nil
}

func (fc *FontCache) Len() int {
	return len(fc.faces)
}

func (fc *FontCache) Close() error {
	var errs []error
	for size, face := range fc.faces {
		errs = append(errs, face.Close())
		delete(fc.faces, size)
	}
	return errors.Join(errs...)
}
