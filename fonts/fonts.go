package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	HUD    FontName = "hud"
	Title  FontName = "title"
	Banner FontName = "banner"
	Small  FontName = "small"
)

func (f FontName) Get() text.Face {
	return getFont(f)
}

var (
	fonts = map[FontName]text.Face{}
)

// LoadDefaults registers every face the game draws with, using Go Regular.
func LoadDefaults() error {
	for name, size := range map[FontName]float64{
		HUD:    20,
		Title:  30,
		Banner: 56,
		Small:  12,
	} {
		if err := LoadFontWithSize(name, goregular.TTF, size); err != nil {
			return err
		}
	}
	return nil
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) error {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("parse font %s: %w", name, err)
	}
	face := truetype.NewFace(fontData, &truetype.Options{
		Size:    size,
		Hinting: font.HintingFull,
	})
	fonts[name] = text.NewGoXFace(face)
	return nil
}

func getFont(name FontName) text.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
