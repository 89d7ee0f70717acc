package assets

import (
	"embed"
	"log"

	"github.com/automoto/kickoff/shared/pitchdata"
)

var (
	//go:embed all:pitches
	pitchFS embed.FS
)

// LoadPitch loads an embedded pitch map. A map that is missing or invalid is
// replaced by the default layout for width x height.
func LoadPitch(path string, width, height float64) pitchdata.Layout {
	layout, err := pitchdata.LoadLayout(pitchFS, path)
	if err != nil {
		log.Printf("Warning: Could not load pitch %s, using default layout: %v", path, err)
		return pitchdata.DefaultLayout(width, height)
	}
	if layout.Width != width || layout.Height != height {
		log.Printf("Warning: Pitch %s is %vx%v but the screen is %vx%v, using default layout",
			path, layout.Width, layout.Height, width, height)
		return pitchdata.DefaultLayout(width, height)
	}
	return *layout
}
