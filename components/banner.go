package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// BannerData is a centred message that fades in, holds and fades out.
type BannerData struct {
	Text     string
	Alpha    float32
	Sequence *gween.Sequence
}

var Banner = donburi.NewComponentType[BannerData]()

// Active reports whether the banner still has a fade to play.
func (b *BannerData) Active() bool {
	return b.Sequence != nil
}
