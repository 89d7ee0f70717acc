package components

import (
	"github.com/automoto/kickoff/shared/pitchdata"
	"github.com/yohamta/donburi"
)

// FieldData is the pitch geometry. It is fixed for the lifetime of a match.
type FieldData struct {
	pitchdata.Layout
}

var Field = donburi.NewComponentType[FieldData]()
