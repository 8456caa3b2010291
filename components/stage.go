package components

import (
	"github.com/automoto/versus/shared/stagedata"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// SpaceData is the singleton resolv space.
type SpaceData struct {
	*resolv.Space
}

var Space = donburi.NewComponentType[SpaceData]()

// StageData is the singleton stage the round is fought on.
type StageData struct {
	*stagedata.Stage
}

var Stage = donburi.NewComponentType[StageData]()
