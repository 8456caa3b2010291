// Package assets embeds the data files the client and the headless tools
// ship with.
package assets

import (
	"embed"

	"github.com/automoto/versus/shared/stagedata"
)

//go:embed all:stages
var stageFS embed.FS

// StageDir is the directory of embedded TMX stages.
const StageDir = "stages"

// MustLoadStages loads every embedded stage. The files are built into the
// binary, so a failure here is a packaging bug.
func MustLoadStages() (map[string]*stagedata.Stage, []string) {
	stages, names, err := stagedata.LoadAll(stageFS, StageDir)
	if err != nil {
		panic(err)
	}
	return stages, names
}

// LoadStage loads one embedded stage by name.
func LoadStage(name string) (*stagedata.Stage, error) {
	return stagedata.Load(stageFS, StageDir+"/"+name+".tmx")
}
