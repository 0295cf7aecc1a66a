package shader

import (
	"fmt"
	"path/filepath"
)

// Stage identifies the pipeline stage a shader source is compiled for.
type Stage int

const (
	StageUnknown Stage = iota
	StageVertex
	StageFragment
	StageCompute
	StageGeometry
	StageTessControl
	StageTessEvaluation
)

// stageExtensions maps every recognized stage to its source file extension.
var stageExtensions = map[Stage]string{
	StageVertex:         ".vert",
	StageFragment:       ".frag",
	StageCompute:        ".comp",
	StageGeometry:       ".geom",
	StageTessControl:    ".tesc",
	StageTessEvaluation: ".tese",
}

var stageNames = map[Stage]string{
	StageUnknown:        "unknown",
	StageVertex:         "vertex",
	StageFragment:       "fragment",
	StageCompute:        "compute",
	StageGeometry:       "geometry",
	StageTessControl:    "tess-control",
	StageTessEvaluation: "tess-evaluation",
}

// StageFromFilename derives the stage from the extension of a source file name.
// Unrecognized extensions yield StageUnknown.
func StageFromFilename(name string) Stage {
	ext := filepath.Ext(name)
	for stage, e := range stageExtensions {
		if e == ext {
			return stage
		}
	}
	return StageUnknown
}

// ParseStage accepts either a stage name ("fragment") or its extension
// with or without the leading dot ("frag", ".frag").
func ParseStage(s string) (Stage, error) {
	for stage, name := range stageNames {
		if stage != StageUnknown && name == s {
			return stage, nil
		}
	}
	ext := s
	if ext != "" && ext[0] != '.' {
		ext = "." + ext
	}
	for stage, e := range stageExtensions {
		if e == ext {
			return stage, nil
		}
	}
	return StageUnknown, fmt.Errorf("unknown shader stage %q", s)
}

// Extension returns the source extension including the dot, or "" for StageUnknown.
func (s Stage) Extension() string {
	return stageExtensions[s]
}

// Known reports whether s is a recognized stage.
func (s Stage) Known() bool {
	_, ok := stageExtensions[s]
	return ok
}

func (s Stage) String() string {
	if name, ok := stageNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Stage(%d)", int(s))
}
