// Package shader describes the shader sources a build compiles and the
// ordered registry they are declared in.
package shader

import (
	"errors"
	"fmt"
	"strings"
)

// BinaryExt is appended to every compiled output name.
const BinaryExt = ".spv"

// Descriptor is one shader-to-binary compilation unit. It is immutable once
// constructed; the stage is derived from the source name by New and never changes.
type Descriptor struct {
	name   string
	source string
	params string
	stage  Stage
}

// New creates a descriptor. Optional params are compiler flags passed through
// verbatim; several values are joined with a single space.
func New(name, source string, params ...string) Descriptor {
	return Descriptor{
		name:   name,
		source: source,
		params: strings.Join(params, " "),
		stage:  StageFromFilename(source),
	}
}

// Name returns the base name of the compiled artifact.
func (d Descriptor) Name() string { return d.name }

// Source returns the source file path relative to the source root.
func (d Descriptor) Source() string { return d.source }

// Params returns the raw compiler parameter string.
func (d Descriptor) Params() string { return d.params }

// Stage returns the stage derived from the source extension.
func (d Descriptor) Stage() Stage { return d.stage }

// StageExtension returns the stage extension, empty when the stage is unknown.
func (d Descriptor) StageExtension() string { return d.stage.Extension() }

// OutputFilename returns "<name><stage ext>.spv". For an unknown stage the
// stage marker is omitted.
func (d Descriptor) OutputFilename() string {
	return d.name + d.StageExtension() + BinaryExt
}

func (d Descriptor) String() string {
	if d.params == "" {
		return fmt.Sprintf("%s (%s)", d.name, d.source)
	}
	return fmt.Sprintf("%s (%s %s)", d.name, d.source, d.params)
}

var (
	ErrMissingName   = errors.New("descriptor has no output name")
	ErrMissingSource = errors.New("descriptor has no source file")
	ErrUnknownStage  = errors.New("source file has no recognized stage extension")
)

// Validate checks that name and source are present. An unknown stage is allowed.
func (d Descriptor) Validate() error {
	if d.name == "" {
		return ErrMissingName
	}
	if d.source == "" {
		return fmt.Errorf("%s: %w", d.name, ErrMissingSource)
	}
	return nil
}

// ValidateStrict is Validate plus rejection of unknown stages.
func (d Descriptor) ValidateStrict() error {
	if err := d.Validate(); err != nil {
		return err
	}
	if !d.stage.Known() {
		return fmt.Errorf("%s: %s: %w", d.name, d.source, ErrUnknownStage)
	}
	return nil
}
