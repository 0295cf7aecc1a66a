// Package shaderc drives an external SPIR-V compiler over a shader registry.
package shaderc

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mattn/go-shellwords"

	"github.com/Faultbox/spvbuild/internal/shader"
)

// Compiler describes how the external compiler is invoked.
type Compiler struct {
	Path       string   // Executable name or path
	Flags      []string // Fixed flags placed before the source path
	OutputFlag string   // Flag introducing the output path
}

// DefaultCompiler returns glslangValidator targeting Vulkan SPIR-V.
func DefaultCompiler() Compiler {
	return Compiler{
		Path:       "glslangValidator",
		Flags:      []string{"--aml", "-V"},
		OutputFlag: "-o",
	}
}

// Command is one composed compiler invocation.
type Command struct {
	Descriptor shader.Descriptor
	Compiler   Compiler
	Source     string   // Source root joined with the descriptor source
	Output     string   // Output root joined with the output filename
	Params     []string // Descriptor parameters split into arguments
}

// Compose builds the invocation for d. The parameter string is split with
// shell quoting rules; it is otherwise passed through untouched.
func (c Compiler) Compose(d shader.Descriptor, sourceRoot, outputRoot string) (Command, error) {
	params, err := splitParams(d.Params())
	if err != nil {
		return Command{}, fmt.Errorf("%s: parsing params %q: %w", d.Name(), d.Params(), err)
	}
	return Command{
		Descriptor: d,
		Compiler:   c,
		Source:     filepath.Join(sourceRoot, d.Source()),
		Output:     filepath.Join(outputRoot, d.OutputFilename()),
		Params:     params,
	}, nil
}

var (
	ErrShellOperator   = errors.New("unquoted shell operator in params")
	ErrBackslashEscape = errors.New("backslash outside single quotes in params")
)

// splitParams splits s into arguments. Quotes group words and are removed.
// Anything else that would make the arguments differ from the text is an
// error: an unquoted ; & | < > ends parsing early, and a backslash outside
// single quotes is consumed as an escape.
func splitParams(s string) ([]string, error) {
	p := shellwords.NewParser()
	args, err := p.Parse(s)
	if err != nil {
		return nil, err
	}
	if p.Position != -1 {
		return nil, fmt.Errorf("%w at offset %d", ErrShellOperator, p.Position)
	}

	kept := 0
	for _, a := range args {
		kept += strings.Count(a, `\`)
	}
	if kept != strings.Count(s, `\`) {
		return nil, ErrBackslashEscape
	}
	return args, nil
}

// Args returns the argument list passed to the compiler executable.
func (cmd Command) Args() []string {
	args := make([]string, 0, len(cmd.Compiler.Flags)+len(cmd.Params)+3)
	args = append(args, cmd.Compiler.Flags...)
	args = append(args, cmd.Source)
	args = append(args, cmd.Params...)
	args = append(args, cmd.Compiler.OutputFlag, cmd.Output)
	return args
}

// String returns the command line with the descriptor parameters inserted verbatim.
func (cmd Command) String() string {
	var b strings.Builder
	b.WriteString(cmd.Compiler.Path)
	for _, f := range cmd.Compiler.Flags {
		b.WriteByte(' ')
		b.WriteString(f)
	}
	b.WriteByte(' ')
	b.WriteString(cmd.Source)
	if p := cmd.Descriptor.Params(); p != "" {
		b.WriteByte(' ')
		b.WriteString(p)
	}
	b.WriteByte(' ')
	b.WriteString(cmd.Compiler.OutputFlag)
	b.WriteByte(' ')
	b.WriteString(cmd.Output)
	return b.String()
}
