// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package microcode

import (
	_ "embed"
	"fmt"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

//go:embed sap2.star
var sap2Definition string

// Default returns the SAP2 control unit definition.
func Default() (def *Definition, err error) {
	return Load("sap2.star", sap2Definition)
}

// Load executes a Starlark control unit definition. src is as for
// starlark.ExecFile: nil to read filename, or a string or []byte.
//
// The script declares control lines with line(), the shared fetch steps
// with fetch(), and opcodes with opcode(). The globals width and steps,
// if set, override the control word width and the steps per row.
func Load(filename string, src any) (def *Definition, err error) {
	def = &Definition{
		Width: DEFAULT_WIDTH,
		Steps: DEFAULT_STEPS,
	}

	predeclared := starlark.StringDict{
		"ACTIVE_HIGH": starlark.MakeInt(int(ACTIVE_HIGH)),
		"ACTIVE_LOW":  starlark.MakeInt(int(ACTIVE_LOW)),
		"line":        starlark.NewBuiltin("line", def.builtinLine),
		"fetch":       starlark.NewBuiltin("fetch", def.builtinFetch),
		"opcode":      starlark.NewBuiltin("opcode", def.builtinOpcode),
	}

	thread := &starlark.Thread{Name: filename}
	opts := &syntax.FileOptions{}
	globals, err := starlark.ExecFileOptions(opts, thread, filename, src, predeclared)
	if err != nil {
		def = nil
		return
	}

	for name, value := range map[string]*int{"width": &def.Width, "steps": &def.Steps} {
		global, ok := globals[name]
		if !ok {
			continue
		}
		err = starlark.AsInt(global, value)
		if err != nil {
			err = fmt.Errorf("%v: %v: %w", filename, name, err)
			def = nil
			return
		}
	}

	return
}

func (def *Definition) builtinLine(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var line Line
	var active int
	err := starlark.UnpackArgs(fn.Name(), args, kwargs,
		"key", &line.Key,
		"bit", &line.Bit,
		"active", &active,
		"desc?", &line.Desc,
	)
	if err != nil {
		return nil, err
	}

	switch Active(active) {
	case ACTIVE_LOW, ACTIVE_HIGH:
		line.Active = Active(active)
	default:
		return nil, fmt.Errorf("%v: %w: active %d", fn.Name(), ErrArgs, active)
	}

	def.Lines = append(def.Lines, line)
	return starlark.None, nil
}

func (def *Definition) builtinFetch(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if len(kwargs) != 0 {
		return nil, fmt.Errorf("%v: %w", fn.Name(), ErrArgs)
	}

	steps, err := toSteps(args)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", fn.Name(), err)
	}

	def.Fetch = append(def.Fetch, steps...)
	return starlark.None, nil
}

func (def *Definition) builtinOpcode(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if len(kwargs) != 0 || len(args) < 2 {
		return nil, fmt.Errorf("%v: %w", fn.Name(), ErrArgs)
	}

	var op Opcode
	var code int
	err := starlark.UnpackPositionalArgs(fn.Name(), args[:2], nil, 2, &op.Name, &code)
	if err != nil {
		return nil, err
	}
	if code < 0 || code > 0xff {
		return nil, fmt.Errorf("%v: %w: code %d", fn.Name(), ErrArgs, code)
	}
	op.Code = byte(code)

	op.Steps, err = toSteps(args[2:])
	if err != nil {
		return nil, fmt.Errorf("%v: %v: %w", fn.Name(), op.Name, err)
	}

	def.Opcodes = append(def.Opcodes, op)
	return starlark.None, nil
}

// toSteps converts Starlark sequences of strings to steps.
func toSteps(args starlark.Tuple) (steps []Step, err error) {
	for _, arg := range args {
		iterable, ok := arg.(starlark.Iterable)
		if !ok {
			err = fmt.Errorf("%w: step %v", ErrArgs, arg.Type())
			return
		}

		step := Step{}
		iter := iterable.Iterate()
		var value starlark.Value
		for iter.Next(&value) {
			key, ok := starlark.AsString(value)
			if !ok {
				iter.Done()
				err = fmt.Errorf("%w: key %v", ErrArgs, value.Type())
				return
			}
			step = append(step, key)
		}
		iter.Done()

		steps = append(steps, step)
	}

	return
}
