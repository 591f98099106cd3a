package pointer

import (
	"errors"
	"fmt"
	"log"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"github.com/milk9111/glowsnake/prefabs"
)

// ErrScriptOutputs is returned when a pointer script does not assign both x
// and y.
var ErrScriptOutputs = errors.New("pointer: script must set x and y")

// scriptModules are the tengo modules a pointer script may import. File and
// process access are left out.
var scriptModules = []string{"math", "rand", "times", "text", "fmt"}

// Script drives the pointer from a tengo program. The program sees the
// globals t, width and height and must assign x and y.
type Script struct {
	name     string
	compiled *tengo.Compiled
	failing  bool
}

// LoadScript resolves name through prefabs.LoadScript (disk path or embedded
// script name) and compiles it.
func LoadScript(name string) (*Script, error) {
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("pointer: load script %s: %w", name, err)
	}
	return NewScript(name, src)
}

func NewScript(name string, src []byte) (*Script, error) {
	script := tengo.NewScript(src)
	_ = script.Add("t", 0.0)
	_ = script.Add("width", 0.0)
	_ = script.Add("height", 0.0)
	script.SetImports(stdlib.GetModuleMap(scriptModules...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("pointer: compile %s: %w", name, err)
	}

	s := &Script{name: name, compiled: compiled}
	if _, _, err := s.Eval(0, 800, 600); err != nil {
		return nil, err
	}
	return s, nil
}

// Name returns the name the script was loaded under.
func (s *Script) Name() string {
	return s.name
}

// Eval runs the script once for the given frame inputs.
func (s *Script) Eval(t, width, height float64) (float64, float64, error) {
	if err := s.compiled.Set("t", t); err != nil {
		return 0, 0, fmt.Errorf("pointer: %s: set t: %w", s.name, err)
	}
	if err := s.compiled.Set("width", width); err != nil {
		return 0, 0, fmt.Errorf("pointer: %s: set width: %w", s.name, err)
	}
	if err := s.compiled.Set("height", height); err != nil {
		return 0, 0, fmt.Errorf("pointer: %s: set height: %w", s.name, err)
	}
	if err := s.compiled.Run(); err != nil {
		return 0, 0, fmt.Errorf("pointer: %s: run: %w", s.name, err)
	}
	if !s.compiled.IsDefined("x") || !s.compiled.IsDefined("y") {
		return 0, 0, fmt.Errorf("%w (%s)", ErrScriptOutputs, s.name)
	}
	return s.compiled.Get("x").Float(), s.compiled.Get("y").Float(), nil
}

// Sample implements Source. A failing frame keeps the previous pointer and
// is logged once until the script recovers.
func (s *Script) Sample(t, width, height float64) (float64, float64, bool) {
	x, y, err := s.Eval(t, width, height)
	if err != nil {
		if !s.failing {
			log.Printf("pointer: %v", err)
			s.failing = true
		}
		return 0, 0, false
	}
	s.failing = false
	return x, y, true
}
