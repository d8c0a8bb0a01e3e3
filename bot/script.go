package bot

import (
	"embed"
	"fmt"
	"log"
	"os"
	"path"

	"github.com/automoto/octagon/components"
	cfg "github.com/automoto/octagon/config"
	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

//go:embed scripts/*.tengo
var scriptFS embed.FS

// Appended to every script: scripts define decide(view, memory) and return a
// map of held keys.
const dispatchScript = `
__keys := decide(__view, __memory)
`

// Script is a controller written in tengo.
type Script struct {
	name     string
	compiled *tengo.Compiled
	memory   *tengo.Map
	reach    float64
}

// LoadScript reads a script from disk, falling back to the scripts bundled
// with the binary ("scripts/brawler.tengo").
func LoadScript(name string, attacks cfg.Attacks) (*Script, error) {
	src, err := os.ReadFile(name)
	if err != nil {
		src, err = scriptFS.ReadFile(path.Join("scripts", path.Base(name)))
		if err != nil {
			return nil, fmt.Errorf("load script %s: %w", name, err)
		}
	}
	return NewScript(name, src, attacks)
}

// NewScript compiles a controller script.
func NewScript(name string, src []byte, attacks cfg.Attacks) (*Script, error) {
	script := tengo.NewScript(append(append([]byte(nil), src...), dispatchScript...))
	_ = script.Add("__view", map[string]interface{}{})
	_ = script.Add("__memory", map[string]interface{}{})
	script.SetImports(stdlib.GetModuleMap("math", "rand"))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("compile script %s: %w", name, err)
	}

	var reach float64
	if def, ok := attacks.Get(cfg.AttackPunch); ok {
		reach = def.Reach
	}
	return &Script{
		name:     name,
		compiled: compiled,
		memory:   &tengo.Map{Value: map[string]tengo.Object{}},
		reach:    reach,
	}, nil
}

// Decide runs the script once for the given view.
func (s *Script) Decide(v View) (components.Keys, error) {
	d := v.Delta()
	view := map[string]interface{}{
		"distance":          v.Distance(),
		"dx":                d.X(),
		"dz":                d.Z(),
		"health":            v.Self.Health,
		"max_health":        v.Self.MaxHealth,
		"target_health":     v.Target.Health,
		"target_max_health": v.Target.MaxHealth,
		"state":             v.Self.State,
		"target_state":      v.Target.State,
		"reach":             s.reach,
	}
	if err := s.compiled.Set("__view", view); err != nil {
		return nil, err
	}
	if err := s.compiled.Set("__memory", s.memory); err != nil {
		return nil, err
	}
	if err := s.compiled.Run(); err != nil {
		return nil, fmt.Errorf("run script %s: %w", s.name, err)
	}

	keys := components.Keys{}
	for key, held := range s.compiled.Get("__keys").Map() {
		if b, ok := held.(bool); ok && b {
			keys[key] = true
		}
	}
	return keys, nil
}

// Keys runs the script and stands still when it fails.
func (s *Script) Keys(v View) components.Keys {
	keys, err := s.Decide(v)
	if err != nil {
		log.Printf("Warning: %v", err)
		return components.Keys{}
	}
	return keys
}

// Memory returns a value the script stored in its memory map.
func (s *Script) Memory(key string) interface{} {
	obj, ok := s.memory.Value[key]
	if !ok {
		return nil
	}
	return tengo.ToInterface(obj)
}
