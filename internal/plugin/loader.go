// Package plugin loads user scripts: plain .go files interpreted at runtime
// with Yaegi. The scripting API is injected into the interpreter under the
// import path "shv"; plugins hook the lifecycle through OnStart/OnTick/
// OnAbort callbacks instead of implementing the Script interface directly.
package plugin

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/traefik/yaegi/interp"
	"github.com/traefik/yaegi/stdlib"
	"go.uber.org/zap"

	"github.com/Tivertoni/scripthookvdotnet/internal/native"
	"github.com/Tivertoni/scripthookvdotnet/internal/script"
	"github.com/Tivertoni/scripthookvdotnet/internal/vmath"
)

// Loader interprets plugin files and hands the resulting scripts to the
// manager.
type Loader struct {
	env script.Env
	log *zap.Logger
}

func NewLoader(env script.Env, log *zap.Logger) *Loader {
	if log == nil {
		log = zap.NewNop()
	}
	return &Loader{env: env, log: log}
}

// pluginScript adapts a plugin's registered callbacks to the Script
// lifecycle.
type pluginScript struct {
	script.Base
	name    string
	onStart func()
	onTick  func()
	onAbort func()
}

func (p *pluginScript) Name() string { return p.name }

func (p *pluginScript) Start() {
	if p.onStart != nil {
		p.onStart()
	}
}

func (p *pluginScript) Tick() {
	if p.onTick != nil {
		p.onTick()
	}
}

func (p *pluginScript) Abort() {
	if p.onAbort != nil {
		p.onAbort()
	}
}

// LoadDir interprets every .go file in dir and registers each one with the
// manager. A broken plugin is logged and skipped; it does not stop the
// rest from loading.
func (l *Loader) LoadDir(dir string, mgr *script.Manager) int {
	entries, err := os.ReadDir(dir)
	if err != nil {
		l.log.Warn("Plugin directory not readable", zap.String("dir", dir), zap.Error(err))
		return 0
	}

	loaded := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".go") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		s, err := l.LoadFile(path)
		if err != nil {
			l.log.Error("Failed to load plugin", zap.String("path", path), zap.Error(err))
			continue
		}
		mgr.Add(s)
		loaded++
	}
	return loaded
}

// LoadFile interprets a single plugin file and returns it as a script named
// after the file.
func (l *Loader) LoadFile(path string) (script.Script, error) {
	name := strings.TrimSuffix(filepath.Base(path), ".go")
	ps := &pluginScript{name: name}

	i := interp.New(interp.Options{})
	if err := i.Use(stdlib.Symbols); err != nil {
		return nil, fmt.Errorf("stdlib symbols: %w", err)
	}
	if err := i.Use(l.exports(ps)); err != nil {
		return nil, fmt.Errorf("api symbols: %w", err)
	}

	if _, err := i.EvalPath(path); err != nil {
		return nil, fmt.Errorf("eval: %w", err)
	}
	return ps, nil
}

// exports builds the API symbol table for one plugin. The lifecycle hooks
// close over that plugin's script so Wait and the callbacks land on the
// right instance.
func (l *Loader) exports(ps *pluginScript) interp.Exports {
	return interp.Exports{
		"shv/shv": {
			// Lifecycle.
			"OnStart": reflect.ValueOf(func(fn func()) { ps.onStart = fn }),
			"OnTick":  reflect.ValueOf(func(fn func()) { ps.onTick = fn }),
			"OnAbort": reflect.ValueOf(func(fn func()) { ps.onAbort = fn }),
			"Wait":    reflect.ValueOf(func(ms int) { ps.Wait(time.Duration(ms) * time.Millisecond) }),

			// Host services.
			"Notify": reflect.ValueOf(func(msg string) { l.env.Notifier.Notify(msg) }),
			"IsPressed": reflect.ValueOf(func(c int) bool {
				return l.env.Input.IsPressed(native.Control(c))
			}),
			"IsJustPressed": reflect.ValueOf(func(c int) bool {
				return l.env.Input.IsJustPressed(native.Control(c))
			}),

			// Vector math.
			"Vector3":   reflect.ValueOf((*vmath.Vector3)(nil)),
			"Vector2":   reflect.ValueOf((*vmath.Vector2)(nil)),
			"Vec3":      reflect.ValueOf(vmath.New),
			"Distance":  reflect.ValueOf(vmath.Distance),
			"Lerp":      reflect.ValueOf(vmath.Lerp),
			"Angle":     reflect.ValueOf(vmath.Angle),
			"RandomXY":  reflect.ValueOf(vmath.RandomXY),
			"RandomXYZ": reflect.ValueOf(vmath.RandomXYZ),
		},
	}
}
