// The host driver. In-game the native hook drives ticks; this binary runs
// the same script stack headless against a recording invoker, which is how
// scripts get exercised during development.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/Tivertoni/scripthookvdotnet/internal/config"
	"github.com/Tivertoni/scripthookvdotnet/internal/logger"
	"github.com/Tivertoni/scripthookvdotnet/internal/native"
	"github.com/Tivertoni/scripthookvdotnet/internal/plugin"
	"github.com/Tivertoni/scripthookvdotnet/internal/script"
	"github.com/Tivertoni/scripthookvdotnet/internal/vmath"
	_ "github.com/Tivertoni/scripthookvdotnet/scripts"
)

func main() {
	if err := config.Load("."); err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logger.InitWithLevel(config.GetString("logLevel"))
	defer logger.Log.Sync()

	env := script.Env{
		Invoker:  &headlessInvoker{log: logger.Log},
		Input:    headlessInput{},
		Notifier: logNotifier{log: logger.Log},
	}

	mgr := script.NewManager(logger.Log)
	startExamples(mgr, env)

	if config.GetBool("scripts.loadPlugins") {
		loader := plugin.NewLoader(env, logger.Log)
		n := loader.LoadDir(config.GetString("scripts.dir"), mgr)
		logger.Log.Info("Plugins loaded", zap.Int("count", n))
	}

	tickHz := config.GetInt("tickHz")
	if tickHz <= 0 {
		tickHz = 60
	}
	ticker := time.NewTicker(time.Second / time.Duration(tickHz))
	defer ticker.Stop()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	logger.Log.Info("Host running",
		zap.Int("tickHz", tickHz),
		zap.Strings("available", script.Available()))

	for {
		select {
		case <-ticker.C:
			mgr.TickAll()
		case <-stop:
			logger.Log.Info("Shutting down, aborting scripts")
			mgr.AbortAll()
			return
		}
	}
}

// startExamples instantiates each built-in example the settings enable.
func startExamples(mgr *script.Manager, env script.Env) {
	enabled := map[string]string{
		"VehicleExit": "examples.vehicleExit",
		"Indicators":  "examples.indicators",
		"PhysicsDemo": "examples.physicsDemo",
		"PedPatrol":   "examples.pedPatrol",
	}
	for name, key := range enabled {
		if !config.GetBool(key) {
			continue
		}
		if s := script.Create(name, env); s != nil {
			mgr.Add(s)
		}
	}
}

// headlessInvoker stands in for the native engine when running outside the
// game. It logs calls and returns zero values; it does not simulate.
type headlessInvoker struct {
	log *zap.Logger
}

func (h *headlessInvoker) trace(h64 native.Hash, args []any) {
	h.log.Debug("native call", zap.Uint64("hash", uint64(h64)), zap.Any("args", args))
}

func (h *headlessInvoker) Void(hash native.Hash, args ...any) { h.trace(hash, args) }

func (h *headlessInvoker) Int(hash native.Hash, args ...any) int {
	h.trace(hash, args)
	return 0
}

func (h *headlessInvoker) Float(hash native.Hash, args ...any) float32 {
	h.trace(hash, args)
	return 0
}

func (h *headlessInvoker) Bool(hash native.Hash, args ...any) bool {
	h.trace(hash, args)
	return false
}

func (h *headlessInvoker) Vector(hash native.Hash, args ...any) vmath.NativeVector3 {
	h.trace(hash, args)
	return vmath.NativeVector3{}
}

// headlessInput reports no input; there is no player outside the game.
type headlessInput struct{}

func (headlessInput) IsPressed(native.Control) bool     { return false }
func (headlessInput) IsJustPressed(native.Control) bool { return false }

// logNotifier routes the on-screen feed to the log.
type logNotifier struct {
	log *zap.Logger
}

func (n logNotifier) Notify(msg string) {
	n.log.Info("notification", zap.String("text", msg))
}
