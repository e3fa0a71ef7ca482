// Command cockpit is an interactive overhead-panel REPL for the A320
// hydraulic controller: flip pushbuttons, feed engine N2, tick the
// fixed-step driver, and print loop status, the same way powerctl's
// debug console drives and inspects a running device.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/chzyer/readline"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/samber/lo"

	"hydrosim/aircraft"
	"hydrosim/hydraulic"
)

func main() {
	_ = godotenv.Load() // optional .env overrides; fine if absent

	logLevel := slog.LevelInfo
	if lvl := os.Getenv("HYDROSIM_LOG_LEVEL"); lvl != "" {
		_ = logLevel.UnmarshalText([]byte(lvl))
	}

	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{Level: logLevel}))
	slog.SetDefault(logger)

	runID := uuid.New()
	logger.Info("cockpit session starting", "run_id", runID.String())

	ac, err := newController()
	if err != nil {
		logger.Error("failed to build controller", "error", err)
		os.Exit(1)
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:      "cockpit> ",
		HistoryFile: historyFilePath(),
	})
	if err != nil {
		logger.Error("readline init failed", "error", err)
		os.Exit(1)
	}
	defer rl.Close()

	sess := &session{ac: ac, logger: logger, runID: runID}
	sess.run(rl)
}

func newController() (*aircraft.A320Hydraulic, error) {
	if path := os.Getenv("HYDROSIM_CONFIG_PATH"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
		cfg, err := hydraulic.LoadAircraftConfig(data)
		if err != nil {
			return nil, err
		}
		return aircraft.NewA320Hydraulic(cfg)
	}
	return aircraft.NewDefaultA320Hydraulic()
}

func historyFilePath() string {
	cacheDir := os.Getenv("XDG_CACHE_HOME")
	if cacheDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		cacheDir = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(cacheDir, "hydrosim")
	_ = os.MkdirAll(dir, 0o750)
	return filepath.Join(dir, "cockpit_history")
}

// session tracks the state a running REPL needs across commands:
// engine N2 inputs (read-only per-frame samples the controller doesn't
// hold onto itself) and last-known pressurization flags, so
// pushbutton/PTU transitions can be logged as edges rather than every
// tick.
type session struct {
	ac     *aircraft.A320Hydraulic
	logger *slog.Logger
	runID  uuid.UUID

	eng1N2 float64
	eng2N2 float64

	wasGreenPressurised  bool
	wasYellowPressurised bool
	wasBluePressurised   bool
	wasPtuActive         bool
}

func (s *session) run(rl *readline.Instance) {
	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			return
		}
		if err != nil {
			return
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		s.dispatch(line)
	}
}

func (s *session) dispatch(line string) {
	fields := strings.Fields(line)
	cmd := fields[0]
	args := fields[1:]

	switch cmd {
	case "edp1":
		s.setPushbutton(&s.ac.Overhead.Edp1Pb, args, "edp1")
	case "edp2":
		s.setPushbutton(&s.ac.Overhead.Edp2Pb, args, "edp2")
	case "blue_epump":
		s.setPushbutton(&s.ac.Overhead.BlueEpumpPb, args, "blue_epump")
	case "yellow_epump":
		s.setYellowEpump(args)
	case "ptu":
		s.setPushbutton(&s.ac.Overhead.PtuPb, args, "ptu")
	case "n2":
		s.setN2(args)
	case "wow", "gear":
		s.ac.Logic.WeightOnWheels = parseBool(args)
	case "parking_brake":
		s.ac.Logic.ParkingBrakeOn = parseBool(args)
	case "eng1_master":
		s.ac.Logic.Eng1MasterOn = parseBool(args)
	case "eng2_master":
		s.ac.Logic.Eng2MasterOn = parseBool(args)
	case "cargo_door":
		s.ac.Logic.CargoDoorInMotion = parseBool(args)
	case "tick":
		s.tick(args)
	case "status":
		s.printStatus(false)
	case "status-json":
		s.printStatusJSON()
	case "help":
		printHelp()
	case "exit", "quit":
		os.Exit(0)
	default:
		fmt.Printf("unknown command %q (try 'help')\n", cmd)
	}
}

func (s *session) setPushbutton(pb *aircraft.PbPosition, args []string, name string) {
	if len(args) != 1 {
		fmt.Printf("usage: %s <auto|off|on>\n", name)
		return
	}
	pos, err := parsePbPosition(args[0])
	if err != nil {
		fmt.Println(err)
		return
	}
	*pb = pos
	s.logger.Info("pushbutton set", "control", name, "position", pos.String())
}

// setYellowEpump is its own command rather than reusing setPushbutton so
// the REPL can flag the cockpit logic's inverted off->start/on->stop
// wiring right where an operator would trip over it.
func (s *session) setYellowEpump(args []string) {
	if len(args) != 1 {
		fmt.Println("usage: yellow_epump <off|on>  (NB: off starts the pump, on stops it)")
		return
	}
	pos, err := parsePbPosition(args[0])
	if err != nil {
		fmt.Println(err)
		return
	}
	s.ac.Overhead.YellowEpumpPb = pos
	s.logger.Info("pushbutton set", "control", "yellow_epump", "position", pos.String())
}

func parsePbPosition(s string) (aircraft.PbPosition, error) {
	switch s {
	case "auto":
		return aircraft.PbAuto, nil
	case "off":
		return aircraft.PbOff, nil
	case "on":
		return aircraft.PbOn, nil
	default:
		return 0, fmt.Errorf("unknown pushbutton position %q (want auto|off|on)", s)
	}
}

func parseBool(args []string) bool {
	if len(args) != 1 {
		return false
	}
	switch args[0] {
	case "true", "on", "1", "yes":
		return true
	default:
		return false
	}
}

func (s *session) setN2(args []string) {
	if len(args) != 2 {
		fmt.Println("usage: n2 <1|2> <percent>")
		return
	}
	eng, err := strconv.Atoi(args[0])
	if err != nil || (eng != 1 && eng != 2) {
		fmt.Println("engine must be 1 or 2")
		return
	}
	pct, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		fmt.Println("percent must be a number")
		return
	}
	if eng == 1 {
		s.eng1N2 = pct
	} else {
		s.eng2N2 = pct
	}
}

func (s *session) tick(args []string) {
	d := aircraft.FixedStep
	if len(args) == 1 {
		parsed, err := time.ParseDuration(args[0])
		if err != nil {
			fmt.Println("usage: tick [duration] (default 100ms)")
			return
		}
		d = parsed
	}

	s.ac.Update(aircraft.UpdateContext{
		Delta:         d,
		Eng1N2Percent: s.eng1N2,
		Eng2N2Percent: s.eng2N2,
	})
	s.logTransitions()
	s.printStatus(true)
}

// logTransitions logs pressurization and PTU activation edges rather
// than every tick's raw numbers, matching the ambient logging cadence:
// loud at state changes, silent at 10 Hz physics rate.
func (s *session) logTransitions() {
	if g := s.ac.IsGreenPressurised(); g != s.wasGreenPressurised {
		s.logger.Info("green pressurization changed", "pressurised", g)
		s.wasGreenPressurised = g
	}
	if y := s.ac.IsYellowPressurised(); y != s.wasYellowPressurised {
		s.logger.Info("yellow pressurization changed", "pressurised", y)
		s.wasYellowPressurised = y
	}
	if b := s.ac.IsBluePressurised(); b != s.wasBluePressurised {
		s.logger.Info("blue pressurization changed", "pressurised", b)
		s.wasBluePressurised = b
	}
	if active := s.ac.Ptu.Active(); active != s.wasPtuActive {
		s.logger.Info("ptu activation changed", "active", active, "active_left", s.ac.Ptu.ActiveLeft(), "active_right", s.ac.Ptu.ActiveRight())
		s.wasPtuActive = active
	}
}

func (s *session) printStatus(compact bool) {
	rows := []struct {
		name string
		loop *hydraulic.HydLoop
	}{
		{"green", s.ac.Green},
		{"yellow", s.ac.Yellow},
		{"blue", s.ac.Blue},
	}

	labels := lo.Map(rows, func(r struct {
		name string
		loop *hydraulic.HydLoop
	}, _ int) string {
		pressurised := lo.Ternary(r.loop.IsPressurised(), "UP", "--")
		return fmt.Sprintf("%-6s %7.1f psi  [%s]  reservoir %.2f gal", r.name, r.loop.Pressure(), pressurised, r.loop.ReservoirVolume())
	})

	for _, l := range labels {
		fmt.Println(l)
	}
	if !compact {
		fmt.Printf("ptu active=%v (left=%v right=%v)\n", s.ac.Ptu.Active(), s.ac.Ptu.ActiveLeft(), s.ac.Ptu.ActiveRight())
		fmt.Printf("sim time elapsed=%s lag=%s\n", s.ac.TotalSimTimeElapsed(), s.ac.LagTimeAccumulator())
	}
}

func (s *session) printStatusJSON() {
	status := map[string]any{
		"run_id": s.runID.String(),
		"loops": map[string]any{
			"green":  loopStatus(s.ac.Green),
			"yellow": loopStatus(s.ac.Yellow),
			"blue":   loopStatus(s.ac.Blue),
		},
		"ptu": map[string]any{
			"active":       s.ac.Ptu.Active(),
			"active_left":  s.ac.Ptu.ActiveLeft(),
			"active_right": s.ac.Ptu.ActiveRight(),
		},
		"sim_time_elapsed_s": s.ac.TotalSimTimeElapsed().Seconds(),
	}
	prettyPrint(status)
}

func loopStatus(l *hydraulic.HydLoop) map[string]any {
	return map[string]any{
		"pressure_psi":          l.Pressure(),
		"pressurised":           l.IsPressurised(),
		"reservoir_gal":         l.ReservoirVolume(),
		"loop_volume_gal":       l.LoopVolume(),
		"accumulator_fluid_gal": l.AccumulatorFluidVolume(),
	}
}

// prettyPrint renders a status map as indented JSON to stdout.
func prettyPrint(v map[string]any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(string(data))
}

func printHelp() {
	fmt.Println(`Commands:
  edp1 <auto|off>                start/stop EDP1
  edp2 <auto|off>                start/stop EDP2
  blue_epump <auto|off>          start/stop the blue electric pump
  yellow_epump <off|on>          start/stop the yellow electric pump (inverted: off starts it)
  ptu <auto|off>                 enable/disable PTU auto-engagement
  n2 <1|2> <percent>             set an engine's N2
  wow <true|false>               set weight-on-wheels
  parking_brake <true|false>     set parking brake
  eng1_master <true|false>       set engine 1 master switch
  eng2_master <true|false>       set engine 2 master switch
  cargo_door <true|false>        set cargo door in motion
  tick [duration]                advance the fixed-step driver (default 100ms)
  status                         print loop/PTU status
  status-json                    print status as JSON
  help                           show this help
  exit                           quit`)
}
