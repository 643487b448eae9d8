// Command sm83run loads a raw SM83 program image into memory, runs it
// headless and checks the resulting machine state.
//
// It exits 0 when the run completes and every expectation holds, 1
// when an expectation fails and 2 when the program faults or the
// command line is invalid.
package main

import (
	"errors"
	"flag"
	"fmt"
	"github.com/fatih/color"
	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"
	"github.com/thelolagemann/sm83/internal/cpu"
	"github.com/thelolagemann/sm83/internal/emulator"
	"github.com/thelolagemann/sm83/internal/expect"
	"github.com/thelolagemann/sm83/pkg/emu"
	"github.com/thelolagemann/sm83/pkg/log"
	"github.com/thelolagemann/sm83/pkg/utils"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	exitPass  = 0
	exitFail  = 1
	exitFault = 2
)

// address is a flag.Value for 16-bit addresses, accepting decimal,
// 0x hexadecimal or 0 octal.
type address uint16

func (a *address) String() string {
	return fmt.Sprintf("0x%04X", uint16(*a))
}

func (a *address) Set(s string) error {
	v, err := strconv.ParseUint(s, 0, 16)
	if err != nil {
		return err
	}
	*a = address(v)
	return nil
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("sm83run", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var start, pc, sp, until address = 0x0000, 0x0000, 0x0000, 0xFFFF
	romFile := fs.String("rom", "", "The image file to load (raw, .gz, .xz, .zst, .lz4, .br, .zip or .7z)")
	fs.Var(&start, "start", "The address to load the image at")
	fs.Var(&pc, "pc", "The entry point (defaults to -start)")
	fs.Var(&sp, "sp", "The initial stack pointer")
	fs.Var(&until, "until", "Stop once PC reaches or passes this address")
	steps := fs.Int("steps", 1<<20, "The maximum number of instructions to execute, 0 for no limit")
	trace := fs.Bool("trace", false, "Log every executed instruction")
	expectations := fs.String("expect", "", "Expected state after the run, e.g. A=70,HL=0x0F0F,ZF=0,[0x0F0F]=5")
	save := fs.String("save", "", "Write a snapshot after the run to this file, or a new save in this folder")
	load := fs.String("load", "", "Restore a snapshot from this file, or the newest save in this folder")
	level := fs.String("level", "info", "The log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return exitFault
	}

	lvl, err := log.ParseLevel(*level)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitFault
	}
	if *trace {
		lvl = logrus.DebugLevel
	}
	logger := log.NewWithLevel(stderr, lvl)

	if *romFile == "" && *load == "" {
		fmt.Fprintln(stderr, "one of -rom or -load is required")
		fs.Usage()
		return exitFault
	}

	list, err := expect.Parse(*expectations)
	if err != nil {
		logger.Errorf("%v", err)
		return exitFault
	}

	// build the emulator options from the flags
	opts := []emulator.Opt{emulator.WithLogger(logger)}
	if *trace {
		opts = append(opts, emulator.Debug())
	}
	name := imageName(*romFile)
	if *load != "" {
		snapshot, err := loadSnapshot(*load, name)
		if err != nil {
			logger.Errorf("%v", err)
			return exitFault
		}
		opts = append(opts, emulator.WithSnapshot(snapshot))
	}
	if *romFile != "" {
		image, err := utils.LoadFile(*romFile)
		if err != nil {
			logger.Errorf("%v", err)
			return exitFault
		}
		opts = append(opts, emulator.WithImage(uint16(start), image))
		if !isSet(fs, "pc") {
			pc = start
		}
	}
	if isSet(fs, "pc") || *load == "" {
		opts = append(opts, emulator.WithEntryPoint(uint16(pc)))
	}
	if isSet(fs, "sp") || *load == "" {
		opts = append(opts, emulator.WithStackPointer(uint16(sp)))
	}

	e, err := emulator.New(opts...)
	if err != nil {
		logger.Errorf("%v", err)
		return exitFault
	}

	executed, runErr := e.Run(*steps, func(c *cpu.CPU) bool { return c.PC >= uint16(until) })
	fmt.Fprintf(stdout, "%d steps, %v\n", executed, e.CPU.Registers)

	if *save != "" {
		if err := saveSnapshot(e, *save, name); err != nil {
			logger.Errorf("%v", err)
			return exitFault
		}
	}

	red := color.New(color.FgRed).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()

	if runErr != nil {
		fmt.Fprintf(stdout, "%s %v\n", red("FAULT"), runErr)
		return exitFault
	}

	if err := list.Verify(e.CPU, e.MMU); err != nil {
		var merr *multierror.Error
		if errors.As(err, &merr) {
			for _, mismatch := range merr.Errors {
				fmt.Fprintf(stdout, "%s %v\n", red("FAIL"), mismatch)
			}
		} else {
			fmt.Fprintf(stdout, "%s %v\n", red("FAIL"), err)
		}
		return exitFail
	}

	fmt.Fprintf(stdout, "%s %d expectations\n", green("PASS"), len(list))
	return exitPass
}

// imageName returns the file name of path without its extensions,
// used to name save files.
func imageName(path string) string {
	if path == "" {
		return "snapshot"
	}
	base := filepath.Base(path)
	if i := strings.Index(base, "."); i > 0 {
		base = base[:i]
	}
	return base
}

func isSet(fs *flag.FlagSet, name string) bool {
	set := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}

// loadSnapshot reads a snapshot file, or the newest save for name
// when path is a folder.
func loadSnapshot(path, name string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return utils.LoadFile(path)
	}

	saves, err := emu.LoadSaves(path, name)
	if err != nil {
		return nil, err
	}
	if len(saves) == 0 {
		return nil, fmt.Errorf("no saves for %s in %s", name, path)
	}
	return saves[0].Bytes()
}

// saveSnapshot writes the emulator state to a file, or to a new save
// for name when path is a folder.
func saveSnapshot(e *emulator.Emulator, path, name string) error {
	snapshot, err := e.SaveState()
	if err != nil {
		return err
	}

	if info, err := os.Stat(path); err == nil && info.IsDir() {
		s, err := emu.NewSave(path, name, snapshot)
		if err != nil {
			return err
		}
		e.Infof("saved state to %s", s.Path)
		return nil
	}

	if err := emu.WriteFile(path, snapshot); err != nil {
		return err
	}
	e.Infof("saved state to %s", path)
	return nil
}
