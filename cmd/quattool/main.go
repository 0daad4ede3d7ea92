// quattool is a CLI utility for quaternion rotation math.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gonzaloivan121/quaternion-math/internal/config"
	"github.com/gonzaloivan121/quaternion-math/internal/logger"
)

func main() {
	config.ParseFlags()

	args := flag.Args()
	if len(args) < 1 {
		printUsage()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	command := args[0]
	rest := args[1:]

	switch command {
	case "slerp":
		cmdSlerp(cfg, rest)
	case "rotate":
		cmdRotate(cfg, rest)
	case "compose":
		cmdCompose(cfg, rest)
	case "euler":
		cmdEuler(cfg, rest)
	case "angle":
		cmdAngle(cfg, rest)
	case "towards":
		cmdTowards(cfg, rest)
	case "inspect":
		cmdInspect(cfg, rest)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`quattool - quaternion rotation calculator

Usage:
  quattool [flags] <command> [options]

Rotations are written as "x,y,z,w" quaternion components or as Euler
degrees with an "euler:" prefix, e.g. euler:0,90,0.

Commands:
  slerp <from> <to> <t>        Spherical interpolation (-unclamped, -lerp)
  rotate <rotation> <x,y,z>    Rotate a point
  compose <r1> <r2> ...        Multiply rotations, applied left to right
  compose -f <file.yaml>       Compose a rotation sequence from a file
  euler <rotation>             Rotation as Euler angles
  euler -from <x,y,z>          Euler degrees as a quaternion
  angle <a> <b>                Arc angle between two rotations
  towards <from> <to> <deg>    Step from toward to by at most deg degrees
  inspect <rotation>           Magnitude, normalized form, conjugate, inverse

Flags:
  -config <path>   Config file (default ./quattool.yaml)
  -precision <n>   Decimal places in output
  -radians         Print angles in radians
  -compact         Single-line comma-separated output
  -debug           Enable debug logging
  -log <path>      Write diagnostics to a log file

Examples:
  quattool slerp euler:0,0,0 euler:0,0,180 0.5
  quattool rotate euler:0,0,90 1,0,0
  quattool compose -f turns.yaml
  quattool angle 0,0,0,1 0,0,1,0`)
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
