package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"strconv"

	"go.uber.org/zap"

	"github.com/gonzaloivan121/quaternion-math/internal/config"
	"github.com/gonzaloivan121/quaternion-math/internal/logger"
	"github.com/gonzaloivan121/quaternion-math/pkg/quat"
)

func cmdSlerp(cfg *config.Config, args []string) {
	fs := flag.NewFlagSet("slerp", flag.ExitOnError)
	unclamped := fs.Bool("unclamped", false, "Allow t outside [0,1] (extrapolation)")
	useLerp := fs.Bool("lerp", false, "Normalized linear interpolation instead of spherical")
	fs.Parse(args)

	if fs.NArg() < 3 {
		fmt.Fprintln(os.Stderr, "Usage: quattool slerp [-unclamped] [-lerp] <from> <to> <t>")
		os.Exit(1)
	}

	from, err := parseRotation(fs.Arg(0))
	if err != nil {
		fatalf("Error: %v", err)
	}
	to, err := parseRotation(fs.Arg(1))
	if err != nil {
		fatalf("Error: %v", err)
	}
	t, err := strconv.ParseFloat(fs.Arg(2), 64)
	if err != nil {
		fatalf("Error: t %q: %v", fs.Arg(2), err)
	}

	var result quat.Quaternion
	switch {
	case *useLerp && *unclamped:
		result = quat.LerpUnclamped(from, to, t)
	case *useLerp:
		result = quat.Lerp(from, to, t)
	case *unclamped:
		result = quat.SlerpUnclamped(from, to, t)
	default:
		result = quat.Slerp(from, to, t)
	}

	logger.Debug("interpolated",
		zap.Float64("t", t),
		zap.Float64("arc", quat.Angle(from, to)),
		zap.Bool("lerp", *useLerp))

	fmt.Println(formatQuaternion(cfg, result))
}

func cmdRotate(cfg *config.Config, args []string) {
	if len(args) < 2 {
		fmt.Fprintln(os.Stderr, "Usage: quattool rotate <rotation> <x,y,z>")
		os.Exit(1)
	}

	rotation, err := parseRotation(args[0])
	if err != nil {
		fatalf("Error: %v", err)
	}
	point, err := parseVector(args[1])
	if err != nil {
		fatalf("Error: %v", err)
	}

	// RotatePoint assumes a unit rotation; warn rather than silently
	// return skewed output.
	if m := rotation.Magnitude(); math.Abs(m-1) > 1e-6 {
		logger.Warn("rotation is not normalized", zap.Float64("magnitude", m))
	}

	fmt.Println(formatVector(cfg, quat.RotatePoint(rotation, point)))
}

func cmdCompose(cfg *config.Config, args []string) {
	fs := flag.NewFlagSet("compose", flag.ExitOnError)
	file := fs.String("f", "", "YAML rotation sequence file")
	fs.Parse(args)

	var result quat.Quaternion

	if *file != "" {
		seq, err := LoadSequence(*file)
		if err != nil {
			fatalf("Error: %v", err)
		}
		logger.Debug("loaded sequence", zap.String("file", *file), zap.Int("rotations", len(seq.Rotations)))

		result, err = seq.Compose()
		if err != nil {
			fatalf("Error: %v", err)
		}
	} else {
		if fs.NArg() < 2 {
			fmt.Fprintln(os.Stderr, "Usage: quattool compose <r1> <r2> ... | compose -f <file.yaml>")
			os.Exit(1)
		}

		result = quat.Identity()
		for _, arg := range fs.Args() {
			q, err := parseRotation(arg)
			if err != nil {
				fatalf("Error: %v", err)
			}
			result = quat.Mul(q, result)
		}
	}

	fmt.Println(formatQuaternion(cfg, result))
}

func cmdEuler(cfg *config.Config, args []string) {
	fs := flag.NewFlagSet("euler", flag.ExitOnError)
	from := fs.String("from", "", "Euler degrees x,y,z to convert to a quaternion")
	fs.Parse(args)

	if *from != "" {
		e, err := parseVector(*from)
		if err != nil {
			fatalf("Error: %v", err)
		}
		fmt.Println(formatQuaternion(cfg, quat.FromEuler(e)))
		return
	}

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: quattool euler <rotation> | euler -from <x,y,z>")
		os.Exit(1)
	}

	q, err := parseRotation(fs.Arg(0))
	if err != nil {
		fatalf("Error: %v", err)
	}
	fmt.Println(formatEuler(cfg, q.EulerAngles()))
}

func cmdAngle(cfg *config.Config, args []string) {
	if len(args) < 2 {
		fmt.Fprintln(os.Stderr, "Usage: quattool angle <a> <b>")
		os.Exit(1)
	}

	a, err := parseRotation(args[0])
	if err != nil {
		fatalf("Error: %v", err)
	}
	b, err := parseRotation(args[1])
	if err != nil {
		fatalf("Error: %v", err)
	}

	angle := quat.Angle(a, b)
	if math.IsNaN(angle) {
		fatalf("Error: angle is undefined for zero-magnitude rotations")
	}
	fmt.Println(formatAngle(cfg, angle))
}

func cmdTowards(cfg *config.Config, args []string) {
	if len(args) < 3 {
		fmt.Fprintln(os.Stderr, "Usage: quattool towards <from> <to> <maxDegrees>")
		os.Exit(1)
	}

	from, err := parseRotation(args[0])
	if err != nil {
		fatalf("Error: %v", err)
	}
	to, err := parseRotation(args[1])
	if err != nil {
		fatalf("Error: %v", err)
	}
	maxDeg, err := strconv.ParseFloat(args[2], 64)
	if err != nil {
		fatalf("Error: maxDegrees %q: %v", args[2], err)
	}

	fmt.Println(formatQuaternion(cfg, quat.RotateTowards(from, to, maxDeg)))
}

func cmdInspect(cfg *config.Config, args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: quattool inspect <rotation>")
		os.Exit(1)
	}

	q, err := parseRotation(args[0])
	if err != nil {
		fatalf("Error: %v", err)
	}

	p := cfg.Output.Precision
	fmt.Printf("Quaternion:  %s\n", formatQuaternion(cfg, q))
	fmt.Printf("Magnitude:   %.*f\n", p, q.Magnitude())
	fmt.Printf("Normalized:  %s\n", formatQuaternion(cfg, q.Normalized()))
	fmt.Printf("Conjugate:   %s\n", formatQuaternion(cfg, q.Conjugate()))
	fmt.Printf("Inverse:     %s\n", formatQuaternion(cfg, q.Inverse()))
	fmt.Printf("Euler:       %s\n", formatEuler(cfg, q.EulerAngles()))
}
