package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gonzaloivan121/quaternion-math/pkg/quat"
)

// parseRotation parses a rotation literal: four comma-separated
// quaternion components "x,y,z,w", or Euler degrees "euler:x,y,z".
func parseRotation(s string) (quat.Quaternion, error) {
	if rest, ok := strings.CutPrefix(s, "euler:"); ok {
		v, err := parseVector(rest)
		if err != nil {
			return quat.Quaternion{}, fmt.Errorf("euler rotation %q: %w", s, err)
		}
		return quat.FromEuler(v), nil
	}

	parts, err := parseFloats(s, 4)
	if err != nil {
		return quat.Quaternion{}, fmt.Errorf("rotation %q: %w", s, err)
	}
	return quat.New(parts[0], parts[1], parts[2], parts[3]), nil
}

// parseVector parses "x,y,z".
func parseVector(s string) (quat.Vector3, error) {
	parts, err := parseFloats(s, 3)
	if err != nil {
		return quat.Vector3{}, fmt.Errorf("vector %q: %w", s, err)
	}
	return quat.NewVector3(parts[0], parts[1], parts[2]), nil
}

func parseFloats(s string, n int) ([]float64, error) {
	fields := strings.Split(s, ",")
	if len(fields) != n {
		return nil, fmt.Errorf("want %d comma-separated components, got %d", n, len(fields))
	}

	vals := make([]float64, n)
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, fmt.Errorf("component %d: %w", i+1, err)
		}
		vals[i] = v
	}
	return vals, nil
}
