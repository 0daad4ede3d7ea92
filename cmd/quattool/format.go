package main

import (
	"fmt"
	"math"

	"github.com/gonzaloivan121/quaternion-math/internal/config"
	"github.com/gonzaloivan121/quaternion-math/pkg/quat"
)

func formatQuaternion(cfg *config.Config, q quat.Quaternion) string {
	p := cfg.Output.Precision
	if cfg.Output.Compact {
		return fmt.Sprintf("%.*f,%.*f,%.*f,%.*f", p, q.X, p, q.Y, p, q.Z, p, q.W)
	}
	return fmt.Sprintf("(%.*f, %.*f, %.*f, %.*f)", p, q.X, p, q.Y, p, q.Z, p, q.W)
}

func formatVector(cfg *config.Config, v quat.Vector3) string {
	p := cfg.Output.Precision
	if cfg.Output.Compact {
		return fmt.Sprintf("%.*f,%.*f,%.*f", p, v.X, p, v.Y, p, v.Z)
	}
	return fmt.Sprintf("(%.*f, %.*f, %.*f)", p, v.X, p, v.Y, p, v.Z)
}

// formatAngle takes degrees and renders them in the configured unit.
func formatAngle(cfg *config.Config, degrees float64) string {
	p := cfg.Output.Precision
	if cfg.Output.Unit == "radians" {
		return fmt.Sprintf("%.*f rad", p, degrees*math.Pi/180)
	}
	return fmt.Sprintf("%.*f deg", p, degrees)
}

// formatEuler renders Euler angles (given in degrees) in the configured
// unit, without a unit suffix per component.
func formatEuler(cfg *config.Config, e quat.Vector3) string {
	if cfg.Output.Unit == "radians" {
		const toRad = math.Pi / 180
		e = quat.NewVector3(e.X*toRad, e.Y*toRad, e.Z*toRad)
	}
	return formatVector(cfg, e)
}
