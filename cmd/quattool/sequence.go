package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gonzaloivan121/quaternion-math/pkg/quat"
)

// Sequence is a YAML rotation sequence, listed in application order.
type Sequence struct {
	Rotations []SequenceEntry `yaml:"rotations"`
}

// SequenceEntry describes one rotation. Exactly one of Quaternion,
// Euler or Axis must be set; Angle accompanies Axis.
type SequenceEntry struct {
	Quaternion []float64 `yaml:"quaternion,omitempty"`
	Euler      []float64 `yaml:"euler,omitempty"`
	Axis       []float64 `yaml:"axis,omitempty"`
	Angle      float64   `yaml:"angle,omitempty"`
}

func (e SequenceEntry) rotation() (quat.Quaternion, error) {
	switch {
	case e.Quaternion != nil:
		if len(e.Quaternion) != 4 {
			return quat.Quaternion{}, fmt.Errorf("quaternion needs 4 components, got %d", len(e.Quaternion))
		}
		return quat.New(e.Quaternion[0], e.Quaternion[1], e.Quaternion[2], e.Quaternion[3]), nil
	case e.Euler != nil:
		if len(e.Euler) != 3 {
			return quat.Quaternion{}, fmt.Errorf("euler needs 3 components, got %d", len(e.Euler))
		}
		return quat.FromEuler(quat.NewVector3(e.Euler[0], e.Euler[1], e.Euler[2])), nil
	case e.Axis != nil:
		if len(e.Axis) != 3 {
			return quat.Quaternion{}, fmt.Errorf("axis needs 3 components, got %d", len(e.Axis))
		}
		return quat.FromAxisAngle(quat.NewVector3(e.Axis[0], e.Axis[1], e.Axis[2]), e.Angle), nil
	default:
		return quat.Quaternion{}, fmt.Errorf("entry has no quaternion, euler or axis")
	}
}

// LoadSequence reads a rotation sequence from a YAML file.
func LoadSequence(path string) (*Sequence, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var seq Sequence
	if err := yaml.Unmarshal(data, &seq); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if len(seq.Rotations) == 0 {
		return nil, fmt.Errorf("%s: no rotations listed", path)
	}
	return &seq, nil
}

// Compose multiplies the sequence into a single rotation. Entries apply
// in list order, so the composite is the last entry times the ones
// before it.
func (s *Sequence) Compose() (quat.Quaternion, error) {
	result := quat.Identity()
	for i, e := range s.Rotations {
		q, err := e.rotation()
		if err != nil {
			return quat.Quaternion{}, fmt.Errorf("rotation %d: %w", i+1, err)
		}
		result = quat.Mul(q, result)
	}
	return result, nil
}
