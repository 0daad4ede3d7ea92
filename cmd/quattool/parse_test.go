package main

import (
	"math"
	"os"
	"testing"

	"github.com/gonzaloivan121/quaternion-math/pkg/quat"
)

func TestParseRotationQuaternion(t *testing.T) {
	got, err := parseRotation("0.1, -2,3e-1,1")
	if err != nil {
		t.Fatalf("parseRotation failed: %v", err)
	}
	want := quat.New(0.1, -2, 0.3, 1)
	if got != want {
		t.Errorf("parseRotation = %v, want %v", got, want)
	}
}

func TestParseRotationEuler(t *testing.T) {
	got, err := parseRotation("euler:0,0,90")
	if err != nil {
		t.Fatalf("parseRotation failed: %v", err)
	}
	want := quat.FromEuler(quat.NewVector3(0, 0, 90))
	if got != want {
		t.Errorf("parseRotation = %v, want %v", got, want)
	}
}

func TestParseRotationInvalid(t *testing.T) {
	for _, s := range []string{
		"",
		"1,2,3",
		"1,2,3,4,5",
		"1,2,x,4",
		"euler:1,2",
		"euler:a,b,c",
	} {
		if _, err := parseRotation(s); err == nil {
			t.Errorf("parseRotation(%q) should fail", s)
		}
	}
}

func TestParseVector(t *testing.T) {
	got, err := parseVector("1, 0 ,-2.5")
	if err != nil {
		t.Fatalf("parseVector failed: %v", err)
	}
	if got != quat.NewVector3(1, 0, -2.5) {
		t.Errorf("parseVector = %v, want (1, 0, -2.5)", got)
	}

	if _, err := parseVector("1,2"); err == nil {
		t.Error("parseVector with 2 components should fail")
	}
}

func TestSequenceCompose(t *testing.T) {
	// Two quarter turns about Z equal a half turn.
	seq := &Sequence{Rotations: []SequenceEntry{
		{Euler: []float64{0, 0, 90}},
		{Axis: []float64{0, 0, 1}, Angle: 90},
	}}

	got, err := seq.Compose()
	if err != nil {
		t.Fatalf("Compose failed: %v", err)
	}

	want := quat.New(0, 0, 1, 0)
	if math.Abs(got.X-want.X) > 1e-9 || math.Abs(got.Y-want.Y) > 1e-9 ||
		math.Abs(got.Z-want.Z) > 1e-9 || math.Abs(got.W-want.W) > 1e-9 {
		t.Errorf("Compose = %v, want %v", got, want)
	}
}

func TestSequenceComposeOrder(t *testing.T) {
	// Entries apply in list order: the composite is last * ... * first.
	a := []float64{90, 0, 0}
	b := []float64{0, 90, 0}

	seq := &Sequence{Rotations: []SequenceEntry{{Euler: a}, {Euler: b}}}
	got, err := seq.Compose()
	if err != nil {
		t.Fatalf("Compose failed: %v", err)
	}

	qa := quat.FromEuler(quat.NewVector3(a[0], a[1], a[2]))
	qb := quat.FromEuler(quat.NewVector3(b[0], b[1], b[2]))
	want := quat.Mul(qb, qa)
	if math.Abs(got.X-want.X) > 1e-12 || math.Abs(got.W-want.W) > 1e-12 {
		t.Errorf("Compose = %v, want %v (second entry applied after first)", got, want)
	}
}

func TestSequenceEntryValidation(t *testing.T) {
	for _, e := range []SequenceEntry{
		{},
		{Quaternion: []float64{1, 2, 3}},
		{Euler: []float64{1}},
		{Axis: []float64{0, 0}},
	} {
		if _, err := e.rotation(); err == nil {
			t.Errorf("entry %+v should fail validation", e)
		}
	}
}

func TestLoadSequence(t *testing.T) {
	path := t.TempDir() + "/seq.yaml"
	content := `
rotations:
  - euler: [0, 90, 0]
  - quaternion: [0, 0, 0, 1]
  - axis: [0, 0, 1]
    angle: 45
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	seq, err := LoadSequence(path)
	if err != nil {
		t.Fatalf("LoadSequence failed: %v", err)
	}
	if len(seq.Rotations) != 3 {
		t.Fatalf("got %d rotations, want 3", len(seq.Rotations))
	}
	if seq.Rotations[2].Angle != 45 {
		t.Errorf("rotation 3 angle = %v, want 45", seq.Rotations[2].Angle)
	}

	if _, err := LoadSequence(t.TempDir() + "/missing.yaml"); err == nil {
		t.Error("LoadSequence on a missing file should fail")
	}
}

func TestLoadSequenceEmpty(t *testing.T) {
	path := t.TempDir() + "/empty.yaml"
	if err := os.WriteFile(path, []byte("rotations: []\n"), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	if _, err := LoadSequence(path); err == nil {
		t.Error("LoadSequence with no rotations should fail")
	}
}
