package audio

import (
	"math"
	"testing"

	"github.com/gopxl/beep"

	"lunie/parameter"
)

// TestDroneStreamsInRange verifies the fallback pad never clips and
// never drains
func TestDroneStreamsInRange(t *testing.T) {
	d := NewDrone(beep.SampleRate(parameter.AudioSampleRate))

	buf := make([][2]float64, 4096)
	for block := 0; block < 64; block++ {
		n, ok := d.Stream(buf)
		if !ok || n != len(buf) {
			t.Fatalf("stream returned n=%d ok=%v, want full block", n, ok)
		}
		for i, s := range buf {
			if math.Abs(s[0]) > 1 || math.Abs(s[1]) > 1 {
				t.Fatalf("sample %d of block %d clips: %v", i, block, s)
			}
			if s[0] != s[1] {
				t.Fatalf("drone should be centered mono, got %v", s)
			}
		}
	}
	if d.Err() != nil {
		t.Errorf("drone reported error: %v", d.Err())
	}
}

// TestDroneAttackRampsUp verifies the long attack keeps the first samples
// quiet and lets the level grow
func TestDroneAttackRampsUp(t *testing.T) {
	d := NewDrone(beep.SampleRate(parameter.AudioSampleRate))

	peak := func(blocks int) float64 {
		buf := make([][2]float64, parameter.AudioSampleRate/10)
		max := 0.0
		for b := 0; b < blocks; b++ {
			d.Stream(buf)
			for _, s := range buf {
				if a := math.Abs(s[0]); a > max {
					max = a
				}
			}
		}
		return max
	}

	early := peak(1) // first 100ms
	for i := 0; i < 40; i++ { // skip ahead past the attack
		peak(1)
	}
	late := peak(5)
	if early >= late {
		t.Errorf("attack envelope missing: early peak %f >= late peak %f", early, late)
	}
}
