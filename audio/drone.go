package audio

import (
	"math"

	"github.com/gopxl/beep"

	"lunie/parameter"
)

// Drone is an endless soft sine pad used when no music file is present.
// A long attack and a slow tremolo keep it ambient rather than a test tone.
type Drone struct {
	sampleRate beep.SampleRate
	pos        int
}

// NewDrone creates the fallback streamer at the given output rate
func NewDrone(sr beep.SampleRate) *Drone {
	return &Drone{sampleRate: sr}
}

// Stream fills samples with the drone waveform. Never drains.
func (d *Drone) Stream(samples [][2]float64) (n int, ok bool) {
	rate := float64(d.sampleRate)
	for i := range samples {
		t := float64(d.pos) / rate

		env := parameter.DroneGain
		if t < parameter.DroneAttack {
			env *= t / parameter.DroneAttack
		}
		// Slow wobble so the pad breathes
		env *= 0.8 + 0.2*math.Sin(2*math.Pi*parameter.DroneTremolo*t)

		// Root plus a fifth, an octave down on the detune
		v := math.Sin(2*math.Pi*parameter.DroneFreqHz*t) +
			0.5*math.Sin(2*math.Pi*parameter.DroneFreqHz*1.5*t)
		v *= env

		samples[i][0] = v
		samples[i][1] = v
		d.pos++
	}
	return len(samples), true
}

// Err always returns nil; the drone cannot fail
func (d *Drone) Err() error {
	return nil
}
