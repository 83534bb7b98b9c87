package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines output latency
	AudioBufferDuration = 100 * time.Millisecond
)

// Playback
const (
	// MusicVolume is applied as effects.Volume exponent steps, base 2.
	// -1 halves the perceived loudness of the decoded track.
	MusicVolume = -1.0

	// MusicBaseName is the track looked up next to the binary, with
	// .mp3/.wav/.ogg extensions tried in order
	MusicBaseName = "night_theme"
)

// Fallback drone
const (
	DroneFreqHz  = 110.0
	DroneGain    = 0.08
	DroneAttack  = 3.0 // seconds
	DroneTremolo = 0.1 // slow amplitude wobble, Hz
)
