package audio

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/vorbis"
	"github.com/gopxl/beep/wav"
	"go.uber.org/zap"

	"lunie/parameter"
)

// Player loops a background track through the speaker. A missing track is
// not an error: the player falls back to a generated drone, and a failed
// audio device leaves the widget running silent.
type Player struct {
	logger      *zap.SugaredLogger
	sampleRate  beep.SampleRate
	initialized bool
	file        *os.File
}

// NewPlayer prepares the speaker. Initialization failure is reported but
// recoverable; Start then becomes a no-op.
func NewPlayer(logger *zap.SugaredLogger) *Player {
	p := &Player{
		logger:     logger,
		sampleRate: beep.SampleRate(parameter.AudioSampleRate),
	}
	if err := speaker.Init(p.sampleRate, p.sampleRate.N(parameter.AudioBufferDuration)); err != nil {
		logger.Warnw("audio init failed, running silent", "error", err)
		return p
	}
	p.initialized = true
	return p
}

// Start begins looping the night theme found in dir, or the fallback
// drone when no track exists
func (p *Player) Start(dir string) {
	if !p.initialized {
		return
	}
	streamer, err := p.openTrack(dir)
	if err != nil {
		p.logger.Infow("no music track, using drone", "reason", err)
		streamer = NewDrone(p.sampleRate)
	}
	speaker.Play(&effects.Volume{
		Streamer: streamer,
		Base:     2,
		Volume:   parameter.MusicVolume,
	})
}

// openTrack tries the original's extension order: mp3, wav, ogg
func (p *Player) openTrack(dir string) (beep.Streamer, error) {
	for _, ext := range []string{".mp3", ".wav", ".ogg"} {
		path := filepath.Join(dir, parameter.MusicBaseName+ext)
		f, err := os.Open(path)
		if err != nil {
			continue
		}

		var (
			stream beep.StreamSeekCloser
			format beep.Format
		)
		switch ext {
		case ".mp3":
			stream, format, err = mp3.Decode(f)
		case ".wav":
			stream, format, err = wav.Decode(f)
		case ".ogg":
			stream, format, err = vorbis.Decode(f)
		}
		if err != nil {
			f.Close()
			p.logger.Warnw("music decode failed", "path", path, "error", err)
			continue
		}

		p.file = f
		p.logger.Infow("music loaded", "path", path)
		looped := beep.Loop(-1, stream)
		if format.SampleRate != p.sampleRate {
			return beep.Resample(4, format.SampleRate, p.sampleRate, looped), nil
		}
		return looped, nil
	}
	return nil, fmt.Errorf("no %s.{mp3,wav,ogg} in %s", parameter.MusicBaseName, dir)
}

// Close stops playback and releases the device
func (p *Player) Close() {
	if p.initialized {
		speaker.Close()
	}
	if p.file != nil {
		p.file.Close()
	}
}
