// Package audio plays the level-complete jingle. The sound is
// synthesized in code, so no audio assets ship with the binary.
package audio

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

const sampleRate = 44100

// System handles all audio playback.
type System struct {
	audioContext *audio.Context
	jingle       []byte
}

// NewSystem creates the audio system and pre-renders its sounds. The
// ebiten audio context is process-wide, so only one System should exist.
func NewSystem() *System {
	return &System{
		audioContext: audio.NewContext(sampleRate),
		jingle:       renderJingle(),
	}
}

// PlayLevelComplete fires the jingle. Playback is asynchronous and
// overlapping calls just mix.
func (s *System) PlayLevelComplete() {
	p := s.audioContext.NewPlayerFromBytes(s.jingle)
	p.Play()
}

// renderJingle synthesizes a short rising three-note arpeggio as 16-bit
// stereo PCM.
func renderJingle() []byte {
	notes := []float64{523.25, 659.25, 783.99} // C5 E5 G5
	const noteDur = 0.12
	noteSamples := int(noteDur * sampleRate)

	buf := make([]byte, 0, len(notes)*noteSamples*4)
	for _, freq := range notes {
		for i := 0; i < noteSamples; i++ {
			t := float64(i) / sampleRate
			// Linear decay envelope keeps the note ends click-free.
			env := 1.0 - float64(i)/float64(noteSamples)
			v := math.Sin(2*math.Pi*freq*t) * env * 0.3
			sample := int16(v * math.MaxInt16)
			lo, hi := byte(sample), byte(sample>>8)
			buf = append(buf, lo, hi, lo, hi)
		}
	}
	return buf
}
