package sound

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Wave selects an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveNoise
)

// Effect durations.
const (
	FlapDuration      = 70 * time.Millisecond
	ScoreNoteDuration = 60 * time.Millisecond
	CrashDuration     = 320 * time.Millisecond
	RecordNote        = 90 * time.Millisecond
	BlipDuration      = 40 * time.Millisecond
)

// Tone returns a finite oscillator that sweeps linearly from freq to endFreq
// over d. Its output fades out over the last quarter to avoid clicks.
func Tone(freq, endFreq float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	total := rate.N(d)
	rng := rand.New(rand.NewSource(int64(freq*1000) + int64(total)))
	pos := 0
	phase := 0.0

	gen := beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			if pos >= total {
				return i, i > 0
			}
			t := float64(pos) / float64(total)

			var v float64
			switch wave {
			case WaveSine:
				v = math.Sin(2 * math.Pi * phase)
			case WaveSquare:
				v = 1
				if phase >= 0.5 {
					v = -1
				}
			case WaveNoise:
				v = rng.Float64()*2 - 1
			}

			if t > 0.75 {
				v *= (1 - t) / 0.25
			}
			samples[i][0] = v
			samples[i][1] = v

			f := freq + (endFreq-freq)*t
			phase += f / float64(rate)
			phase -= math.Floor(phase)
			pos++
		}
		return len(samples), true
	})
	return beep.Take(total, gen)
}

// withVolume scales s by a linear factor. A factor of zero or less is silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Effect returns the cue for an event, or nil if the event has none.
func Effect(e core.Event, rate beep.SampleRate, volume float64) beep.Streamer {
	var s beep.Streamer
	switch e {
	case core.EventFlap:
		s = withVolume(Tone(420, 760, FlapDuration, WaveSquare, rate), 0.25)
	case core.EventScore:
		s = beep.Seq(
			Tone(987.77, 987.77, ScoreNoteDuration, WaveSquare, rate),
			Tone(1318.51, 1318.51, ScoreNoteDuration*2, WaveSquare, rate),
		)
		s = withVolume(s, 0.3)
	case core.EventCrash:
		s = beep.Mix(
			withVolume(Tone(0, 0, CrashDuration, WaveNoise, rate), 0.35),
			withVolume(Tone(160, 60, CrashDuration, WaveSine, rate), 0.6),
		)
	case core.EventNewHighScore:
		s = beep.Seq(
			beep.Silence(rate.N(CrashDuration)),
			Tone(523.25, 523.25, RecordNote, WaveSine, rate),
			Tone(659.25, 659.25, RecordNote, WaveSine, rate),
			Tone(783.99, 783.99, RecordNote*2, WaveSine, rate),
		)
		s = withVolume(s, 0.5)
	case core.EventPause, core.EventResume:
		s = withVolume(Tone(660, 660, BlipDuration, WaveSine, rate), 0.3)
	default:
		return nil
	}
	return withVolume(s, volume)
}
