package sound

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// drain streams s to the end and returns the number of samples produced.
func drain(t *testing.T, s beep.Streamer) int {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		total += n
		for j := 0; j < n; j++ {
			if buf[j][0] < -1 || buf[j][0] > 1 {
				t.Fatalf("sample %d out of range: %f", total-n+j, buf[j][0])
			}
		}
		if !ok {
			return total
		}
	}
	t.Fatal("stream did not end")
	return 0
}

func TestToneLength(t *testing.T) {
	rate := beep.SampleRate(44100)
	tests := []struct {
		name string
		wave Wave
		d    time.Duration
	}{
		{"sine", WaveSine, 50 * time.Millisecond},
		{"square", WaveSquare, 70 * time.Millisecond},
		{"noise", WaveNoise, 10 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := drain(t, Tone(440, 880, tt.d, tt.wave, rate))
			if want := rate.N(tt.d); got != want {
				t.Errorf("Tone produced %d samples, want %d", got, want)
			}
		})
	}
}

func TestEffectLengths(t *testing.T) {
	rate := beep.SampleRate(22050)
	tests := []struct {
		event core.Event
		want  int
	}{
		{core.EventFlap, rate.N(FlapDuration)},
		{core.EventScore, rate.N(ScoreNoteDuration) + rate.N(ScoreNoteDuration*2)},
		{core.EventCrash, rate.N(CrashDuration)},
		{core.EventNewHighScore, rate.N(CrashDuration) + 2*rate.N(RecordNote) + rate.N(RecordNote*2)},
		{core.EventPause, rate.N(BlipDuration)},
		{core.EventResume, rate.N(BlipDuration)},
	}

	for _, tt := range tests {
		t.Run(tt.event.String(), func(t *testing.T) {
			s := Effect(tt.event, rate, 1)
			if s == nil {
				t.Fatal("Effect() returned nil")
			}
			if got := drain(t, s); got != tt.want {
				t.Errorf("effect produced %d samples, want %d", got, tt.want)
			}
		})
	}
}

func TestEffectSilentEvents(t *testing.T) {
	for _, e := range []core.Event{core.EventStart, core.EventRestart} {
		if s := Effect(e, SampleRate, 1); s != nil {
			t.Errorf("Effect(%v) should have no cue", e)
		}
	}
}

func TestMutedPlayer(t *testing.T) {
	var nilPlayer *Player
	nilPlayer.Handle([]core.Event{core.EventFlap})
	nilPlayer.Close()
	if nilPlayer.Enabled() {
		t.Error("nil player should not be enabled")
	}

	p := NewPlayer(1, nil)
	p.Handle([]core.Event{core.EventFlap, core.EventScore})
	if p.Enabled() {
		t.Error("player should be muted before Init")
	}
	if p.mixer.Len() != 0 {
		t.Errorf("muted player queued %d cues", p.mixer.Len())
	}
}
