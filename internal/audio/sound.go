package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// Sound names an effect the game can play.
type Sound uint8

const (
	SoundNone   Sound = iota
	SoundPickup       // item taken into the backpack
	SoundOpen         // a panel opened
	SoundClose        // a panel closed
	SoundDoor         // level transition
	SoundReject       // the backpack refused an item
	SoundBlip         // volume slider moved
)

func (s Sound) streamer() beep.Streamer {
	switch s {
	case SoundPickup:
		return beep.Seq(chime(880, 70*time.Millisecond), chime(1320, 140*time.Millisecond))
	case SoundOpen:
		return chime(660, 60*time.Millisecond)
	case SoundClose:
		return chime(440, 60*time.Millisecond)
	case SoundDoor:
		return beep.Seq(chime(330, 120*time.Millisecond), chime(247, 200*time.Millisecond))
	case SoundReject:
		return chime(150, 150*time.Millisecond)
	case SoundBlip:
		return chime(990, 30*time.Millisecond)
	}
	return nil
}

// chime is a sine tone with a fast attack and exponential decay.
func chime(freq float64, d time.Duration) beep.Streamer {
	total := SampleRate.N(d)
	attack := SampleRate.N(5 * time.Millisecond)
	pos := 0
	return beep.Take(total, beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			t := float64(pos) / float64(SampleRate)
			env := math.Exp(-4 * float64(pos) / float64(total))
			if pos < attack {
				env *= float64(pos) / float64(attack)
			}
			v := 0.25 * env * math.Sin(2*math.Pi*freq*t)
			samples[i] = [2]float64{v, v}
			pos++
		}
		return len(samples), true
	}))
}
