package palette

import (
	"math"
	"sync"
	"testing"

	"github.com/jmylchreest/monet/internal/colour"
	"github.com/jmylchreest/monet/internal/colour/hct"
)

func TestTonalBoundaries(t *testing.T) {
	p := New(27, 113)
	if got := p.Tone(0); got != 0xFF000000 {
		t.Errorf("Tone(0) = %#v, want black", got)
	}
	if got := p.Tone(100); got != 0xFFFFFFFF {
		t.Errorf("Tone(100) = %#v, want white", got)
	}
}

func TestTonalToneLightness(t *testing.T) {
	p := New(265, 48)
	for _, tone := range StandardTones {
		got := colour.LstarFromARGB(p.Tone(tone))
		if math.Abs(got-tone) > 0.5 {
			t.Errorf("Tone(%v) has lightness %v", tone, got)
		}
	}
}

func TestTonalCaches(t *testing.T) {
	p := New(27, 113)
	first := p.Tone(40)
	for i := 0; i < 10; i++ {
		if got := p.Tone(40); got != first {
			t.Fatalf("Tone(40) = %#v on repeat, want %#v", got, first)
		}
	}
	if p.solves != 1 {
		t.Errorf("solver ran %d times for one tone, want 1", p.solves)
	}
}

func TestTonalConcurrent(t *testing.T) {
	p := New(142, 60)
	want := New(142, 60).Tone(40)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, tone := range StandardTones {
				p.Tone(tone)
			}
			if got := p.Tone(40); got != want {
				t.Errorf("concurrent Tone(40) = %#v, want %#v", got, want)
			}
		}()
	}
	wg.Wait()
}

func TestTonesShareHue(t *testing.T) {
	// Colours across the tone scale differ only in lightness, never in hue.
	p := FromARGB(0xFFFF0000)
	reference := hct.FromARGB(p.Tone(40)).Hue()
	for _, tone := range []float64{20, 40, 60, 80} {
		got := hct.FromARGB(p.Tone(tone)).Hue()
		if colour.DifferenceDegrees(got, reference) > 2 {
			t.Errorf("Tone(%v) has hue %v, want near %v", tone, got, reference)
		}
	}
}

func TestNewSanitizesHue(t *testing.T) {
	if got := New(370, 48).Hue(); got != 10 {
		t.Errorf("New(370, 48).Hue() = %v, want 10", got)
	}
	if got := New(-90, 48).Hue(); got != 270 {
		t.Errorf("New(-90, 48).Hue() = %v, want 270", got)
	}
}

func TestFromARGBMatchesKeyColour(t *testing.T) {
	source := colour.ARGB(0xFF4285F4)
	p := FromARGB(source)
	if p.Hue() < 0 || p.Hue() >= 360 {
		t.Errorf("Hue() = %v, want [0, 360)", p.Hue())
	}
	if p.Chroma() <= 0 {
		t.Errorf("Chroma() = %v, want positive", p.Chroma())
	}
	// The key colour sits at the mid tone.
	key := p.KeyColor()
	if got := colour.LstarFromARGB(key); math.Abs(got-50) > 0.5 {
		t.Errorf("KeyColor() has lightness %v, want 50", got)
	}
}
