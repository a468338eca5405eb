package audio

import (
	"bytes"
	"testing"
)

func TestPCMToSamples(t *testing.T) {
	pcm := []byte{
		0x00, 0x40, 0x00, 0xc0, // 0.5, -0.5
		0xff, 0x7f, 0x00, 0x80, // max, min
		0x01, 0x02, // partial frame
	}
	samples := make([][2]float64, 4)

	n := pcmToSamples(samples, pcm)
	if n != 2 {
		t.Fatalf("pcmToSamples() = %d, want 2", n)
	}
	want := [][2]float64{{0.5, -0.5}, {32767.0 / 32768, -1}}
	for i, w := range want {
		if samples[i] != w {
			t.Errorf("samples[%d] = %v, want %v", i, samples[i], w)
		}
	}
}

func TestPCMToSamples_BufferBound(t *testing.T) {
	pcm := make([]byte, 4*pcmFrameSize)
	samples := make([][2]float64, 2)

	if n := pcmToSamples(samples, pcm); n != 2 {
		t.Errorf("pcmToSamples() = %d, want 2", n)
	}
}

func TestDecodeMP3_RejectsGarbage(t *testing.T) {
	if _, _, err := DecodeMP3(bytes.NewReader([]byte("not really mp3"))); err == nil {
		t.Error("DecodeMP3() should fail on non-mp3 data")
	}
}
