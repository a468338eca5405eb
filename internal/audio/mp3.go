package audio

import (
	"encoding/binary"
	"errors"
	"io"

	"github.com/gopxl/beep/v2"
	"github.com/llehouerou/go-mp3"
)

// Decoder turns a fetched song into a seekable beep stream. Handle fetches
// the whole song through its Opener first, so r is always in memory.
type Decoder func(r io.ReadSeeker) (beep.StreamSeekCloser, beep.Format, error)

// pcmFrameSize is one stereo frame of 16-bit little-endian PCM.
const pcmFrameSize = 4

// mp3Stream plays a song decoded by go-mp3. Rewinding on skip back and
// replay after the end seek the decoder, never the network.
type mp3Stream struct {
	dec    *mp3.Decoder
	length int // samples, 0 when unknown
	pcm    []byte
	err    error
}

// DecodeMP3 decodes a song fetched by an Opener. go-mp3 always produces
// 16-bit stereo.
func DecodeMP3(r io.ReadSeeker) (beep.StreamSeekCloser, beep.Format, error) {
	dec, err := mp3.NewDecoder(r)
	if err != nil {
		return nil, beep.Format{}, err
	}
	if dec.SampleRate() <= 0 {
		return nil, beep.Format{}, errors.New("mp3: invalid sample rate")
	}

	s := &mp3Stream{dec: dec}
	if n := dec.SampleCount(); n > 0 {
		s.length = int(n)
	}
	format := beep.Format{
		SampleRate:  beep.SampleRate(dec.SampleRate()),
		NumChannels: 2,
		Precision:   2,
	}
	return s, format, nil
}

func (s *mp3Stream) Stream(samples [][2]float64) (int, bool) {
	if s.err != nil {
		return 0, false
	}
	want := len(samples) * pcmFrameSize
	if cap(s.pcm) < want {
		s.pcm = make([]byte, want)
	}
	s.pcm = s.pcm[:want]

	read, err := io.ReadFull(s.dec, s.pcm)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		s.err = err
		return 0, false
	}
	n := pcmToSamples(samples, s.pcm[:read])
	return n, n > 0
}

// pcmToSamples converts whole 16-bit stereo frames of pcm into samples and
// returns how many were written.
func pcmToSamples(samples [][2]float64, pcm []byte) int {
	n := min(len(pcm)/pcmFrameSize, len(samples))
	for i := range n {
		frame := pcm[i*pcmFrameSize:]
		samples[i][0] = float64(int16(binary.LittleEndian.Uint16(frame))) / 32768   //nolint:gosec // pcm sample
		samples[i][1] = float64(int16(binary.LittleEndian.Uint16(frame[2:]))) / 32768 //nolint:gosec // pcm sample
	}
	return n
}

func (s *mp3Stream) Err() error { return s.err }

func (s *mp3Stream) Len() int { return s.length }

func (s *mp3Stream) Position() int { return int(s.dec.SamplePosition()) }

func (s *mp3Stream) Seek(p int) error {
	if err := s.dec.SeekToSample(int64(min(max(p, 0), s.length))); err != nil {
		return err
	}
	s.err = nil
	return nil
}

// Close releases nothing; the song bytes belong to the Handle.
func (s *mp3Stream) Close() error { return nil }
