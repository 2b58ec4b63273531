// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.


package tone

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
	"github.com/jetsetilly/gopher8/logger"
)

const logTag = "tone"

// ErrSampleFormat is returned when the sample file is not a WAV or MP3 file.
var ErrSampleFormat = errors.New("unsupported sample format")

// Sample is mono PCM data with values in the range -1.0 to 1.0.
type Sample struct {
	Data       []float32
	SampleRate int
}

// LoadSample decodes a WAV or MP3 file. Only the first channel of a
// multi-channel file is used.
func LoadSample(filename string) (Sample, error) {
	f, err := os.Open(filename)
	if err != nil {
		return Sample{}, fmt.Errorf("tone: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".wav":
		return decodeWAV(f)
	case ".mp3":
		return decodeMP3(f)
	}

	return Sample{}, fmt.Errorf("tone: %w: %s", ErrSampleFormat, filepath.Ext(filename))
}

func decodeWAV(r io.ReadSeeker) (Sample, error) {
	var s Sample

	dec := wav.NewDecoder(r)
	if dec == nil {
		return s, fmt.Errorf("tone: wav: error decoding")
	}

	if !dec.IsValidFile() {
		return s, fmt.Errorf("tone: wav: not a valid wav file")
	}

	logger.Log(logger.Allow, logTag, "loading sample from wav file")

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return s, fmt.Errorf("tone: wav: %w", err)
	}

	numChans := int(dec.NumChans)
	if numChans < 1 {
		return s, fmt.Errorf("tone: wav: no channels")
	}

	// integer samples are scaled by the bit depth of the source file
	scale := float32(int(1) << (dec.BitDepth - 1))

	// copy first channel only of data stream
	s.Data = make([]float32, 0, len(buf.Data)/numChans)
	for i := 0; i < len(buf.Data); i += numChans {
		s.Data = append(s.Data, float32(buf.Data[i])/scale)
	}
	s.SampleRate = int(dec.SampleRate)

	logger.Logf(logger.Allow, logTag, "sample rate: %dHz", s.SampleRate)

	return s, nil
}

func decodeMP3(r io.Reader) (Sample, error) {
	var s Sample

	dec, err := mp3.NewDecoder(r)
	if err != nil {
		return s, fmt.Errorf("tone: mp3: %w", err)
	}

	logger.Log(logger.Allow, logTag, "loading sample from mp3 file")

	// the stream is always formatted as 16bit little endian with two
	// channels, even if the source is single channel
	chunk := make([]byte, 4096)
	for {
		n, err := dec.Read(chunk)

		// the left channel only. four bytes per sample frame
		for i := 0; i+1 < n; i += 4 {
			v := int16(uint16(chunk[i]) | uint16(chunk[i+1])<<8)
			s.Data = append(s.Data, float32(v)/32768.0)
		}

		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return s, fmt.Errorf("tone: mp3: %w", err)
		}
	}
	s.SampleRate = dec.SampleRate()

	logger.Logf(logger.Allow, logTag, "sample rate: %dHz", s.SampleRate)

	return s, nil
}
