// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.
//
// *** NOTE: all historical versions of this file, as found in any
// git repository, are also covered by the licence, even when this
// notice is not present ***

package supercharger

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
	"github.com/jetsetilly/gopher2600core/logger"
)

type pcmData struct {
	totalTime  float64 // in seconds
	sampleRate float64

	// data is mono data (taken from the left channel in the case of stereo
	// source files)
	data []float32
}

// getPCM decodes WAV or MP3 data. The format is decided by the leading bytes
// of the data.
func getPCM(data []uint8) (pcmData, error) {
	var p pcmData
	var err error

	if bytes.HasPrefix(data, []uint8("RIFF")) {
		p, err = getPCMfromWAV(data)
	} else {
		p, err = getPCMfromMP3(data)
	}
	if err != nil {
		return p, err
	}

	logger.Logf(logger.Allow, soundloadLogTag, "sample rate: %0.2fHz", p.sampleRate)
	logger.Logf(logger.Allow, soundloadLogTag, "total time: %.02fs", p.totalTime)

	return p, nil
}

func getPCMfromWAV(data []uint8) (pcmData, error) {
	var p pcmData

	dec := wav.NewDecoder(bytes.NewReader(data))
	if dec == nil {
		return p, fmt.Errorf("wav: error decoding")
	}

	if !dec.IsValidFile() {
		return p, fmt.Errorf("wav: not a valid wav file")
	}

	logger.Log(logger.Allow, soundloadLogTag, "loading from wav file")

	// load all data at once
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return p, fmt.Errorf("wav: %w", err)
	}
	floatBuf := buf.AsFloat32Buffer()

	numChans := int(dec.NumChans)
	if numChans < 1 {
		numChans = 1
	}

	// copy first channel only of data stream
	p.data = make([]float32, 0, len(floatBuf.Data)/numChans)
	for i := 0; i < len(floatBuf.Data); i += numChans {
		p.data = append(p.data, floatBuf.Data[i])
	}

	p.sampleRate = float64(dec.SampleRate)
	if p.sampleRate > 0 {
		p.totalTime = float64(len(p.data)) / p.sampleRate
	}

	return p, nil
}

func getPCMfromMP3(data []uint8) (pcmData, error) {
	var p pcmData

	dec, err := mp3.NewDecoder(bytes.NewReader(data))
	if err != nil {
		return p, fmt.Errorf("mp3: %w", err)
	}

	logger.Log(logger.Allow, soundloadLogTag, "loading from mp3 file")

	// the stream is always formatted as 16bit little endian with two
	// channels, even if the source is a single channel MP3. a sample
	// therefore always consists of four bytes and we only want the left
	// channel
	chunk := make([]byte, 4096)
	for {
		n, err := io.ReadFull(dec, chunk)
		for i := 0; i+1 < n; i += 4 {
			f := int16(uint16(chunk[i]) | uint16(chunk[i+1])<<8)
			p.data = append(p.data, float32(f))
		}
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				break // for loop
			}
			return p, fmt.Errorf("mp3: %w", err)
		}
	}

	p.sampleRate = float64(dec.SampleRate())
	if p.sampleRate > 0 {
		p.totalTime = float64(len(p.data)) / p.sampleRate
	}

	return p, nil
}
