package realtime

import (
	"bytes"
	"encoding/binary"
	"math"
)

const (
	toneFrequency  = 880.0
	toneDuration   = 0.3
	toneSampleRate = 8000
	toneAmplitude  = 0.4
)

// buildAlertTone synthesizes a short sine tone as a 16-bit mono WAV buffer.
func buildAlertTone() []byte {
	sampleCount := int(toneDuration * toneSampleRate)
	samples := make([]int16, sampleCount)

	for i := range samples {
		t := float64(i) / toneSampleRate
		// linear fade-out keeps the tone from clicking at the end
		fade := 1.0 - float64(i)/float64(sampleCount)
		samples[i] = int16(toneAmplitude * fade * math.Sin(2*math.Pi*toneFrequency*t) * math.MaxInt16)
	}

	dataSize := uint32(sampleCount * 2)
	buf := &bytes.Buffer{}

	buf.WriteString("RIFF")
	binary.Write(buf, binary.LittleEndian, uint32(36+dataSize))
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	binary.Write(buf, binary.LittleEndian, uint32(16))
	binary.Write(buf, binary.LittleEndian, uint16(1))
	binary.Write(buf, binary.LittleEndian, uint16(1))
	binary.Write(buf, binary.LittleEndian, uint32(toneSampleRate))
	binary.Write(buf, binary.LittleEndian, uint32(toneSampleRate*2))
	binary.Write(buf, binary.LittleEndian, uint16(2))
	binary.Write(buf, binary.LittleEndian, uint16(16))

	buf.WriteString("data")
	binary.Write(buf, binary.LittleEndian, dataSize)
	binary.Write(buf, binary.LittleEndian, samples)

	return buf.Bytes()
}
