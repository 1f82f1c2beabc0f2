package metadata

import (
	"bytes"
	"context"
	"encoding/json"
	"os/exec"
	"strconv"
	"time"
)

// FFProbeProvider recovers duration, bitrate, and sample rate by shelling
// out to ffprobe, adapting the exec.CommandContext + stderr-capture
// pattern used elsewhere in this module for invoking media tooling. Every
// failure mode (missing binary, bad exit code, unparsable output) is
// swallowed and reported as the default Record (filename-stem title,
// 44100 Hz sample rate, one disc), per the Provider contract.
type FFProbeProvider struct {
	Binary  string
	Timeout time.Duration
}

func NewFFProbeProvider() *FFProbeProvider {
	return &FFProbeProvider{Binary: "ffprobe", Timeout: 10 * time.Second}
}

type ffprobeFormat struct {
	Duration string `json:"duration"`
	BitRate  string `json:"bit_rate"`
}

type ffprobeStream struct {
	CodecType  string `json:"codec_type"`
	SampleRate string `json:"sample_rate"`
}

type ffprobeOutput struct {
	Format  ffprobeFormat   `json:"format"`
	Streams []ffprobeStream `json:"streams"`
}

func (p *FFProbeProvider) Read(path string) Record {
	rec := Record{Title: stemOf(path), SampleRate: defaultSampleRate, TotalDiscs: defaultTotalDiscs}

	binary := p.Binary
	if binary == "" {
		binary = "ffprobe"
	}
	timeout := p.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, binary,
		"-v", "quiet",
		"-print_format", "json",
		"-show_format",
		"-show_streams",
		path,
	)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return rec
	}

	var out ffprobeOutput
	if err := json.Unmarshal(stdout.Bytes(), &out); err != nil {
		return rec
	}

	if seconds, err := strconv.ParseFloat(out.Format.Duration, 64); err == nil {
		rec.DurationMS = uint32(seconds * 1000)
	}
	if bitrate, err := strconv.ParseUint(out.Format.BitRate, 10, 32); err == nil {
		rec.Bitrate = uint32(bitrate / 1000)
	}
	for _, s := range out.Streams {
		if s.CodecType != "audio" {
			continue
		}
		if rate, err := strconv.ParseUint(s.SampleRate, 10, 32); err == nil {
			rec.SampleRate = uint32(rate)
		}
		break
	}
	return rec
}
