// Package media answers introspection queries about image, video and audio
// files. The inspection engine only depends on the Prober interface; absent
// answers degrade to report warnings, never errors.
package media

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"strings"

	// Registered decoders for image.DecodeConfig.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// Prober answers media introspection queries for a path. Every method
// reports ok=false when it has no answer; that is not an error condition.
type Prober interface {
	// ImageResolution returns "{width}x{height}" for an image file.
	ImageResolution(path string) (string, bool)
	// ImageMetadata returns a summary such as "Channels: 3" for an image file.
	ImageMetadata(path string) (string, bool)
	// Resolution returns "{width}x{height}" of the video stream.
	Resolution(path string) (string, bool)
	// Metadata returns a free-form summary (format, codecs, bitrate) for
	// audio or video.
	Metadata(path string) (string, bool)
	// Duration returns a human-rendered duration for audio or video.
	Duration(path string) (string, bool)
}

// StdProber answers image queries by decoding image headers. Audio and
// video queries report no answer: probing streams needs a demuxer, which
// this build does not carry.
type StdProber struct{}

// ImageResolution implements Prober.
func (StdProber) ImageResolution(path string) (string, bool) {
	config, ok := decodeConfig(path)
	if !ok {
		return "", false
	}

	return fmt.Sprintf("%dx%d", config.Width, config.Height), true
}

// ImageMetadata implements Prober.
func (StdProber) ImageMetadata(path string) (string, bool) {
	config, ok := decodeConfig(path)
	if !ok {
		return "", false
	}

	return fmt.Sprintf("Channels: %d", channelCount(config.ColorModel)), true
}

// Resolution implements Prober.
func (StdProber) Resolution(string) (string, bool) { return "", false }

// Metadata implements Prober.
func (StdProber) Metadata(string) (string, bool) { return "", false }

// Duration implements Prober.
func (StdProber) Duration(string) (string, bool) { return "", false }

// decodeConfig reads just enough of the file to decode the image header.
func decodeConfig(path string) (image.Config, bool) {
	file, err := os.Open(path)
	if err != nil {
		return image.Config{}, false
	}
	defer file.Close()

	config, _, err := image.DecodeConfig(file)
	if err != nil {
		return image.Config{}, false
	}

	return config, true
}

// channelCount maps a color model to its channel count.
func channelCount(model color.Model) int {
	switch model {
	case color.GrayModel, color.Gray16Model:
		return 1
	case color.YCbCrModel:
		return 3
	case color.CMYKModel:
		return 4
	case color.NRGBAModel, color.NRGBA64Model, color.RGBAModel, color.RGBA64Model:
		return 4
	}

	if _, ok := model.(color.Palette); ok {
		return 3
	}

	return 4
}

// FormatDuration renders whole seconds as e.g. "1 hours 2 minutes 3 seconds",
// omitting zero-valued components. Zero renders as "0 seconds". Probers that
// produce durations share this grammar.
func FormatDuration(totalSeconds int) string {
	hours := totalSeconds / 3600
	minutes := (totalSeconds % 3600) / 60
	seconds := totalSeconds % 60

	var parts []string

	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%d hours", hours))
	}

	if minutes > 0 {
		parts = append(parts, fmt.Sprintf("%d minutes", minutes))
	}

	if seconds > 0 || len(parts) == 0 {
		parts = append(parts, fmt.Sprintf("%d seconds", seconds))
	}

	return strings.Join(parts, " ")
}
