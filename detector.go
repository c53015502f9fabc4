package utf8converter

import (
	"fmt"

	"github.com/saintfish/chardet"
)

// EncodingGuess is a detector's best guess at the encoding of a byte buffer.
type EncodingGuess struct {
	Encoding   string  `yaml:"encoding"`
	Confidence float64 `yaml:"confidence"`
	Language   string  `yaml:"language,omitempty"`
}

// Detector guesses the character encoding of raw bytes.
type Detector interface {
	// Detect returns the most likely encoding of data with a confidence in [0, 1].
	Detect(data []byte) (EncodingGuess, error)
}

// DetectorFunc adapts an ordinary function to the Detector interface.
type DetectorFunc func(data []byte) (EncodingGuess, error)

func (f DetectorFunc) Detect(data []byte) (EncodingGuess, error) {
	return f(data)
}

// ChardetDetector detects encodings with the ICU-derived chardet recognizers.
type ChardetDetector struct {
	detector *chardet.Detector
}

// NewChardetDetector creates a new ChardetDetector for plain text input.
func NewChardetDetector() *ChardetDetector {
	return &ChardetDetector{detector: chardet.NewTextDetector()}
}

func (d *ChardetDetector) Detect(data []byte) (EncodingGuess, error) {
	// Nothing to guess from; an empty buffer is valid UTF-8.
	if len(data) == 0 {
		return EncodingGuess{Encoding: "UTF-8", Confidence: 1}, nil
	}
	// chardet scores 7-bit text as a weak ISO-8859-1 match.
	if isASCII(data) {
		return EncodingGuess{Encoding: "ascii", Confidence: 1}, nil
	}

	best, err := d.detector.DetectBest(data)
	if err != nil {
		return EncodingGuess{}, fmt.Errorf("detect charset: %w", err)
	}

	return EncodingGuess{
		Encoding:   best.Charset,
		Confidence: float64(best.Confidence) / 100,
		Language:   best.Language,
	}, nil
}

// isASCII reports whether data is 7-bit text. NUL bytes are left to the
// detector since they usually mean UTF-16 or UTF-32 without a BOM.
func isASCII(data []byte) bool {
	for _, b := range data {
		if b > 0x7F || b == 0 {
			return false
		}
	}
	return true
}
