package utf8converter

import (
	"fmt"

	"github.com/gabriel-vasile/mimetype"
	"github.com/spf13/afero"
)

// ProbeResult describes the detected encoding of a file.
type ProbeResult struct {
	Path     string        `yaml:"path"`
	MIMEType string        `yaml:"mime_type"`
	Guess    EncodingGuess `yaml:"guess"`
}

// Usable reports whether the guess clears ConfidenceThreshold.
func (r *ProbeResult) Usable() bool {
	return r.Guess.Confidence >= ConfidenceThreshold
}

// Probe reads the file at path and reports the detector's best guess for it
// without applying the confidence threshold. Only WithDetector, WithLogger and
// WithFs are meaningful here.
func Probe(path string, opts ...Option) (*ProbeResult, error) {
	c := &Converter{}
	for _, opt := range opts {
		opt(c)
	}
	c.applyDefaults()

	data, err := afero.ReadFile(c.fs, path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	guess, err := c.detector.Detect(data)
	if err != nil {
		return nil, err
	}

	result := &ProbeResult{
		Path:     path,
		MIMEType: mimetype.Detect(data).String(),
		Guess:    guess,
	}
	c.log.WithField("path", path).WithField("mime", result.MIMEType).Debug("probed file")
	return result, nil
}
