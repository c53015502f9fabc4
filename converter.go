// Copyright 2026 Conductor OSS
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.

// Package utf8converter rewrites text files in legacy encodings as UTF-8.
package utf8converter

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// ConfidenceThreshold is the lowest detector confidence accepted as a usable
// guess. Below it a guess is treated as unknown.
const ConfidenceThreshold = 0.75

// allowedExtensions lists the (lowercase) extensions accepted for both paths.
var allowedExtensions = map[string]bool{
	".txt": true,
}

// Converter converts one source text file into one UTF-8 target file.
type Converter struct {
	source   string
	target   string
	detector Detector
	log      logrus.FieldLogger
	fs       afero.Fs
}

// New validates the source/target pair and creates a Converter for it.
// The source must be an existing regular file and both paths must carry an
// allowed extension; otherwise an *InvalidInputError is returned.
func New(source, target string, opts ...Option) (*Converter, error) {
	c := &Converter{
		source: source,
		target: target,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.applyDefaults()

	if info, err := c.fs.Stat(source); err != nil || !info.Mode().IsRegular() {
		return nil, &InvalidInputError{Path: source, Err: ErrSourceNotFound}
	}
	if !hasAllowedExtension(source) {
		return nil, &InvalidInputError{Path: source, Err: ErrSourceExtension}
	}
	if !hasAllowedExtension(target) {
		return nil, &InvalidInputError{Path: target, Err: ErrTargetExtension}
	}

	return c, nil
}

func (c *Converter) applyDefaults() {
	if c.detector == nil {
		c.detector = NewChardetDetector()
	}
	if c.log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		c.log = l
	}
	if c.fs == nil {
		c.fs = afero.NewOsFs()
	}
}

// Source returns the path of the file being converted.
func (c *Converter) Source() string { return c.source }

// Target returns the path the UTF-8 output is written to.
func (c *Converter) Target() string { return c.target }

// DetectEncoding returns the detected encoding label of data, or ok == false
// when the detector fails or its confidence is below ConfidenceThreshold.
func (c *Converter) DetectEncoding(data []byte) (label string, ok bool) {
	return c.detectEncoding(data, c.log)
}

func (c *Converter) detectEncoding(data []byte, log logrus.FieldLogger) (string, bool) {
	guess, err := c.detector.Detect(data)
	if err != nil {
		log.WithError(err).Debug("encoding detection failed")
		return "", false
	}

	log = log.WithFields(logrus.Fields{
		"encoding":   guess.Encoding,
		"confidence": guess.Confidence,
		"language":   guess.Language,
	})
	if guess.Confidence < ConfidenceThreshold {
		log.Warn("encoding guess below confidence threshold")
		return "", false
	}
	log.Debug("encoding detected")
	return guess.Encoding, true
}

// Convert reads the source file, detects its encoding, decodes it and writes
// the text to the target as UTF-8 without a byte order mark. An existing
// target is overwritten. Detection and decode failures are reported as
// *ConversionError and leave the target untouched.
func (c *Converter) Convert() error {
	log := c.log.WithFields(logrus.Fields{
		"conversion_id": uuid.NewString(),
		"source":        c.source,
		"target":        c.target,
	})

	data, err := afero.ReadFile(c.fs, c.source)
	if err != nil {
		return fmt.Errorf("read source: %w", err)
	}

	label, ok := c.detectEncoding(data, log)
	if !ok {
		return &ConversionError{Path: c.source, Err: ErrEncodingUnknown}
	}

	text, err := decodeStrict(label, data)
	if err != nil {
		log.WithError(err).WithField("codec", label).Debug("decode failed")
		return &ConversionError{
			Path:  c.source,
			Codec: label,
			Err:   fmt.Errorf("%w: %w", ErrDecodeFailed, err),
		}
	}

	if err := afero.WriteFile(c.fs, c.target, text, 0o644); err != nil {
		return fmt.Errorf("write target: %w", err)
	}

	log.WithFields(logrus.Fields{
		"codec":     label,
		"bytes_in":  len(data),
		"bytes_out": len(text),
	}).Info("converted to UTF-8")
	return nil
}

// hasAllowedExtension checks the extension of the base name. Leading dots do
// not start an extension, so a dotfile named ".txt" has none.
func hasAllowedExtension(path string) bool {
	base := strings.TrimLeft(filepath.Base(path), ".")
	return allowedExtensions[strings.ToLower(filepath.Ext(base))]
}
