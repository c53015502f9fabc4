package utf8converter

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// Option configures a Converter.
type Option func(*Converter)

// WithDetector replaces the statistical charset detector
// (default: chardet text detector).
func WithDetector(d Detector) Option {
	return func(c *Converter) {
		c.detector = d
	}
}

// WithLogger sets the logger used for detection and conversion events
// (default: discard).
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *Converter) {
		c.log = l
	}
}

// WithFs sets the filesystem the source is read from and the target written to
// (default: the OS filesystem).
func WithFs(fs afero.Fs) Option {
	return func(c *Converter) {
		c.fs = fs
	}
}
