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

package utf8converter

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput matches every InvalidInputError.
	ErrInvalidInput = errors.New("invalid input")
	// ErrConversion matches every ConversionError.
	ErrConversion = errors.New("conversion failed")

	ErrSourceNotFound  = errors.New("source file's path is incorrect, given file does not exist")
	ErrSourceExtension = errors.New("source file's extension is not allowed, try with .txt")
	ErrTargetExtension = errors.New("target file's extension is not allowed, try with .txt")

	ErrEncodingUnknown = errors.New("unable to detect an encoding type")
	ErrDecodeFailed    = errors.New("unable to decode file")
)

// InvalidInputError is returned by New when a path precondition is violated.
type InvalidInputError struct {
	Path string
	Err  error
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("%v: %s", e.Err, e.Path)
}

func (e *InvalidInputError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is match ErrInvalidInput in addition to the wrapped reason.
func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}

// ConversionError is returned by Convert when no usable encoding was detected
// or the bytes could not be decoded with the detected codec.
type ConversionError struct {
	Path  string
	Codec string
	Err   error
}

func (e *ConversionError) Error() string {
	switch {
	case errors.Is(e.Err, ErrEncodingUnknown):
		return fmt.Sprintf("unable to detect an encoding type for %s", e.Path)
	case e.Codec != "":
		return fmt.Sprintf("unable to decode file: %s using codec %s", e.Path, e.Codec)
	}
	return fmt.Sprintf("%v: %s", e.Err, e.Path)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

func (e *ConversionError) Is(target error) bool {
	return target == ErrConversion
}

// IsInvalidInput reports whether the error is an InvalidInputError.
func IsInvalidInput(err error) bool {
	var target *InvalidInputError
	return errors.As(err, &target)
}

// IsConversionError reports whether the error is a ConversionError.
func IsConversionError(err error) bool {
	var target *ConversionError
	return errors.As(err, &target)
}
