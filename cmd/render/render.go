/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package render provides shared rendering functions for CLI output.
package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"bennypowers.dev/actigen/generate"
)

// ErrUnknownFormat indicates an unsupported --format value.
var ErrUnknownFormat = errors.New("unknown format")

// Format selects how generated files are printed.
type Format string

const (
	// FormatText prints each file's contents under a header.
	FormatText Format = "text"

	// FormatJSON prints the files as a JSON array.
	FormatJSON Format = "json"

	// FormatNames prints one target path per line.
	FormatNames Format = "names"
)

// Formats lists the supported formats, for flag help.
var Formats = []Format{FormatText, FormatJSON, FormatNames}

// ParseFormat validates a --format value. Empty means text.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON, FormatNames:
		return Format(s), nil
	}
	return "", fmt.Errorf("%w %q, expected one of %v", ErrUnknownFormat, s, Formats)
}

// Target maps a generated file to the path it is written to.
type Target func(generate.File) string

func (t Target) path(f generate.File) string {
	if t == nil {
		return f.Path
	}
	return t(f)
}

// Artifacts prints files in the given format.
func Artifacts(w io.Writer, files []generate.File, format Format, target Target) error {
	switch format {
	case FormatJSON:
		return JSON(w, files, target)
	case FormatNames:
		return Names(w, files, target)
	case FormatText:
		return Text(w, files, target)
	}
	return fmt.Errorf("%w %q", ErrUnknownFormat, format)
}

// Text prints each file under a "==> path <==" header, separated by blank lines.
func Text(w io.Writer, files []generate.File, target Target) error {
	for i, f := range files {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "==> %s <==\n%s", target.path(f), f.Content); err != nil {
			return err
		}
	}
	return nil
}

// JSON prints files as an indented JSON array, with each path replaced by
// its target.
func JSON(w io.Writer, files []generate.File, target Target) error {
	output := make([]generate.File, 0, len(files))
	for _, f := range files {
		f.Path = target.path(f)
		output = append(output, f)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}

// Names prints the target path of each file.
func Names(w io.Writer, files []generate.File, target Target) error {
	for _, f := range files {
		if _, err := fmt.Fprintln(w, target.path(f)); err != nil {
			return err
		}
	}
	return nil
}
