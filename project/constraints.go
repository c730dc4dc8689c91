/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package project

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/spf13/afero"

	"bennypowers.dev/actigen/activity"
	"bennypowers.dev/actigen/naming"
)

var (
	identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
	resourcePattern   = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)
)

// CheckActivityName reports whether name can be used as an activity class name.
func CheckActivityName(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("%w: activity name must not be empty", ErrInvalidName)
	case !identifierPattern.MatchString(name):
		return fmt.Errorf("%w: activity name %q is not a valid class name", ErrInvalidName, name)
	case naming.IsKotlinKeyword(name):
		return fmt.Errorf("%w: activity name %q is a reserved word", ErrInvalidName, name)
	}
	return nil
}

// CheckLayoutName reports whether name can be used as a layout resource name.
func CheckLayoutName(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("%w: layout name must not be empty", ErrInvalidName)
	case !resourcePattern.MatchString(name):
		return fmt.Errorf("%w: layout name %q must contain only lowercase a-z, 0-9, or underscore", ErrInvalidName, name)
	}
	return nil
}

// CheckPackageName reports whether name is a dot-separated identifier path.
// Keyword segments are allowed since they are escaped on output.
func CheckPackageName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: package name must not be empty", ErrInvalidName)
	}
	for _, segment := range strings.Split(name, ".") {
		if !identifierPattern.MatchString(segment) {
			return fmt.Errorf("%w: package name %q has an invalid segment %q", ErrInvalidName, name, segment)
		}
	}
	return nil
}

// Check applies every constraint to req: name legality, and uniqueness of
// the layout among the resources under resDir. All failures are reported.
func Check(filesystem afero.Fs, resDir string, req *activity.Request) error {
	errs := []error{
		CheckPackageName(req.PackageName),
		CheckActivityName(req.ActivityName),
	}
	if req.Layout.Generate() {
		if err := CheckLayoutName(req.Layout.Name); err != nil {
			errs = append(errs, err)
		} else {
			exists, err := LayoutExists(filesystem, resDir, req.Layout.Name)
			switch {
			case err != nil:
				errs = append(errs, err)
			case exists:
				errs = append(errs, fmt.Errorf("%w: %s", ErrLayoutExists, req.Layout.Name))
			}
		}
	}
	return errors.Join(errs...)
}
