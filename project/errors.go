/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package project

import "errors"

// Sentinel errors for project operations.
var (
	// ErrInvalidName indicates a name is not a legal identifier for its role.
	ErrInvalidName = errors.New("invalid name")

	// ErrLayoutExists indicates a layout resource with the requested name exists.
	ErrLayoutExists = errors.New("layout already exists")

	// ErrFileExists indicates a generated file would overwrite an existing one.
	ErrFileExists = errors.New("file already exists")

	// ErrNoEditor indicates no editor command is configured.
	ErrNoEditor = errors.New("no editor configured")
)
