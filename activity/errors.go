/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package activity

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidRequest indicates a generation request is missing a required field.
var ErrInvalidRequest = errors.New("invalid generation request")

// RequestError reports which field of a Request is unusable.
type RequestError struct {
	Field  string
	Reason string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrInvalidRequest, e.Field, e.Reason)
}

// Unwrap allows errors.Is(err, ErrInvalidRequest).
func (e *RequestError) Unwrap() error {
	return ErrInvalidRequest
}

// Required returns a *RequestError when value is blank.
func Required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return &RequestError{Field: field, Reason: "is required"}
	}
	return nil
}
