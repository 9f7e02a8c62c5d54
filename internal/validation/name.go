// MIT License
//
// Copyright (c) 2022-2026 GoAkt Team
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package validation

import (
	"regexp"

	"github.com/tochemey/extensible/errors"
)

const maxNameLength = 255

var namePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// NewPatternValidator returns a Validator that fails with customErr, or a generic
// error when customErr is nil, whenever expression does not match pattern
func NewPatternValidator(pattern *regexp.Regexp, expression string, customErr error) Validator {
	return ValidatorFunc(func() error {
		if pattern.MatchString(expression) {
			return nil
		}
		if customErr != nil {
			return customErr
		}
		return errInvalidExpression
	})
}

// NewNameValidator validates an extension method name.
//
// The name must:
//   - Be no more than 255 characters long.
//   - Start with a letter or an underscore.
//   - Contain only letters, digits or underscores thereafter.
func NewNameValidator(name string) Validator {
	return New(FailFast()).
		AddAssertion(len(name) <= maxNameLength, errors.ErrInvalidName).
		AddValidator(NewPatternValidator(namePattern, name, errors.ErrInvalidName))
}
