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

package errors

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrors(t *testing.T) {
	t.Run("With constructors wrapping sentinels", func(t *testing.T) {
		testCases := []struct {
			err      error
			sentinel error
			message  string
		}{
			{NewErrMethodAlreadyDefined("main.Simple", "defined"), ErrMethodAlreadyDefined, "method is already defined on the type: main.Simple.defined"},
			{NewErrNotAnExtensionUnit("main.Foo"), ErrNotAnExtensionUnit, "type does not implement the extension method interface: main.Foo"},
			{NewErrNotCallable("not callable"), ErrNotCallable, "extension method is not callable: not callable"},
			{NewErrGuarded("main.Simple", "locked"), ErrGuarded, "extension method is guarded: main.Simple.locked"},
			{NewErrNotFound("main.Simple", "nonexistent"), ErrNotFound, "extension method not found: main.Simple.nonexistent"},
			{NewErrFieldNotFound("main.Simple", "value"), ErrFieldNotFound, "field not found: main.Simple.value"},
		}

		for _, tc := range testCases {
			require.Error(t, tc.err)
			assert.ErrorIs(t, tc.err, tc.sentinel)
			assert.EqualError(t, tc.err, tc.message)
		}
	})

	t.Run("With invalid argument", func(t *testing.T) {
		err := NewErrInvalidArgument(io.EOF)
		assert.ErrorIs(t, err, ErrInvalidArgument)
		assert.ErrorIs(t, err, io.EOF)
	})

	t.Run("With panic error", func(t *testing.T) {
		err := errors.New("something went wrong")
		panicErr := NewPanicError(err)
		require.Error(t, panicErr)
		require.EqualError(t, panicErr, "panic: something went wrong")
		assert.ErrorIs(t, panicErr.Unwrap(), err)
		assert.ErrorIs(t, panicErr, err)
	})
}
