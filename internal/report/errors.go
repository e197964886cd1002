// Copyright (c) 2026 Passgen Team
// Passgen - password generator with entropy reporting
// This source code is licensed under the MIT license found in the LICENSE file.

package report

import (
	"errors"

	"github.com/toeirei/passgen/internal/clipboard"
	"github.com/toeirei/passgen/internal/engine"
	"github.com/toeirei/passgen/internal/i18n"
)

// ErrorMessage returns a localized title and message for err. Errors that
// are not validation or clipboard failures are returned verbatim.
func ErrorMessage(err error) (title, msg string) {
	var (
		ee *engine.Error
		ce *clipboard.CopyError
	)
	switch {
	case errors.As(err, &ee):
		switch ee.Kind {
		case engine.TooShort:
			return i18n.T("errors.invalid_length_title"), i18n.T("errors.too_short", engine.MinLength)
		case engine.TooLong:
			return i18n.T("errors.invalid_length_title"), i18n.T("errors.too_long", engine.MaxLength)
		default:
			return i18n.T("errors.invalid_input_title"), i18n.T("errors.invalid_input")
		}
	case errors.Is(err, clipboard.ErrNothingToCopy):
		return "", i18n.T("errors.nothing_to_copy")
	case errors.As(err, &ce):
		return "", i18n.T("errors.copy_failed", ce.Err)
	case err != nil:
		return "", err.Error()
	}
	return "", ""
}
