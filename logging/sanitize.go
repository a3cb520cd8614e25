// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import "strings"

// Sanitize escapes newlines in [s] so that caller-provided strings cannot
// forge extra log lines.
func Sanitize(s string) string {
	return strings.ReplaceAll(s, "\n", "\\n")
}
