// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// MacroID is the backend key of a macro. The backend sends integers, but the
// key is opaque to the client, so JSON strings are accepted as well.
type MacroID string

// UnmarshalJSON accepts a JSON number, a JSON string or null.
func (id *MacroID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		*id = ""
		return nil
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = MacroID(strings.TrimSpace(s))
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("macro id: %w", err)
	}
	*id = MacroID(n.String())
	return nil
}
