package httpx

import (
	"bytes"
	"fmt"
)

// ID decodes identifier fields that some endpoints send as JSON
// numbers and others as strings.
type ID string

func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*id = ""
		return nil
	}

	if b[0] == '"' {
		if len(b) < 2 || b[len(b)-1] != '"' {
			return fmt.Errorf("malformed id %q", b)
		}
		*id = ID(b[1 : len(b)-1])
		return nil
	}

	*id = ID(b)
	return nil
}

func (id ID) String() string {
	return string(id)
}
