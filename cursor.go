package paging

import (
	"encoding/base64"
	"strings"
)

// DefaultCursorType tags edge cursors when no entity type is supplied.
const DefaultCursorType = "node"

const cursorDelimiter = ":"

// EncodeCursor encodes an entity type and identifier into an opaque cursor,
// base64 of "TYPE:ID".
func EncodeCursor(typ, id string) string {
	return base64.StdEncoding.EncodeToString([]byte(typ + cursorDelimiter + id))
}

// DecodeCursor returns the identifier carried by a cursor built with EncodeCursor.
// The type segment is discarded. Malformed input decodes to "" rather than
// an error; the store lookup on that identifier reports "not found".
func DecodeCursor(cursor string) string {
	decoded, err := base64.StdEncoding.DecodeString(cursor)
	if err != nil {
		return ""
	}

	parts := strings.SplitN(string(decoded), cursorDelimiter, 2)
	if len(parts) != 2 {
		return ""
	}

	return parts[1]
}
