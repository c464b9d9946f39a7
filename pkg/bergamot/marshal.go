package bergamot

import (
	"strings"

	"golang.org/x/text/encoding/unicode"
)

// checkCString rejects text that cannot cross the boundary as a
// NUL-terminated string. It must run before any native call.
func checkCString(arg, s string) error {
	if i := strings.IndexByte(s, 0); i >= 0 {
		return &StringConversionError{Arg: arg, Offset: i}
	}
	return nil
}

// checkCStrings validates name/value pairs in order and returns the first failure.
func checkCStrings(kv ...string) error {
	for i := 0; i+1 < len(kv); i += 2 {
		if err := checkCString(kv[i], kv[i+1]); err != nil {
			return err
		}
	}
	return nil
}

// copyNative copies a native result with read and then calls release
// exactly once, also when read panics. The copy must not alias the buffer.
func copyNative(read func() []byte, release func()) []byte {
	defer release()
	return read()
}

// decodeNative turns bytes copied out of a native buffer into a Go string.
// Invalid UTF-8 is replaced with U+FFFD; this never fails.
func decodeNative(b []byte) string {
	out, err := unicode.UTF8.NewDecoder().Bytes(b)
	if err != nil {
		return strings.ToValidUTF8(string(b), "�")
	}
	return string(out)
}
