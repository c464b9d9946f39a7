package bergamot

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrStringConversion is matched by errors.Is for any text argument that
	// cannot be represented as a C string.
	ErrStringConversion = errors.New("bergamot: string contains NUL byte")
	// ErrCreationFailed is returned when the native factory yields no instance.
	ErrCreationFailed = errors.New("bergamot: failed to create translator")
	// ErrTranslationFailed is matched by errors.Is for any *TranslationError.
	ErrTranslationFailed = errors.New("bergamot: translation failed")
	// ErrClosed is returned by every operation on a closed Translator.
	ErrClosed = errors.New("bergamot: translator is closed")
	// ErrEngineUnavailable is returned by New when the binary was built
	// without the 'bergamot' tag.
	ErrEngineUnavailable = errors.New("bergamot: native engine not built (missing 'bergamot' build tag)")
	// ErrIncompleteModel is matched by errors.Is for any *IncompleteModelError.
	ErrIncompleteModel = errors.New("bergamot: incomplete model files")
)

// StringConversionError reports a text argument holding an embedded NUL.
type StringConversionError struct {
	Arg    string
	Offset int
}

func (e *StringConversionError) Error() string {
	return fmt.Sprintf("failed to create C string for %s: NUL byte at offset %d", e.Arg, e.Offset)
}

func (e *StringConversionError) Is(target error) bool { return target == ErrStringConversion }

// IsStringConversion reports whether err rejected caller text before it reached native code.
func IsStringConversion(err error) bool { return errors.Is(err, ErrStringConversion) }

// TranslationError is returned when the native engine produced no result.
type TranslationError struct {
	From   string
	To     string
	Reason string
}

func (e *TranslationError) Error() string {
	return fmt.Sprintf("translation %s->%s failed: %s", e.From, e.To, e.Reason)
}

func (e *TranslationError) Is(target error) bool { return target == ErrTranslationFailed }

// IsTranslationFailed reports whether err is a per-call translation failure.
func IsTranslationFailed(err error) bool { return errors.Is(err, ErrTranslationFailed) }

// IncompleteModelError lists the model slots that are empty or unreadable.
type IncompleteModelError struct {
	Missing []string
}

func (e *IncompleteModelError) Error() string {
	return "incomplete model files: " + strings.Join(e.Missing, ", ")
}

func (e *IncompleteModelError) Is(target error) bool { return target == ErrIncompleteModel }

// IsIncompleteModel reports whether err signals an unusable ModelFiles.
func IsIncompleteModel(err error) bool { return errors.Is(err, ErrIncompleteModel) }

// DirError is returned when a model directory cannot be read at all.
type DirError struct {
	Dir string
	Err error
}

func (e *DirError) Error() string { return "read model dir " + e.Dir + ": " + e.Err.Error() }

func (e *DirError) Unwrap() error { return e.Err }

// IsEngineUnavailable reports whether err indicates the native library is not compiled in.
func IsEngineUnavailable(err error) bool { return errors.Is(err, ErrEngineUnavailable) }
