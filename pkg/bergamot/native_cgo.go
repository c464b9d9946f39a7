//go:build bergamot

package bergamot

/*
#include <stdbool.h>
#include <stddef.h>
#include <stdlib.h>
#include <string.h>

typedef struct TranslatorWrapper TranslatorWrapper;

TranslatorWrapper *bergamot_create(size_t numWorkers);
void bergamot_destroy(TranslatorWrapper *translator);
void bergamot_load_model_from_config(TranslatorWrapper *translator,
                                     const char *languagePair, const char *config);
bool bergamot_is_supported(TranslatorWrapper *translator, const char *from, const char *to);
const char *bergamot_translate(TranslatorWrapper *translator, const char *from,
                               const char *to, const char *input);
void bergamot_free_translation(const char *translation);
*/
import "C"

import "unsafe"

// nativeEngine wraps a TranslatorWrapper allocated by liblinguaspark.
type nativeEngine struct {
	ptr *C.TranslatorWrapper
}

func newNativeEngine(workers uint) (engine, error) {
	p := C.bergamot_create(C.size_t(workers))
	if p == nil {
		return nil, ErrCreationFailed
	}
	return &nativeEngine{ptr: p}, nil
}

func (e *nativeEngine) loadModelFromConfig(pair, config string) {
	cPair := C.CString(pair)
	defer C.free(unsafe.Pointer(cPair))
	cConfig := C.CString(config)
	defer C.free(unsafe.Pointer(cConfig))
	C.bergamot_load_model_from_config(e.ptr, cPair, cConfig)
}

func (e *nativeEngine) isSupported(from, to string) bool {
	cFrom := C.CString(from)
	defer C.free(unsafe.Pointer(cFrom))
	cTo := C.CString(to)
	defer C.free(unsafe.Pointer(cTo))
	return bool(C.bergamot_is_supported(e.ptr, cFrom, cTo))
}

// translate copies the result out of native memory and frees it before
// returning; the native pointer never leaves this function.
func (e *nativeEngine) translate(from, to, input string) ([]byte, bool) {
	cFrom := C.CString(from)
	defer C.free(unsafe.Pointer(cFrom))
	cTo := C.CString(to)
	defer C.free(unsafe.Pointer(cTo))
	cInput := C.CString(input)
	defer C.free(unsafe.Pointer(cInput))

	res := C.bergamot_translate(e.ptr, cFrom, cTo, cInput)
	if res == nil {
		return nil, false
	}
	return copyNative(
		func() []byte { return C.GoBytes(unsafe.Pointer(res), C.int(C.strlen(res))) },
		func() { C.bergamot_free_translation(res) },
	), true
}

func (e *nativeEngine) destroy() {
	if e.ptr == nil {
		return
	}
	C.bergamot_destroy(e.ptr)
	e.ptr = nil
}
