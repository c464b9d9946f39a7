// Package bergamot binds the linguaspark native translation engine.
//
// It is split by concern:
//
//   - model.go: ModelFiles and ResolveDir, which classifies a model directory.
//   - config.go: the native engine configuration document.
//   - translator.go: Translator, the handle owning one native instance.
//   - marshal.go: NUL checks and lossy decoding of native output.
//   - errors.go: typed errors and IsX helpers.
//
// Build tags:
//
//   - Native engine: enabled with `-tags=bergamot`. Files: native_cgo.go,
//     link_cgo.go (linker flags, MKL CPU override export). Requires
//     liblinguaspark in ./lib at build time.
//   - Without the tag, native_stub.go makes New return ErrEngineUnavailable.
//
// Thread safety: a Translator is shared between goroutines without any
// serialization of native calls. This relies on liblinguaspark synchronizing
// bergamot_load_model_from_config, bergamot_is_supported and
// bergamot_translate internally, which the library documents for its
// TranslatorWrapper. The only lock in this package orders Close after
// in-flight calls.
package bergamot
