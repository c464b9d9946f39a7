package bergamot

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

// Model directory naming contract shared with model producers.
const (
	vocabSuffix     = ".spm"
	srcVocabPrefix  = "srcvocab"
	trgVocabPrefix  = "trgvocab"
	alphasSuffix    = ".intgemm.alphas.bin"
	intgemm8Suffix  = ".intgemm8.bin"
	shortlistSuffix = ".s2t.bin"
)

// log receives resolver diagnostics. Nop unless SetLogger is called.
var log = zerolog.Nop()

// SetLogger installs the logger used for package-level diagnostics.
func SetLogger(l zerolog.Logger) { log = l }

// ModelFiles locates the four artifacts of one translation model.
type ModelFiles struct {
	SrcVocab  string `json:"src_vocab"`
	TrgVocab  string `json:"trg_vocab"`
	Model     string `json:"model"`
	Shortlist string `json:"shortlist"`
}

// NewModelFiles builds a ModelFiles from explicit paths.
func NewModelFiles(srcVocab, trgVocab, model, shortlist string) ModelFiles {
	return ModelFiles{SrcVocab: srcVocab, TrgVocab: trgVocab, Model: model, Shortlist: shortlist}
}

// ResolveDir classifies the immediate entries of dir into model slots.
//
// Entries are visited in filename order and the last match for a slot wins,
// so a directory holding two weight files resolves to the lexically greater
// one. Slots without a match stay empty; that is only an error once the
// result is loaded (see Validate).
func ResolveDir(dir string) (ModelFiles, error) {
	var files ModelFiles
	abs, err := filepath.Abs(dir)
	if err != nil {
		return files, &DirError{Dir: dir, Err: err}
	}
	entries, err := os.ReadDir(abs)
	if err != nil {
		return files, &DirError{Dir: dir, Err: err}
	}
	for _, e := range entries {
		name := e.Name()
		p := filepath.Join(abs, name)
		fi, err := os.Stat(p)
		if err != nil {
			log.Warn().Err(err).Str("path", p).Msg("skipping unreadable model dir entry")
			continue
		}
		if fi.IsDir() {
			continue
		}
		switch {
		case strings.HasSuffix(name, vocabSuffix):
			switch {
			case strings.HasPrefix(name, srcVocabPrefix):
				files.SrcVocab = p
			case strings.HasPrefix(name, trgVocabPrefix):
				files.TrgVocab = p
			default:
				files.SrcVocab = p
				files.TrgVocab = p
			}
		case strings.HasSuffix(name, alphasSuffix), strings.HasSuffix(name, intgemm8Suffix):
			files.Model = p
		case strings.HasSuffix(name, shortlistSuffix):
			files.Shortlist = p
		}
	}
	return files, nil
}

// Validate checks that every slot names an existing regular file.
func (f ModelFiles) Validate() error {
	var missing []string
	check := func(slot, p string) {
		if p == "" {
			missing = append(missing, slot+" (empty)")
			return
		}
		fi, err := os.Stat(p)
		switch {
		case err != nil:
			missing = append(missing, fmt.Sprintf("%s (%v)", slot, err))
		case !fi.Mode().IsRegular():
			missing = append(missing, slot+" (not a regular file: "+p+")")
		}
	}
	check("src_vocab", f.SrcVocab)
	check("trg_vocab", f.TrgVocab)
	check("model", f.Model)
	check("shortlist", f.Shortlist)
	if len(missing) > 0 {
		return &IncompleteModelError{Missing: missing}
	}
	return nil
}
