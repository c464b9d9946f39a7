package registry

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/text/language"

	"linguaspark/internal/common/fsutil"
	"linguaspark/pkg/bergamot"
	"linguaspark/pkg/types"
)

// Scanner discovers translation models under a models root. Each immediate
// subdirectory is one model; its name is the language pair, either "en-de"
// or the compact "ende" form used by Firefox Translations.
type Scanner struct {
	log zerolog.Logger
}

// NewScanner returns a Scanner that logs skipped directories to l.
func NewScanner(l zerolog.Logger) *Scanner { return &Scanner{log: l} }

// Scan resolves every model directory below root. Directories whose name is
// not a language pair, or whose files are incomplete, are skipped with a warning.
// When two directories name the same pair ("en-de" and "ende") the first in
// name order that resolves completely is kept.
func (s *Scanner) Scan(root string) ([]types.Model, error) {
	abs, err := fsutil.ResolveDir(root)
	if err != nil {
		return nil, fmt.Errorf("models dir: %w", err)
	}
	entries, err := os.ReadDir(abs)
	if err != nil {
		return nil, fmt.Errorf("read dir: %w", err)
	}
	var models []types.Model
	seen := map[string]string{}
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		dir := filepath.Join(abs, e.Name())
		from, to, err := ParsePair(e.Name())
		if err != nil {
			s.log.Warn().Str("dir", dir).Err(err).Msg("skipping model dir")
			continue
		}
		pair := from + "-" + to
		if first, dup := seen[pair]; dup {
			s.log.Warn().Str("dir", dir).Str("pair", pair).Str("kept", first).Msg("skipping duplicate model dir")
			continue
		}
		files, err := bergamot.ResolveDir(dir)
		if err != nil {
			s.log.Warn().Str("dir", dir).Err(err).Msg("skipping model dir")
			continue
		}
		if err := files.Validate(); err != nil {
			s.log.Warn().Str("dir", dir).Err(err).Msg("skipping model dir")
			continue
		}
		seen[pair] = dir
		models = append(models, types.Model{
			Pair: pair,
			From: from,
			To:   to,
			Dir:  dir,
			Files: types.ModelFiles{
				SrcVocab:  files.SrcVocab,
				TrgVocab:  files.TrgVocab,
				Model:     files.Model,
				Shortlist: files.Shortlist,
			},
		})
	}
	sort.Slice(models, func(i, j int) bool { return models[i].Pair < models[j].Pair })
	return models, nil
}

// LoadDir scans root with a silent Scanner.
func LoadDir(root string) ([]types.Model, error) {
	return NewScanner(zerolog.Nop()).Scan(root)
}

// ParsePair splits a directory name into source and target codes.
// Accepted forms: "en-de", "en_de", "ende". Both codes must be known
// ISO 639 base languages.
func ParsePair(name string) (from, to string, err error) {
	name = strings.ToLower(strings.TrimSpace(name))
	switch {
	case strings.ContainsAny(name, "-_"):
		parts := strings.FieldsFunc(name, func(r rune) bool { return r == '-' || r == '_' })
		if len(parts) != 2 {
			return "", "", fmt.Errorf("invalid language pair %q", name)
		}
		from, to = parts[0], parts[1]
	case len(name) == 4:
		from, to = name[:2], name[2:]
	default:
		return "", "", fmt.Errorf("invalid language pair %q", name)
	}
	if err := CheckLanguage(from); err != nil {
		return "", "", err
	}
	if err := CheckLanguage(to); err != nil {
		return "", "", err
	}
	return from, to, nil
}

// CheckLanguage reports whether code is a well-formed ISO 639 language.
func CheckLanguage(code string) error {
	if _, err := language.ParseBase(code); err != nil {
		return fmt.Errorf("unknown language %q: %w", code, err)
	}
	return nil
}

// ToBergamot converts a registry model into the binding's descriptor.
func ToBergamot(m types.Model) bergamot.ModelFiles {
	return bergamot.NewModelFiles(m.Files.SrcVocab, m.Files.TrgVocab, m.Files.Model, m.Files.Shortlist)
}

// SourceLanguages returns the distinct source codes of models, sorted.
func SourceLanguages(models []types.Model) []string {
	seen := map[string]bool{}
	var out []string
	for _, m := range models {
		if !seen[m.From] {
			seen[m.From] = true
			out = append(out, m.From)
		}
	}
	sort.Strings(out)
	return out
}
