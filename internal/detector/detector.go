package detector

import (
	"fmt"
	"sort"
	"strings"

	lingua "github.com/pemistahl/lingua-go"
)

// Detector guesses the source language of a text among a fixed set of
// ISO 639-1 codes, normally the source languages of the loaded models.
type Detector struct {
	detector lingua.LanguageDetector
	codes    []string
}

// New builds a detector restricted to codes. Unknown codes are ignored;
// at least two known languages are required.
func New(codes []string) (*Detector, error) {
	seen := map[lingua.IsoCode639_1]bool{}
	var isoCodes []lingua.IsoCode639_1
	var kept []string
	for _, c := range codes {
		iso := lingua.GetIsoCode639_1FromValue(strings.ToLower(c))
		if iso == lingua.UnknownIsoCode639_1 || seen[iso] {
			continue
		}
		seen[iso] = true
		isoCodes = append(isoCodes, iso)
		kept = append(kept, strings.ToLower(iso.String()))
	}
	if len(isoCodes) < 2 {
		return nil, fmt.Errorf("language detection needs at least 2 known languages, got %v", codes)
	}
	sort.Strings(kept)
	d := lingua.NewLanguageDetectorBuilder().
		FromIsoCodes639_1(isoCodes...).
		Build()
	return &Detector{detector: d, codes: kept}, nil
}

// Languages returns the codes the detector chooses between.
func (d *Detector) Languages() []string { return append([]string(nil), d.codes...) }

// DetectISO returns the lower-case ISO 639-1 code of text.
func (d *Detector) DetectISO(text string) (string, bool) {
	if strings.TrimSpace(text) == "" {
		return "", false
	}
	lang, ok := d.detector.DetectLanguageOf(text)
	if !ok {
		return "", false
	}
	return strings.ToLower(lang.IsoCode639_1().String()), true
}
