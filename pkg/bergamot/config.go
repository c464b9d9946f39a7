package bergamot

import (
	"fmt"
	"strings"
)

// Fixed inference hyperparameters understood by the native config parser.
// Keys and values are part of the wire format; keep them in sync with the
// engine version this package links against.
var configHeader = []string{
	"beam-size: 1",
	"normalize: 1.0",
	"word-penalty: 0",
	"max-length-break: 128",
	"mini-batch-words: 1024",
	"workspace: 128",
	"max-length-factor: 2.0",
	"skip-cost: True",
	"quiet: True",
	"quiet_translation: True",
	"gemm-precision: int8shiftAll",
}

// Config renders the native engine configuration for f. Paths are written
// verbatim; the native parser expects bare paths.
func (f ModelFiles) Config() string {
	var b strings.Builder
	b.WriteString("\n")
	for _, line := range configHeader {
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "models: [%s]\n", f.Model)
	fmt.Fprintf(&b, "vocabs: [%s, %s]\n", f.SrcVocab, f.TrgVocab)
	fmt.Fprintf(&b, "shortlist: [%s, false]\n", f.Shortlist)
	return b.String()
}
