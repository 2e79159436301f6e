package pattern

import (
	"strings"

	"golang.org/x/exp/ebnf"
)

// GrammarSource is the EBNF of the pattern language.
// Empty sequences are legal, whereas empty bracket pairs are not: this is
// checked by Validate and is not expressed in the grammar.
const GrammarSource = `
Pattern      = Alternatives .
Alternatives = Sequence { "|" Sequence } .
Sequence     = { Term } .
Term         = symbol | Group | Optional | Repeat .
Group        = "(" Alternatives ")" .
Optional     = "[" Alternatives "]" .
Repeat       = "{" Alternatives "}" .
symbol       = "a" … "z" | "A" … "Z" | "0" … "9" .
`

// Grammar parses and verifies the EBNF of the pattern language, with start
// production "Pattern".
func Grammar() (ebnf.Grammar, error) {
	g, err := ebnf.Parse("pattern.ebnf", strings.NewReader(GrammarSource))
	if err != nil {
		return nil, err
	}
	if err = ebnf.Verify(g, "Pattern"); err != nil {
		return nil, err
	}
	return g, nil
}
