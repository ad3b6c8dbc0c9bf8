package csd

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// csdLexer defines the lexical structure of a CSD string. There is no
// whitespace rule on purpose: the format is a bare digit sequence, and
// anything outside the alphabet must fail the lex.
var csdLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Plus", Pattern: `\+`},
	{Name: "Minus", Pattern: `-`},
	{Name: "Zero", Pattern: `0`},
	{Name: "Dot", Pattern: `\.`},
})
