// Package parser reads a supported subset of Cypher back into the
// statement model, so round-trips through the renderer are possible.
package parser

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/seuros/cypher-ast/src/cypher"
)

var cypherLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "String", Pattern: `'(?:\\.|[^'\\])*'`},
	{Name: "Float", Pattern: `\d+\.\d+`},
	{Name: "Int", Pattern: `\d+`},
	{Name: "QuotedIdent", Pattern: "`(?:``|[^`])*`"},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Arrow", Pattern: `<-|->`},
	{Name: "Operators", Pattern: `<>|>=|<=|!=|=|<|>`},
	{Name: "Punct", Pattern: `[(),.:\[\]\-]`},
	{Name: "whitespace", Pattern: `\s+`},
})

// Parser converts Cypher text into a cypher.Statement.
type Parser struct {
	parser *participle.Parser[query]
}

// New builds a parser for the supported Cypher subset.
func New() (*Parser, error) {
	parser, err := participle.Build[query](
		participle.Lexer(cypherLexer),
		participle.CaseInsensitive("Ident"),
		participle.UseLookahead(2),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build parser: %w", err)
	}

	return &Parser{parser: parser}, nil
}

// Parse reads a single Cypher statement.
func (p *Parser) Parse(input string) (*cypher.Statement, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	parsed, err := p.parser.ParseString("", input)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}

	return convertToStatement(parsed)
}

func validateInput(input string) error {
	if strings.TrimSpace(input) == "" {
		return fmt.Errorf("empty input")
	}

	if strings.Contains(input, ";") {
		return fmt.Errorf("multiple statements not allowed")
	}

	return nil
}
