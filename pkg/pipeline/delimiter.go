package pipeline

import (
	"strings"

	"github.com/thoth-ai/thoth/pkg/config"
)

// CorrectDelimiters rewrites quoting in a SQL statement to the target
// dialect's conventions: identifier quoting becomes the dialect's preferred
// pair, string literals are normalized to single quotes with '' escaping,
// and identifiers that need no quoting are emitted bare. The rewrite is
// idempotent and preserves string literal content.
func CorrectDelimiters(sqlText string, dialect config.Dialect) string {
	var (
		out    strings.Builder
		tokens []string
		runes  = []rune(sqlText)
		i      = 0
	)

	flushWord := func(word string) {
		if word != "" {
			tokens = append(tokens, strings.ToLower(word))
		}
	}

	var word strings.Builder
	for i < len(runes) {
		r := runes[i]
		switch r {
		case '\'':
			flushWord(word.String())
			word.Reset()
			content, next := readQuoted(runes, i+1, '\'', true)
			out.WriteString(quoteString(content))
			tokens = append(tokens, "<str>")
			i = next
		case '"', '`':
			flushWord(word.String())
			word.Reset()
			content, next := readQuoted(runes, i+1, r, true)
			i = next
			emitSegment(&out, &tokens, content, dialect)
		case '[':
			flushWord(word.String())
			word.Reset()
			content, next := readQuoted(runes, i+1, ']', false)
			i = next
			emitSegment(&out, &tokens, content, dialect)
		default:
			if isOperatorRune(r) {
				flushWord(word.String())
				word.Reset()
				op, next := readOperator(runes, i)
				out.WriteString(op)
				tokens = append(tokens, op)
				i = next
			} else if isWordRune(r) {
				word.WriteRune(r)
				out.WriteRune(r)
				i++
			} else {
				flushWord(word.String())
				word.Reset()
				if r == ',' || r == '(' || r == ')' {
					tokens = append(tokens, string(r))
				}
				out.WriteRune(r)
				i++
			}
		}
	}
	flushWord(word.String())
	return out.String()
}

// emitSegment writes a non-single-quoted segment as either a normalized
// string literal or a dialect-quoted identifier, based on context.
func emitSegment(out *strings.Builder, tokens *[]string, content string, dialect config.Dialect) {
	if classifyAsString(*tokens) {
		out.WriteString(quoteString(content))
		*tokens = append(*tokens, "<str>")
		return
	}
	out.WriteString(quoteIdentifier(content, dialect))
	*tokens = append(*tokens, "<ident>")
}

// readQuoted consumes up to the closing delimiter starting at position start
// (just past the opening delimiter). When doubled is true a doubled delimiter
// inside the segment is an escape for one literal occurrence.
func readQuoted(runes []rune, start int, closer rune, doubled bool) (string, int) {
	var b strings.Builder
	i := start
	for i < len(runes) {
		if runes[i] == closer {
			if doubled && i+1 < len(runes) && runes[i+1] == closer {
				b.WriteRune(closer)
				i += 2
				continue
			}
			return b.String(), i + 1
		}
		b.WriteRune(runes[i])
		i++
	}
	// Unterminated segment; keep what was read.
	return b.String(), i
}

func isWordRune(r rune) bool {
	return r == '_' || r == '.' ||
		(r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

func isOperatorRune(r rune) bool {
	return r == '=' || r == '<' || r == '>' || r == '!'
}

func readOperator(runes []rune, i int) (string, int) {
	j := i
	for j < len(runes) && isOperatorRune(runes[j]) {
		j++
	}
	return string(runes[i:j]), j
}

var stringTriggers = map[string]struct{}{
	"=": {}, "!=": {}, "<>": {}, "<": {}, ">": {}, "<=": {}, ">=": {},
	"in": {}, "like": {}, "values": {}, "<str>": {},
}

var identifierTriggers = map[string]struct{}{
	"select": {}, "from": {}, "join": {}, "order": {}, "group": {}, "by": {},
	"where": {}, "on": {}, "as": {}, "and": {}, "or": {}, "<ident>": {},
	"update": {}, "into": {}, "table": {}, "distinct": {},
}

// classifyAsString scans the nearest preceding significant tokens: comparison
// operators, IN, LIKE, and VALUES mean the segment is a string literal;
// clause keywords mean an identifier. Commas and parentheses are skipped so
// list members inherit the list's context. Defaults to identifier.
func classifyAsString(tokens []string) bool {
	for k := len(tokens) - 1; k >= 0; k-- {
		tok := tokens[k]
		if tok == "," || tok == "(" || tok == ")" {
			continue
		}
		if _, ok := stringTriggers[tok]; ok {
			return true
		}
		if _, ok := identifierTriggers[tok]; ok {
			return false
		}
		return false
	}
	return false
}

// quoteString renders a single-quoted literal with '' escaping.
func quoteString(content string) string {
	return "'" + strings.ReplaceAll(content, "'", "''") + "'"
}

// reservedWords is the keyword set that forces quoting of an identifier even
// when it is otherwise plain.
var reservedWords = map[string]struct{}{
	"select": {}, "from": {}, "where": {}, "group": {}, "order": {}, "by": {},
	"join": {}, "on": {}, "as": {}, "table": {}, "index": {}, "values": {},
	"in": {}, "like": {}, "and": {}, "or": {}, "not": {}, "null": {},
	"insert": {}, "update": {}, "delete": {}, "limit": {}, "offset": {},
	"case": {}, "when": {}, "then": {}, "else": {}, "end": {}, "union": {},
	"all": {}, "distinct": {}, "having": {}, "desc": {}, "asc": {},
}

func needsQuoting(ident string) bool {
	if ident == "" {
		return true
	}
	if _, reserved := reservedWords[strings.ToLower(ident)]; reserved {
		return true
	}
	if ident[0] >= '0' && ident[0] <= '9' {
		return true
	}
	for _, r := range ident {
		if r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			continue
		}
		return true
	}
	return false
}

// quoteIdentifier renders an identifier with the dialect's preferred pair.
// Oracle uppercases the identifier and emits it bare when quoting is
// unnecessary, since quoted Oracle identifiers are case-sensitive.
func quoteIdentifier(ident string, dialect config.Dialect) string {
	if dialect == config.DialectOracle {
		ident = strings.ToUpper(ident)
		if !needsQuoting(ident) {
			return ident
		}
	}
	switch dialect {
	case config.DialectSQLite, config.DialectMySQL, config.DialectMariaDB:
		return "`" + strings.ReplaceAll(ident, "`", "``") + "`"
	case config.DialectSQLServer:
		return "[" + strings.ReplaceAll(ident, "]", "]]") + "]"
	default:
		return `"` + strings.ReplaceAll(ident, `"`, `""`) + `"`
	}
}
