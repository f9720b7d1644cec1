package pipeline

import (
	"strings"
)

// clauseStarters trigger a line break before the keyword when formatting.
var clauseStarters = []string{
	"select", "from", "where", "group by", "having", "order by", "limit",
	"offset", "union all", "union", "left join", "right join", "inner join",
	"full join", "cross join", "join",
}

// FormatSQL pretty-prints a statement: one clause per line, single spaces
// inside clauses. Quoted segments are never touched.
func FormatSQL(sqlText string) string {
	tokens := splitPreservingQuotes(sqlText)

	var (
		lines   []string
		current []string
	)
	flush := func() {
		if len(current) > 0 {
			lines = append(lines, strings.Join(current, " "))
			current = nil
		}
	}

	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		lower := strings.ToLower(tok)

		matched := ""
		for _, clause := range clauseStarters {
			words := strings.Fields(clause)
			if lower != words[0] || i+len(words) > len(tokens) {
				continue
			}
			ok := true
			for j := 1; j < len(words); j++ {
				if strings.ToLower(tokens[i+j]) != words[j] {
					ok = false
					break
				}
			}
			if ok {
				matched = clause
				break
			}
		}

		if matched != "" {
			flush()
			n := len(strings.Fields(matched))
			current = append(current, tokens[i:i+n]...)
			i += n - 1
			continue
		}
		current = append(current, tok)
	}
	flush()
	return strings.Join(lines, "\n")
}

// splitPreservingQuotes tokenizes on whitespace while keeping quoted
// segments (single, double, backtick, bracket) intact inside one token.
func splitPreservingQuotes(s string) []string {
	var (
		tokens []string
		cur    strings.Builder
		closer rune
	)
	flush := func() {
		if cur.Len() > 0 {
			tokens = append(tokens, cur.String())
			cur.Reset()
		}
	}
	for _, r := range s {
		if closer != 0 {
			cur.WriteRune(r)
			if r == closer {
				closer = 0
			}
			continue
		}
		switch r {
		case '\'', '"', '`':
			closer = r
			cur.WriteRune(r)
		case '[':
			closer = ']'
			cur.WriteRune(r)
		case ' ', '\t', '\n', '\r':
			flush()
		default:
			cur.WriteRune(r)
		}
	}
	flush()
	return tokens
}
