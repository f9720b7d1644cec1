package agents

import (
	"fmt"
	"strings"

	"github.com/thoth-ai/thoth/pkg/config"
)

// Shot is one few-shot question/SQL example included in a generation prompt.
type Shot struct {
	Question string
	SQL      string
}

// SQLPromptInput is everything a SQL generator prompt is rendered from.
type SQLPromptInput struct {
	Question   string
	Dialect    config.Dialect
	MSchema    string
	Directives []string
	Evidence   []string
	Shots      []Shot

	// EscalationBlock carries the failure context from the previous level.
	EscalationBlock string
	// RetryBlock carries a formatted model-retry message, when retrying.
	RetryBlock string
}

var methodInstructions = map[Method]string{
	MethodQueryPlan:        "First outline the logical query plan (scans, joins, aggregations), then write the SQL that implements it.",
	MethodStepByStep:       "Reason step by step from the question to the tables, the joins, the filters, and finally the full SQL.",
	MethodDivideAndConquer: "Split the question into independent sub-questions, solve each as a fragment, then compose the final SQL.",
}

// nullOrderingDirective returns the dialect-specific NULL ordering rule
// appended to every generation prompt.
func nullOrderingDirective(dialect config.Dialect) string {
	switch dialect {
	case config.DialectPostgreSQL, config.DialectOracle:
		return "This engine sorts NULLs last on ASC by default; add NULLS FIRST/LAST explicitly when ordering on nullable columns."
	default:
		return "This engine sorts NULLs first on ASC by default; filter NULLs out or order explicitly when ranking on nullable columns."
	}
}

func renderSQLPrompt(in *SQLPromptInput, method Method) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Target dialect: %s\n\nDatabase schema:\n%s\n", in.Dialect, in.MSchema)

	directives := append([]string{}, in.Directives...)
	directives = append(directives, nullOrderingDirective(in.Dialect))
	b.WriteString("\nDirectives:\n")
	for _, d := range directives {
		fmt.Fprintf(&b, "- %s\n", d)
	}

	if len(in.Evidence) > 0 {
		b.WriteString("\nEvidence:\n")
		for _, e := range in.Evidence {
			fmt.Fprintf(&b, "- %s\n", e)
		}
	}
	if len(in.Shots) > 0 {
		b.WriteString("\nExamples:\n")
		for _, s := range in.Shots {
			fmt.Fprintf(&b, "Q: %s\nSQL: %s\n", s.Question, s.SQL)
		}
	}
	if in.EscalationBlock != "" {
		fmt.Fprintf(&b, "\nContext from the previous attempt level:\n%s\n", in.EscalationBlock)
	}
	if in.RetryBlock != "" {
		fmt.Fprintf(&b, "\n%s\n", in.RetryBlock)
	}

	fmt.Fprintf(&b, "\n%s\n", methodInstructions[method])
	fmt.Fprintf(&b, "\nQuestion: %s\n", in.Question)
	b.WriteString("\nRespond with JSON: {\"thinking\": string, \"sql\": string, \"success\": bool}. Set success=false only when the question cannot be answered from this schema.")
	return b.String()
}

const validatorSystemPrompt = "You validate natural-language questions intended for SQL generation. " +
	"A question is valid when it asks for data and is answerable by a database query. " +
	"Detect the question's language. Respond with JSON: " +
	"{\"is_valid\": bool, \"message\": string, \"original_language\": string}."

func renderValidatorPrompt(question, workspaceLanguage string) string {
	return fmt.Sprintf("Workspace language: %s\nQuestion: %s", workspaceLanguage, question)
}

func renderTranslatorPrompt(question, from, to string) string {
	return fmt.Sprintf("Translate the following question from %s to %s. "+
		"Preserve table names, column names, and quoted values verbatim. "+
		"Respond with only the translated question.\n\n%s", from, to, question)
}

func renderKeywordPrompt(question string, evidence []string) string {
	var b strings.Builder
	b.WriteString("Extract the search keywords from the question: entities, attributes, filter values, and aggregation intents. ")
	b.WriteString("Respond with JSON: {\"keywords\": [string]}.\n\n")
	fmt.Fprintf(&b, "Question: %s\n", question)
	if len(evidence) > 0 {
		b.WriteString("Evidence:\n")
		for _, e := range evidence {
			fmt.Fprintf(&b, "- %s\n", e)
		}
	}
	return b.String()
}

// TestPromptInput renders a unit-test generation prompt.
type TestPromptInput struct {
	Question string
	Dialect  config.Dialect
	MSchema  string
	Evidence []string
}

func renderTestGenPrompt(in *TestPromptInput) string {
	var b strings.Builder
	b.WriteString("Write semantic unit tests for SQL statements answering the question below. ")
	b.WriteString("Each test is one imperative sentence checking a property the correct SQL must have ")
	b.WriteString("(tables used, join conditions, filters, aggregation, ordering, projection). ")
	b.WriteString("Respond with JSON: {\"thinking\": string, \"answers\": [string]}.\n\n")
	fmt.Fprintf(&b, "Dialect: %s\n\nSchema:\n%s\n\nQuestion: %s\n", in.Dialect, in.MSchema, in.Question)
	if len(in.Evidence) > 0 {
		b.WriteString("Evidence:\n")
		for _, e := range in.Evidence {
			fmt.Fprintf(&b, "- %s\n", e)
		}
	}
	return b.String()
}

func renderTestReducerPrompt(tests []string) string {
	var b strings.Builder
	b.WriteString("The following unit tests may overlap semantically. ")
	b.WriteString("Return the smallest subset that preserves every distinct property being checked, keeping original wording. ")
	b.WriteString("Respond with JSON: {\"thinking\": string, \"answers\": [string]}.\n\nTests:\n")
	for i, t := range tests {
		fmt.Fprintf(&b, "%d. %s\n", i+1, t)
	}
	return b.String()
}

func renderEvaluatorPrompt(question, mschema, sql string, tests []string) string {
	var b strings.Builder
	b.WriteString("Evaluate the SQL statement against each unit test. ")
	b.WriteString("For every test answer exactly \"OK\" when it passes or \"KO - <short reason>\" when it fails. ")
	b.WriteString("Respond with JSON: {\"thinking\": string, \"answers\": [string]} with one answer per test, in order.\n\n")
	fmt.Fprintf(&b, "Question: %s\n\nSchema:\n%s\n\nSQL:\n%s\n\nTests:\n", question, mschema, sql)
	for i, t := range tests {
		fmt.Fprintf(&b, "%d. %s\n", i+1, t)
	}
	return b.String()
}

// ExplainInput renders a SQL explanation prompt.
type ExplainInput struct {
	Question       string
	SQL            string
	DatabaseSchema string
	Evidence       string
	ChainOfThought string
	Language       string
}

func renderExplainPrompt(in *ExplainInput) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Explain in %s what the following SQL does and how it answers the question. ", in.Language)
	b.WriteString("Address a non-technical reader. Respond with plain text.\n\n")
	fmt.Fprintf(&b, "Question: %s\n\nSQL:\n%s\n", in.Question, in.SQL)
	if in.DatabaseSchema != "" {
		fmt.Fprintf(&b, "\nSchema:\n%s\n", in.DatabaseSchema)
	}
	if in.Evidence != "" {
		fmt.Fprintf(&b, "\nEvidence:\n%s\n", in.Evidence)
	}
	if in.ChainOfThought != "" {
		fmt.Fprintf(&b, "\nGeneration reasoning:\n%s\n", in.ChainOfThought)
	}
	return b.String()
}

func renderAskHumanPrompt(question, reason string) string {
	return fmt.Sprintf("The question below could not be answered automatically (%s). "+
		"Formulate a clarification request for the user. Respond with JSON: "+
		"{\"question\": string, \"reason\": string, \"options\": [string]}.\n\nQuestion: %s",
		reason, question)
}
