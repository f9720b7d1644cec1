package config

import (
	"bytes"
	"os"
	"strings"
	"text/template"
)

// ExpandEnv substitutes environment variables in raw YAML using Go template
// syntax, e.g. {{.OPENAI_API_KEY}} or {{.OLLAMA_BASE_URL}}. Plain $ stays
// untouched, which matters for this config surface: model API keys,
// connection passwords, and db_root paths routinely contain literal dollar
// signs that shell-style expansion would mangle.
//
// A variable that is not set expands to the empty string; validation rejects
// required fields left empty. Content that does not parse as a template is
// returned unchanged so template-free YAML always passes through.
func ExpandEnv(data []byte) []byte {
	tmpl, err := template.New("yaml").Option("missingkey=zero").Parse(string(data))
	if err != nil {
		return data
	}

	env := make(map[string]string)
	for _, kv := range os.Environ() {
		if key, value, ok := strings.Cut(kv, "="); ok && key != "" {
			env[key] = value
		}
	}

	var out bytes.Buffer
	if err := tmpl.Execute(&out, env); err != nil {
		return data
	}
	return out.Bytes()
}
