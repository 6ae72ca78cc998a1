package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/ruleset/pkg/validator"
)

// report is the outcome of one command, rendered as text, JSON or YAML.
type report struct {
	Command string                     `json:"command" yaml:"command"`
	Rule    string                     `json:"rule,omitempty" yaml:"rule,omitempty"`
	Params  []string                   `json:"params,omitempty" yaml:"params,omitempty"`
	Backend string                     `json:"backend,omitempty" yaml:"backend,omitempty"`
	Table   string                     `json:"table,omitempty" yaml:"table,omitempty"`
	Column  string                     `json:"column,omitempty" yaml:"column,omitempty"`
	Value   string                     `json:"value" yaml:"value"`
	Valid   bool                       `json:"valid" yaml:"valid"`
	Errors  validator.ValidationErrors `json:"errors,omitempty" yaml:"errors,omitempty"`
	RunID   string                     `json:"run_id" yaml:"run_id"`
}

func (r report) write(w io.Writer, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	default:
		_, err := fmt.Fprintln(w, r.text())
		return err
	}
}

func (r report) text() string {
	subject := r.Rule
	if r.Backend != "" {
		subject = r.Backend
		if r.Table != "" {
			subject += " " + r.Table + "." + r.Column
		}
	}

	if r.Valid {
		return fmt.Sprintf("ok\t%s\t%q", subject, r.Value)
	}

	msgs := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		msgs = append(msgs, e.Message)
	}
	return fmt.Sprintf("fail\t%s\t%q\t%s", subject, r.Value, strings.Join(msgs, "; "))
}
