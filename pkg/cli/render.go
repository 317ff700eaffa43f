package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/computerscienceiscool/scriptkit/pkg/audit"
	"github.com/computerscienceiscool/scriptkit/pkg/config"
	"github.com/computerscienceiscool/scriptkit/pkg/evaluator"
)

// response is the structured form of a command result.
type response struct {
	Command  string   `json:"command" yaml:"command"`
	Args     []string `json:"args" yaml:"args"`
	Async    bool     `json:"async" yaml:"async"`
	Result   any      `json:"result,omitempty" yaml:"result,omitempty"`
	Duration string   `json:"duration" yaml:"duration"`
}

func newResponse(r evaluator.ExecutionResult) response {
	args := r.Command.Args
	if args == nil {
		args = []string{}
	}
	return response{
		Command:  r.Command.Type,
		Args:     args,
		Async:    r.Command.Async,
		Result:   r.Result,
		Duration: r.ExecutionTime.Round(time.Microsecond).String(),
	}
}

// render writes v to w in the requested format. Text output is delegated
// to renderText.
func render(w io.Writer, format string, v any) error {
	switch format {
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return renderText(w, v)
	}
}

func renderText(w io.Writer, v any) error {
	var err error
	switch val := v.(type) {
	case nil:
	case response:
		return renderText(w, val.Result)
	case string:
		_, err = io.WriteString(w, val)
		if err == nil && val != "" && !strings.HasSuffix(val, "\n") {
			_, err = io.WriteString(w, "\n")
		}
	case []string:
		for _, line := range val {
			if _, err = fmt.Fprintln(w, line); err != nil {
				break
			}
		}
	case []audit.Event:
		for _, e := range val {
			status := "success"
			if !e.Success {
				status = "failed"
			}
			line := fmt.Sprintf("%s  %s  %-8s %-7s %s",
				e.Timestamp.Local().Format(time.RFC3339), e.SessionID, e.Command, status, e.Argument)
			if e.ErrorMsg != "" {
				line += "  " + e.ErrorMsg
			}
			if _, err = fmt.Fprintln(w, line); err != nil {
				break
			}
		}
	default:
		_, err = fmt.Fprintln(w, val)
	}
	return err
}
