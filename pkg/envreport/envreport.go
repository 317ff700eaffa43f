// Package envreport prints the identifying fields a script run expects in
// its environment and warns about the ones that are missing.
package envreport

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
	"github.com/subosito/gotenv"
)

// NotSet is printed in place of a missing value.
const NotSet = "(not set)"

// Info holds the identifying fields read from the environment.
type Info struct {
	Name    string `envconfig:"NAME"`
	Surname string `envconfig:"SURNAME"`
	Group   string `envconfig:"GROUP"`
	Number  string `envconfig:"NUMBER"`
	Mode    string `envconfig:"MODE"`
}

// Field is one labelled value of a Report.
type Field struct {
	Label string `json:"label" yaml:"label"`
	Value string `json:"value" yaml:"value"`
	Set   bool   `json:"set" yaml:"set"`
}

// Report is the result of reading Info, in declaration order.
type Report struct {
	Fields  []Field  `json:"fields" yaml:"fields"`
	Missing []string `json:"missing" yaml:"missing"`
}

// LoadDotEnv loads variables from path into the process environment without
// overriding variables that are already set. A missing file is not an error.
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return gotenv.Load(path)
}

// Read collects Info from the environment. Empty values count as missing.
func Read() (*Report, error) {
	var info Info
	if err := envconfig.Process("", &info); err != nil {
		return nil, err
	}
	return NewReport(info), nil
}

// NewReport labels the fields of info and lists the missing ones.
func NewReport(info Info) *Report {
	fields := []Field{
		{Label: "Name", Value: info.Name},
		{Label: "Surname", Value: info.Surname},
		{Label: "Group", Value: info.Group},
		{Label: "Number", Value: info.Number},
		{Label: "Mode", Value: info.Mode},
	}

	r := &Report{Fields: fields, Missing: []string{}}
	for i := range r.Fields {
		r.Fields[i].Set = r.Fields[i].Value != ""
		if !r.Fields[i].Set {
			r.Missing = append(r.Missing, r.Fields[i].Label)
		}
	}
	return r
}

// Log writes one warning naming every missing field, then one line per field.
func (r *Report) Log(logger zerolog.Logger) {
	if len(r.Missing) > 0 {
		logger.Warn().
			Strs("missing", r.Missing).
			Msg("Missing env variables: " + strings.Join(r.Missing, ", "))
	}

	for _, f := range r.Fields {
		value := f.Value
		if !f.Set {
			value = NotSet
		}
		logger.Info().Msg(f.Label + ": " + value)
	}
}
