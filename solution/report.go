package solution

import (
	"io"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/wcjunkins/tspmerge/tsp"
)

// Report describes one CLI run.
type Report struct {
	RunID    string        `yaml:"run_id"`
	Mode     string        `yaml:"mode"`
	Input    string        `yaml:"input"`
	Nodes    int           `yaml:"nodes"`
	Total    float64       `yaml:"total"`
	Tour     []int         `yaml:"tour,flow"`
	Trace    []tsp.Step    `yaml:"trace,omitempty"`
	Output   string        `yaml:"output,omitempty"`
	Elapsed  time.Duration `yaml:"elapsed"`
	Finished time.Time     `yaml:"finished"`
}

// WriteReport encodes r to w as YAML.
func WriteReport(w io.Writer, r Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return errors.Wrap(err, "encode report")
	}

	return errors.Wrap(enc.Close(), "encode report")
}

// ReadReport decodes a report written by WriteReport.
func ReadReport(r io.Reader) (Report, error) {
	var rep Report
	if err := yaml.NewDecoder(r).Decode(&rep); err != nil {
		return Report{}, errors.Wrap(err, "decode report")
	}

	return rep, nil
}
