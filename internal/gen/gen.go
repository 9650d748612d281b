// Package gen renders the per-arity query code of package ecsbind.
//
// Arity 1 is written by hand; every shape from 2 up to the configured
// ceiling comes from query.tmpl, so slot order is produced by one rule at
// every arity.
package gen

import (
	"bytes"
	_ "embed"
	"fmt"
	"go/format"
	"strings"
	"text/template"

	"github.com/JeremyLoy/config"
	"github.com/rotisserie/eris"
)

// Limit is the widest shape the generated code can support. Shared-column
// flags are kept in a 64-bit mask.
const Limit = 64

//go:embed query.tmpl
var queryTemplate string

var tmpl = template.Must(template.New("query").Parse(queryTemplate))

// Config controls a generator run. Fields are read from the environment
// (ECSBIND_MAX_ARITY, ECSBIND_OUTPUT, ECSBIND_PACKAGE).
type Config struct {
	Output   string `config:"ECSBIND_OUTPUT"`
	Package  string `config:"ECSBIND_PACKAGE"`
	MaxArity int    `config:"ECSBIND_MAX_ARITY"`
}

// DefaultConfig returns the settings the checked-in code is generated with.
func DefaultConfig() Config {
	return Config{
		Output:   "query_generated.go",
		Package:  "ecsbind",
		MaxArity: 12,
	}
}

// LoadConfig returns DefaultConfig overridden by any matching environment
// variables.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()
	if err := config.FromEnv().To(&cfg); err != nil {
		return cfg, eris.Wrap(err, "failed to load generator config from environment")
	}
	return cfg, nil
}

// Validate reports whether cfg can be rendered.
func (c Config) Validate() error {
	if c.MaxArity < 1 || c.MaxArity > Limit {
		return eris.Errorf("max arity %d outside [1, %d]", c.MaxArity, Limit)
	}
	if c.Package == "" {
		return eris.New("package name is empty")
	}
	if c.Output == "" {
		return eris.New("output path is empty")
	}
	return nil
}

type slot struct {
	Type  string
	Index int
}

type arity struct {
	Params string
	Args   string
	Vars   string
	Rows   string
	Views  string
	Slots  []slot
	N      int
}

func newArity(n int) arity {
	a := arity{N: n, Slots: make([]slot, n)}
	params := make([]string, n)
	args := make([]string, n)
	vars := make([]string, n)
	rows := make([]string, n)
	views := make([]string, n)
	for i := range n {
		t := fmt.Sprintf("T%d", i+1)
		a.Slots[i] = slot{Type: t, Index: i}
		params[i] = fmt.Sprintf("%s Slot[%s]", t, t)
		args[i] = t
		vars[i] = fmt.Sprintf("v%d", i+1)
		rows[i] = fmt.Sprintf("rowOf[%s](c, %d, i)", t, i)
		views[i] = fmt.Sprintf("viewOf[%s](c, %d)", t, i)
	}
	a.Params = strings.Join(params, ", ")
	a.Args = strings.Join(args, ", ")
	a.Vars = strings.Join(vars, ", ")
	a.Rows = strings.Join(rows, ", ")
	a.Views = strings.Join(views, ", ")
	return a
}

// Generate renders and gofmts the query code for cfg.
func Generate(cfg Config) ([]byte, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	data := struct {
		Package  string
		Arities  []arity
		MaxArity int
	}{Package: cfg.Package, MaxArity: cfg.MaxArity}
	for n := 2; n <= cfg.MaxArity; n++ {
		data.Arities = append(data.Arities, newArity(n))
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, eris.Wrap(err, "failed to render query template")
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, eris.Wrap(err, "generated code does not parse")
	}
	return src, nil
}
