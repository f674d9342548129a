// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package jobfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"

	"github.com/MKhiriev/go-qnexus/models"
)

const (
	BackendSelene = "selene"
	BackendHelios = "helios"
)

// File is a decoded job definition file.
type File struct {
	Project     string `hcl:"project"`
	Description string `hcl:"description,optional"`
	Jobs        []Job  `hcl:"job,block"`

	// Dir is the directory program paths are resolved against.
	Dir string
}

type Job struct {
	Name     string    `hcl:"name,label"`
	Programs []Program `hcl:"program,block"`
	Backend  Backend   `hcl:"backend,block"`

	// ResultVersion selects the encoding printed by the CLI. Zero means
	// the default collated encoding.
	ResultVersion int `hcl:"result_version,optional"`
}

type Program struct {
	Name        string `hcl:"name,label"`
	Path        string `hcl:"path"`
	Description string `hcl:"description,optional"`
	NShots      int    `hcl:"n_shots"`
}

type Backend struct {
	Type       string `hcl:"type,label"`
	NQubits    int    `hcl:"n_qubits"`
	SystemName string `hcl:"system_name,optional"`
}

// Load reads and decodes the file at path with the current process
// environment.
func Load(path string) (*File, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read job file: %w", err)
	}

	f, err := Parse(src, path, environ())
	if err != nil {
		return nil, err
	}
	f.Dir = filepath.Dir(path)
	return f, nil
}

// Parse decodes src. filename is used in diagnostics only; env is exposed to
// expressions as the env object.
func Parse(src []byte, filename string, env map[string]string) (*File, error) {
	parsed, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: %w", ErrInvalidJobFile, diags)
	}

	var f File
	if diags = gohcl.DecodeBody(parsed.Body, evalContext(env), &f); diags.HasErrors() {
		return nil, fmt.Errorf("%w: %w", ErrInvalidJobFile, diags)
	}
	if err := f.validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

func evalContext(env map[string]string) *hcl.EvalContext {
	vars := make(map[string]cty.Value, len(env))
	for k, v := range env {
		vars[k] = cty.StringVal(v)
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": cty.ObjectVal(vars),
		},
		Functions: map[string]function.Function{
			"upper":     stdlib.UpperFunc,
			"lower":     stdlib.LowerFunc,
			"trimspace": stdlib.TrimSpaceFunc,
			"format":    stdlib.FormatFunc,
			"max":       stdlib.MaxFunc,
			"min":       stdlib.MinFunc,
		},
	}
}

func environ() map[string]string {
	env := make(map[string]string)
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok && k != "" {
			env[k] = v
		}
	}
	return env
}

func (f *File) validate() error {
	if strings.TrimSpace(f.Project) == "" {
		return fmt.Errorf("%w: project is empty", ErrInvalidJobFile)
	}
	if len(f.Jobs) == 0 {
		return fmt.Errorf("%w: no job blocks", ErrInvalidJobFile)
	}

	seen := make(map[string]struct{}, len(f.Jobs))
	for _, j := range f.Jobs {
		if _, ok := seen[j.Name]; ok {
			return fmt.Errorf("%w: duplicate job %q", ErrInvalidJobFile, j.Name)
		}
		seen[j.Name] = struct{}{}

		if len(j.Programs) == 0 {
			return fmt.Errorf("%w: job %q has no programs", ErrInvalidJobFile, j.Name)
		}
		if _, err := j.Backend.Config(); err != nil {
			return fmt.Errorf("job %q: %w", j.Name, err)
		}
		if j.ResultVersion != 0 && !models.ResultVersion(j.ResultVersion).Supported() {
			return fmt.Errorf("job %q: %w: %d", j.Name, models.ErrDecodeVersionUnsupported, j.ResultVersion)
		}
	}
	return nil
}

// Job returns the job named name. An empty name selects the only job of a
// single-job file.
func (f *File) Job(name string) (Job, error) {
	if name == "" {
		if len(f.Jobs) == 1 {
			return f.Jobs[0], nil
		}
		return Job{}, fmt.Errorf("%w: file declares %d jobs, name one", ErrJobNotFound, len(f.Jobs))
	}

	for _, j := range f.Jobs {
		if j.Name == name {
			return j, nil
		}
	}
	return Job{}, fmt.Errorf("%w: %q", ErrJobNotFound, name)
}

// ProgramPath resolves p.Path against the file directory.
func (f *File) ProgramPath(p Program) string {
	if filepath.IsAbs(p.Path) || f.Dir == "" {
		return p.Path
	}
	return filepath.Join(f.Dir, p.Path)
}

// NShots returns the shot counts of the job's programs in declaration order.
func (j Job) NShots() []int {
	shots := make([]int, len(j.Programs))
	for i, p := range j.Programs {
		shots[i] = p.NShots
	}
	return shots
}

// Version returns the result version the job asks for.
func (j Job) Version() models.ResultVersion {
	if j.ResultVersion == 0 {
		return models.ResultVersionDefault
	}
	return models.ResultVersion(j.ResultVersion)
}

// Config converts the block into a backend config variant.
func (b Backend) Config() (models.BackendConfig, error) {
	var cfg models.BackendConfig

	switch strings.ToLower(b.Type) {
	case BackendSelene:
		cfg = models.SeleneConfig{NQubits: b.NQubits}
	case BackendHelios:
		cfg = models.HeliosConfig{
			SystemName:     b.SystemName,
			EmulatorConfig: &models.HeliosEmulatorConfig{NQubits: b.NQubits},
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, b.Type)
	}

	if err := models.ValidateBackendConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
