// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package hugr

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-qnexus/internal/qsys"
)

// ResultDecl is a result call found in the program.
type ResultDecl struct {
	Label string
	Kind  qsys.TagKind

	// Width is the array length of bit array results, zero otherwise.
	Width int
}

// OpCounts tallies the operations relevant for costing.
type OpCounts struct {
	OneQubit int
	TwoQubit int
	Measure  int
}

func (c OpCounts) add(o OpCounts) OpCounts {
	return OpCounts{
		OneQubit: c.OneQubit + o.OneQubit,
		TwoQubit: c.TwoQubit + o.TwoQubit,
		Measure:  c.Measure + o.Measure,
	}
}

// Program is what the stub service knows about an artifact.
type Program struct {
	// Results lists result calls in node order.
	Results []ResultDecl

	// Qubits is the number of qubit allocations.
	Qubits int

	// Certain counts operations outside any conditional case.
	Certain OpCounts

	// Conditional counts operations nested under a conditional case.
	Conditional OpCounts
}

// Total returns certain and conditional operations together.
func (p Program) Total() OpCounts {
	return p.Certain.add(p.Conditional)
}

type node struct {
	Parent    int               `json:"parent"`
	Op        string            `json:"op"`
	Name      string            `json:"name"`
	Extension string            `json:"extension"`
	Args      []json.RawMessage `json:"args"`
}

type module struct {
	Nodes []node `json:"nodes"`
}

type document struct {
	Modules []module `json:"modules"`
	Nodes   []node   `json:"nodes"`
}

var (
	oneQubitOps = map[string]bool{
		"h": true, "x": true, "y": true, "z": true, "s": true, "sdg": true,
		"t": true, "tdg": true, "v": true, "vdg": true, "rx": true, "ry": true,
		"rz": true, "phasedx": true, "reset": true,
	}
	twoQubitOps = map[string]bool{
		"cx": true, "cnot": true, "cy": true, "cz": true, "crz": true,
		"zzmax": true, "zzphase": true,
	}
	measureOps = map[string]bool{
		"measure": true, "measurefree": true, "lazymeasure": true, "mz": true,
	}
	allocOps = map[string]bool{
		"qalloc": true, "tryqalloc": true,
	}
	resultKinds = map[string]qsys.TagKind{
		"result_bool":       qsys.TagBool,
		"result_int":        qsys.TagInt,
		"result_uint":       qsys.TagUint,
		"result_f64":        qsys.TagFloat,
		"result_array_bool": qsys.TagBits,
	}
)

// Inspect reads the program structure from an artifact.
func Inspect(data []byte) (Program, error) {
	payload, err := Payload(data)
	if err != nil {
		return Program{}, err
	}
	if !isJSON(payload) {
		return Program{}, ErrUnsupportedEncoding
	}

	var doc document
	if err = json.Unmarshal(payload, &doc); err != nil {
		return Program{}, fmt.Errorf("decode program json: %w", err)
	}

	var prog Program
	if len(doc.Nodes) > 0 {
		inspectNodes(&prog, doc.Nodes)
	}
	for _, m := range doc.Modules {
		inspectNodes(&prog, m.Nodes)
	}

	return prog, nil
}

func inspectNodes(prog *Program, nodes []node) {
	conditional := conditionalNodes(nodes)

	for i, n := range nodes {
		name := strings.ToLower(opName(n))

		var counts OpCounts
		switch {
		case allocOps[name]:
			prog.Qubits++
			continue
		case oneQubitOps[name]:
			counts.OneQubit = 1
		case twoQubitOps[name]:
			counts.TwoQubit = 1
		case measureOps[name]:
			counts.Measure = 1
		case strings.HasPrefix(name, "result_"):
			prog.Results = append(prog.Results, resultDecl(name, n))
			continue
		default:
			continue
		}

		if conditional[i] {
			prog.Conditional = prog.Conditional.add(counts)
		} else {
			prog.Certain = prog.Certain.add(counts)
		}
	}
}

func opName(n node) string {
	if n.Name != "" {
		return n.Name
	}
	return n.Op
}

func resultDecl(name string, n node) ResultDecl {
	kind, ok := resultKinds[name]
	if !ok {
		kind = qsys.TagInt
	}

	decl := ResultDecl{Label: stringArg(n.Args), Kind: kind}
	if kind == qsys.TagBits {
		decl.Width = natArg(n.Args)
	}
	return decl
}

func natArg(args []json.RawMessage) int {
	for _, raw := range args {
		var arg struct {
			Tya string `json:"tya"`
			N   int    `json:"n"`
		}
		if err := json.Unmarshal(raw, &arg); err == nil && arg.Tya == "BoundedNat" {
			return arg.N
		}
	}
	return 0
}

// stringArg returns the first string type argument, which carries the result
// label.
func stringArg(args []json.RawMessage) string {
	for _, raw := range args {
		var arg struct {
			Tya string          `json:"tya"`
			Arg json.RawMessage `json:"arg"`
		}
		if err := json.Unmarshal(raw, &arg); err != nil || arg.Tya != "String" {
			continue
		}

		var s string
		if err := json.Unmarshal(arg.Arg, &s); err == nil {
			return s
		}
	}
	return ""
}

// conditionalNodes marks every node that has a Case node among its
// ancestors (or is one).
func conditionalNodes(nodes []node) []bool {
	const (
		unknown = iota
		visiting
		yes
		no
	)

	state := make([]int, len(nodes))

	var visit func(i int) bool
	visit = func(i int) bool {
		switch state[i] {
		case yes:
			return true
		case no, visiting:
			return false
		}

		state[i] = visiting
		result := strings.EqualFold(nodes[i].Op, "Case")
		if p := nodes[i].Parent; !result && p != i && p >= 0 && p < len(nodes) {
			result = visit(p)
		}

		if result {
			state[i] = yes
		} else {
			state[i] = no
		}
		return result
	}

	out := make([]bool, len(nodes))
	for i := range nodes {
		out[i] = visit(i)
	}
	return out
}
