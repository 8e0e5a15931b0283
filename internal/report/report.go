// Package report renders a lowered contract for people and for tools.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"scilla/contract"
	"scilla/internal/config"
)

// ContractJSON is the serializable form of a contract surface.
type ContractJSON struct {
	Name        string           `json:"name" yaml:"name"`
	Library     string           `json:"library,omitempty" yaml:"library,omitempty"`
	Imports     []ImportJSON     `json:"imports,omitempty" yaml:"imports,omitempty"`
	InitParams  []FieldJSON      `json:"initParams" yaml:"initParams"`
	Fields      []FieldJSON      `json:"fields" yaml:"fields"`
	Transitions []TransitionJSON `json:"transitions" yaml:"transitions"`
	Procedures  []TransitionJSON `json:"procedures,omitempty" yaml:"procedures,omitempty"`
	Types       []TypeJSON       `json:"types,omitempty" yaml:"types,omitempty"`
}

type ImportJSON struct {
	Name  string `json:"name" yaml:"name"`
	Alias string `json:"alias,omitempty" yaml:"alias,omitempty"`
}

// FieldJSON holds a parameter or field with its rendered type.
type FieldJSON struct {
	Name string `json:"name" yaml:"name"`
	Type string `json:"type" yaml:"type"`
}

type TransitionJSON struct {
	Name   string      `json:"name" yaml:"name"`
	Params []FieldJSON `json:"params" yaml:"params"`
}

// TypeJSON holds a library ADT.
type TypeJSON struct {
	Name         string            `json:"name" yaml:"name"`
	Namespace    string            `json:"namespace,omitempty" yaml:"namespace,omitempty"`
	Constructors []ConstructorJSON `json:"constructors" yaml:"constructors"`
}

type ConstructorJSON struct {
	Name string   `json:"name" yaml:"name"`
	Args []string `json:"args,omitempty" yaml:"args,omitempty"`
}

// Convert builds the serializable form. Procedures and types are left out
// when out disables them.
func Convert(c contract.Contract, out config.Output) ContractJSON {
	doc := ContractJSON{
		Name:        c.Name,
		Library:     c.Library,
		InitParams:  convertFields(c.InitParams),
		Fields:      convertFields(c.Fields),
		Transitions: convertTransitions(c.Transitions),
	}
	for _, imp := range c.Imports {
		doc.Imports = append(doc.Imports, ImportJSON{Name: imp.Name, Alias: imp.Alias})
	}
	if out.ShowProcedures && len(c.Procedures) > 0 {
		doc.Procedures = convertTransitions(c.Procedures)
	}
	if out.ShowTypes {
		for _, def := range c.Types {
			t := TypeJSON{Name: def.Name, Namespace: def.Namespace, Constructors: []ConstructorJSON{}}
			for _, ctor := range def.Constructors {
				t.Constructors = append(t.Constructors, ConstructorJSON{Name: ctor.Name, Args: typeNames(ctor.Args)})
			}
			doc.Types = append(doc.Types, t)
		}
	}
	return doc
}

func convertFields(fields contract.FieldList) []FieldJSON {
	out := make([]FieldJSON, len(fields))
	for i, f := range fields {
		out[i] = FieldJSON{Name: f.Name, Type: f.Type.String()}
	}
	return out
}

func convertTransitions(transitions contract.TransitionList) []TransitionJSON {
	out := make([]TransitionJSON, len(transitions))
	for i, t := range transitions {
		out[i] = TransitionJSON{Name: t.Name, Params: convertFields(t.Params)}
	}
	return out
}

func typeNames(types []contract.Type) []string {
	if len(types) == 0 {
		return nil
	}
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = t.String()
	}
	return names
}

// Write renders c to w in out.Format.
func Write(w io.Writer, c contract.Contract, out config.Output) error {
	switch out.Format {
	case "json":
		data, err := marshalJSON(Convert(c, out), true)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", data)
		return err
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(Convert(c, out)); err != nil {
			return err
		}
		return enc.Close()
	case "text", "":
		return writeText(w, c, out)
	default:
		return fmt.Errorf("unknown output format %q", out.Format)
	}
}

func marshalJSON(v any, indent bool) ([]byte, error) {
	if indent {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

func signature(params contract.FieldList) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = p.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func constructorSignature(ctor contract.Constructor) string {
	if len(ctor.Args) == 0 {
		return ctor.Name
	}
	return ctor.Name + " of " + strings.Join(typeNames(ctor.Args), " ")
}
