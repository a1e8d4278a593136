/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package commands

import (
	"fmt"
	"io"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"dirpx.dev/enumx"
	"dirpx.dev/enumx/internal/annotator"
	"dirpx.dev/enumx/internal/cli/ui"
)

// enumView is the inspect rendering of a type.
type enumView struct {
	Name   string     `json:"name"`
	Kind   enumx.Kind `json:"kind"`
	Source string     `json:"source"`
	Cases  []caseView `json:"cases"`
	Keys   []keyView  `json:"keys"`
}

type caseView struct {
	Name  string `json:"name"`
	Value any    `json:"value,omitempty"`
}

type keyView struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

func inspect(t *enumx.Type) (enumView, error) {
	v := enumView{Name: t.Name(), Kind: t.Kind(), Source: t.Source()}
	for _, c := range t.Cases() {
		v.Cases = append(v.Cases, caseView{Name: c.Name(), Value: c.Value()})
	}
	for _, k := range enumx.DeclaredKeys(t) {
		typ, err := annotator.InferType(t, k)
		if err != nil {
			return enumView{}, err
		}
		v.Keys = append(v.Keys, keyView{Name: k, Type: typ})
	}
	return v, nil
}

func newInspectCommand(a *app) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "inspect [enum...]",
		Short: "Show discovered enums with their cases and keys",
		RunE: func(cmd *cobra.Command, args []string) error {
			types, err := a.loadTypes()
			if err != nil {
				return err
			}
			types, err = selectTypes(types, args, len(args) == 0)
			if err != nil {
				return err
			}

			views := make([]enumView, 0, len(types))
			for _, t := range types {
				v, err := inspect(t)
				if err != nil {
					return err
				}
				views = append(views, v)
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(views)
			}
			printViews(out, views)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}

func printViews(w io.Writer, views []enumView) {
	if len(views) == 0 {
		ui.Info(w, "no enums found")
		return
	}
	for _, v := range views {
		ui.Title(w, "%s (%s)", v.Name, v.Kind)
		fmt.Fprintf(w, "  source: %s\n", v.Source)
		for _, c := range v.Cases {
			if c.Value != nil {
				fmt.Fprintf(w, "  case %s = %v\n", c.Name, c.Value)
			} else {
				fmt.Fprintf(w, "  case %s\n", c.Name)
			}
		}
		for _, k := range v.Keys {
			fmt.Fprintf(w, "  key  %s %s\n", k.Type, k.Name)
		}
	}
}
