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
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"dirpx.dev/enumx"
	"dirpx.dev/enumx/decl"
	"dirpx.dev/enumx/internal/annotator"
	"dirpx.dev/enumx/internal/cli/ui"
	"dirpx.dev/enumx/internal/generator"
	"dirpx.dev/enumx/internal/typescript"
)

type makeOptions struct {
	backing     string
	force       bool
	typescript  bool
	interactive bool
}

func newMakeCommand(a *app) *cobra.Command {
	var opts makeOptions
	cmd := &cobra.Command{
		Use:   "make [name] [case...]",
		Short: "Generate an enum declaration file",
		Long: `Generate an enum declaration file under enums_dir.

Backing strategies: pure, custom (name=value), snake, camel, kebab, upper,
lower, int0, int1 and bitwise. Without --backed the enum is pure, or custom
when a case contains "=".

Examples:
  enumx make app/Status Active Inactive
  enumx make app.Level low=1 high=2
  enumx make app/Color Red Green --backed=lower --typescript
  enumx make --interactive`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runMake(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.backing, "backed", "b", "", "backing strategy")
	cmd.Flags().BoolVarP(&opts.force, "force", "f", false, "overwrite an existing declaration")
	cmd.Flags().BoolVarP(&opts.typescript, "typescript", "t", false, "synchronize the TypeScript enum")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "prompt for missing input")
	return cmd
}

func (a *app) runMake(cmd *cobra.Command, args []string, opts makeOptions) error {
	req := generator.Request{Backing: opts.backing, Force: opts.force}
	if len(args) > 0 {
		req.Name, req.Cases = args[0], args[1:]
	}
	if opts.interactive {
		if err := a.prompt(&req); err != nil {
			return err
		}
	}
	if req.Name == "" {
		return fmt.Errorf("missing enum name")
	}

	out := cmd.OutOrStdout()
	gen := generator.New(a.cfg.EnumsPath(), generator.WithLogger(a.logger), generator.WithUpdater(a.updater))
	res, err := gen.Generate(cmd.Context(), req)
	if err != nil {
		ui.Fail(out, "%s", generator.NormalizeName(req.Name))
		return err
	}
	if res.Written {
		ui.Done(out, "enum %s created in %s", res.Declaration.Name, res.Path)
	} else {
		ui.Skip(out, "%s already exists, use --force to overwrite", res.Path)
	}

	t, err := decl.NewLoader(decl.WithLogger(a.logger)).Load(res.Path)
	if err != nil {
		return err
	}
	if err := a.annotate(cmd, []*enumx.Type{t}, opts.force); err != nil {
		return err
	}
	if opts.typescript {
		return a.syncTypeScript(cmd, []*enumx.Type{t}, opts.force)
	}
	return nil
}

// prompt asks for whatever the arguments left out.
func (a *app) prompt(req *generator.Request) error {
	if req.Name == "" {
		err := a.ask(&survey.Input{
			Message: "Enum name:",
			Help:    "Dot or slash separated, e.g. app/billing/Status",
		}, &req.Name, survey.WithValidator(survey.Required))
		if err != nil {
			return err
		}
	}

	if req.Backing == "" {
		cases := generator.Backing.Cases()
		labels := make([]string, len(cases))
		for i, c := range cases {
			labels[i] = generator.Label(c)
		}
		var idx int
		if err := a.ask(&survey.Select{Message: "Backing strategy:", Options: labels}, &idx); err != nil {
			return err
		}
		req.Backing = cases[idx].Name()
	}

	if len(req.Cases) == 0 {
		var line string
		err := a.ask(&survey.Input{
			Message: "Cases:",
			Help:    "Space separated; name=value with the custom strategy",
		}, &line, survey.WithValidator(survey.Required))
		if err != nil {
			return err
		}
		req.Cases = strings.Fields(line)
	}
	return nil
}

func (a *app) annotate(cmd *cobra.Command, types []*enumx.Type, force bool) error {
	out := cmd.OutOrStdout()
	changed, err := annotator.New(annotator.WithLogger(a.logger), annotator.WithUpdater(a.updater)).
		AnnotateAll(cmd.Context(), types, force)
	if err != nil {
		ui.Fail(out, "annotations")
		return err
	}
	done := make(map[string]bool, len(changed))
	for _, n := range changed {
		done[n] = true
	}
	for _, t := range types {
		if done[t.Name()] {
			ui.Done(out, "%s annotated", t.Name())
		} else {
			ui.Skip(out, "%s annotations are up to date", t.Name())
		}
	}
	return nil
}

func (a *app) syncTypeScript(cmd *cobra.Command, types []*enumx.Type, force bool) error {
	out := cmd.OutOrStdout()
	path := a.cfg.TypeScriptPath()
	if path == "" {
		return fmt.Errorf("typescript path is not configured")
	}
	s := typescript.New(typescript.WithLogger(a.logger), typescript.WithUpdater(a.updater))
	for _, t := range types {
		outcome, err := s.Sync(cmd.Context(), t, path, force)
		if err != nil {
			ui.Fail(out, "%s", t.Name())
			return err
		}
		if outcome == typescript.Unchanged {
			ui.Skip(out, "TypeScript enum %s already exists, use --force to overwrite", t.ShortName())
			continue
		}
		ui.Done(out, "TypeScript enum %s %s in %s", t.ShortName(), outcome, path)
	}
	return nil
}
