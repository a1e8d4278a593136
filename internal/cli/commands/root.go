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

// Package commands implements the enumx command line.
package commands

import (
	"fmt"
	"io"
	"runtime"

	"github.com/AlecAivazis/survey/v2"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"dirpx.dev/enumx"
	"dirpx.dev/enumx/decl"
	"dirpx.dev/enumx/internal/cli/config"
	"dirpx.dev/enumx/internal/fslock"
)

var (
	// Version information, set at build time.
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// askFunc prompts the user, see survey.AskOne.
type askFunc func(p survey.Prompt, response any, opts ...survey.AskOpt) error

// app is the state shared by the subcommands of one invocation.
type app struct {
	configFile string
	verbose    bool

	cfg     *config.Config
	logger  *zap.Logger
	updater *fslock.Updater
	ask     askFunc
}

// NewRootCommand creates the root command.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&app{ask: survey.AskOne})
}

func newRootCommand(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "enumx",
		Short: "Enum declaration tooling",
		Long: color.CyanString(`enumx - enums with metadata, keyed collections and hydration

Declaration files (*.enum.yaml) are discovered under the configured paths.
The tooling generates them, documents their methods and mirrors them as
TypeScript enums.`),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init()
		},
	}

	root.PersistentFlags().StringVarP(&a.configFile, "config", "c", "", "config file (default ./"+config.FileName+")")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log what the tooling does")

	root.AddCommand(newVersionCommand())
	root.AddCommand(newMakeCommand(a))
	root.AddCommand(newAnnotateCommand(a))
	root.AddCommand(newTSCommand(a))
	root.AddCommand(newInspectCommand(a))

	return root
}

func (a *app) init() error {
	cfg, err := config.Load(a.configFile)
	if err != nil {
		return err
	}
	a.cfg = cfg
	enumx.SetConfig(cfg.Library())

	a.logger = zap.NewNop()
	if a.verbose {
		if l, err := zap.NewDevelopment(); err == nil {
			a.logger = l
		}
	}
	a.updater = fslock.New()
	if a.ask == nil {
		a.ask = survey.AskOne
	}
	return nil
}

// loadTypes builds every declared type.
func (a *app) loadTypes() ([]*enumx.Type, error) {
	return decl.NewLoader(decl.WithLogger(a.logger)).LoadAll(a.cfg.DeclarationPaths())
}

// selectTypes picks the types named in names, by full or short name, or all
// of them when all is set.
func selectTypes(types []*enumx.Type, names []string, all bool) ([]*enumx.Type, error) {
	if all {
		return types, nil
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("name at least one enum or pass --all")
	}
	out := make([]*enumx.Type, 0, len(names))
	for _, n := range names {
		var found *enumx.Type
		for _, t := range types {
			if t.Name() == n || t.ShortName() == n {
				found = t
				break
			}
		}
		if found == nil {
			return nil, fmt.Errorf("enum %q not found", n)
		}
		out = append(out, found)
	}
	return out, nil
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			printField(out, "enumx version: ", Version)
			printField(out, "Git commit: ", GitCommit)
			printField(out, "Build date: ", BuildDate)
			printField(out, "Go version: ", runtime.Version())
		},
	}
}

func printField(w io.Writer, title, value string) {
	color.New(color.FgCyan, color.Bold).Fprint(w, title)
	color.New(color.FgWhite).Fprintln(w, value)
}

// Execute runs the root command.
func Execute() error {
	root := NewRootCommand()
	if err := root.Execute(); err != nil {
		color.New(color.FgRed, color.Bold).Fprintf(root.ErrOrStderr(), "Error: %v\n", err)
		return err
	}
	return nil
}
