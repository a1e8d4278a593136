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
	"github.com/spf13/cobra"
)

func newAnnotateCommand(a *app) *cobra.Command {
	var all, force bool
	cmd := &cobra.Command{
		Use:   "annotate [enum...]",
		Short: "Document enum methods above their declarations",
		Long: `Write @method annotations for every case and declared key above the
declaration of each enum. Annotations already present are kept unless
--force is set.

Examples:
  enumx annotate app.Status
  enumx annotate --all --force`,
		RunE: func(cmd *cobra.Command, args []string) error {
			types, err := a.loadTypes()
			if err != nil {
				return err
			}
			types, err = selectTypes(types, args, all)
			if err != nil {
				return err
			}
			return a.annotate(cmd, types, force)
		},
	}
	cmd.Flags().BoolVarP(&all, "all", "a", false, "annotate every discovered enum")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "replace existing annotations")
	return cmd
}

func newTSCommand(a *app) *cobra.Command {
	var all, force bool
	cmd := &cobra.Command{
		Use:   "ts [enum...]",
		Short: "Synchronize enums into the TypeScript file",
		Long: `Mirror enums as TypeScript "export enum" declarations in the configured
typescript file. An enum already present is left alone unless --force is set.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			types, err := a.loadTypes()
			if err != nil {
				return err
			}
			types, err = selectTypes(types, args, all)
			if err != nil {
				return err
			}
			return a.syncTypeScript(cmd, types, force)
		},
	}
	cmd.Flags().BoolVarP(&all, "all", "a", false, "synchronize every discovered enum")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "replace existing TypeScript enums")
	return cmd
}
