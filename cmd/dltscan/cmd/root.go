/*
Copyright (c) the dlt authors.

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

package cmd

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var rootVerboseFlag bool

// RootCmd is the entry point for the dltscan CLI.
var RootCmd = &cobra.Command{
	Use:   "dltscan",
	Short: "dltscan reads DLT trace files and reports on their contents",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		ConfigureVerbosity()
	},
}

func init() {
	RootCmd.PersistentFlags().BoolVarP(&rootVerboseFlag, "verbose", "v", false, "enable debug logging")
}

// ConfigureVerbosity sets the logrus level from the --verbose flag.
func ConfigureVerbosity() {
	log.SetLevel(log.InfoLevel)
	if rootVerboseFlag {
		log.SetLevel(log.DebugLevel)
	}
}
