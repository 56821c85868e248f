// Package main provides the vcsnumber TeamCity build step binary.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"vcsnumber/src/config"
	"vcsnumber/src/deps"
	"vcsnumber/src/logger"
	"vcsnumber/src/pipeline"
	"vcsnumber/src/version"
)

// rootCmd represents the base command; the tool takes no flags or arguments.
var rootCmd = &cobra.Command{
	Use:     "vcsnumber",
	Short:   "Set the TeamCity build number to the largest vcs number in the build chain",
	Version: version.Version,
	Long: `vcsnumber sets the TeamCity build number of a configuration to
max(dependency build numbers + [own build number]).

Say an installer configuration depends on the module1 and module2
configurations. The installer has vcs number 100 and module1 has vcs number
103. The installer build number would be 100, but we want it to be 103.

To use it:
- In the artifact paths of every configuration that should influence the
  final build number, add "vcsnumber*.txt => vcsnumbers.zip".
- In the artifact dependencies of every configuration that should be
  influenced by its dependencies, add "vcsnumbers.zip!*.* =>".
- In all of the above, add a build step that runs this tool.

The tool prints "##teamcity[buildNumber '<computed>']" on stdout, which tells
TeamCity to update its displayed build number, and writes the computed vcs
number to vcsnumber_<configuration name>.txt so it is picked up as an
artifact by downstream configurations.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadFromEnv()
		if err != nil {
			return err
		}
		src := &deps.FileSource{Dir: cfg.WorkDir}
		_, err = pipeline.Run(cfg, src, os.Stdout, logger.NewConsoleLogger())
		return err
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
