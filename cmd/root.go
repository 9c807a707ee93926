package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// errReported signals a failure that was already explained to the user.
// Execute exits non-zero without printing it again.
var errReported = errors.New("failure already reported")

var rootCmd = &cobra.Command{
	Use:   "periodic [query]",
	Short: "Periodic table lookup",
	Long: `Periodic looks up chemical elements by symbol (Fe), English name (Iron)
or localized name (铁) and prints their properties.

With a query it behaves like "periodic lookup"; without one it shows help.`,
	Args: cobra.ArbitraryArgs,
	RunE: runRootDefault,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
	rootCmd.PersistentFlags().String("config", "", "config file (default .periodic.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().String("locale", "", "locale of the name table, e.g. zh-Hans or zh-Hant")
	rootCmd.PersistentFlags().String("data", "", "element dataset (.json or .toml); default is the built-in dataset")
	rootCmd.PersistentFlags().Bool("no-color", false, "disable colored output")
}

func initConfig() {
	if cfgFile, _ := rootCmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".periodic")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("PERIODIC")
	viper.AutomaticEnv()

	// Bound here rather than in init so a viper.Reset between runs keeps them.
	flags := rootCmd.PersistentFlags()
	_ = viper.BindPFlag("verbose", flags.Lookup("verbose"))
	_ = viper.BindPFlag("locale", flags.Lookup("locale"))
	_ = viper.BindPFlag("data_file", flags.Lookup("data"))

	// It's fine if no config file is found; we use defaults.
	_ = viper.ReadInConfig()
}

// runRootDefault treats positional arguments as a lookup query and shows
// the banner and help when there are none.
func runRootDefault(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return runLookup(cmd, args)
	}
	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()
	s.printer.Banner()
	return cmd.Help()
}
