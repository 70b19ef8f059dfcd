package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	cfg     Config
)

var rootCmd = &cobra.Command{
	Use:   "stylize [file]",
	Short: "Render lightweight markup as styled text",
	Long: `Stylize reads markup from a file or stdin, applies the markdown rules of
the text engine and renders the styled text to the console or as HTML, or
reports the height the text needs when set at a given width.`,
	Args: cobra.MaximumNArgs(1),
	RunE: run,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/stylize/config.yaml)")
	rootCmd.Flags().StringP("format", "f", "", "output format: console, html or height")
	rootCmd.Flags().IntP("width", "w", 0, "line width (columns, or points for height)")
	rootCmd.Flags().String("font", "", "base font family")
	rootCmd.Flags().Float64("size", 0, "base font size in points")
	rootCmd.Flags().String("color", "", "base color as hex, e.g. #333333")
	rootCmd.Flags().Bool("bidi", false, "emit terminal control codes for bidi text")

	// Bind flags to viper
	_ = viper.BindPFlag("format", rootCmd.Flags().Lookup("format"))
	_ = viper.BindPFlag("width", rootCmd.Flags().Lookup("width"))
	_ = viper.BindPFlag("font.family", rootCmd.Flags().Lookup("font"))
	_ = viper.BindPFlag("font.size", rootCmd.Flags().Lookup("size"))
	_ = viper.BindPFlag("color", rootCmd.Flags().Lookup("color"))
	_ = viper.BindPFlag("bidi", rootCmd.Flags().Lookup("bidi"))
}

func initConfig() {
	defaults := Defaults()
	viper.SetDefault("font.family", defaults.Font.Family)
	viper.SetDefault("font.size", defaults.Font.Size)
	viper.SetDefault("color", defaults.Color)
	viper.SetDefault("width", defaults.Width)
	viper.SetDefault("format", defaults.Format)
	viper.SetDefault("bidi", defaults.Bidi)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, _ := os.UserHomeDir()
		viper.AddConfigPath(filepath.Join(home, ".config", "stylize"))
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintf(os.Stderr, "stylize: reading config: %v\n", err)
		}
	}
	_ = viper.Unmarshal(&cfg)
}

func run(cmd *cobra.Command, args []string) error {
	var in io.Reader = cmd.InOrStdin()
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("opening input: %w", err)
		}
		defer f.Close()
		in = f
	}
	return render(cfg, in, cmd.OutOrStdout())
}
