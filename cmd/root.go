package cmd

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"lunie/anim"
	"lunie/parameter"
	"lunie/phase"
	"lunie/shade"
	"lunie/widget"
)

var rootCmd = &cobra.Command{
	Use:   "lunie",
	Short: "Ambient lunar phase widget for the terminal",
	Long: "Lunie renders a moon disc shaded for the real lunar phase of the day,\n" +
		"with cursor parallax, an occasional blink, and optional night music.",
	RunE: runRoot,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.Flags()
	flags.String("config", "", "config file (default .lunie.toml)")
	flags.String("csv", "moon_daily.csv", "path to the daily phase CSV")
	flags.StringP("date", "d", "", "target date (MM/DD/YYYY, YYYY-MM-DD, today, yesterday, tomorrow, +N, -N)")
	flags.String("hemisphere", "north", "north or south; flips the lit limb")
	flags.Bool("no-music", false, "disable background music")
	flags.Float64("softness", parameter.DefaultSoftness, "terminator blend band as a fraction of radius")
	flags.Int("fps", parameter.DefaultFPS, "animation tick rate (30-60)")
	flags.String("log", "lunie.log", "log file path")
	flags.String("music-dir", ".", "directory searched for the night theme track")

	for _, name := range []string{"csv", "date", "hemisphere", "no-music", "softness", "fps", "log", "music-dir"} {
		_ = viper.BindPFlag(name, flags.Lookup(name))
	}
}

func initConfig() {
	if cfgFile, _ := rootCmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".lunie")
		viper.SetConfigType("toml")
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("LUNIE")
	viper.AutomaticEnv()

	// Running without a config file is the normal case
	_ = viper.ReadInConfig()
}

func runRoot(cmd *cobra.Command, args []string) error {
	logger, err := newLogger(viper.GetString("log"))
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Table load failure is survivable: the resolver runs on the
	// analytic fallback alone
	var table *phase.Table
	if t, err := phase.LoadTable(viper.GetString("csv"), sugar); err != nil {
		sugar.Warnw("phase table unavailable, using analytic fallback for all dates", "error", err)
	} else {
		table = t
		if err := t.Watch(ctx); err != nil {
			sugar.Warnw("phase table watch unavailable", "error", err)
		} else {
			sugar.Infow("watching phase table for changes", "path", t.Path())
		}
	}

	now := time.Now()
	followToday := viper.GetString("date") == ""
	target, err := phase.ParseTargetDate(viper.GetString("date"), now)
	if err != nil {
		sugar.Warnw("date flag unparseable, falling back to today", "error", err)
	}

	cfg := widget.Config{
		Hemisphere:  shade.ParseHemisphere(viper.GetString("hemisphere")),
		Softness:    viper.GetFloat64("softness"),
		FPS:         viper.GetInt("fps"),
		Music:       !viper.GetBool("no-music"),
		MusicDir:    viper.GetString("music-dir"),
		TargetDate:  target,
		FollowToday: followToday,
	}

	resolver := phase.NewResolver(table, sugar)
	controller := anim.NewController(rand.New(rand.NewSource(now.UnixNano())))

	w, err := widget.New(cfg, resolver, controller, sugar)
	if err != nil {
		return fmt.Errorf("init widget: %w", err)
	}
	defer w.Close()

	w.Run()
	return nil
}

// newLogger writes structured logs to a file; the terminal belongs to the
// widget
func newLogger(path string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	return cfg.Build()
}
