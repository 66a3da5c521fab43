package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"uxmetrics/internal/analytics"
	"uxmetrics/internal/config"
	"uxmetrics/internal/database"
	"uxmetrics/internal/logging"
	"uxmetrics/internal/models"
	"uxmetrics/internal/repository"
)

var rootCmd = &cobra.Command{
	Use:   "uxmetrics",
	Short: "UX Metrics CLI",
	Long: `UX Metrics captures usability-research data and aggregates it.
Create studies, run evaluation sessions, record responses for the five
fixed instruments (task success rate, time on task, task efficiency,
error rate, SEQ), then view aggregated metrics, compare metric sets,
and export reports. All data lives in a per-workspace SQLite file.`,
	SilenceUsage: true,
}

func main() {
	cobra.OnInitialize(initConfig)
	addPersistentFlags()
	registerCommands()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func initConfig() {
	viper.SetEnvPrefix("UXM")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

func addPersistentFlags() {
	rootCmd.PersistentFlags().StringP("workspace", "w", ".", "workspace directory")
	rootCmd.PersistentFlags().Bool("json", false, "output JSON")
	_ = viper.BindPFlag("workspace", rootCmd.PersistentFlags().Lookup("workspace"))
	_ = viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func registerCommands() {
	rootCmd.AddCommand(studyCmd())
	rootCmd.AddCommand(personCmd())
	rootCmd.AddCommand(sessionCmd())
	rootCmd.AddCommand(responseCmd())
	rootCmd.AddCommand(metricsCmd())
	rootCmd.AddCommand(compareCmd())
	rootCmd.AddCommand(reportCmd())
	rootCmd.AddCommand(archiveCmd())
	rootCmd.AddCommand(seedCmd())
}

// app bundles everything a command needs once the workspace is open.
type app struct {
	cfg     *config.Config
	log     *zap.Logger
	db      *gorm.DB
	store   *repository.Store
	metrics *analytics.Service
}

// withApp opens the workspace (config, logger, database, instrument seed)
// and hands the wired application to fn.
func withApp(cmd *cobra.Command, fn func(ctx context.Context, a *app) error) error {
	workspace := viper.GetString("workspace")

	cfg, err := config.Load(workspace)
	if err != nil {
		return err
	}

	log, err := logging.Init(logging.Options{
		Directory:  filepath.Join(cfg.Workspace, cfg.Logging.Directory),
		MaxSize:    cfg.Logging.MaxSize,
		MaxBackups: cfg.Logging.MaxBackups,
		MaxAge:     cfg.Logging.MaxAge,
		Compress:   cfg.Logging.Compress,
	})
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()
	cfg.Watch(log)

	db, err := database.Open(cfg.DatabasePath(), log)
	if err != nil {
		return err
	}

	instruments, err := loadInstruments(cfg)
	if err != nil {
		return err
	}
	if err := database.SeedAssessmentTypes(db, instruments, log); err != nil {
		return err
	}

	store := repository.New(db, log)
	a := &app{
		cfg:     cfg,
		log:     log,
		db:      db,
		store:   store,
		metrics: analytics.NewService(store, log),
	}
	return fn(cmd.Context(), a)
}

// loadInstruments prefers the workspace file and falls back to the
// built-in definitions.
func loadInstruments(cfg *config.Config) (*models.InstrumentSet, error) {
	path := cfg.InstrumentsPath()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return models.DefaultInstruments(), nil
	}
	return models.LoadInstruments(path)
}
