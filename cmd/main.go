package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"staff-directory/config"
	"staff-directory/internal/app/service"
	"staff-directory/internal/delivery/cli"
	"staff-directory/internal/delivery/flows"
	"staff-directory/internal/delivery/router"
	"staff-directory/internal/domain"
	"staff-directory/internal/repository/memory"
	"staff-directory/internal/repository/sqlite"
)

type app struct {
	cfgPath string
	verbose bool
	cfg     *config.Config
	logger  *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:   "staff-directory",
		Short: "Employee directory with a line-oriented command interface",
		Long: `Reads commands from standard input, one per line:

  add <name> to <department>   add an employee (the first department given wins)
  add <name> <department>      same, without "to"
  list all                     print every employee and department
  list <department>            print the sorted names in a department
  exit                         quit (end of input does the same)

The directory lives in memory unless storage.driver is sqlite in the config
file or DIRECTORY_DB_PATH is set.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
		RunE: a.runREPL,
	}
	rootCmd.PersistentFlags().StringVar(&a.cfgPath, "config", config.DefaultPath, "path to the YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "roster",
			Short: "Print every department with its sorted members",
			Args:  cobra.NoArgs,
			RunE:  a.runRoster,
		},
		newTelegramCmd(a),
	)
	rootCmd.AddCommand(newHomeworkCmds()...)
	return rootCmd
}

func (a *app) init() error {
	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	zcfg := zap.NewProductionConfig()
	level, err := zapcore.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return fmt.Errorf("failed to parse log level: %w", err)
	}
	if a.verbose {
		level = zapcore.DebugLevel
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)
	a.logger, err = zcfg.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	return nil
}

// openRepo returns the configured store and a func that releases it.
func (a *app) openRepo() (domain.EmployeeRepo, func(), error) {
	if a.cfg.Storage.Driver != config.DriverSqlite {
		return memory.NewEmployeeRepo(), func() {}, nil
	}
	db, err := sqlite.Open(a.cfg.Storage.Path)
	if err != nil {
		return nil, nil, err
	}
	a.logger.Debug("using sqlite store", zap.String("path", a.cfg.Storage.Path))
	return sqlite.NewSqliteEmployeeRepo(db), func() { db.Close() }, nil
}

func (a *app) newDirectory() (*service.EmployeeService, *router.CommandRouter, func(), error) {
	repo, closeRepo, err := a.openRepo()
	if err != nil {
		return nil, nil, nil, err
	}
	employees := service.NewEmployeeService(repo, a.logger)
	r := router.New(a.logger)
	flows.RegisterDirectory(r, employees)
	return employees, r, closeRepo, nil
}

func (a *app) runREPL(cmd *cobra.Command, args []string) error {
	_, r, closeRepo, err := a.newDirectory()
	if err != nil {
		return err
	}
	defer closeRepo()

	repl := &cli.REPL{
		Router: r,
		In:     cmd.InOrStdin(),
		Out:    cmd.OutOrStdout(),
		Logger: a.logger,
	}
	return repl.Run(cmd.Context())
}

func (a *app) runRoster(cmd *cobra.Command, args []string) error {
	employees, _, closeRepo, err := a.newDirectory()
	if err != nil {
		return err
	}
	defer closeRepo()

	roster, err := employees.Roster(cmd.Context())
	if err != nil {
		return err
	}
	departments, err := employees.Departments(cmd.Context())
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), flows.FormatRoster(departments, roster))
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
