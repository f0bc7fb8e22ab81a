package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	appRepos "github.com/yigit/unipay/internal/app/repositories"
	"github.com/yigit/unipay/internal/bootstrap"
	"github.com/yigit/unipay/internal/pkg/logger"
	"github.com/yigit/unipay/internal/seed"
)

// runFlags holds the parsed command line
type runFlags struct {
	opts       seed.Options
	configPath string
	seed       int64
	migrate    bool
}

func newRootCmd(run func(cmd *cobra.Command, f *runFlags) error) *cobra.Command {
	f := &runFlags{opts: seed.DefaultOptions()}

	cmd := &cobra.Command{
		Use:   "unipay-seed",
		Short: "Generate fake data for a UniPay development database",
		Long: `Populates organizations, colleges, courses, officers, students, fee types
and signed payment requests. Safe to rerun: existing records are reused,
officer and student passwords are reset.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := f.opts.Validate(); err != nil {
				return err
			}
			return run(cmd, f)
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&f.opts.Students, "students", f.opts.Students, "Number of students")
	flags.IntVar(&f.opts.Orgs, "orgs", f.opts.Orgs, "Number of orgs (fixed list is always created)")
	flags.IntVar(&f.opts.FeesPerOrg, "fees", f.opts.FeesPerOrg, "Fee types per org")
	flags.IntVar(&f.opts.RequestsPerStudent, "requests", f.opts.RequestsPerStudent, "Payment requests per student")
	flags.StringVar(&f.configPath, "config", "configs/config.yaml", "Path to the config file")
	flags.Int64Var(&f.seed, "seed", 0, "Random seed (0 picks one from the clock)")
	flags.BoolVar(&f.migrate, "migrate", false, "Apply embedded schema migrations before seeding")

	return cmd
}

func runSeed(cmd *cobra.Command, f *runFlags) error {
	ctx := cmd.Context()

	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(f.configPath)
	if err != nil {
		return err
	}

	database, err := bootstrap.SetupDatabase(ctx, cfg, lgr, f.migrate)
	if err != nil {
		return err
	}
	defer database.Close()

	repos := appRepos.NewRepositories(database.Pool, cfg.App.BcryptCost)

	if cfg.App.SecretKey == "" {
		lgr.Warn().Msg("APP_SECRET_KEY is not set, signing payment requests with the insecure default key")
	}

	seeder, err := seed.New(seed.Config{
		Stores: bootstrap.NewStores(repos),
		Secret: cfg.App.SecretKey,
		Rand:   seed.NewRand(f.seed),
		Out:    cmd.OutOrStdout(),
		Color:  !color.NoColor,
		Logger: lgr,
	})
	if err != nil {
		return err
	}

	if _, err := seeder.Run(ctx, f.opts); err != nil {
		lgr.Error().Err(err).Msg("Seeding failed")
		return err
	}

	counts, err := repos.Counts(ctx)
	if err != nil {
		lgr.Warn().Err(err).Msg("Failed to count seeded tables")
		return nil
	}
	ev := lgr.Info()
	for table, n := range counts {
		ev = ev.Int64(table, n)
	}
	ev.Msg("Table row counts")
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(runSeed).ExecuteContext(ctx); err != nil {
		logger.Error().Err(err).Msg("unipay-seed failed")
		stop()
		os.Exit(1)
	}
}
