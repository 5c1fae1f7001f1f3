package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/hpitta26/Leetcode-Bot/internal/config"
	"github.com/hpitta26/Leetcode-Bot/internal/repository"
	"github.com/hpitta26/Leetcode-Bot/internal/scraper"
	"github.com/hpitta26/Leetcode-Bot/internal/service"
	"github.com/hpitta26/Leetcode-Bot/pkg/errors"
	"github.com/hpitta26/Leetcode-Bot/pkg/logger"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var configPath string

func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "leetcode-bot",
		Short:         "Tracks a recurring LeetCode competition and computes its leaderboard",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yaml", "path to the YAML config file")

	root.AddCommand(
		newRunCommand(),
		newDaemonCommand(),
		newStatusCommand(),
		newInfoCommand(),
		newLeaderboardCommand(),
		newSubmissionsCommand(),
		newSetCompCommand(),
		newMarkRunCommand(),
		newRevertRunCommand(),
		newResetCommand(),
	)

	return root
}

// app holds the wired-up collaborators for one command invocation.
// Close must run on every exit path.
type app struct {
	cfg      *config.Config
	log      *logrus.Logger
	db       *gorm.DB
	syncSvc  *service.SyncService
	adminSvc *service.AdminService
}

// newApp loads and validates config before any side effect, then opens
// the store and wires repositories and services.
func newApp() (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, errors.New(errors.ErrConfigLoad, "failed to load configuration", err)
	}

	log, err := logger.New(cfg.Logging.Level, cfg.Logging.Format, cfg.Logging.Output)
	if err != nil {
		return nil, errors.New(errors.ErrConfigLoad, "failed to set up logger", err)
	}

	db, err := repository.Open(cfg.Database.Path)
	if err != nil {
		return nil, errors.New(errors.ErrDatabaseConnect, "failed to open database", err)
	}
	if err := repository.Migrate(db); err != nil {
		repository.Close(db)
		return nil, errors.New(errors.ErrDatabaseConnect, "failed to migrate schema", err)
	}

	competitionRepo := repository.NewCompetitionRepository(db)
	problemRepo := repository.NewProblemRepository(db)
	userRepo := repository.NewUserRepository(db)
	submissionRepo := repository.NewSubmissionRepository(db)

	lc := scraper.New(cfg.Scraping, log)

	return &app{
		cfg:      cfg,
		log:      log,
		db:       db,
		syncSvc:  service.NewSyncService(competitionRepo, problemRepo, userRepo, submissionRepo, lc, cfg, log),
		adminSvc: service.NewAdminService(competitionRepo, problemRepo, userRepo, submissionRepo, log),
	}, nil
}

func (a *app) Close() {
	if err := repository.Close(a.db); err != nil {
		a.log.Errorf("Failed to close database: %v", err)
	}
}

// confirm asks a y/N question on the given reader (stdin in practice).
// Anything but y/yes counts as no.
func confirm(in io.Reader, out io.Writer, question string) bool {
	fmt.Fprintf(out, "%s (y/N): ", question)
	reader := bufio.NewReader(in)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
