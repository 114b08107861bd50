package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dangerclosesec/mubadara/internal/auth"
	"github.com/dangerclosesec/mubadara/internal/config"
	"github.com/dangerclosesec/mubadara/internal/moderation"
	"github.com/dangerclosesec/mubadara/internal/repository"
	"github.com/dangerclosesec/mubadara/internal/service"
	"github.com/dangerclosesec/mubadara/internal/workflow"
	"github.com/glebarez/sqlite"
	"github.com/spf13/cobra"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	dbConnString string
	verbose      bool

	actorEmail string
	reason     string
	maxTries   uint

	listStatus string
	listCity   string
	listSearch string
	listLimit  int
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&dbConnString, "db", "d", "", "Database connection string (postgres DSN or sqlite file); defaults to the DB_* environment")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	transitionCmd.Flags().StringVar(&actorEmail, "as", "", "Email of the account performing the transition")
	transitionCmd.Flags().StringVar(&reason, "reason", "", "Reason recorded with the transition")
	transitionCmd.Flags().UintVar(&maxTries, "tries", 5, "Attempts made while the database is unavailable")
	transitionCmd.MarkFlagRequired("as")

	listCmd.Flags().StringVar(&listStatus, "status", "", "Only list entities in this status")
	listCmd.Flags().StringVar(&listCity, "city", "", "Only list entities in this city")
	listCmd.Flags().StringVarP(&listSearch, "query", "q", "", "Free-text search")
	listCmd.Flags().IntVar(&listLimit, "limit", 50, "Maximum rows to print")

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(transitionCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(graphCmd)
	rootCmd.AddCommand(permifySchemaCmd)
	rootCmd.AddCommand(grantAdminCmd)
}

var rootCmd = &cobra.Command{
	Use:   "mubadara",
	Short: "Operate the volunteering platform from the command line",
	Long:  `mubadara migrates the database, reviews organizations and initiatives, and inspects the moderation workflow.`,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database tables",
	Run: func(cmd *cobra.Command, args []string) {
		db := openDatabase()

		if err := db.AutoMigrate(repository.Models()...); err != nil {
			log.Fatalf("Failed to migrate: %v", err)
		}

		fmt.Println("Schema migrated successfully")
	},
}

var transitionCmd = &cobra.Command{
	Use:   "transition [organization|initiative] [id] [status]",
	Short: "Move an organization or initiative to another status",
	Long: `Apply a moderation transition on behalf of an account. The transition is
checked against the status machine and the role policy exactly as it is over HTTP.
Only persistence failures are retried.`,
	Args: cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		kind := parseKind(args[0])
		id := parseID(args[1])
		target := workflow.Status(args[2])

		db := openDatabase()
		users := repository.NewUserRepository(db)
		orgs := repository.NewOrganizationRepository(db)
		svc := moderation.NewService(repository.NewModerationStore(db), moderation.DefaultPolicy(),
			moderation.WithLogger(cliLogger()))

		ctx := context.Background()
		user, err := users.FindByEmail(ctx, strings.ToLower(actorEmail))
		if err != nil {
			log.Fatalf("Failed to find %s: %v", actorEmail, err)
		}
		userService := service.NewUserService(users, orgs, nil, nil, nil, cliLogger())
		actor, err := userService.ResolveActor(ctx, user.ID)
		if err != nil {
			log.Fatalf("Failed to resolve %s: %v", actorEmail, err)
		}

		subject, err := transitionWithRetry(ctx, svc, kind, id, target, actor, reason, maxTries)
		if err != nil {
			if timedOut(err) {
				log.Fatalf("Transition timed out and may have been applied; check the %s before retrying: %v", kind, err)
			}
			log.Fatalf("Transition failed: %v", err)
		}

		fmt.Printf("%s %s is now %s\n", kind, subject.SubjectID(), subject.CurrentStatus())
	},
}

var listCmd = &cobra.Command{
	Use:   "list [organizations|initiatives]",
	Short: "List organizations or initiatives",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		kind := parseKind(strings.TrimSuffix(args[0], "s"))
		filters := workflow.Filters{
			Status: workflow.Status(listStatus),
			City:   listCity,
			Search: listSearch,
		}
		if filters.Status != "" && !workflow.DefaultMachine().Valid(kind, filters.Status) {
			log.Fatalf("%q is not a %s status", listStatus, kind)
		}
		page := repository.Page{Limit: listLimit}

		db := openDatabase()
		ctx := context.Background()
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		defer w.Flush()

		switch kind {
		case workflow.KindOrganization:
			orgs, total, err := repository.NewOrganizationRepository(db).List(ctx, filters, page)
			if err != nil {
				log.Fatalf("Failed to list organizations: %v", err)
			}
			fmt.Fprintln(w, "ID\tSTATUS\tNAME\tCITY\tCREATED")
			for _, o := range orgs {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", o.ID, o.Status, o.Name, o.City, o.CreatedAt.Format(time.DateOnly))
			}
			fmt.Fprintf(w, "\n%d of %d\n", len(orgs), total)

		case workflow.KindInitiative:
			initiatives, total, err := repository.NewInitiativeRepository(db).List(ctx, filters, page)
			if err != nil {
				log.Fatalf("Failed to list initiatives: %v", err)
			}
			fmt.Fprintln(w, "ID\tSTATUS\tTITLE\tCITY\tSPOTS")
			for _, i := range initiatives {
				spots := "-"
				if i.MaxParticipants != nil {
					spots = fmt.Sprintf("%d/%d", i.CurrentParticipants, *i.MaxParticipants)
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", i.ID, i.Status, i.Title, i.City, spots)
			}
			fmt.Fprintf(w, "\n%d of %d\n", len(initiatives), total)
		}
	},
}

var graphCmd = &cobra.Command{
	Use:   "graph [organization|initiative]",
	Short: "Print the status machine of a kind as a Graphviz graph",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Print(workflow.DefaultMachine().ToDot(parseKind(args[0])))
	},
}

var permifySchemaCmd = &cobra.Command{
	Use:   "permify-schema",
	Short: "Write the authorization schema to Permify",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.Load()

		permify, err := auth.NewPermifyService(cfg.Permify.Host, auth.WithTenant(cfg.Permify.Tenant))
		if err != nil {
			log.Fatalf("Failed to connect to permify: %v", err)
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		version, err := permify.WriteSchema(ctx)
		if err != nil {
			log.Fatalf("Failed to write schema: %v", err)
		}

		fmt.Printf("Schema written, version %s\n", version)
	},
}

var grantAdminCmd = &cobra.Command{
	Use:   "grant-admin [email]",
	Short: "Make an existing account a platform administrator",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.Load()
		db := openDatabase()

		var relationships service.Relationships
		if cfg.Permify.Enabled {
			permify, err := auth.NewPermifyService(cfg.Permify.Host, auth.WithTenant(cfg.Permify.Tenant))
			if err != nil {
				log.Fatalf("Failed to connect to permify: %v", err)
			}
			relationships = auth.NewRelationshipSync(permify)
		}

		users := service.NewUserService(repository.NewUserRepository(db), repository.NewOrganizationRepository(db),
			nil, nil, relationships, cliLogger())
		user, err := users.GrantAdmin(context.Background(), strings.ToLower(args[0]))
		if err != nil {
			log.Fatalf("Failed to grant admin: %v", err)
		}

		fmt.Printf("%s (%s) is now an administrator\n", user.Email, user.ID)
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func cliLogger() *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// openDatabase connects to postgres, or to a sqlite file when the
// connection string names one.
func openDatabase() *gorm.DB {
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}
	if verbose {
		gormConfig.Logger = logger.Default.LogMode(logger.Info)
	}

	dsn := dbConnString
	if dsn == "" {
		cfg := config.Load()
		dsn = fmt.Sprintf(
			"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s search_path=%s",
			cfg.Database.Host,
			cfg.Database.Port,
			cfg.Database.User,
			cfg.Database.Password,
			cfg.Database.Name,
			cfg.Database.SSLMode,
			cfg.Database.SearchPath,
		)
	}

	dialector := postgres.Open(dsn)
	if isSQLite(dsn) {
		dialector = sqlite.Open(dsn)
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return db
}

func isSQLite(dsn string) bool {
	return strings.HasPrefix(dsn, "file:") || strings.HasSuffix(dsn, ".db") || strings.HasSuffix(dsn, ".sqlite")
}

func parseKind(s string) workflow.Kind {
	kind := workflow.Kind(strings.ToLower(s))
	for _, k := range workflow.DefaultMachine().Kinds() {
		if k == kind {
			return kind
		}
	}
	log.Fatalf("Unknown kind %q", s)
	return ""
}
