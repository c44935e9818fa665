package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"team-draft/allocator"
	"team-draft/domain"
	"team-draft/export"
	"team-draft/internal"
	"team-draft/moderation"
	"team-draft/repositories"
	"team-draft/roster"
	"team-draft/services"

	"github.com/Netflix/go-env"
	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"github.com/samber/lo"
)

// Exit codes to provide meaningful status to the calling shell.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

type options struct {
	rosterPath string
	groupCount int
	groupSize  int
	rounds     int
	seed       uint64
	share      bool
	pdfPath    string
	inspect    string
}

func main() {
	code, err := run(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Draft terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run wires the components, performs the draws and renders the last one.
// Returning an exit code instead of exiting lets the deferred cleanup run.
func run(args []string) (int, error) {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	if err := config.Validate(); err != nil {
		return exitConfig, err
	}
	charReplacement, err := internal.CharacterRune(config.CharReplacement)
	if err != nil {
		return exitConfig, err
	}

	opts, err := parseFlags(args, config)
	if err != nil {
		return exitConfig, err
	}

	log := logs.GetLoggerFromString(config.LogLevel)
	if !config.Colours {
		color.Disable()
	}

	// 2. Roster
	players, err := roster.Load(opts.rosterPath)
	if err != nil {
		return exitRuntime, err
	}

	// 3. Session store (memory only)
	db, err := repositories.OpenSessionStore()
	if err != nil {
		return exitRuntime, fmt.Errorf("session store opening failed: %w", err)
	}
	defer func() {
		_ = db.Close()
	}()

	// 4. Services
	random := allocator.NewRandomSource()
	if opts.seed != 0 {
		random = allocator.NewSeededSource(opts.seed)
	}
	alloc := allocator.NewAllocator(log, random,
		allocator.WithMaxAttempts(config.MaxAttempts),
		allocator.WithBalanceTolerance(config.BalanceTolerance),
	)
	service, err := services.NewDraftService(log, alloc,
		repositories.NewDraftRepository(db, log), config.MinScore, config.MaxScore)
	if err != nil {
		return exitRuntime, err
	}

	moderator, err := moderation.NewModerator(config.CensoredWords, charReplacement)
	if err != nil {
		return exitConfig, fmt.Errorf("censored words: %w", err)
	}
	filter := export.NameFilter(moderator.Mask)

	// 5. Draws
	cmd := domain.DraftCommand{Players: players, GroupCount: opts.groupCount, GroupSize: opts.groupSize}
	for round := 1; round <= opts.rounds; round++ {
		result, err := service.Draft(cmd)
		if err != nil {
			return exitRuntime, err
		}
		if opts.rounds > 1 {
			fmt.Printf("\nRound %d/%d\n", round, opts.rounds)
		}
		export.RenderTable(os.Stdout, result, filter, config.Colours)
	}

	// 6. Export the last draw
	if code, err := exportLast(log, service, opts, config, filter); err != nil {
		return code, err
	}

	// 7. Optional pause to browse the session before the store is dropped
	if opts.inspect != "" {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		inspector := internal.NewInspector(db, log, "draft:", nil, func() map[string]any {
			history, err := service.History(0)
			if err != nil {
				log.Warn("Session history unavailable", "error", err)
			}
			return map[string]any{"draws": len(history)}
		})
		if err = inspector.Serve(ctx, opts.inspect); err != nil {
			return exitRuntime, err
		}
	}
	return exitOK, nil
}

func exportLast(log *slog.Logger, service services.IDraftService, opts options, config internal.Config, filter export.NameFilter) (int, error) {
	last, err := service.Last()
	if err != nil {
		return exitRuntime, err
	}

	if opts.share {
		text := export.ShareText(last, filter)
		fmt.Printf("\n%s", text)
		fmt.Println("WhatsApp:", export.WhatsAppLink(text))
		fmt.Println("E-mail:  ", export.MailtoLink(config.ShareSubject, text))
	}

	if opts.pdfPath != "" {
		if err = writePDFFile(opts.pdfPath, last, filter); err != nil {
			return exitRuntime, err
		}
		fmt.Println("PDF written to", opts.pdfPath)
	}

	history, err := service.History(config.HistoryLimit)
	if err != nil {
		log.Warn("Session history unavailable", "error", err)
		return exitOK, nil
	}
	if len(history) > 1 {
		differences := lo.Map(history, func(r domain.AllocationResult, _ int) int {
			return r.Stats.Difference
		})
		fmt.Printf("\nSession history, newest first, max-min differences: %v\n", differences)
	}
	return exitOK, nil
}

// writePDFFile fails when the file cannot be written or closed.
func writePDFFile(path string, result domain.AllocationResult, filter export.NameFilter) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err = export.WritePDF(f, result, filter); err != nil {
		_ = f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}

func parseFlags(args []string, config internal.Config) (options, error) {
	var opts options
	fs := flag.NewFlagSet("draft", flag.ContinueOnError)
	fs.StringVar(&opts.rosterPath, "roster", "", "path to a JSON or CSV roster (name,score,category)")
	fs.IntVar(&opts.groupCount, "groups", config.GroupCount, "number of groups")
	fs.IntVar(&opts.groupSize, "size", config.GroupSize, "players per group")
	fs.IntVar(&opts.rounds, "rounds", 1, "number of draws to perform; the last one is exported")
	fs.Uint64Var(&opts.seed, "seed", 0, "replay a draw with a fixed seed (0 draws fresh randomness)")
	fs.BoolVar(&opts.share, "share", false, "print the share text and links")
	fs.StringVar(&opts.pdfPath, "pdf", "", "write the last draw to this PDF file")
	fs.StringVar(&opts.inspect, "inspect", "", "serve the session store on this address until /resume is hit")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if opts.rosterPath == "" {
		return options{}, fmt.Errorf("-roster is required")
	}
	if opts.rounds < 1 {
		return options{}, fmt.Errorf("-rounds must be at least 1, got %d", opts.rounds)
	}
	return opts, nil
}
