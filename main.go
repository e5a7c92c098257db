package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"runtime/debug"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"terminalhn/domain"
	"terminalhn/infra/config"
	"terminalhn/infra/hackernews"
	"terminalhn/tui"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

type cliMode int

const (
	cliRun cliMode = iota
	cliVersion
	cliHelp
	cliInvalid
)

// parseCLIArgs classifies the arguments. A single positive integer is a
// deep link to that item's thread.
func parseCLIArgs(args []string) (mode cliMode, itemID int, msg string) {
	if len(args) == 0 {
		return cliRun, 0, ""
	}

	switch args[0] {
	case "--version", "-version", "-v":
		return cliVersion, 0, ""
	case "--help", "-h", "help":
		return cliHelp, 0, ""
	}

	if id, err := strconv.Atoi(args[0]); err == nil && id > 0 && len(args) == 1 {
		return cliRun, id, ""
	}
	return cliInvalid, 0, fmt.Sprintf("unexpected argument: %s", strings.Join(args, " "))
}

func usage() string {
	return "Usage: terminalhn [item-id] [--version|-version|-v] [--help|-h]"
}

// resolveVersionInfo fills the linker-default placeholders from module
// build metadata. Values set at link time always win.
func resolveVersionInfo(v, c, d, moduleVersion string, settings []debug.BuildSetting) (string, string, string) {
	setting := func(key string) string {
		for _, s := range settings {
			if s.Key == key {
				return strings.TrimSpace(s.Value)
			}
		}
		return ""
	}

	if v == "dev" {
		if mv := strings.TrimSpace(moduleVersion); mv != "" && mv != "(devel)" {
			v = mv
		}
	}
	if c == "none" {
		if rev := setting("vcs.revision"); rev != "" {
			if len(rev) > 12 {
				rev = rev[:12]
			}
			c = rev
		}
	}
	if d == "unknown" {
		if t := setting("vcs.time"); t != "" {
			d = t
		}
	}
	return v, c, d
}

func runtimeVersionInfo(v, c, d string) (string, string, string) {
	info, ok := debug.ReadBuildInfo()
	if !ok || info == nil {
		return v, c, d
	}
	return resolveVersionInfo(v, c, d, info.Main.Version, info.Settings)
}

func main() {
	mode, itemID, msg := parseCLIArgs(os.Args[1:])
	switch mode {
	case cliVersion:
		v, c, d := runtimeVersionInfo(version, commit, date)
		fmt.Printf("terminalhn %s\ncommit: %s\nbuilt: %s\n", v, c, d)
		return
	case cliHelp:
		fmt.Println(usage())
		return
	case cliInvalid:
		fmt.Fprintf(os.Stderr, "%s\n%s\n", msg, usage())
		os.Exit(1)
	}

	// 1. Load config.
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	// 2. Logging sink. The TUI owns stdout, so logs go to a file when
	// debugging and nowhere otherwise.
	logger := log.New(io.Discard, "", 0)
	if cfg.Debug {
		f, err := tea.LogToFile("terminalhn.log", "terminalhn")
		if err != nil {
			fmt.Fprintf(os.Stderr, "debug log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logger = log.New(f, "", log.LstdFlags)
	}

	// 3. Build infrastructure.
	firebase := hackernews.NewClient(cfg.FirebaseURL, cfg.HTTPTimeout)
	algolia := hackernews.NewClient(cfg.AlgoliaURL, cfg.HTTPTimeout)

	storySvc := hackernews.NewStoryService(firebase, logger)
	itemSvc := hackernews.NewItemService(firebase)
	shallow := hackernews.NewShallowLoader(firebase, logger)
	bulk := hackernews.NewBulkLoader(algolia)

	// 4. Resolve the deep link, if any, before the TUI starts. The bulk
	// strategy needs a story id, so an arbitrary item id is normalized
	// through its parent chain first.
	var initialStory *domain.Story
	var initialPath []int
	if itemID > 0 {
		ctx := context.Background()
		storyID, ancestry, err := itemSvc.FindRootStoryID(ctx, itemID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "resolving item %d: %v\n", itemID, err)
			os.Exit(1)
		}
		story, err := storySvc.FetchStory(ctx, storyID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "fetching story %d: %v\n", storyID, err)
			os.Exit(1)
		}
		initialStory = &story
		initialPath = ancestry
	}

	// 5. Wire root TUI model.
	rootModel := tui.NewApp(tui.Deps{
		Stories:       storySvc,
		Shallow:       shallow,
		Bulk:          bulk,
		UseBulk:       cfg.Strategy == config.StrategyBulk,
		PageSize:      cfg.PageSize,
		StoryLimit:    cfg.StoryLimit,
		InitialStory: initialStory,
		InitialPath:  initialPath,
	})

	// 6. Run.
	p := tea.NewProgram(rootModel, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "terminalhn: %v\n", err)
		os.Exit(1)
	}
}
