// Command threaddump prints the thread tree of one forum as indented text.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/coursehub/forumtree/frontend/internal/apiclient"
	"github.com/coursehub/forumtree/shared/config"
	"github.com/coursehub/forumtree/shared/domain"
	"github.com/coursehub/forumtree/shared/logger"
	"github.com/coursehub/forumtree/shared/threadtree"
)

func main() {
	var (
		configFolder string
		forumId      string
		token        string
		indent       int
	)
	flag.StringVar(&configFolder, "config_folder", "config", "path to folder with configs")
	flag.StringVar(&forumId, "forum", "", "forum id to dump")
	flag.StringVar(&token, "token", os.Getenv("FORUMTREE_TOKEN"), "access token sent to the backend")
	flag.IntVar(&indent, "indent", 2, "spaces per reply level")
	flag.Parse()

	if forumId == "" {
		fmt.Fprintln(os.Stderr, "threaddump: -forum is required")
		flag.Usage()
		os.Exit(2)
	}

	cfg := config.MustLoad(configFolder)
	logger.InitializeWriter(os.Stderr, cfg.Public.LogLevel, false)

	if err := run(context.Background(), cfg, forumId, token, indent); err != nil {
		logger.Log.Error("threaddump failed", "forum_id", forumId, "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, forumId, token string, indent int) error {
	client := apiclient.New(cfg.Public.ApiBaseURL, cfg.Public.RequestTimeout)
	var sess *domain.Session
	if token != "" {
		sess = &domain.Session{Token: token}
	}

	records, err := client.GetThreads(ctx, sess, domain.ForumId(forumId))
	if err != nil {
		return err
	}

	forest, err := threadtree.Build(records, cfg.Public.ThreadTree.Options())
	for _, d := range forest.Dropped {
		logger.Log.Warn("thread record dropped", "record", d.Record.String(), "reason", string(d.Reason))
	}
	if err != nil {
		// print what could be built, then report
		logger.Log.Warn("forest incomplete", "error", err)
	}

	return threadtree.RenderText(os.Stdout, forest.Roots, threadtree.TextOptions{
		IndentWidth: indent,
		MaxDepth:    forest.MaxDepth,
	})
}
