// Copyright 2025 The Task Chat Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/wenlzhang/taskchat"
	"github.com/wenlzhang/taskchat/ai"
	"github.com/wenlzhang/taskchat/queryparse"
	"github.com/wenlzhang/taskchat/search"
	"github.com/wenlzhang/taskchat/vocab"
)

func main() {
	app := &cli.App{
		Name:  "taskchat",
		Usage: "Natural-language search over a task vault",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "ask",
				Usage:     "Run one query against the vault",
				ArgsUsage: "<query...>",
				Action:    askCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "db",
						Aliases: []string{"d"},
						Usage:   "Path to the task index directory",
						Value:   "./taskchat_db",
					},
					&cli.StringFlag{
						Name:  "vocab",
						Usage: "Path to a vocabulary configuration JSON file",
					},
					&cli.StringFlag{
						Name:    "mode",
						Aliases: []string{"m"},
						Usage:   "Search mode: local, assisted, or conversational",
						Value:   "local",
					},
					&cli.StringFlag{
						Name:  "vagueness",
						Usage: "Vagueness handling: auto, vague, or specific",
						Value: "auto",
					},
					&cli.IntFlag{
						Name:    "top",
						Aliases: []string{"n"},
						Usage:   "Maximum number of tasks to return",
						Value:   10,
					},
					&cli.Float64Flag{
						Name:  "threshold",
						Usage: "Quality gate as a fraction of the maximum score (0 = adaptive)",
					},
					&cli.StringFlag{
						Name:  "host",
						Usage: "OpenAI-compatible service host URL",
						Value: "http://localhost:11434",
					},
					&cli.StringFlag{
						Name:  "parser-model",
						Usage: "Model used for query understanding",
					},
					&cli.StringFlag{
						Name:  "recommender-model",
						Usage: "Model used for recommendations",
					},
					&cli.StringFlag{
						Name:  "token",
						Usage: "API token for the model service",
					},
					&cli.StringSliceFlag{
						Name:  "language",
						Usage: "Languages for keyword expansion (repeatable)",
					},
					&cli.BoolFlag{
						Name:  "no-stream",
						Usage: "Print the recommendation after it completes instead of streaming",
					},
				},
			},
			{
				Name:   "count",
				Usage:  "Print how many tasks the index holds",
				Action: countCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "db",
						Aliases: []string{"d"},
						Usage:   "Path to the task index directory",
						Value:   "./taskchat_db",
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func askCommand(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("query is required")
	}
	query := strings.Join(c.Args().Slice(), " ")

	settings := search.DefaultSettings()
	settings.TopN = c.Int("top")
	settings.Threshold = c.Float64("threshold")

	switch c.String("mode") {
	case "local":
		settings.Mode = search.ModeLocal
	case "assisted":
		settings.Mode = search.ModeAssisted
	case "conversational":
		settings.Mode = search.ModeConversational
	default:
		return fmt.Errorf("invalid mode %q: must be one of local, assisted, conversational", c.String("mode"))
	}

	switch c.String("vagueness") {
	case "auto":
		settings.VaguenessMode = queryparse.VaguenessAuto
	case "vague":
		settings.VaguenessMode = queryparse.VaguenessForcedVague
	case "specific":
		settings.VaguenessMode = queryparse.VaguenessForcedSpecific
	default:
		return fmt.Errorf("invalid vagueness %q: must be one of auto, vague, specific", c.String("vagueness"))
	}

	vault, err := openVault(c, settings.Mode != search.ModeLocal)
	if err != nil {
		return err
	}
	defer vault.Close()

	searcher, err := vault.NewSearcher(search.WithSettings(settings))
	if err != nil {
		return err
	}

	var stream ai.StreamFunc
	streaming := settings.Mode == search.ModeConversational && !c.Bool("no-stream")
	if streaming {
		stream = func(_ context.Context, chunk []byte) error {
			_, err := os.Stdout.Write(chunk)
			return err
		}
	}

	result, err := searcher.SearchWithMonitor(context.Background(), query, nil, stream)
	if err != nil {
		return err
	}
	if streaming && result.Recommendation != nil {
		fmt.Println()
		fmt.Println()
	}

	printResult(os.Stdout, result, streaming)
	return nil
}

func countCommand(c *cli.Context) error {
	vault, err := openVault(c, false)
	if err != nil {
		return err
	}
	defer vault.Close()

	count, err := vault.TaskRepository().CountTasks(context.Background())
	if err != nil {
		return err
	}
	fmt.Printf("%d tasks\n", count)
	return nil
}

func openVault(c *cli.Context, withAI bool) (*taskchat.Vault, error) {
	opts := []taskchat.VaultOption{}

	if path := c.String("vocab"); path != "" {
		cfg, err := vocab.LoadConfig(path)
		if err != nil {
			return nil, err
		}
		vocabulary, warnings := vocab.New(cfg)
		for _, w := range warnings {
			slog.Warn("vocabulary configuration", "warning", w)
		}
		opts = append(opts, taskchat.WithVocabulary(vocabulary))
	}

	if withAI {
		aiOpts := []ai.ConfigOption{ai.WithHost(c.String("host"))}
		if m := c.String("parser-model"); m != "" {
			aiOpts = append(aiOpts, ai.WithParserModel(m))
		}
		if m := c.String("recommender-model"); m != "" {
			aiOpts = append(aiOpts, ai.WithRecommenderModel(m))
		}
		if tok := c.String("token"); tok != "" {
			aiOpts = append(aiOpts, ai.WithToken(tok))
		}
		if langs := c.StringSlice("language"); len(langs) > 0 {
			aiOpts = append(aiOpts, ai.WithLanguages(langs...))
		}
		opts = append(opts, taskchat.WithAIConfig(ai.NewConfig(aiOpts...)))
	}

	return taskchat.Open(c.String("db"), opts...)
}

// printResult renders the search outcome. streamed marks that the
// recommendation narrative already went to the terminal chunk by chunk;
// otherwise it is printed here after the task list.
func printResult(w io.Writer, result *search.Result, streamed bool) {
	if result.ParserFallback {
		fmt.Fprintf(w, "note: language-model parse unavailable (%s), used local parser\n", result.ParserFallbackReason)
	}
	if result.Vague {
		fmt.Fprintln(w, "interpreted as: open-ended (recommendation ordering)")
	}

	if len(result.Tasks) == 0 {
		fmt.Fprintln(w, "No matching tasks.")
		report := result.Report
		if len(report.CoreKeywords) > 0 {
			fmt.Fprintf(w, "  keywords tried: %s\n", strings.Join(report.CoreKeywords, ", "))
		}
		if report.Filter != nil && !report.Filter.IsEmpty() {
			fmt.Fprintf(w, "  filters applied: %s\n", describeFilter(result))
		}
		if report.CandidateCount > 0 {
			fmt.Fprintf(w, "  %d tasks matched the filters but scored below %.1f\n",
				report.CandidateCount, report.Threshold)
		}
		return
	}

	fmt.Fprintf(w, "Found %d tasks\n", len(result.Tasks))
	for i, st := range result.Tasks {
		line := fmt.Sprintf("%d: %s", i+1, st.Task.Text)
		var attrs []string
		if st.Task.StatusCategory != "" {
			attrs = append(attrs, st.Task.StatusCategory)
		}
		if st.Task.HasPriority() {
			attrs = append(attrs, fmt.Sprintf("p%d", st.Task.Priority))
		}
		if st.Task.HasDueDate() {
			attrs = append(attrs, "due "+st.Task.DueDate.Format("2006-01-02"))
		}
		if len(attrs) > 0 {
			line += " (" + strings.Join(attrs, ", ") + ")"
		}
		fmt.Fprintf(w, "%s [%0.1f]\n", line, st.Final)
	}

	if rec := result.Recommendation; rec != nil && !streamed && rec.Content != "" {
		fmt.Fprintln(w)
		fmt.Fprintln(w, rec.Content)
	}
	if result.Recommendation != nil && result.RecommendationFallback {
		fmt.Fprintln(w, "note: the recommendation cited no tasks; references were filled from the ranking")
	}
	if result.Usage.Total() > 0 {
		unit := "tokens"
		if result.Usage.Estimated {
			unit = "tokens (estimated)"
		}
		fmt.Fprintf(w, "model: %s, %d %s\n", result.Model, result.Usage.Total(), unit)
	}
}

func describeFilter(result *search.Result) string {
	f := result.Report.Filter
	var parts []string
	if f.Priority != 0 {
		parts = append(parts, fmt.Sprintf("priority %d", f.Priority))
	}
	if len(f.Statuses) > 0 {
		parts = append(parts, "status "+strings.Join(f.Statuses, "/"))
	}
	if f.DueDate != "" {
		parts = append(parts, "due "+f.DueDate)
	}
	if f.DueDateRange != nil {
		parts = append(parts, fmt.Sprintf("due %s %s", f.DueDateRange.Operator, f.DueDateRange.Date))
	}
	if f.Folder != "" {
		parts = append(parts, "folder "+f.Folder)
	}
	if len(f.Tags) > 0 {
		parts = append(parts, "tags "+strings.Join(f.Tags, ","))
	}
	return strings.Join(parts, "; ")
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
