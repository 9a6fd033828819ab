// Copyright 2025 Poiesic Systems
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
	"bufio"
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/poiesic/regulo"
	"github.com/poiesic/regulo/ai"
	"github.com/poiesic/regulo/answer"
)

func main() {
	// Optional .env for service hosts and models; missing file is fine.
	godotenv.Load()

	app := &cli.App{
		Name:  "regulo",
		Usage: "Question answering over university regulation documents",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
			&cli.StringFlag{
				Name:    "data-dir",
				Aliases: []string{"d"},
				Usage:   "Directory holding the index, cache and faq.json",
				Value:   "./data",
				EnvVars: []string{"REGULO_DATA_DIR"},
			},
			&cli.StringFlag{
				Name:    "host",
				Usage:   "OpenAI-compatible service host URL",
				Value:   "http://localhost:11434/v1",
				EnvVars: []string{"REGULO_HOST"},
			},
			&cli.StringFlag{
				Name:    "embedding-model",
				Usage:   "Embedding model name",
				Value:   "embeddinggemma",
				EnvVars: []string{"REGULO_EMBEDDING_MODEL"},
			},
			&cli.StringFlag{
				Name:    "generator-model",
				Usage:   "Answer generation model name",
				Value:   "qwen2.5:7b",
				EnvVars: []string{"REGULO_GENERATOR_MODEL"},
			},
			&cli.StringFlag{
				Name:    "classifier-model",
				Usage:   "Intent classification model name",
				Value:   "qwen2.5:3b",
				EnvVars: []string{"REGULO_CLASSIFIER_MODEL"},
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "ask",
				Usage:     "Answer a single question and exit",
				ArgsUsage: "<question>",
				Action:    askCommand,
			},
			{
				Name:   "chat",
				Usage:  "Interactive question answering session",
				Action: chatCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "watch",
						Usage: "Document directory to ingest and keep in sync",
					},
				},
			},
			{
				Name:      "ingest",
				Usage:     "Index the documents under a directory",
				ArgsUsage: "<directory>",
				Action:    ingestCommand,
			},
			{
				Name:  "cache",
				Usage: "Manage the query result cache",
				Subcommands: []*cli.Command{
					{
						Name:   "stats",
						Usage:  "Show cache occupancy",
						Action: cacheStatsCommand,
					},
					{
						Name:   "clear",
						Usage:  "Drop all cached answers",
						Action: cacheClearCommand,
					},
				},
			},
			{
				Name:   "status",
				Usage:  "Show index size",
				Action: statusCommand,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newAssistant(c *cli.Context) (*regulo.Assistant, error) {
	config := ai.NewConfig(
		ai.WithHost(c.String("host")),
		ai.WithEmbeddingModel(c.String("embedding-model")),
		ai.WithGeneratorModel(c.String("generator-model")),
		ai.WithClassifierModel(c.String("classifier-model")),
	)
	return regulo.NewAssistant(c.String("data-dir"), regulo.WithAIConfig(config))
}

func askCommand(c *cli.Context) error {
	question := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if question == "" {
		return fmt.Errorf("usage: regulo ask <question>")
	}

	assistant, err := newAssistant(c)
	if err != nil {
		return err
	}
	defer assistant.Close()

	result, err := assistant.Ask(c.Context, question)
	if err != nil {
		return err
	}
	fmt.Println(answer.RenderText(result))
	return nil
}

func chatCommand(c *cli.Context) error {
	assistant, err := newAssistant(c)
	if err != nil {
		return err
	}
	defer assistant.Close()

	ctx, cancel := context.WithCancel(c.Context)
	defer cancel()

	if dir := c.String("watch"); dir != "" {
		go func() {
			if err := assistant.Watch(ctx, dir); err != nil && ctx.Err() == nil {
				slog.Error("document watcher stopped", "err", err)
			}
		}()
	}

	fmt.Println("regulo - soru sormak için yazın, çıkmak için Ctrl-D")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			fmt.Println()
			return scanner.Err()
		}

		question := strings.TrimSpace(scanner.Text())
		if question == "" {
			continue
		}

		result, err := assistant.Ask(ctx, question)
		if err != nil {
			slog.Error("failed to answer", "err", err)
			continue
		}
		fmt.Println(answer.RenderText(result))
		fmt.Println()
	}
}

func ingestCommand(c *cli.Context) error {
	dir := c.Args().First()
	if dir == "" {
		return fmt.Errorf("usage: regulo ingest <directory>")
	}

	assistant, err := newAssistant(c)
	if err != nil {
		return err
	}
	defer assistant.Close()

	if err := assistant.IngestDir(c.Context, dir); err != nil {
		return err
	}

	count, err := assistant.IndexCount(c.Context)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Index now holds %d chunks\n", count)
	return nil
}

func cacheStatsCommand(c *cli.Context) error {
	assistant, err := newAssistant(c)
	if err != nil {
		return err
	}
	defer assistant.Close()

	stats, err := assistant.CacheStats()
	if err != nil {
		return err
	}
	fmt.Printf("memory entries: %d\ndisk entries:   %d\n", stats.MemoryEntries, stats.DiskEntries)
	return nil
}

func cacheClearCommand(c *cli.Context) error {
	assistant, err := newAssistant(c)
	if err != nil {
		return err
	}
	defer assistant.Close()

	if err := assistant.ClearCache(); err != nil {
		return err
	}
	fmt.Fprintln(os.Stderr, "cache cleared")
	return nil
}

func statusCommand(c *cli.Context) error {
	assistant, err := newAssistant(c)
	if err != nil {
		return err
	}
	defer assistant.Close()

	count, err := assistant.IndexCount(c.Context)
	if err != nil {
		return err
	}
	fmt.Printf("indexed chunks: %d\n", count)
	return nil
}

func setupLogger(c *cli.Context) error {
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
