package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	cli "github.com/urfave/cli/v3"

	"github.com/vibekit/vibe/internal/architect"
	"github.com/vibekit/vibe/internal/config"
	"github.com/vibekit/vibe/internal/doctor"
	"github.com/vibekit/vibe/internal/docs"
	"github.com/vibekit/vibe/internal/memory"
	"github.com/vibekit/vibe/internal/project"
	"github.com/vibekit/vibe/internal/provider"
	"github.com/vibekit/vibe/internal/scaffold"
	"github.com/vibekit/vibe/internal/template"
	"github.com/vibekit/vibe/internal/ux"
	"github.com/vibekit/vibe/internal/workflow"
)

func main() {
	app := &cli.Command{
		Name:        "vibe",
		Usage:       "AI-assisted project scaffolding generator",
		Description: "Run 'vibe docs' for documentation on configuration, template syntax, and the response format.",
		Commands: []*cli.Command{
			initCmd(),
			generateCmd(),
			validateCmd(),
			templatesCmd(),
			doctorCmd(),
			docsCmd(),
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%serror:%s %v\n", ux.Red, ux.Reset, err)
		os.Exit(1)
	}
}

func generateCmd() *cli.Command {
	return &cli.Command{
		Name:  "generate",
		Usage: "Generate a project from a configuration file",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config-json", Usage: "Path to the project configuration JSON", Required: true},
			&cli.BoolFlag{Name: "dry-run", Usage: "Preview the generated files without writing to disk"},
			&cli.StringFlag{Name: "output", Usage: "Output directory (overrides vibe.yaml)"},
			&cli.BoolFlag{Name: "overwrite", Usage: "Replace files that already exist"},
			&cli.BoolFlag{Name: "json", Usage: "Print the result as JSON instead of the summary"},
			&cli.StringFlag{Name: "model", Usage: "Completion model (overrides vibe.yaml)"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			provider.LoadEnv()

			cfg, err := config.LoadOrDefault(config.DefaultFileName)
			if err != nil {
				return fmt.Errorf("loading settings: %w", err)
			}
			if model := cmd.String("model"); model != "" {
				cfg.Model = model
			}
			outputDir := cfg.OutputDir
			if out := cmd.String("output"); out != "" {
				outputDir = out
			}

			raw, err := loadRawConfig(cmd.String("config-json"))
			if err != nil {
				return err
			}

			completer, err := provider.NewAnthropicClient(provider.Config{
				Model:     cfg.Model,
				BaseURL:   cfg.BaseURL,
				MaxTokens: cfg.MaxTokens,
				Timeout:   time.Duration(cfg.Timeout) * time.Second,
			})
			if err != nil {
				return err
			}

			var hydrator architect.Hydrator
			if cfg.MemoryPath != "" {
				embedder, err := provider.NewEmbeddingClient(provider.Config{})
				if err != nil {
					ux.Warn(fmt.Sprintf("memory disabled: %v", err))
				} else {
					store, err := memory.Open(cfg.MemoryPath, embedder)
					if err != nil {
						ux.Warn(fmt.Sprintf("memory disabled: %v", err))
					} else {
						hydrator = store
					}
				}
			}

			asJSON := cmd.Bool("json")
			wf := &workflow.Workflow{
				Composer: &template.Composer{Store: template.NewStore(cfg.TemplatesDir)},
				Engine:   architect.New(completer, hydrator),
				Model:    completer.Model(),
				BuildDir: cfg.BuildDir,
			}
			if !asJSON {
				wf.Progress = ux.StageHeader
			}

			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()

			res := wf.Run(ctx, workflow.Request{
				RawConfig: raw,
				DryRun:    cmd.Bool("dry-run"),
				OutputDir: outputDir,
				Overwrite: cmd.Bool("overwrite"),
				Archive:   cfg.Archive,
			})

			if asJSON {
				data, err := json.MarshalIndent(res, "", "  ")
				if err != nil {
					return err
				}
				fmt.Println(string(data))
			} else {
				ux.RenderResult(res, cmd.Bool("dry-run"))
			}

			if !res.Success {
				os.Exit(1)
			}
			return nil
		},
	}
}

func validateCmd() *cli.Command {
	return &cli.Command{
		Name:  "validate",
		Usage: "Validate a project configuration file",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config-json", Usage: "Path to the project configuration JSON", Required: true},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			raw, err := loadRawConfig(cmd.String("config-json"))
			if err != nil {
				return err
			}
			cfg, err := project.FromMap(raw)
			if err != nil {
				return err
			}
			fmt.Printf("%s✓ configuration is valid%s (project %q)\n", ux.Green, ux.Reset, cfg.ProjectName)
			return nil
		},
	}
}

func templatesCmd() *cli.Command {
	return &cli.Command{
		Name:  "templates",
		Usage: "Compose and review the prompt for a configuration",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config-json", Usage: "Path to the project configuration JSON", Required: true},
			&cli.BoolFlag{Name: "show", Usage: "Print the composed prompt"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			settings, err := config.LoadOrDefault(config.DefaultFileName)
			if err != nil {
				return fmt.Errorf("loading settings: %w", err)
			}
			raw, err := loadRawConfig(cmd.String("config-json"))
			if err != nil {
				return err
			}
			cfg, err := project.FromMap(raw)
			if err != nil {
				return err
			}

			composer := &template.Composer{Store: template.NewStore(settings.TemplatesDir)}
			composed, err := composer.Compose(cfg)
			if err != nil {
				return err
			}

			if cmd.Bool("show") {
				fmt.Println(composed.UserText)
				return nil
			}
			doctor.RenderPromptReport(doctor.ReviewPrompt(composed.UserText))
			return nil
		},
	}
}

func doctorCmd() *cli.Command {
	return &cli.Command{
		Name:  "doctor",
		Usage: "Check that the environment is ready for generation",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			provider.LoadEnv()
			cfg, err := config.LoadOrDefault(config.DefaultFileName)
			if err != nil {
				return fmt.Errorf("loading settings: %w", err)
			}
			checks := doctor.Run(cfg)
			doctor.Render(checks)
			if !doctor.Healthy(checks) {
				os.Exit(1)
			}
			return nil
		},
	}
}

func initCmd() *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Initialize a workspace with starter templates and settings",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			dir, err := os.Getwd()
			if err != nil {
				return err
			}
			return scaffold.Init(dir)
		},
	}
}

func docsCmd() *cli.Command {
	return &cli.Command{
		Name:      "docs",
		Usage:     "Show documentation",
		ArgsUsage: "[topic]",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			name := cmd.Args().First()
			if name == "" {
				fmt.Print("\nAvailable topics:\n\n")
				for _, t := range docs.All() {
					fmt.Printf("  %-12s %s\n", t.Name, t.Summary)
				}
				fmt.Println("\nRun 'vibe docs <topic>' to read a topic.")
				return nil
			}
			t, err := docs.Get(name)
			if err != nil {
				return err
			}
			fmt.Print(t.Content)
			return nil
		},
	}
}

// loadRawConfig reads the project configuration JSON into an untyped map;
// typing happens in project.FromMap.
func loadRawConfig(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading configuration: %w", err)
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing configuration: %w", err)
	}
	return raw, nil
}
