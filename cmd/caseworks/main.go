// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/caseworks/pkg/casework"
)

var (
	cfgPath   string
	serveAddr string
)

// rootCmd starts the interactive shell when invoked without a subcommand,
// mirroring the original assistant's REPL.
var rootCmd = &cobra.Command{
	Use:   "caseworks",
	Short: "法律工程系统 - 智能助手",
	Long: `caseworks manages legal case folders and generates dispute-focus
analysis documents from case materials.

Run without arguments to start the interactive shell, which accepts the
original free-text commands (新建案件…, 识别争议焦点…, …).`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		o, err := newOrchestrator(cmd.Context())
		if err != nil {
			return err
		}
		return runREPL(o)
	},
}

var createCmd = &cobra.Command{
	Use:   "create <案件名称>",
	Short: "Create a new case folder from the sample-case template",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		o, err := newOrchestrator(cmd.Context())
		if err != nil {
			return err
		}
		dir, err := o.CreateCase(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("案件路径: %s\n", dir)
		return nil
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List existing cases",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		o, err := newOrchestrator(cmd.Context())
		if err != nil {
			return err
		}
		names, err := o.ListCases()
		if err != nil {
			return err
		}
		printCaseList(names)
		return nil
	},
}

var selectCmd = &cobra.Command{
	Use:   "select <案件名称>",
	Short: "Resolve a case and print its directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		o, err := newOrchestrator(cmd.Context())
		if err != nil {
			return err
		}
		dir, err := o.SelectCase(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("案件路径: %s\n请使用 cd %q 进入案件目录\n", dir, dir)
		return nil
	},
}

var disputesCmd = &cobra.Command{
	Use:   "disputes <案件名称>",
	Short: "Generate a dispute-focus analysis report for a case",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		o, err := newOrchestrator(cmd.Context())
		if err != nil {
			return err
		}
		path, err := o.IdentifyDisputes(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Printf("争议焦点分析文件已创建: %s\n", path)
		return nil
	},
}

// promptCmd prints the assembled prompt without invoking generation, for
// inspecting what would be sent.
var promptCmd = &cobra.Command{
	Use:   "prompt <案件名称>",
	Short: "Print the assembled analysis prompt without generating",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		o, err := newOrchestrator(cmd.Context())
		if err != nil {
			return err
		}
		prompt, err := o.BuildPrompt(args[0])
		if err != nil {
			return err
		}
		fmt.Print(prompt)
		return nil
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the workspace over HTTP",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		o, err := newOrchestrator(cmd.Context())
		if err != nil {
			return err
		}
		return o.Serve(serveAddr)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "path to caseworks.yaml")
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from config)")
	rootCmd.AddCommand(createCmd, listCmd, selectCmd, disputesCmd, promptCmd, serveCmd)
}

// loadConfig resolves the configuration: an explicit --config path must
// load, a caseworks.yaml in the working directory is picked up when present,
// and otherwise the built-in defaults apply.
func loadConfig() (casework.Config, error) {
	if cfgPath != "" {
		return casework.LoadConfig(cfgPath)
	}
	if _, err := os.Stat("caseworks.yaml"); err == nil {
		return casework.LoadConfig("caseworks.yaml")
	}
	return casework.DefaultConfig(), nil
}

// newOrchestrator wires the configured generation backend.
func newOrchestrator(ctx context.Context) (*casework.Orchestrator, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	var gen casework.Generator
	if cfg.Generator.Backend == "gemini" {
		gen, err = casework.NewGeminiGenerator(ctx, cfg.Generator.Model)
		if err != nil {
			return nil, fmt.Errorf("initializing gemini backend: %w", err)
		}
	}
	return casework.New(cfg, gen), nil
}

func printCaseList(names []string) {
	fmt.Println("案件列表:")
	if len(names) == 0 {
		fmt.Println("  (暂无案件)")
		return
	}
	for _, name := range names {
		fmt.Printf("- %s\n", name)
	}
}

func main() {
	_ = godotenv.Load()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
