package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/abhisek/mathcoach/internal/llm"
	"github.com/abhisek/mathcoach/internal/store"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect and probe the generative backend",
}

var llmListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent backend requests",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		purpose, _ := cmd.Flags().GetString("purpose")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		rows, err := s.Events().RecentLLMRequests(context.Background(), limit)
		if err != nil {
			return fmt.Errorf("query requests: %w", err)
		}

		if len(rows) == 0 {
			fmt.Println("No backend requests recorded yet.")
			return nil
		}

		fmt.Printf("%-5s  %-19s  %-16s  %-28s  %-6s  %-6s  %-7s  %s\n",
			"ID", "Timestamp", "Purpose", "Model", "In", "Out", "Ms", "OK")
		fmt.Println(strings.Repeat("─", 100))

		for _, r := range rows {
			if purpose != "" && r.Purpose != purpose {
				continue
			}
			ok := "✓"
			if !r.Success {
				ok = "✗"
			}
			fmt.Printf("%-5d  %-19s  %-16s  %-28s  %-6d  %-6d  %-7d  %s\n",
				r.ID,
				r.CreatedAt.Local().Format("2006-01-02 15:04:05"),
				r.Purpose,
				truncate(r.Model, 28),
				r.InputTokens,
				r.OutputTokens,
				r.LatencyMs,
				ok,
			)
		}
		return nil
	},
}

var llmViewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "View full request/response for one backend call",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid ID %q: %w", args[0], err)
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		r, err := s.Events().GetLLMRequest(context.Background(), id)
		if err != nil {
			return fmt.Errorf("get request %d: %w", id, err)
		}

		sep := strings.Repeat("─", 60)

		fmt.Printf("ID:        %d\n", r.ID)
		fmt.Printf("Time:      %s\n", r.CreatedAt.Local().Format("2006-01-02 15:04:05"))
		fmt.Printf("Provider:  %s\n", r.Provider)
		fmt.Printf("Model:     %s\n", r.Model)
		fmt.Printf("Purpose:   %s\n", r.Purpose)
		fmt.Printf("Tokens:    %d in / %d out\n", r.InputTokens, r.OutputTokens)
		fmt.Printf("Latency:   %dms\n", r.LatencyMs)
		fmt.Printf("Success:   %v\n", r.Success)
		if r.ErrorMessage != "" {
			fmt.Printf("Error:     %s\n", r.ErrorMessage)
		}

		fmt.Println()
		fmt.Println(sep)
		fmt.Println("REQUEST")
		fmt.Println(sep)
		printBody(r.RequestBody)

		fmt.Println(sep)
		fmt.Println("RESPONSE")
		fmt.Println(sep)
		printBody(r.ResponseBody)

		return nil
	},
}

var llmStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregated token usage and estimated cost",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := context.Background()
		byPurpose, err := s.Events().UsageByPurpose(ctx)
		if err != nil {
			return fmt.Errorf("query usage: %w", err)
		}

		if len(byPurpose) == 0 {
			fmt.Println("No backend usage recorded yet.")
			return nil
		}

		fmt.Println("Usage by Purpose")
		fmt.Println(strings.Repeat("─", 72))
		fmt.Printf("%-16s  %6s  %6s  %10s  %10s  %10s\n",
			"Purpose", "Calls", "Errors", "Input", "Output", "Total")
		fmt.Println(strings.Repeat("─", 72))

		var totalCalls, totalIn, totalOut int
		for _, st := range byPurpose {
			total := st.InputTokens + st.OutputTokens
			fmt.Printf("%-16s  %6d  %6d  %10d  %10d  %10d\n",
				st.Key, st.Requests, st.Failures, st.InputTokens, st.OutputTokens, total)
			totalCalls += st.Requests
			totalIn += st.InputTokens
			totalOut += st.OutputTokens
		}

		fmt.Println(strings.Repeat("─", 72))
		fmt.Printf("%-16s  %6d  %6s  %10d  %10d  %10d\n",
			"TOTAL", totalCalls, "", totalIn, totalOut, totalIn+totalOut)

		byModel, err := s.Events().UsageByModel(ctx)
		if err != nil {
			return fmt.Errorf("query model usage: %w", err)
		}

		if len(byModel) > 0 {
			fmt.Println()
			fmt.Println("Estimated Cost (USD)")
			fmt.Println(strings.Repeat("─", 72))
			fmt.Printf("%-32s  %6s  %10s  %10s  %10s\n",
				"Model", "Calls", "Input", "Output", "Cost")
			fmt.Println(strings.Repeat("─", 72))

			var totalCost float64
			for _, mu := range byModel {
				usage := llm.Usage{InputTokens: mu.InputTokens, OutputTokens: mu.OutputTokens}
				if _, known := llm.LookupCost(mu.Key); !known {
					fmt.Printf("%-32s  %6d  %10d  %10d  %10s\n",
						truncate(mu.Key, 32), mu.Requests, mu.InputTokens, mu.OutputTokens, "?")
					continue
				}
				cost := llm.EstimateCost(mu.Key, usage)
				totalCost += cost
				fmt.Printf("%-32s  %6d  %10d  %10d  %10s\n",
					truncate(mu.Key, 32), mu.Requests, mu.InputTokens, mu.OutputTokens, formatCost(cost))
			}

			fmt.Println(strings.Repeat("─", 72))
			fmt.Printf("%-32s  %6s  %10s  %10s  %10s\n",
				"TOTAL", "", "", "", formatCost(totalCost))
		}

		return nil
	},
}

var llmProbeCmd = &cobra.Command{
	Use:   "probe",
	Short: "Send a trivial generation to verify the configured backend",
	RunE: func(cmd *cobra.Command, args []string) error {
		_ = godotenv.Load()

		cfg := resolveLLMConfig()
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("LLM backend not configured: %w", err)
		}

		registry := llm.NewRegistry(cfg, nil, nil)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		prompt, err := registry.Compile(ctx, llm.PromptSpec{
			Operation: "probe",
			System:    "Reply with a JSON object {\"ok\": true}.",
			Schema: &llm.Schema{
				Name: "probe",
				Definition: map[string]any{
					"type": "object",
					"properties": map[string]any{
						"ok": map[string]any{"type": "boolean"},
					},
					"required":             []any{"ok"},
					"additionalProperties": false,
				},
			},
			MaxTokens: 32,
		}, "")
		if err != nil {
			return err
		}

		start := time.Now()
		out, err := prompt.Invoke(ctx, "ping")
		if err != nil {
			return fmt.Errorf("probe failed: %w", err)
		}

		fmt.Printf("Provider:  %s\n", cfg.Provider)
		fmt.Printf("Model:     %s\n", prompt.ModelID())
		fmt.Printf("Latency:   %s\n", time.Since(start).Round(time.Millisecond))
		fmt.Printf("Response:  %s\n", out)
		return nil
	},
}

func init() {
	llmListCmd.Flags().Int("limit", 20, "Maximum rows to show")
	llmListCmd.Flags().String("purpose", "", "Filter by purpose label")

	llmCmd.AddCommand(llmListCmd)
	llmCmd.AddCommand(llmViewCmd)
	llmCmd.AddCommand(llmStatsCmd)
	llmCmd.AddCommand(llmProbeCmd)
}

func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd, "")
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}

func printBody(body string) {
	if body == "" {
		fmt.Println("(not captured)")
		return
	}
	fmt.Println(body)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}

func formatCost(c float64) string {
	if c < 0.01 && c > 0 {
		return fmt.Sprintf("$%.4f", c)
	}
	return fmt.Sprintf("$%.2f", c)
}
