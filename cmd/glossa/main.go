package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/coolbeans/glossa/pkg/config"
	"github.com/coolbeans/glossa/pkg/corpus"
	"github.com/coolbeans/glossa/pkg/display"
	"github.com/coolbeans/glossa/pkg/extract"
	"github.com/coolbeans/glossa/pkg/session"
)

var version = "0.1.0"

func main() {
	var configPath string
	var noColor bool
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "glossa",
		Short: "Glossary extraction for legal documents",
		Long: `Glossa builds a glossary from a legal document's defined terms and
resolves selected phrases to their definitions.

It reads plain text or PDF documents and recognizes:
  - Direct definitions ("Term" means ...)
  - Clause cross-references ("Term" has the meaning given in clause 9.2)
  - Definitions embedded in parenthetical drafting elsewhere in the text`,
		Version: version,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "print glossary statistics to stderr")

	rootCmd.AddCommand(termsCmd(&configPath))
	rootCmd.AddCommand(lookupCmd(&configPath, &noColor, &verbose))
	rootCmd.AddCommand(watchCmd(&configPath, &noColor, &verbose))
	rootCmd.AddCommand(exportCmd(&configPath))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// buildGlossary loads configuration, reads the document and builds a
// glossary snapshot. Shared by the one-shot commands.
func buildGlossary(configPath, documentPath string) (*config.Config, *extract.Glossary, error) {
	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return nil, nil, err
	}

	provider, err := corpus.ForFile(documentPath, corpus.Options{MaxPDFPages: cfg.Document.MaxPDFPages})
	if err != nil {
		return nil, nil, err
	}
	paragraphs, err := provider.ParagraphTexts()
	if err != nil {
		return nil, nil, err
	}

	return cfg, extract.Build(paragraphs), nil
}

func termsCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "terms <document>",
		Short: "List the defined terms found in a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, glossary, err := buildGlossary(*configPath, args[0])
			if err != nil {
				return err
			}

			stats := glossary.Stats()
			fmt.Printf("Paragraphs scanned: %d\n", stats.Paragraphs)
			fmt.Printf("Direct definitions: %d\n", stats.DirectEntries)
			for _, term := range glossary.DirectTerms() {
				fmt.Printf("  %s\n", term)
			}
			fmt.Printf("Clause cross-references: %d\n", stats.CrossRefEntries)
			for _, term := range glossary.CrossRefTerms() {
				fmt.Printf("  %s (clause %s)\n", term, glossary.CrossRef[term].ClauseRef)
			}
			return nil
		},
	}
}

func lookupCmd(configPath *string, noColor, verbose *bool) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lookup <document> <term>...",
		Short: "Resolve selected phrases against a document's glossary",
		Example: `  glossa lookup agreement.txt "Business Day"
  glossa lookup agreement.pdf "Clawback Amounts" "Margin" --format json`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")

			cfg, glossary, err := buildGlossary(*configPath, args[0])
			if err != nil {
				return err
			}
			if format == "" {
				format = cfg.Defaults.Format
			}
			if *verbose || cfg.Defaults.Verbose {
				printStats(glossary)
			}

			switch format {
			case "json":
				results := make([]extract.Resolution, 0, len(args)-1)
				for _, term := range args[1:] {
					results = append(results, extract.Resolve(glossary, term))
				}
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(results)
			case "text":
				sink := display.NewTerminal(os.Stdout, *noColor || cfg.Defaults.NoColor)
				for _, term := range args[1:] {
					res := extract.Resolve(glossary, term)
					switch res.Status {
					case extract.StatusDirect, extract.StatusEmbedded:
						sink.ShowResult(res.Term, res.Definition)
					case extract.StatusClauseOnly:
						sink.ShowResult(res.Term, "")
						sink.ShowStatus(res.Message())
					default:
						sink.ShowStatus(res.Message())
					}
				}
				return nil
			default:
				return fmt.Errorf("unknown format %q", format)
			}
		},
	}
	cmd.Flags().String("format", "", "output format: text or json")
	return cmd
}

// printStats writes glossary summary counts to stderr.
func printStats(g *extract.Glossary) {
	stats := g.Stats()
	fmt.Fprintf(os.Stderr, "glossary: %d direct, %d cross-referenced, %d paragraphs\n",
		stats.DirectEntries, stats.CrossRefEntries, stats.Paragraphs)
}

func watchCmd(configPath *string, noColor, verbose *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "watch <document>",
		Short: "Watch a document and resolve selections read from stdin",
		Long: `Watch builds the glossary, rebuilds it whenever the document changes on
disk, and resolves each line read from standard input as a selection.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadOrDefault(*configPath)
			if err != nil {
				return err
			}

			provider, err := corpus.ForFile(args[0], corpus.Options{MaxPDFPages: cfg.Document.MaxPDFPages})
			if err != nil {
				return err
			}

			sink := display.NewTerminal(os.Stdout, *noColor || cfg.Defaults.NoColor)
			s := session.New(provider, sink)
			if err := s.Rebuild(); err != nil {
				return err
			}
			if *verbose || cfg.Defaults.Verbose {
				printStats(s.Glossary())
			}

			debounce := time.Duration(cfg.Watch.DebounceMS) * time.Millisecond
			watcher := session.NewWatcher(s, args[0], debounce)
			if err := watcher.Start(); err != nil {
				return err
			}
			defer watcher.Stop()

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			selections := make(chan string)
			go func() {
				defer close(selections)
				scanner := bufio.NewScanner(os.Stdin)
				for scanner.Scan() {
					selections <- scanner.Text()
				}
			}()

			s.Run(ctx, selections)
			return nil
		},
	}
}

func exportCmd(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <document>",
		Short: "Export a document's glossary as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output, _ := cmd.Flags().GetString("output")

			_, glossary, err := buildGlossary(*configPath, args[0])
			if err != nil {
				return err
			}

			out := os.Stdout
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("creating output file: %w", err)
				}
				defer f.Close()
				out = f
			}

			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(glossary)
		},
	}
	cmd.Flags().String("output", "", "write JSON to a file instead of stdout")
	return cmd
}
