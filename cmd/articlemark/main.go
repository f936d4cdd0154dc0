package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/riverfjs/articlemark"
	"github.com/riverfjs/articlemark/internal/config"
	"github.com/riverfjs/articlemark/internal/server"
	"github.com/riverfjs/articlemark/internal/site"
)

var version = "0.1.0"

// cfg is loaded before every subcommand runs.
var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "articlemark",
	Short: "Render article text markup to HTML",
	Long: `Converts free-form article bodies with image, audio and keyword link
markup into safe HTML fragments, and renders the site's article, about
and slider documents.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load(viper.GetViper())
		if err != nil {
			return err
		}
		cfg = c
		return nil
	},
}

var convertCmd = &cobra.Command{
	Use:   "convert [file]",
	Short: "Convert article text to an HTML fragment",
	Long: `Reads article text from file, or from stdin when no file is given,
and writes the HTML fragment to stdout.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConvert,
}

var renderCmd = &cobra.Command{
	Use:       "render <articles|article|about|sliders>",
	Short:     "Render a site page from the data directory",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"articles", "article", "about", "sliders"},
	RunE:      runRender,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the preview server",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the site documents",
	Args:  cobra.NoArgs,
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(convertCmd, renderCmd, serveCmd, checkCmd)

	rootCmd.PersistentFlags().StringP("data", "d", "", "Data directory or base URL of the JSON documents")
	rootCmd.PersistentFlags().String("articles-dir", "", "Directory of Markdown articles with frontmatter")
	rootCmd.PersistentFlags().Bool("trust-html", false, "Keep literal HTML tags (sanitized)")
	rootCmd.PersistentFlags().Bool("debug", false, "Run gin in debug mode")

	convertCmd.Flags().Bool("images-only", false, "Only expand image markup, leave other text untouched")

	renderCmd.Flags().Int("id", 0, "Article index for the article page")
	renderCmd.Flags().Bool("document", false, "Wrap the fragment in a full HTML page")

	serveCmd.Flags().String("addr", "", "Listen address (default :8080)")

	viper.BindPFlag("data_dir", rootCmd.PersistentFlags().Lookup("data"))
	viper.BindPFlag("articles_dir", rootCmd.PersistentFlags().Lookup("articles-dir"))
	viper.BindPFlag("trust_html", rootCmd.PersistentFlags().Lookup("trust-html"))
	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("addr", serveCmd.Flags().Lookup("addr"))
}

func runConvert(cmd *cobra.Command, args []string) error {
	var (
		input []byte
		err   error
	)
	if len(args) > 0 {
		input, err = os.ReadFile(args[0])
	} else {
		input, err = io.ReadAll(cmd.InOrStdin())
	}
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	opts := cfg.ConvertOptions()
	var html string
	if imagesOnly, _ := cmd.Flags().GetBool("images-only"); imagesOnly {
		html = articlemark.ExpandImages(string(input), opts...)
	} else {
		html = articlemark.Convert(string(input), opts...)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), html)
	return err
}

func runRender(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	loader := cfg.Loader()
	renderer := cfg.Renderer()

	var (
		body  bytes.Buffer
		title = renderer.SiteName
		err   error
	)
	switch args[0] {
	case "articles":
		var articles []site.Article
		if articles, err = loader.LoadArticles(ctx); err == nil {
			title = site.DefaultPageTitle + " - " + renderer.SiteName
			err = renderer.RenderArticleCards(&body, articles)
		}
	case "article":
		id, _ := cmd.Flags().GetInt("id")
		var a site.Article
		if a, err = loader.LoadArticle(ctx, id); err == nil {
			title = renderer.ArticleTitle(a)
			err = renderer.RenderArticlePage(&body, a)
		}
	case "about":
		var about site.About
		if about, err = loader.LoadAbout(ctx); err == nil {
			err = renderer.RenderAbout(&body, about)
		}
	case "sliders":
		var slides []site.Slide
		if slides, err = loader.LoadSliders(ctx); err == nil {
			err = renderer.RenderSliders(&body, slides)
		}
	default:
		return fmt.Errorf("unknown page: %s (supported: articles, article, about, sliders)", args[0])
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if doc, _ := cmd.Flags().GetBool("document"); doc {
		return renderer.RenderDocument(out, title, template.HTML(body.String()))
	}
	_, err = body.WriteTo(out)
	return err
}

func runCheck(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	loader := cfg.Loader()
	loader.Strict = true

	checks := []struct {
		name string
		load func() error
	}{
		{"articles", func() error { _, err := loader.LoadArticles(ctx); return err }},
		{"about", func() error { _, err := loader.LoadAbout(ctx); return err }},
		{"sliders", func() error { _, err := loader.LoadSliders(ctx); return err }},
	}

	failed := 0
	out := cmd.OutOrStdout()
	for _, c := range checks {
		if err := c.load(); err != nil {
			failed++
			fmt.Fprintf(out, "✗ %s: %v\n", c.name, err)
			continue
		}
		fmt.Fprintf(out, "✓ %s\n", c.name)
	}
	if failed > 0 {
		return fmt.Errorf("%d document(s) failed validation", failed)
	}
	return nil
}

func runServe(cmd *cobra.Command, args []string) error {
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: server.New(cfg.Loader(), cfg.Renderer(), cfg.ConvertOptions()...).Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		articlemark.Logger.Printf("listening on %s (data: %s)", cfg.Addr, cfg.DataDir)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	// 等待中断信号以进行优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("start server: %w", err)
		}
		return nil
	case <-quit:
	}

	articlemark.Logger.Println("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}

func main() {
	rootCmd.Version = version
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
