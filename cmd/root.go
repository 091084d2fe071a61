package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	wgethttp "github.com/tanq16/wgetter/internal/downloaders/http"
	"github.com/tanq16/wgetter/internal/output"
	"github.com/tanq16/wgetter/internal/scheduler"
	"github.com/tanq16/wgetter/internal/utils"
)

var (
	outputDir    string
	chunkSize    int
	timeout      time.Duration
	kaTimeout    time.Duration
	userAgent    string
	consoleWidth int
	largeBuffers bool
	debug        bool
)

var WgetterVersion = "dev"

var rootCmd = &cobra.Command{
	Use:     "wgetter [URL...]",
	Short:   "wgetter downloads files over HTTP(S) with live progress",
	Version: WgetterVersion,
	Args:    cobra.ArbitraryArgs,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		utils.InitLogger(debug)
		if consoleWidth <= 0 {
			consoleWidth = output.ConsoleWidth()
		}
		log.Debug().Str("op", "cmd/root").Msgf("Console width %d", consoleWidth)
	},
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			output.PrintPlain("Usage: wgetter <URL>")
		}
		os.Exit(runJobs(cmd.Context(), scheduler.NewJobs(args, outputDir)))
	},
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&outputDir, "output", "o", ".", "Output directory")
	rootCmd.PersistentFlags().IntVarP(&chunkSize, "chunk-size", "s", utils.DefaultChunkSize, "Bytes read from the response per chunk")
	rootCmd.PersistentFlags().DurationVarP(&timeout, "timeout", "t", time.Minute, "Connect and response header timeout (eg. 5s, 10m)")
	rootCmd.PersistentFlags().DurationVarP(&kaTimeout, "keep-alive-timeout", "k", 90*time.Second, "Keep-alive timeout for client (eg. 10s, 1m, 80s)")
	rootCmd.PersistentFlags().StringVarP(&userAgent, "user-agent", "a", utils.ToolUserAgent, "User agent")
	rootCmd.PersistentFlags().IntVar(&consoleWidth, "width", 0, "Console width used for the progress bar (detected if not set)")
	rootCmd.PersistentFlags().BoolVar(&largeBuffers, "large-buffers", false, "Use 1MB socket buffers for fast links")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(newBatchCmd())
	rootCmd.AddCommand(newCleanCmd())
}

func newDownloader() *wgethttp.HTTPDownloader {
	client := utils.NewWgetHTTPClient(utils.HTTPClientConfig{
		Timeout:      timeout,
		KATimeout:    kaTimeout,
		UserAgent:    userAgent,
		LargeBuffers: largeBuffers,
	})
	return wgethttp.NewHTTPDownloader(wgethttp.Config{
		ChunkSize:    chunkSize,
		ConsoleWidth: consoleWidth,
		Client:       client,
		Progress:     os.Stdout,
		Printer:      output.NewPrinter(os.Stdout),
	})
}

// runJobs downloads jobs in order and returns the process exit code.
func runJobs(ctx context.Context, jobs []utils.Job) int {
	printer := output.NewPrinter(os.Stdout)
	_, err := scheduler.Run(ctx, jobs, newDownloader(), printer)
	return reportFailure(printer, err)
}

func reportFailure(p *output.Printer, err error) int {
	if err == nil {
		return 0
	}
	var interrupted *wgethttp.InterruptedError
	if errors.As(err, &interrupted) {
		p.Blank(2)
		p.Warning("Ctrl + C: Download aborted by user")
		if interrupted.Partial != "" {
			p.Plain("Partial downloaded file:\n" + interrupted.Partial)
		}
		return 1
	}
	log.Debug().Str("op", "cmd/root").Err(err).Msg("Download failed")
	p.Blank(1)
	p.Error(fmt.Sprintf("%s %v", output.StyleSymbols["fail"], err))
	return 1
}
