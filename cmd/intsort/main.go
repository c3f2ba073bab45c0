// intsort 정수 파일을 첫 원소 피벗 퀵소트로 정렬한다.
//
//	intsort <file>                  datasets/<file> -> outputs/<file>
//	intsort gen <pattern> <n> [name]
//	intsort bench
//	intsort history
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"intsort/internal/config"
)

const defaultConfigPath = "intsort.yaml"

// app 명령 전체가 공유하는 상태
type app struct {
	configPath string
	inputDir   string
	outputDir  string
	algorithm  string
	backend    string
	storePath  string
	verbose    bool

	logger *zap.Logger
	// measure 정렬 측정. nil이면 bench.Measure
	measure func(func()) (time.Duration, uint64, uint64)
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "intsort <input_filename_in_datasets>",
		Short: "Sort integers from a dataset file with first-element-pivot quicksort",
		Long: `Reads whitespace-separated integers from <input-dir>/<file>, sorts them
in place with a first-element-pivot quicksort and writes one integer per
line to <output-dir>/<file>. The output directory is created if absent.

Reading stops at the first token that is not an integer.`,
		Example:       "  intsort random_100k.txt",
		Args:          exactFileArg,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.logger != nil {
				return nil
			}
			cfg := zap.NewProductionConfig()
			if a.verbose {
				cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			logger, err := cfg.Build()
			if err != nil {
				return errors.Wrap(err, "failed to initialize logger")
			}
			a.logger = logger
			return nil
		},
		RunE: a.runSort,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", defaultConfigPath, "YAML config file (missing file means defaults)")
	flags.StringVar(&a.inputDir, "input-dir", "", "directory holding input files (default from config: datasets)")
	flags.StringVar(&a.outputDir, "output-dir", "", "directory for sorted output (default from config: outputs)")
	flags.StringVar(&a.algorithm, "algorithm", "", "recursive or iterative")
	flags.StringVar(&a.backend, "store", "", "run history backend: none, bbolt, badger, pebble")
	flags.StringVar(&a.storePath, "store-path", "", "run history database path")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(newGenCmd(a), newBenchCmd(a), newHistoryCmd(a))
	return root
}

// exactFileArg 인자 개수가 틀리면 예시와 함께 에러
func exactFileArg(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return errors.Newf("usage: %s <input_filename_in_datasets> (example: %s random_100k.txt)",
			cmd.Root().Name(), cmd.Root().Name())
	}
	return nil
}

// loadConfig 설정 파일 위에 명시된 플래그를 덮어쓴다
func (a *app) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("input-dir") {
		cfg.InputDir = a.inputDir
	}
	if flags.Changed("output-dir") {
		cfg.OutputDir = a.outputDir
	}
	if flags.Changed("algorithm") {
		cfg.Algorithm = a.algorithm
	}
	if flags.Changed("store") {
		cfg.Store.Backend = a.backend
	}
	if flags.Changed("store-path") {
		cfg.Store.Path = a.storePath
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	a.logger.Debug("config loaded",
		zap.String("path", a.configPath),
		zap.String("input_dir", cfg.InputDir),
		zap.String("output_dir", cfg.OutputDir),
		zap.String("algorithm", cfg.Algorithm),
		zap.String("store", cfg.Store.Backend))
	return cfg, nil
}

// execute 명령을 실행하고 종료 코드를 돌려준다. 성공이든 실패든 로거를 비운다
func execute(ctx context.Context, a *app, args []string, stderr io.Writer) int {
	cmd := newRootCmd(a)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(ctx)

	if a.logger != nil {
		_ = a.logger.Sync()
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := execute(ctx, &app{}, os.Args[1:], os.Stderr)
	stop()
	os.Exit(code)
}
