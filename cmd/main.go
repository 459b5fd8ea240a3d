package main

import (
	"fmt"
	"os"
	"runtime"

	"go.uber.org/zap"

	"github.com/andreyflyagin/wordcounter/internal/pipeline"
)

func main() {
	if len(os.Args) != 3 {
		fmt.Fprintln(os.Stderr, "Usage: wordcounter <input_file> <output_file>")
		os.Exit(1)
	}

	logger := setupLogger()
	err := run(os.Args[1], os.Args[2], runtime.NumCPU(), logger)
	if err != nil {
		logger.Error("word count failed", zap.Error(err))
	}
	_ = logger.Sync()
	if err != nil {
		os.Exit(1)
	}
}

func run(inputFile, outputFile string, workers int, logger *zap.Logger) error {
	p, err := pipeline.Open(inputFile, outputFile,
		pipeline.WithWorkers(workers),
		pipeline.WithLogger(logger))
	if err != nil {
		return err
	}
	defer p.Close()

	_, err = p.Run()
	return err
}

func setupLogger() *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableStacktrace = true
	logger, err := cfg.Build()
	if err != nil {
		panic(err)
	}
	return logger
}
