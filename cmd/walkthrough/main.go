package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/rochi88/go-exercise/internal/pkg/walkthrough"
	"github.com/rochi88/go-exercise/internal/shared/logger"
	"github.com/rochi88/go-exercise/internal/utils"
)

func main() {
	exercises := pflag.StringSliceP("exercise", "e", nil, "exercises to run (default all): "+strings.Join(walkthrough.Exercises(), ", "))
	env := pflag.String("env", "development", "logging environment")
	pflag.Parse()

	appLogger, err := logger.New(logger.Options{Environment: *env})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLogger.Sync()

	runID := utils.GenerateUUID()
	appLogger = appLogger.Named("walkthrough").With(zap.String("run_id", runID))

	steps, err := walkthrough.Run(*exercises...)
	if err != nil {
		appLogger.Error("Walkthrough failed", zap.Error(err))
		os.Exit(1)
	}

	current := ""
	for _, s := range steps {
		if s.Exercise != current {
			if current != "" {
				fmt.Printf("=== End Testing %s ===\n\n", title(current))
			}
			current = s.Exercise
			fmt.Printf("=== Testing %s ===\n", title(current))
		}
		fmt.Printf("%s -> %s\n", s.Call, s.Result)
	}
	if current != "" {
		fmt.Printf("=== End Testing %s ===\n", title(current))
	}

	appLogger.Info("Walkthrough finished", zap.Int("steps", len(steps)))
}

func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
