// riskcheck evaluates animals from a YAML file against a household profile
// and prints a compatibility report for each, lowest risk first.
//
// Usage:
//
//	riskcheck -animal animals.yaml [-profile ideal_match|high_risk|moderate_risk|profile.yaml] [-json] [-stats]
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/furfindr/internal/classifier"
	"github.com/furfindr/internal/config"
	"github.com/furfindr/internal/logger"
	"github.com/furfindr/internal/report"
	"github.com/furfindr/internal/rules"
	"github.com/furfindr/internal/service"
	"github.com/furfindr/internal/triggerlog"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	profileArg := flag.String("profile", "", "preset name or YAML profile file (default household when empty)")
	animalPath := flag.String("animal", "", "YAML file with one animal or a list of animals")
	asJSON := flag.Bool("json", false, "print assessments as JSON instead of text reports")
	showStats := flag.Bool("stats", false, "print rule trigger statistics after the reports")
	flag.Parse()

	if *animalPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	level := cfg.Observability.LogLevel
	if level == "" {
		level = "warn"
	}
	zapLogger, err := logger.New(cfg.Server.Development, level)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()

	if err := run(context.Background(), os.Stdout, cfg, *profileArg, *animalPath, *asJSON, *showStats, zapLogger); err != nil {
		zapLogger.Error("riskcheck failed", zap.Error(err))
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, w io.Writer, cfg *config.Config, profileArg, animalPath string, asJSON, showStats bool, zapLogger *zap.Logger) error {
	profile, err := loadProfile(profileArg)
	if err != nil {
		return err
	}

	animals, err := loadAnimals(animalPath)
	if err != nil {
		return err
	}

	engine := rules.NewEngine(rules.DefaultRules(), triggerlog.New(), zapLogger)
	assessor := service.NewAssessor(engine, service.AssessorConfig{
		MaxBatchSize:    cfg.Risk.MaxBatchSize,
		DisplayScoreCap: cfg.Risk.DisplayScoreCap,
	}, zapLogger)

	ranked, err := assessor.Rank(ctx, profile, animals)
	if err != nil {
		return err
	}

	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(ranked); err != nil {
			return err
		}
	} else {
		renderer, err := report.New(cfg.Risk.DisplayScoreCap)
		if err != nil {
			return err
		}
		for _, a := range ranked {
			if err := renderer.Write(w, a.Result); err != nil {
				return err
			}
			if a.DataQuality.Confidence != classifier.ConfidenceHigh {
				fmt.Fprintf(w, "Note: %s data confidence, missing %v\n", a.DataQuality.Confidence, a.DataQuality.MissingFields)
			}
			for _, warning := range a.Warnings {
				fmt.Fprintf(w, "Warning: %s\n", warning)
			}
			fmt.Fprintln(w)
		}
	}

	if showStats {
		stats, err := assessor.TriggerStats(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "Rule triggers: %d total, %d unique\n", stats.TotalTriggers, stats.UniqueRules)
		if stats.MostTriggered != nil {
			fmt.Fprintf(w, "Most triggered: %s (%d)\n", stats.MostTriggered.RuleID, stats.MostTriggered.Count)
		}
	}

	return nil
}
