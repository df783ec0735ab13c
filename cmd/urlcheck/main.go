package main

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"urlcheck/internal/checker"
	"urlcheck/internal/config"
	"urlcheck/internal/subscription"
)

func main() {
	// 1. Settings from env (.env supported)
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("loading settings: %v", err)
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logrus.Fatalf("invalid LOG_LEVEL %q: %v", cfg.LogLevel, err)
	}
	logrus.SetLevel(level)

	// 2. Load config.ini and keep the subscribed URLs
	sections, err := subscription.LoadConfig(cfg.ConfigPath)
	if err != nil {
		logrus.Fatalf("loading subscriptions: %v", err)
	}
	entries := subscription.ExtractURLs(sections)
	logrus.Infof("checking %d subscribed URLs", len(entries))

	// 3. Fan out the checks and collect the non-normal rows
	c := checker.NewChecker(cfg.UserAgent, cfg.CheckTimeout)
	rows, err := checker.CheckAll(context.Background(), c, entries)
	if err != nil {
		logrus.Fatalf("check aborted: %v", err)
	}

	// 4. The report goes to stdout; logs stay on stderr
	fmt.Println(checker.BuildReport(rows))
}
