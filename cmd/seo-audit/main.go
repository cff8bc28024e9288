package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/digitalnycagency/seo-audit-api/internal/adapter/httpclient"
	"github.com/digitalnycagency/seo-audit-api/internal/export"
	"github.com/digitalnycagency/seo-audit-api/internal/usecase"
	"github.com/digitalnycagency/seo-audit-api/pkg/logger"
	"github.com/digitalnycagency/seo-audit-api/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

func main() {
	url := flag.String("url", "", "URL of the page to audit")
	format := flag.String("format", "table", "output format: table, json or csv")
	userAgent := flag.String("user-agent", "Mozilla/5.0", "User-Agent sent when fetching the page")
	linkTimeout := flag.Duration("link-timeout", 5*time.Second, "timeout for each link check")
	logLevel := flag.String("log-level", "warn", "log level")
	flag.Parse()

	if *url == "" {
		flag.Usage()
		os.Exit(2)
	}

	exporter, err := export.New(*format)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	log, err := logger.New(*logLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Sync()

	auditor := usecase.NewAuditor(
		httpclient.NewPageFetcher(*userAgent, 0),
		httpclient.NewLinkChecker(*linkTimeout),
		metrics.New(prometheus.NewRegistry()),
		log,
	)

	report, err := auditor.Audit(context.Background(), *url)
	if err != nil {
		log.Error("audit failed", zap.String("url", *url), zap.Error(err))
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	if err := exporter.Export(os.Stdout, *url, report); err != nil {
		fmt.Fprintln(os.Stderr, "failed to write report:", err)
		os.Exit(1)
	}
}
