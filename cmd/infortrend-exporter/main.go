package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/go-kit/log/level"
	"github.com/prometheus/client_golang/prometheus"
	collector_version "github.com/prometheus/client_golang/prometheus/collectors/version"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/prometheus/common/promlog"
	"github.com/prometheus/common/promlog/flag"
	"github.com/prometheus/common/version"
	"github.com/prometheus/exporter-toolkit/web"
	webflag "github.com/prometheus/exporter-toolkit/web/kingpinflag"

	"infortrend-exporter/internal/collector"
	"infortrend-exporter/internal/config"
	"infortrend-exporter/internal/health"
	"infortrend-exporter/internal/infortrend"
	"infortrend-exporter/internal/metrics"
	"infortrend-exporter/internal/snmp"
)

func main() {
	var (
		webConfig        = webflag.AddFlags(kingpin.CommandLine, ":9714")
		configFile       = kingpin.Flag("config.file", "Path to YAML configuration file.").Default("").String()
		metricsPath      = kingpin.Flag("web.telemetry-path", "Path under which to expose metrics.").Default("").String()
		target           = kingpin.Flag("snmp.target", "Address of the Infortrend array to poll.").Default("").String()
		port             = kingpin.Flag("snmp.port", "UDP port of the SNMP agent.").Default("0").Int()
		community        = kingpin.Flag("snmp.community", "SNMP community string.").Default("").String()
		snmpVersion      = kingpin.Flag("snmp.version", "SNMP protocol version (1, 2c or 3).").Default("").String()
		snmpTimeout      = kingpin.Flag("snmp.timeout", "Timeout for individual SNMP requests.").Default("0s").Duration()
		snmpRetries      = kingpin.Flag("snmp.retries", "Number of retries for failed SNMP requests.").Default("-1").Int()
		collectInterval  = kingpin.Flag("collect.interval", "Interval between collection cycles.").Default("0s").Duration()
		aggregateBits    = kingpin.Flag("compat.aggregate-chassis-bits", "Report every decoded chassis status bit instead of only the last one.").Default("false").Bool()
		skipInternalDisk = kingpin.Flag("compat.skip-internal-disk", "Skip the internal disk at index 0 of newer arrays.").Default("false").Bool()
	)

	logConfig := &promlog.Config{}
	flag.AddFlags(kingpin.CommandLine, logConfig)
	kingpin.Version(version.Print("infortrend_exporter"))
	kingpin.HelpFlag.Short('h')
	kingpin.Parse()
	logger := promlog.New(logConfig)

	level.Info(logger).Log(version.Info())
	level.Info(logger).Log(version.BuildContext())

	cfg, err := config.Load(*configFile)
	if err != nil {
		level.Error(logger).Log("msg", "Error loading configuration", "err", err)
		os.Exit(1)
	}

	// Flags override file and environment settings
	if *metricsPath != "" {
		cfg.MetricsPath = *metricsPath
	}
	if *target != "" {
		cfg.SNMP.Target = *target
	}
	if *port != 0 {
		cfg.SNMP.Port = *port
	}
	if *community != "" {
		cfg.SNMP.Community = *community
	}
	if *snmpVersion != "" {
		cfg.SNMP.Version = *snmpVersion
	}
	if *snmpTimeout != 0 {
		cfg.SNMP.Timeout = *snmpTimeout
	}
	if *snmpRetries >= 0 {
		cfg.SNMP.Retries = *snmpRetries
	}
	if *collectInterval != 0 {
		cfg.CollectInterval = *collectInterval
	}
	if *aggregateBits {
		cfg.Compat.AggregateChassisBits = true
	}
	if *skipInternalDisk {
		cfg.Compat.SkipInternalDisk = true
	}

	if err := cfg.Validate(); err != nil {
		level.Error(logger).Log("msg", "Invalid configuration", "err", err)
		os.Exit(1)
	}

	client, err := snmp.NewClient(snmp.Config{
		Target:         cfg.SNMP.Target,
		Port:           cfg.SNMP.Port,
		Community:      cfg.SNMP.Community,
		Version:        cfg.SNMP.Version,
		Timeout:        cfg.SNMP.Timeout,
		Retries:        cfg.SNMP.Retries,
		MaxOIDs:        cfg.SNMP.MaxOIDs,
		MaxRepetitions: cfg.SNMP.MaxRepetitions,
		User: snmp.UserConfig{
			Name:          cfg.SNMP.User.Name,
			SecurityLevel: cfg.SNMP.User.SecurityLevel,
			AuthProtocol:  cfg.SNMP.User.AuthProtocol,
			AuthPassword:  cfg.SNMP.User.AuthPassword,
			PrivProtocol:  cfg.SNMP.User.PrivProtocol,
			PrivPassword:  cfg.SNMP.User.PrivPassword,
		},
	})
	if err != nil {
		level.Error(logger).Log("msg", "Error connecting to SNMP target", "target", cfg.SNMP.Target, "err", err)
		os.Exit(1)
	}
	defer client.Close()

	m := metrics.New()
	prometheus.MustRegister(collector_version.NewCollector("infortrend_exporter"))

	c := collector.New(logger, m, client, collector.Config{
		Target:   cfg.SNMP.Target,
		Interval: cfg.CollectInterval,
		Decode: infortrend.Options{
			AggregateChassisBits: cfg.Compat.AggregateChassisBits,
			SkipInternalDisk:     cfg.Compat.SkipInternalDisk,
		},
	})
	healthService := health.New(c, version.Version)

	// Start metric collection in background
	go c.Start()

	level.Info(logger).Log("msg", "Starting collection", "target", cfg.SNMP.Target, "interval", cfg.CollectInterval)

	srv := &http.Server{Handler: setupHTTPHandlers(cfg, healthService)}
	if err := web.ListenAndServe(srv, webConfig, logger); err != nil {
		level.Error(logger).Log("msg", "Error starting HTTP server", "err", err)
		os.Exit(1)
	}
}

// setupHTTPHandlers configures HTTP routes
func setupHTTPHandlers(cfg *config.Config, healthService *health.Service) *http.ServeMux {
	mux := http.NewServeMux()

	// Metrics endpoint
	mux.Handle(cfg.MetricsPath, promhttp.Handler())

	// Root endpoint with basic info
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprintf(w, `
		<html>
		<head><title>Infortrend Exporter</title></head>
		<body>
		<h1>Infortrend Prometheus Exporter</h1>
		<p><a href="%s">Metrics</a></p>
		<p><a href="/health">Health Check</a></p>
		<p><a href="/health/json">Health JSON</a></p>
		<p>Version: %s</p>
		<p>Target: %s</p>
		<p>Collect Interval: %s</p>
		</body>
		</html>
		`, cfg.MetricsPath, version.Version, cfg.SNMP.Target, cfg.CollectInterval)
	})

	// Basic health check endpoint
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"status":"ok","service":"infortrend-exporter"}`)
	})

	// Detailed JSON health endpoint
	mux.HandleFunc("/health/json", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		healthData := healthService.GetHealthData()

		jsonData, err := json.MarshalIndent(healthData, "", "  ")
		if err != nil {
			http.Error(w, "Failed to generate JSON", http.StatusInternalServerError)
			return
		}

		w.Write(jsonData)
	})

	return mux
}
