package collector

import (
	"fmt"
	"sync"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"infortrend-exporter/internal/infortrend"
	"infortrend-exporter/internal/metrics"
	"infortrend-exporter/internal/snmp"
	"infortrend-exporter/pkg/types"
)

// Fetcher is the device access the collector needs. *snmp.Client
// implements it.
type Fetcher interface {
	Detect() (snmp.DeviceInfo, error)
	FetchChassis(dialect types.Dialect) ([][]string, error)
	FetchDisks(dialect types.Dialect) ([][]string, error)
	FetchLogicalDrives(dialect types.Dialect) ([][]string, error)
}

// Item is one checked item of a collection cycle.
type Item struct {
	Name           string
	Service        string
	TypeLabel      string
	Severity       types.Severity
	Results        []types.Result
	Metric         *types.Metric
	Unit           string
	AdditionalInfo string
}

// Snapshot is the outcome of one collection cycle. The zero value means
// no cycle has completed yet.
type Snapshot struct {
	Taken         time.Time
	Target        string
	OK            bool
	Error         string
	Device        snmp.DeviceInfo
	Sensors       []Item
	Disks         []Item
	LogicalDrives []Item
}

// Config tunes one collector.
type Config struct {
	Target   string
	Interval time.Duration
	Decode   infortrend.Options
}

// Collector polls one array and republishes each cycle as Prometheus
// metrics and as a snapshot for the health endpoints.
type Collector struct {
	logger   log.Logger
	metrics  *metrics.Metrics
	fetcher  Fetcher
	target   string
	interval time.Duration
	opts     infortrend.Options
	done     chan struct{}

	mu       sync.RWMutex
	snapshot Snapshot
}

// New creates a new collector
func New(logger log.Logger, m *metrics.Metrics, fetcher Fetcher, cfg Config) *Collector {
	return &Collector{
		logger:   logger,
		metrics:  m,
		fetcher:  fetcher,
		target:   cfg.Target,
		interval: cfg.Interval,
		opts:     cfg.Decode,
		done:     make(chan struct{}),
	}
}

// Start begins the collection loop and blocks until Stop is called.
func (c *Collector) Start() {
	// Collect immediately on startup
	c.Collect()

	// Start periodic collection
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.Collect()
		case <-c.done:
			return
		}
	}
}

// Stop terminates the collection loop.
func (c *Collector) Stop() {
	close(c.done)
}

// Snapshot returns the most recent collection outcome.
func (c *Collector) Snapshot() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snapshot
}

// Collect runs one collection cycle and publishes its outcome.
func (c *Collector) Collect() {
	started := time.Now()
	snapshot := c.buildSnapshot()
	c.publish(snapshot)
	c.metrics.ScrapeDuration.Set(time.Since(started).Seconds())

	c.mu.Lock()
	c.snapshot = snapshot
	c.mu.Unlock()

	if !snapshot.OK {
		level.Error(c.logger).Log("msg", "collection cycle failed", "target", c.target, "err", snapshot.Error)
		return
	}
	level.Debug(c.logger).Log("msg", "collection cycle finished",
		"target", c.target,
		"dialect", snapshot.Device.Dialect,
		"sensors", len(snapshot.Sensors),
		"disks", len(snapshot.Disks),
		"logical_drives", len(snapshot.LogicalDrives),
		"duration", time.Since(started))
}

// buildSnapshot fetches and checks all three sections. Any SNMP failure
// aborts the cycle so a half-collected view is never published.
func (c *Collector) buildSnapshot() Snapshot {
	snapshot := Snapshot{Taken: time.Now(), Target: c.target}

	info, err := c.fetcher.Detect()
	snapshot.Device = info
	if err != nil {
		snapshot.Error = err.Error()
		return snapshot
	}

	chassisRows, err := c.fetcher.FetchChassis(info.Dialect)
	if err != nil {
		snapshot.Error = err.Error()
		return snapshot
	}
	diskRows, err := c.fetcher.FetchDisks(info.Dialect)
	if err != nil {
		snapshot.Error = err.Error()
		return snapshot
	}
	driveRows, err := c.fetcher.FetchLogicalDrives(info.Dialect)
	if err != nil {
		snapshot.Error = err.Error()
		return snapshot
	}

	snapshot.OK = true
	snapshot.Sensors = c.checkSensors(info.Dialect, chassisRows)
	snapshot.Disks = c.checkDisks(info.Dialect, diskRows)
	snapshot.LogicalDrives = c.checkLogicalDrives(info.Dialect, driveRows)
	return snapshot
}

// checkSensors parses the chassis table and checks every discovered sensor.
func (c *Collector) checkSensors(dialect types.Dialect, rows [][]string) []Item {
	section := infortrend.ParseChassisRows(dialect, rows)
	items := make([]Item, 0, len(section))
	for _, name := range infortrend.DiscoverItems(section) {
		rec := section[name]
		results, samples := infortrend.CheckChassis(dialect, name, section, c.opts)
		item := Item{
			Name:      name,
			Service:   fmt.Sprintf("IFT %s", name),
			TypeLabel: sensorTypeLabel(rec.Type),
			Severity:  worstOf(results),
			Results:   results,
			Unit:      rec.RawUnit,
		}
		if len(samples) > 0 {
			item.Metric = &samples[0]
		}
		if extra, ok := infortrend.AdditionalInfo(dialect, rec.Type, rec.Status); ok {
			item.AdditionalInfo = extra.Message
		}
		items = append(items, item)
	}
	return items
}

// checkDisks parses the disk table and checks every discovered slot.
func (c *Collector) checkDisks(dialect types.Dialect, rows [][]string) []Item {
	section := infortrend.ParseDiskRows(dialect, rows, c.opts)
	items := make([]Item, 0, len(section))
	for _, slot := range infortrend.DiscoverItems(section) {
		results := infortrend.CheckDisk(dialect, slot, section)
		items = append(items, Item{
			Name:      slot,
			Service:   fmt.Sprintf("IFT Disk Slot %s", slot),
			TypeLabel: infortrend.DiskStateText(section[slot].State),
			Severity:  worstOf(results),
			Results:   results,
		})
	}
	return items
}

// checkLogicalDrives parses the logical drive table and checks every
// discovered drive.
func (c *Collector) checkLogicalDrives(dialect types.Dialect, rows [][]string) []Item {
	section := infortrend.ParseLogicalDriveRows(rows)
	items := make([]Item, 0, len(section))
	for _, id := range infortrend.DiscoverItems(section) {
		results := infortrend.CheckLogicalDrive(dialect, id, section)
		items = append(items, Item{
			Name:      id,
			Service:   fmt.Sprintf("IFT Logical Drive %s", id),
			TypeLabel: infortrend.LogicalDriveStateText(dialect, section[id].State),
			Severity:  worstOf(results),
			Results:   results,
		})
	}
	return items
}

// publish replaces the previous cycle's metrics with the snapshot's.
func (c *Collector) publish(snapshot Snapshot) {
	// Clear previous metrics so items that disappeared stop being exported
	c.metrics.Reset()

	if !snapshot.OK {
		c.metrics.DeviceUp.Set(0)
		c.metrics.ScrapeErrorsTotal.Inc()
		return
	}

	c.metrics.DeviceUp.Set(1)
	c.metrics.DeviceInfo.WithLabelValues(c.target, snapshot.Device.Dialect.String()).Set(1)

	for _, item := range snapshot.Sensors {
		c.metrics.SensorStatus.WithLabelValues(item.Name, item.TypeLabel).Set(float64(item.Severity))
		if item.Metric == nil {
			continue
		}
		switch item.Metric.Name {
		case infortrend.MetricTemperature:
			c.metrics.SensorTemperature.WithLabelValues(item.Name).Set(item.Metric.Value)
		case infortrend.MetricVoltage:
			c.metrics.SensorVoltage.WithLabelValues(item.Name).Set(item.Metric.Value)
		}
	}
	for _, item := range snapshot.Disks {
		c.metrics.DiskStatus.WithLabelValues(item.Name, item.TypeLabel).Set(float64(item.Severity))
	}
	for _, item := range snapshot.LogicalDrives {
		c.metrics.LogicalDriveStatus.WithLabelValues(item.Name, item.TypeLabel).Set(float64(item.Severity))
	}
}

// sensorTypeLabel renders the sensor type column as a metric label.
func sensorTypeLabel(sensorType types.OptionalInt) string {
	if !sensorType.Valid {
		return "unknown"
	}
	return infortrend.SensorType(sensorType.Value).String()
}

// worstOf aggregates the verdicts of one item into its overall severity.
func worstOf(results []types.Result) types.Severity {
	severities := make([]types.Severity, len(results))
	for i, result := range results {
		severities[i] = result.Severity
	}
	return types.WorstSeverity(severities...)
}
