package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	SensorStatus       *prometheus.GaugeVec
	SensorTemperature  *prometheus.GaugeVec
	SensorVoltage      *prometheus.GaugeVec
	DiskStatus         *prometheus.GaugeVec
	LogicalDriveStatus *prometheus.GaugeVec
	DeviceInfo         *prometheus.GaugeVec
	DeviceUp           prometheus.Gauge
	ScrapeDuration     prometheus.Gauge
	ScrapeErrorsTotal  prometheus.Counter
}

// New creates all metrics and registers them with the default registry
func New() *Metrics {
	return NewWith(prometheus.DefaultRegisterer)
}

// NewWith creates all metrics and registers them with reg
func NewWith(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		SensorStatus: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "infortrend_sensor_status",
				Help: "Chassis sensor status (0=unknown, 1=ok, 2=warning, 3=critical)",
			},
			[]string{"sensor", "sensor_type"},
		),
		SensorTemperature: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "infortrend_sensor_temperature_celsius",
				Help: "Chassis temperature sensor reading in Celsius",
			},
			[]string{"sensor"},
		),
		SensorVoltage: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "infortrend_sensor_voltage_volts",
				Help: "Chassis voltage sensor reading in Volts",
			},
			[]string{"sensor"},
		),
		DiskStatus: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "infortrend_disk_status",
				Help: "Physical disk slot status (0=unknown, 1=ok, 2=warning, 3=critical)",
			},
			[]string{"slot", "state"},
		),
		LogicalDriveStatus: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "infortrend_logical_drive_status",
				Help: "Logical drive status (0=unknown, 1=ok, 2=warning, 3=critical)",
			},
			[]string{"drive", "state"},
		),
		DeviceInfo: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "infortrend_device_info",
				Help: "Identity of the monitored array, always 1",
			},
			[]string{"target", "dialect"},
		),
		DeviceUp: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "infortrend_up",
				Help: "Whether the last collection cycle reached an Infortrend array",
			},
		),
		ScrapeDuration: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "infortrend_scrape_duration_seconds",
				Help: "Duration of the last collection cycle",
			},
		),
		ScrapeErrorsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "infortrend_scrape_errors_total",
				Help: "Total collection cycles that ended in error",
			},
		),
	}

	reg.MustRegister(
		m.SensorStatus,
		m.SensorTemperature,
		m.SensorVoltage,
		m.DiskStatus,
		m.LogicalDriveStatus,
		m.DeviceInfo,
		m.DeviceUp,
		m.ScrapeDuration,
		m.ScrapeErrorsTotal,
	)

	return m
}

// Reset clears all per-item metrics before a new collection cycle
func (m *Metrics) Reset() {
	m.SensorStatus.Reset()
	m.SensorTemperature.Reset()
	m.SensorVoltage.Reset()
	m.DiskStatus.Reset()
	m.LogicalDriveStatus.Reset()
	m.DeviceInfo.Reset()
}
