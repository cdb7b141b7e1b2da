package health

import (
	"time"

	"infortrend-exporter/internal/collector"
	"infortrend-exporter/pkg/types"
)

const serviceName = "infortrend-exporter"

// Service provides health data for the JSON endpoint
type Service struct {
	collector *collector.Collector
	version   string
}

// New creates a new health service
func New(c *collector.Collector, version string) *Service {
	return &Service{
		collector: c,
		version:   version,
	}
}

// GetHealthData assembles the current health information for JSON response
func (s *Service) GetHealthData() *types.HealthResponse {
	snapshot := s.collector.Snapshot()

	sensors := itemHealthList(snapshot.Sensors)
	disks := itemHealthList(snapshot.Disks)
	drives := itemHealthList(snapshot.LogicalDrives)

	// Count health statuses across all sections
	summary := types.HealthSummary{}
	worst := types.SeverityOK
	for _, group := range [][]types.ItemHealth{sensors, disks, drives} {
		for _, item := range group {
			summary.TotalItems++
			switch types.Severity(item.HealthCode) {
			case types.SeverityOK:
				summary.HealthyItems++
			case types.SeverityWarning:
				summary.WarningItems++
			case types.SeverityCritical:
				summary.CriticalItems++
			default:
				summary.UnknownItems++
			}
			worst = worst.Worse(types.Severity(item.HealthCode))
		}
	}

	dialect := ""
	if snapshot.OK {
		dialect = snapshot.Device.Dialect.String()
	}

	return &types.HealthResponse{
		Status:    overallStatus(snapshot.OK, worst),
		Service:   serviceName,
		Version:   s.version,
		Timestamp: time.Now().Format(time.RFC3339),
		Device: types.DeviceHealth{
			Target:      snapshot.Target,
			Dialect:     dialect,
			SysDescr:    snapshot.Device.SysDescr,
			SysObjectID: snapshot.Device.SysObjectID,
			Reachable:   snapshot.OK,
		},
		Summary:       summary,
		Sensors:       sensors,
		Disks:         disks,
		LogicalDrives: drives,
	}
}

// overallStatus folds the cycle outcome and the worst item severity into
// the response status string.
func overallStatus(reachable bool, worst types.Severity) string {
	switch {
	case !reachable:
		return "unreachable"
	case worst == types.SeverityCritical:
		return "critical"
	case worst == types.SeverityWarning:
		return "warning"
	case worst == types.SeverityUnknown:
		return "unknown"
	default:
		return "ok"
	}
}

// itemHealthList converts checked items into their JSON form.
func itemHealthList(items []collector.Item) []types.ItemHealth {
	list := make([]types.ItemHealth, len(items))
	for i, item := range items {
		results := make([]types.ResultHealth, len(item.Results))
		for j, result := range item.Results {
			results[j] = types.ResultHealth{
				Severity: result.Severity.String(),
				Summary:  result.Summary,
			}
		}

		health := types.ItemHealth{
			Item:           item.Name,
			Service:        item.Service,
			Health:         item.Severity.String(),
			HealthCode:     int(item.Severity),
			Results:        results,
			Unit:           item.Unit,
			AdditionalInfo: item.AdditionalInfo,
		}
		if item.Metric != nil {
			health.Metric = &types.MetricSample{
				Name:  item.Metric.Name,
				Value: item.Metric.Value,
			}
		}
		list[i] = health
	}
	return list
}
