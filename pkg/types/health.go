package types

// HealthResponse represents the JSON health response
type HealthResponse struct {
	Status        string        `json:"status"`
	Service       string        `json:"service"`
	Version       string        `json:"version"`
	Timestamp     string        `json:"timestamp"`
	Device        DeviceHealth  `json:"device"`
	Summary       HealthSummary `json:"summary"`
	Sensors       []ItemHealth  `json:"sensors"`
	Disks         []ItemHealth  `json:"disks"`
	LogicalDrives []ItemHealth  `json:"logical_drives"`
}

// DeviceHealth describes the polled array in JSON
type DeviceHealth struct {
	Target      string `json:"target"`
	Dialect     string `json:"dialect"`
	SysDescr    string `json:"sys_descr,omitempty"`
	SysObjectID string `json:"sys_object_id,omitempty"`
	Reachable   bool   `json:"reachable"`
}

// HealthSummary provides per-severity counts across all checked items
type HealthSummary struct {
	TotalItems    int `json:"total_items"`
	HealthyItems  int `json:"healthy_items"`
	WarningItems  int `json:"warning_items"`
	CriticalItems int `json:"critical_items"`
	UnknownItems  int `json:"unknown_items"`
}

// ItemHealth represents one checked item in JSON
type ItemHealth struct {
	Item           string         `json:"item"`
	Service        string         `json:"service"`
	Health         string         `json:"health"`
	HealthCode     int            `json:"health_code"`
	Results        []ResultHealth `json:"results"`
	Metric         *MetricSample  `json:"metric,omitempty"`
	Unit           string         `json:"unit,omitempty"`
	AdditionalInfo string         `json:"additional_info,omitempty"`
}

// ResultHealth is one decoded (severity, message) pair in JSON
type ResultHealth struct {
	Severity string `json:"severity"`
	Summary  string `json:"summary"`
}

// MetricSample is a named numeric sample in JSON
type MetricSample struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}
