package domain

// ConnectionStatus is the state of one transport.
type ConnectionStatus string

const (
	StatusConnected    ConnectionStatus = "connected"
	StatusConnecting   ConnectionStatus = "connecting"
	StatusDisconnected ConnectionStatus = "disconnected"
	StatusClosed       ConnectionStatus = "closed"
)

// ConnectionStatusChange reports a transport going up or down.
// Name identifies the transport, e.g. "websocket" or "long-poll".
type ConnectionStatusChange struct {
	Name            string           `yaml:"name"`
	Connected       bool             `yaml:"connected"`
	Status          ConnectionStatus `yaml:"status"`
	DCID            int              `yaml:"dc_id"`
	IsFileNetworker bool             `yaml:"is_file_networker"`
	IsFileDownload  bool             `yaml:"is_file_download"`
	IsFileUpload    bool             `yaml:"is_file_upload"`
	RetryAt         int64            `yaml:"retry_at"` // unix ms, 0 if no retry is scheduled
}

// Update is a raw server update that no manager consumed.
type Update struct {
	Type   string         `yaml:"_"`
	Fields map[string]any `yaml:"fields"`
}

// SettingsUpdated is sent when one application setting changes.
type SettingsUpdated struct {
	Key   string `yaml:"key"`
	Value any    `yaml:"value"`
}
