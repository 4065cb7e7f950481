package repository

import "github.com/diillson/aws-billing-report-go/internal/shared/types"

// ConfigRepository defines the interface for configuration loading.
type ConfigRepository interface {
	LoadConfigFile(filePath string) (*types.Config, error)
}
