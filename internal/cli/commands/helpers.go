package commands

import (
	"fmt"

	"github.com/gaurav-code098/Neo-Translate/internal/cli/client"
	"github.com/gaurav-code098/Neo-Translate/internal/cli/config"
	"github.com/gaurav-code098/Neo-Translate/internal/cli/ui"
)

// newClient loads the CLI config and creates an API client. The --server
// flag takes precedence over the config file.
func newClient() (*client.APIClient, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		ui.PrintError("failed to load config: %v", err)
		return nil, nil, fmt.Errorf("config load failed")
	}

	server := cfg.Server
	if serverFlag != "" {
		server = serverFlag
	}

	apiClient, err := client.NewAPIClient(server)
	if err != nil {
		ui.PrintError("failed to create client: %v", err)
		return nil, nil, fmt.Errorf("client creation failed")
	}

	return apiClient, cfg, nil
}
