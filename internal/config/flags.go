package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-vault vault root directory
//	-n/-note active note path (relative to the vault or absolute)
//	-attachments attachments directory inside the vault
//	-d database DSN (SQLite file path)
//	-gateway storage network gateway base URL
//	-price-feed fiat price feed URL
//	-request-timeout outbound request timeout (e.g., "15s", "1m")
//	-preview-address preview server address in format [host]:[port]
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var vaultDir string
	var notePath string
	var attachmentsDir string
	var databaseDSN string
	var gatewayURL string
	var priceFeedURL string
	var requestTimeout time.Duration
	var previewAddress string
	var jsonConfigPath string

	flag.StringVar(&vaultDir, "vault", "", "Vault root directory")
	flag.StringVar(&notePath, "n", "", "Active note path")
	flag.StringVar(&notePath, "note", "", "Active note path (alias)")
	flag.StringVar(&attachmentsDir, "attachments", "", "Attachments directory inside the vault")
	flag.StringVar(&databaseDSN, "d", "", "Settings database DSN")
	flag.StringVar(&gatewayURL, "gateway", "", "Storage network gateway base URL")
	flag.StringVar(&priceFeedURL, "price-feed", "", "Fiat price feed URL")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s, 1m)")
	flag.StringVar(&previewAddress, "preview-address", "", "Preview server address host:port")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		Vault: Vault{
			Dir:            vaultDir,
			Note:           notePath,
			AttachmentsDir: attachmentsDir,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Adapter: Adapter{
			GatewayURL:     gatewayURL,
			PriceFeedURL:   priceFeedURL,
			RequestTimeout: requestTimeout,
		},
		Preview: Preview{
			Address: previewAddress,
		},
		JSONFilePath: jsonConfigPath,
	}
}
