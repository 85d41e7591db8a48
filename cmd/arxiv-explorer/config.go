package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"

	"github.com/ashutosh-ps/arxiv-explorer/internal/library"
	"github.com/ashutosh-ps/arxiv-explorer/internal/secrets"
	"github.com/ashutosh-ps/arxiv-explorer/pkg/types"
)

func setConfigDefaults() {
	viper.SetDefault("search.timeout", 30*time.Second)
	viper.SetDefault("search.max_results", 10)
	viper.SetDefault("search.proxy_url", "")
	viper.SetDefault("search.request_interval", 3*time.Second)
	viper.SetDefault("codelinks.timeout", 30*time.Second)
	viper.SetDefault("codelinks.token", "")
	viper.SetDefault("library.path", defaultLibraryPath())
}

// defaultLibraryPath places the database under the XDG data directory.
func defaultLibraryPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "library.db"
	}
	return filepath.Join(home, ".local", "share", "arxiv-explorer", "library.db")
}

// userAgent identifies this client to remote APIs. arXiv asks automated
// clients to include contact information, so the contact-email secret
// is appended when present.
func userAgent() string {
	ua := "arxiv-explorer/" + version
	if email := secretDefault(secrets.KeyContactEmail, ""); email != "" {
		ua += " (mailto:" + email + ")"
	}
	return ua
}

func searchConfig() types.SearchConfig {
	return types.SearchConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   viper.GetDuration("search.timeout"),
			UserAgent: userAgent(),
		},
		MaxResults:      viper.GetInt("search.max_results"),
		ProxyURL:        viper.GetString("search.proxy_url"),
		RequestInterval: viper.GetDuration("search.request_interval"),
	}
}

func codeLinksConfig() types.CodeLinksConfig {
	return types.CodeLinksConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   viper.GetDuration("codelinks.timeout"),
			UserAgent: userAgent(),
		},
		APIToken: secretDefault(secrets.KeyHuggingFaceToken, viper.GetString("codelinks.token")),
	}
}

// openLibrary opens the local library database. Callers must Close it.
func openLibrary() (*library.Library, error) {
	cfg := types.LibraryConfig{Path: viper.GetString("library.path")}
	lib, err := library.New(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("opening library: %w", err)
	}
	return lib, nil
}
