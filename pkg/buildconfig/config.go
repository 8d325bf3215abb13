// Copyright (c) 2019-2026 JetKit Contributors. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package buildconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/goccy/go-yaml"
	"github.com/jetkit/jetkit/pkg/utils"
)

type Config struct {
	JetkitHomePath string `yaml:"-"`

	CachePath string `yaml:"-"`
	// dir containing raw downloaded archives, laid out by coordinate
	DownloadsPath string `yaml:"-"`
	// dir containing extracted IDE distributions
	IdesPath string `yaml:"-"`
	// dir containing extracted runtime (JBR) archives
	RuntimesPath string `yaml:"-"`
	// dir containing downloaded+extracted marketplace plugins
	PluginsPath string `yaml:"-"`

	Offline bool `yaml:"offline,omitempty"`

	ReleasesRepository    string `yaml:"releases-repository,omitempty"`
	SnapshotsRepository   string `yaml:"snapshots-repository,omitempty"`
	RuntimeRepository     string `yaml:"runtime-repository,omitempty"`
	MarketplaceRepository string `yaml:"marketplace-repository,omitempty"`

	NetrcPath string `yaml:"netrc-path,omitempty"`
}

func (c *Config) EnsureDirs() error {
	return utils.EnsureDirs(c.JetkitHomePath, c.DownloadsPath, c.IdesPath, c.RuntimesPath, c.PluginsPath)
}

func Get() (*Config, error) {
	homePath, err := getJetkitHomePath()
	if err != nil {
		return nil, err
	}
	return GetWithCustomHome(homePath)
}

func GetWithCustomHome(homePath string) (*Config, error) {
	config := Config{}

	// jetkit-config.yaml is optional
	configFilePath := filepath.Join(homePath, ConfigFileName)
	fileInfo, err := os.Stat(configFilePath)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
	} else {
		if fileInfo.IsDir() {
			return nil, fmt.Errorf("%q is directory and not a file", configFilePath)
		}

		bytes, err := os.ReadFile(configFilePath)
		if err != nil {
			return nil, err
		}

		if err := yaml.Unmarshal(bytes, &config); err != nil {
			return nil, err
		}
	}

	offline, ok, err := utils.BoolEnvVar(OfflineEnvVar)
	if err != nil {
		return nil, err
	}
	if ok {
		config.Offline = offline
	}

	for envVar, target := range map[string]*string{
		ReleasesRepositoryEnvVar:    &config.ReleasesRepository,
		SnapshotsRepositoryEnvVar:   &config.SnapshotsRepository,
		RuntimeRepositoryEnvVar:     &config.RuntimeRepository,
		MarketplaceRepositoryEnvVar: &config.MarketplaceRepository,
		NetrcPathEnvVar:             &config.NetrcPath,
	} {
		if v, ok := os.LookupEnv(envVar); ok {
			*target = v
		}
	}

	if config.ReleasesRepository == "" {
		config.ReleasesRepository = DefaultReleasesRepository
	}
	if config.SnapshotsRepository == "" {
		config.SnapshotsRepository = DefaultSnapshotsRepository
	}
	if config.RuntimeRepository == "" {
		config.RuntimeRepository = DefaultRuntimeRepository
	}
	if config.MarketplaceRepository == "" {
		config.MarketplaceRepository = DefaultMarketplaceRepository
	}

	cacheDir := filepath.Join(homePath, "cache")
	config.JetkitHomePath = homePath
	config.CachePath = cacheDir
	config.DownloadsPath = filepath.Join(cacheDir, "downloads")
	config.IdesPath = filepath.Join(cacheDir, "ides")
	config.RuntimesPath = filepath.Join(cacheDir, "jbr")
	config.PluginsPath = filepath.Join(cacheDir, "plugins")
	return &config, nil
}

// GetProjectDir returns the plugin project directory in scope, either from
// JETKIT_PROJECT or the working directory.
func GetProjectDir() (string, error) {
	if v, ok := os.LookupEnv(ProjectEnvVar); ok {
		return v, nil
	}
	return os.Getwd()
}

// GetIdeVersionOverrideWithFallback returns the JETKIT_IDE_VERSION if set
func GetIdeVersionOverrideWithFallback(fallback string) string {
	if v, ok := os.LookupEnv(IdeVersionEnvVar); ok {
		return v
	}
	return fallback
}

func getJetkitHomePath() (string, error) {
	if v, ok := os.LookupEnv(JetkitHomeEnvVar); ok {
		return v, nil
	}

	return getAppUserDataDirectory("jetkit")
}

func getAppUserDataDirectory(appName string) (string, error) {
	switch runtime.GOOS {
	case "windows":
		dir, ok := os.LookupEnv("APPDATA")
		if !ok {
			return "", fmt.Errorf("APPDATA environment variable is not set")
		}
		return filepath.Join(dir, appName), nil
	default:
		dir, ok := os.LookupEnv("HOME")
		if !ok {
			return "", fmt.Errorf("HOME environment variable is not set")
		}
		return filepath.Join(dir, "."+appName), nil
	}
}
