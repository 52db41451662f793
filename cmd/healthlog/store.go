package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/julianstephens/healthlog/internal/constants"
	"github.com/julianstephens/healthlog/internal/keyring"
	"github.com/julianstephens/healthlog/internal/storage"
	"github.com/julianstephens/healthlog/internal/storage/postgres"
	"github.com/julianstephens/healthlog/internal/storage/sqlite"
	"github.com/julianstephens/healthlog/internal/utils"
)

// keyringConfig selects the connection string stored with 'healthlog keyring set'.
const keyringConfig = "keyring"

// getenvFunc and userConfigDirFunc are replaced in tests.
var (
	getenvFunc        = os.Getenv
	userConfigDirFunc = os.UserConfigDir
	resolveConnFunc   = keyring.ResolveConnectionString
)

// openStore picks the storage engine named by config and the directory that
// holds its lockfile and logs.
func openStore(config string) (storage.Provider, string, error) {
	switch {
	case config == keyringConfig:
		connStr, err := resolveConnFunc()
		if err != nil {
			if errors.Is(err, keyring.ErrNotFound) {
				return nil, "", errors.New("no connection string found in keyring. Use 'healthlog keyring set' to store one")
			}
			return nil, "", err
		}
		return postgresStore(connStr)

	case config == constants.DefaultConfigPath && strings.TrimSpace(getenvFunc(constants.EnvConnectionString)) != "":
		// The environment may carry a full connection string with a password
		return postgresStore(strings.TrimSpace(getenvFunc(constants.EnvConnectionString)))

	case postgres.IsConnString(config):
		if _, err := postgres.ValidateConnString(config); err != nil {
			if errors.Is(err, postgres.ErrEmbeddedCredentials) {
				return nil, "", errors.New("PostgreSQL connection strings with embedded credentials are not allowed in --config. " +
					"Use 'healthlog keyring set' with --config keyring, the " + constants.EnvConnectionString + " environment variable, or a .pgpass file")
			}
			return nil, "", err
		}
		return postgresStore(config)
	}

	path, err := utils.ExpandPath(config)
	if err != nil {
		return nil, "", err
	}
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return storage.NewJSONStore(path), filepath.Dir(path), nil
	}
	return sqlite.NewStore(path), filepath.Dir(path), nil
}

func postgresStore(connStr string) (storage.Provider, string, error) {
	dir, err := userConfigDirFunc()
	if err != nil {
		return nil, "", fmt.Errorf("failed to locate config directory: %w", err)
	}
	return postgres.New(connStr), filepath.Join(dir, constants.AppName), nil
}
