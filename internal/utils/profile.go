package utils

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/misterclayt0n/fuel/internal/config"
	"github.com/misterclayt0n/fuel/internal/energy"
)

func getProfilePath() (string, error) {
	dir, err := config.GetConfigDir()
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return filepath.Join(dir, "profile.toml"), nil
}

func SaveProfile(p *energy.Profile) error {
	path, err := getProfilePath()
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(p.Snapshot())
}

// LoadProfile reads the saved profile and derives its energy values again.
func LoadProfile() (*energy.Profile, error) {
	path, err := getProfilePath()
	if err != nil {
		return nil, err
	}

	var snap energy.Snapshot
	if _, err := toml.DecodeFile(path, &snap); err != nil {
		return nil, err
	}

	return energy.FromSnapshot(snap)
}

func ProfileExists() bool {
	path, err := getProfilePath()
	if err != nil {
		return false
	}
	_, err = os.Stat(path)
	return !os.IsNotExist(err)
}
