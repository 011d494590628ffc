package prefabs

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const prefsDir = "starmaze"

// Prefs holds UI preferences that outlive a session. Game progress is never
// stored here.
type Prefs struct {
	Joystick *PointSpec `yaml:"joystick,omitempty"`
}

// PrefsPath returns the per-user preferences file location.
func PrefsPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", errors.Wrap(err, "prefs: config dir")
	}
	return filepath.Join(dir, prefsDir, "prefs.yaml"), nil
}

// LoadPrefs reads prefs from path. A missing file yields empty prefs.
func LoadPrefs(path string) (Prefs, error) {
	var p Prefs
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return p, nil
	}
	if err != nil {
		return p, errors.Wrapf(err, "prefs: read %s", path)
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Prefs{}, errors.Wrapf(err, "prefs: unmarshal %s", path)
	}
	return p, nil
}

func SavePrefs(path string, p Prefs) error {
	data, err := yaml.Marshal(p)
	if err != nil {
		return errors.Wrap(err, "prefs: marshal")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrapf(err, "prefs: mkdir %s", filepath.Dir(path))
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return errors.Wrapf(err, "prefs: write %s", tmp)
	}
	return errors.Wrap(os.Rename(tmp, path), "prefs: replace")
}
