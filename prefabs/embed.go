package prefabs

import (
	"embed"
	"os"
	"path/filepath"
	"strings"
)

//go:embed *.yaml
var PrefabsFS embed.FS

// Dir is where on-disk overrides of the embedded prefabs are looked up.
const Dir = "prefabs"

// Load returns the named prefab, preferring a copy under Dir on disk so it
// can be edited while the game runs.
func Load(name string) ([]byte, error) {
	clean := cleanPrefabPath(name)
	if data, err := os.ReadFile(diskPrefabPath(clean)); err == nil {
		return data, nil
	}
	return PrefabsFS.ReadFile(clean)
}

// HasDiskDir reports whether Dir exists in the working directory.
func HasDiskDir() bool {
	info, err := os.Stat(Dir)
	return err == nil && info.IsDir()
}

// IsPrefab reports whether path names the given prefab, ignoring directories.
func IsPrefab(path, name string) bool {
	return filepath.Base(filepath.FromSlash(path)) == cleanPrefabPath(name)
}

func cleanPrefabPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, Dir+"/"); ok {
		return after
	}
	return s
}

func diskPrefabPath(clean string) string {
	return filepath.Join(Dir, filepath.FromSlash(clean))
}
