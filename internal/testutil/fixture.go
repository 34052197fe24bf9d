package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// IrisTreeArtifact is a small but real iris decision tree in the on-disk
// artifact format: petal_length <= 2.45 -> setosa, otherwise petal_width
// <= 1.75 -> versicolor, else virginica.
const IrisTreeArtifact = `{
  "feature_names": ["sepal_length", "sepal_width", "petal_length", "petal_width"],
  "classes": ["setosa", "versicolor", "virginica"],
  "nodes": [
    {"feature": 2, "threshold": 2.45, "left": 1, "right": 2, "class": -1, "leaf": false},
    {"feature": -1, "threshold": 0, "left": -1, "right": -1, "class": 0, "leaf": true},
    {"feature": 3, "threshold": 1.75, "left": 3, "right": 4, "class": -1, "leaf": false},
    {"feature": -1, "threshold": 0, "left": -1, "right": -1, "class": 1, "leaf": true},
    {"feature": -1, "threshold": 0, "left": -1, "right": -1, "class": 2, "leaf": true}
  ]
}`

// WriteIrisTreeArtifact writes the fixture artifact into a temp dir and
// returns its path.
func WriteIrisTreeArtifact(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "iris_tree.json")
	if err := os.WriteFile(path, []byte(IrisTreeArtifact), 0o600); err != nil {
		t.Fatalf("write artifact fixture: %v", err)
	}
	return path
}
