package classifier

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const irisArtifact = `{
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

func writeArtifact(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "model.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	tree, err := Load(writeArtifact(t, irisArtifact))
	require.NoError(t, err)
	assert.Equal(t, []string{"setosa", "versicolor", "virginica"}, tree.Classes())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoad_MalformedJSON(t *testing.T) {
	_, err := Load(writeArtifact(t, `{"nodes": [`))
	assert.Error(t, err)
}

func TestLoad_EmptyTree(t *testing.T) {
	_, err := Load(writeArtifact(t, `{"feature_names": ["a"], "classes": ["x"], "nodes": []}`))
	assert.Error(t, err)
}

func TestLoad_NoClasses(t *testing.T) {
	_, err := Load(writeArtifact(t, `{"feature_names": ["a"], "classes": [], "nodes": [{"leaf": true, "class": 0}]}`))
	assert.Error(t, err)
}

func TestPredict(t *testing.T) {
	tree, err := Load(writeArtifact(t, irisArtifact))
	require.NoError(t, err)

	cases := []struct {
		name     string
		features []float64
		want     string
	}{
		{"setosa", []float64{5.1, 3.5, 1.4, 0.2}, "setosa"},
		{"versicolor", []float64{6.0, 2.9, 4.5, 1.5}, "versicolor"},
		{"virginica", []float64{6.3, 3.3, 6.0, 2.5}, "virginica"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tree.Predict(tc.features)
			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestPredict_Deterministic(t *testing.T) {
	tree, err := Load(writeArtifact(t, irisArtifact))
	require.NoError(t, err)

	features := []float64{5.1, 3.5, 1.4, 0.2}
	first, err := tree.Predict(features)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		got, err := tree.Predict(features)
		require.NoError(t, err)
		assert.Equal(t, first, got)
	}
}

func TestPredict_WrongVectorWidth(t *testing.T) {
	tree, err := Load(writeArtifact(t, irisArtifact))
	require.NoError(t, err)

	_, err = tree.Predict([]float64{1.0, 2.0})
	assert.Error(t, err)
}

func TestPredict_CorruptChildIndex(t *testing.T) {
	corrupt := `{
	  "feature_names": ["sepal_length", "sepal_width", "petal_length", "petal_width"],
	  "classes": ["setosa"],
	  "nodes": [
	    {"feature": 0, "threshold": 1.0, "left": 99, "right": 99, "class": -1, "leaf": false}
	  ]
	}`
	tree, err := Load(writeArtifact(t, corrupt))
	require.NoError(t, err)

	_, err = tree.Predict([]float64{0.5, 0, 0, 0})
	assert.Error(t, err)
}

func TestPredict_LeafClassOutOfRange(t *testing.T) {
	corrupt := `{
	  "feature_names": ["sepal_length", "sepal_width", "petal_length", "petal_width"],
	  "classes": ["setosa"],
	  "nodes": [
	    {"feature": -1, "threshold": 0, "left": -1, "right": -1, "class": 7, "leaf": true}
	  ]
	}`
	tree, err := Load(writeArtifact(t, corrupt))
	require.NoError(t, err)

	_, err = tree.Predict([]float64{1, 1, 1, 1})
	assert.Error(t, err)
}
