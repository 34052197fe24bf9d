package classifier

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// DecisionTree is a pre-trained classification tree deserialized from a
// model artifact. Immutable once loaded.
type DecisionTree struct {
	featureNames []string
	classes      []string
	nodes        []treeNode
}

// treeNode is one entry of the flat node array. Children are indexes into
// the array; leaves carry the predicted class index.
type treeNode struct {
	Feature   int     `json:"feature"`
	Threshold float64 `json:"threshold"`
	Left      int     `json:"left"`
	Right     int     `json:"right"`
	Class     int     `json:"class"`
	Leaf      bool    `json:"leaf"`
}

type artifact struct {
	FeatureNames []string   `json:"feature_names"`
	Classes      []string   `json:"classes"`
	Nodes        []treeNode `json:"nodes"`
}

// Load reads and validates a serialized decision tree from path.
func Load(path string) (*DecisionTree, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model artifact: %w", err)
	}

	var a artifact
	if err := json.Unmarshal(payload, &a); err != nil {
		return nil, fmt.Errorf("decode model artifact: %w", err)
	}

	if len(a.Nodes) == 0 {
		return nil, errors.New("model artifact has no tree nodes")
	}
	if len(a.Classes) == 0 {
		return nil, errors.New("model artifact has no class labels")
	}
	if len(a.FeatureNames) == 0 {
		return nil, errors.New("model artifact has no feature names")
	}

	return &DecisionTree{
		featureNames: a.FeatureNames,
		classes:      a.Classes,
		nodes:        a.Nodes,
	}, nil
}

// Predict walks the tree for one feature vector and returns the predicted
// class label. The vector width must match the artifact's feature names.
func (t *DecisionTree) Predict(features []float64) (string, error) {
	if len(features) != len(t.featureNames) {
		return "", fmt.Errorf("expected %d features, got %d", len(t.featureNames), len(features))
	}

	idx := 0
	for steps := 0; steps <= len(t.nodes); steps++ {
		node := t.nodes[idx]
		if node.Leaf {
			if node.Class < 0 || node.Class >= len(t.classes) {
				return "", fmt.Errorf("leaf class index %d out of range", node.Class)
			}
			return t.classes[node.Class], nil
		}
		if node.Feature < 0 || node.Feature >= len(features) {
			return "", fmt.Errorf("node feature index %d out of range", node.Feature)
		}
		if features[node.Feature] <= node.Threshold {
			idx = node.Left
		} else {
			idx = node.Right
		}
		if idx < 0 || idx >= len(t.nodes) {
			return "", errors.New("invalid tree state: child index out of range")
		}
	}
	return "", errors.New("invalid tree state: walk did not reach a leaf")
}

// Classes returns the labels the tree can predict.
func (t *DecisionTree) Classes() []string {
	out := make([]string, len(t.classes))
	copy(out, t.classes)
	return out
}
