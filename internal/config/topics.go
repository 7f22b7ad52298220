package config

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed data/topics.yml
var defaultTopicsYAML []byte

// TopicChild is a single shortcut: a button label and the canned query it
// submits on the user's behalf.
type TopicChild struct {
	Label string `yaml:"label"`
	Query string `yaml:"query"`
}

// TopicGroup is a top-level topic with its ordered shortcuts.
type TopicGroup struct {
	// Key is the stable group identifier (e.g. "guide", "exhibition").
	Key string `yaml:"key"`

	// Label is the group heading shown to the user.
	Label string `yaml:"label"`

	// Children are the shortcuts in presentation order.
	Children []TopicChild `yaml:"children"`
}

// TopicTree drives the chat UI's topic shortcuts. It is static data: loaded
// once, never mutated. Navigation state (which group is open) belongs to the
// UI layer, not here.
type TopicTree struct {
	groups []TopicGroup
	byKey  map[string]TopicGroup
}

// NewTopicTree builds the TopicTree from the embedded default data.
func NewTopicTree() (*TopicTree, error) {
	var tf struct {
		Groups []TopicGroup `yaml:"groups"`
	}
	if err := yaml.Unmarshal(defaultTopicsYAML, &tf); err != nil {
		return nil, fmt.Errorf("failed to parse topic tree: %w", err)
	}

	t := &TopicTree{
		groups: tf.Groups,
		byKey:  make(map[string]TopicGroup, len(tf.Groups)),
	}
	for _, g := range tf.Groups {
		t.byKey[g.Key] = g
	}
	return t, nil
}

// Groups returns all topic groups in presentation order.
func (t *TopicTree) Groups() []TopicGroup {
	return t.groups
}

// Group returns the group for a key, and whether it exists.
func (t *TopicTree) Group(key string) (TopicGroup, bool) {
	g, ok := t.byKey[key]
	return g, ok
}
