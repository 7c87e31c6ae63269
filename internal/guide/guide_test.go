// SPDX-License-Identifier: MPL-2.0

package guide

import (
	"errors"
	"strings"
	"testing"
)

func TestLookupKnownTopics(t *testing.T) {
	t.Parallel()

	for _, topic := range Topics() {
		g, err := Lookup(topic)
		if err != nil {
			t.Errorf("Lookup(%q) error = %v", topic, err)
			continue
		}
		if g.Topic() != topic {
			t.Errorf("Lookup(%q).Topic() = %q", topic, g.Topic())
		}
		if g.Title() == "" {
			t.Errorf("guide %q has no title", topic)
		}
	}
}

func TestLookupUnknownTopic(t *testing.T) {
	t.Parallel()

	_, err := Lookup("teleport")
	if !errors.Is(err, ErrUnknownTopic) {
		t.Errorf("Lookup(teleport) error = %v, want ErrUnknownTopic", err)
	}
}

func TestTopicsSortedAndComplete(t *testing.T) {
	t.Parallel()

	topics := Topics()
	if len(topics) != len(registry) {
		t.Fatalf("Topics() returned %d entries, registry has %d", len(topics), len(registry))
	}
	for i := 1; i < len(topics); i++ {
		if topics[i-1] >= topics[i] {
			t.Errorf("Topics() not sorted: %q before %q", topics[i-1], topics[i])
		}
	}
}

func TestRenderUsesSeam(t *testing.T) {
	// Not parallel: swaps the package-level render seam.
	original := render
	t.Cleanup(func() { render = original })

	var gotStyle string
	render = func(in string, stylePath string) (string, error) {
		gotStyle = stylePath
		return "rendered:" + in, nil
	}

	g, err := Lookup(TopicComposition)
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}
	out, err := g.Render("dark")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if gotStyle != "dark" {
		t.Errorf("render style = %q, want %q", gotStyle, "dark")
	}
	if !strings.HasPrefix(out, "rendered:") {
		t.Errorf("Render() did not go through the seam: %q", out)
	}
}
