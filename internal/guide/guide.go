// SPDX-License-Identifier: MPL-2.0

package guide

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

const (
	// TopicComposition explains the host/contract/variant mechanism itself.
	TopicComposition Topic = "composition"
	// TopicDucks explains the duck scenario.
	TopicDucks Topic = "ducks"
	// TopicPayment explains the payment scenario.
	TopicPayment Topic = "payment"
	// TopicSorting explains the sorting scenario.
	TopicSorting Topic = "sorting"
)

// ErrUnknownTopic is the sentinel error wrapped by UnknownTopicError.
var ErrUnknownTopic = errors.New("unknown topic")

type (
	// Topic identifies a guide.
	Topic string

	// MarkdownMsg is Markdown source destined for terminal rendering.
	MarkdownMsg string

	// UnknownTopicError is returned when no guide exists for a topic.
	// It wraps ErrUnknownTopic for errors.Is() compatibility.
	UnknownTopicError struct {
		Value Topic
	}

	// Guide is one renderable explanation.
	Guide struct {
		topic Topic
		title string
		mdMsg MarkdownMsg
	}
)

// String returns the string representation of the Topic.
func (t Topic) String() string { return string(t) }

// Error implements the error interface.
func (e *UnknownTopicError) Error() string {
	return fmt.Sprintf("unknown topic %q (see 'swapkit explain' for the list)", e.Value)
}

// Unwrap returns ErrUnknownTopic so callers can use errors.Is for programmatic detection.
func (e *UnknownTopicError) Unwrap() error { return ErrUnknownTopic }

// Topic returns the guide's topic.
func (g *Guide) Topic() Topic { return g.topic }

// Title returns the guide's one-line title.
func (g *Guide) Title() string { return g.title }

// render is a seam for tests; production code renders through glamour.
var render = glamour.Render

// Render returns the guide's Markdown rendered with the given glamour style
// (e.g., "dark", "light", "auto").
func (g *Guide) Render(stylePath string) (string, error) {
	return render(string(g.mdMsg), stylePath)
}

// Lookup returns the guide for a topic.
func Lookup(topic Topic) (*Guide, error) {
	g, ok := registry[topic]
	if !ok {
		return nil, &UnknownTopicError{Value: topic}
	}
	return g, nil
}

// Topics returns all known topics in lexical order.
func Topics() []Topic {
	topics := maps.Keys(registry)
	slices.Sort(topics)
	return topics
}

var registry = map[Topic]*Guide{
	TopicComposition: {
		topic: TopicComposition,
		title: "How hosts delegate behavior to variants",
		mdMsg: `
# Composition over inheritance

Every swapkit scenario is built from the same three pieces:

- a **contract**: a narrow interface describing one delegatable unit of
  behavior,
- a set of **variants**: stateless, interchangeable implementations of
  that contract,
- a **host**: an entity holding one *binding slot* per contract it
  depends on.

The host forwards each operation to whichever variant its slot currently
holds. Nothing about the variant is baked into the host:

~~~
d := duck.NewRubberDuck()       // default: cannot fly
d.SetFlightBehavior(duck.FlyRocketPowered{})
signal, _ := d.PerformFly()     // now it can
~~~

Rebinding takes effect on the very next invocation. Invoking through a
slot that was never bound fails immediately instead of silently doing
nothing — a missing binding is a wiring bug worth surfacing.`,
	},
	TopicDucks: {
		topic: TopicDucks,
		title: "Two independent behavior axes on one host",
		mdMsg: `
# The duck scenario

A duck owns two slots: **flight** and **voice**. They are independent
axes — rebinding one never affects the other. The species, by contrast,
is fixed at construction: a rubber duck stays a rubber duck no matter
which flight variant it borrows.

Specializations only differ in their *default* bindings:

| Species     | Flight        | Voice |
|-------------|---------------|-------|
| mallard     | fly with wings| quack |
| rubber duck | no way        | squeak|
| decoy       | no way        | mute  |

Defaults are not privileged: any duck can be retrofitted with
rocket-powered flight at runtime.`,
	},
	TopicPayment: {
		topic: TopicPayment,
		title: "A two-operation contract with a fixed order",
		mdMsg: `
# The payment scenario

A payment rail implements two operations, and the processor host always
runs them in the same order: **authenticate**, then **transact**. The
contract does not allow skipping authentication, and the host never
branches on which rail is bound — swapping the credit-card rail for a
bank transfer changes the effects, not the control flow.`,
	},
	TopicSorting: {
		topic: TopicSorting,
		title: "A parametric single-transform contract",
		mdMsg: `
# The sorting scenario

The ordering strategy is the same mechanism with a different contract
shape: one operation that takes a sequence and returns a reordered one.
The contract is generic over any ordered element type, so the compiler —
not a runtime check — guarantees elements are comparable.

Both shipped strategies share the comparison step; descending simply
adds a reversal. Implementations may copy or sort in place, but callers
only ever observe the returned sequence, and an empty input round-trips
unchanged.`,
	},
}
