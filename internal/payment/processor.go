// SPDX-License-Identifier: MPL-2.0

package payment

import "swapkit-cli/pkg/behavior"

// SlotMethod names the processor's single binding slot.
const SlotMethod behavior.SlotName = "method"

type (
	// Receipt is the structured outcome of a processed payment. The
	// authentication effect is produced strictly before the transaction
	// effect; a Receipt never holds one without the other.
	Receipt struct {
		Rail        RailName
		Auth        AuthNote
		Transaction TransactionNote
	}

	// Processor is a host with a single method slot. It forwards Process to
	// whichever rail is currently bound.
	//
	// Processor is not safe for concurrent use.
	Processor struct {
		method behavior.Slot[Method]
	}
)

// NewProcessor creates a processor with no rail bound. Callers select a rail
// with SetMethod before processing.
func NewProcessor() *Processor {
	return &Processor{method: behavior.NewSlot[Method](SlotMethod)}
}

// NewProcessorWith creates a processor pre-bound to the given rail.
func NewProcessorWith(m Method) (*Processor, error) {
	p := NewProcessor()
	if err := p.SetMethod(m); err != nil {
		return nil, err
	}
	return p, nil
}

// SetMethod rebinds the method slot. Valid at any time; takes effect on the
// next Process.
func (p *Processor) SetMethod(m Method) error {
	return p.method.Bind(m)
}

// Process runs the bound rail's authentication step and then its transaction
// step, in that order, with no interleaving and no retry. It fails fast with
// an unbound-slot error when no rail is bound.
func (p *Processor) Process() (Receipt, error) {
	m, err := p.method.Resolve()
	if err != nil {
		return Receipt{}, err
	}

	auth := m.Authenticate()
	return Receipt{
		Rail:        m.Rail(),
		Auth:        auth,
		Transaction: m.Transact(),
	}, nil
}
