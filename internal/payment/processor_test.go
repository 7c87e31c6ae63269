// SPDX-License-Identifier: MPL-2.0

package payment

import (
	"errors"
	"testing"

	"swapkit-cli/pkg/behavior"
)

// recordingMethod records the order in which its steps run.
type recordingMethod struct {
	calls *[]string
}

func (recordingMethod) Rail() RailName { return "recording" }

func (m recordingMethod) Authenticate() AuthNote {
	*m.calls = append(*m.calls, "authenticate")
	return "recorded auth"
}

func (m recordingMethod) Transact() TransactionNote {
	*m.calls = append(*m.calls, "transact")
	return "recorded transaction"
}

func TestProcessRailReceipts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		method   Method
		wantRail RailName
	}{
		{name: "credit card", method: CreditCard{}, wantRail: RailCreditCard},
		{name: "digital wallet", method: DigitalWallet{}, wantRail: RailDigitalWallet},
		{name: "bank transfer", method: BankTransfer{}, wantRail: RailBankTransfer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p, err := NewProcessorWith(tt.method)
			if err != nil {
				t.Fatalf("NewProcessorWith() error = %v", err)
			}
			receipt, err := p.Process()
			if err != nil {
				t.Fatalf("Process() error = %v", err)
			}
			if receipt.Rail != tt.wantRail {
				t.Errorf("Receipt.Rail = %q, want %q", receipt.Rail, tt.wantRail)
			}
			if receipt.Auth == "" {
				t.Error("Receipt.Auth is empty")
			}
			if receipt.Transaction == "" {
				t.Error("Receipt.Transaction is empty")
			}
		})
	}
}

func TestProcessAuthenticatesBeforeTransacting(t *testing.T) {
	t.Parallel()

	var calls []string
	p, err := NewProcessorWith(recordingMethod{calls: &calls})
	if err != nil {
		t.Fatalf("NewProcessorWith() error = %v", err)
	}

	if _, err := p.Process(); err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	if len(calls) != 2 || calls[0] != "authenticate" || calls[1] != "transact" {
		t.Errorf("Process() call order = %v, want [authenticate transact]", calls)
	}
}

func TestProcessUnboundMethod(t *testing.T) {
	t.Parallel()

	p := NewProcessor()

	_, err := p.Process()
	if !errors.Is(err, behavior.ErrUnboundSlot) {
		t.Errorf("Process() on unbound processor error = %v, want ErrUnboundSlot", err)
	}
}

func TestRebindingRailTakesEffectImmediately(t *testing.T) {
	t.Parallel()

	p, err := NewProcessorWith(CreditCard{})
	if err != nil {
		t.Fatalf("NewProcessorWith() error = %v", err)
	}

	receipt, err := p.Process()
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if receipt.Rail != RailCreditCard {
		t.Errorf("Receipt.Rail = %q, want %q", receipt.Rail, RailCreditCard)
	}

	if err := p.SetMethod(BankTransfer{}); err != nil {
		t.Fatalf("SetMethod() error = %v", err)
	}
	receipt, err = p.Process()
	if err != nil {
		t.Fatalf("Process() after rebind error = %v", err)
	}
	if receipt.Rail != RailBankTransfer {
		t.Errorf("Receipt.Rail after rebind = %q, want %q", receipt.Rail, RailBankTransfer)
	}
}

func TestSetMethodRejectsNil(t *testing.T) {
	t.Parallel()

	p := NewProcessor()
	if err := p.SetMethod(nil); !errors.Is(err, behavior.ErrNilVariant) {
		t.Errorf("SetMethod(nil) error = %v, want ErrNilVariant", err)
	}
}
