// SPDX-License-Identifier: MPL-2.0

package payment

const (
	// RailCreditCard identifies the credit-card rail.
	RailCreditCard RailName = "credit-card"
	// RailDigitalWallet identifies the digital-wallet rail.
	RailDigitalWallet RailName = "digital-wallet"
	// RailBankTransfer identifies the bank-transfer rail.
	RailBankTransfer RailName = "bank-transfer"
)

type (
	// RailName identifies a payment rail for display and logging.
	RailName string

	// AuthNote is the observable effect of a rail's authentication step.
	AuthNote string

	// TransactionNote is the observable effect of a rail's transaction step.
	TransactionNote string

	// Method is the contract for a payment rail. Authenticate always runs
	// before Transact; the contract does not allow skipping authentication,
	// and the Processor host enforces the order. Implementations must be
	// stateless.
	Method interface {
		// Rail reports which rail this is, for display and logging only.
		// The Processor never branches on it.
		Rail() RailName
		Authenticate() AuthNote
		Transact() TransactionNote
	}

	// CreditCard authenticates with card verification and charges the card.
	CreditCard struct{}

	// DigitalWallet authenticates with a one-time passcode and debits the
	// wallet balance.
	DigitalWallet struct{}

	// BankTransfer authenticates against the account mandate and issues a
	// transfer order.
	BankTransfer struct{}
)

// String returns the string representation of the RailName.
func (n RailName) String() string { return string(n) }

// String returns the string representation of the AuthNote.
func (n AuthNote) String() string { return string(n) }

// String returns the string representation of the TransactionNote.
func (n TransactionNote) String() string { return string(n) }

// Rail implements Method.
func (CreditCard) Rail() RailName { return RailCreditCard }

// Authenticate implements Method.
func (CreditCard) Authenticate() AuthNote { return "verified card number and CVV" }

// Transact implements Method.
func (CreditCard) Transact() TransactionNote { return "charged the credit card" }

// Rail implements Method.
func (DigitalWallet) Rail() RailName { return RailDigitalWallet }

// Authenticate implements Method.
func (DigitalWallet) Authenticate() AuthNote { return "confirmed one-time passcode" }

// Transact implements Method.
func (DigitalWallet) Transact() TransactionNote { return "debited the wallet balance" }

// Rail implements Method.
func (BankTransfer) Rail() RailName { return RailBankTransfer }

// Authenticate implements Method.
func (BankTransfer) Authenticate() AuthNote { return "checked the account mandate" }

// Transact implements Method.
func (BankTransfer) Transact() TransactionNote { return "issued the transfer order" }
