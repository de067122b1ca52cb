// Package wallet wraps the goar signer: parsing the stored JWK credential,
// deriving the wallet address, and signing transactions. All heavy
// cryptography (RSA-PSS, deep hashing, chunking) stays inside goar.
package wallet

import (
	"fmt"

	"github.com/everFinance/goar"
	"github.com/everFinance/goar/types"
	"github.com/everFinance/goar/utils"
)

// Wallet is a parsed Arweave credential ready to sign transactions.
type Wallet struct {
	signer *goar.Signer
}

// New parses keyJSON as a JWK wallet credential. This is the single place
// where the stored private key is validated: settings entry performs no
// validation, so a malformed credential fails here, at first use.
func New(keyJSON []byte) (*Wallet, error) {
	signer, err := goar.NewSigner(keyJSON)
	if err != nil {
		return nil, fmt.Errorf("parse wallet credential: %w", err)
	}
	return &Wallet{signer: signer}, nil
}

// Address returns the wallet's base64url address derived from the key.
func (w *Wallet) Address() string {
	return w.signer.Address
}

// Owner returns the base64url-encoded RSA modulus used as the transaction
// owner field.
func (w *Wallet) Owner() string {
	return w.signer.Owner()
}

// SignTransaction signs tx in place with the wallet's private key, filling
// its signature and ID fields.
func (w *Wallet) SignTransaction(tx *types.Transaction) error {
	if err := utils.SignTransaction(tx, w.signer.PrvKey); err != nil {
		return fmt.Errorf("sign transaction: %w", err)
	}
	return nil
}
