package models

// Settings holds the persisted plugin state. Currently a single field: the
// wallet credential used to sign Arweave transactions.
//
// The credential is stored verbatim as entered by the user and is only
// validated at first use, when it is parsed as JWK JSON by the wallet layer.
// Storing the key in plaintext is a known, deliberately preserved property of
// the original tool; moving it into an OS keychain needs a product decision.
type Settings struct {
	// PrivateKey is the JSON-serialized Arweave wallet credential (RSA JWK).
	PrivateKey string `json:"private_key"`
}
