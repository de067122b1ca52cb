package models

// PublishResult describes one accepted storage transaction.
type PublishResult struct {
	// TxID is the network-assigned transaction identifier.
	TxID string

	// URL is the permanent content address of the uploaded document,
	// e.g. "https://arweave.net/<tx-id>".
	URL string
}
