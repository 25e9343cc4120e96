package stellar

import (
	"fmt"

	"github.com/stellar/go-stellar-sdk/keypair"
)

// Identity signs with an ed25519 keypair parsed from a secret seed.
type Identity struct {
	kp *keypair.Full
}

// ParseIdentity parses a secret seed ("S...").
func ParseIdentity(seed string) (*Identity, error) {
	kp, err := keypair.ParseFull(seed)
	if err != nil {
		return nil, fmt.Errorf("parse secret seed: %w", err)
	}
	return &Identity{kp: kp}, nil
}

// Address returns the public account id.
func (i *Identity) Address() string {
	return i.kp.Address()
}

// Sign signs payload.
func (i *Identity) Sign(payload []byte) ([]byte, error) {
	return i.kp.Sign(payload)
}
