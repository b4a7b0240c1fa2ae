package wallet

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// Provisioner creates or loads the wallets the workflow needs.
type Provisioner struct {
	rpc    ProvisionerRPC
	logger *zap.Logger
}

// NewProvisioner constructs a Provisioner over a node-level RPC client.
func NewProvisioner(rpc ProvisionerRPC, logger *zap.Logger) *Provisioner {
	return &Provisioner{rpc: rpc, logger: logger}
}

// EnsureWallet creates the named wallet, falling back to loading it when the
// node reports it already exists. A wallet that is already loaded counts as
// success. Any other node answer is fatal.
func (p *Provisioner) EnsureWallet(name string) error {
	if _, err := p.rpc.CreateWallet(name); err != nil {
		if !mentionsAny(err, "already exists", "already loaded", "database already exists") {
			return fmt.Errorf("create wallet %s: %w", name, err)
		}
		if _, err := p.rpc.LoadWallet(name); err != nil {
			if !mentionsAny(err, "already loaded") {
				return fmt.Errorf("load wallet %s: %w", name, err)
			}
		}
		p.logger.Info("wallet already exists", zap.String("wallet", name))
		return nil
	}
	p.logger.Info("wallet created", zap.String("wallet", name))
	return nil
}

// mentionsAny matches on the node's error message. Core reports wallet
// collisions with a generic -4 wallet error code, the message text is the
// only discriminator.
func mentionsAny(err error, fragments ...string) bool {
	msg := strings.ToLower(err.Error())
	for _, fragment := range fragments {
		if strings.Contains(msg, fragment) {
			return true
		}
	}
	return false
}
