// Package blockchain is the Stellar integration stub. It reports the
// configured network and contract and makes no network calls.
package blockchain

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/nestera/nestera-web/component"
	"github.com/nestera/nestera-web/logger"
	"github.com/nestera/nestera-web/modules"
	"github.com/nestera/nestera-web/server"
)

// Name is the module and component name.
const Name = "blockchain"

var (
	_ modules.Module        = (*Module)(nil)
	_ component.Component   = (*Module)(nil)
	_ component.Describable = (*Module)(nil)
)

// Status is the body of GET /api/blockchain/status.
type Status struct {
	Network            string `json:"network"`
	Passphrase         string `json:"passphrase"`
	RPCURL             string `json:"rpc_url"`
	HorizonURL         string `json:"horizon_url"`
	ContractID         string `json:"contract_id,omitempty"`
	ContractConfigured bool   `json:"contract_configured"`
}

// Module serves the network descriptor and reports its readiness as a
// lifecycle component.
type Module struct {
	cfg Config
	log *logger.Logger
}

// New creates the module from a defaulted, validated config.
func New(cfg Config) *Module {
	return &Module{cfg: cfg}
}

// Name implements modules.Module and component.Component.
func (m *Module) Name() string { return Name }

// Mount registers GET /api/blockchain/status.
func (m *Module) Mount(h *modules.Host) error {
	if _, ok := networks[m.cfg.Network]; !ok {
		return fmt.Errorf("blockchain: unknown network %q", m.cfg.Network)
	}
	m.log = h.Logger
	h.Router.GET("/api/blockchain/status", m.status)
	return nil
}

// Status returns the descriptor for the configured network.
func (m *Module) Status() Status {
	n := networks[m.cfg.Network]
	return Status{
		Network:            n.Name,
		Passphrase:         n.Passphrase,
		RPCURL:             m.cfg.RPCURL,
		HorizonURL:         m.cfg.HorizonURL,
		ContractID:         m.cfg.ContractID,
		ContractConfigured: m.cfg.ContractID != "",
	}
}

func (m *Module) status(c *gin.Context) {
	server.RespondOK(c, m.Status())
}

// Start logs the configured network. No connection is opened.
func (m *Module) Start(ctx context.Context) error {
	if m.log != nil {
		m.log.Info("Blockchain module ready", map[string]interface{}{
			"network":             m.cfg.Network,
			"contract_configured": m.cfg.ContractID != "",
		})
	}
	return nil
}

// Stop is a no-op.
func (m *Module) Stop(ctx context.Context) error { return nil }

// Health is degraded until a contract id is configured.
func (m *Module) Health(ctx context.Context) component.Health {
	if m.cfg.ContractID == "" {
		return component.Health{Name: Name, Status: component.StatusDegraded, Message: "no contract configured"}
	}
	return component.Health{Name: Name, Status: component.StatusHealthy}
}

// Describe returns summary info for the bootstrap display.
func (m *Module) Describe() component.Description {
	details := m.cfg.Network + " rpc=" + m.cfg.RPCURL
	if m.cfg.ContractID != "" {
		details += " contract=" + m.cfg.ContractID[:8] + "..."
	}
	return component.Description{Name: "Stellar", Type: "blockchain", Details: details}
}
