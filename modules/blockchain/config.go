package blockchain

// Networks known to the module.
const (
	Testnet   = "testnet"
	Mainnet   = "mainnet"
	Futurenet = "futurenet"
)

// Network describes a Stellar network and its public endpoints.
type Network struct {
	Name       string
	Passphrase string
	RPCURL     string
	HorizonURL string
}

var networks = map[string]Network{
	Testnet: {
		Name:       Testnet,
		Passphrase: "Test SDF Network ; September 2015",
		RPCURL:     "https://soroban-testnet.stellar.org",
		HorizonURL: "https://horizon-testnet.stellar.org",
	},
	Mainnet: {
		Name:       Mainnet,
		Passphrase: "Public Global Stellar Network ; September 2015",
		RPCURL:     "https://mainnet.sorobanrpc.com",
		HorizonURL: "https://horizon.stellar.org",
	},
	Futurenet: {
		Name:       Futurenet,
		Passphrase: "Test SDF Future Network ; October 2022",
		RPCURL:     "https://rpc-futurenet.stellar.org",
		HorizonURL: "https://horizon-futurenet.stellar.org",
	},
}

// LookupNetwork returns the descriptor for a network name.
func LookupNetwork(name string) (Network, bool) {
	n, ok := networks[name]
	return n, ok
}

// Config holds the blockchain module settings.
type Config struct {
	Network    string `yaml:"network" mapstructure:"network" validate:"oneof=testnet mainnet futurenet"`
	RPCURL     string `yaml:"rpc_url" mapstructure:"rpc_url" validate:"url"`
	HorizonURL string `yaml:"horizon_url" mapstructure:"horizon_url" validate:"url"`
	// ContractID is the Soroban savings contract address (strkey, "C...").
	ContractID string `yaml:"contract_id" mapstructure:"contract_id" validate:"omitempty,len=56,startswith=C,alphanum,uppercase"`
}

// ApplyDefaults selects testnet and fills endpoint URLs from the network.
func (c *Config) ApplyDefaults() {
	if c.Network == "" {
		c.Network = Testnet
	}
	n, ok := networks[c.Network]
	if !ok {
		return
	}
	if c.RPCURL == "" {
		c.RPCURL = n.RPCURL
	}
	if c.HorizonURL == "" {
		c.HorizonURL = n.HorizonURL
	}
}
