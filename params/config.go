package params

import (
	"encoding/json"
	"errors"
	"path/filepath"
	"sync"

	"github.com/BurntSushi/toml"

	"github.com/vellumchain/vellum/common"
	"github.com/vellumchain/vellum/crypto"
	"github.com/vellumchain/vellum/log"
)

// ConfigFileName is the fixed name of the node configuration file
// under the node's working directory.
const ConfigFileName = "vellum.toml"

const defaultRPCTimeout = 60 // seconds

var (
	nodeConfig        *NodeConfig
	loadConfigStarter sync.Once
)

// NodeConfig holds the node configuration (decoded from the toml
// file). It is read once at startup and never mutated afterwards.
type NodeConfig struct {
	MemberName string
	PublicKey  string
	PrivateKey string `json:"-"`

	RPC   *RPCConfig
	Chain *ChainConfig `toml:",omitempty" json:",omitempty"`
}

// RPCConfig locates the node daemon that executes lifecycle calls.
type RPCConfig struct {
	Address string
	Timeout uint64 `toml:",omitempty" json:",omitempty"` // seconds
}

// ChainConfig names the ledger this node participates in.
type ChainConfig struct {
	ChainName   string
	GenesisHash string `toml:",omitempty" json:",omitempty"`
}

// GetConfig gets the loaded node config.
func GetConfig() *NodeConfig {
	return nodeConfig
}

// SetConfig sets the node config.
func SetConfig(config *NodeConfig) {
	nodeConfig = config
}

// RPCTimeout returns the configured RPC timeout in seconds.
func (c *NodeConfig) RPCTimeout() int {
	if c.RPC == nil || c.RPC.Timeout == 0 {
		return defaultRPCTimeout
	}
	return int(c.RPC.Timeout)
}

// OperatorPublicKey decodes the operator's public key.
func (c *NodeConfig) OperatorPublicKey() (crypto.PublicKey, error) {
	return crypto.DecodePublicKey(c.PublicKey)
}

// OperatorPrivateKey decodes the operator's private key. The result
// is scoped sensitive material: callers use it for signing and must
// not log, persist or transmit it.
func (c *NodeConfig) OperatorPrivateKey() (crypto.PrivateKey, error) {
	return crypto.DecodePrivateKey(c.PrivateKey)
}

// CheckConfig checks the loaded config is complete and the key
// material well formed and consistent.
func (c *NodeConfig) CheckConfig() error {
	if c.MemberName == "" {
		return errors.New("must config non empty 'MemberName'")
	}
	if c.RPC == nil {
		return errors.New("must config 'RPC'")
	}
	if c.RPC.Address == "" {
		return errors.New("must config non empty 'RPC.Address'")
	}
	pubkey, err := c.OperatorPublicKey()
	if err != nil {
		return err
	}
	privkey, err := c.OperatorPrivateKey()
	if err != nil {
		return err
	}
	derived, err := privkey.PublicKey()
	if err != nil {
		return err
	}
	if derived != pubkey {
		return errors.New("'PublicKey' does not match 'PrivateKey'")
	}
	return nil
}

// LoadConfigFile decodes and checks the config file at configFile.
func LoadConfigFile(configFile string) (*NodeConfig, error) {
	if !common.FileExist(configFile) {
		return nil, errors.New("config file " + configFile + " not exist")
	}
	config := &NodeConfig{}
	if _, err := toml.DecodeFile(configFile, &config); err != nil {
		return nil, err
	}
	if err := config.CheckConfig(); err != nil {
		return nil, err
	}
	return config, nil
}

// LoadConfig loads the node config from the fixed file name under
// dataDir. It is loaded once at startup; later calls return the same
// value. The private key is redacted from the config log line.
func LoadConfig(dataDir string) *NodeConfig {
	loadConfigStarter.Do(func() {
		if nodeConfig != nil {
			// already injected with SetConfig
			return
		}
		if dataDir == "" {
			log.Fatalf("LoadConfig error: no data directory specified")
		}
		configFile := filepath.Join(dataDir, ConfigFileName)
		config, err := LoadConfigFile(configFile)
		if err != nil {
			log.Fatalf("LoadConfig error: %v", err)
		}
		SetConfig(config)

		bs, _ := json.Marshal(config)
		log.Println("LoadConfig finished.", string(bs))
		log.Info("Check config success", "configFile", configFile)
	})
	return nodeConfig
}
