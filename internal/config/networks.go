package config

import (
	"sort"
	"strings"

	"github.com/samber/lo"
	"github.com/trebuchet-org/forknet/internal/domain"
	"github.com/trebuchet-org/forknet/internal/domain/config"
)

// infuraKeyPlaceholder is replaced by the configured Infura key
const infuraKeyPlaceholder = "{INFURA_KEY}"

// networkTable is the static set of networks the simulator can fork.
// The order is the display order.
var networkTable = []domain.NetworkProfile{
	{Name: "bsc-local-testnet", Family: domain.FamilyBSC, ForkURL: "https://data-seed-prebsc-1-s1.binance.org:8545/", ChainID: 97},
	{Name: "bsc-local-mainnet", Family: domain.FamilyBSC, ForkURL: "https://bsc-dataseed.binance.org/", ChainID: 56},
	{Name: "eth-local-ropsten", Family: domain.FamilyEthereum, ForkURL: "https://ropsten.infura.io/v3/" + infuraKeyPlaceholder, ChainID: 3},
	{Name: "eth-local-mainnet", Family: domain.FamilyEthereum, ForkURL: "https://mainnet.infura.io/v3/" + infuraKeyPlaceholder, ChainID: 1},
	{Name: "optimistic-local-kovan", Family: domain.FamilyOptimism, ForkURL: "https://optimism-kovan.infura.io/v3/" + infuraKeyPlaceholder, ChainID: 69},
	{Name: "optimistic-local-mainnet", Family: domain.FamilyOptimism, ForkURL: "https://optimism-mainnet.infura.io/v3/" + infuraKeyPlaceholder, ChainID: 10},
}

// Catalog resolves network identifiers to profiles with credentials applied
type Catalog struct {
	profiles map[string]domain.NetworkProfile
	order    []string
}

// NewCatalog builds the catalog, substituting the Infura key into hosted-provider URLs
func NewCatalog(creds config.Credentials) *Catalog {
	c := &Catalog{
		profiles: make(map[string]domain.NetworkProfile, len(networkTable)),
		order:    make([]string, 0, len(networkTable)),
	}
	for _, p := range networkTable {
		p.ForkURL = strings.ReplaceAll(p.ForkURL, infuraKeyPlaceholder, creds.InfuraKey)
		c.profiles[p.Name] = p
		c.order = append(c.order, p.Name)
	}
	return c
}

// ProvideCatalog creates a Catalog for Wire dependency injection
func ProvideCatalog(cfg *config.RuntimeConfig) *Catalog {
	return NewCatalog(cfg.Credentials)
}

// Lookup returns the profile with exactly the given name
func (c *Catalog) Lookup(name string) (domain.NetworkProfile, bool) {
	p, ok := c.profiles[name]
	return p, ok
}

// Names returns the supported network identifiers in display order
func (c *Catalog) Names() []string {
	return append([]string(nil), c.order...)
}

// Profiles returns all profiles in display order
func (c *Catalog) Profiles() []domain.NetworkProfile {
	return lo.Map(c.order, func(name string, _ int) domain.NetworkProfile {
		return c.profiles[name]
	})
}

// ByChainID returns every profile that reports the given chain ID
func (c *Catalog) ByChainID(chainID uint64) []domain.NetworkProfile {
	matches := lo.Filter(c.Profiles(), func(p domain.NetworkProfile, _ int) bool {
		return p.ChainID == chainID
	})
	sort.SliceStable(matches, func(i, j int) bool { return matches[i].Name < matches[j].Name })
	return matches
}
