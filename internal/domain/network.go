package domain

// NetworkFamily groups network profiles by the chain they fork
type NetworkFamily string

const (
	FamilyBSC      NetworkFamily = "bsc"
	FamilyEthereum NetworkFamily = "ethereum"
	FamilyOptimism NetworkFamily = "optimism"
)

// NetworkProfile maps a network identifier to the remote endpoint the
// simulator forks from and the chain ID it must report.
type NetworkProfile struct {
	Name    string        `json:"name"`
	Family  NetworkFamily `json:"family"`
	ForkURL string        `json:"forkUrl"`
	ChainID uint64        `json:"chainId"`
}

// LaunchRequest is the input of a single simulator launch.
// A nil BlockTime means the simulator's own mining policy applies.
type LaunchRequest struct {
	Network   string
	BlockTime *float64
	Port      int
}

// WithBlockTime returns a copy of the request with the block time set
func (r LaunchRequest) WithBlockTime(seconds float64) LaunchRequest {
	r.BlockTime = &seconds
	return r
}
