package ids

import (
	"fmt"
	"strings"

	"mecanica_ledger/internal/usecase/interfaces"

	"github.com/bwmarrin/snowflake"
	"github.com/google/uuid"
)

const (
	StrategyUUID      = "uuid"
	StrategySnowflake = "snowflake"
)

// UUIDGenerator builds "<prefix>-<uuid v4>" identifiers.
type UUIDGenerator struct{}

var _ interfaces.IIDGenerator = UUIDGenerator{}

func (UUIDGenerator) NewID(prefix string) string {
	return prefix + "-" + uuid.NewString()
}

// SnowflakeGenerator builds "<prefix>-<snowflake>" identifiers, monotonic per node.
type SnowflakeGenerator struct {
	node *snowflake.Node
}

var _ interfaces.IIDGenerator = (*SnowflakeGenerator)(nil)

func NewSnowflakeGenerator(node int64) (*SnowflakeGenerator, error) {
	n, err := snowflake.NewNode(node)
	if err != nil {
		return nil, err
	}
	return &SnowflakeGenerator{node: n}, nil
}

func (g *SnowflakeGenerator) NewID(prefix string) string {
	return prefix + "-" + g.node.Generate().String()
}

// New resolves the configured strategy.
func New(strategy string, node int64) (interfaces.IIDGenerator, error) {
	switch strings.ToLower(strings.TrimSpace(strategy)) {
	case "", StrategyUUID:
		return UUIDGenerator{}, nil
	case StrategySnowflake:
		return NewSnowflakeGenerator(node)
	default:
		return nil, fmt.Errorf("unknown id strategy %q", strategy)
	}
}
