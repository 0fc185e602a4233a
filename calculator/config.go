package calculator

import (
	"sync"

	"github.com/NethermindEth/bitint/utils"
	"github.com/go-playground/validator/v10"
)

type Op string

const (
	OpXor Op = "xor"
	OpAnd Op = "and"
	OpOr  Op = "or"
	OpAdd Op = "add"
)

type Format string

const (
	FormatBits    Format = "bits"
	FormatTable   Format = "table"
	FormatDecimal Format = "decimal"
	FormatHex     Format = "hex"
)

// Config is the calculator configuration. Field tags are the flag and config file keys.
type Config struct {
	LogLevel utils.LogLevel `mapstructure:"log-level" validate:"min=0,max=3"`
	Lhs      string         `mapstructure:"lhs" validate:"required"`
	Rhs      string         `mapstructure:"rhs" validate:"required"`
	Op       Op             `mapstructure:"op" validate:"oneof=xor and or add"`
	Format   Format         `mapstructure:"format" validate:"oneof=bits table decimal hex"`
	Trim     bool           `mapstructure:"trim"`
}

var (
	once sync.Once
	v    *validator.Validate
)

// Validator returns a singleton that can be used to validate Config
func Validator() *validator.Validate {
	once.Do(func() {
		v = validator.New()
	})
	return v
}
