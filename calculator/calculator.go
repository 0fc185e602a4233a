package calculator

import (
	"context"
	"fmt"
	"io"

	"github.com/NethermindEth/bitint/core/bigint"
	"github.com/NethermindEth/bitint/utils"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
)

var (
	ErrUnknownOp     = errors.New("unknown operation")
	ErrUnknownFormat = errors.New("unknown output format")
)

type Runner interface {
	Run(ctx context.Context, out io.Writer) error
	Config() Config
}

type NewRunnerFn func(cfg *Config, log utils.SimpleLogger) (Runner, error)

// Calculator applies a single operation to two integers and renders the result.
type Calculator struct {
	cfg Config
	log utils.SimpleLogger

	lhs *bigint.BigInteger
	rhs *bigint.BigInteger
}

// New validates cfg and parses both operands.
func New(cfg *Config, log utils.SimpleLogger) (*Calculator, error) {
	if err := Validator().Struct(cfg); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	lhs, err := operand(cfg.Lhs)
	if err != nil {
		return nil, errors.Wrap(err, "lhs")
	}
	rhs, err := operand(cfg.Rhs)
	if err != nil {
		return nil, errors.Wrap(err, "rhs")
	}

	return &Calculator{
		cfg: *cfg,
		log: log,
		lhs: lhs,
		rhs: rhs,
	}, nil
}

func NewRunner(cfg *Config, log utils.SimpleLogger) (Runner, error) {
	c, err := New(cfg, log)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Literals that fit in 128 bits are widened to the full 128 bit width, like integers built with bigint.New.
func operand(literal string) (*bigint.BigInteger, error) {
	v, err := bigint.NewFromString(literal)
	if err != nil {
		return nil, err
	}

	if u, ok := v.Uint128(); ok {
		return bigint.New(u), nil
	}
	return v, nil
}

func (c *Calculator) Config() Config {
	return c.cfg
}

func (c *Calculator) Operands() (lhs, rhs *bigint.BigInteger) {
	return c.lhs, c.rhs
}

// Result applies the configured operation. High zero bits are dropped when Trim is set.
func (c *Calculator) Result() (*bigint.BigInteger, error) {
	var res *bigint.BigInteger
	switch c.cfg.Op {
	case OpXor:
		res = c.lhs.Xor(c.rhs)
	case OpAnd:
		res = c.lhs.And(c.rhs)
	case OpOr:
		res = c.lhs.Or(c.rhs)
	case OpAdd:
		res = c.lhs.Add(c.rhs)
	default:
		return nil, errors.Wrapf(ErrUnknownOp, "%q", c.cfg.Op)
	}

	if c.cfg.Trim {
		res = res.Trim()
	}
	return res, nil
}

func (c *Calculator) Run(ctx context.Context, out io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c.log.Debugw("Computing", "op", c.cfg.Op, "lhs", c.lhs, "rhs", c.rhs)
	res, err := c.Result()
	if err != nil {
		return err
	}
	c.log.Infow("Computed result", "op", c.cfg.Op, "width", res.Len())

	return c.render(out, res)
}

func (c *Calculator) render(out io.Writer, res *bigint.BigInteger) error {
	var err error
	switch c.cfg.Format {
	case FormatBits:
		_, err = fmt.Fprintln(out, res.Bits())
	case FormatDecimal:
		_, err = fmt.Fprintln(out, res.String())
	case FormatHex:
		_, err = fmt.Fprintln(out, "0x"+res.Text(16)) //nolint:mnd
	case FormatTable:
		table := tablewriter.NewWriter(out)
		table.SetAutoWrapText(false)
		table.SetHeader([]string{"Operand", "Width", "Decimal", "Bits (MSB first)"})
		table.Append(row("lhs", c.lhs))
		table.Append(row("rhs", c.rhs))
		table.Append(row(string(c.cfg.Op), res))
		table.Render()
	default:
		err = errors.Wrapf(ErrUnknownFormat, "%q", c.cfg.Format)
	}
	return err
}

func row(name string, v *bigint.BigInteger) []string {
	return []string{name, fmt.Sprintf("%d", v.Len()), v.String(), v.Magnitude().Binary()}
}
