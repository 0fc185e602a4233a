package main

import (
	"github.com/NethermindEth/bitint/calculator"
	"github.com/NethermindEth/bitint/utils"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var Version string

const (
	configF   = "config"
	logLevelF = "log-level"
	lhsF      = "lhs"
	rhsF      = "rhs"
	opF       = "op"
	formatF   = "format"
	trimF     = "trim"
	colourF   = "colour"

	defaultConfig = ""
	defaultLhs    = "10"
	defaultRhs    = "6"
	defaultOp     = string(calculator.OpXor)
	defaultFormat = string(calculator.FormatBits)
	defaultTrim   = false
	defaultColour = true

	configFlagUsage   = "The yaml configuration file."
	logLevelFlagUsage = "Options: debug, info, warn, error."
	lhsUsage          = "Left operand. Decimal, or 0x, 0o and 0b prefixed literal."
	rhsUsage          = "Right operand. Same syntax as --lhs."
	opUsage           = "Operation to apply. Options: xor, and, or, add."
	formatUsage       = `Output format. Options:
bits = bits of the result, least significant first
table = operands and result with width and decimal value
decimal = decimal value of the result
hex = hex value of the result`
	trimUsage   = "Drop the high zero bits of the result."
	colourUsage = "Uses --colour=false command to disable colourized outputs (ANSI Escape Codes)."
)

var Runner calculator.Runner

func NewCmd(newRunnerFn calculator.NewRunnerFn) *cobra.Command {
	var cfgFile string
	defaultLogLevel := utils.INFO

	bitintCmd := &cobra.Command{
		Use:     "bitint [flags]",
		Short:   "Bitwise operations and addition on arbitrary precision integers.",
		Version: Version,
		Args:    cobra.NoArgs,
		// main prints the returned error
		SilenceErrors: true,
	}

	bitintCmd.Flags().StringVar(&cfgFile, configF, defaultConfig, configFlagUsage)
	bitintCmd.Flags().Var(&defaultLogLevel, logLevelF, logLevelFlagUsage)
	bitintCmd.Flags().String(lhsF, defaultLhs, lhsUsage)
	bitintCmd.Flags().String(rhsF, defaultRhs, rhsUsage)
	bitintCmd.Flags().String(opF, defaultOp, opUsage)
	bitintCmd.Flags().String(formatF, defaultFormat, formatUsage)
	bitintCmd.Flags().Bool(trimF, defaultTrim, trimUsage)
	bitintCmd.Flags().Bool(colourF, defaultColour, colourUsage)

	bitintCmd.RunE = func(cmd *cobra.Command, _ []string) error {
		v := viper.New()
		if cfgFile != "" {
			v.SetConfigType("yaml")
			v.SetConfigFile(cfgFile)
			if err := v.ReadInConfig(); err != nil {
				return err
			}
		}

		if err := v.BindPFlags(cmd.Flags()); err != nil {
			return err
		}

		cfg := new(calculator.Config)
		if err := v.Unmarshal(cfg, viper.DecodeHook(mapstructure.TextUnmarshallerHookFunc())); err != nil {
			return err
		}

		log, err := utils.NewZapLogger(cfg.LogLevel, v.GetBool(colourF))
		if err != nil {
			return err
		}

		Runner, err = newRunnerFn(cfg, log)
		if err != nil {
			return err
		}

		return Runner.Run(cmd.Context(), cmd.OutOrStdout())
	}

	return bitintCmd
}
