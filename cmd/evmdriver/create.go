// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package main

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/dsnet/golib/unitconv"
	"github.com/urfave/cli/v2"

	"github.com/lineuve/besu/code"
	"github.com/lineuve/besu/gas"
	"github.com/lineuve/besu/interpreter"
	"github.com/lineuve/besu/state"
	"github.com/lineuve/besu/vm"
)

var CreateCmd = cli.Command{
	Action:    doCreate,
	Name:      "create",
	Usage:     "Deploy a contract from the given init code",
	ArgsUsage: "<init-code-hex>",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "revision",
			Usage: "chain revision to execute under",
			Value: vm.R13_Cancun.String(),
		},
		&cli.Int64Flag{
			Name:  "gas",
			Usage: "gas supplied to the creation",
			Value: 10_000_000,
		},
		&cli.Uint64Flag{
			Name:  "value",
			Usage: "endowment transferred to the created account",
		},
		&cli.Uint64Flag{
			Name:  "balance",
			Usage: "initial balance of the creating account",
		},
		&cli.StringFlag{
			Name:  "salt",
			Usage: "32-byte hex salt; enables salted address derivation",
		},
	},
}

func doCreate(context *cli.Context) error {
	if context.Args().Len() != 1 {
		return fmt.Errorf("expected exactly one argument, the init code in hex")
	}
	initCode, err := hex.DecodeString(strings.TrimPrefix(context.Args().Get(0), "0x"))
	if err != nil {
		return fmt.Errorf("invalid init code: %w", err)
	}

	revision, err := vm.RevisionFromName(context.String("revision"))
	if err != nil {
		return err
	}

	params := interpreter.Parameters{
		Kind:   interpreter.KindContractCreation,
		Sender: vm.Address{0x01},
		Code:   initCode,
		Value:  vm.NewValue(context.Uint64("value")),
		Gas:    vm.Gas(context.Int64("gas")),
	}
	if salt := context.String("salt"); salt != "" {
		raw, err := hex.DecodeString(strings.TrimPrefix(salt, "0x"))
		if err != nil || len(raw) != 32 {
			return fmt.Errorf("salt must be 32 bytes of hex")
		}
		params.Salted = true
		copy(params.Salt[:], raw)
	}

	world := state.NewWorld()
	world.SetBalance(params.Sender, vm.NewValue(context.Uint64("balance")))
	params.Updater = world.Updater()

	in, err := interpreter.NewInterpreter(
		revision,
		gas.NewCalculator(revision),
		code.NewPolicy(revision),
	)
	if err != nil {
		return err
	}

	result, err := in.Run(params)
	if err != nil {
		return err
	}

	used := float64(params.Gas - result.GasLeft)
	if !result.Success {
		if result.HaltReason != nil {
			fmt.Printf("creation halted: %v\n", result.HaltReason)
		} else {
			fmt.Printf("creation rejected\n")
		}
		fmt.Printf("gas used: %sgas\n", unitconv.FormatPrefix(used, unitconv.SI, 1))
		return nil
	}

	fmt.Printf("created: %v\n", result.CreatedAddress)
	fmt.Printf("code size: %d bytes\n", len(result.Output))
	fmt.Printf("gas used: %sgas, left: %sgas\n",
		unitconv.FormatPrefix(used, unitconv.SI, 1),
		unitconv.FormatPrefix(float64(result.GasLeft), unitconv.SI, 1))
	for i, log := range result.Logs {
		fmt.Printf("log %d: %d topics, %d bytes of data\n", i, len(log.Topics), len(log.Data))
	}
	return nil
}
