package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/NethermindEth/starkstate/adapters/core2sn"
	"github.com/NethermindEth/starkstate/adapters/sn2core"
	"github.com/NethermindEth/starkstate/core"
	"github.com/NethermindEth/starkstate/core/felt"
	"github.com/NethermindEth/starkstate/db"
	_ "github.com/NethermindEth/starkstate/encoder/registry"
	"github.com/NethermindEth/starkstate/utils"
)

var Version string

const (
	logLevelF   = "log-level"
	colourF     = "colour"
	dbPathF     = "db-path"
	classHashF  = "class-hash"
	declaredAtF = "declared-at"

	defaultColour = true

	logLevelFlagUsage = "Options: debug, info, warn, error."
	colourUsage       = "Use colour in log outputs."
	dbPathUsage       = "Location of the database files."
	classHashUsage    = "Class hash, hex encoded."
	declaredAtUsage   = "Block number the class was declared at."
	inspectLong       = "Parse a class definition file and print a summary of its contents."
	repackLong        = "Parse a class definition file and re-emit it in normalized form."
	packLong          = "Parse a class definition file and store it under its class hash."
	unpackLong        = "Load a stored class and emit its wire form."
)

func NewCmd() *cobra.Command {
	logLevel := utils.INFO
	starkclassCmd := &cobra.Command{
		Use:     "starkclass [command]",
		Short:   "Starknet contract class toolbox.",
		Version: Version,
	}
	starkclassCmd.PersistentFlags().Var(&logLevel, logLevelF, logLevelFlagUsage)
	starkclassCmd.PersistentFlags().Bool(colourF, defaultColour, colourUsage)

	starkclassCmd.AddCommand(InspectCmd(), RepackCmd(), PackCmd(&logLevel), UnpackCmd(&logLevel))
	return starkclassCmd
}

func InspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [file]",
		Short: "Summarize a class definition file",
		Long:  inspectLong,
		Args:  cobra.ExactArgs(1),
		RunE:  inspect,
	}
}

func RepackCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repack [file]",
		Short: "Normalize a class definition file",
		Long:  repackLong,
		Args:  cobra.ExactArgs(1),
		RunE:  repack,
	}
}

func PackCmd(logLevel *utils.LogLevel) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pack [file]",
		Short: "Store a class definition in the database",
		Long:  packLong,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return pack(cmd, args, *logLevel)
		},
	}
	cmd.Flags().String(dbPathF, "", dbPathUsage)
	cmd.Flags().String(classHashF, "", classHashUsage)
	cmd.Flags().Uint64(declaredAtF, 0, declaredAtUsage)
	return cmd
}

func UnpackCmd(logLevel *utils.LogLevel) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unpack",
		Short: "Emit a stored class in wire form",
		Long:  unpackLong,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return unpack(cmd, *logLevel)
		},
	}
	cmd.Flags().String(dbPathF, "", dbPathUsage)
	cmd.Flags().String(classHashF, "", classHashUsage)
	return cmd
}

func inspect(cmd *cobra.Command, args []string) error {
	declared, err := declaredClassFromFile(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch class := declared.Class.(type) {
	case *core.SierraClass:
		fmt.Fprintf(out, "kind: sierra\n")
		fmt.Fprintf(out, "compiler version: %s\n", class.SemanticVersion)
		fmt.Fprintf(out, "sierra program length: %d\n", declared.SierraProgramLength)
		fmt.Fprintf(out, "abi length: %d\n", declared.AbiLength)
		fmt.Fprintf(out, "entry points: %d external, %d constructor, %d l1 handler\n",
			len(class.EntryPoints.External),
			len(class.EntryPoints.Constructor),
			len(class.EntryPoints.L1Handler))
	case *core.DeprecatedCairoClass:
		fmt.Fprintf(out, "kind: cairo 0\n")
		fmt.Fprintf(out, "abi length: %d\n", declared.AbiLength)
		fmt.Fprintf(out, "entry points: %d external, %d constructor, %d l1 handler\n",
			len(class.Externals),
			len(class.Constructors),
			len(class.L1Handlers))
	}
	return nil
}

func repack(cmd *cobra.Command, args []string) error {
	declared, err := declaredClassFromFile(args[0])
	if err != nil {
		return err
	}
	return printWireClass(cmd, declared)
}

func pack(cmd *cobra.Command, args []string, logLevel utils.LogLevel) error {
	classHash, err := classHashFlag(cmd)
	if err != nil {
		return err
	}
	declaredAt, err := cmd.Flags().GetUint64(declaredAtF)
	if err != nil {
		return err
	}
	declared, err := declaredClassFromFile(args[0])
	if err != nil {
		return err
	}

	history, closeFn, err := openHistory(cmd, logLevel)
	if err != nil {
		return err
	}
	defer closeFn()

	return history.PutDeclaredClass(classHash, declared.Class, declared.Abi, declaredAt)
}

func unpack(cmd *cobra.Command, logLevel utils.LogLevel) error {
	classHash, err := classHashFlag(cmd)
	if err != nil {
		return err
	}

	history, closeFn, err := openHistory(cmd, logLevel)
	if err != nil {
		return err
	}
	defer closeFn()

	declared, err := history.DeclaredClass(classHash)
	if err != nil {
		return err
	}
	return printWireClass(cmd, declared)
}

func declaredClassFromFile(path string) (*core.DeclaredClass, error) {
	definition, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return sn2core.AdaptDeclaredClass(definition, 0)
}

func printWireClass(cmd *cobra.Command, declared *core.DeclaredClass) error {
	wire, err := core2sn.AdaptDeclaredClass(declared)
	if err != nil {
		return err
	}
	encoded, err := json.MarshalIndent(wire, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(encoded))
	return nil
}

func classHashFlag(cmd *cobra.Command) (*felt.Felt, error) {
	hashStr, err := cmd.Flags().GetString(classHashF)
	if err != nil {
		return nil, err
	}
	return new(felt.Felt).SetString(hashStr)
}

func openHistory(cmd *cobra.Command, logLevel utils.LogLevel) (*core.History, func(), error) {
	dbPath, err := cmd.Flags().GetString(dbPathF)
	if err != nil {
		return nil, nil, err
	}
	colour, err := cmd.Flags().GetBool(colourF)
	if err != nil {
		return nil, nil, err
	}
	log, err := utils.NewZapLogger(logLevel, colour)
	if err != nil {
		return nil, nil, err
	}

	database, err := db.New(dbPath, log)
	if err != nil {
		return nil, nil, err
	}
	closeFn := func() {
		if closeErr := database.Close(); closeErr != nil {
			log.Errorw("Error closing database", "err", closeErr)
		}
	}
	return core.NewHistory(database, log), closeFn, nil
}
