package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"familytree/internal/errors"
)

// Supported subcommands:
// - token:    Sign an administrator token with the configured JWT secret
// - validate: Check an import file without sending it
// - import:   Send an import file to a running server
// - audit:    Print the integrity report of a running server

func main() {
	tokenCmd := flag.NewFlagSet("token", flag.ExitOnError)
	validateCmd := flag.NewFlagSet("validate", flag.ExitOnError)
	importCmd := flag.NewFlagSet("import", flag.ExitOnError)
	auditCmd := flag.NewFlagSet("audit", flag.ExitOnError)

	// token parameters
	tokenUID := tokenCmd.String("uid", "", "Administrator user ID")
	tokenEmail := tokenCmd.String("email", "", "Administrator email")
	tokenRole := tokenCmd.String("role", "editor", "Role (super-admin, editor)")
	tokenSurnames := tokenCmd.String("surnames", "", "Comma separated surnames an editor may see; empty grants all")
	tokenTTL := tokenCmd.Duration("ttl", 0, "Token lifetime; defaults to auth.tokenTtl")

	// validate parameters
	validateFile := validateCmd.String("file", "", "Import file with a records array")

	// import parameters
	importFile := importCmd.String("file", "", "Import file with a records array")
	importServer := importCmd.String("server", "http://localhost:8080", "Server base URL")
	importToken := importCmd.String("token", os.Getenv("FAMILYTREE_TOKEN"), "Super admin bearer token")

	// audit parameters
	auditServer := auditCmd.String("server", "http://localhost:8080", "Server base URL")
	auditToken := auditCmd.String("token", os.Getenv("FAMILYTREE_TOKEN"), "Super admin bearer token")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	flags := ctlFlags{
		Token: tokenFlags{
			cmd:      tokenCmd,
			uid:      tokenUID,
			email:    tokenEmail,
			role:     tokenRole,
			surnames: tokenSurnames,
			ttl:      tokenTTL,
		},
		Validate: validateFlags{
			cmd:  validateCmd,
			file: validateFile,
		},
		Import: importFlags{
			cmd:    importCmd,
			file:   importFile,
			server: importServer,
			token:  importToken,
		},
		Audit: auditFlags{
			cmd:    auditCmd,
			server: auditServer,
			token:  auditToken,
		},
	}

	if err := runSubcommand(ctx, &flags); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type ctlFlags struct {
	Token    tokenFlags
	Validate validateFlags
	Import   importFlags
	Audit    auditFlags
}

type tokenFlags struct {
	cmd      *flag.FlagSet
	uid      *string
	email    *string
	role     *string
	surnames *string
	ttl      *time.Duration
}

type validateFlags struct {
	cmd  *flag.FlagSet
	file *string
}

type importFlags struct {
	cmd    *flag.FlagSet
	file   *string
	server *string
	token  *string
}

type auditFlags struct {
	cmd    *flag.FlagSet
	server *string
	token  *string
}

func runSubcommand(ctx context.Context, flags *ctlFlags) error {
	switch os.Args[1] {
	case "token":
		return handleToken(flags)
	case "validate":
		return handleValidate(flags)
	case "import":
		return handleImport(ctx, flags)
	case "audit":
		return handleAudit(ctx, flags)
	default:
		printUsage()

		return errors.New("unknown subcommand")
	}
}

func handleToken(flags *ctlFlags) error {
	if err := flags.Token.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse token flags")
	}

	return runToken(os.Stdout, flags.Token)
}

func handleValidate(flags *ctlFlags) error {
	if err := flags.Validate.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse validate flags")
	}
	if *flags.Validate.file == "" {
		return errors.New("-file is required")
	}

	_, err := loadImportFile(os.Stdout, *flags.Validate.file)

	return err
}

func handleImport(ctx context.Context, flags *ctlFlags) error {
	if err := flags.Import.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse import flags")
	}
	if *flags.Import.file == "" {
		return errors.New("-file is required")
	}

	return runImport(ctx, os.Stdout, flags.Import)
}

func handleAudit(ctx context.Context, flags *ctlFlags) error {
	if err := flags.Audit.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse audit flags")
	}

	return runAudit(ctx, os.Stdout, flags.Audit)
}

func printUsage() {
	fmt.Println(`familyctl - administration tool for the family tree service

Usage:
  familyctl <command> [flags]

Commands:
  token     Sign an administrator token with the configured JWT secret
  validate  Check an import file without sending it
  import    Send an import file to a running server
  audit     Print the integrity report of a running server

Examples:
  familyctl token -uid alice -role super-admin -ttl 1h
  familyctl token -uid bob -role editor -surnames SHAH,PATEL
  familyctl validate -file people.json
  familyctl import -file people.json -token $FAMILYTREE_TOKEN
  familyctl audit -server https://family.example.com`)
}
