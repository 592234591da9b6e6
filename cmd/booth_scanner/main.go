// booth_scanner is the gate-side companion of booth_engine. It submits
// scanned QR payloads or typed manual codes to the checkpoint endpoints and
// mints operator tokens from the shared auth secret.
//
// With a code argument it performs a single call. Without one it reads codes
// line by line from stdin, prompting when stdin is a terminal, so a keyboard
// wedge scanner or a pipe can drive it.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/rktclgh/fairplay-booth/internal/auth"
	"github.com/rktclgh/fairplay-booth/internal/clock"
	"github.com/rktclgh/fairplay-booth/internal/domain"
	"github.com/rktclgh/fairplay-booth/internal/scanner"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	// a missing .env is fine; flags and the environment still apply
	_ = godotenv.Load()

	if len(args) == 0 || args[0] == "-h" || args[0] == "--help" || args[0] == "help" {
		printUsage()
		return nil
	}

	switch args[0] {
	case "check-in", "check-out", "validate":
		return runScan(args[0], args[1:])
	case "token":
		return runToken(args[1:])
	default:
		printUsage()
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func printUsage() {
	fmt.Fprint(os.Stderr, `booth_scanner drives the booth engine checkpoint from a gate device.

Usage:
  booth_scanner check-in  [flags] [code]
  booth_scanner check-out [flags] [code]
  booth_scanner validate  [flags] [code]
  booth_scanner token     [flags]

Without a code argument, codes are read one per line from stdin.
Run "booth_scanner <command> --help" for the flags of a command.
`)
}

func runScan(command string, args []string) error {
	var (
		url     string
		token   string
		kind    string
		timeout time.Duration
	)

	flagSet := pflag.NewFlagSet(command, pflag.ContinueOnError)
	flagSet.StringVar(&url, "url", os.Getenv("BOOTH_URL"), "booth engine base url (env BOOTH_URL)")
	flagSet.StringVar(&token, "token", os.Getenv("BOOTH_TOKEN"), "operator bearer token (env BOOTH_TOKEN)")
	flagSet.StringVar(&kind, "kind", "", "code kind: qr or manual (detected from the code when empty)")
	flagSet.DurationVar(&timeout, "timeout", 5*time.Second, "per request timeout")
	flagSet.BoolP("help", "h", false, "show help")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			printFlags(command, flagSet)
			return nil
		}
		return err
	}
	if help, _ := flagSet.GetBool("help"); help {
		printFlags(command, flagSet)
		return nil
	}

	if kind != "" && !domain.CredentialKind(kind).Valid() {
		return fmt.Errorf("--kind must be qr or manual, got %q", kind)
	}

	client, err := scanner.NewClient(url, token)
	if err != nil {
		return err
	}

	scan := func(code string) error {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		return submit(ctx, os.Stdout, client, command, code, codeKind(code, kind))
	}

	if rest := flagSet.Args(); len(rest) > 0 {
		if len(rest) > 1 {
			return fmt.Errorf("expected one code, got %d arguments", len(rest))
		}
		return scan(rest[0])
	}

	return scanLoop(os.Stdin, term.IsTerminal(int(os.Stdin.Fd())), scan)
}

// scanLoop keeps going after a rejected code; only read errors stop it.
func scanLoop(in io.Reader, interactive bool, scan func(code string) error) error {
	reader := bufio.NewScanner(in)
	for {
		if interactive {
			fmt.Fprint(os.Stderr, "code> ")
		}
		if !reader.Scan() {
			return reader.Err()
		}
		code := strings.TrimSpace(reader.Text())
		if code == "" {
			continue
		}
		if err := scan(code); err != nil {
			fmt.Fprintf(os.Stderr, "rejected: %v\n", err)
		}
	}
}

func codeKind(code, explicit string) string {
	if explicit != "" {
		return explicit
	}
	if domain.IsManualCode(code) {
		return string(domain.KindManual)
	}
	return string(domain.KindQR)
}

func submit(ctx context.Context, out io.Writer, client *scanner.Client, command, code, kind string) error {
	switch command {
	case "check-in", "check-out":
		call := client.CheckIn
		if command == "check-out" {
			call = client.CheckOut
		}
		res, err := call(ctx, code, kind)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s\t%s\t%s\t%s\n", res.Status, res.AttendeeName, res.ReservationID, res.Message)
	case "validate":
		cred, err := client.Validate(ctx, code, kind)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "VALID\t%s\texpires %s\n", cred.ReservationID, cred.ExpiresAt)
	}
	return nil
}

func runToken(args []string) error {
	var (
		secret string
		sub    string
		name   string
		role   string
		ttl    time.Duration
	)

	flagSet := pflag.NewFlagSet("token", pflag.ContinueOnError)
	flagSet.StringVar(&secret, "secret", os.Getenv("AUTH_SECRET"), "shared auth secret (env AUTH_SECRET, prompted when empty)")
	flagSet.StringVar(&sub, "sub", "", "actor id (random when empty)")
	flagSet.StringVar(&name, "name", "Gate operator", "actor display name")
	flagSet.StringVar(&role, "role", string(domain.RoleOperator), "actor role: operator or attendee")
	flagSet.DurationVar(&ttl, "ttl", 12*time.Hour, "token lifetime")
	flagSet.BoolP("help", "h", false, "show help")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			printFlags("token", flagSet)
			return nil
		}
		return err
	}
	if help, _ := flagSet.GetBool("help"); help {
		printFlags("token", flagSet)
		return nil
	}

	if r := domain.Role(role); r != domain.RoleOperator && r != domain.RoleAttendee {
		return fmt.Errorf("--role must be operator or attendee, got %q", role)
	}
	if sub == "" {
		sub = uuid.NewString()
	}

	if secret == "" {
		var err error
		if secret, err = promptSecret(); err != nil {
			return err
		}
	}

	tokens, err := auth.NewTokens([]byte(secret), ttl, clock.Real())
	if err != nil {
		return err
	}
	signed, err := tokens.Issue(domain.Actor{ID: sub, Name: name, Role: domain.Role(role)})
	if err != nil {
		return err
	}

	fmt.Fprintln(os.Stdout, signed)
	return nil
}

func promptSecret() (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", errors.New("no auth secret: set --secret or AUTH_SECRET")
	}

	fmt.Fprint(os.Stderr, "Auth secret: ")
	raw, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("read secret: %w", err)
	}
	return strings.TrimSpace(string(raw)), nil
}

func printFlags(command string, flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, "Usage: booth_scanner %s [flags]\n\nFlags:\n", command)
	flagSet.SetOutput(os.Stderr)
	flagSet.PrintDefaults()
}
