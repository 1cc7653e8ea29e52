package controllers

import (
	"errors"
	"fmt"
	"io"
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rios0rios0/cmistools/internal/domain/entities"
)

const (
	flagURL         = "url"
	flagUsername    = "username"
	flagPassword    = "password"
	flagAskPassword = "ask-password"
	flagRepository  = "repository"
	flagTimeout     = "timeout"
	flagRetries     = "retries"
	flagRateLimit   = "rate-limit"
	flagVerbose     = "verbose"
)

// AddConnectionFlags adds the flags shared by every command as persistent flags of cmd.
func AddConnectionFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.String(flagURL, "",
		fmt.Sprintf("Browser Binding service URL (or set %s, default %s)", entities.EnvURL, entities.DefaultURL))
	flags.String(flagUsername, "", fmt.Sprintf("Repository user name (or set %s)", entities.EnvUsername))
	flags.String(flagPassword, "", fmt.Sprintf("Repository password (or set %s)", entities.EnvPassword))
	flags.Bool(flagAskPassword, false, "Prompt for the password when none is configured")
	flags.String(flagRepository, "", "Repository id (default: first repository of the service)")
	flags.Duration(flagTimeout, 0, "Timeout per HTTP request, e.g. 30s (default: none)")
	flags.Int(flagRetries, entities.DefaultRetries, "Retries for failed read requests")
	flags.Float64(flagRateLimit, 0, "Maximum requests per second (default: unlimited)")
	flags.BoolP(flagVerbose, "v", false, "Enable verbose output")
}

// PasswordReader prompts for a password on the given writer.
type PasswordReader func(prompt io.Writer) (string, error)

// ConnectionFlags turns the shared flags of a command into connection settings.
type ConnectionFlags struct {
	readPassword PasswordReader
}

// NewConnectionFlags creates ConnectionFlags prompting on the terminal.
func NewConnectionFlags() *ConnectionFlags {
	return &ConnectionFlags{readPassword: readTerminalPassword}
}

// NewConnectionFlagsWithReader creates ConnectionFlags with a custom password prompt.
func NewConnectionFlagsWithReader(reader PasswordReader) *ConnectionFlags {
	return &ConnectionFlags{readPassword: reader}
}

// Settings resolves the connection settings of cmd: flags first, then environment, then defaults.
func (it *ConnectionFlags) Settings(cmd *cobra.Command) (entities.ConnectionSettings, error) {
	flags := cmd.Flags()

	if verbose, _ := flags.GetBool(flagVerbose); verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	url, _ := flags.GetString(flagURL)
	username, _ := flags.GetString(flagUsername)
	password, _ := flags.GetString(flagPassword)
	settings := entities.NewConnectionSettings(url, username, password)

	settings.RepositoryID, _ = flags.GetString(flagRepository)
	settings.Timeout, _ = flags.GetDuration(flagTimeout)
	if retries, err := flags.GetInt(flagRetries); err == nil {
		settings.Retries = retries
	}
	settings.RateLimit, _ = flags.GetFloat64(flagRateLimit)

	if askPassword, _ := flags.GetBool(flagAskPassword); askPassword && settings.Password == "" {
		password, err := it.readPassword(cmd.ErrOrStderr())
		if err != nil {
			return settings, fmt.Errorf("failed to read password: %w", err)
		}
		settings.Password = password
	}

	return settings, nil
}

func readTerminalPassword(prompt io.Writer) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", errors.New("standard input is not a terminal")
	}

	fmt.Fprint(prompt, "Password: ")
	password, err := term.ReadPassword(fd)
	fmt.Fprintln(prompt)
	if err != nil {
		return "", err
	}
	return string(password), nil
}
