package main

import (
	"fmt"
	"io"
	"os"
	"strings"
)

type explicitFlags struct {
	Token      string `short:"t" xor:"token" help:"Explicit token. Takes precedence over every environment variable when non-empty."`
	TokenStdin bool   `name:"token-stdin" xor:"token" help:"Read the explicit token from standard input, which must be a pipe."`
}

// explicit returns the caller-supplied override, which may be empty.
func (f explicitFlags) explicit(stdin io.Reader) (string, error) {
	if !f.TokenStdin {
		return f.Token, nil
	}

	tok, err := tokenFromStdin(stdin)
	if err != nil {
		return "", fmt.Errorf("read --token-stdin: %w", err)
	}
	return tok, nil
}

type ResolveCmd struct {
	explicitFlags

	Optional   bool   `help:"Succeed without output when no token is found."`
	OutputName string `name:"output-name" default:"token" help:"Name of the GitHub Actions output to write the token to."`
}

func (c *ResolveCmd) Help() string {
	return `
This command resolves a Hugging Face access token and prints it to standard output, allowing you to
capture it in a script. All other output is printed to standard error.

The first non-empty value among the following sources wins, in preference order:

	- the --token flag (or --token-stdin)
	- HF_TOKEN
	- HUGGINGFACE_HUB_TOKEN
	- HUGGINGFACE_TOKEN (legacy)

Variables that are set but empty are skipped.

When running in GitHub Actions, the token is masked in the job log and, if GITHUB_OUTPUT is set,
written to the step output named by --output-name instead of standard output.

If no token is found the command fails, unless --optional is given.

Examples:
	# Export the resolved token for a download script
	export HF_TOKEN="$(hf-token resolve)"

	# Pass a token without putting it on the command line
	cat ~/secrets/hf | hf-token resolve --token-stdin
	`
}

func (c *ResolveCmd) Run() error {
	return c.run(os.Getenv, os.Stdin)
}

func (c *ResolveCmd) run(getter envGetter, stdin io.Reader) error {
	explicit, err := c.explicit(stdin)
	if err != nil {
		return err
	}

	tok, src, ok := lookupToken(explicit, getter)
	if !ok {
		if c.Optional {
			logger.Warningf("no Hugging Face token found in %s, continuing without one", strings.Join(tokenVars, ", "))
			return nil
		}
		return errNoToken
	}

	logger.Mask(tok)
	logger.Noticef("Using token from %s", src)

	return logger.Output(c.OutputName, tok)
}
