package main

import (
	"io"
	"net/http"
	"os"
)

type HeaderCmd struct {
	explicitFlags

	OutputName string `name:"output-name" default:"header" help:"Name of the GitHub Actions output to write the header to."`
}

func (c *HeaderCmd) Help() string {
	return `
This command resolves a Hugging Face access token the same way as "resolve" and prints it as an
HTTP Authorization header, ready to pass to curl.

Example:
	curl -H "$(hf-token header)" https://huggingface.co/api/whoami-v2
	`
}

func (c *HeaderCmd) Run() error {
	return c.run(os.Getenv, os.Stdin)
}

func (c *HeaderCmd) run(getter envGetter, stdin io.Reader) error {
	explicit, err := c.explicit(stdin)
	if err != nil {
		return err
	}

	tok, err := newTokenSource(explicit, getter).Token()
	if err != nil {
		return err
	}

	logger.Mask(tok.AccessToken)
	_, src, _ := lookupToken(explicit, getter)
	logger.Noticef("Using token from %s", src)

	req := &http.Request{Header: http.Header{}}
	tok.SetAuthHeader(req)

	return logger.Output(c.OutputName, "Authorization: "+req.Header.Get("Authorization"))
}
