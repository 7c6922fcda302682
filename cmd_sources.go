package main

import (
	"os"
	"strings"
)

type SourcesCmd struct {
	explicitFlags
}

func (c *SourcesCmd) Help() string {
	return `
This command lists every place a Hugging Face token is looked up, in preference order, and marks
the one that would be used with an asterisk. Values are redacted.

Example:
	$ HF_TOKEN= HUGGINGFACE_TOKEN=hf_legacyvalue hf-token sources
	Token sources, in preference order
	  1 explicit               unset
	  2 HF_TOKEN               unset
	  3 HUGGINGFACE_HUB_TOKEN  unset
	* 4 HUGGINGFACE_TOKEN      hf_l********
	`
}

func (c *SourcesCmd) Run() error {
	explicit, err := c.explicit(os.Stdin)
	if err != nil {
		return err
	}

	c.print(explicit, os.Getenv)
	return nil
}

func (c *SourcesCmd) print(explicit string, getter envGetter) {
	_, winner, ok := lookupToken(explicit, getter)

	end := logger.Group("Token sources, in preference order")
	defer end()

	for i, cand := range candidates(explicit, getter) {
		mark := " "
		if ok && cand.Source == winner {
			mark = "*"
		}

		value := "unset"
		if cand.Value != "" {
			value = redact(cand.Value)
		}

		logger.Printf("%s %d %-22s %s\n", mark, i+1, cand.Source, value)
	}

	if !ok {
		logger.Warningf("no Hugging Face token found in %s", strings.Join(tokenVars, ", "))
	}
}
