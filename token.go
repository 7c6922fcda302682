package main

import (
	"errors"
	"strings"

	"golang.org/x/oauth2"
)

const sourceExplicit = "explicit"

// tokenVars are the environment variables consulted for a Hugging Face token, in preference order.
// HUGGINGFACE_TOKEN is the legacy name and must stay last.
var tokenVars = []string{"HF_TOKEN", "HUGGINGFACE_HUB_TOKEN", "HUGGINGFACE_TOKEN"}

var errNoToken = errors.New("no Hugging Face token supplied")

type envGetter func(string) string

// getToken returns explicit if it is non-empty, otherwise the first non-empty value among
// tokenVars. The bool is false when no source supplied a token.
func getToken(explicit string, getter envGetter) (string, bool) {
	tok, _, ok := lookupToken(explicit, getter)
	return tok, ok
}

// lookupToken is getToken, but also reports which source the token came from.
func lookupToken(explicit string, getter envGetter) (token, source string, ok bool) {
	if explicit != "" {
		return explicit, sourceExplicit, true
	}

	for _, k := range tokenVars {
		if v := getter(k); v != "" {
			return v, k, true
		}
	}

	return "", "", false
}

type candidate struct {
	Source string
	Value  string
}

// candidates lists every token source in preference order, including empty ones.
func candidates(explicit string, getter envGetter) []candidate {
	out := []candidate{{Source: sourceExplicit, Value: explicit}}
	for _, k := range tokenVars {
		out = append(out, candidate{Source: k, Value: getter(k)})
	}
	return out
}

// redact hides a token so it can be shown in diagnostics. Tokens of at least 12 characters keep
// their first four so the prefix can still be recognized.
func redact(token string) string {
	r := []rune(token)
	if len(r) < 12 {
		return strings.Repeat("*", len(r))
	}
	return string(r[:4]) + strings.Repeat("*", 8)
}

// envTokenSource resolves the token again on every call.
type envTokenSource struct {
	explicit string
	getter   envGetter
}

// newTokenSource returns an oauth2.TokenSource backed by getToken, suitable for oauth2.NewClient.
func newTokenSource(explicit string, getter envGetter) oauth2.TokenSource {
	return envTokenSource{explicit: explicit, getter: getter}
}

func (s envTokenSource) Token() (*oauth2.Token, error) {
	tok, ok := getToken(s.explicit, s.getter)
	if !ok {
		return nil, errNoToken
	}

	return &oauth2.Token{AccessToken: tok, TokenType: "Bearer"}, nil
}
