// Package grant resolves the grant request a dApp encodes in the dashboard URL
// and builds the authz messages a wallet signs to accept it.
package grant

import (
	"encoding/json"
	"net/url"
	"strings"

	"github.com/abstraxion/abstraxion-dashboard/libs/go/constants"
)

// GrantRequest describes the permissions a third party (the grantee) asks the
// connected account to delegate. It is derived from the query string on every
// request and never stored.
type GrantRequest struct {
	Grantee   string   `json:"grantee"`
	Bank      []string `json:"bank"`
	Contracts []string `json:"contracts"`
	Stake     bool     `json:"stake"`
}

// Active reports whether the request names a grantee and asks for at least
// one permission.
func (r GrantRequest) Active() bool {
	if r.Grantee == "" {
		return false
	}
	return len(r.Contracts) > 0 || r.Stake || len(r.Bank) > 0
}

// Resolve builds a GrantRequest from raw parameter values. A nil pointer means
// the parameter was absent. Malformed input degrades to empty values; Resolve
// never fails.
func Resolve(rawContracts, rawBank, rawGrantee, rawStake *string) GrantRequest {
	req := GrantRequest{
		Bank:      parseBank(rawBank),
		Contracts: parseContracts(rawContracts),
		Stake:     rawStake != nil && *rawStake != "",
	}
	if rawGrantee != nil {
		req.Grantee = *rawGrantee
	}
	return req
}

// ResolveQuery maps the dashboard query keys onto Resolve.
func ResolveQuery(query url.Values) GrantRequest {
	return Resolve(
		lookup(query, constants.QueryContracts),
		lookup(query, constants.QueryBank),
		lookup(query, constants.QueryGrantee),
		lookup(query, constants.QueryStake),
	)
}

func lookup(query url.Values, key string) *string {
	if !query.Has(key) {
		return nil
	}
	v := query.Get(key)
	return &v
}

// parseBank accepts only a JSON array of strings. There is no comma fallback.
func parseBank(raw *string) []string {
	if raw == nil {
		return []string{}
	}
	list, ok := parseStringArray(*raw)
	if !ok {
		return []string{}
	}
	return list
}

// parseContracts accepts a JSON array of strings and otherwise splits on ",".
// An empty but present value yields a single empty identifier.
func parseContracts(raw *string) []string {
	if raw == nil {
		return []string{}
	}
	if list, ok := parseStringArray(*raw); ok {
		return list
	}
	return strings.Split(*raw, ",")
}

// parseStringArray decodes raw as a JSON array of strings. A JSON null decodes
// successfully into an empty list.
func parseStringArray(raw string) ([]string, bool) {
	var list []string
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		return nil, false
	}
	if list == nil {
		list = []string{}
	}
	return list, true
}
