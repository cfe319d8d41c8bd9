package grant

import (
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/abstraxion/abstraxion-dashboard/libs/go/constants"
	"github.com/btcsuite/btcd/btcutil/bech32"
)

// Type URLs of the messages and authorizations a grant is built from.
const (
	MsgGrantTypeURL                       = "/cosmos.authz.v1beta1.MsgGrant"
	GenericAuthorizationTypeURL           = "/cosmos.authz.v1beta1.GenericAuthorization"
	SendAuthorizationTypeURL              = "/cosmos.bank.v1beta1.SendAuthorization"
	ContractExecutionAuthorizationTypeURL = "/cosmwasm.wasm.v1.ContractExecutionAuthorization"
	MaxCallsLimitTypeURL                  = "/cosmwasm.wasm.v1.MaxCallsLimit"
	AllowAllMessagesFilterTypeURL         = "/cosmwasm.wasm.v1.AllowAllMessagesFilter"
)

// StakingMsgTypeURLs are granted through generic authorizations when a
// request asks for staking permissions.
var StakingMsgTypeURLs = []string{
	"/cosmos.staking.v1beta1.MsgDelegate",
	"/cosmos.staking.v1beta1.MsgUndelegate",
	"/cosmos.staking.v1beta1.MsgBeginRedelegate",
	"/cosmos.staking.v1beta1.MsgCancelUnbondingDelegation",
	"/cosmos.distribution.v1beta1.MsgWithdrawDelegatorReward",
}

const (
	// DefaultTTL is how long a grant stays valid when no TTL is configured.
	DefaultTTL = 90 * 24 * time.Hour
	// DefaultMaxCalls bounds each contract execution grant.
	DefaultMaxCalls uint64 = 255
)

var (
	ErrInactiveRequest = errors.New("grant request is not active")
	ErrInvalidAddress  = errors.New("invalid bech32 address")
	ErrInvalidCoin     = errors.New("invalid coin")
)

var (
	coinPattern   = regexp.MustCompile(`^([0-9]+)([a-zA-Z][a-zA-Z0-9/:._-]{2,127})$`)
	denomPattern  = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9/:._-]{2,127}$`)
	amountPattern = regexp.MustCompile(`^[0-9]+$`)
)

// MessageOptions tunes BuildMessages. Zero values fall back to defaults.
type MessageOptions struct {
	Now      time.Time
	TTL      time.Duration
	MaxCalls uint64
	Prefix   string

	// DenomAmount is the spend limit given to bank entries that name only a
	// denom. Empty means such entries are rejected.
	DenomAmount string
}

// Coin is an amount of a single denom. Amount is kept as a decimal string.
type Coin struct {
	Denom  string `json:"denom"`
	Amount string `json:"amount"`
}

// Message is an encoded message ready to be signed by a wallet.
type Message struct {
	TypeURL string   `json:"typeUrl"`
	Value   MsgGrant `json:"value"`
}

type MsgGrant struct {
	Granter string `json:"granter"`
	Grantee string `json:"grantee"`
	Grant   Grant  `json:"grant"`
}

type Grant struct {
	Authorization any       `json:"authorization"`
	Expiration    time.Time `json:"expiration"`
}

type GenericAuthorization struct {
	Type string `json:"@type"`
	Msg  string `json:"msg"`
}

type SendAuthorization struct {
	Type       string `json:"@type"`
	SpendLimit []Coin `json:"spend_limit"`
}

type ContractExecutionAuthorization struct {
	Type   string          `json:"@type"`
	Grants []ContractGrant `json:"grants"`
}

type ContractGrant struct {
	Contract string        `json:"contract"`
	Limit    MaxCallsLimit `json:"limit"`
	Filter   MessageFilter `json:"filter"`
}

type MaxCallsLimit struct {
	Type      string `json:"@type"`
	Remaining string `json:"remaining"`
}

type MessageFilter struct {
	Type string `json:"@type"`
}

// ParseCoin parses a coin string such as "1000uxion".
func ParseCoin(raw string) (Coin, error) {
	m := coinPattern.FindStringSubmatch(raw)
	if m == nil {
		return Coin{}, fmt.Errorf("%w: %q", ErrInvalidCoin, raw)
	}
	return Coin{Amount: m[1], Denom: m[2]}, nil
}

// ValidateAddress checks that addr is a bech32 address with the given prefix.
func ValidateAddress(addr, prefix string) error {
	hrp, _, err := bech32.Decode(addr)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrInvalidAddress, addr, err)
	}
	if hrp != prefix {
		return fmt.Errorf("%w: %q has prefix %q, want %q", ErrInvalidAddress, addr, hrp, prefix)
	}
	return nil
}

// BuildMessages returns the MsgGrant messages the granter signs to accept req.
// Contracts share one execution authorization, staking messages get one
// generic authorization each and bank denoms share one send authorization.
func BuildMessages(granter string, req GrantRequest, opts MessageOptions) ([]Message, error) {
	if !req.Active() {
		return nil, ErrInactiveRequest
	}
	opts = opts.withDefaults()

	if err := ValidateAddress(granter, opts.Prefix); err != nil {
		return nil, fmt.Errorf("granter: %w", err)
	}
	if err := ValidateAddress(req.Grantee, opts.Prefix); err != nil {
		return nil, fmt.Errorf("grantee: %w", err)
	}

	expiration := opts.Now.Add(opts.TTL).UTC()
	wrap := func(authorization any) Message {
		return Message{
			TypeURL: MsgGrantTypeURL,
			Value: MsgGrant{
				Granter: granter,
				Grantee: req.Grantee,
				Grant: Grant{
					Authorization: authorization,
					Expiration:    expiration,
				},
			},
		}
	}

	var msgs []Message

	if len(req.Contracts) > 0 {
		auth := ContractExecutionAuthorization{Type: ContractExecutionAuthorizationTypeURL}
		for _, contract := range req.Contracts {
			if err := ValidateAddress(contract, opts.Prefix); err != nil {
				return nil, fmt.Errorf("contract: %w", err)
			}
			auth.Grants = append(auth.Grants, ContractGrant{
				Contract: contract,
				Limit: MaxCallsLimit{
					Type:      MaxCallsLimitTypeURL,
					Remaining: fmt.Sprintf("%d", opts.MaxCalls),
				},
				Filter: MessageFilter{Type: AllowAllMessagesFilterTypeURL},
			})
		}
		msgs = append(msgs, wrap(auth))
	}

	if req.Stake {
		for _, typeURL := range StakingMsgTypeURLs {
			msgs = append(msgs, wrap(GenericAuthorization{
				Type: GenericAuthorizationTypeURL,
				Msg:  typeURL,
			}))
		}
	}

	if len(req.Bank) > 0 {
		auth := SendAuthorization{Type: SendAuthorizationTypeURL}
		for _, raw := range req.Bank {
			coin, err := parseBankEntry(raw, opts.DenomAmount)
			if err != nil {
				return nil, fmt.Errorf("bank: %w", err)
			}
			auth.SpendLimit = append(auth.SpendLimit, coin)
		}
		msgs = append(msgs, wrap(auth))
	}

	return msgs, nil
}

// parseBankEntry accepts "<amount><denom>" or, when denomAmount is set, a bare
// denom limited to denomAmount.
func parseBankEntry(raw, denomAmount string) (Coin, error) {
	if coin, err := ParseCoin(raw); err == nil {
		return coin, nil
	}
	if !denomPattern.MatchString(raw) {
		return Coin{}, fmt.Errorf("%w: %q", ErrInvalidCoin, raw)
	}
	if denomAmount == "" {
		return Coin{}, fmt.Errorf("%w: %q has no amount", ErrInvalidCoin, raw)
	}
	if !amountPattern.MatchString(denomAmount) {
		return Coin{}, fmt.Errorf("%w: amount %q for %q", ErrInvalidCoin, denomAmount, raw)
	}
	return Coin{Denom: raw, Amount: denomAmount}, nil
}

func (o MessageOptions) withDefaults() MessageOptions {
	if o.Now.IsZero() {
		o.Now = time.Now()
	}
	if o.TTL <= 0 {
		o.TTL = DefaultTTL
	}
	if o.MaxCalls == 0 {
		o.MaxCalls = DefaultMaxCalls
	}
	if o.Prefix == "" {
		o.Prefix = constants.XionBech32Prefix
	}
	return o
}
