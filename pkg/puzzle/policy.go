package puzzle

import (
	"fmt"
	"strings"
)

// Policy decides what happens when a single record fails to parse or validate.
type Policy string

const (
	// PolicyAbort fails the whole computation on the first bad record.
	PolicyAbort Policy = "abort"

	// PolicySkip drops the bad record and continues.
	PolicySkip Policy = "skip"
)

// DefaultPolicy is used when no policy is configured.
const DefaultPolicy = PolicyAbort

// ParsePolicy converts a configuration or flag value into a Policy.
// The empty string yields DefaultPolicy.
func ParsePolicy(s string) (Policy, error) {
	switch Policy(strings.ToLower(strings.TrimSpace(s))) {
	case "":
		return DefaultPolicy, nil
	case PolicyAbort:
		return PolicyAbort, nil
	case PolicySkip:
		return PolicySkip, nil
	default:
		return "", fmt.Errorf("invalid error policy %q (must be abort or skip)", s)
	}
}

// Handle applies the policy to a per-record error. It returns err unchanged
// under PolicyAbort and nil under PolicySkip. A nil err is always nil.
func (p Policy) Handle(err error) error {
	if err == nil || p == PolicySkip {
		return nil
	}
	return err
}

func (p Policy) String() string {
	if p == "" {
		return string(DefaultPolicy)
	}
	return string(p)
}
