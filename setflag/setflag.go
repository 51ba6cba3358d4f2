// Package setflag is a flag value that accepts a comma-separated subset of a
// fixed list of options.
package setflag

import (
	"fmt"
	"strings"
)

func New(options ...string) *SetFlag {
	sf := &SetFlag{
		options: options,
		values:  make(map[string]struct{}, len(options)),
	}
	return sf
}

// SetFlag implements pflag.Value.
type SetFlag struct {
	options []string
	values  map[string]struct{}
}

// List returns the chosen values in option order.
func (sf *SetFlag) List() []string {
	var values []string
	for _, opt := range sf.options {
		if _, has := sf.values[opt]; has {
			values = append(values, opt)
		}
	}
	return values
}

func (sf *SetFlag) String() string {
	return strings.Join(sf.List(), ",")
}

func (sf *SetFlag) Type() string { return "set" }

func (sf *SetFlag) Set(value string) error {
	for _, str := range strings.Split(value, ",") {
		str = strings.TrimSpace(str)
		if str == "" {
			continue
		}
		if !sf.supports(str) {
			return fmt.Errorf("unsupported value '%s', want one of %s", str, strings.Join(sf.options, ", "))
		}
		sf.values[str] = struct{}{}
	}
	return nil
}

func (sf *SetFlag) supports(value string) bool {
	for _, opt := range sf.options {
		if opt == value {
			return true
		}
	}
	return false
}
