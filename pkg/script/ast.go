package script

import (
	"fmt"
	"strconv"

	"github.com/alecthomas/participle/v2/lexer"

	"github.com/OpenTraceLab/prepack/pkg/clock"
)

// Script is a parsed pre-pack script.
type Script struct {
	Pos lexer.Position

	Calls []*AddClock `parser:"@@*"`
}

// AddClock is a single ctx.addClock(name, frequency) statement.
type AddClock struct {
	Pos lexer.Position

	Name      string `parser:"\"ctx\" \".\" \"addClock\" \"(\" @String \",\""`
	Frequency string `parser:"@Integer \")\""`
}

// FrequencyMHz returns the decoded frequency argument.
func (c *AddClock) FrequencyMHz() (int, error) {
	mhz, err := strconv.Atoi(c.Frequency)
	if err != nil {
		return 0, fmt.Errorf("script: %s: frequency %q: %w", c.Pos, c.Frequency, err)
	}
	return mhz, nil
}

// Domains returns the registrations in script order.
func (s *Script) Domains() ([]clock.Domain, error) {
	domains := make([]clock.Domain, 0, len(s.Calls))
	for _, call := range s.Calls {
		mhz, err := call.FrequencyMHz()
		if err != nil {
			return nil, err
		}
		domains = append(domains, clock.Domain{Name: call.Name, FrequencyMHz: mhz})
	}
	return domains, nil
}

// Apply replays the script against ctx. Nothing is registered if any
// frequency argument fails to decode.
func (s *Script) Apply(ctx clock.Context) error {
	domains, err := s.Domains()
	if err != nil {
		return err
	}
	clock.Apply(ctx, domains)
	return nil
}
