package content

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Money is a salary figure. Editors enter it either as a number or as
// preformatted text ("£150K"), so both forms are kept.
type Money struct {
	Amount float64
	Text   string
	set    bool
}

// Amount returns a numeric Money.
func Amount(v float64) Money {
	return Money{Amount: v, set: true}
}

// MoneyText returns a textual Money.
func MoneyText(s string) Money {
	return Money{Text: s, set: s != ""}
}

func (m Money) IsZero() bool {
	return !m.set
}

// IsText reports whether the figure was stored as text.
func (m Money) IsText() bool {
	return m.set && m.Text != ""
}

// Float returns the numeric value. Text that parses as a plain number
// (commas allowed) also counts.
func (m Money) Float() (float64, bool) {
	if !m.set {
		return 0, false
	}
	if m.Text == "" {
		return m.Amount, true
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(m.Text, ",", ""), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func (m Money) MarshalJSON() ([]byte, error) {
	switch {
	case !m.set:
		return []byte("null"), nil
	case m.Text != "":
		return json.Marshal(m.Text)
	default:
		return json.Marshal(m.Amount)
	}
}

func (m *Money) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*m = Money{}
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("decode money: %w", err)
		}
		*m = MoneyText(s)
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("decode money: %w", err)
	}
	*m = Amount(v)
	return nil
}
