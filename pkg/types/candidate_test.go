package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCandidateValidate(t *testing.T) {
	valid := Candidate{
		File:   "/proj/conf/ssh_config",
		Line:   12,
		Column: 0,
		Symbol: "myproxy",
		Match:  "Host myproxy",
	}

	tests := []struct {
		name    string
		mutate  func(c *Candidate)
		wantErr error
	}{
		{name: "Valid", mutate: func(c *Candidate) {}, wantErr: nil},
		{name: "MissingFile", mutate: func(c *Candidate) { c.File = "" }, wantErr: ErrMissingFile},
		{name: "ZeroLine", mutate: func(c *Candidate) { c.Line = 0 }, wantErr: ErrInvalidLine},
		{name: "NegativeColumn", mutate: func(c *Candidate) { c.Column = -1 }, wantErr: ErrInvalidColumn},
		{name: "EmptySymbol", mutate: func(c *Candidate) { c.Symbol = "" }, wantErr: ErrEmptySymbol},
		{name: "EmptyMatchIsFine", mutate: func(c *Candidate) { c.Match = "" }, wantErr: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid
			tt.mutate(&c)
			err := c.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
