package kessan

import "github.com/etnz/kessan/date"

// Security is the unit of processing: one listed code with its daily price
// series and its ordered disclosure series.
type Security struct {
	code        string
	name        string
	prices      date.History[float64]
	disclosures Disclosures
}

// NewSecurity returns a security with empty series.
func NewSecurity(code, name string) *Security {
	return &Security{code: code, name: name}
}

// Code returns the security's listing code.
func (s *Security) Code() string { return s.code }

// Name returns the security's display name.
func (s *Security) Name() string { return s.name }

// Prices returns the security's daily close history.
func (s *Security) Prices() *date.History[float64] { return &s.prices }

// Disclosures returns the security's disclosure series, in file order.
func (s *Security) Disclosures() Disclosures { return s.disclosures }
