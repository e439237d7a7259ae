// Package verify checks the enclosure property of the interval operations:
// for points drawn from the operands, the exact result of the underlying
// real operation, evaluated at high precision, must lie in the interval
// computed from the operands.
package verify

import (
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/tuneinsight/interval/utils"
	"github.com/tuneinsight/interval/utils/sampling"
)

const (
	// DefaultSamples is the default number of random points drawn per operand.
	DefaultSamples = 256
	// DefaultPrec is the default precision, in bits, of the reference values.
	DefaultPrec = 128
	// DefaultTolerance is the default relative tolerance of the enclosure test.
	DefaultTolerance = 1e-12
	// DefaultKey is the default key of the sampling PRNG.
	DefaultKey = "interval"
)

// ParametersLiteral is a literal representation of the verification
// parameters. Its zero value stands for the default parameters.
type ParametersLiteral struct {
	Samples   int     `json:",omitempty"`
	Key       string  `json:",omitempty"`
	Prec      uint    `json:",omitempty"`
	Tolerance float64 `json:",omitempty"`
}

// Parameters is a validated set of verification parameters. Its fields are
// private and immutable. See ParametersLiteral for user-specified parameters.
type Parameters struct {
	samples   int
	key       string
	prec      uint
	tolerance float64
}

// NewParametersFromLiteral instantiate a set of verification parameters from
// a ParametersLiteral specification. Unset fields take their default value.
func NewParametersFromLiteral(pl ParametersLiteral) (params Parameters, err error) {

	if pl.Samples == 0 {
		pl.Samples = DefaultSamples
	}

	if pl.Key == "" {
		pl.Key = DefaultKey
	}

	if pl.Prec == 0 {
		pl.Prec = DefaultPrec
	}

	if pl.Tolerance == 0 {
		pl.Tolerance = DefaultTolerance
	}

	switch {
	case pl.Samples < 0:
		return Parameters{}, fmt.Errorf("verify.NewParametersFromLiteral: invalid Samples=%d: must be positive", pl.Samples)
	case len(pl.Key) > 64:
		return Parameters{}, fmt.Errorf("verify.NewParametersFromLiteral: invalid Key: must be at most 64 bytes")
	case pl.Prec < 53:
		return Parameters{}, fmt.Errorf("verify.NewParametersFromLiteral: invalid Prec=%d: must be at least 53", pl.Prec)
	case pl.Tolerance < 0 || !utils.IsFinite(pl.Tolerance):
		return Parameters{}, fmt.Errorf("verify.NewParametersFromLiteral: invalid Tolerance=%v: must be finite and positive", pl.Tolerance)
	}

	return Parameters{
		samples:   pl.Samples,
		key:       pl.Key,
		prec:      pl.Prec,
		tolerance: pl.Tolerance,
	}, nil
}

// Samples returns the number of random points drawn per operand.
func (p Parameters) Samples() int {
	return p.samples
}

// Key returns the key of the sampling PRNG.
func (p Parameters) Key() string {
	return p.key
}

// Prec returns the precision, in bits, of the reference values.
func (p Parameters) Prec() uint {
	return p.prec
}

// Tolerance returns the relative tolerance of the enclosure test.
func (p Parameters) Tolerance() float64 {
	return p.tolerance
}

// ParametersLiteral returns the ParametersLiteral of the target Parameters.
func (p Parameters) ParametersLiteral() ParametersLiteral {
	return ParametersLiteral{
		Samples:   p.samples,
		Key:       p.key,
		Prec:      p.prec,
		Tolerance: p.tolerance,
	}
}

// Equal returns true if p and other are the same parameters.
func (p Parameters) Equal(other Parameters) bool {
	return p == other
}

// MarshalJSON returns a JSON representation of p. See the UnmarshalJSON method.
func (p Parameters) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.ParametersLiteral())
}

// UnmarshalJSON reads a JSON representation of a parameter set into p.
// See MarshalJSON.
func (p *Parameters) UnmarshalJSON(data []byte) (err error) {
	var pl ParametersLiteral
	if err = json.Unmarshal(data, &pl); err != nil {
		return
	}
	*p, err = NewParametersFromLiteral(pl)
	return
}

// RandomKey returns a fresh 32-character key drawn from the operating
// system's secure source, for runs that sample new points each time.
func RandomKey() (string, error) {

	prng, err := sampling.NewPRNG()
	if err != nil {
		return "", fmt.Errorf("sampling.NewPRNG: %w", err)
	}

	var key [16]byte
	if _, err = prng.Read(key[:]); err != nil {
		return "", fmt.Errorf("cannot RandomKey: %w", err)
	}

	return hex.EncodeToString(key[:]), nil
}
