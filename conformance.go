package rootstream

import (
	"fmt"
	"io"
)

// Vectors are the first five chunks of New(DefaultSeed), hex encoded.
var Vectors = []string{
	"11ddfd55397330138a570f9f9c024996",
	"e17f659eabc361f9c6b20b68719bfa2d",
	"2286a6cba55b56a0ae5bffe3ab8618a6",
	"05e5ca4e66a018bc8cd87b417d49cfa4",
	"c8b25209a994b02cd0510c1f259f7448",
}

// VectorResult is the outcome of comparing one chunk against its expected value.
type VectorResult struct {
	Index int
	Got   string
	Want  string
	Pass  bool
}

// Report collects the results of a conformance run.
type Report struct {
	Results []VectorResult
	Pass    bool
}

// Verify draws one chunk from g per expected hex string and compares them in order.
// A mismatch is reported, not returned as an error.
func Verify(g *Rootstream, expected []string) Report {
	r := Report{Results: make([]VectorResult, 0, len(expected)), Pass: true}
	for i, want := range expected {
		got := g.Next().String()
		pass := got == want
		r.Pass = r.Pass && pass
		r.Results = append(r.Results, VectorResult{Index: i, Got: got, Want: want, Pass: pass})
	}
	return r
}

// VerifyDefault checks a fresh generator built from DefaultSeed against Vectors.
func VerifyDefault() Report {
	return Verify(New(DefaultSeed), Vectors)
}

// WriteTo prints one PASS/FAIL line per chunk followed by the overall verdict.
func (r Report) WriteTo(w io.Writer) (int64, error) {
	var total int64
	write := func(format string, args ...any) error {
		n, err := fmt.Fprintf(w, format, args...)
		total += int64(n)
		return err
	}
	for _, res := range r.Results {
		status := "PASS"
		if !res.Pass {
			status = "FAIL"
		}
		if err := write("[%d]: %s  %s\n", res.Index, status, res.Got); err != nil {
			return total, err
		}
		if !res.Pass {
			if err := write("  expected: %s\n", res.Want); err != nil {
				return total, err
			}
		}
	}
	verdict := "All vectors match. Implementation is compliant."
	if !r.Pass {
		verdict = "Vectors do not match. Implementation is non-compliant."
	}
	err := write("\n%s\n", verdict)
	return total, err
}
