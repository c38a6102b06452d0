// rootstream-verify checks this implementation against the published
// Rootstream test vectors and exits non-zero on any mismatch.
package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/TomTonic/rootstream"
)

func main() {
	fmt.Println("Rootstream Go implementation")
	fmt.Println("Verifying against test vectors...")
	fmt.Println()

	report := rootstream.VerifyDefault()
	if _, err := report.WriteTo(os.Stdout); err != nil {
		log.WithError(err).Fatal("cannot write report")
	}
	if !report.Pass {
		os.Exit(1)
	}
}
