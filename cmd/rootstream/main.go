// rootstream writes a deterministic Rootstream to stdout.
//
//	rootstream [--seed HEX | --seed-float F] [--hash NAME] [--count N] [--format hex|raw|float]
//	rootstream bench [--hash-a NAME] [--hash-b NAME] [--chunks N] [--reps N]
//
// The output is NOT suitable for cryptographic use.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/TomTonic/rootstream"
	"github.com/TomTonic/rootstream/internal/bench"
)

func main() {
	log.SetOutput(os.Stderr)
	var err error
	if len(os.Args) > 1 && os.Args[1] == "bench" {
		err = runBench(os.Args[2:], os.Stdout)
	} else {
		err = runStream(os.Args[1:], os.Stdout)
	}
	if err == pflag.ErrHelp {
		return
	}
	if err != nil {
		log.Fatal(err)
	}
}

// seedFlags holds the seed selection shared by both commands.
type seedFlags struct {
	hex      string
	float    float64
	hasFloat bool
}

func (s *seedFlags) add(fs *pflag.FlagSet) {
	fs.StringVar(&s.hex, "seed", "", "seed as 64 hex digits (default: derived from 1/√2)")
	fs.Float64Var(&s.float, "seed-float", 0, "derive the seed from this float64 (e.g. 3.141592653589793)")
}

func (s *seedFlags) resolve(fs *pflag.FlagSet) (rootstream.Seed, error) {
	s.hasFloat = fs.Changed("seed-float")
	switch {
	case s.hex != "" && s.hasFloat:
		return rootstream.Seed{}, fmt.Errorf("--seed and --seed-float are mutually exclusive")
	case s.hex != "":
		return rootstream.ParseSeed(s.hex)
	case s.hasFloat:
		return rootstream.SeedFrom(s.float), nil
	}
	return rootstream.DefaultSeed, nil
}

func hashFlagUsage() string {
	return "hash primitive, one of " + strings.Join(rootstream.HashNames(), ", ")
}

func runStream(args []string, stdout io.Writer) error {
	var (
		seed    seedFlags
		hash    string
		count   int
		format  string
		verbose bool
	)
	fs := pflag.NewFlagSet("rootstream", pflag.ContinueOnError)
	seed.add(fs)
	fs.StringVar(&hash, "hash", "sha256", hashFlagUsage())
	fs.IntVarP(&count, "count", "n", 5, "number of values to emit (chunks for hex/raw, floats for float)")
	fs.StringVarP(&format, "format", "f", "hex", "output format: hex, raw or float")
	fs.BoolVarP(&verbose, "verbose", "v", false, "log generator progress to stderr")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if verbose {
		log.SetLevel(log.DebugLevel)
	}
	if count < 0 {
		return fmt.Errorf("--count must not be negative, got %d", count)
	}

	s, err := seed.resolve(fs)
	if err != nil {
		return err
	}
	h, err := rootstream.HashByName(hash)
	if err != nil {
		return err
	}
	gen := rootstream.NewWithHash(s, h)
	log.WithFields(log.Fields{"seed": s.String(), "hash": hash}).Debug("generator ready")

	w := bufio.NewWriter(stdout)
	switch format {
	case "hex", "raw":
		for i := range count {
			c := gen.Next()
			log.WithFields(log.Fields{"chunk": i, "counter": gen.Counter()}).Debug("chunk produced")
			if format == "raw" {
				_, err = w.Write(c[:])
			} else {
				_, err = fmt.Fprintln(w, c.String())
			}
			if err != nil {
				return err
			}
		}
	case "float":
		st := rootstream.NewStream(gen)
		for range count {
			if _, err = fmt.Fprintln(w, st.Float64()); err != nil {
				return err
			}
		}
		log.WithField("counter", gen.Counter()).Debug("floats produced")
	default:
		return fmt.Errorf("unknown --format %q: want hex, raw or float", format)
	}
	return w.Flush()
}

func runBench(args []string, stdout io.Writer) error {
	var (
		seed   seedFlags
		hashA  string
		hashB  string
		chunks int
		reps   uint64
	)
	fs := pflag.NewFlagSet("rootstream bench", pflag.ContinueOnError)
	seed.add(fs)
	fs.StringVar(&hashA, "hash-a", "blake3", "candidate "+hashFlagUsage())
	fs.StringVar(&hashB, "hash-b", "sha256", "baseline "+hashFlagUsage())
	fs.IntVar(&chunks, "chunks", 10_000, "chunks to time per hash")
	fs.Uint64Var(&reps, "reps", 1_000, "bootstrap repetitions")
	if err := fs.Parse(args); err != nil {
		return err
	}

	s, err := seed.resolve(fs)
	if err != nil {
		return err
	}
	a, err := rootstream.HashByName(hashA)
	if err != nil {
		return err
	}
	b, err := rootstream.HashByName(hashB)
	if err != nil {
		return err
	}
	log.WithField("precision_ns", bench.GetSampleTimePrecision()).Info("timer calibrated")

	cmp, err := bench.CompareHashes(s, a, b, chunks, []float64{0.0, 0.1, 0.2, 0.5}, reps)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "median ns/chunk: %s=%.0f %s=%.0f\n", hashA, cmp.MedianA, hashB, cmp.MedianB)
	for _, r := range cmp.Results {
		fmt.Fprintf(stdout, "%s faster than %s by ≥ %.0f%% → confidence %.4f\n",
			hashA, hashB, r.RelativeSpeedupSampleAvsSampleB*100.0, r.Confidence)
	}
	return nil
}
