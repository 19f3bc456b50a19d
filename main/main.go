package main

import (
	"fmt"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime"
	"runtime/pprof"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rawbytedev/dualstr"
	"github.com/rawbytedev/dualstr/pkg/strwire"
)

type profOptions struct {
	iterations int
	memprofile string
	pprofAddr  string
	borrow     bool
	compress   bool
}

func newRootCmd() *cobra.Command {
	opts := &profOptions{}
	cmd := &cobra.Command{
		Use:           "dualstr-prof",
		Short:         "Profile dualstr values through strwire frames",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(opts)
		},
	}
	cmd.Flags().IntVarP(&opts.iterations, "iterations", "n", 10000, "encode/decode rounds")
	cmd.Flags().StringVar(&opts.memprofile, "memprofile", "mem.prof", "heap profile output, empty to skip")
	cmd.Flags().StringVar(&opts.pprofAddr, "pprof-addr", "", "serve net/http/pprof on this address while running")
	cmd.Flags().BoolVar(&opts.borrow, "borrow", false, "decode into borrowed values")
	cmd.Flags().BoolVar(&opts.compress, "compress", false, "zstd-compress frames")
	return cmd
}

func run(opts *profOptions) error {
	if opts.pprofAddr != "" {
		go func() {
			log.Println(http.ListenAndServe(opts.pprofAddr, nil))
		}()
	}
	if opts.memprofile != "" {
		runtime.MemProfileRate = 1
	}

	words := []string{"azerty", "hello", "world", "random"}
	in := make([]dualstr.Str, 0, len(words)*2)
	for _, w := range words {
		in = append(in, dualstr.Borrow(w), dualstr.Own(strings.ToUpper(w)))
	}

	wopts := strwire.Options{BorrowStrings: opts.borrow, Compress: opts.compress}
	enc := strwire.NewEncoder(wopts)
	defer enc.Close()
	dec := strwire.NewDecoder(wopts)
	defer dec.Close()

	var owned int
	for i := 0; i < opts.iterations; i++ {
		data, err := enc.Encode(in)
		if err != nil {
			return err
		}
		out, err := dec.Decode(data)
		if err != nil {
			return err
		}
		for j := range out {
			if out[j].IsOwned() {
				owned++
			}
			out[j].Release()
		}
	}
	log.Printf("rounds=%d values=%d owned=%d", opts.iterations, opts.iterations*len(in), owned)

	if opts.memprofile == "" {
		return nil
	}
	f, err := os.Create(opts.memprofile)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := pprof.WriteHeapProfile(f); err != nil {
		return fmt.Errorf("write heap profile: %w", err)
	}
	log.Printf("heap profile written to %s", opts.memprofile)
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}
