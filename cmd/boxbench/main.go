// boxbench - update-path benchmark for the box container
//
// Compares three ways of deriving a new value from a boxed one:
//   - owned:  UpdateOwned on a unique box (in-place, no allocation)
//   - cow:    Update on a shared box (copy-on-write)
//   - naive:  rebuilding a fresh box from the value every time
//
// Output: CSV and a markdown summary on stdout.
//
// Usage:
//
//	boxbench [iterations]
package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/persistkit/persist/box"
	"github.com/persistkit/persist/mem"
)

const defaultIterations = 200000

type caseResult struct {
	Name     string
	Size     int
	NsPerOp  float64
	Allocs   int64
	Deallocs int64
}

type blob16 struct{ data [16]byte }
type blob256 struct{ data [256]byte }
type blob4096 struct{ data [4096]byte }

func main() {
	iterations := defaultIterations
	if len(os.Args) > 1 {
		n, err := strconv.Atoi(os.Args[1])
		if err != nil || n <= 0 {
			fmt.Fprintf(os.Stderr, "invalid iteration count %q\n", os.Args[1])
			os.Exit(1)
		}
		iterations = n
	}

	var results []caseResult
	results = append(results, runSize[blob16](16, iterations)...)
	results = append(results, runSize[blob256](256, iterations)...)
	results = append(results, runSize[blob4096](4096, iterations)...)

	printCSV(results)
	printMarkdown(results, iterations)
}

func runSize[T any](size, iterations int) []caseResult {
	return []caseResult{
		benchOwned[T](size, iterations),
		benchCOW[T](size, iterations),
		benchNaive[T](size, iterations),
	}
}

func touch[T any](v T) T { return v }

func benchOwned[T any](size, iterations int) caseResult {
	cnt := mem.NewCounting()
	pol := mem.New(cnt, mem.AtomicCounters)

	b, err := box.ZeroIn[T](pol)
	if err != nil {
		fatal(err)
	}
	start := time.Now()
	for i := 0; i < iterations; i++ {
		next, err := b.UpdateOwned(touch[T])
		if err != nil {
			fatal(err)
		}
		b = next
	}
	res := result("owned", size, iterations, start, cnt)
	b.Release()
	return res
}

func benchCOW[T any](size, iterations int) caseResult {
	cnt := mem.NewCounting()
	pol := mem.New(cnt, mem.AtomicCounters)

	b, err := box.ZeroIn[T](pol)
	if err != nil {
		fatal(err)
	}
	keep := b.Clone() // hold a second reference so every update copies
	start := time.Now()
	for i := 0; i < iterations; i++ {
		next, err := b.Update(touch[T])
		if err != nil {
			fatal(err)
		}
		next.Release()
	}
	res := result("cow", size, iterations, start, cnt)
	keep.Release()
	b.Release()
	return res
}

func benchNaive[T any](size, iterations int) caseResult {
	cnt := mem.NewCounting()
	pol := mem.New(cnt, mem.AtomicCounters)

	b, err := box.ZeroIn[T](pol)
	if err != nil {
		fatal(err)
	}
	start := time.Now()
	for i := 0; i < iterations; i++ {
		next, err := box.NewIn(pol, touch(b.Get()))
		if err != nil {
			fatal(err)
		}
		b.Release()
		b = next
	}
	res := result("naive", size, iterations, start, cnt)
	b.Release()
	return res
}

func result(name string, size, iterations int, start time.Time, cnt *mem.Counting) caseResult {
	elapsed := time.Since(start)
	stats := cnt.Stats()
	return caseResult{
		Name:     name,
		Size:     size,
		NsPerOp:  float64(elapsed.Nanoseconds()) / float64(iterations),
		Allocs:   stats.Allocations,
		Deallocs: stats.Deallocations,
	}
}

func printCSV(results []caseResult) {
	fmt.Println("case,payload_bytes,ns_per_op,allocations,deallocations")
	for _, r := range results {
		fmt.Printf("%s,%d,%.1f,%d,%d\n", r.Name, r.Size, r.NsPerOp, r.Allocs, r.Deallocs)
	}
}

func printMarkdown(results []caseResult, iterations int) {
	fmt.Printf("\n## box update paths (%d iterations)\n\n", iterations)
	fmt.Println("| case | payload | ns/op | allocs |")
	fmt.Println("|------|---------|-------|--------|")
	for _, r := range results {
		fmt.Printf("| %s | %d B | %.1f | %d |\n", r.Name, r.Size, r.NsPerOp, r.Allocs)
	}
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "boxbench: %v\n", err)
	os.Exit(1)
}
