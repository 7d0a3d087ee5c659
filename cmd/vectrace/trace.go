package main

import (
	"fmt"
	"io"
	"os"
	"unsafe"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pavanmanishd/vector"
)

var (
	traceCount  int
	traceShrink bool
)

func init() {
	cmd := newTraceCmd()
	cmd.Flags().IntVarP(&traceCount, "count", "n", 32, "Number of elements to append")
	cmd.Flags().BoolVar(&traceShrink, "shrink", false, "Shrink to fit after appending")
	rootCmd.AddCommand(cmd)
}

func newTraceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trace",
		Short: "Show every capacity change while appending",
		Long: `The trace command appends --count integers to an empty vector and
prints a row each time the capacity changes.

Example:
  vectrace trace --count 100
  vectrace trace --count 100 --shrink --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTrace()
		},
	}
	return cmd
}

// Step is one capacity change observed while appending.
type Step struct {
	Size     int  `json:"size"`
	Capacity int  `json:"capacity"`
	Moved    bool `json:"moved"`
}

// TraceReport is the result of a trace run.
type TraceReport struct {
	Count   int                  `json:"count"`
	Steps   []Step               `json:"steps"`
	Final   vector.VectorMetrics `json:"final"`
	Shrunk  []int                `json:"shrunk,omitempty"`
	MaxSize int                  `json:"max_size"`
}

// collectTrace appends count integers and records each capacity change.
// With shrink, ShrinkToFit runs twice and both resulting capacities are kept.
func collectTrace(count int, shrink bool, log *zap.Logger) (*TraceReport, error) {
	if count < 0 {
		return nil, errors.Newf("count must not be negative, got %d", count)
	}
	v := vector.New(vector.WithLogger[int](log))
	defer v.Release()

	report := &TraceReport{Count: count, MaxSize: v.MaxSize()}
	for i := 0; i < count; i++ {
		before := v.Capacity()
		addr := dataAddr(v)
		if err := v.PushBack(i); err != nil {
			return nil, errors.Wrapf(err, "push %d", i)
		}
		if v.Capacity() != before {
			report.Steps = append(report.Steps, Step{
				Size:     v.Size(),
				Capacity: v.Capacity(),
				Moved:    addr != dataAddr(v),
			})
		}
	}
	if shrink {
		for i := 0; i < 2; i++ {
			if err := v.ShrinkToFit(); err != nil {
				return nil, errors.Wrap(err, "shrink to fit")
			}
			report.Shrunk = append(report.Shrunk, v.Capacity())
		}
	}
	report.Final = v.Metrics()
	return report, nil
}

func dataAddr(v *vector.Vector[int]) uintptr {
	return uintptr(unsafe.Pointer(unsafe.SliceData(v.Data())))
}

func runTrace() error {
	log, err := newLogger()
	if err != nil {
		return errors.Wrap(err, "create logger")
	}
	defer log.Sync() //nolint:errcheck

	report, err := collectTrace(traceCount, traceShrink, log)
	if err != nil {
		return err
	}
	if jsonOut {
		return printJSON(report)
	}
	printReport(os.Stdout, report)
	return nil
}

func printReport(w io.Writer, r *TraceReport) {
	fmt.Fprintf(w, "%-10s %-10s %s\n", "SIZE", "CAPACITY", "MOVED")
	for _, s := range r.Steps {
		fmt.Fprintf(w, "%-10d %-10d %t\n", s.Size, s.Capacity, s.Moved)
	}
	fmt.Fprintf(w, "\nFinal size: %d\n", r.Final.Size)
	fmt.Fprintf(w, "Final capacity: %d\n", r.Final.Capacity)
	fmt.Fprintf(w, "Reallocations: %d\n", r.Final.Reallocations)
	fmt.Fprintf(w, "Utilization: %.2f%%\n", r.Final.Utilization*100)
	for i, c := range r.Shrunk {
		fmt.Fprintf(w, "Capacity after shrink #%d: %d\n", i+1, c)
	}
}
