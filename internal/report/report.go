// Package report accumulates check outcomes and renders them as colored
// console lines plus a final summary block.
package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Outcome classifies a recorded check.
type Outcome int

const (
	Pass Outcome = iota
	Fail
	Skip
)

// Result is one recorded check outcome.
type Result struct {
	Name    string
	Outcome Outcome
	Detail  string
}

var (
	labelPass = color.New(color.FgGreen).Sprint("[PASS]")
	labelFail = color.New(color.FgRed).Sprint("[FAIL]")
	labelInfo = color.New(color.FgYellow).Sprint("[INFO]")
	labelSkip = color.New(color.FgYellow).Sprint("[SKIP]")
)

// Reporter records pass/fail/skip results. It is not safe for concurrent
// use; the runner is strictly sequential.
type Reporter struct {
	out     io.Writer
	results []Result
}

// New returns a reporter writing to out.
func New(out io.Writer) *Reporter {
	return &Reporter{out: out}
}

// Pass records a passing check.
func (r *Reporter) Pass(msg string) {
	r.results = append(r.results, Result{Name: msg, Outcome: Pass})
	fmt.Fprintf(r.out, "%s %s\n", labelPass, msg)
}

// Fail records a failing check with its reason.
func (r *Reporter) Fail(msg, reason string) {
	r.results = append(r.results, Result{Name: msg, Outcome: Fail, Detail: reason})
	fmt.Fprintf(r.out, "%s %s: %s\n", labelFail, msg, reason)
}

// Skip records a check that was intentionally not executed.
func (r *Reporter) Skip(msg string) {
	r.results = append(r.results, Result{Name: msg, Outcome: Skip})
	fmt.Fprintf(r.out, "%s %s\n", labelSkip, msg)
}

// Info prints an informational line without recording a result.
func (r *Reporter) Info(msg string) {
	fmt.Fprintf(r.out, "%s %s\n", labelInfo, msg)
}

// Results returns the recorded outcomes in order.
func (r *Reporter) Results() []Result {
	return r.results
}

func (r *Reporter) count(o Outcome) int {
	n := 0
	for _, res := range r.results {
		if res.Outcome == o {
			n++
		}
	}
	return n
}

// Passed returns the number of passing checks.
func (r *Reporter) Passed() int { return r.count(Pass) }

// Failed returns the number of failing checks.
func (r *Reporter) Failed() int { return r.count(Fail) }

// Skipped returns the number of skipped checks.
func (r *Reporter) Skipped() int { return r.count(Skip) }

// OK reports whether no check failed.
func (r *Reporter) OK() bool { return r.Failed() == 0 }

// Summary prints the final results block.
func (r *Reporter) Summary(title string) {
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, "============================================")
	fmt.Fprintln(r.out, title)
	fmt.Fprintln(r.out, "============================================")
	fmt.Fprintf(r.out, "Passed: %s\n", color.GreenString("%d", r.Passed()))
	fmt.Fprintf(r.out, "Failed: %s\n", color.RedString("%d", r.Failed()))
	if n := r.Skipped(); n > 0 {
		fmt.Fprintf(r.out, "Skipped: %s\n", color.YellowString("%d", n))
	}
	fmt.Fprintln(r.out, "============================================")
}
