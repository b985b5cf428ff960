package report

import (
	"bytes"
	"strings"
	"testing"
)

func TestCountersAreExclusive(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf)

	r.Pass("first")
	r.Fail("second", "boom")
	r.Skip("third")
	r.Pass("fourth")
	r.Info("not a result")

	if got := r.Passed(); got != 2 {
		t.Errorf("Passed() = %d, want 2", got)
	}
	if got := r.Failed(); got != 1 {
		t.Errorf("Failed() = %d, want 1", got)
	}
	if got := r.Skipped(); got != 1 {
		t.Errorf("Skipped() = %d, want 1", got)
	}
	if got := len(r.Results()); got != 4 {
		t.Errorf("len(Results()) = %d, want 4 (Info must not record)", got)
	}
}

func TestResultOrderPreserved(t *testing.T) {
	r := New(&bytes.Buffer{})
	r.Pass("a")
	r.Skip("b")
	r.Fail("c", "x")

	want := []struct {
		name    string
		outcome Outcome
	}{
		{"a", Pass},
		{"b", Skip},
		{"c", Fail},
	}
	results := r.Results()
	if len(results) != len(want) {
		t.Fatalf("got %d results, want %d", len(results), len(want))
	}
	for i, w := range want {
		if results[i].Name != w.name || results[i].Outcome != w.outcome {
			t.Errorf("result[%d] = %q/%v, want %q/%v", i, results[i].Name, results[i].Outcome, w.name, w.outcome)
		}
	}
}

func TestOK(t *testing.T) {
	r := New(&bytes.Buffer{})
	r.Pass("good")
	r.Skip("meh")
	if !r.OK() {
		t.Fatal("OK() = false with no failures")
	}
	r.Fail("bad", "reason")
	if r.OK() {
		t.Fatal("OK() = true after a failure")
	}
}

func TestOutputLabels(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf)
	r.Pass("p")
	r.Fail("f", "why")
	r.Skip("s")
	r.Info("i")

	out := buf.String()
	for _, want := range []string{"[PASS] p", "[FAIL] f: why", "[SKIP] s", "[INFO] i"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestSummary(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf)
	r.Pass("a")
	r.Pass("b")
	r.Fail("c", "x")
	r.Summary("Telegram E2E Test Results")

	out := buf.String()
	for _, want := range []string{"Telegram E2E Test Results", "Passed: ", "Failed: ", "2", "1"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Skipped:") {
		t.Errorf("summary shows a skipped line with zero skips:\n%s", out)
	}
}

func TestSummaryWithSkips(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf)
	r.Pass("a")
	r.Skip("b")
	r.Summary("Telegram E2E Test Results")

	if !strings.Contains(buf.String(), "Skipped: ") {
		t.Fatalf("summary missing skipped line:\n%s", buf.String())
	}
}
