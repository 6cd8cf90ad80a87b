package bench

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func sampleReport() Report {
	return Report{
		System: SystemInfo{
			OS:             "linux",
			Arch:           "amd64",
			Features:       "SSE2",
			Implementation: "sse2",
			SIMDLevel:      "SSE2",
		},
		Config: normalizeConfig(Config{MatrixSize: 8, SearchPattern: "fox"}),
		Results: []Result{
			{Kernel: KernelMatrix, Elapsed: 2 * time.Millisecond, Checksum: 972.5},
			{Kernel: KernelHash, Elapsed: time.Millisecond, Bytes: 1024, Hash: "0x44b0d2b28f0e1305", MBPerSec: 512},
			{Kernel: KernelSearch, Elapsed: time.Millisecond, Bytes: 2250, Matches: 50},
			{Kernel: KernelCopy, Elapsed: time.Millisecond, Bytes: 4096, MBPerSec: 1024, Verified: true},
			{Kernel: KernelPoly, Elapsed: 3 * time.Millisecond, Iterations: 1000, Checksum: 15648.4},
		},
	}
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	WriteText(&buf, sampleReport())
	out := buf.String()

	wantLines := []string{
		"Compute Kernel Benchmark Suite",
		"linux/amd64, features: SSE2",
		"implementation: sse2",
		"=== Matrix Multiplication Benchmark ===",
		"Matrix size: 8x8",
		"=== Hashing Benchmark ===",
		"Hash: 0x44b0d2b28f0e1305",
		"=== String Search Benchmark ===",
		"Pattern: \"fox\"",
		"Occurrences found: 50",
		"=== Memory Operations Benchmark ===",
		"Throughput: 1024.00 MB/s",
		"Verify: ok",
		"=== Polynomial Evaluation Benchmark ===",
		"Iterations: 1000",
		"All benchmarks completed!",
	}
	for _, want := range wantLines {
		if !strings.Contains(out, want) {
			t.Errorf("text report missing %q\n%s", want, out)
		}
	}
}

func TestWriteTextVerifyFailed(t *testing.T) {
	rep := sampleReport()
	rep.Results[3].Verified = false

	var buf bytes.Buffer
	WriteText(&buf, rep)

	if !strings.Contains(buf.String(), "Verify: FAILED") {
		t.Error("corrupt copy not flagged in text report")
	}
}

func TestWriteJSONRoundTrip(t *testing.T) {
	rep := sampleReport()

	var buf bytes.Buffer
	if err := WriteJSON(&buf, rep); err != nil {
		t.Fatalf("WriteJSON returned error: %v", err)
	}
	if !bytes.HasSuffix(buf.Bytes(), []byte("\n")) {
		t.Error("JSON report does not end with newline")
	}

	var got Report
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("report does not round-trip: %v", err)
	}

	if got.System != rep.System {
		t.Errorf("system info round-trip mismatch: %+v", got.System)
	}
	if len(got.Results) != len(rep.Results) {
		t.Fatalf("got %d results, want %d", len(got.Results), len(rep.Results))
	}
	if got.Results[1].Hash != rep.Results[1].Hash {
		t.Errorf("hash round-trip mismatch: %q", got.Results[1].Hash)
	}
	if got.Results[2].Matches != 50 {
		t.Errorf("matches round-trip mismatch: %d", got.Results[2].Matches)
	}
	if got.Config.MatrixSize != 8 {
		t.Errorf("config round-trip mismatch: %d", got.Config.MatrixSize)
	}
}

func TestResultJSONOmitsUnusedFields(t *testing.T) {
	data, err := json.Marshal(Result{Kernel: KernelMatrix, Elapsed: time.Millisecond, Checksum: 1.5})
	if err != nil {
		t.Fatal(err)
	}

	for _, absent := range []string{"matches", "hash", "verified", "mb_per_sec", "iterations"} {
		if bytes.Contains(data, []byte(absent)) {
			t.Errorf("matrix result JSON contains unused field %q: %s", absent, data)
		}
	}
	if !bytes.Contains(data, []byte("checksum")) {
		t.Errorf("matrix result JSON missing checksum: %s", data)
	}
}
