package kessan

import (
	"os"
	"path/filepath"
	"testing"
)

// writeFile writes a test input file or fails the test.
func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestLoad(t *testing.T) {
	financeDir, priceDir := t.TempDir(), t.TempDir()

	writeFile(t, financeDir, "1301.csv", "DiscDate,EPS\n2023-03-31,50\n")
	writeFile(t, priceDir, "1301.csv", "Date,Close\n2023-03-30,1000\n")

	// 1302 has no price file at all.
	writeFile(t, financeDir, "1302.csv", "DiscDate,EPS\n2023-03-31,10\n")

	// 1303 has a price file with no usable row.
	writeFile(t, financeDir, "1303.csv", "DiscDate,EPS\n2023-03-31,10\n")
	writeFile(t, priceDir, "1303.csv", "Date,Close\nbroken,row\n")

	u, err := Load(financeDir, priceDir, map[string]string{"1301": "Kyokuyo"})
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}

	if u.Len() != 1 {
		t.Fatalf("Len() = %d want 1", u.Len())
	}
	if u.Skipped() != 2 {
		t.Errorf("Skipped() = %d want 2", u.Skipped())
	}
	sec := u.Get("1301")
	if sec == nil {
		t.Fatal("Get(1301) = nil")
	}
	if got, want := sec.Name(), "Kyokuyo"; got != want {
		t.Errorf("Name() = %q want %q", got, want)
	}

	stocks := u.Stocks()
	if len(stocks) != 1 {
		t.Fatalf("Stocks() returned %d want 1", len(stocks))
	}
	if got := stocks[0].Snapshot.Code; got != "1301" {
		t.Errorf("Stocks()[0].Snapshot.Code = %q want 1301", got)
	}
}

func TestLoadNameFallsBackToCode(t *testing.T) {
	financeDir, priceDir := t.TempDir(), t.TempDir()
	writeFile(t, financeDir, "1305.csv", "DiscDate,EPS\n2023-03-31,50\n")
	writeFile(t, priceDir, "1305.csv", "Date,Close\n2023-03-30,1000\n")

	u, err := Load(financeDir, priceDir, nil)
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if got, want := u.Get("1305").Name(), "1305"; got != want {
		t.Errorf("Name() = %q want %q, the code is the fallback name", got, want)
	}
}
