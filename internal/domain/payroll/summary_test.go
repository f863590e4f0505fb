package payroll

import (
	"bytes"
	"errors"
	"testing"
)

func TestWriteSummary(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteSummary(&buf, NewHourly("Ana", 20, 160)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "\n" +
		"==================================================\n" +
		"        SALARY SUMMARY - HOURLY EMPLOYEE\n" +
		"==================================================\n" +
		"Name:             Ana\n" +
		"Type:             Hourly Employee\n" +
		"Monthly salary:   $3,200.00\n" +
		"Annual salary:    $38,400.00\n" +
		"Bonus:            $1,600.00\n" +
		"--------------------------------------------------\n" +
		"TOTAL ANNUAL:     $40,000.00\n" +
		"==================================================\n"
	if buf.String() != want {
		t.Fatalf("unexpected summary:\n%s", buf.String())
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("sink closed") }

func TestWriteSummaryReturnsWriterError(t *testing.T) {
	if err := WriteSummary(failingWriter{}, NewSalaried("Luis", 1)); err == nil {
		t.Fatal("expected writer error")
	}
}
