package format

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestParseMode(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		input   string
		want    Mode
		wantErr bool
	}{
		{"", ModeAllocate, false},
		{"allocate", ModeAllocate, false},
		{"ALLOC", ModeAllocate, false},
		{"inplace", ModeInPlace, false},
		{" in-place ", ModeInPlace, false},
		{"locale", ModeAllocate, true},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			t.Parallel()
			got, err := ParseMode(tc.input)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseMode(%q) error = %v, wantErr %v", tc.input, err, tc.wantErr)
			}
			if got != tc.want {
				t.Errorf("ParseMode(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestModeStringRoundTrip(t *testing.T) {
	t.Parallel()
	for _, m := range []Mode{ModeAllocate, ModeInPlace} {
		got, err := ParseMode(m.String())
		if err != nil || got != m {
			t.Errorf("ParseMode(%q) = %v, %v; want %v", m.String(), got, err, m)
		}
	}
	if s := Mode(7).String(); s != "Mode(7)" {
		t.Errorf("Mode(7).String() = %q", s)
	}
}

func TestModeApply(t *testing.T) {
	t.Parallel()
	for _, m := range []Mode{ModeAllocate, ModeInPlace} {
		if got := m.Apply("30000000.02"); got != "30,000,000.02" {
			t.Errorf("%v.Apply = %q, want %q", m, got, "30,000,000.02")
		}
	}
}

func TestModeApplyInvalidUTF8(t *testing.T) {
	t.Parallel()
	input := "12\xff45678"
	want := "12,\xff45,678"
	for _, m := range []Mode{ModeAllocate, ModeInPlace} {
		got := m.Apply(input)
		if got != want {
			t.Errorf("%v.Apply(%q) = %q, want %q", m, input, got, want)
		}
		if strings.ContainsRune(got, utf8.RuneError) {
			t.Errorf("%v.Apply(%q) = %q replaced invalid bytes", m, input, got)
		}
	}
}

func TestFormatBatch(t *testing.T) {
	t.Parallel()
	inputs := make([]string, 200)
	for i := range inputs {
		inputs[i] = strconv.Itoa(i * 1001)
	}

	for _, limit := range []int{0, 1, 4} {
		t.Run(strconv.Itoa(limit), func(t *testing.T) {
			t.Parallel()
			results, err := FormatBatch(context.Background(), inputs, ModeAllocate, limit)
			if err != nil {
				t.Fatalf("FormatBatch error: %v", err)
			}
			if len(results) != len(inputs) {
				t.Fatalf("got %d results, want %d", len(results), len(inputs))
			}
			for i, in := range inputs {
				if want := FormatNumberString(in); results[i] != want {
					t.Errorf("results[%d] = %q, want %q", i, results[i], want)
				}
			}
		})
	}
}

func TestFormatBatchEmpty(t *testing.T) {
	t.Parallel()
	results, err := FormatBatch(context.Background(), nil, ModeInPlace, 2)
	if err != nil {
		t.Fatalf("FormatBatch error: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("got %d results, want 0", len(results))
	}
}

func TestFormatBatchCanceled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := FormatBatch(ctx, []string{"1000", "2000"}, ModeAllocate, 1)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("FormatBatch error = %v, want context.Canceled", err)
	}
}
