package datemath_test

import (
	"testing"
	"time"

	"personal-task-tracker/pkg/datemath"
)

func TestNewParser(t *testing.T) {
	_, err := datemath.NewParser("Europe/Lisbon")
	if err != nil {
		t.Fatalf("unexpected error creating valid parser: %v", err)
	}

	_, err = datemath.NewParser("Invalid/Timezone")
	if err == nil {
		t.Fatalf("expected error for invalid timezone")
	}
}

func TestParse(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	baseTime := time.Date(2025, 1, 8, 15, 30, 0, 0, time.UTC) // Wednesday, Jan 8, 2025
	startOfBase := time.Date(2025, 1, 8, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		expr    string
		want    time.Time
		wantErr bool
	}{
		{
			name: "Absolute Date",
			expr: "2025-01-10",
			want: time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "Absolute Date With Whitespace",
			expr: "  2025-01-10  ",
			want: time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "Today",
			expr: "today",
			want: startOfBase,
		},
		{
			name: "Tomorrow",
			expr: "tomorrow",
			want: startOfBase.AddDate(0, 0, 1),
		},
		{
			name: "In Three Days",
			expr: "in 3 days",
			want: startOfBase.AddDate(0, 0, 3),
		},
		{
			name: "In Two Weeks",
			expr: "in 2 weeks",
			want: startOfBase.AddDate(0, 0, 14),
		},
		{
			name: "In One Month",
			expr: "in 1 month",
			want: startOfBase.AddDate(0, 1, 0),
		},
		{
			name: "Next Friday",
			expr: "next friday",
			want: time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "Next Wednesday Skips Today",
			expr: "next wednesday",
			want: time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name:    "Empty Expression",
			expr:    "",
			wantErr: true,
		},
		{
			name:    "Malformed Date",
			expr:    "10/01/2025",
			wantErr: true,
		},
		{
			name:    "Unknown Expression",
			expr:    "someday",
			wantErr: true,
		},
		{
			name:    "Unknown Weekday",
			expr:    "next caturday",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parser.Parse(tt.expr, baseTime)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q, got %v", tt.expr, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("Parse(%q) = %v, want %v", tt.expr, got, tt.want)
			}
		})
	}
}
