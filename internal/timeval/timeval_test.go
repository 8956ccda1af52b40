package timeval

import (
	"errors"
	"testing"
	"time"

	"github.com/javiermolinar/logspan/internal/dateutil"
	"github.com/javiermolinar/logspan/internal/timestamp"
)

func TestEdit(t *testing.T) {
	base := TimeValue{HH: "10", MM: "20", SS: "30"}

	tests := []struct {
		name   string
		raw    string
		field  Field
		want   TimeValue
		wantOK bool
	}{
		{name: "single digit hour", raw: "9", field: Hours, want: TimeValue{HH: "9", MM: "20", SS: "30"}, wantOK: true},
		{name: "max hour", raw: "23", field: Hours, want: TimeValue{HH: "23", MM: "20", SS: "30"}, wantOK: true},
		{name: "hour over max", raw: "24", field: Hours, want: base, wantOK: false},
		{name: "hour 99", raw: "99", field: Hours, want: base, wantOK: false},
		{name: "max minute", raw: "59", field: Minutes, want: TimeValue{HH: "10", MM: "59", SS: "30"}, wantOK: true},
		{name: "minute over max", raw: "60", field: Minutes, want: base, wantOK: false},
		{name: "second over max", raw: "75", field: Seconds, want: base, wantOK: false},
		{name: "clear field", raw: "", field: Seconds, want: TimeValue{HH: "10", MM: "20", SS: ""}, wantOK: true},
		{name: "too long", raw: "001", field: Minutes, want: base, wantOK: false},
		{name: "non numeric", raw: "1a", field: Minutes, want: base, wantOK: false},
		{name: "leading zero kept", raw: "05", field: Seconds, want: TimeValue{HH: "10", MM: "20", SS: "05"}, wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Edit(base, tt.raw, tt.field)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestEdit_RejectLeavesValueUntouched(t *testing.T) {
	cur := TimeValue{HH: "7", MM: "", SS: "05"}
	for _, f := range Fields {
		got, ok := Edit(cur, "999", f)
		if ok {
			t.Fatalf("%s: expected rejection", f.Label())
		}
		if got != cur {
			t.Errorf("%s: got %+v, want %+v", f.Label(), got, cur)
		}
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   TimeValue
		want TimeValue
	}{
		{name: "empty", in: TimeValue{}, want: TimeValue{HH: "00", MM: "00", SS: "00"}},
		{name: "single digits", in: TimeValue{HH: "9", MM: "5", SS: "0"}, want: TimeValue{HH: "09", MM: "05", SS: "00"}},
		{name: "already padded", in: TimeValue{HH: "23", MM: "59", SS: "59"}, want: TimeValue{HH: "23", MM: "59", SS: "59"}},
		{name: "mixed", in: TimeValue{HH: "", MM: "7", SS: "42"}, want: TimeValue{HH: "00", MM: "07", SS: "42"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.in)
			if got != tt.want {
				t.Fatalf("got %+v, want %+v", got, tt.want)
			}
			if again := Normalize(got); again != got {
				t.Errorf("normalize is not idempotent: %+v -> %+v", got, again)
			}
			for _, f := range Fields {
				if len(got.Get(f)) != 2 {
					t.Errorf("%s = %q, want two digits", f.Label(), got.Get(f))
				}
			}
		})
	}
}

func TestTypeThenBlurPadsHour(t *testing.T) {
	v, ok := Edit(TimeValue{}, "99", Hours)
	if ok || v != (TimeValue{}) {
		t.Fatalf("typing 99 should be rejected, got %+v ok=%v", v, ok)
	}

	v, ok = Edit(v, "9", Hours)
	if !ok {
		t.Fatal("typing 9 should be accepted")
	}
	if got := Normalize(v).HH; got != "09" {
		t.Errorf("HH = %q, want %q", got, "09")
	}
}

func sameDayRange() dateutil.DateRange {
	day := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	return dateutil.DateRange{Start: day, End: day}
}

func TestReconcile_Start(t *testing.T) {
	tests := []struct {
		name        string
		start       TimeValue
		end         TimeValue
		wantEnd     TimeValue
		wantChanged bool
	}{
		{
			name:        "hour ahead pushes hour only",
			start:       TimeValue{HH: "10", MM: "00", SS: "00"},
			end:         TimeValue{HH: "09", MM: "00", SS: "00"},
			wantEnd:     TimeValue{HH: "10", MM: "00", SS: "00"},
			wantChanged: true,
		},
		{
			name:        "hour and minute ahead",
			start:       TimeValue{HH: "10", MM: "50", SS: "00"},
			end:         TimeValue{HH: "09", MM: "45", SS: "00"},
			wantEnd:     TimeValue{HH: "10", MM: "50", SS: "00"},
			wantChanged: true,
		},
		{
			name:        "hour ahead minute behind keeps end minute",
			start:       TimeValue{HH: "10", MM: "30", SS: "00"},
			end:         TimeValue{HH: "09", MM: "45", SS: "00"},
			wantEnd:     TimeValue{HH: "10", MM: "45", SS: "00"},
			wantChanged: true,
		},
		{
			name:        "same hour minute ahead",
			start:       TimeValue{HH: "10", MM: "30", SS: "00"},
			end:         TimeValue{HH: "10", MM: "15", SS: "50"},
			wantEnd:     TimeValue{HH: "10", MM: "30", SS: "50"},
			wantChanged: true,
		},
		{
			name:        "same minute second ahead",
			start:       TimeValue{HH: "10", MM: "30", SS: "40"},
			end:         TimeValue{HH: "10", MM: "30", SS: "10"},
			wantEnd:     TimeValue{HH: "10", MM: "30", SS: "40"},
			wantChanged: true,
		},
		{
			name:        "end already later",
			start:       TimeValue{HH: "10", MM: "00", SS: "50"},
			end:         TimeValue{HH: "11", MM: "00", SS: "10"},
			wantEnd:     TimeValue{HH: "11", MM: "00", SS: "10"},
			wantChanged: false,
		},
		{
			name:        "equal times",
			start:       TimeValue{HH: "10", MM: "00", SS: "00"},
			end:         TimeValue{HH: "10", MM: "00", SS: "00"},
			wantEnd:     TimeValue{HH: "10", MM: "00", SS: "00"},
			wantChanged: false,
		},
		{
			name:        "unnormalized start",
			start:       TimeValue{HH: "9", MM: "5", SS: ""},
			end:         TimeValue{HH: "08", MM: "00", SS: "00"},
			wantEnd:     TimeValue{HH: "09", MM: "05", SS: "00"},
			wantChanged: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			end := tt.end
			got := Reconcile(Start, tt.start, sameDayRange(), end, dateutil.SameDay)
			if got.Time != Normalize(tt.start) {
				t.Errorf("time = %+v, want %+v", got.Time, Normalize(tt.start))
			}
			if got.SiblingChanged != tt.wantChanged {
				t.Fatalf("changed = %v, want %v", got.SiblingChanged, tt.wantChanged)
			}
			if got.Sibling != tt.wantEnd {
				t.Errorf("end = %+v, want %+v", got.Sibling, tt.wantEnd)
			}
			if end != tt.end {
				t.Errorf("caller sibling mutated: %+v", end)
			}
		})
	}
}

func TestReconcile_End(t *testing.T) {
	tests := []struct {
		name        string
		end         TimeValue
		start       TimeValue
		wantStart   TimeValue
		wantChanged bool
	}{
		{
			name:        "hour behind pulls start hour",
			end:         TimeValue{HH: "09", MM: "00", SS: "00"},
			start:       TimeValue{HH: "10", MM: "00", SS: "00"},
			wantStart:   TimeValue{HH: "09", MM: "00", SS: "00"},
			wantChanged: true,
		},
		{
			name:        "same hour minute behind",
			end:         TimeValue{HH: "10", MM: "10", SS: "00"},
			start:       TimeValue{HH: "10", MM: "30", SS: "20"},
			wantStart:   TimeValue{HH: "10", MM: "10", SS: "00"},
			wantChanged: true,
		},
		{
			name:        "second behind",
			end:         TimeValue{HH: "10", MM: "30", SS: "05"},
			start:       TimeValue{HH: "10", MM: "30", SS: "20"},
			wantStart:   TimeValue{HH: "10", MM: "30", SS: "05"},
			wantChanged: true,
		},
		{
			name:        "start already earlier",
			end:         TimeValue{HH: "12", MM: "00", SS: "00"},
			start:       TimeValue{HH: "10", MM: "59", SS: "59"},
			wantStart:   TimeValue{HH: "10", MM: "59", SS: "59"},
			wantChanged: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Reconcile(End, tt.end, sameDayRange(), tt.start, dateutil.SameDay)
			if got.SiblingChanged != tt.wantChanged {
				t.Fatalf("changed = %v, want %v", got.SiblingChanged, tt.wantChanged)
			}
			if got.Sibling != tt.wantStart {
				t.Errorf("start = %+v, want %+v", got.Sibling, tt.wantStart)
			}
		})
	}
}

func TestReconcile_EndHourOnly(t *testing.T) {
	start := TimeValue{HH: "10", MM: "00", SS: "00"}
	end, ok := Edit(TimeValue{HH: "11", MM: "00", SS: "00"}, "09", Hours)
	if !ok {
		t.Fatal("edit rejected")
	}
	got := Reconcile(End, end, sameDayRange(), start, nil)
	if !got.SiblingChanged || got.Sibling.HH != "09" {
		t.Errorf("start = %+v changed=%v, want HH 09", got.Sibling, got.SiblingChanged)
	}
}

func TestReconcile_DifferentDays(t *testing.T) {
	dates := dateutil.DateRange{
		Start: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
	}
	start := TimeValue{HH: "23", MM: "59", SS: "59"}
	end := TimeValue{HH: "00", MM: "00", SS: "00"}

	got := Reconcile(Start, start, dates, end, dateutil.SameDay)
	if got.SiblingChanged {
		t.Errorf("sibling changed across days: %+v", got.Sibling)
	}

	got = Reconcile(End, end, dates, start, dateutil.SameDay)
	if got.SiblingChanged {
		t.Errorf("sibling changed across days: %+v", got.Sibling)
	}
}

func TestReconcile_DayMonthMatcher(t *testing.T) {
	dates := dateutil.DateRange{
		Start: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
	}
	start := TimeValue{HH: "12", MM: "00", SS: "00"}
	end := TimeValue{HH: "08", MM: "00", SS: "00"}

	if got := Reconcile(Start, start, dates, end, dateutil.SameDay); got.SiblingChanged {
		t.Error("full date match should not reconcile across years")
	}
	if got := Reconcile(Start, start, dates, end, dateutil.SameDayOfYear); !got.SiblingChanged {
		t.Error("day/month match should reconcile across years")
	}
}

func TestReconcile_KeepsStartBeforeEnd(t *testing.T) {
	dates := sameDayRange()
	clock := func(v TimeValue) int {
		h, m, s := v.Clock()
		return h*3600 + m*60 + s
	}
	values := []TimeValue{
		{HH: "00", MM: "00", SS: "00"},
		{HH: "09", MM: "59", SS: "59"},
		{HH: "10", MM: "00", SS: "30"},
		{HH: "10", MM: "30", SS: "00"},
		{HH: "10", MM: "30", SS: "45"},
		{HH: "23", MM: "00", SS: "15"},
	}
	for _, a := range values {
		for _, b := range values {
			got := Reconcile(Start, a, dates, b, nil)
			if clock(got.Sibling) < clock(got.Time) {
				t.Errorf("start %v end %v: end became %v", a, b, got.Sibling)
			}
			got = Reconcile(End, b, dates, a, nil)
			if clock(got.Sibling) > clock(got.Time) {
				t.Errorf("end %v start %v: start became %v", b, a, got.Sibling)
			}
		}
	}
}

func TestIngest(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)

	tests := []struct {
		name string
		role Role
		text string
		want TimeValue
	}{
		{name: "micro start", role: Start, text: "1736937000123456", want: TimeValue{HH: "12", MM: "29", SS: "59"}},
		{name: "micro end", role: End, text: "1736937000123456", want: TimeValue{HH: "12", MM: "30", SS: "01"}},
		{name: "millis start", role: Start, text: "1736937005000", want: TimeValue{HH: "12", MM: "30", SS: "04"}},
		{name: "end crosses minute", role: End, text: "1736937059000", want: TimeValue{HH: "12", MM: "31", SS: "00"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Ingest(tt.role, tt.text, loc)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestIngest_Invalid(t *testing.T) {
	for _, text := range []string{"not a timestamp", "", "12:30:00"} {
		_, err := Ingest(Start, text, time.UTC)
		if !errors.Is(err, timestamp.ErrInvalidTimestamp) {
			t.Errorf("Ingest(%q) error = %v, want %v", text, err, timestamp.ErrInvalidTimestamp)
		}
	}
}

func TestParse(t *testing.T) {
	got, err := Parse("7:05")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := (TimeValue{HH: "07", MM: "05", SS: "00"}); got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
	if _, err := Parse("25:00:00"); err == nil {
		t.Error("expected error for hour 25")
	}
}

func TestParseRole(t *testing.T) {
	if r, err := ParseRole("end"); err != nil || r != End {
		t.Errorf("ParseRole(end) = %v, %v", r, err)
	}
	if _, err := ParseRole("middle"); err == nil {
		t.Error("expected error for unknown role")
	}
	if Start.Sibling() != End || End.Sibling() != Start {
		t.Error("Sibling should flip the role")
	}
}
