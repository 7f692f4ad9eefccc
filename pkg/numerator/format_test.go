package numerator

import "testing"

func TestFormat_String(t *testing.T) {
	tests := []struct {
		name string
		f    Format
		num  int64
		want string
	}{
		{"plain", Format{}, 1, "1"},
		{"plain large", Format{}, 1042, "1042"},
		{"prefix", Format{Prefix: "INV-"}, 7, "INV-7"},
		{"padded", Format{PadWidth: 5}, 42, "00042"},
		{"prefix padded", Format{Prefix: "INV-", PadWidth: 4}, 12, "INV-0012"},
		{"overflow pad", Format{PadWidth: 2}, 12345, "12345"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.f.String(tt.num); got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestFormat_ParseRoundTrip(t *testing.T) {
	f := Format{Prefix: "INV-", PadWidth: 5}
	for _, n := range []int64{1, 99, 100000} {
		if got := f.Parse(f.String(n)); got != n {
			t.Errorf("round trip %d: got %d", n, got)
		}
	}
}

func TestFormat_ParseRejects(t *testing.T) {
	f := Format{Prefix: "INV-"}
	for _, in := range []string{"", "INV-", "X-12", "INV-abc", "INV--3"} {
		if got := f.Parse(in); got != -1 {
			t.Errorf("Parse(%q) = %d, expected -1", in, got)
		}
	}
}
