package classname

import "testing"

func TestJoin(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   []string
		want string
	}{
		{"empty", nil, ""},
		{"single", []string{"flex"}, "flex"},
		{"skips blanks", []string{"flex", "", "gap-2", ""}, "flex gap-2"},
		{"conditional", []string{"base", If(true, "on"), If(false, "off")}, "base on"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := Join(tc.in...); got != tc.want {
				t.Fatalf("Join(%v) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}
