package normalize

import "testing"

func TestHandle(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "already canonical", in: "@ivan_padel", want: "@ivan_padel"},
		{name: "mixed case", in: "@Ivan_Padel", want: "@ivan_padel"},
		{name: "surrounding spaces", in: "  @maria_sports ", want: "@maria_sports"},
		{name: "empty", in: "", want: ""},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Handle(tt.in); got != tt.want {
				t.Errorf("Handle() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "lower", in: "иван", want: "Иван"},
		{name: "spaces", in: " мария ", want: "Мария"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Name(tt.in); got != tt.want {
				t.Errorf("Name() = %v, want %v", got, tt.want)
			}
		})
	}
}
