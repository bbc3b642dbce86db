package glshader

import (
	"errors"
	"testing"
)

func TestParseStage(t *testing.T) {
	tests := []struct {
		in      string
		want    Stage
		wantErr bool
	}{
		{"vertex", StageVertex, false},
		{"VERT", StageVertex, false},
		{" vs ", StageVertex, false},
		{"fragment", StageFragment, false},
		{"frag", StageFragment, false},
		{"pixel", StageFragment, false},
		{"compute", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseStage(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseStage(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err != nil && !errors.Is(err, ErrInvalidStage) {
			t.Errorf("ParseStage(%q) error = %v, want ErrInvalidStage", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseStage(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestStageString(t *testing.T) {
	if StageVertex.String() != "vertex" || StageFragment.String() != "fragment" {
		t.Errorf("got %q, %q", StageVertex, StageFragment)
	}
	if Stage(0).Valid() || Stage(7).Valid() {
		t.Error("undefined stages reported valid")
	}
	if got := Stage(7).String(); got != "Stage(7)" {
		t.Errorf("Stage(7).String() = %q", got)
	}
}

func TestStageText(t *testing.T) {
	var s Stage
	if err := s.UnmarshalText([]byte("frag")); err != nil {
		t.Fatalf("UnmarshalText() error = %v", err)
	}
	if s != StageFragment {
		t.Errorf("UnmarshalText() = %v", s)
	}
	b, err := s.MarshalText()
	if err != nil || string(b) != "fragment" {
		t.Errorf("MarshalText() = %q, %v", b, err)
	}
	if _, err := Stage(0).MarshalText(); err == nil {
		t.Error("MarshalText() of zero stage succeeded")
	}
}
