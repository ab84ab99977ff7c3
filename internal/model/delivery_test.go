package model

import "testing"

func TestRegularInnings(t *testing.T) {
	cases := []struct {
		innings int
		want    bool
	}{
		{1, true},
		{2, true},
		{SuperOverInning, false},
		{4, false},
		{0, false},
	}
	for _, c := range cases {
		d := Delivery{Innings: c.innings}
		if got := d.RegularInnings(); got != c.want {
			t.Errorf("innings %d: got %v, want %v", c.innings, got, c.want)
		}
	}
}

func TestOpponent(t *testing.T) {
	d := Delivery{Team1: "Astra", Team2: "Borea"}
	if got := d.Opponent("Astra"); got != "Borea" {
		t.Errorf("opponent of Astra: got %q", got)
	}
	if got := d.Opponent("Borea"); got != "Astra" {
		t.Errorf("opponent of Borea: got %q", got)
	}
	if got := d.Opponent("Cyra"); got != "" {
		t.Errorf("non-contestant should have no opponent, got %q", got)
	}
}
