package core

import "testing"

func TestObstacleFromSymbol(t *testing.T) {
	p := NewParser(StandardDictionary())

	tests := []struct {
		symbol   rune
		expected Obstacle
	}{
		{'x', ObstacleWall},
		{'!', ObstacleLava},
		{' ', ObstacleNone},
		{'@', ObstacleNone},
		{'X', ObstacleNone},
		{'?', ObstacleNone},
	}

	for _, tc := range tests {
		if result := p.ObstacleFromSymbol(tc.symbol); result != tc.expected {
			t.Errorf("ObstacleFromSymbol(%q) = %q, expected %q", tc.symbol, result, tc.expected)
		}
	}
}

func TestActorFromSymbol(t *testing.T) {
	p := NewParser(StandardDictionary())

	tests := []struct {
		symbol rune
		kind   Kind
		found  bool
	}{
		{'@', KindPlayer, true},
		{'o', KindCoin, true},
		{'=', KindFireball, true},
		{'|', KindFireball, true},
		{'v', KindFireball, true},
		{'x', "", false},
		{' ', "", false},
	}

	for _, tc := range tests {
		spawn, ok := p.ActorFromSymbol(tc.symbol)
		if ok != tc.found {
			t.Errorf("ActorFromSymbol(%q) found = %v, expected %v", tc.symbol, ok, tc.found)
			continue
		}
		if !ok {
			continue
		}
		if kind := spawn(V(0, 0)).Kind(); kind != tc.kind {
			t.Errorf("ActorFromSymbol(%q) spawned %q, expected %q", tc.symbol, kind, tc.kind)
		}
	}
}

func TestEmptyDictionary(t *testing.T) {
	var d Dictionary
	if _, ok := d.Lookup('@'); ok {
		t.Error("zero Dictionary should have no entries")
	}
	if d.Len() != 0 || d.Entries() != nil {
		t.Error("zero Dictionary should be empty")
	}

	l := NewParser(d).Parse([]string{"@o="})
	if len(l.Actors()) != 0 {
		t.Errorf("len(Actors()) = %d, expected 0", len(l.Actors()))
	}
}

func TestDictionaryOrder(t *testing.T) {
	d := StandardDictionary()
	expected := []rune{'@', 'v', 'o', '=', '|'}

	entries := d.Entries()
	if len(entries) != len(expected) {
		t.Fatalf("len(Entries()) = %d, expected %d", len(entries), len(expected))
	}
	for i, e := range entries {
		if e.Symbol != expected[i] {
			t.Errorf("Entries()[%d] = %q, expected %q", i, e.Symbol, expected[i])
		}
	}
}

func TestDictionaryIsCopied(t *testing.T) {
	entries := []Entry{{Symbol: 'o', Spawn: func(a Vector) Actor { return NewCoin(a) }}}
	d := NewDictionary(entries...)
	entries[0].Symbol = 'z'

	if _, ok := d.Lookup('o'); !ok {
		t.Error("changing the input slice altered the dictionary")
	}
	if _, ok := d.Lookup('z'); ok {
		t.Error("changing the input slice altered the dictionary")
	}
}

func TestCreateGrid(t *testing.T) {
	p := NewParser(StandardDictionary())
	grid := p.CreateGrid([]string{"x !", "", "@x"})

	if len(grid) != 3 {
		t.Fatalf("len(grid) = %d, expected 3", len(grid))
	}
	expected := [][]Obstacle{
		{ObstacleWall, ObstacleNone, ObstacleLava},
		{},
		{ObstacleNone, ObstacleWall},
	}
	for y := range expected {
		if len(grid[y]) != len(expected[y]) {
			t.Errorf("len(grid[%d]) = %d, expected %d", y, len(grid[y]), len(expected[y]))
			continue
		}
		for x := range expected[y] {
			if grid[y][x] != expected[y][x] {
				t.Errorf("grid[%d][%d] = %q, expected %q", y, x, grid[y][x], expected[y][x])
			}
		}
	}
}

func TestCreateActors(t *testing.T) {
	p := NewParser(StandardDictionary())
	actors := p.CreateActors([]string{
		" o=",
		"@ x",
		"  |",
	})

	expected := []struct {
		kind Kind
		pos  Vector
	}{
		{KindCoin, V(1.2, 0.1)},
		{KindFireball, V(2, 0)},
		{KindPlayer, V(0, 0.5)},
		{KindFireball, V(2, 2)},
	}

	if len(actors) != len(expected) {
		t.Fatalf("len(actors) = %d, expected %d", len(actors), len(expected))
	}
	for i, e := range expected {
		if actors[i].Kind() != e.kind {
			t.Errorf("actors[%d].Kind() = %q, expected %q", i, actors[i].Kind(), e.kind)
		}
		if !actors[i].Pos().Equal(e.pos) {
			t.Errorf("actors[%d].Pos() = %v, expected %v", i, actors[i].Pos(), e.pos)
		}
	}
}

func TestCreateActorsSkipsNilSpawns(t *testing.T) {
	d := NewDictionary(
		Entry{Symbol: 'n', Spawn: func(Vector) Actor { return nil }},
		Entry{Symbol: 't', Spawn: func(Vector) Actor {
			var c *Coin
			return c
		}},
		Entry{Symbol: 'o', Spawn: func(a Vector) Actor { return NewCoin(a) }},
	)
	actors := NewParser(d).CreateActors([]string{"ntno"})

	if len(actors) != 1 || actors[0].Kind() != KindCoin {
		t.Errorf("CreateActors() = %v, expected a single coin", actors)
	}
}

func TestParse(t *testing.T) {
	p := NewParser(StandardDictionary())
	l := p.Parse([]string{"@", " "})

	actors := l.Actors()
	if len(actors) != 1 || actors[0].Kind() != KindPlayer {
		t.Fatalf("Actors() = %v, expected a single player", actors)
	}
	if l.Width() != 1 || l.Height() != 2 {
		t.Errorf("size = %dx%d, expected 1x2", l.Width(), l.Height())
	}
	if l.Player() == nil {
		t.Error("Player() = nil, expected the parsed player")
	}
}

func TestParseUnknownSymbols(t *testing.T) {
	p := NewParser(StandardDictionary())
	l := p.Parse([]string{"?#&", "x~!"})

	if len(l.Actors()) != 0 {
		t.Errorf("len(Actors()) = %d, expected 0", len(l.Actors()))
	}
	if o := l.ObstacleAt(V(0, 0), V(3, 1)); o != ObstacleNone {
		t.Errorf("unknown symbols produced obstacle %q", o)
	}
	if o := l.ObstacleAt(V(0, 1), V(1, 1)); o != ObstacleWall {
		t.Errorf("ObstacleAt(0,1) = %q, expected wall", o)
	}
}

func TestParsedLevelPlays(t *testing.T) {
	p := NewParser(StandardDictionary())
	l := p.Parse([]string{
		"     ",
		" =  x",
		"xxxxx",
	})

	fireball, ok := l.Actors()[0].(*Fireball)
	if !ok {
		t.Fatal("expected a fireball")
	}

	// (1,1) -> (3,1) -> wall at (4,1) bounces -> (1,1)
	l.Step(1)
	if !fireball.Pos().Equal(V(3, 1)) {
		t.Fatalf("Pos() = %v, expected (3, 1)", fireball.Pos())
	}
	l.Step(1)
	if !fireball.Speed().Equal(V(-2, 0)) || !fireball.Pos().Equal(V(3, 1)) {
		t.Fatalf("after bounce pos %v speed %v, expected (3, 1) and (-2, 0)", fireball.Pos(), fireball.Speed())
	}
	l.Step(1)
	if !fireball.Pos().Equal(V(1, 1)) {
		t.Errorf("Pos() = %v, expected (1, 1)", fireball.Pos())
	}
}
