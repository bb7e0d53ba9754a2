package core

import (
	"github.com/elliotchance/orderedmap/v2"
)

// Spawner creates an actor anchored at a grid cell. A spawner may return nil
// to place nothing.
type Spawner func(anchor Vector) Actor

// Entry binds a plan symbol to a spawner.
type Entry struct {
	Symbol rune
	Name   string
	Spawn  Spawner
}

// Dictionary maps plan symbols to spawners. It is immutable after creation
// and remembers the order its entries were given in.
type Dictionary struct {
	entries *orderedmap.OrderedMap[rune, Entry]
}

// NewDictionary creates a dictionary from entries. A later entry for the same
// symbol replaces an earlier one.
func NewDictionary(entries ...Entry) Dictionary {
	m := orderedmap.NewOrderedMap[rune, Entry]()
	for _, e := range entries {
		if e.Spawn == nil {
			continue
		}
		m.Set(e.Symbol, e)
	}
	return Dictionary{entries: m}
}

// StandardDictionary returns the symbols of the complete game.
func StandardDictionary() Dictionary {
	return NewDictionary(
		Entry{Symbol: '@', Name: "player", Spawn: func(a Vector) Actor { return NewPlayer(a) }},
		Entry{Symbol: 'v', Name: "fire rain", Spawn: func(a Vector) Actor { return NewFireRain(a) }},
		Entry{Symbol: 'o', Name: "coin", Spawn: func(a Vector) Actor { return NewCoin(a) }},
		Entry{Symbol: '=', Name: "horizontal fireball", Spawn: func(a Vector) Actor { return NewHorizontalFireball(a) }},
		Entry{Symbol: '|', Name: "vertical fireball", Spawn: func(a Vector) Actor { return NewVerticalFireball(a) }},
	)
}

// Lookup returns the entry for symbol.
func (d Dictionary) Lookup(symbol rune) (Entry, bool) {
	if d.entries == nil {
		return Entry{}, false
	}
	return d.entries.Get(symbol)
}

// Entries returns all entries in insertion order.
func (d Dictionary) Entries() []Entry {
	if d.entries == nil {
		return nil
	}
	out := make([]Entry, 0, d.entries.Len())
	for el := d.entries.Front(); el != nil; el = el.Next() {
		out = append(out, el.Value)
	}
	return out
}

// Len returns the number of symbols.
func (d Dictionary) Len() int {
	if d.entries == nil {
		return 0
	}
	return d.entries.Len()
}

// Parser turns text plans into levels.
//
// Plan characters:
//
//	'x' = wall
//	'!' = lava
//	any dictionary symbol = actor spawned at that cell
//	anything else = empty
type Parser struct {
	dict Dictionary
}

// NewParser creates a parser using dict to spawn actors.
func NewParser(dict Dictionary) *Parser {
	return &Parser{dict: dict}
}

// Dictionary returns the parser's symbol dictionary.
func (p *Parser) Dictionary() Dictionary { return p.dict }

// ObstacleFromSymbol returns the obstacle a plan character stands for.
func (p *Parser) ObstacleFromSymbol(symbol rune) Obstacle {
	switch symbol {
	case 'x':
		return ObstacleWall
	case '!':
		return ObstacleLava
	default:
		return ObstacleNone
	}
}

// ActorFromSymbol returns the spawner for a plan character.
func (p *Parser) ActorFromSymbol(symbol rune) (Spawner, bool) {
	e, ok := p.dict.Lookup(symbol)
	if !ok {
		return nil, false
	}
	return e.Spawn, true
}

// CreateGrid converts each plan row to a row of obstacles. Row lengths are
// kept as they are.
func (p *Parser) CreateGrid(plan []string) [][]Obstacle {
	grid := make([][]Obstacle, len(plan))
	for y, line := range plan {
		runes := []rune(line)
		grid[y] = make([]Obstacle, len(runes))
		for x, r := range runes {
			grid[y][x] = p.ObstacleFromSymbol(r)
		}
	}
	return grid
}

// CreateActors spawns an actor for every dictionary symbol in the plan, in
// row-major order.
func (p *Parser) CreateActors(plan []string) []Actor {
	var actors []Actor
	for y, line := range plan {
		for x, r := range []rune(line) {
			spawn, ok := p.ActorFromSymbol(r)
			if !ok {
				continue
			}
			a := spawn(V(float64(x), float64(y)))
			if isNilActor(a) {
				continue
			}
			actors = append(actors, a)
		}
	}
	return actors
}

// Parse builds a level from a plan.
func (p *Parser) Parse(plan []string) *Level {
	return NewLevel(p.CreateGrid(plan), p.CreateActors(plan))
}
